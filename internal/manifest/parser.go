package manifest

import (
	"fmt"
	"os"
	"strings"

	"go.yaml.in/yaml/v3"
)

// Load reads a project file, validates it against the schema and parses it.
// Schema violations are returned as a single error listing every issue.
func Load(path string) (*Project, error) {
	data, err := readFile(path)
	if err != nil {
		return nil, err
	}

	result, err := Validate(data)
	if err != nil {
		return nil, fmt.Errorf("validating %s: %w", path, err)
	}
	if !result.Valid {
		var msgs []string
		for _, issue := range result.Issues {
			msg := issue.Message
			if issue.Key != "" {
				msg = issue.Key + ": " + msg
			}
			msgs = append(msgs, msg)
		}
		return nil, fmt.Errorf("invalid project file %s:\n  %s", path, strings.Join(msgs, "\n  "))
	}

	return parse(data, path)
}

// Marshal renders p as YAML preceded by a short header comment.
func Marshal(p Project) ([]byte, error) {
	body, err := yaml.Marshal(p)
	if err != nil {
		return nil, fmt.Errorf("marshaling project file: %w", err)
	}
	header := "# Plugin scaffolding settings. Flags and ADDPLUGIN_* variables override these.\n"
	return append([]byte(header), body...), nil
}

func parse(data []byte, path string) (*Project, error) {
	var p Project
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("parsing project file %s: %w", path, err)
	}
	return &p, nil
}

// readFile reads the contents of a file at the given path.
func readFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading file %s: %w", path, err)
	}
	return data, nil
}
