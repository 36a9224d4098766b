package scaffold

import (
	_ "embed"

	"github.com/spf13/afero"
)

//go:embed templates/plugin.go.tmpl
var defaultTemplate string

// DefaultTemplate returns the built-in plugin template.
func DefaultTemplate() string {
	return defaultTemplate
}

// LoadTemplate reads the template at path. An empty path selects the
// built-in template.
func LoadTemplate(fs afero.Fs, path string) (string, error) {
	if path == "" {
		return defaultTemplate, nil
	}
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return "", &IOError{Op: "read", Path: path, Err: err}
	}
	return string(data), nil
}
