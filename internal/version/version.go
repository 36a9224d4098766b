// Package version checks the build version against the "requires"
// constraint a project file may declare.
package version

import (
	"fmt"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// Dev is the version reported by builds without ldflags.
const Dev = "dev"

// Satisfies reports an error when current does not meet constraint, e.g.
// ">= 0.3.0". An empty constraint and development builds always pass.
func Satisfies(current, constraint string) error {
	if constraint == "" || current == Dev {
		return nil
	}

	c, err := semver.NewConstraint(constraint)
	if err != nil {
		return fmt.Errorf("parsing version constraint %q: %w", constraint, err)
	}
	v, err := parse(current)
	if err != nil {
		return fmt.Errorf("parsing version %q: %w", current, err)
	}

	if ok, reasons := c.Validate(v); !ok {
		msgs := make([]string, 0, len(reasons))
		for _, r := range reasons {
			msgs = append(msgs, r.Error())
		}
		return fmt.Errorf("version %s does not satisfy %q: %s", current, constraint, strings.Join(msgs, "; "))
	}
	return nil
}

// parse strips a leading "v" and parses the version string.
func parse(v string) (*semver.Version, error) {
	return semver.NewVersion(strings.TrimPrefix(v, "v"))
}
