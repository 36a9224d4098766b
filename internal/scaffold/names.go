package scaffold

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var namePattern = regexp.MustCompile(`^[a-z][a-z0-9_]*$`)

// ValidateName checks that name can be used as a plugin directory, file name
// and Go package name.
func ValidateName(name string) error {
	if name == "" {
		return fmt.Errorf("plugin name must not be empty")
	}
	if !namePattern.MatchString(name) {
		return fmt.Errorf("invalid plugin name %q: must match pattern [a-z][a-z0-9_]*", name)
	}
	return nil
}

// Title upper-cases the first letter of every word and lower-cases the rest.
// A word is a maximal run of letters, so "my_plugin" becomes "My_Plugin".
func Title(s string) string {
	caser := cases.Title(language.Und)

	var b strings.Builder
	b.Grow(len(s))
	start := -1
	flush := func(end int) {
		if start >= 0 {
			b.WriteString(caser.String(s[start:end]))
			start = -1
		}
	}
	for i, r := range s {
		if unicode.IsLetter(r) {
			if start < 0 {
				start = i
			}
			continue
		}
		flush(i)
		b.WriteRune(r)
	}
	flush(len(s))
	return b.String()
}

// Upper returns s fully upper-cased.
func Upper(s string) string {
	return cases.Upper(language.Und).String(s)
}
