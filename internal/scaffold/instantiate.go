package scaffold

import "strings"

// Markers are the placeholder tokens replaced in a template.
type Markers struct {
	Lower string // replaced with the name as given
	Title string // replaced with Title(name)
	Upper string // replaced with Upper(name)
}

// DefaultMarkers matches the tokens used by dotbot's plugin template.
var DefaultMarkers = Markers{Lower: "plugin", Title: "Plugin", Upper: "PLUGIN"}

// DefaultStripLines are removed from the template before substitution; they
// keep the template itself out of the host project's build.
var DefaultStripLines = []string{
	"//go:build ignore\n",
	"// +build ignore\n\n",
}

// Instantiate removes every strip line from text and replaces the markers
// with the case variants of name. Replacement is a single left-to-right pass:
// substituted text is never scanned again. Empty markers are ignored.
func Instantiate(name, text string, strip []string, markers Markers) string {
	for _, line := range strip {
		if line == "" {
			continue
		}
		text = strings.ReplaceAll(text, line, "")
	}

	var pairs []string
	for _, p := range [][2]string{
		{markers.Lower, name},
		{markers.Title, Title(name)},
		{markers.Upper, Upper(name)},
	} {
		if p[0] != "" {
			pairs = append(pairs, p[0], p[1])
		}
	}
	if len(pairs) == 0 {
		return text
	}
	return strings.NewReplacer(pairs...).Replace(text)
}
