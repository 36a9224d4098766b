package cli

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"

	"github.com/dotbot-tools/addplugin/internal/scaffold"
)

// styles renders status tags for one writer; colours are dropped when the
// writer is not a terminal.
type styles struct {
	created lipgloss.Style
	exists  lipgloss.Style
	backup  lipgloss.Style
	dim     lipgloss.Style
}

func newStyles(w io.Writer) styles {
	r := lipgloss.NewRenderer(w)
	return styles{
		created: r.NewStyle().Foreground(lipgloss.Color("2")).Bold(true),
		exists:  r.NewStyle().Foreground(lipgloss.Color("8")),
		backup:  r.NewStyle().Foreground(lipgloss.Color("3")).Bold(true),
		dim:     r.NewStyle().Faint(true),
	}
}

func (s styles) tag(o scaffold.Outcome, dryRun bool) string {
	label := o.String()
	if dryRun {
		switch o {
		case scaffold.Created:
			label = "would create"
		case scaffold.CreatedWithBackup:
			label = "would backup"
		}
	}
	label = fmt.Sprintf("%-13s", label)

	switch o {
	case scaffold.Created:
		return s.created.Render(label)
	case scaffold.CreatedWithBackup:
		return s.backup.Render(label)
	default:
		return s.exists.Render(label)
	}
}

func printResult(w io.Writer, result *scaffold.Result) {
	s := newStyles(w)

	if result.DirCreated {
		verb := "created"
		if result.DryRun {
			verb = "would create"
		}
		fmt.Fprintf(w, "%s %s/\n", s.created.Render(fmt.Sprintf("%-13s", verb)), result.Dir)
	}

	for _, f := range result.Files {
		line := s.tag(f.Outcome, result.DryRun) + " " + f.Path
		if f.Backup != "" {
			line += s.dim.Render(" (previous kept as " + f.Backup + ")")
		}
		fmt.Fprintln(w, line)
	}

	for _, f := range result.Files {
		if f.Outcome == scaffold.SkippedExisting {
			fmt.Fprintln(w, s.dim.Render("\nExisting files were left untouched; pass --force to back them up and overwrite."))
			break
		}
	}
}
