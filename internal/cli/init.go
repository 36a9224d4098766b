package cli

import (
	"fmt"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/dotbot-tools/addplugin/internal/manifest"
	"github.com/dotbot-tools/addplugin/internal/scaffold"
)

func newInitCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a project file with the default settings",
		Long: `Write the project file (addplugin.yaml by default, see --project-file)
with every setting at its built-in value, ready to be edited.

An existing project file is left alone unless --force is given, in which case
it is kept as addplugin.bak.yaml.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := cmd.Flags().GetString("project-file")
			if err != nil {
				return err
			}

			data, err := manifest.Marshal(manifest.Default())
			if err != nil {
				return err
			}

			w := scaffold.NewWriter(afero.NewOsFs(), false)
			backup := scaffold.BackupPath(path, ".bak")
			outcome, err := w.WriteGuarded(path, backup, data, force)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			s := newStyles(out)
			switch outcome {
			case scaffold.SkippedExisting:
				fmt.Fprintf(out, "%s %s\n", s.tag(outcome, false), path)
				fmt.Fprintln(out, s.dim.Render("Pass --force to replace it."))
			case scaffold.CreatedWithBackup:
				fmt.Fprintf(out, "%s %s%s\n", s.tag(outcome, false), path, s.dim.Render(" (previous kept as "+backup+")"))
			default:
				fmt.Fprintf(out, "%s %s\n", s.tag(outcome, false), path)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Back up and overwrite an existing project file")
	return cmd
}
