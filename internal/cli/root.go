package cli

import (
	"fmt"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/dotbot-tools/addplugin/internal/branding"
	"github.com/dotbot-tools/addplugin/internal/config"
	"github.com/dotbot-tools/addplugin/internal/logging"
)

// BuildInfo carries the values injected via ldflags.
type BuildInfo struct {
	Version string
	Commit  string
	Date    string
}

// NewRootCmd builds the command tree. Every call returns fresh commands and
// flag state.
func NewRootCmd(build BuildInfo) *cobra.Command {
	var verbosity int

	cmd := &cobra.Command{
		Use:   branding.CLIName() + " <name>",
		Short: branding.Description(),
		Long: branding.DisplayName() + ` scaffolds the source file of a new plugin from a template.

The template's marker tokens are replaced with the plugin name as given,
title-cased and upper-cased, and the result is written to
<plugins-dir>/<name>/<name>.go. Existing files are never overwritten unless
--force is given, in which case they are kept as <name>.bak.go.

A plugin named like a subcommand (init, list, config, version, help,
completion) is scaffolded after "--", e.g. "addplugin -- list".`,
		Example: `  addplugin cache
  addplugin shell --windows
  addplugin shell --windows --force --dry-run
  addplugin -- list`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.SetupLogger(verbosity)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return cmd.Help()
			}
			return runGenerate(cmd, args[0], build)
		},
	}

	pf := cmd.PersistentFlags()
	pf.CountVarP(&verbosity, "verbose", "v", "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)")
	pf.String("project-file", branding.ProjectFile(), "Project file with scaffolding settings")
	pf.String("plugins-dir", "plugins", "Directory holding one sub-directory per plugin")
	pf.String("template", "", "Template file (default: built-in plugin template)")
	pf.String("extension", "go", "Extension of generated files")
	pf.String("platform", "windows", "Platform of the variant file")
	pf.String("backup-suffix", ".bak", "Suffix inserted before the extension of backups")

	f := cmd.Flags()
	f.Bool("windows", false, "Also create a platform variant and exclude the platform from the primary file")
	f.Bool("force", false, "Back up and overwrite existing files")
	f.Bool("dry-run", false, "Show what would be written without touching any file")
	f.Bool("json", false, "Print the result as JSON")

	cmd.AddCommand(
		newInitCmd(),
		newListCmd(),
		newConfigCmd(),
		newVersionCmd(build),
	)
	return cmd
}

// resolveSettings merges every settings source for cmd.
func resolveSettings(cmd *cobra.Command) (config.Settings, error) {
	projectFile, err := cmd.Flags().GetString("project-file")
	if err != nil {
		return config.Settings{}, err
	}
	return config.Resolve(config.ResolveOptions{
		UserConfig:  config.FilePath(),
		ProjectFile: projectFile,
		Flags:       cmd.Flags(),
	})
}

// Execute runs the root command with build info injected via ldflags.
func Execute(version, commit, date string) error {
	cmd := NewRootCmd(BuildInfo{Version: version, Commit: commit, Date: date})
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return err
	}
	return nil
}
