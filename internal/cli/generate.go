package cli

import (
	"encoding/json"
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/dotbot-tools/addplugin/internal/scaffold"
	"github.com/dotbot-tools/addplugin/internal/version"
)

// generateFlags are the per-run switches of the root command.
type generateFlags struct {
	Windows bool
	Force   bool
	DryRun  bool
	JSON    bool
}

func readGenerateFlags(cmd *cobra.Command) (generateFlags, error) {
	var g generateFlags
	var err error
	f := cmd.Flags()
	if g.Windows, err = f.GetBool("windows"); err != nil {
		return g, err
	}
	if g.Force, err = f.GetBool("force"); err != nil {
		return g, err
	}
	if g.DryRun, err = f.GetBool("dry-run"); err != nil {
		return g, err
	}
	if g.JSON, err = f.GetBool("json"); err != nil {
		return g, err
	}
	return g, nil
}

func runGenerate(cmd *cobra.Command, name string, build BuildInfo) error {
	if err := scaffold.ValidateName(name); err != nil {
		return err
	}

	flags, err := readGenerateFlags(cmd)
	if err != nil {
		return err
	}

	settings, err := resolveSettings(cmd)
	if err != nil {
		return err
	}
	if err := version.Satisfies(build.Version, settings.Requires); err != nil {
		return fmt.Errorf("project file requires a newer %s: %w", cmd.Root().Name(), err)
	}

	opts := settings.Options(name, flags.Windows, flags.Force, flags.DryRun)
	log.Debug().
		Str("plugin", name).
		Str("dir", opts.Dir()).
		Bool("windows", flags.Windows).
		Bool("force", flags.Force).
		Msg("Resolved scaffold options")

	fs := afero.NewOsFs()
	tmpl, err := scaffold.LoadTemplate(fs, settings.Template)
	if err != nil {
		return err
	}

	result, err := scaffold.Generate(fs, opts, tmpl)
	if err != nil {
		return err
	}

	if flags.JSON {
		out, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			return fmt.Errorf("marshaling result: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(out))
		return nil
	}

	printResult(cmd.OutOrStdout(), result)
	return nil
}
