package cli

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/dotbot-tools/addplugin/internal/scaffold"
)

func newListCmd() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List scaffolded plugins",
		Long:  `List the plugin directories under the plugins directory with the files present in each.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			settings, err := resolveSettings(cmd)
			if err != nil {
				return err
			}

			opts := settings.Options("", false, false, false)
			plugins, err := scaffold.List(afero.NewOsFs(), opts)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if asJSON {
				if plugins == nil {
					plugins = []scaffold.PluginInfo{}
				}
				data, err := json.MarshalIndent(plugins, "", "  ")
				if err != nil {
					return fmt.Errorf("marshaling plugin list: %w", err)
				}
				fmt.Fprintln(out, string(data))
				return nil
			}

			if len(plugins) == 0 {
				fmt.Fprintf(out, "No plugins found in %s.\n", opts.PluginsDir)
				return nil
			}

			tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
			fmt.Fprintf(tw, "NAME\tSOURCE\t%s\tBACKUPS\n", "VARIANT ("+opts.Platform+")")
			for _, p := range plugins {
				fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", p.Name, yesNo(p.HasPrimary), yesNo(p.HasVariant), backups(p))
			}
			return tw.Flush()
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Output in JSON format")
	return cmd
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "-"
}

func backups(p scaffold.PluginInfo) string {
	switch {
	case p.HasBackup && p.HasVariantBackup:
		return "source, variant"
	case p.HasBackup:
		return "source"
	case p.HasVariantBackup:
		return "variant"
	default:
		return "-"
	}
}
