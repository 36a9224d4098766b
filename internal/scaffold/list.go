package scaffold

import (
	"os"
	"sort"

	"github.com/spf13/afero"
)

// PluginInfo describes one plugin directory found under the plugins dir.
type PluginInfo struct {
	Name             string `json:"name"`
	Dir              string `json:"dir"`
	HasPrimary       bool   `json:"has_primary"`
	HasVariant       bool   `json:"has_variant"`
	HasBackup        bool   `json:"has_backup"`
	HasVariantBackup bool   `json:"has_variant_backup"`
}

// List returns the plugin directories under opts.PluginsDir, sorted by
// name, with the presence of the files Generate would manage for each.
// A missing plugins dir yields no plugins.
func List(fs afero.Fs, opts Options) ([]PluginInfo, error) {
	entries, err := afero.ReadDir(fs, opts.PluginsDir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, &IOError{Op: "read", Path: opts.PluginsDir, Err: err}
	}

	var plugins []PluginInfo
	for _, e := range entries {
		if !e.IsDir() {
			continue
		}
		o := opts
		o.Name = e.Name()

		primary := o.PrimaryPath()
		variant := o.VariantPath()
		plugins = append(plugins, PluginInfo{
			Name:             o.Name,
			Dir:              o.Dir(),
			HasPrimary:       exists(fs, primary),
			HasVariant:       exists(fs, variant),
			HasBackup:        exists(fs, BackupPath(primary, o.BackupSuffix)),
			HasVariantBackup: exists(fs, BackupPath(variant, o.BackupSuffix)),
		})
	}

	sort.Slice(plugins, func(i, j int) bool { return plugins[i].Name < plugins[j].Name })
	return plugins, nil
}

func exists(fs afero.Fs, path string) bool {
	ok, err := afero.Exists(fs, path)
	return err == nil && ok
}
