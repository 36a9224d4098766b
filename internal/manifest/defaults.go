package manifest

import "github.com/dotbot-tools/addplugin/internal/scaffold"

// Default returns a project file populated with the built-in settings.
func Default() Project {
	opts := scaffold.DefaultOptions("")
	return Project{
		PluginsDir:   opts.PluginsDir,
		Extension:    opts.Extension,
		Platform:     opts.Platform,
		BackupSuffix: opts.BackupSuffix,
		Markers: Markers{
			Lower: opts.Markers.Lower,
			Title: opts.Markers.Title,
			Upper: opts.Markers.Upper,
		},
		StripLines: opts.StripLines,
	}
}
