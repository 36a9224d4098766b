package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/dotbot-tools/addplugin/internal/branding"
	"github.com/dotbot-tools/addplugin/internal/manifest"
	"github.com/dotbot-tools/addplugin/internal/scaffold"
)

// Keys lists the scalar settings accepted by "config set" and ADDPLUGIN_*
// variables. strip_lines can only be set in a project file.
var Keys = []string{
	"plugins_dir",
	"template",
	"extension",
	"platform",
	"backup_suffix",
	"markers.lower",
	"markers.title",
	"markers.upper",
	"requires",
}

// FlagNames maps settings keys to the command-line flags that override them.
var FlagNames = map[string]string{
	"plugins_dir":   "plugins-dir",
	"template":      "template",
	"extension":     "extension",
	"platform":      "platform",
	"backup_suffix": "backup-suffix",
}

var envKeyReplacer = strings.NewReplacer(".", "_")

// MarkerSettings are the resolved marker tokens.
type MarkerSettings struct {
	Lower string `mapstructure:"lower"`
	Title string `mapstructure:"title"`
	Upper string `mapstructure:"upper"`
}

// Settings is the fully resolved configuration for one invocation.
type Settings struct {
	PluginsDir   string         `mapstructure:"plugins_dir"`
	Template     string         `mapstructure:"template"`
	Extension    string         `mapstructure:"extension"`
	Platform     string         `mapstructure:"platform"`
	BackupSuffix string         `mapstructure:"backup_suffix"`
	Markers      MarkerSettings `mapstructure:"markers"`
	StripLines   []string       `mapstructure:"strip_lines"`
	Requires     string         `mapstructure:"requires"`
}

// ResolveOptions names the sources Resolve reads.
type ResolveOptions struct {
	// UserConfig is the user config file; missing files are skipped.
	UserConfig string
	// ProjectFile is the project manifest; missing files are skipped.
	ProjectFile string
	// Flags overrides settings for flags that were set explicitly.
	Flags *pflag.FlagSet
}

// Resolve merges defaults, the user config, the project file, the
// environment and flags, in increasing order of precedence.
func Resolve(opts ResolveOptions) (Settings, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(branding.EnvPrefix())
	v.SetEnvKeyReplacer(envKeyReplacer)
	v.AutomaticEnv()

	if opts.UserConfig != "" && fileExists(opts.UserConfig) {
		v.SetConfigFile(opts.UserConfig)
		v.SetConfigType(fileType)
		if err := v.ReadInConfig(); err != nil {
			return Settings{}, fmt.Errorf("reading user config %s: %w", opts.UserConfig, err)
		}
		log.Debug().Str("path", opts.UserConfig).Msg("Loaded user config")
	}

	if opts.ProjectFile != "" && fileExists(opts.ProjectFile) {
		project, err := manifest.Load(opts.ProjectFile)
		if err != nil {
			return Settings{}, err
		}
		if err := v.MergeConfigMap(project.Settings()); err != nil {
			return Settings{}, fmt.Errorf("merging project file %s: %w", opts.ProjectFile, err)
		}
		log.Debug().Str("path", opts.ProjectFile).Msg("Loaded project file")
	}

	if opts.Flags != nil {
		for key, name := range FlagNames {
			if f := opts.Flags.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return Settings{}, fmt.Errorf("binding flag --%s: %w", name, err)
				}
			}
		}
	}

	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return Settings{}, fmt.Errorf("decoding settings: %w", err)
	}
	return s, nil
}

// Options builds the scaffold options for one plugin from the settings.
func (s Settings) Options(name string, variant, force, dryRun bool) scaffold.Options {
	return scaffold.Options{
		Name:         name,
		PluginsDir:   s.PluginsDir,
		Extension:    s.Extension,
		Platform:     s.Platform,
		Variant:      variant,
		Force:        force,
		DryRun:       dryRun,
		BackupSuffix: s.BackupSuffix,
		Markers: scaffold.Markers{
			Lower: s.Markers.Lower,
			Title: s.Markers.Title,
			Upper: s.Markers.Upper,
		},
		StripLines: s.StripLines,
	}
}

func setDefaults(v *viper.Viper) {
	d := scaffold.DefaultOptions("")
	v.SetDefault("plugins_dir", d.PluginsDir)
	v.SetDefault("template", "")
	v.SetDefault("extension", d.Extension)
	v.SetDefault("platform", d.Platform)
	v.SetDefault("backup_suffix", d.BackupSuffix)
	v.SetDefault("markers.lower", d.Markers.Lower)
	v.SetDefault("markers.title", d.Markers.Title)
	v.SetDefault("markers.upper", d.Markers.Upper)
	v.SetDefault("strip_lines", d.StripLines)
	v.SetDefault("requires", "")
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
