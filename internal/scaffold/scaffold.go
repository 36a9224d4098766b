package scaffold

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"

	"github.com/dotbot-tools/addplugin/internal/logging"
	"github.com/dotbot-tools/addplugin/internal/platform"
)

// Options describes one scaffolding run. It is built once from the resolved
// settings and passed by value.
type Options struct {
	Name         string   // plugin identifier, e.g. "cache"
	PluginsDir   string   // parent of the plugin directory
	Extension    string   // file extension without the dot
	Platform     string   // GOOS of the variant file
	Variant      bool     // also write <name>_<platform>.<ext>
	Force        bool     // back up and replace existing files
	DryRun       bool     // decide outcomes without touching the filesystem
	BackupSuffix string   // inserted before the extension, e.g. ".bak"
	Markers      Markers  // tokens replaced in the template
	StripLines   []string // literal text removed from the template
}

// DefaultOptions returns the options dotbot's scaffolder used.
func DefaultOptions(name string) Options {
	return Options{
		Name:         name,
		PluginsDir:   "plugins",
		Extension:    "go",
		Platform:     "windows",
		BackupSuffix: ".bak",
		Markers:      DefaultMarkers,
		StripLines:   append([]string(nil), DefaultStripLines...),
	}
}

// Dir returns <plugins_dir>/<name>.
func (o Options) Dir() string {
	return filepath.Join(o.PluginsDir, o.Name)
}

// PrimaryPath returns <plugins_dir>/<name>/<name>.<ext>.
func (o Options) PrimaryPath() string {
	return filepath.Join(o.Dir(), o.Name+"."+o.Extension)
}

// VariantPath returns <plugins_dir>/<name>/<name>_<platform>.<ext>.
func (o Options) VariantPath() string {
	return filepath.Join(o.Dir(), platform.VariantFileName(o.Name, o.Platform, o.Extension))
}

// Validate checks the options before anything touches the filesystem.
func (o Options) Validate() error {
	if err := ValidateName(o.Name); err != nil {
		return err
	}
	if o.PluginsDir == "" {
		return fmt.Errorf("plugins directory must not be empty")
	}
	if o.Extension == "" || strings.ContainsAny(o.Extension, `./\`) {
		return fmt.Errorf("invalid extension %q", o.Extension)
	}
	if o.BackupSuffix == "" || strings.ContainsAny(o.BackupSuffix, `/\`) {
		return fmt.Errorf("invalid backup suffix %q", o.BackupSuffix)
	}
	if o.Variant {
		if err := platform.Validate(o.Platform); err != nil {
			return err
		}
	}
	return nil
}

// BackupPath inserts suffix before the extension of path:
// "plugins/git/git.go" becomes "plugins/git/git.bak.go".
func BackupPath(path, suffix string) string {
	ext := filepath.Ext(path)
	return strings.TrimSuffix(path, ext) + suffix + ext
}

// FileResult is the outcome for one generated file.
type FileResult struct {
	Path    string  `json:"path"`
	Backup  string  `json:"backup,omitempty"`
	Outcome Outcome `json:"outcome"`
	Variant bool    `json:"variant"`
}

// Result holds the outcome of a scaffolding run.
type Result struct {
	Dir        string       `json:"dir"`
	DirCreated bool         `json:"dir_created"`
	DryRun     bool         `json:"dry_run"`
	Files      []FileResult `json:"files"`
}

type target struct {
	path    string
	content string
	variant bool
}

// Generate instantiates tmpl for opts.Name and writes the primary file and,
// when requested, the platform variant. With a variant the primary file is
// prefixed with a build constraint excluding that platform.
func Generate(fs afero.Fs, opts Options, tmpl string) (*Result, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	logger := logging.GetLogger("scaffold")
	done := logging.LogOperationStart(logger, "generate")
	defer done()

	w := NewWriter(fs, opts.DryRun)
	result := &Result{Dir: opts.Dir(), DryRun: opts.DryRun}

	created, err := w.EnsureDir(result.Dir)
	if err != nil {
		return nil, err
	}
	result.DirCreated = created

	text := Instantiate(opts.Name, tmpl, opts.StripLines, opts.Markers)

	primary := text
	if opts.Variant {
		primary = platform.ExclusionHeader(opts.Platform) + text
	}

	targets := []target{{path: opts.PrimaryPath(), content: primary}}
	if opts.Variant {
		targets = append(targets, target{path: opts.VariantPath(), content: text, variant: true})
	}

	for _, t := range targets {
		backup := BackupPath(t.path, opts.BackupSuffix)
		outcome, err := w.WriteGuarded(t.path, backup, []byte(t.content), opts.Force)
		if err != nil {
			return result, err
		}

		fr := FileResult{Path: t.path, Outcome: outcome, Variant: t.variant}
		if outcome == CreatedWithBackup {
			fr.Backup = backup
		}
		result.Files = append(result.Files, fr)

		logger.Info().
			Str("path", t.path).
			Stringer("outcome", outcome).
			Bool("dry_run", opts.DryRun).
			Msg("Plugin file processed")
	}

	return result, nil
}
