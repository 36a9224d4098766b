package manifest

// Markers overrides the placeholder tokens replaced in the template.
type Markers struct {
	Lower string `yaml:"lower,omitempty" json:"lower,omitempty"`
	Title string `yaml:"title,omitempty" json:"title,omitempty"`
	Upper string `yaml:"upper,omitempty" json:"upper,omitempty"`
}

// IsZero reports whether no marker is set.
func (m Markers) IsZero() bool {
	return m.Lower == "" && m.Title == "" && m.Upper == ""
}

// Project is the content of a project file. Every field is optional; unset
// fields fall through to user settings and built-in defaults.
type Project struct {
	PluginsDir   string   `yaml:"plugins_dir,omitempty" json:"plugins_dir,omitempty"`
	Template     string   `yaml:"template,omitempty" json:"template,omitempty"`
	Extension    string   `yaml:"extension,omitempty" json:"extension,omitempty"`
	Platform     string   `yaml:"platform,omitempty" json:"platform,omitempty"`
	BackupSuffix string   `yaml:"backup_suffix,omitempty" json:"backup_suffix,omitempty"`
	Markers      Markers  `yaml:"markers,omitempty" json:"markers,omitempty"`
	StripLines   []string `yaml:"strip_lines,omitempty" json:"strip_lines,omitempty"`
	Requires     string   `yaml:"requires,omitempty" json:"requires,omitempty"`
}

// Settings returns the fields that are set as a nested map keyed like the
// settings keys ("plugins_dir", "markers.lower", ...).
func (p Project) Settings() map[string]interface{} {
	out := make(map[string]interface{})
	set := func(key, value string) {
		if value != "" {
			out[key] = value
		}
	}
	set("plugins_dir", p.PluginsDir)
	set("template", p.Template)
	set("extension", p.Extension)
	set("platform", p.Platform)
	set("backup_suffix", p.BackupSuffix)
	set("requires", p.Requires)

	if !p.Markers.IsZero() {
		markers := make(map[string]interface{})
		if p.Markers.Lower != "" {
			markers["lower"] = p.Markers.Lower
		}
		if p.Markers.Title != "" {
			markers["title"] = p.Markers.Title
		}
		if p.Markers.Upper != "" {
			markers["upper"] = p.Markers.Upper
		}
		out["markers"] = markers
	}
	if p.StripLines != nil {
		lines := make([]string, len(p.StripLines))
		copy(lines, p.StripLines)
		out["strip_lines"] = lines
	}
	return out
}
