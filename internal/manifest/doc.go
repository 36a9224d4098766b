// Package manifest handles the optional project file (addplugin.yaml) that
// pins scaffolding settings for a repository: where plugins live, which
// template to use, the marker tokens and the lines stripped from the
// template. Files are validated against an embedded JSON Schema before use.
package manifest
