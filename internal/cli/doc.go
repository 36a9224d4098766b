// Package cli defines the Cobra command tree for the addplugin CLI. The root
// command scaffolds a plugin; subcommands manage the project file, user
// settings and listing. Commands only parse flags and format output; the
// work is done by the scaffold, config and manifest packages.
package cli
