// Package config resolves the settings used for a scaffolding run. User
// defaults live in ~/.addplugin/config.yaml; a project file, ADDPLUGIN_*
// environment variables and command-line flags override them in that order.
package config
