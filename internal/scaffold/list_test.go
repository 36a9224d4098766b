package scaffold

import (
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestList(t *testing.T) {
	fs := afero.NewMemMapFs()

	shell := DefaultOptions("shell")
	shell.Variant = true
	shell.Force = true
	_, err := Generate(fs, shell, testTemplate)
	require.NoError(t, err)
	_, err = Generate(fs, shell, testTemplate)
	require.NoError(t, err)

	_, err = Generate(fs, DefaultOptions("git"), testTemplate)
	require.NoError(t, err)

	require.NoError(t, fs.MkdirAll(filepath.Join("plugins", "empty"), 0755))
	require.NoError(t, afero.WriteFile(fs, filepath.Join("plugins", "plugins.go"), []byte("package plugins"), 0644))

	plugins, err := List(fs, DefaultOptions(""))
	require.NoError(t, err)
	require.Len(t, plugins, 3)

	assert.Equal(t, PluginInfo{Name: "empty", Dir: filepath.Join("plugins", "empty")}, plugins[0])
	assert.Equal(t, PluginInfo{Name: "git", Dir: filepath.Join("plugins", "git"), HasPrimary: true}, plugins[1])
	assert.Equal(t, PluginInfo{
		Name:             "shell",
		Dir:              filepath.Join("plugins", "shell"),
		HasPrimary:       true,
		HasVariant:       true,
		HasBackup:        true,
		HasVariantBackup: true,
	}, plugins[2])
}

func TestListMissingDir(t *testing.T) {
	plugins, err := List(afero.NewMemMapFs(), DefaultOptions(""))
	require.NoError(t, err)
	assert.Empty(t, plugins)
}
