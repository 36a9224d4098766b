//go:build unix

package platform

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewFileModeMatchesCreate(t *testing.T) {
	path := filepath.Join(t.TempDir(), "created.go")
	f, err := os.Create(path)
	require.NoError(t, err)
	require.NoError(t, f.Close())

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, info.Mode().Perm(), NewFileMode())
}
