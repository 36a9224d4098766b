package scaffold

import (
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dotbot-tools/addplugin/internal/platform"
)

func readString(t *testing.T, fs afero.Fs, path string) string {
	t.Helper()
	data, err := afero.ReadFile(fs, path)
	require.NoError(t, err)
	return string(data)
}

func assertDirEntries(t *testing.T, fs afero.Fs, dir string, want ...string) {
	t.Helper()
	entries, err := afero.ReadDir(fs, dir)
	require.NoError(t, err)
	var names []string
	for _, e := range entries {
		names = append(names, e.Name())
	}
	assert.ElementsMatch(t, want, names)
}

func TestWriteGuardedAbsentCreates(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, fs.MkdirAll("p", 0755))
	w := NewWriter(fs, false)

	outcome, err := w.WriteGuarded("p/a.go", "p/a.bak.go", []byte("new"), false)
	require.NoError(t, err)
	assert.Equal(t, Created, outcome)
	assert.Equal(t, "new", readString(t, fs, "p/a.go"))
	assertDirEntries(t, fs, "p", "a.go")
}

func TestWriteGuardedExistingSkips(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "p/a.go", []byte("old"), 0644))
	w := NewWriter(fs, false)

	outcome, err := w.WriteGuarded("p/a.go", "p/a.bak.go", []byte("new"), false)
	require.NoError(t, err)
	assert.Equal(t, SkippedExisting, outcome)
	assert.Equal(t, "old", readString(t, fs, "p/a.go"))
	assertDirEntries(t, fs, "p", "a.go")
}

func TestWriteGuardedForceBacksUp(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "p/a.go", []byte("old"), 0644))
	w := NewWriter(fs, false)

	outcome, err := w.WriteGuarded("p/a.go", "p/a.bak.go", []byte("new"), true)
	require.NoError(t, err)
	assert.Equal(t, CreatedWithBackup, outcome)
	assert.Equal(t, "new", readString(t, fs, "p/a.go"))
	assert.Equal(t, "old", readString(t, fs, "p/a.bak.go"))
	assertDirEntries(t, fs, "p", "a.go", "a.bak.go")
}

func TestWriteGuardedForceReplacesPriorBackup(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "p/a.go", []byte("second"), 0644))
	require.NoError(t, afero.WriteFile(fs, "p/a.bak.go", []byte("first"), 0644))
	w := NewWriter(fs, false)

	_, err := w.WriteGuarded("p/a.go", "p/a.bak.go", []byte("third"), true)
	require.NoError(t, err)
	assert.Equal(t, "second", readString(t, fs, "p/a.bak.go"))
	assert.Equal(t, "third", readString(t, fs, "p/a.go"))
}

func TestWriteGuardedKeepsPermissions(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("permission bits are not tracked on Windows")
	}
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "p/a.go", []byte("old"), 0600))
	w := NewWriter(fs, false)

	_, err := w.WriteGuarded("p/a.go", "p/a.bak.go", []byte("new"), true)
	require.NoError(t, err)

	info, err := fs.Stat("p/a.go")
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())
}

func TestWriteGuardedNewFilePermissions(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("permission bits are not tracked on Windows")
	}
	fs := afero.NewMemMapFs()
	w := NewWriter(fs, false)

	_, err := w.WriteGuarded("p/a.go", "p/a.bak.go", []byte("new"), false)
	require.NoError(t, err)

	info, err := fs.Stat("p/a.go")
	require.NoError(t, err)
	assert.Equal(t, platform.NewFileMode(), info.Mode().Perm())
}

func TestWriteGuardedNewFileHonoursUmask(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("permission bits are not tracked on Windows")
	}
	dir := t.TempDir()
	created := filepath.Join(dir, "created.go")
	f, err := os.Create(created)
	require.NoError(t, err)
	require.NoError(t, f.Close())

	w := NewWriter(afero.NewOsFs(), false)
	path := filepath.Join(dir, "git.go")
	_, err = w.WriteGuarded(path, BackupPath(path, ".bak"), []byte("package git\n"), false)
	require.NoError(t, err)

	want, err := os.Stat(created)
	require.NoError(t, err)
	got, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, want.Mode().Perm(), got.Mode().Perm())
}

func TestWriteGuardedDryRunMutatesNothing(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "p/a.go", []byte("old"), 0644))
	w := NewWriter(fs, true)

	outcome, err := w.WriteGuarded("p/a.go", "p/a.bak.go", []byte("new"), true)
	require.NoError(t, err)
	assert.Equal(t, CreatedWithBackup, outcome)

	outcome, err = w.WriteGuarded("p/b.go", "p/b.bak.go", []byte("new"), false)
	require.NoError(t, err)
	assert.Equal(t, Created, outcome)

	assert.Equal(t, "old", readString(t, fs, "p/a.go"))
	assertDirEntries(t, fs, "p", "a.go")
}

func TestWriteGuardedFailureIsIOError(t *testing.T) {
	base := afero.NewMemMapFs()
	require.NoError(t, base.MkdirAll("p", 0755))
	w := &Writer{fs: afero.NewReadOnlyFs(base)}

	_, err := w.WriteGuarded("p/a.go", "p/a.bak.go", []byte("new"), false)
	require.Error(t, err)

	var ioErr *IOError
	require.True(t, errors.As(err, &ioErr))
	assert.Equal(t, "p/a.go", ioErr.Path)
	assert.Contains(t, err.Error(), "p/a.go")
}

func TestWriteGuardedFailedWriteKeepsOriginal(t *testing.T) {
	base := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(base, "p/a.go", []byte("old"), 0644))
	w := &Writer{fs: afero.NewReadOnlyFs(base)}

	_, err := w.WriteGuarded("p/a.go", "p/a.bak.go", []byte("new"), true)
	require.Error(t, err)

	assert.Equal(t, "old", readString(t, base, "p/a.go"))
	assertDirEntries(t, base, "p", "a.go")
}

func TestWriteGuardedDirectoryTarget(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, fs.MkdirAll("p/a.go", 0755))
	w := NewWriter(fs, false)

	_, err := w.WriteGuarded("p/a.go", "p/a.bak.go", []byte("new"), true)
	require.ErrorIs(t, err, errIsDir)
}

func TestEnsureDir(t *testing.T) {
	fs := afero.NewMemMapFs()
	w := NewWriter(fs, false)

	created, err := w.EnsureDir("plugins/git")
	require.NoError(t, err)
	assert.True(t, created)

	created, err = w.EnsureDir("plugins/git")
	require.NoError(t, err)
	assert.False(t, created)

	info, err := fs.Stat("plugins/git")
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestEnsureDirOnFile(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "plugins/git", []byte("x"), 0644))

	_, err := NewWriter(fs, false).EnsureDir("plugins/git")
	var ioErr *IOError
	require.ErrorAs(t, err, &ioErr)
	assert.Equal(t, "mkdir", ioErr.Op)
}

func TestEnsureDirDryRun(t *testing.T) {
	fs := afero.NewMemMapFs()

	created, err := NewWriter(fs, true).EnsureDir("plugins/git")
	require.NoError(t, err)
	assert.True(t, created)

	exists, err := afero.DirExists(fs, "plugins/git")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestOutcomeString(t *testing.T) {
	assert.Equal(t, "created", Created.String())
	assert.Equal(t, "exists", SkippedExisting.String())
	assert.Equal(t, "backup", CreatedWithBackup.String())
	assert.Equal(t, "unknown", Outcome(0).String())
}
