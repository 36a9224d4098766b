package scaffold

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/afero"

	"github.com/dotbot-tools/addplugin/internal/platform"
)

const dirPerm os.FileMode = 0755

// Outcome is the result of a guarded write.
type Outcome int

const (
	// Created means the target did not exist and was written.
	Created Outcome = iota + 1
	// SkippedExisting means the target existed and was left untouched.
	SkippedExisting
	// CreatedWithBackup means the previous target was moved to its backup
	// path and the new content written in its place.
	CreatedWithBackup
)

func (o Outcome) String() string {
	switch o {
	case Created:
		return "created"
	case SkippedExisting:
		return "exists"
	case CreatedWithBackup:
		return "backup"
	default:
		return "unknown"
	}
}

// MarshalText renders the outcome by name for JSON output.
func (o Outcome) MarshalText() ([]byte, error) {
	return []byte(o.String()), nil
}

// IOError reports a failed filesystem operation on a path.
type IOError struct {
	Op   string
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *IOError) Unwrap() error { return e.Err }

var errIsDir = errors.New("is a directory")

// Writer performs guarded writes on a filesystem. In dry-run mode every
// decision is made against the real state but nothing is mutated.
type Writer struct {
	fs     afero.Fs
	dryRun bool
}

// NewWriter returns a Writer over fs. A dry-run writer wraps fs read-only.
func NewWriter(fs afero.Fs, dryRun bool) *Writer {
	if dryRun {
		fs = afero.NewReadOnlyFs(fs)
	}
	return &Writer{fs: fs, dryRun: dryRun}
}

// EnsureDir creates dir and its parents if missing. It reports whether the
// directory had to be created.
func (w *Writer) EnsureDir(dir string) (bool, error) {
	info, err := w.fs.Stat(dir)
	switch {
	case err == nil:
		if !info.IsDir() {
			return false, &IOError{Op: "mkdir", Path: dir, Err: errors.New("not a directory")}
		}
		return false, nil
	case !os.IsNotExist(err):
		return false, &IOError{Op: "stat", Path: dir, Err: err}
	}

	if w.dryRun {
		return true, nil
	}
	if err := w.fs.MkdirAll(dir, dirPerm); err != nil {
		return false, &IOError{Op: "mkdir", Path: dir, Err: err}
	}
	return true, nil
}

// WriteGuarded writes content to path unless a file is already there.
// New files get 0666 less the umask. With force, an existing file is moved
// to backup (replacing any older backup) and content takes its place with
// the same permission bits.
//
// The new content is staged in a temporary file next to path before the
// existing file is touched, so a failed write never loses the original.
func (w *Writer) WriteGuarded(path, backup string, content []byte, force bool) (Outcome, error) {
	info, err := w.fs.Stat(path)
	switch {
	case os.IsNotExist(err):
		if w.dryRun {
			return Created, nil
		}
		tmp, err := w.stage(path, content, platform.NewFileMode())
		if err != nil {
			return 0, err
		}
		if err := w.fs.Rename(tmp, path); err != nil {
			_ = w.fs.Remove(tmp)
			return 0, &IOError{Op: "rename", Path: path, Err: err}
		}
		return Created, nil
	case err != nil:
		return 0, &IOError{Op: "stat", Path: path, Err: err}
	case info.IsDir():
		return 0, &IOError{Op: "write", Path: path, Err: errIsDir}
	case !force:
		return SkippedExisting, nil
	}

	if w.dryRun {
		return CreatedWithBackup, nil
	}

	tmp, err := w.stage(path, content, info.Mode().Perm())
	if err != nil {
		return 0, err
	}
	if err := w.fs.Rename(path, backup); err != nil {
		_ = w.fs.Remove(tmp)
		return 0, &IOError{Op: "rename", Path: path, Err: err}
	}
	if err := w.fs.Rename(tmp, path); err != nil {
		// The original is safe in backup; tmp keeps the new content.
		return 0, &IOError{Op: "rename", Path: tmp, Err: err}
	}
	return CreatedWithBackup, nil
}

// stage writes content to a fresh temporary file in path's directory and
// returns its name.
func (w *Writer) stage(path string, content []byte, perm os.FileMode) (string, error) {
	f, err := afero.TempFile(w.fs, filepath.Dir(path), "."+filepath.Base(path)+".tmp-*")
	if err != nil {
		return "", &IOError{Op: "create", Path: path, Err: err}
	}
	name := f.Name()

	if _, err := f.Write(content); err != nil {
		f.Close()
		_ = w.fs.Remove(name)
		return "", &IOError{Op: "write", Path: path, Err: err}
	}
	if err := f.Close(); err != nil {
		_ = w.fs.Remove(name)
		return "", &IOError{Op: "write", Path: path, Err: err}
	}
	if err := platform.Chmod(w.fs, name, perm); err != nil {
		_ = w.fs.Remove(name)
		return "", &IOError{Op: "chmod", Path: name, Err: err}
	}
	return name, nil
}
