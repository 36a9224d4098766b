//go:build unix

package platform

import (
	"os"
	"sync"

	"golang.org/x/sys/unix"
)

var (
	umaskOnce sync.Once
	umask     int
)

// NewFileMode returns the mode a freshly created regular file gets:
// 0666 with the process umask cleared.
func NewFileMode() os.FileMode {
	umaskOnce.Do(func() {
		umask = unix.Umask(0)
		unix.Umask(umask)
	})
	return os.FileMode(0666 &^ umask)
}
