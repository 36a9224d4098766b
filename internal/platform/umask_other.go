//go:build !unix

package platform

import "os"

// NewFileMode returns the mode a freshly created regular file gets. Hosts
// without a umask use 0666.
func NewFileMode() os.FileMode {
	return 0666
}
