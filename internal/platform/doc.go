// Package platform knows how plugin sources are split per target OS: the
// build-constraint header that excludes a platform from the primary file
// and the file name of the platform variant. It also covers permission
// handling: the umask-derived mode of new files, and Chmod, a no-op on
// Windows hosts.
package platform
