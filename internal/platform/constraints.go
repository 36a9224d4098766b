package platform

import (
	"fmt"
	"slices"
	"strings"
)

// knownOS lists the GOOS values accepted as platform names.
var knownOS = []string{
	"aix", "android", "darwin", "dragonfly", "freebsd", "illumos", "ios",
	"js", "linux", "netbsd", "openbsd", "plan9", "solaris", "wasip1", "windows",
}

// IsKnown reports whether platform is a GOOS value understood by the Go
// toolchain's file name and build constraint rules.
func IsKnown(platform string) bool {
	return slices.Contains(knownOS, platform)
}

// Validate returns an error when platform cannot be used as a variant suffix.
func Validate(platform string) error {
	if !IsKnown(platform) {
		return fmt.Errorf("unknown platform %q: must be one of %s", platform, strings.Join(knownOS, ", "))
	}
	return nil
}

// ExclusionHeader returns the build constraint block that keeps a file out of
// builds for platform. Both the go:build and legacy +build forms are emitted,
// followed by the blank line the legacy form requires.
func ExclusionHeader(platform string) string {
	return fmt.Sprintf("//go:build !%s\n// +build !%s\n\n", platform, platform)
}

// VariantFileName returns "<name>_<platform>.<ext>".
func VariantFileName(name, platform, ext string) string {
	return name + "_" + platform + "." + ext
}
