package includes

import "runtime"

// Platform selects the discovery strategy for an OS family. It is threaded
// through Options instead of read from runtime.GOOS at the decision points,
// so every branch of the selector can be exercised from a single build.
type Platform string

const (
	PlatformUnix    Platform = "unix"
	PlatformWindows Platform = "windows"
	PlatformOther   Platform = "other"
)

// CurrentPlatform maps the running OS to its strategy family.
func CurrentPlatform() Platform {
	switch runtime.GOOS {
	case "windows":
		return PlatformWindows
	case "aix", "android", "darwin", "dragonfly", "freebsd", "illumos", "ios",
		"linux", "netbsd", "openbsd", "solaris":
		return PlatformUnix
	default:
		return PlatformOther
	}
}
