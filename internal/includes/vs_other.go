//go:build !windows

package includes

// The Visual Studio setup API only exists on windows.
func vsIncludeDirs() []string { return nil }
