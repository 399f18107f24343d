//go:build windows

package includes

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/heaths/go-vssetup"
)

// vsIncludeDirs locates the include directories of installed MSVC toolsets
// through the Visual Studio setup API. Each instance pins its default
// toolset version in VC/Auxiliary/Build/Microsoft.VCToolsVersion.default.txt.
func vsIncludeDirs() []string {
	instances, err := vssetup.Instances(false)
	if err != nil {
		return nil
	}

	var dirs []string
	for _, instance := range instances {
		root, err := instance.InstallationPath()
		instance.Close()
		if err != nil {
			continue
		}

		data, err := os.ReadFile(filepath.Join(root, "VC", "Auxiliary", "Build", "Microsoft.VCToolsVersion.default.txt"))
		if err != nil {
			continue
		}
		version := strings.TrimSpace(string(data))
		if version == "" {
			continue
		}

		include := filepath.Join(root, "VC", "Tools", "MSVC", version, "include")
		if _, err := os.Stat(include); err == nil {
			dirs = append(dirs, normalizeSlashes(include))
		}
	}
	return dirs
}
