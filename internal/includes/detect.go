package includes

import (
	"os"
	"os/exec"
)

var (
	commonCCompilers   = []string{"clang", "gcc", "icx", "icc", "tcc", "cl"}
	commonCxxCompilers = []string{"clang++", "g++", "clang", "gcc", "icpx", "icx", "icpc", "icc", "cl"}
)

// Compiler is a compiler command resolved to an executable on this system.
type Compiler struct {
	Name string
	Path string
}

// FindCompilers lists the C or C++ compilers reachable from this process:
// the CC/CXX environment override first, then the well-known candidates
// found on PATH, in preference order.
func FindCompilers(needCxx bool, lookPath func(string) (string, error)) []Compiler {
	if lookPath == nil {
		lookPath = exec.LookPath
	}

	var compilers []Compiler
	envVar := "CC"
	candidates := commonCCompilers
	if needCxx {
		envVar = "CXX"
		candidates = commonCxxCompilers
	}

	if override := os.Getenv(envVar); override != "" {
		path, err := lookPath(override)
		if err != nil {
			path = override
		}
		compilers = append(compilers, Compiler{Name: "$" + envVar, Path: normalizeSlashes(path)})
	}

	for _, name := range candidates {
		path, err := lookPath(name)
		if err != nil {
			continue
		}
		compilers = append(compilers, Compiler{Name: name, Path: normalizeSlashes(path)})
	}

	return compilers
}
