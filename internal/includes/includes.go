// Package includes discovers the default system include-directory search
// path of a C/C++ compiler. gcc-like compilers are queried by running them
// with `-v -E -x <lang> -` and parsing the search-list banner from stderr;
// on Windows without a usable compiler the `INCLUDE` environment variable
// (as populated by vcvars) is parsed instead.
package includes

import (
	"os"
	"regexp"
	"strings"
)

const (
	// DefaultUnixCompiler is queried on unix platforms when no compiler
	// path is supplied.
	DefaultUnixCompiler = "/usr/bin/c++"

	LangCxx = "c++"
	LangC   = "c"
)

// Options control a single discovery run. The zero value queries the
// platform-default C++ compiler on the current OS.
type Options struct {
	// Compiler is an explicit path to the compiler executable. Empty means
	// the platform default.
	Compiler string

	// Lang is the language passed to the compiler's -x flag. Defaults to
	// LangCxx.
	Lang string

	// Platform overrides the detected OS family.
	Platform Platform

	// Runner launches the compiler subprocess. Defaults to os/exec.
	Runner Runner

	// LookupEnv reads environment variables. Defaults to os.LookupEnv.
	LookupEnv func(string) (string, bool)
}

func (opts Options) withDefaults() Options {
	if opts.Lang == "" {
		opts.Lang = LangCxx
	}
	if opts.Platform == "" {
		opts.Platform = CurrentPlatform()
	}
	if opts.Runner == nil {
		opts.Runner = execRunner{}
	}
	if opts.LookupEnv == nil {
		opts.LookupEnv = os.LookupEnv
	}
	return opts
}

// Discover returns the compiler's system include directories in search
// order. Paths use forward slashes; duplicates reported by the compiler are
// preserved. A successful result always holds at least one directory, except
// for the environment strategy, where a set-but-empty INCLUDE is taken at
// its word and yields an empty list.
func Discover(opts Options) ([]string, error) {
	opts = opts.withDefaults()

	// On Windows without a compiler there is no verbose flag to lean on,
	// so the INCLUDE variable is the source of truth.
	if opts.Platform == PlatformWindows && opts.Compiler == "" {
		return environmentIncludeDirs(opts.LookupEnv, vsIncludeDirs)
	}

	compiler := opts.Compiler
	if compiler == "" {
		if opts.Platform == PlatformUnix {
			compiler = DefaultUnixCompiler
		} else {
			compiler = "c++"
		}
	}

	// cl and clang-cl don't speak gcc's -v dialect
	if opts.Platform == PlatformWindows && isMSVCLike(compiler) {
		return environmentIncludeDirs(opts.LookupEnv, vsIncludeDirs)
	}

	return compilerIncludeDirs(opts.Runner, compiler, opts.Lang)
}

var msvcPattern = regexp.MustCompile(`cl(\.exe)?$`)

// isMSVCLike reports whether the compiler filename looks like cl, cl.exe,
// clang-cl or clang-cl.exe. Matching is case-sensitive and anchored at the
// end of the filename.
func isMSVCLike(compiler string) bool {
	base := compiler
	if i := strings.LastIndexAny(base, `/\`); i >= 0 {
		base = base[i+1:]
	}
	return msvcPattern.MatchString(base)
}
