package includes

import (
	"bytes"
	"errors"
	"os/exec"
	"strings"
)

// Runner launches a compiler and drains its output streams. It exists so
// tests can feed the parser canned diagnostics without spawning processes.
type Runner interface {
	// Run executes path with args, returning the captured stdout and stderr.
	// A non-zero exit status is not an error; only a failure to launch is.
	Run(path string, args ...string) (stdout, stderr []byte, err error)
}

type execRunner struct{}

func (execRunner) Run(path string, args ...string) ([]byte, []byte, error) {
	cmd := exec.Command(path, args...)
	// the search-list banner is emitted before any input is read, so an
	// empty translation unit is all the compiler gets
	cmd.Stdin = strings.NewReader("")

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if !errors.As(err, &exitErr) {
			return nil, nil, err
		}
		// some compilers exit non-zero when fed no real source; the banner
		// is on stderr regardless, so keep going
	}
	return stdout.Bytes(), stderr.Bytes(), nil
}

// compilerIncludeDirs queries a gcc-like compiler for its search path.
// Verbose preprocessor output lands on stderr; stdout is discarded.
func compilerIncludeDirs(runner Runner, compiler, lang string) ([]string, error) {
	_, stderr, err := runner.Run(compiler, "-v", "-E", "-x", lang, "-")
	if err != nil {
		return nil, &LaunchError{Compiler: compiler, Err: err}
	}
	return parseSearchList(string(stderr))
}
