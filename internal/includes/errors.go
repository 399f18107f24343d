package includes

import (
	"errors"
	"fmt"
)

var (
	// ErrEnvUnset is returned by the environment strategy when the INCLUDE
	// variable has no value at all.
	ErrEnvUnset = errors.New("INCLUDE environment variable not set")

	// ErrNoIncludeDirs is returned when a compiler's diagnostic output yields
	// zero directory entries. An empty list is never a success.
	ErrNoIncludeDirs = errors.New("no include directories found in compiler output")
)

// LaunchError reports that the compiler subprocess could not be started at
// all (missing binary, permissions). It wraps the underlying OS error.
type LaunchError struct {
	Compiler string
	Err      error
}

func (e *LaunchError) Error() string {
	return fmt.Sprintf("failed to execute compiler %s: %v", e.Compiler, e.Err)
}

func (e *LaunchError) Unwrap() error { return e.Err }
