package msg

import (
	"fmt"
	"os"

	"github.com/fatih/color"
)

// Error prints `Error: <message>` to stderr. Anything the tool reports as a
// failure goes through here so stdout stays reserved for results.
func Error(format string, a ...any) {
	fmt.Fprint(os.Stderr, color.HiRedString("Error"))
	fmt.Fprint(os.Stderr, ": ")
	fmt.Fprintf(os.Stderr, format, a...)
	fmt.Fprint(os.Stderr, "\n")
}

func Fatal(format string, a ...any) {
	Error(format, a...)
	os.Exit(1)
}
