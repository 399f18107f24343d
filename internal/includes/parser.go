package includes

import (
	"regexp"
	"strings"
)

const (
	searchStartMarker = "#include <...> search starts here:"
	searchEndMarker   = "End of search list."
)

// annotationSuffix matches a trailing parenthesized annotation such as
// ` (framework directory)` on macOS. Anchoring at end of line keeps
// directories with a parenthesis mid-path intact.
var annotationSuffix = regexp.MustCompile(`\s*\(.*\)$`)

// parseSearchList extracts the ordered include directories from a compiler's
// verbose diagnostic output. Only lines between the start and end markers
// count; everything before the start marker and after the end marker is
// ignored, even if it looks like a path.
func parseSearchList(output string) ([]string, error) {
	var dirs []string
	inSearchList := false

	for line := range strings.Lines(output) {
		trimmed := strings.TrimSpace(line)

		if !inSearchList {
			if strings.Contains(trimmed, searchStartMarker) {
				inSearchList = true
			}
			continue
		}
		if strings.Contains(trimmed, searchEndMarker) {
			break
		}
		if trimmed == "" {
			continue
		}

		dir := strings.TrimSpace(annotationSuffix.ReplaceAllString(trimmed, ""))
		if dir == "" {
			continue
		}
		dirs = append(dirs, normalizeSlashes(dir))
	}

	if len(dirs) == 0 {
		return nil, ErrNoIncludeDirs
	}
	return dirs, nil
}

// normalizeSlashes converts backslashes to forward slashes so output is
// textually consistent across platforms. Idempotent.
func normalizeSlashes(path string) string {
	return strings.ReplaceAll(path, `\`, "/")
}
