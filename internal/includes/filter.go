package includes

import "github.com/bmatcuk/doublestar/v4"

// FilterGlob keeps only the directories matching a doublestar pattern
// (`**` spans path separators). Order is preserved. An invalid pattern is
// rejected even when there are no directories to test.
func FilterGlob(dirs []string, pattern string) ([]string, error) {
	if !doublestar.ValidatePattern(pattern) {
		return nil, doublestar.ErrBadPattern
	}
	filtered := make([]string, 0, len(dirs))
	for _, dir := range dirs {
		ok, err := doublestar.Match(pattern, dir)
		if err != nil {
			return nil, err
		}
		if ok {
			filtered = append(filtered, dir)
		}
	}
	return filtered, nil
}
