package includes

import "strings"

const includeEnvVar = "INCLUDE"

// environmentIncludeDirs parses the semicolon-separated INCLUDE variable,
// the form vcvars leaves it in. Empty segments are dropped. A variable that
// is set but holds nothing is an explicit "no system includes" and returns
// an empty list rather than an error; only a missing variable fails.
//
// vsFallback supplies include directories when the variable is unset
// entirely (vcvars was never run in this shell); it may be nil.
func environmentIncludeDirs(lookup func(string) (string, bool), vsFallback func() []string) ([]string, error) {
	value, ok := lookup(includeEnvVar)
	if !ok {
		if vsFallback != nil {
			if dirs := vsFallback(); len(dirs) > 0 {
				return dirs, nil
			}
		}
		return nil, ErrEnvUnset
	}

	dirs := make([]string, 0, strings.Count(value, ";")+1)
	for segment := range strings.SplitSeq(value, ";") {
		if segment == "" {
			continue
		}
		dirs = append(dirs, normalizeSlashes(segment))
	}
	return dirs, nil
}
