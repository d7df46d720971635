package account

import "regexp"

// RegexFilter matches an account name against a set of patterns, each
// tested against the full colon-joined name. A name matches if any
// pattern matches; an empty RegexFilter matches everything.
type RegexFilter struct {
	patterns []*regexp.Regexp
}

// NewRegexFilter compiles each pattern, returning the first compile
// error encountered.
func NewRegexFilter(patterns []string) (*RegexFilter, error) {
	f := &RegexFilter{patterns: make([]*regexp.Regexp, 0, len(patterns))}
	for _, p := range patterns {
		re, err := regexp.Compile(p)
		if err != nil {
			return nil, err
		}
		f.patterns = append(f.patterns, re)
	}
	return f, nil
}

// Matches reports whether name matches any compiled pattern, or true
// unconditionally when no patterns were supplied.
func (f *RegexFilter) Matches(name AccName) bool {
	if len(f.patterns) == 0 {
		return true
	}
	for _, re := range f.patterns {
		if re.MatchString(string(name)) {
			return true
		}
	}
	return false
}
