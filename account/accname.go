// Package account implements AccName, the colon-separated hierarchical
// account identifier.
package account

import "strings"

// AccName is a non-empty sequence of path segments joined by ':'.
type AccName string

// Append produces A:B; an empty A yields B unchanged.
func (a AccName) Append(b AccName) AccName {
	if a == "" {
		return b
	}
	if b == "" {
		return a
	}
	return a + ":" + b
}

// Segments splits the name on ':'.
func (a AccName) Segments() []string {
	return strings.Split(string(a), ":")
}

// AllAccounts yields every ancestor prefix including the name itself, in
// root-to-leaf order: "A:B:C" -> ["A", "A:B", "A:B:C"].
func (a AccName) AllAccounts() []AccName {
	segs := a.Segments()
	out := make([]AccName, 0, len(segs))
	var cur AccName
	for _, s := range segs {
		cur = cur.Append(AccName(s))
		out = append(out, cur)
	}
	return out
}

// ParentAccounts is AllAccounts minus the name itself.
func (a AccName) ParentAccounts() []AccName {
	all := a.AllAccounts()
	if len(all) == 0 {
		return nil
	}
	return all[:len(all)-1]
}

// PopParent removes and returns the leading segment, leaving the rest in
// place. On a single-segment name, it empties the receiver and returns the
// former full value.
func (a *AccName) PopParent() (AccName, bool) {
	segs := strings.SplitN(string(*a), ":", 2)
	if len(segs) == 0 || segs[0] == "" {
		return "", false
	}
	head := AccName(segs[0])
	if len(segs) == 1 {
		*a = ""
		return head, true
	}
	*a = AccName(segs[1])
	return head, true
}

// Depth is the number of segments.
func (a AccName) Depth() int {
	if a == "" {
		return 0
	}
	return len(a.Segments())
}

// Filter reports whether an account name should be included in a report.
type Filter interface {
	Matches(AccName) bool
}

// AllFilter matches every account name, the default when no regex filters
// are supplied.
type AllFilter struct{}

// Matches always returns true.
func (AllFilter) Matches(AccName) bool { return true }
