package journal

import (
	"strconv"
	"strings"
	"time"

	"github.com/cortesi/ledger/errors"
)

// ParseDate accepts YYYY/MM/DD or YYYY-MM-DD and rejects anything that
// isn't a real calendar date, returning an InvalidDate error otherwise.
// Exported so the CLI can parse -b/-e/--at flags with the same grammar
// the journal parser itself uses.
func ParseDate(raw string) (time.Time, error) {
	return parseDate(raw, Position{})
}

// parseDate accepts YYYY/MM/DD or YYYY-MM-DD and rejects anything that
// isn't a real calendar date (spec.md's InvalidDate kind), rather than
// silently normalizing an out-of-range day/month the way time.Parse does.
func parseDate(raw string, pos Position) (time.Time, error) {
	sep := "/"
	if strings.Contains(raw, "-") {
		sep = "-"
	}
	parts := strings.Split(raw, sep)
	if len(parts) != 3 {
		return time.Time{}, errors.New(errors.InvalidDate, pos, "malformed date "+strconv.Quote(raw))
	}
	y, err1 := strconv.Atoi(parts[0])
	m, err2 := strconv.Atoi(parts[1])
	d, err3 := strconv.Atoi(parts[2])
	if err1 != nil || err2 != nil || err3 != nil {
		return time.Time{}, errors.New(errors.InvalidDate, pos, "malformed date "+strconv.Quote(raw))
	}
	t := time.Date(y, time.Month(m), d, 0, 0, 0, 0, time.UTC)
	if t.Year() != y || int(t.Month()) != m || t.Day() != d {
		return time.Time{}, errors.New(errors.InvalidDate, pos, "no such date "+strconv.Quote(raw))
	}
	return t, nil
}

func looksLikeDate(s string) bool {
	if len(s) < 8 {
		return false
	}
	sep := byte('/')
	if strings.ContainsRune(s, '-') {
		sep = '-'
	}
	n := 0
	for i := 0; i < len(s); i++ {
		if s[i] == sep {
			n++
		} else if !isDigit(s[i]) {
			return false
		}
	}
	return n == 2
}
