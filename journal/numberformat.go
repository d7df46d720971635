package journal

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

// numberFormat identifies one of the six number literal shapes spec.md
// §4.7 requires the parser to recognize.
type numberFormat int

const (
	formatUS numberFormat = iota
	formatEuropean
	formatFrench
	formatSwiss
	formatIndian
	formatPlain
)

var formatPatterns = map[numberFormat]*regexp.Regexp{
	formatUS:       regexp.MustCompile(`^[+-]?\d{1,3}(,\d{3})*(\.\d+)?$`),
	formatEuropean: regexp.MustCompile(`^[+-]?\d{1,3}(\.\d{3})*(,\d+)?$`),
	formatSwiss:    regexp.MustCompile(`^[+-]?\d{1,3}('\d{3})*(\.\d+)?$`),
	formatFrench:   regexp.MustCompile(`^[+-]?\d{1,3}( \d{3})*(,\d+)?$`),
	formatPlain:    regexp.MustCompile(`^[+-]?\d+(\.\d+)?$`),
	formatIndian:   regexp.MustCompile(`^[+-]?(?:0|[1-9]\d{0,2})(?:,\d{2})*,\d{3}(?:\.\d+)?$`),
}

// detectionOrder is the sequence numberformat.rs effectively tries: US by
// default, falling back to the other formats only when a token doesn't
// match US (spec.md §4.7: "the parser uses US by default and switches
// per-token only if a token does not match US").
var detectionOrder = []numberFormat{formatUS, formatEuropean, formatFrench, formatSwiss, formatIndian, formatPlain}

// parseNumber parses raw against each recognized format in turn, cleaning
// the format-specific separators before handing the result to
// decimal.NewFromString. Returns false if raw matches none.
func parseNumber(raw string) (decimal.Decimal, bool) {
	for _, f := range detectionOrder {
		if !formatPatterns[f].MatchString(raw) {
			continue
		}
		cleaned := cleanNumber(raw, f)
		d, err := decimal.NewFromString(cleaned)
		if err != nil {
			continue
		}
		return d, true
	}
	return decimal.Decimal{}, false
}

func cleanNumber(raw string, f numberFormat) string {
	switch f {
	case formatUS:
		return strings.ReplaceAll(raw, ",", "")
	case formatEuropean:
		return strings.ReplaceAll(strings.ReplaceAll(raw, ".", ""), ",", ".")
	case formatFrench:
		return strings.ReplaceAll(strings.ReplaceAll(raw, " ", ""), ",", ".")
	case formatSwiss:
		return strings.ReplaceAll(raw, "'", "")
	case formatIndian:
		return strings.ReplaceAll(raw, ",", "")
	case formatPlain:
		return raw
	default:
		return raw
	}
}

// looksNumeric reports whether s consists only of digits, an optional
// leading sign, and the separators period, comma, apostrophe and space.
func looksNumeric(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		if r >= '0' && r <= '9' {
			continue
		}
		if i == 0 && (r == '+' || r == '-') {
			continue
		}
		if r == '.' || r == ',' || r == '\'' || r == ' ' {
			continue
		}
		return false
	}
	return true
}
