// Package journal implements the plain-text ledger grammar: reading a
// file into a balanced sequence of transactions and standalone market
// price directives.
package journal

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/cortesi/ledger/account"
	"github.com/cortesi/ledger/amount"
	lerrors "github.com/cortesi/ledger/errors"
	"github.com/cortesi/ledger/quantity"
	"github.com/cortesi/ledger/symbol"
)

type parser struct {
	filename string
	lines    []string
}

// Parse reads src (a complete journal file's text) and returns a
// balanced Journal, or the first error encountered. Parsing halts at
// the first malformed construct; there is no partial result.
func Parse(filename string, src string) (*Journal, error) {
	p := &parser{filename: filename, lines: splitLines(src)}
	return p.run()
}

func splitLines(src string) []string {
	src = strings.ReplaceAll(src, "\r\n", "\n")
	return strings.Split(src, "\n")
}

func (p *parser) pos(line, col int) Position {
	return Position{Filename: p.filename, Line: line, Column: col}
}

func (p *parser) run() (*Journal, error) {
	j := &Journal{}

	var cur *Xact
	flush := func() error {
		if cur == nil {
			return nil
		}
		if err := finishXact(cur); err != nil {
			return err
		}
		j.Xacts = append(j.Xacts, cur)
		cur = nil
		return nil
	}

	for i, raw := range p.lines {
		lineNo := i + 1
		trimmed := strings.TrimRight(raw, " \t")

		if trimmed == "" {
			if err := flush(); err != nil {
				return nil, err
			}
			continue
		}

		indented := raw[0] == ' ' || raw[0] == '\t'
		content := strings.TrimLeft(raw, " \t")

		switch {
		case strings.HasPrefix(content, ";"):
			if !indented {
				if err := flush(); err != nil {
					return nil, err
				}
			}
			continue
		case !indented && strings.HasPrefix(content, "P ") || (!indented && content == "P"):
			if err := flush(); err != nil {
				return nil, err
			}
			pd, err := p.parsePriceDirective(content, lineNo)
			if err != nil {
				return nil, err
			}
			j.Prices = append(j.Prices, pd)
		case !indented:
			if err := flush(); err != nil {
				return nil, err
			}
			x, err := p.parseXactHeader(content, lineNo)
			if err != nil {
				return nil, err
			}
			cur = x
		default:
			if cur == nil {
				return nil, lerrors.New(lerrors.Parse, p.pos(lineNo, 1), "posting line outside any transaction")
			}
			pst, err := p.parsePostingLine(content, lineNo)
			if err != nil {
				return nil, err
			}
			cur.Postings = append(cur.Postings, pst)
		}
	}
	if err := flush(); err != nil {
		return nil, err
	}
	return j, nil
}

// ParsePriceLine parses a single standalone "P ..." directive line, for
// use by price-database files which are not full journals. lineNo and
// filename are used only to annotate any returned error's position.
func ParsePriceLine(filename string, lineNo int, content string) (PriceDirective, error) {
	p := &parser{filename: filename}
	return p.parsePriceDirective(content, lineNo)
}

// --- price directives -------------------------------------------------

func (p *parser) parsePriceDirective(content string, lineNo int) (PriceDirective, error) {
	rest := strings.TrimSpace(strings.TrimPrefix(content, "P"))
	fields := strings.Fields(rest)
	if len(fields) < 2 {
		return PriceDirective{}, lerrors.New(lerrors.Parse, p.pos(lineNo, 1), "malformed price directive")
	}
	dateRaw := fields[0]
	idx := 1
	if idx < len(fields) && looksLikeClock(fields[idx]) {
		idx++
	}
	remainder := strings.Join(fields[idx:], " ")
	toks := scanAmountExpr(remainder, 1)
	if len(toks) != 3 {
		return PriceDirective{}, lerrors.New(lerrors.Parse, p.pos(lineNo, 1), "malformed price directive")
	}

	date, err := parseDate(dateRaw, p.pos(lineNo, 1))
	if err != nil {
		return PriceDirective{}, err
	}

	// Shape is detected by which token is the lone bareword: the price
	// quantity is always an adjacent (symbol, number) or (number, symbol)
	// pair, so the standalone commodity symbol sits at either end.
	var commoditySym symbol.Symbol
	var price quantity.Quantity
	if toks[0].kind == tokSymbol {
		if q, _, err := p.parseQuantityTokens(toks, 1, lineNo); err == nil {
			commoditySym = symbol.Intern(toks[0].text)
			price = q
		}
	}
	if price.S.IsEmpty() && toks[2].kind == tokSymbol {
		if q, _, err := p.parseQuantityTokens(toks, 0, lineNo); err == nil {
			commoditySym = symbol.Intern(toks[2].text)
			price = q
		}
	}
	if price.S.IsEmpty() {
		return PriceDirective{}, lerrors.New(lerrors.Parse, p.pos(lineNo, 1), "malformed price directive")
	}
	return PriceDirective{Pos: p.pos(lineNo, 1), Date: date, Sym: commoditySym, Price: price}, nil
}

func looksLikeClock(s string) bool {
	return len(s) == 8 && s[2] == ':' && s[5] == ':'
}

// --- xact header --------------------------------------------------------

func (p *parser) parseXactHeader(content string, lineNo int) (*Xact, error) {
	fields := strings.Fields(content)
	if len(fields) == 0 {
		return nil, lerrors.New(lerrors.Parse, p.pos(lineNo, 1), "empty transaction header")
	}

	dateField := fields[0]
	rest := fields[1:]

	dateRaw := dateField
	var efRaw string
	if idx := strings.IndexByte(dateField, '='); idx >= 0 {
		dateRaw = dateField[:idx]
		efRaw = dateField[idx+1:]
	}
	txDate, err := parseDate(dateRaw, p.pos(lineNo, 1))
	if err != nil {
		return nil, err
	}
	var efDate *time.Time
	if efRaw != "" {
		t, err := parseDate(efRaw, p.pos(lineNo, 1))
		if err != nil {
			return nil, err
		}
		efDate = &t
	}

	x := &Xact{Pos: p.pos(lineNo, 1), TxDate: txDate, EfDate: efDate}

	i := 0
	if i < len(rest) && (rest[i] == "*" || rest[i] == "!") {
		if rest[i] == "*" {
			x.State = StateCleared
		} else {
			x.State = StatePending
		}
		i++
	}
	if i < len(rest) && strings.HasPrefix(rest[i], "(") && strings.HasSuffix(rest[i], ")") {
		x.Code = strings.TrimSuffix(strings.TrimPrefix(rest[i], "("), ")")
		i++
	}

	payeeFields := rest[i:]
	line := strings.Join(payeeFields, " ")
	payee, comment := splitComment(line)
	x.Payee = strings.TrimSpace(payee)
	tags, vtags, plain := parseTags(comment)
	x.Tags = tags
	x.VTags = vtags
	x.Comment = plain
	return x, nil
}

// splitComment separates body from an optional "; comment" suffix. A
// semicolon inside a quoted string does not count.
func splitComment(s string) (body, comment string) {
	inQuote := false
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '"':
			inQuote = !inQuote
		case ';':
			if !inQuote {
				return s[:i], strings.TrimSpace(s[i+1:])
			}
		}
	}
	return s, ""
}

// parseTags extracts ":tag1:tag2:" runs and "name: value" value-tags from
// a comment, returning the remaining plain text.
func parseTags(comment string) (tags []string, vtags map[string]string, plain string) {
	if comment == "" {
		return nil, nil, ""
	}
	var plainParts []string
	for _, field := range splitCommentFields(comment) {
		field = strings.TrimSpace(field)
		if field == "" {
			continue
		}
		if strings.HasPrefix(field, ":") && strings.HasSuffix(field, ":") && strings.Count(field, ":") >= 2 {
			for _, t := range strings.Split(strings.Trim(field, ":"), ":") {
				if t != "" {
					tags = append(tags, t)
				}
			}
			continue
		}
		if idx := strings.Index(field, ": "); idx >= 0 {
			if vtags == nil {
				vtags = map[string]string{}
			}
			vtags[field[:idx]] = field[idx+2:]
			continue
		}
		plainParts = append(plainParts, field)
	}
	return tags, vtags, strings.Join(plainParts, "  ")
}

// splitCommentFields splits a comment on runs of two-or-more spaces,
// matching how tags/value-tags are conventionally set off in source.
func splitCommentFields(s string) []string {
	return regexpSplit2Space(s)
}

// --- postings ------------------------------------------------------------

func (p *parser) parsePostingLine(content string, lineNo int) (*Posting, error) {
	st := StateNone
	if strings.HasPrefix(content, "* ") {
		st = StateCleared
		content = strings.TrimSpace(content[1:])
	} else if strings.HasPrefix(content, "! ") {
		st = StatePending
		content = strings.TrimSpace(content[1:])
	}

	body, comment := splitComment(content)
	fields := regexpSplit2Space(strings.TrimRight(body, " \t"))
	if len(fields) == 0 || fields[0] == "" {
		return nil, lerrors.New(lerrors.Parse, p.pos(lineNo, 1), "empty posting")
	}

	acct := account.AccName(strings.TrimSpace(fields[0]))
	pst := &Posting{Pos: p.pos(lineNo, 1), State: st, Account: acct}

	tags, vtags, plain := parseTags(comment)
	pst.Tags = tags
	pst.VTags = vtags
	pst.Comment = plain

	if len(fields) == 1 {
		pst.elided = true
		return pst, nil
	}

	rest := strings.Join(fields[1:], "  ")
	toks := scanAmountExpr(rest, 1)
	if len(toks) == 0 {
		pst.elided = true
		return pst, nil
	}

	idx := 0
	qty, next, err := p.parseQuantityTokens(toks, idx, lineNo)
	if err != nil {
		return nil, err
	}
	pst.Quantity = qty
	idx = next

	var haveLot, haveUPrice bool
	var lotPrice quantity.Quantity
	var lotKind LotPriceKind
	var lotIsTotal bool

	if idx < len(toks) {
		switch toks[idx].kind {
		case tokLBrace2:
			idx++
			lotIsTotal = true
			lotKind = LotStatic
			lp, n, err := p.parseQuantityTokens(toks, idx, lineNo)
			if err != nil {
				return nil, err
			}
			lotPrice = lp
			idx = n
			if idx < len(toks) && toks[idx].kind == tokRBrace2 {
				idx++
			}
			idx = skipLotTail(toks, idx, pst)
			haveLot = true
		case tokLBrace:
			idx++
			lotKind = LotStatic
			if idx < len(toks) && toks[idx].kind == tokEquals {
				idx++
			}
			lp, n, err := p.parseQuantityTokens(toks, idx, lineNo)
			if err != nil {
				return nil, err
			}
			lotPrice = lp
			idx = n
			if idx < len(toks) && toks[idx].kind == tokRBrace {
				idx++
			}
			idx = skipLotTail(toks, idx, pst)
			haveLot = true
		}
	}

	var uprice quantity.Quantity
	if idx < len(toks) {
		switch toks[idx].kind {
		case tokAt:
			idx++
			up, n, err := p.parseQuantityTokens(toks, idx, lineNo)
			if err != nil {
				return nil, err
			}
			uprice = up
			idx = n
			haveUPrice = true
		case tokAtAt:
			idx++
			total, n, err := p.parseQuantityTokens(toks, idx, lineNo)
			if err != nil {
				return nil, err
			}
			idx = n
			uprice = total.Div(qty.Q.Abs())
			haveUPrice = true
		}
	}

	if lotIsTotal {
		lotPrice = lotPrice.Div(qty.Q.Abs())
	}

	resolveDefaults(pst, qty, haveUPrice, uprice, haveLot, lotPrice, lotKind)
	return pst, nil
}

// skipLotTail consumes the "[date]" and "(note)" that may follow a lot
// spec's closing brace. The note is recorded on pst; the date tokens are
// consumed but not stored.
func skipLotTail(toks []token, idx int, pst *Posting) int {
	if idx < len(toks) && toks[idx].kind == tokLBracket {
		idx++
		var parts []string
		for idx < len(toks) && toks[idx].kind != tokRBracket {
			parts = append(parts, toks[idx].text)
			idx++
		}
		if idx < len(toks) {
			idx++
		}
		_ = parts // lot date left unparsed as a free date string is out of scope here
	}
	if idx < len(toks) && toks[idx].kind == tokLParen {
		idx++
		var parts []string
		for idx < len(toks) && toks[idx].kind != tokRParen {
			parts = append(parts, toks[idx].text)
			idx++
		}
		if idx < len(toks) {
			idx++
		}
		pst.LotNote = strings.Join(parts, "")
	}
	return idx
}

// parseQuantityTokens reads a (symbol, number) pair in either order
// starting at idx, returning the index just past it.
func (p *parser) parseQuantityTokens(toks []token, idx int, lineNo int) (quantity.Quantity, int, error) {
	if idx >= len(toks) {
		return quantity.Quantity{}, idx, lerrors.New(lerrors.Parse, p.pos(lineNo, 1), "expected amount")
	}
	a := toks[idx]
	if idx+1 < len(toks) {
		b := toks[idx+1]
		if a.kind == tokSymbol && b.kind == tokNumber {
			d, ok := parseNumber(b.text)
			if !ok {
				return quantity.Quantity{}, idx, lerrors.NewInvalidNumber(p.pos(lineNo, b.col), b.text)
			}
			return quantity.New(d, symbol.Intern(a.text)), idx + 2, nil
		}
		if a.kind == tokNumber && b.kind == tokSymbol {
			d, ok := parseNumber(a.text)
			if !ok {
				return quantity.Quantity{}, idx, lerrors.NewInvalidNumber(p.pos(lineNo, a.col), a.text)
			}
			return quantity.New(d, symbol.Intern(b.text)), idx + 2, nil
		}
	}
	if a.kind == tokNumber {
		d, ok := parseNumber(a.text)
		if !ok {
			return quantity.Quantity{}, idx, lerrors.NewInvalidNumber(p.pos(lineNo, a.col), a.text)
		}
		return quantity.New(d, symbol.Symbol(0)), idx + 1, nil
	}
	return quantity.Quantity{}, idx, lerrors.New(lerrors.Parse, p.pos(lineNo, a.col), "expected amount, found "+a.text)
}

// resolveDefaults fills (uprice, lot_uprice) per the default-resolution
// table: both given use as-is; only one given derives the other; neither
// given defaults both to one unit of the posting's own commodity.
func resolveDefaults(pst *Posting, qty quantity.Quantity, haveUPrice bool, uprice quantity.Quantity, haveLot bool, lotPrice quantity.Quantity, lotKind LotPriceKind) {
	switch {
	case haveUPrice && haveLot:
		pst.UPrice = uprice
		pst.LotUPrice = LotUPrice{Price: lotPrice, Kind: lotKind}
	case haveLot && !haveUPrice:
		pst.UPrice = lotPrice
		pst.LotUPrice = LotUPrice{Price: lotPrice, Kind: lotKind}
	case haveUPrice && !haveLot:
		pst.UPrice = uprice
		pst.LotUPrice = LotUPrice{Price: uprice, Kind: LotFloating}
	default:
		one := quantity.New(decimal.NewFromInt(1), qty.S)
		pst.UPrice = one
		pst.LotUPrice = LotUPrice{Price: one, Kind: LotFloating}
	}
}

// regexpSplit2Space splits s on runs of two-or-more spaces or any tabs,
// the conventional ledger field separator; a single space is kept as
// part of the current field (so "Whole Foods" stays one account
// segment).
func regexpSplit2Space(s string) []string {
	var fields []string
	var cur strings.Builder
	i, n := 0, len(s)
	for i < n {
		if s[i] == ' ' || s[i] == '\t' {
			j := i
			tab := false
			spaces := 0
			for j < n && (s[j] == ' ' || s[j] == '\t') {
				if s[j] == '\t' {
					tab = true
				}
				spaces++
				j++
			}
			if spaces >= 2 || tab {
				if cur.Len() > 0 {
					fields = append(fields, cur.String())
					cur.Reset()
				}
			} else {
				cur.WriteByte(' ')
			}
			i = j
			continue
		}
		cur.WriteByte(s[i])
		i++
	}
	if cur.Len() > 0 {
		fields = append(fields, cur.String())
	}
	return fields
}
