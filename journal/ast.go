package journal

import (
	"time"

	"github.com/cortesi/ledger/account"
	lerrors "github.com/cortesi/ledger/errors"
	"github.com/cortesi/ledger/quantity"
	"github.com/cortesi/ledger/symbol"
)

// Position locates a parsed construct in its source file.
type Position = lerrors.Position

// State is a transaction or posting's cleared/pending marker.
type State int

const (
	StateNone State = iota
	StateCleared
	StatePending
)

func (s State) String() string {
	switch s {
	case StateCleared:
		return "*"
	case StatePending:
		return "!"
	default:
		return ""
	}
}

// LotPriceKind distinguishes a lot unit-price fixed at acquisition
// ("static", from {uprice}) from one meant to float with the market
// ("floating", inferred from a posting's own @ price when no lot spec
// was given).
type LotPriceKind int

const (
	LotStatic LotPriceKind = iota
	LotFloating
)

// LotUPrice is a posting's lot-basis unit price, together with whether it
// was given explicitly or defaulted from the posting's own price.
type LotUPrice struct {
	Price quantity.Quantity
	Kind  LotPriceKind
}

// Posting is one leg of a transaction, after default-resolution (spec.md
// §4.7 point 1) has filled in any implicit price/lot fields.
type Posting struct {
	Pos       Position
	State     State
	Account   account.AccName
	Quantity  quantity.Quantity
	UPrice    quantity.Quantity // per-unit price; one unit of Quantity's own commodity when none was given or inferred
	LotUPrice LotUPrice
	LotDate   *time.Time
	LotNote   string
	Comment   string
	Tags      []string
	VTags     map[string]string

	// elided marks a posting that omitted its amount in source and had it
	// filled in by the balancing pass.
	elided bool
}

// HasUPrice reports whether the posting's unit price names a commodity.
// After parsing this is false only for a posting whose quantity has no
// commodity symbol, since a defaulted price is one unit of that symbol.
func (p *Posting) HasUPrice() bool {
	return !p.UPrice.S.IsEmpty()
}

// Xact is one transaction: a date, a narration, and a balanced set of
// postings.
type Xact struct {
	Pos       Position
	State     State
	Code      string
	TxDate    time.Time
	EfDate    *time.Time // secondary "effective" date, from DATE=EFDATE
	Payee     string
	Comment   string
	Tags      []string
	VTags     map[string]string
	Postings  []*Posting
	// Primary is the commodity the balancing pass inferred as this
	// transaction's principal currency when its postings leave a
	// two-commodity residual; postings in the other commodity that gave no
	// conversion price are priced in it. The empty symbol otherwise.
	Primary symbol.Symbol
}

// Date returns the date that ordering and as-of queries use: the
// effective date when present, else TxDate.
func (x *Xact) Date() time.Time {
	if x.EfDate != nil {
		return *x.EfDate
	}
	return x.TxDate
}

// PriceDirective is a standalone "P" market-price record.
type PriceDirective struct {
	Pos   Position
	Date  time.Time
	Sym   symbol.Symbol
	Price quantity.Quantity
}

// Journal is a fully parsed, balanced, file (or concatenation of files).
type Journal struct {
	Xacts  []*Xact
	Prices []PriceDirective
}

// XactsHead returns the first n transactions in file order (or fewer, if
// the journal is shorter).
func (j *Journal) XactsHead(n int) []*Xact {
	if n > len(j.Xacts) {
		n = len(j.Xacts)
	}
	return j.Xacts[:n]
}

// XactsTail returns the last n transactions in file order.
func (j *Journal) XactsTail(n int) []*Xact {
	if n > len(j.Xacts) {
		n = len(j.Xacts)
	}
	return j.Xacts[len(j.Xacts)-n:]
}

// FilterByDate returns a Journal containing only the xacts and price
// directives dated within the inclusive [from, to] window; a nil bound
// is open on that side. Prices and xacts are filtered independently on
// their own Date field.
func (j *Journal) FilterByDate(from, to *time.Time) *Journal {
	out := &Journal{}
	for _, x := range j.Xacts {
		d := x.Date()
		if from != nil && d.Before(*from) {
			continue
		}
		if to != nil && d.After(*to) {
			continue
		}
		out.Xacts = append(out.Xacts, x)
	}
	for _, p := range j.Prices {
		if from != nil && p.Date.Before(*from) {
			continue
		}
		if to != nil && p.Date.After(*to) {
			continue
		}
		out.Prices = append(out.Prices, p)
	}
	return out
}

// MarketPrices returns every inline "P" directive parsed from the
// journal.
func (j *Journal) MarketPrices() []PriceDirective {
	return j.Prices
}
