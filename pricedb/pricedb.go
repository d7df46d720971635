// Package pricedb implements the symbol-keyed time-ordered price map
// supporting "latest" and "as-of" queries with backward lookup.
package pricedb

import (
	"sort"
	"time"

	"github.com/cortesi/ledger/journal"
	"github.com/cortesi/ledger/quantity"
	"github.com/cortesi/ledger/symbol"
)

// pricemap holds one symbol's price history, dates ascending, in lockstep
// with prices.
type pricemap struct {
	dates  []time.Time
	prices []quantity.Quantity
}

// PriceDB is symbol -> sorted(datetime -> Quantity).
type PriceDB struct {
	bySymbol map[symbol.Symbol]*pricemap
}

// New returns an empty price database.
func New() *PriceDB {
	return &PriceDB{bySymbol: map[symbol.Symbol]*pricemap{}}
}

// FromJournal builds a PriceDB from a journal's price information: every
// posting's own per-unit price, plus every standalone "P" directive.
// Postings are inserted first so that on a duplicate (symbol, date) key a
// directive wins, matching a journal's intent to override whatever a
// posting's price implied.
func FromJournal(j *journal.Journal) *PriceDB {
	db := New()
	for _, x := range j.Xacts {
		date := x.Date()
		date = time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
		for _, p := range x.Postings {
			if !p.HasUPrice() {
				continue
			}
			db.Upsert(p.Quantity.S, date, p.UPrice)
		}
	}
	for _, d := range j.Prices {
		db.Upsert(d.Sym, d.Date, d.Price)
	}
	return db
}

// Merge upserts every entry of other into p. On a duplicate (symbol,
// date) key, other's entry wins, so callers should merge an explicitly
// loaded price-db file on top of a journal-derived one to let the file
// override prices the journal itself implied.
func (p *PriceDB) Merge(other *PriceDB) {
	for sym, pm := range other.bySymbol {
		for i, t := range pm.dates {
			p.Upsert(sym, t, pm.prices[i])
		}
	}
}

// Upsert records that at time t, one unit of sym was worth price. On a
// duplicate timestamp for the same symbol, the last write wins.
func (p *PriceDB) Upsert(sym symbol.Symbol, t time.Time, price quantity.Quantity) {
	pm, ok := p.bySymbol[sym]
	if !ok {
		pm = &pricemap{}
		p.bySymbol[sym] = pm
	}

	i := sort.Search(len(pm.dates), func(i int) bool { return !pm.dates[i].Before(t) })
	if i < len(pm.dates) && pm.dates[i].Equal(t) {
		pm.prices[i] = price
		return
	}

	pm.dates = append(pm.dates, time.Time{})
	copy(pm.dates[i+1:], pm.dates[i:])
	pm.dates[i] = t

	pm.prices = append(pm.prices, quantity.Quantity{})
	copy(pm.prices[i+1:], pm.prices[i:])
	pm.prices[i] = price
}

// LatestPrice returns the greatest-keyed entry for sym.
func (p *PriceDB) LatestPrice(sym symbol.Symbol) (quantity.Quantity, bool) {
	pm, ok := p.bySymbol[sym]
	if !ok || len(pm.dates) == 0 {
		return quantity.Quantity{}, false
	}
	return pm.prices[len(pm.prices)-1], true
}

// PriceAsOf returns the entry with the greatest key <= t, or false if t
// precedes every entry for sym (or sym was never seen).
func (p *PriceDB) PriceAsOf(sym symbol.Symbol, t time.Time) (quantity.Quantity, bool) {
	pm, ok := p.bySymbol[sym]
	if !ok || len(pm.dates) == 0 {
		return quantity.Quantity{}, false
	}

	// Index of first date > t.
	i := sort.Search(len(pm.dates), func(i int) bool { return pm.dates[i].After(t) })
	if i == 0 {
		return quantity.Quantity{}, false
	}
	return pm.prices[i-1], true
}

// HasPrice reports whether sym has any price history at all.
func (p *PriceDB) HasPrice(sym symbol.Symbol) bool {
	pm, ok := p.bySymbol[sym]
	return ok && len(pm.dates) > 0
}
