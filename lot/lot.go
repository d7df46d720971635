// Package lot implements Lot (a single-commodity quantity carrying three
// unit-price channels) and Holdings (a symbol -> Lot map), combined by
// quantity-weighted average on add/subtract.
package lot

import (
	"github.com/shopspring/decimal"

	"github.com/cortesi/ledger/amount"
	"github.com/cortesi/ledger/quantity"
	"github.com/cortesi/ledger/symbol"
	"github.com/cortesi/ledger/valuation"
)

// Lot is qty.Q units of qty.S, carrying market, historical, and book
// (basis) per-unit prices.
type Lot struct {
	Qty     quantity.Quantity
	MUPrice amount.Amount // market (latest)
	HUPrice amount.Amount // historical (as of acquisition date)
	BUPrice amount.Amount // book / basis
}

// New builds a lot with the same unit price on all three channels, the
// common case when a posting carries no separate market/historical data
// of its own.
func New(qty quantity.Quantity, uprice amount.Amount) Lot {
	return Lot{Qty: qty, MUPrice: uprice, HUPrice: uprice, BUPrice: uprice}
}

func (l Lot) zero() Lot {
	return Lot{Qty: quantity.New(decimal.Zero, l.Qty.S)}
}

func weightedAverage(aPrice, bPrice amount.Amount, aQty, bQty, tot quantity.Quantity) amount.Amount {
	return aPrice.Mul(aQty.Q).Add(bPrice.Mul(bQty.Q)).Div(tot.Q)
}

// Add combines two lots of (conventionally) the same symbol by
// quantity-weighted average of each unit-price channel. If the resulting
// quantity is zero, all three channels reset to the empty Amount.
func (a Lot) Add(b Lot) Lot {
	tot := quantity.New(a.Qty.Q.Add(b.Qty.Q), a.Qty.S)
	if tot.IsZero() {
		return a.zero()
	}
	return Lot{
		Qty:     tot,
		MUPrice: weightedAverage(a.MUPrice, b.MUPrice, a.Qty, b.Qty, tot),
		HUPrice: weightedAverage(a.HUPrice, b.HUPrice, a.Qty, b.Qty, tot),
		BUPrice: weightedAverage(a.BUPrice, b.BUPrice, a.Qty, b.Qty, tot),
	}
}

// Sub combines two lots with subtraction in both numerator and
// denominator, analogous to Add.
func (a Lot) Sub(b Lot) Lot {
	tot := quantity.New(a.Qty.Q.Sub(b.Qty.Q), a.Qty.S)
	if tot.IsZero() {
		return a.zero()
	}
	negB := quantity.New(b.Qty.Q.Neg(), b.Qty.S)
	return Lot{
		Qty:     tot,
		MUPrice: weightedAverage(a.MUPrice, b.MUPrice, a.Qty, negB, tot),
		HUPrice: weightedAverage(a.HUPrice, b.HUPrice, a.Qty, negB, tot),
		BUPrice: weightedAverage(a.BUPrice, b.BUPrice, a.Qty, negB, tot),
	}
}

// ValuedIn collapses the lot to an Amount under the chosen scheme.
func (l Lot) ValuedIn(v valuation.Valuation) amount.Amount {
	q := l.Qty.Q
	switch v {
	case valuation.Quantity:
		return amount.FromQuantity(l.Qty)
	case valuation.Market:
		return l.MUPrice.Mul(q)
	case valuation.Historical:
		return l.HUPrice.Mul(q)
	case valuation.Basis:
		return l.BUPrice.Mul(q)
	default:
		return amount.Zero()
	}
}

var _ valuation.Valuable = Lot{}

// Holdings maps symbol -> Lot, invariant "no symbol maps to a
// zero-quantity lot".
type Holdings struct {
	lots map[symbol.Symbol]Lot
}

// NewHoldings returns the empty Holdings set.
func NewHoldings() Holdings {
	return Holdings{}
}

func (h Holdings) clone() Holdings {
	if len(h.lots) == 0 {
		return Holdings{}
	}
	m := make(map[symbol.Symbol]Lot, len(h.lots))
	for k, v := range h.lots {
		m[k] = v
	}
	return Holdings{lots: m}
}

func (h *Holdings) removeZero() {
	for k, l := range h.lots {
		if l.Qty.IsZero() {
			delete(h.lots, k)
		}
	}
}

// AddLot adds a single lot into the holdings, combining with any existing
// lot of the same symbol by weighted average.
func (h Holdings) AddLot(l Lot) Holdings {
	res := h.clone()
	if res.lots == nil {
		res.lots = map[symbol.Symbol]Lot{}
	}
	if existing, ok := res.lots[l.Qty.S]; ok {
		res.lots[l.Qty.S] = existing.Add(l)
	} else {
		res.lots[l.Qty.S] = l
	}
	res.removeZero()
	return res
}

// Add merges rhs into h lot-by-lot, satisfying tamount.Basket[Holdings].
func (h Holdings) Add(rhs Holdings) Holdings {
	res := h.clone()
	if res.lots == nil {
		res.lots = map[symbol.Symbol]Lot{}
	}
	for s, l := range rhs.lots {
		if existing, ok := res.lots[s]; ok {
			res.lots[s] = existing.Add(l)
		} else {
			res.lots[s] = l
		}
	}
	res.removeZero()
	return res
}

// Sub subtracts rhs from h lot-by-lot, satisfying tamount.Basket[Holdings];
// a symbol present only in rhs contributes its negation.
func (h Holdings) Sub(rhs Holdings) Holdings {
	res := h.clone()
	if res.lots == nil {
		res.lots = map[symbol.Symbol]Lot{}
	}
	for s, l := range rhs.lots {
		if existing, ok := res.lots[s]; ok {
			res.lots[s] = existing.Sub(l)
		} else {
			res.lots[s] = Lot{Qty: quantity.New(l.Qty.Q.Neg(), l.Qty.S), MUPrice: l.MUPrice, HUPrice: l.HUPrice, BUPrice: l.BUPrice}
		}
	}
	res.removeZero()
	return res
}

// IsZero reports whether every held lot has zero quantity (equivalently,
// the holdings set is empty after pruning).
func (h Holdings) IsZero() bool {
	return len(h.lots) == 0
}

// Get returns the lot for s and whether it is present.
func (h Holdings) Get(s symbol.Symbol) (Lot, bool) {
	l, ok := h.lots[s]
	return l, ok
}

// IterLots returns the held lots in unspecified order.
func (h Holdings) IterLots() []Lot {
	out := make([]Lot, 0, len(h.lots))
	for _, l := range h.lots {
		out = append(out, l)
	}
	return out
}

// ValuedIn collapses every lot to an Amount under v and sums them.
func (h Holdings) ValuedIn(v valuation.Valuation) amount.Amount {
	res := amount.Zero()
	for _, l := range h.lots {
		res = res.Add(l.ValuedIn(v))
	}
	return res
}

// SValuedIn values only the lot held in symbol s, zero Amount if absent.
func (h Holdings) SValuedIn(s symbol.Symbol, v valuation.Valuation) amount.Amount {
	if l, ok := h.lots[s]; ok {
		return l.ValuedIn(v)
	}
	return amount.Zero()
}

var _ valuation.QValuable = Holdings{}

// Gain computes (valued_in(v) - valued_in(Basis)) / valued_in(Basis) for
// the single commodity s, defined only when both sides collapse to a
// single quantity in the same commodity.
func (h Holdings) Gain(s symbol.Symbol, v valuation.Valuation) (decimal.Decimal, bool) {
	num := h.SValuedIn(s, v)
	den := h.SValuedIn(s, valuation.Basis)

	nq, ok := num.ToQuantity()
	if !ok {
		return decimal.Zero, false
	}
	dq, ok := den.ToQuantity()
	if !ok || dq.S != nq.S || dq.IsZero() {
		return decimal.Zero, false
	}
	return nq.Q.Sub(dq.Q).Div(dq.Q), true
}
