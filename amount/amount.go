// Package amount implements multi-commodity bags: symbol -> decimal
// mappings with the invariant that no key ever maps to a zero value.
package amount

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/cortesi/ledger/quantity"
	"github.com/cortesi/ledger/symbol"
)

// Amount is a bag of commodity quantities.
type Amount struct {
	qs map[symbol.Symbol]decimal.Decimal
}

// Zero is the empty amount (arity 0).
func Zero() Amount {
	return Amount{}
}

// FromQuantity builds a single-commodity Amount. A zero quantity yields
// the zero Amount (arity 0), preserving the "no zero key" invariant.
func FromQuantity(q quantity.Quantity) Amount {
	if q.Q.IsZero() {
		return Zero()
	}
	return Amount{qs: map[symbol.Symbol]decimal.Decimal{q.S: q.Q}}
}

func (a Amount) clone() Amount {
	if len(a.qs) == 0 {
		return Amount{}
	}
	m := make(map[symbol.Symbol]decimal.Decimal, len(a.qs))
	for k, v := range a.qs {
		m[k] = v
	}
	return Amount{qs: m}
}

func (a *Amount) removeZeros() {
	for k, v := range a.qs {
		if v.IsZero() {
			delete(a.qs, k)
		}
	}
}

// Add returns a+b.
func (a Amount) Add(b Amount) Amount {
	res := a.clone()
	if res.qs == nil {
		res.qs = map[symbol.Symbol]decimal.Decimal{}
	}
	for s, q := range b.qs {
		res.qs[s] = res.qs[s].Add(q)
	}
	res.removeZeros()
	return res
}

// Sub returns a-b.
func (a Amount) Sub(b Amount) Amount {
	res := a.clone()
	if res.qs == nil {
		res.qs = map[symbol.Symbol]decimal.Decimal{}
	}
	for s, q := range b.qs {
		res.qs[s] = res.qs[s].Sub(q)
	}
	res.removeZeros()
	return res
}

// AddQuantity returns a + the given quantity, same-symbol widening.
func (a Amount) AddQuantity(q quantity.Quantity) Amount {
	return a.Add(FromQuantity(q))
}

// SubQuantity returns a - the given quantity.
func (a Amount) SubQuantity(q quantity.Quantity) Amount {
	return a.Sub(FromQuantity(q))
}

// AddQuantities widens q1+q2 into an Amount, per spec.md §3's "arithmetic
// between two quantities of different symbols widens to an Amount".
func AddQuantities(q1, q2 quantity.Quantity) Amount {
	return FromQuantity(q1).AddQuantity(q2)
}

// SubQuantities widens q1-q2 into an Amount.
func SubQuantities(q1, q2 quantity.Quantity) Amount {
	return FromQuantity(q1).SubQuantity(q2)
}

// Mul scales every entry by d.
func (a Amount) Mul(d decimal.Decimal) Amount {
	res := a.clone()
	for s, q := range res.qs {
		res.qs[s] = q.Mul(d)
	}
	res.removeZeros()
	return res
}

// Div scales every entry by 1/d.
func (a Amount) Div(d decimal.Decimal) Amount {
	res := a.clone()
	for s, q := range res.qs {
		res.qs[s] = q.Div(d)
	}
	res.removeZeros()
	return res
}

// IsZero reports arity 0.
func (a Amount) IsZero() bool {
	return len(a.qs) == 0
}

// Arity is the number of non-zero commodities.
func (a Amount) Arity() int {
	return len(a.qs)
}

// IterQuantities returns the entries as Quantity values, in unspecified
// order; callers needing a stable order should sort by symbol name.
func (a Amount) IterQuantities() []quantity.Quantity {
	out := make([]quantity.Quantity, 0, len(a.qs))
	for s, q := range a.qs {
		out = append(out, quantity.New(q, s))
	}
	return out
}

// ToQuantity converts a single-commodity Amount back to a Quantity. Only
// defined at arity 1; the second return is false otherwise.
func (a Amount) ToQuantity() (quantity.Quantity, bool) {
	if len(a.qs) != 1 {
		return quantity.Quantity{}, false
	}
	for s, q := range a.qs {
		return quantity.New(q, s), true
	}
	panic("unreachable")
}

// Get returns the decimal quantity of a single commodity, zero if absent.
func (a Amount) Get(s symbol.Symbol) decimal.Decimal {
	if a.qs == nil {
		return decimal.Zero
	}
	return a.qs[s]
}

// MarshalJSON renders the bag as {"symbol": "decimal", ...}, sorted by
// symbol for stable output.
func (a Amount) MarshalJSON() ([]byte, error) {
	m := make(map[string]string, len(a.qs))
	for s, q := range a.qs {
		m[s.String()] = q.String()
	}
	return json.Marshal(m)
}

func (a Amount) String() string {
	if len(a.qs) == 0 {
		return "0"
	}
	syms := make([]symbol.Symbol, 0, len(a.qs))
	for s := range a.qs {
		syms = append(syms, s)
	}
	sort.Slice(syms, func(i, j int) bool { return syms[i].String() < syms[j].String() })
	parts := make([]string, 0, len(syms))
	for _, s := range syms {
		parts = append(parts, fmt.Sprintf("%s %s", a.qs[s].String(), s))
	}
	return strings.Join(parts, ", ")
}
