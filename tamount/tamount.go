// Package tamount implements time-indexed baskets: ordered date -> B maps
// with pointwise arithmetic.
package tamount

import (
	"time"

	"golang.org/x/exp/slices"
)

// Basket is any type with pointwise Add/Sub and a zero value, the
// constraint satisfied by amount.Amount and lot.Holdings.
type Basket[T any] interface {
	Add(T) T
	Sub(T) T
	IsZero() bool
}

// TAmount is an ordered mapping date -> B.
type TAmount[B Basket[B]] struct {
	entries map[time.Time]B
}

// New builds a TAmount with a single entry at d.
func New[B Basket[B]](d time.Time, b B) TAmount[B] {
	return TAmount[B]{entries: map[time.Time]B{d: b}}
}

// Empty returns a TAmount with no entries.
func Empty[B Basket[B]]() TAmount[B] {
	return TAmount[B]{}
}

func (t TAmount[B]) clone() TAmount[B] {
	m := make(map[time.Time]B, len(t.entries))
	for k, v := range t.entries {
		m[k] = v
	}
	return TAmount[B]{entries: m}
}

// Add combines two time-indexed baskets pointwise; a date present in only
// one side contributes its own value combined with the zero value of B.
func (t TAmount[B]) Add(rhs TAmount[B]) TAmount[B] {
	res := t.clone()
	if res.entries == nil {
		res.entries = map[time.Time]B{}
	}
	for d, b := range rhs.entries {
		if existing, ok := res.entries[d]; ok {
			res.entries[d] = existing.Add(b)
		} else {
			res.entries[d] = b
		}
	}
	return res
}

// Sub subtracts rhs from t pointwise by date.
func (t TAmount[B]) Sub(rhs TAmount[B]) TAmount[B] {
	res := t.clone()
	if res.entries == nil {
		res.entries = map[time.Time]B{}
	}
	for d, b := range rhs.entries {
		if existing, ok := res.entries[d]; ok {
			res.entries[d] = existing.Sub(b)
		} else {
			var zero B
			res.entries[d] = zero.Sub(b)
		}
	}
	return res
}

// IsZero reports whether every entry (if any) is itself zero.
func (t TAmount[B]) IsZero() bool {
	for _, b := range t.entries {
		if !b.IsZero() {
			return false
		}
	}
	return true
}

// At returns the basket at d and whether an entry exists there.
func (t TAmount[B]) At(d time.Time) (B, bool) {
	b, ok := t.entries[d]
	return b, ok
}

// Dates returns the keys in ascending order.
func (t TAmount[B]) Dates() []time.Time {
	ds := make([]time.Time, 0, len(t.entries))
	for d := range t.entries {
		ds = append(ds, d)
	}
	slices.SortFunc(ds, func(a, b time.Time) int {
		if a.Before(b) {
			return -1
		}
		if a.After(b) {
			return 1
		}
		return 0
	})
	return ds
}

// Entry pairs a date with its basket.
type Entry[B any] struct {
	Date   time.Time
	Basket B
}

// IterBaskets yields (date, basket) pairs in ascending date order.
func (t TAmount[B]) IterBaskets() []Entry[B] {
	ds := t.Dates()
	out := make([]Entry[B], 0, len(ds))
	for _, d := range ds {
		out = append(out, Entry[B]{Date: d, Basket: t.entries[d]})
	}
	return out
}
