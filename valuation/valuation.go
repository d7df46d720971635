// Package valuation defines the Valuation selector and the capability
// interfaces baskets implement to collapse to a single-commodity Amount.
package valuation

import (
	"github.com/cortesi/ledger/amount"
	"github.com/cortesi/ledger/symbol"
)

// Valuation selects how a Lot's three unit-price channels collapse to an
// Amount. Chosen by the caller; affects only rendering, never parsing or
// balancing.
type Valuation int

const (
	// Quantity values a lot as its raw quantity (no price applied).
	Quantity Valuation = iota
	// Basis values a lot at its book/cost unit price.
	Basis
	// Market values a lot at its latest market unit price.
	Market
	// Historical values a lot at the unit price as of the posting date.
	Historical
)

func (v Valuation) String() string {
	switch v {
	case Quantity:
		return "quantity"
	case Basis:
		return "basis"
	case Market:
		return "market"
	case Historical:
		return "historical"
	default:
		return "unknown"
	}
}

// Parse maps a CLI-facing valuation flag to a Valuation. Unrecognized
// input resolves to Quantity, per spec.md §4.12's "all conflicts resolve
// to Quantity".
func Parse(s string) Valuation {
	switch s {
	case "basis", "B":
		return Basis
	case "market", "M":
		return Market
	case "historical", "H":
		return Historical
	case "quantity", "O":
		return Quantity
	default:
		return Quantity
	}
}

// Valuable is implemented by any basket that can collapse to a single
// Amount under a chosen Valuation.
type Valuable interface {
	ValuedIn(v Valuation) amount.Amount
}

// QValuable additionally supports valuing just the portion held in a
// single commodity, used to compute per-commodity gain.
type QValuable interface {
	Valuable
	SValuedIn(s symbol.Symbol, v Valuation) amount.Amount
}
