// Package quantity implements (decimal, symbol) pairs and their algebra.
package quantity

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/cortesi/ledger/symbol"
)

// Quantity is q units of commodity s. Sign lives in Q: debits are
// positive, credits negative.
type Quantity struct {
	Q decimal.Decimal
	S symbol.Symbol
}

// New builds a Quantity from a decimal and a symbol.
func New(q decimal.Decimal, s symbol.Symbol) Quantity {
	return Quantity{Q: q, S: s}
}

// Neg returns -q in the same commodity.
func (q Quantity) Neg() Quantity {
	return Quantity{Q: q.Q.Neg(), S: q.S}
}

// Abs returns the quantity with a non-negative magnitude.
func (q Quantity) Abs() Quantity {
	return Quantity{Q: q.Q.Abs(), S: q.S}
}

// ToUnit returns 1 unit of the same commodity as q.
func (q Quantity) ToUnit() Quantity {
	return Quantity{Q: decimal.NewFromInt(1), S: q.S}
}

// Mul scales q by a decimal, same commodity.
func (q Quantity) Mul(d decimal.Decimal) Quantity {
	return Quantity{Q: q.Q.Mul(d), S: q.S}
}

// Div divides q by a decimal, same commodity.
func (q Quantity) Div(d decimal.Decimal) Quantity {
	return Quantity{Q: q.Q.Div(d), S: q.S}
}

// DivQuantity divides q's signed decimal by rhs's, producing a rate: a
// decimal with no attached commodity on its own, but conventionally
// interpreted by the caller as "units of q.S per unit of rhs.S".
func (q Quantity) DivQuantity(rhs Quantity) decimal.Decimal {
	return q.Q.Div(rhs.Q)
}

// IsZero reports whether the magnitude is zero.
func (q Quantity) IsZero() bool {
	return q.Q.IsZero()
}

func (q Quantity) String() string {
	return fmt.Sprintf("%s %s", q.Q.String(), q.S)
}
