package quantity_test

import (
	"testing"

	"github.com/alecthomas/assert/v2"
	"github.com/shopspring/decimal"

	"github.com/cortesi/ledger/quantity"
	"github.com/cortesi/ledger/symbol"
)

func TestToUnit(t *testing.T) {
	usd := symbol.Intern("$")
	q := quantity.New(decimal.NewFromInt(42), usd)
	u := q.ToUnit()
	assert.True(t, u.Q.Equal(decimal.NewFromInt(1)))
	assert.Equal(t, usd, u.S)
}

func TestNegAbs(t *testing.T) {
	usd := symbol.Intern("$")
	q := quantity.New(decimal.NewFromInt(-5), usd)
	assert.True(t, q.Neg().Q.Equal(decimal.NewFromInt(5)))
	assert.True(t, q.Abs().Q.Equal(decimal.NewFromInt(5)))
}

func TestDivQuantity(t *testing.T) {
	x := symbol.Intern("X")
	y := symbol.Intern("Y")
	a := quantity.New(decimal.NewFromInt(1), x)
	b := quantity.New(decimal.NewFromInt(-1), y)
	rate := a.DivQuantity(b)
	assert.True(t, rate.Equal(decimal.NewFromInt(-1)))
}
