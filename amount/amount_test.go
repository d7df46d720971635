package amount_test

import (
	"testing"

	"github.com/alecthomas/assert/v2"
	"github.com/shopspring/decimal"

	"github.com/cortesi/ledger/amount"
	"github.com/cortesi/ledger/quantity"
	"github.com/cortesi/ledger/symbol"
)

func TestAlgebraLaws(t *testing.T) {
	usd := symbol.Intern("$")
	eur := symbol.Intern("EUR")

	a := amount.FromQuantity(quantity.New(decimal.NewFromInt(10), usd))
	b := amount.FromQuantity(quantity.New(decimal.NewFromInt(5), eur))
	c := amount.FromQuantity(quantity.New(decimal.NewFromInt(-3), usd))

	assert.Equal(t, a.Add(b), b.Add(a))
	assert.Equal(t, a.Add(b).Add(c), a.Add(b.Add(c)))

	zero := a.Add(a.Mul(decimal.NewFromInt(-1)))
	assert.Equal(t, 0, zero.Arity())
	assert.True(t, zero.IsZero())
}

func TestNoZeroKeyInvariant(t *testing.T) {
	usd := symbol.Intern("$")
	a := amount.FromQuantity(quantity.New(decimal.NewFromInt(10), usd))
	b := amount.FromQuantity(quantity.New(decimal.NewFromInt(-10), usd))
	sum := a.Add(b)
	assert.Equal(t, 0, sum.Arity())
}

func TestToQuantityArity(t *testing.T) {
	usd := symbol.Intern("$")
	eur := symbol.Intern("EUR")
	a := amount.FromQuantity(quantity.New(decimal.NewFromInt(10), usd))
	q, ok := a.ToQuantity()
	assert.True(t, ok)
	assert.Equal(t, usd, q.S)

	b := a.AddQuantity(quantity.New(decimal.NewFromInt(5), eur))
	_, ok = b.ToQuantity()
	assert.False(t, ok)
}

func TestZeroQuantityYieldsZeroAmount(t *testing.T) {
	usd := symbol.Intern("$")
	a := amount.FromQuantity(quantity.New(decimal.Zero, usd))
	assert.True(t, a.IsZero())
}

func TestMarshalJSON(t *testing.T) {
	usd := symbol.Intern("$")
	a := amount.FromQuantity(quantity.New(decimal.NewFromInt(10), usd))
	data, err := a.MarshalJSON()
	assert.NoError(t, err)
	assert.Equal(t, `{"$":"10"}`, string(data))
}
