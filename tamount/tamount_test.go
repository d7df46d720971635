package tamount_test

import (
	"testing"
	"time"

	"github.com/alecthomas/assert/v2"
	"github.com/shopspring/decimal"

	"github.com/cortesi/ledger/amount"
	"github.com/cortesi/ledger/quantity"
	"github.com/cortesi/ledger/symbol"
	"github.com/cortesi/ledger/tamount"
)

func TestPointwiseAdd(t *testing.T) {
	usd := symbol.Intern("$")
	d1 := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	d2 := time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC)

	a := tamount.New[amount.Amount](d1, amount.FromQuantity(quantity.New(decimal.NewFromInt(10), usd)))
	b := tamount.New[amount.Amount](d2, amount.FromQuantity(quantity.New(decimal.NewFromInt(5), usd)))

	sum := a.Add(b)
	dates := sum.Dates()
	assert.Equal(t, 2, len(dates))
	assert.True(t, dates[0].Equal(d1))
	assert.True(t, dates[1].Equal(d2))

	v1, ok := sum.At(d1)
	assert.True(t, ok)
	q, ok := v1.ToQuantity()
	assert.True(t, ok)
	assert.True(t, q.Q.Equal(decimal.NewFromInt(10)))
}

func TestIterBasketsAscending(t *testing.T) {
	usd := symbol.Intern("$")
	d1 := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	d2 := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	ta := tamount.New[amount.Amount](d1, amount.FromQuantity(quantity.New(decimal.NewFromInt(1), usd)))
	ta = ta.Add(tamount.New[amount.Amount](d2, amount.FromQuantity(quantity.New(decimal.NewFromInt(2), usd))))

	entries := ta.IterBaskets()
	assert.Equal(t, 2, len(entries))
	assert.True(t, entries[0].Date.Before(entries[1].Date))
}

func TestIsZero(t *testing.T) {
	usd := symbol.Intern("$")
	d1 := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	assert.True(t, tamount.Empty[amount.Amount]().IsZero())

	nonZero := tamount.New[amount.Amount](d1, amount.FromQuantity(quantity.New(decimal.NewFromInt(1), usd)))
	assert.False(t, nonZero.IsZero())

	zeroEntry := tamount.New[amount.Amount](d1, amount.Zero())
	assert.True(t, zeroEntry.IsZero())
}
