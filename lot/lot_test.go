package lot_test

import (
	"testing"

	"github.com/alecthomas/assert/v2"
	"github.com/shopspring/decimal"

	"github.com/cortesi/ledger/amount"
	"github.com/cortesi/ledger/lot"
	"github.com/cortesi/ledger/quantity"
	"github.com/cortesi/ledger/symbol"
	"github.com/cortesi/ledger/valuation"
)

func TestWeightedAverageCombine(t *testing.T) {
	ltm := symbol.Intern("LTM")
	usd := symbol.Intern("$")

	a := lot.New(quantity.New(decimal.NewFromInt(10), ltm), amount.FromQuantity(quantity.New(decimal.NewFromInt(20), usd)))
	b := lot.New(quantity.New(decimal.NewFromInt(5), ltm), amount.FromQuantity(quantity.New(decimal.NewFromInt(30), usd)))

	combined := a.Add(b)

	expectedQty := decimal.NewFromInt(15)
	assert.True(t, combined.Qty.Q.Equal(expectedQty))

	// (20*10 + 30*5) / 15 = (200+150)/15 = 350/15
	want := decimal.NewFromInt(200).Add(decimal.NewFromInt(150)).Div(decimal.NewFromInt(15))
	got, ok := combined.MUPrice.ToQuantity()
	assert.True(t, ok)
	assert.True(t, got.Q.Equal(want))
}

func TestCombineToZeroResetsPrices(t *testing.T) {
	ltm := symbol.Intern("LTM")
	usd := symbol.Intern("$")

	a := lot.New(quantity.New(decimal.NewFromInt(10), ltm), amount.FromQuantity(quantity.New(decimal.NewFromInt(20), usd)))
	b := lot.New(quantity.New(decimal.NewFromInt(-10), ltm), amount.FromQuantity(quantity.New(decimal.NewFromInt(50), usd)))

	zero := a.Add(b)
	assert.True(t, zero.Qty.IsZero())
	assert.True(t, zero.MUPrice.IsZero())
	assert.True(t, zero.HUPrice.IsZero())
	assert.True(t, zero.BUPrice.IsZero())
}

func TestHoldingsAddPrunesZero(t *testing.T) {
	ltm := symbol.Intern("LTM")
	usd := symbol.Intern("$")

	h := lot.NewHoldings()
	h = h.AddLot(lot.New(quantity.New(decimal.NewFromInt(10), ltm), amount.FromQuantity(quantity.New(decimal.NewFromInt(20), usd))))
	h = h.AddLot(lot.New(quantity.New(decimal.NewFromInt(-10), ltm), amount.FromQuantity(quantity.New(decimal.NewFromInt(20), usd))))

	assert.True(t, h.IsZero())
}

func TestValuedIn(t *testing.T) {
	ltm := symbol.Intern("LTM")
	usd := symbol.Intern("$")

	l := lot.Lot{
		Qty:     quantity.New(decimal.NewFromInt(10), ltm),
		MUPrice: amount.FromQuantity(quantity.New(decimal.NewFromInt(23), usd)),
		HUPrice: amount.FromQuantity(quantity.New(decimal.NewFromInt(20), usd)),
		BUPrice: amount.FromQuantity(quantity.New(decimal.NewFromInt(18), usd)),
	}

	q, ok := l.ValuedIn(valuation.Market).ToQuantity()
	assert.True(t, ok)
	assert.True(t, q.Q.Equal(decimal.NewFromInt(230)))

	q, ok = l.ValuedIn(valuation.Basis).ToQuantity()
	assert.True(t, ok)
	assert.True(t, q.Q.Equal(decimal.NewFromInt(180)))
}
