package journal_test

import (
	"testing"
	"time"

	"github.com/alecthomas/assert/v2"
	"github.com/shopspring/decimal"

	lerrors "github.com/cortesi/ledger/errors"
	"github.com/cortesi/ledger/journal"
	"github.com/cortesi/ledger/symbol"
)

func mustParse(t *testing.T, src string) *journal.Journal {
	t.Helper()
	j, err := journal.Parse("test.journal", src)
	assert.NoError(t, err)
	return j
}

// S1 — simple balanced xact, no prices.
func TestSimpleBalancedXact(t *testing.T) {
	src := "2004/05/11 * Checking balance\n" +
		"    Assets:Bank:Checking          $1000.00\n" +
		"    Equity:Opening Balances\n"
	j := mustParse(t, src)
	assert.Equal(t, 1, len(j.Xacts))
	x := j.Xacts[0]
	assert.Equal(t, 2, len(x.Postings))

	dollar := symbol.Intern("$")
	second := x.Postings[1]
	assert.Equal(t, dollar, second.Quantity.S)
	assert.True(t, second.Quantity.Q.Equal(decimal.NewFromInt(-1000)))
	assert.Equal(t, dollar, second.UPrice.S)
	assert.True(t, second.UPrice.Q.Equal(decimal.NewFromInt(1)))
}

// S2 — two-commodity conversion, implicit rate.
func TestTwoCommodityImplicitRate(t *testing.T) {
	src := "2004/05/11 * Trade\n" +
		"    Assets:Brokerage   1 X\n" +
		"    Assets:Checking   -1 Y\n"
	j := mustParse(t, src)
	x := j.Xacts[0]
	assert.Equal(t, 2, len(x.Postings))

	y := symbol.Intern("Y")
	for _, p := range x.Postings {
		if p.Quantity.S == y {
			continue
		}
		assert.Equal(t, y, p.UPrice.S)
		assert.True(t, p.UPrice.Q.Equal(decimal.NewFromInt(1)))
	}
	assert.Equal(t, y, x.Primary)
}

// S3 — lot with total basis.
func TestLotTotalBasis(t *testing.T) {
	src := "2004/05/11 * Buy\n" +
		"    Assets:Brokerage   10 LTM {{$300.00}} [2025/08/29] @@ $200.00\n" +
		"    Assets:Cash\n"
	j := mustParse(t, src)
	x := j.Xacts[0]
	assert.Equal(t, 2, len(x.Postings))

	first := x.Postings[0]
	assert.True(t, first.LotUPrice.Price.Q.Equal(decimal.NewFromInt(30)))
	assert.True(t, first.UPrice.Q.Equal(decimal.NewFromInt(20)))

	second := x.Postings[1]
	assert.True(t, second.Quantity.Q.Equal(decimal.NewFromInt(-300)))
	assert.True(t, second.UPrice.Q.Equal(decimal.NewFromInt(1)))
}

// S6 — eliding rejected: more than one posting omitting an amount.
func TestElidingRejected(t *testing.T) {
	src := "2004/05/11 * Bad\n" +
		"    Assets:A\n" +
		"    Assets:B\n"
	_, err := journal.Parse("test.journal", src)
	assert.Error(t, err)
	je, ok := err.(*lerrors.JournalError)
	assert.True(t, ok)
	assert.Equal(t, lerrors.ElidingAmount, je.Kind)
	assert.Equal(t, 2, je.Count)
}

func TestPriceDirective(t *testing.T) {
	src := "P 2025/08/09 12:00:00 LTM $21.10\nP 2025/08/28 LTM $23.69\n"
	j := mustParse(t, src)
	assert.Equal(t, 2, len(j.Prices))
	ltm := symbol.Intern("LTM")
	assert.Equal(t, ltm, j.Prices[0].Sym)
}

func TestXactsHeadTail(t *testing.T) {
	src := "2004/05/11 * A\n    Assets:A   1 X\n    Assets:B\n\n" +
		"2004/05/12 * B\n    Assets:A   1 X\n    Assets:B\n\n" +
		"2004/05/13 * C\n    Assets:A   1 X\n    Assets:B\n"
	j := mustParse(t, src)
	assert.Equal(t, 3, len(j.Xacts))
	assert.Equal(t, "A", j.XactsHead(1)[0].Payee)
	assert.Equal(t, "C", j.XactsTail(1)[0].Payee)
}

func TestJournalFilterByDate(t *testing.T) {
	src := "2004/05/11 * A\n    Assets:A   1 X\n    Assets:B\n\n" +
		"2004/05/12 * B\n    Assets:A   1 X\n    Assets:B\n\n" +
		"2004/05/13 * C\n    Assets:A   1 X\n    Assets:B\n"
	j := mustParse(t, src)

	from := time.Date(2004, 5, 12, 0, 0, 0, 0, time.UTC)
	to := time.Date(2004, 5, 12, 0, 0, 0, 0, time.UTC)
	filtered := j.FilterByDate(&from, &to)
	assert.Equal(t, 1, len(filtered.Xacts))
	assert.Equal(t, "B", filtered.Xacts[0].Payee)
}

func TestJournalMarketPrices(t *testing.T) {
	src := "P 2025/08/09 12:00:00 LTM $21.10\nP 2025/08/28 LTM $23.69\n"
	j := mustParse(t, src)
	assert.Equal(t, 2, len(j.MarketPrices()))
}
