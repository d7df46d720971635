package pricedb_test

import (
	"testing"
	"time"

	"github.com/alecthomas/assert/v2"
	"github.com/shopspring/decimal"

	"github.com/cortesi/ledger/journal"
	"github.com/cortesi/ledger/pricedb"
	"github.com/cortesi/ledger/quantity"
	"github.com/cortesi/ledger/symbol"
)

func date(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

// S5 from the end-to-end scenarios.
func TestPriceAsOfMonotoneLookup(t *testing.T) {
	ltm := symbol.Intern("LTM")
	usd := symbol.Intern("$")

	db := pricedb.New()
	db.Upsert(ltm, date("2025-07-25"), quantity.New(decimal.NewFromFloat(20.15), usd))
	db.Upsert(ltm, date("2025-08-28"), quantity.New(decimal.NewFromFloat(23.69), usd))

	p, ok := db.PriceAsOf(ltm, date("2025-08-01"))
	assert.True(t, ok)
	assert.True(t, p.Q.Equal(decimal.NewFromFloat(20.15)))

	latest, ok := db.LatestPrice(ltm)
	assert.True(t, ok)
	assert.True(t, latest.Q.Equal(decimal.NewFromFloat(23.69)))

	_, ok = db.PriceAsOf(ltm, date("2025-07-20"))
	assert.False(t, ok)
}

func TestDuplicateTimestampLastWriteWins(t *testing.T) {
	ltm := symbol.Intern("LTM2")
	usd := symbol.Intern("$")
	d := date("2025-01-01")

	db := pricedb.New()
	db.Upsert(ltm, d, quantity.New(decimal.NewFromInt(10), usd))
	db.Upsert(ltm, d, quantity.New(decimal.NewFromInt(20), usd))

	p, ok := db.LatestPrice(ltm)
	assert.True(t, ok)
	assert.True(t, p.Q.Equal(decimal.NewFromInt(20)))
}

func TestUnknownSymbol(t *testing.T) {
	db := pricedb.New()
	_, ok := db.LatestPrice(symbol.Intern("UNKNOWN"))
	assert.False(t, ok)
}

func TestFromJournalWalksPostingPrices(t *testing.T) {
	src := "2004/05/11 * Trade\n" +
		"    Assets:Brokerage   1 X\n" +
		"    Assets:Checking   -1 Y\n"
	j, err := journal.Parse("test.journal", src)
	assert.NoError(t, err)

	db := pricedb.FromJournal(j)
	x := symbol.Intern("X")
	p, ok := db.LatestPrice(x)
	assert.True(t, ok)
	assert.True(t, p.Q.Equal(decimal.NewFromInt(1)))
}

func TestFromJournalDirectiveWinsOverPosting(t *testing.T) {
	src := "P 2004/05/11 X 2 Y\n" +
		"2004/05/11 * Trade\n" +
		"    Assets:Brokerage   1 X\n" +
		"    Assets:Checking   -1 Y\n"
	j, err := journal.Parse("test.journal", src)
	assert.NoError(t, err)

	db := pricedb.FromJournal(j)
	x := symbol.Intern("X")
	p, ok := db.LatestPrice(x)
	assert.True(t, ok)
	assert.True(t, p.Q.Equal(decimal.NewFromInt(2)))
}

func TestMergePrefersOtherOnDuplicateKey(t *testing.T) {
	sym := symbol.Intern("MRG")
	usd := symbol.Intern("$")
	d := date("2025-01-01")

	base := pricedb.New()
	base.Upsert(sym, d, quantity.New(decimal.NewFromInt(10), usd))

	override := pricedb.New()
	override.Upsert(sym, d, quantity.New(decimal.NewFromInt(99), usd))

	base.Merge(override)
	p, ok := base.LatestPrice(sym)
	assert.True(t, ok)
	assert.True(t, p.Q.Equal(decimal.NewFromInt(99)))
}

func TestLoadFileSkipsMalformedLines(t *testing.T) {
	src := "P 2025/08/09 LTM3 $21.10\nnot a directive\nP 2025/08/28 LTM3 $23.69\n"
	db, verrs := pricedb.LoadFile("prices.db", src)
	assert.True(t, verrs.HasErrors())
	assert.Equal(t, 1, len(verrs.Errors))

	ltm3 := symbol.Intern("LTM3")
	latest, ok := db.LatestPrice(ltm3)
	assert.True(t, ok)
	assert.True(t, latest.Q.Equal(decimal.NewFromFloat(23.69)))
}
