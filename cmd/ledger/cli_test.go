package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/alecthomas/assert/v2"

	"github.com/cortesi/ledger/valuation"
)

func TestValuationFlagsResolve(t *testing.T) {
	assert.Equal(t, valuation.Quantity, valuationFlags{}.resolve())
	assert.Equal(t, valuation.Basis, valuationFlags{Basis: true}.resolve())
	assert.Equal(t, valuation.Market, valuationFlags{MarketFlag: true}.resolve())
	assert.Equal(t, valuation.Historical, valuationFlags{Historical: true}.resolve())
	// Conflicting selectors resolve to Quantity.
	assert.Equal(t, valuation.Quantity, valuationFlags{Basis: true, MarketFlag: true}.resolve())
}

func TestSourceFlagsReadJournalFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.journal")
	src := "2004/05/11 * Checking balance\n" +
		"    Assets:Bank:Checking          $1000.00\n" +
		"    Equity:Opening Balances\n"
	assert.NoError(t, os.WriteFile(path, []byte(src), 0o644))

	s := sourceFlags{File: path}
	j, err := s.readJournal()
	assert.NoError(t, err)
	assert.Equal(t, 1, len(j.Xacts))
}

func TestSourceFlagsFilterDefaultsToAll(t *testing.T) {
	s := sourceFlags{}
	f, err := s.filter()
	assert.NoError(t, err)
	assert.True(t, f.Matches("Assets:Bank:Checking"))
}
