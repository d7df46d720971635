package account_test

import (
	"testing"

	"github.com/alecthomas/assert/v2"

	"github.com/cortesi/ledger/account"
)

func TestRegexFilterMatchesAny(t *testing.T) {
	f, err := account.NewRegexFilter([]string{"^Assets:Bank", "^Expenses:Food$"})
	assert.NoError(t, err)

	assert.True(t, f.Matches(account.AccName("Assets:Bank:Checking")))
	assert.True(t, f.Matches(account.AccName("Expenses:Food")))
	assert.False(t, f.Matches(account.AccName("Expenses:Food:Grocery")))
	assert.False(t, f.Matches(account.AccName("Income:Salary")))
}

func TestRegexFilterEmptyMatchesAll(t *testing.T) {
	f, err := account.NewRegexFilter(nil)
	assert.NoError(t, err)
	assert.True(t, f.Matches(account.AccName("Anything:At:All")))
}

func TestRegexFilterBadPattern(t *testing.T) {
	_, err := account.NewRegexFilter([]string{"("})
	assert.Error(t, err)
}
