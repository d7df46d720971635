package symbol_test

import (
	"testing"

	"github.com/alecthomas/assert/v2"

	"github.com/cortesi/ledger/symbol"
)

func TestInternIdentity(t *testing.T) {
	a := symbol.Intern("USD")
	b := symbol.Intern("USD")
	assert.Equal(t, a, b)

	c := symbol.Intern("EUR")
	assert.NotEqual(t, a, c)
}

func TestEmptyPreinterned(t *testing.T) {
	empty := symbol.Intern("")
	assert.True(t, empty.IsEmpty())
	assert.Equal(t, "", symbol.Name(empty))
}

func TestNameRoundTrip(t *testing.T) {
	s := symbol.Intern("AAPL")
	assert.Equal(t, "AAPL", symbol.Name(s))
	assert.Equal(t, "AAPL", s.String())
}
