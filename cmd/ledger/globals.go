package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/cortesi/ledger/account"
	"github.com/cortesi/ledger/journal"
	"github.com/cortesi/ledger/pricedb"
	"github.com/cortesi/ledger/valuation"
)

// dateFlag parses a date given as either YYYY/MM/DD or YYYY-MM-DD,
// matching the journal grammar's own liberal separator rule.
type dateFlag struct {
	set bool
	t   time.Time
}

func (d *dateFlag) UnmarshalText(text []byte) error {
	t, err := journal.ParseDate(string(text))
	if err != nil {
		return err
	}
	d.set, d.t = true, t
	return nil
}

func (d *dateFlag) ptr() *time.Time {
	if !d.set {
		return nil
	}
	return &d.t
}

// valuationFlags resolves the -B/-V/-H/-O mutually-exclusive selectors
// to a single Valuation, defaulting to Quantity when none (or more than
// one — "all conflicts resolve to Quantity") is set.
type valuationFlags struct {
	Basis      bool `short:"B" help:"Value at cost basis."`
	MarketFlag bool `short:"V" name:"value" help:"Value at latest market price."`
	Historical bool `short:"H" help:"Value at historical (as-of) price."`
	Original   bool `short:"O" help:"Value at raw quantity (default)."`
}

func (v valuationFlags) resolve() valuation.Valuation {
	set := 0
	result := valuation.Quantity
	if v.Basis {
		set++
		result = valuation.Basis
	}
	if v.MarketFlag {
		set++
		result = valuation.Market
	}
	if v.Historical {
		set++
		result = valuation.Historical
	}
	if v.Original {
		set++
		result = valuation.Quantity
	}
	if set != 1 {
		return valuation.Quantity
	}
	return result
}

// sourceFlags are the flags common to balance/register/check: where the
// journal and price-db come from, and the date window to apply.
type sourceFlags struct {
	File     string   `short:"f" help:"Journal file to read (stdin if omitted)." type:"path"`
	PriceDB  string   `name:"price-db" help:"Price database file." type:"path"`
	From     dateFlag `short:"b" help:"Only include transactions on or after this date."`
	To       dateFlag `short:"e" help:"Only include transactions on or before this date."`
	Patterns []string `arg:"" optional:"" help:"Regex patterns to filter account names."`
}

func (s sourceFlags) readJournal() (*journal.Journal, error) {
	var r io.Reader
	if s.File == "" {
		r = os.Stdin
	} else {
		f, err := os.Open(s.File)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	name := s.File
	if name == "" {
		name = "<stdin>"
	}
	j, err := journal.Parse(name, string(data))
	if err != nil {
		return nil, err
	}
	return j.FilterByDate(s.From.ptr(), s.To.ptr()), nil
}

// readPriceDB builds the price database j's own postings and P
// directives imply, then merges in the --price-db file, if any, whose
// entries take precedence on a duplicate (symbol, date) key.
func (s sourceFlags) readPriceDB(j *journal.Journal) (*pricedb.PriceDB, error) {
	db := pricedb.FromJournal(j)
	if s.PriceDB == "" {
		return db, nil
	}
	data, err := os.ReadFile(s.PriceDB)
	if err != nil {
		return nil, err
	}
	fileDB, verrs := pricedb.LoadFile(s.PriceDB, string(data))
	if verrs != nil && verrs.HasErrors() {
		for _, e := range verrs.Errors {
			fmt.Fprintf(os.Stderr, "price-db: %s\n", e)
		}
	}
	db.Merge(fileDB)
	return db, nil
}

func (s sourceFlags) filter() (account.Filter, error) {
	if len(s.Patterns) == 0 {
		return account.AllFilter{}, nil
	}
	return account.NewRegexFilter(s.Patterns)
}
