package pricedb

import (
	"strings"

	"github.com/cortesi/ledger/errors"
	"github.com/cortesi/ledger/journal"
)

// LoadFile parses a standalone price-database file: one "P ..." directive
// per line. Unlike the journal parser, malformed lines do not abort the
// load; each is recorded in the returned ValidationErrors and skipped.
func LoadFile(filename string, src string) (*PriceDB, *errors.ValidationErrors) {
	db := New()
	verrs := &errors.ValidationErrors{}
	lines := strings.Split(strings.ReplaceAll(src, "\r\n", "\n"), "\n")
	for i, raw := range lines {
		line := strings.TrimSpace(raw)
		if line == "" || strings.HasPrefix(line, ";") {
			continue
		}
		pd, err := journal.ParsePriceLine(filename, i+1, line)
		if err != nil {
			verrs.Add(err)
			continue
		}
		db.Upsert(pd.Sym, pd.Date, pd.Price)
	}
	return db, verrs
}
