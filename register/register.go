// Package register builds the running-total transaction listing used by
// the "register" report.
package register

import (
	"time"

	"github.com/cortesi/ledger/account"
	"github.com/cortesi/ledger/amount"
	"github.com/cortesi/ledger/journal"
	"github.com/cortesi/ledger/ledger"
	"github.com/cortesi/ledger/lot"
	"github.com/cortesi/ledger/pricedb"
	"github.com/cortesi/ledger/valuation"
	"github.com/cortesi/ledger/view"
)

// Entry is one (account, value, running total) row within a Register.
type Entry struct {
	Account      account.AccName
	Total        amount.Amount
	RunningTotal amount.Amount
}

// Register is one transaction's contribution to the report: its date,
// payee, and the non-empty list of entries it produced.
type Register struct {
	Date    time.Time
	Payee   string
	Entries []Entry
}

// Build produces one Register per matching xact. depth == 0 values each
// posting directly; depth > 0 instead collapses each xact into a
// one-transaction balance capped at that depth. Both paths value under
// the caller's chosen v — unlike the Rust lineage this was ported from,
// where the depth > 0 path silently ignored the caller's valuation and
// always used a fixed "as of today, at market" scheme.
func Build(xacts []*journal.Xact, v valuation.Valuation, filter account.Filter, pdb *pricedb.PriceDB, depth int) []Register {
	var out []Register
	running := amount.Zero()

	for _, x := range xacts {
		var entries []Entry
		if depth == 0 {
			entries, running = buildFlatEntries(x, v, filter, pdb, running)
		} else {
			entries, running = buildDepthEntries(x, v, filter, pdb, depth, running)
		}
		if len(entries) == 0 {
			continue
		}
		out = append(out, Register{Date: x.Date(), Payee: x.Payee, Entries: entries})
	}
	return out
}

func buildFlatEntries(x *journal.Xact, v valuation.Valuation, filter account.Filter, pdb *pricedb.PriceDB, running amount.Amount) ([]Entry, amount.Amount) {
	var entries []Entry
	for _, p := range x.Postings {
		if !filter.Matches(p.Account) {
			continue
		}
		val := valuePosting(p, x, v, pdb)
		running = running.Add(val)
		entries = append(entries, Entry{Account: p.Account, Total: val, RunningTotal: running})
	}
	return entries, running
}

func buildDepthEntries(x *journal.Xact, v valuation.Valuation, filter account.Filter, pdb *pricedb.PriceDB, depth int, running amount.Amount) ([]Entry, amount.Amount) {
	flat := make([]view.FlatEntry[lot.Holdings], 0, len(x.Postings))
	for _, p := range x.Postings {
		h := lot.NewHoldings().AddLot(ledger.PostingLot(p, x, pdb))
		flat = append(flat, view.FlatEntry[lot.Holdings]{Name: p.Account, Balance: h})
	}
	hier := view.ToHier(flat, lot.NewHoldings())
	// The depth counts account segments, so the cap applies to each
	// top-level account rather than to ToHier's unnamed synthetic root.
	for name, child := range hier.Children {
		hier.Children[name] = view.LimitAccountsDepth(child, depth)
	}
	valued := view.ValuedInHier(hier, func(h lot.Holdings) amount.Amount { return h.ValuedIn(v) })
	flatValued := view.ToFlat(valued, amount.Zero())

	var entries []Entry
	for _, e := range flatValued.Entries() {
		if !filter.Matches(e.Name) {
			continue
		}
		running = running.Add(e.Balance)
		entries = append(entries, Entry{Account: e.Name, Total: e.Balance, RunningTotal: running})
	}
	return entries, running
}

func valuePosting(p *journal.Posting, x *journal.Xact, v valuation.Valuation, pdb *pricedb.PriceDB) amount.Amount {
	return ledger.PostingLot(p, x, pdb).ValuedIn(v)
}
