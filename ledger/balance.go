package ledger

import (
	"time"

	"github.com/cortesi/ledger/account"
	"github.com/cortesi/ledger/lot"
	"github.com/cortesi/ledger/pricedb"
	"github.com/cortesi/ledger/tamount"
	"github.com/cortesi/ledger/view"
)

// Holdings is the basket type a balance report's views are built over:
// a time-indexed sequence of holdings snapshots, one per queried date.
type Holdings = tamount.TAmount[lot.Holdings]

// BuildBalanceView computes, for each account matched by filter, a
// Holdings basket with one entry per date in dates, then arranges the
// per-account results into a BalanceView rooted at each account's
// top-level segment.
func BuildBalanceView(l *Ledger, dates []time.Time, filter account.Filter, pdb *pricedb.PriceDB) view.BalanceView[Holdings] {
	entries := make(map[account.AccName]Holdings)
	for _, acc := range l.Accounts() {
		if !filter.Matches(acc.Name()) {
			continue
		}
		combined := tamount.Empty[lot.Holdings]()
		for _, d := range dates {
			combined = combined.Add(acc.BalanceAsOf(d, pdb))
		}
		entries[acc.Name()] = combined
	}

	flat := make([]view.FlatEntry[Holdings], 0, len(entries))
	for name, h := range entries {
		flat = append(flat, view.FlatEntry[Holdings]{Name: name, Balance: h})
	}

	// Group by top-level segment, since view.ToHier always names its own
	// synthetic root "" — the per-account BalanceView root is that
	// root's single child.
	perTop := map[account.AccName][]view.FlatEntry[Holdings]{}
	for _, e := range flat {
		segs := e.Name.Segments()
		if len(segs) == 0 {
			continue
		}
		top := account.AccName(segs[0])
		perTop[top] = append(perTop[top], e)
	}
	roots := map[account.AccName]*view.Hier[Holdings]{}
	for top, es := range perTop {
		sub := view.ToHier(es, tamount.Empty[lot.Holdings]())
		// sub's single child is the top-level account itself.
		child := sub.Children[top]
		roots[top] = child
	}
	return view.NewBalanceView(roots)
}
