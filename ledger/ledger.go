// Package ledger buckets parsed postings by account and answers
// as-of-date balance queries against a price database.
package ledger

import (
	"sort"
	"time"

	"github.com/cortesi/ledger/account"
	"github.com/cortesi/ledger/amount"
	"github.com/cortesi/ledger/journal"
	"github.com/cortesi/ledger/lot"
	"github.com/cortesi/ledger/pricedb"
	"github.com/cortesi/ledger/tamount"
)

// Ledger collects every posting in a journal, bucketed by the account it
// touches.
type Ledger struct {
	byAccount map[account.AccName][]*journal.Posting
	xactOf    map[*journal.Posting]*journal.Xact
}

// FromJournal buckets every posting of j by account, in source order.
func FromJournal(j *journal.Journal) *Ledger {
	l := &Ledger{
		byAccount: map[account.AccName][]*journal.Posting{},
		xactOf:    map[*journal.Posting]*journal.Xact{},
	}
	for _, x := range j.Xacts {
		for _, p := range x.Postings {
			l.byAccount[p.Account] = append(l.byAccount[p.Account], p)
			l.xactOf[p] = x
		}
	}
	return l
}

// AccountNames lists every account with at least one posting, sorted
// lexicographically.
func (l *Ledger) AccountNames() []account.AccName {
	out := make([]account.AccName, 0, len(l.byAccount))
	for name := range l.byAccount {
		out = append(out, name)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Account returns the named bucket, or an empty Account if it has no
// postings.
func (l *Ledger) Account(name account.AccName) *Account {
	return &Account{ledger: l, name: name, postings: l.byAccount[name]}
}

// Accounts returns every account with postings, in lexicographic order.
func (l *Ledger) Accounts() []*Account {
	names := l.AccountNames()
	out := make([]*Account, 0, len(names))
	for _, n := range names {
		out = append(out, l.Account(n))
	}
	return out
}

// FilterByDate returns a new Ledger containing only postings whose
// transaction date lies in the inclusive [from, to] window. A nil bound
// is open on that side.
func (l *Ledger) FilterByDate(from, to *time.Time) *Ledger {
	out := &Ledger{byAccount: map[account.AccName][]*journal.Posting{}, xactOf: map[*journal.Posting]*journal.Xact{}}
	for name, postings := range l.byAccount {
		for _, p := range postings {
			x := l.xactOf[p]
			d := x.Date()
			if from != nil && d.Before(*from) {
				continue
			}
			if to != nil && d.After(*to) {
				continue
			}
			out.byAccount[name] = append(out.byAccount[name], p)
			out.xactOf[p] = x
		}
	}
	return out
}

// Account is a single account's postings, with helpers for computing its
// balance against a price database.
type Account struct {
	ledger   *Ledger
	name     account.AccName
	postings []*journal.Posting
}

// Name returns the account's identifier.
func (a *Account) Name() account.AccName { return a.name }

// Postings returns the postings touching this account, in source order.
func (a *Account) Postings() []*journal.Posting { return a.postings }

// BalanceAsOf folds every posting dated on or before date into a single
// holdings basket, pricing each posting's lot against pdb for its
// market and historical channels.
func (a *Account) BalanceAsOf(date time.Time, pdb *pricedb.PriceDB) tamount.TAmount[lot.Holdings] {
	h := lot.NewHoldings()
	for _, p := range a.postings {
		x := a.ledger.xactOf[p]
		if x == nil || x.Date().After(date) {
			continue
		}
		h = h.AddLot(PostingLot(p, x, pdb))
	}
	return tamount.New(date, h)
}

// PostingLot builds the Lot a posting contributes to a holdings basket:
// its quantity, its book price (from the lot basis), its historical
// price (as of the transaction's date), and its market price (the
// latest known price). Exported so the register builder can reuse the
// same per-posting valuation plumbing.
func PostingLot(p *journal.Posting, x *journal.Xact, pdb *pricedb.PriceDB) lot.Lot {
	book := p.LotUPrice.Price
	hist := book
	market := book
	if pdb != nil {
		if hp, ok := pdb.PriceAsOf(p.Quantity.S, x.Date()); ok {
			hist = hp
		}
		if mp, ok := pdb.LatestPrice(p.Quantity.S); ok {
			market = mp
		}
	}
	l := lot.New(p.Quantity, amount.FromQuantity(book))
	l.HUPrice = amount.FromQuantity(hist)
	l.MUPrice = amount.FromQuantity(market)
	return l
}
