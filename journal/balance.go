package journal

import (
	"github.com/cortesi/ledger/amount"
	lerrors "github.com/cortesi/ledger/errors"
	"github.com/cortesi/ledger/quantity"
	"github.com/cortesi/ledger/symbol"
)

// bookValue is a posting's contribution to the balance check: its
// lot-basis unit price times its quantity, expressed in the price's
// commodity.
func bookValue(p *Posting) amount.Amount {
	return amount.FromQuantity(quantity.New(p.LotUPrice.Price.Q.Mul(p.Quantity.Q), p.LotUPrice.Price.S))
}

// finishXact applies the eliding fill, balance check, and primary/
// secondary commodity inference to a fully-parsed transaction.
func finishXact(x *Xact) error {
	var elided []*Posting
	var kept []*Posting
	for _, p := range x.Postings {
		if p.elided {
			elided = append(elided, p)
		} else {
			kept = append(kept, p)
		}
	}
	if len(elided) > 1 {
		return lerrors.NewElidingAmount(x.Pos, len(elided))
	}

	bal := amount.Zero()
	for _, p := range kept {
		bal = bal.Add(bookValue(p))
	}

	if len(elided) == 1 {
		ep := elided[0]
		var fresh []*Posting
		for _, q := range bal.IterQuantities() {
			np := &Posting{
				Pos:     ep.Pos,
				State:   ep.State,
				Account: ep.Account,
				Comment: ep.Comment,
				Tags:    ep.Tags,
				VTags:   ep.VTags,
			}
			np.Quantity = q.Neg()
			resolveDefaults(np, np.Quantity, false, quantity.Quantity{}, false, quantity.Quantity{}, LotStatic)
			fresh = append(fresh, np)
		}
		x.Postings = append(kept, fresh...)
		return nil
	}

	x.Postings = kept
	switch bal.Arity() {
	case 0:
		return nil
	case 2:
		return inferPrimary(x, bal)
	default:
		return lerrors.New(lerrors.XactNoBalanced, x.Pos, "transaction does not balance")
	}
}

// inferPrimary implements spec.md's two-commodity inference: identify
// which of the two residual commodities the transaction is denominated
// in, then backfill the implied exchange rate onto every posting of the
// other (secondary) commodity that didn't already specify a conversion.
func inferPrimary(x *Xact, bal amount.Amount) error {
	qs := bal.IterQuantities()
	if len(qs) != 2 {
		return lerrors.New(lerrors.XactNoBalanced, x.Pos, "transaction does not balance")
	}
	a, b := qs[0], qs[1]
	if a.Q.Sign() == b.Q.Sign() {
		return lerrors.New(lerrors.XactNoBalanced, x.Pos, "residual commodities must have opposite signs")
	}

	var primary symbol.Symbol
	found := false
	if len(x.Postings) > 0 {
		first := x.Postings[0].Quantity.S
		switch first {
		case a.S:
			primary, found = b.S, true
		case b.S:
			primary, found = a.S, true
		}
	}
	if !found {
		for _, p := range x.Postings {
			if p.UPrice.S.IsEmpty() || p.UPrice.S == p.Quantity.S {
				continue
			}
			if p.UPrice.S == a.S {
				primary, found = a.S, true
				break
			}
			if p.UPrice.S == b.S {
				primary, found = b.S, true
				break
			}
		}
	}
	if !found {
		return lerrors.New(lerrors.CannotInferPrimary, x.Pos, "cannot identify a primary commodity for this transaction")
	}
	x.Primary = primary

	secondary := a.S
	primaryAmt, secondaryAmt := b, a
	if primary == a.S {
		secondary = b.S
		primaryAmt, secondaryAmt = a, b
	}

	rate := primaryAmt.Q.Abs().Div(secondaryAmt.Q.Abs())
	rateQty := quantity.New(rate, primary)
	for _, p := range x.Postings {
		if p.Quantity.S == secondary && p.UPrice.S == p.Quantity.S {
			p.UPrice = rateQty
			p.LotUPrice = LotUPrice{Price: rateQty, Kind: p.LotUPrice.Kind}
		}
	}
	return nil
}
