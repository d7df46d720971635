package view

import (
	"sort"

	"github.com/cortesi/ledger/account"
)

// BalanceView is the sorted map of top-level accounts a balance report
// renders: one Hier root per first-path-segment account.
type BalanceView[T Basket[T]] struct {
	roots map[account.AccName]*Hier[T]
}

// NewBalanceView wraps a set of named roots.
func NewBalanceView[T Basket[T]](roots map[account.AccName]*Hier[T]) BalanceView[T] {
	return BalanceView[T]{roots: roots}
}

// Names returns the view's top-level account names, sorted.
func (v BalanceView[T]) Names() []account.AccName {
	out := make([]account.AccName, 0, len(v.roots))
	for n := range v.roots {
		out = append(out, n)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Root returns the Hier node for a top-level account name, or nil.
func (v BalanceView[T]) Root(name account.AccName) *Hier[T] {
	return v.roots[name]
}

// Merge adds rhs into v in place, merging same-named roots via
// MergeHier and adopting any root only rhs has.
func (v BalanceView[T]) Merge(rhs BalanceView[T]) BalanceView[T] {
	for name, rnode := range rhs.roots {
		if lnode, ok := v.roots[name]; ok {
			v.roots[name] = MergeHier(lnode, rnode)
		} else {
			v.roots[name] = rnode
		}
	}
	return v
}

// ToFlat applies ToFlat to every root.
func (v BalanceView[T]) ToFlat(zero T) map[account.AccName]Flat[T] {
	out := make(map[account.AccName]Flat[T], len(v.roots))
	for name, root := range v.roots {
		out[name] = ToFlat(root, zero)
	}
	return out
}

// ToCompact applies ToCompact to every root.
func (v BalanceView[T]) ToCompact(equal func(a, b T) bool) BalanceView[T] {
	out := make(map[account.AccName]*Hier[T], len(v.roots))
	for name, root := range v.roots {
		out[name] = ToCompact(root, equal)
	}
	return NewBalanceView(out)
}

// RemoveEmptyAccounts applies RemoveEmptyAccounts to every root, dropping
// roots that become entirely empty.
func (v BalanceView[T]) RemoveEmptyAccounts() BalanceView[T] {
	out := map[account.AccName]*Hier[T]{}
	for name, root := range v.roots {
		if pruned := RemoveEmptyAccounts(root); pruned != nil {
			out[name] = pruned
		}
	}
	return NewBalanceView(out)
}

// LimitAccountsDepth applies LimitAccountsDepth to every root.
func (v BalanceView[T]) LimitAccountsDepth(d int) BalanceView[T] {
	out := make(map[account.AccName]*Hier[T], len(v.roots))
	for name, root := range v.roots {
		out[name] = LimitAccountsDepth(root, d)
	}
	return NewBalanceView(out)
}
