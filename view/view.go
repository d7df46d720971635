// Package view implements the Flat/Hier/Compact account-balance tree
// shapes and their transformations, generic over the basket type each
// node's balance holds.
package view

import (
	"sort"

	"github.com/cortesi/ledger/account"
	"github.com/cortesi/ledger/amount"
)

// Basket is the capability a view needs from whatever type it stores as
// a node's balance: point-addition and a zero check.
type Basket[T any] interface {
	Add(T) T
	Sub(T) T
	IsZero() bool
}

// Flat is a sorted, path-qualified list of (name, balance) leaves — the
// result of collapsing a hierarchy by emitting only the nodes whose
// balance differs from the sum of their descendants.
type Flat[T Basket[T]] struct {
	entries []FlatEntry[T]
}

// FlatEntry is one row of a Flat view.
type FlatEntry[T Basket[T]] struct {
	Name    account.AccName
	Balance T
}

// NewFlat builds a Flat view from already-computed entries, sorting by
// name.
func NewFlat[T Basket[T]](entries []FlatEntry[T]) Flat[T] {
	sort.Slice(entries, func(i, j int) bool { return entries[i].Name < entries[j].Name })
	return Flat[T]{entries: entries}
}

// Entries returns the view's rows in sorted order.
func (f Flat[T]) Entries() []FlatEntry[T] { return f.entries }

// Hier is a tree of single-segment-named nodes; Name at the root is
// empty, and each child's Name is one account-name segment.
type Hier[T Basket[T]] struct {
	Name     account.AccName
	Balance  T
	Children map[account.AccName]*Hier[T]
}

func newHierNode[T Basket[T]](name account.AccName, zero T) *Hier[T] {
	return &Hier[T]{Name: name, Balance: zero, Children: map[account.AccName]*Hier[T]{}}
}

// ToHier builds a hierarchy from a set of full-path balances, splitting
// each name on ':' and placing the balance at the deepest node.
func ToHier[T Basket[T]](entries []FlatEntry[T], zero T) *Hier[T] {
	root := newHierNode[T]("", zero)
	for _, e := range entries {
		cur := root
		for _, seg := range e.Name.Segments() {
			s := account.AccName(seg)
			child, ok := cur.Children[s]
			if !ok {
				child = newHierNode[T](s, zero)
				cur.Children[s] = child
			}
			cur = child
			// Every node along the path accumulates the leaf's balance,
			// so a branch node's Balance is always the cumulative total
			// of its subtree (to_flat's diff is zero unless a branch
			// also has its own direct, non-leaf entry).
			cur.Balance = cur.Balance.Add(e.Balance)
		}
	}
	return root
}

func (h *Hier[T]) childNames() []account.AccName {
	names := make([]account.AccName, 0, len(h.Children))
	for n := range h.Children {
		names = append(names, n)
	}
	sort.Slice(names, func(i, j int) bool { return names[i] < names[j] })
	return names
}

// ToFlat performs the post-order walk: a leaf always emits its balance;
// an interior node emits only the residual (balance minus the sum of its
// children's balances) when that residual is non-zero.
func ToFlat[T Basket[T]](h *Hier[T], zero T) Flat[T] {
	var entries []FlatEntry[T]
	var walk func(node *Hier[T], prefix account.AccName)
	walk = func(node *Hier[T], prefix account.AccName) {
		full := prefix.Append(node.Name)
		if len(node.Children) == 0 {
			if prefix != "" || node.Name != "" {
				entries = append(entries, FlatEntry[T]{Name: full, Balance: node.Balance})
			}
			return
		}
		sum := zero
		for _, name := range node.childNames() {
			sum = sum.Add(node.Children[name].Balance)
		}
		diff := node.Balance.Sub(sum)
		if !diff.IsZero() && full != "" {
			entries = append(entries, FlatEntry[T]{Name: full, Balance: diff})
		}
		for _, name := range node.childNames() {
			walk(node.Children[name], full)
		}
	}
	walk(h, "")
	return NewFlat(entries)
}

// ToCompact splices any node with exactly one child whose balance equals
// the parent's balance into parent:child, repeating until no further
// splice applies, then recurses into the remaining children.
func ToCompact[T Basket[T]](h *Hier[T], equal func(a, b T) bool) *Hier[T] {
	node := h
	for len(node.Children) == 1 {
		var onlyName account.AccName
		var only *Hier[T]
		for n, c := range node.Children {
			onlyName, only = n, c
		}
		if !equal(node.Balance, only.Balance) {
			break
		}
		merged := &Hier[T]{
			Name:     node.Name.Append(onlyName),
			Balance:  node.Balance,
			Children: only.Children,
		}
		if node.Name == "" {
			merged.Name = onlyName
		}
		node = merged
	}
	for name, child := range node.Children {
		node.Children[name] = ToCompact(child, equal)
	}
	return node
}

// RemoveEmptyAccounts prunes, post-order, any node whose own balance is
// zero and which has no non-empty descendant.
func RemoveEmptyAccounts[T Basket[T]](h *Hier[T]) *Hier[T] {
	for name, child := range h.Children {
		pruned := RemoveEmptyAccounts(child)
		if pruned == nil {
			delete(h.Children, name)
		} else {
			h.Children[name] = pruned
		}
	}
	if h.Balance.IsZero() && len(h.Children) == 0 {
		return nil
	}
	return h
}

// LimitAccountsDepth keeps d levels of the tree counting h itself as the
// first (d == 1 keeps h and drops all its children) and drops every node
// below that; d == 0 means no limit.
func LimitAccountsDepth[T Basket[T]](h *Hier[T], d int) *Hier[T] {
	if d == 0 {
		return h
	}
	if d == 1 {
		h.Children = map[account.AccName]*Hier[T]{}
		return h
	}
	for name, child := range h.Children {
		h.Children[name] = LimitAccountsDepth(child, d-1)
	}
	return h
}

// MergeHier adds rhs's balance into h and recursively merges children by
// name, used to implement BalanceView's "+=".
func MergeHier[T Basket[T]](h, rhs *Hier[T]) *Hier[T] {
	h.Balance = h.Balance.Add(rhs.Balance)
	for name, rchild := range rhs.Children {
		if lchild, ok := h.Children[name]; ok {
			h.Children[name] = MergeHier(lchild, rchild)
		} else {
			h.Children[name] = rchild
		}
	}
	return h
}

// ValuedInHier projects every node's basket to an Amount via project
// (typically a closure over the caller's chosen Valuation), producing a
// parallel tree of the same shape.
func ValuedInHier[T Basket[T]](h *Hier[T], project func(T) amount.Amount) *Hier[amount.Amount] {
	out := &Hier[amount.Amount]{Name: h.Name, Balance: project(h.Balance), Children: map[account.AccName]*Hier[amount.Amount]{}}
	for name, child := range h.Children {
		out.Children[name] = ValuedInHier(child, project)
	}
	return out
}
