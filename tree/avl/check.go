package avl

import (
	"go.lepak.sg/collections/tree"
	"golang.org/x/exp/constraints"
)

// Balanced reports whether, at every node, the heights of the two
// subtrees differ by at most one. Heights are recomputed from scratch,
// so this takes time linear in the size of the tree.
func (t *Tree[T]) Balanced() bool {
	_, ok := balanced(t.top())
	return ok
}

// balanced returns the recomputed height of n, or false if
// any node under n is out of balance.
func balanced[T constraints.Ordered](n *tree.Node[T, int]) (int, bool) {
	if n == nil {
		return 0, true
	}

	l, ok := balanced(n.Left)
	if !ok {
		return 0, false
	}

	r, ok := balanced(n.Right)
	if !ok {
		return 0, false
	}

	if l-r > 1 || r-l > 1 {
		return 0, false
	}

	if l > r {
		return l + 1, true
	}
	return r + 1, true
}

// Valid reports whether the tree is a binary search tree with no
// duplicate keys, is balanced, and has a consistent height cache.
func (t *Tree[T]) Valid() bool {
	n := t.top()
	return ordered(n, nil, nil) && t.Balanced() && cached(n)
}

// ordered checks that every key under n lies strictly between lo and hi.
// A nil bound is open.
func ordered[T constraints.Ordered](n *tree.Node[T, int], lo, hi *T) bool {
	if n == nil {
		return true
	}

	if lo != nil && tree.Compare(n.Key, *lo) != tree.Greater {
		return false
	}

	if hi != nil && tree.Compare(n.Key, *hi) != tree.Less {
		return false
	}

	return ordered(n.Left, lo, &n.Key) && ordered(n.Right, &n.Key, hi)
}

// cached checks the height stored at every node against its children.
func cached[T constraints.Ordered](n *tree.Node[T, int]) bool {
	if n == nil {
		return true
	}

	if !cached(n.Left) || !cached(n.Right) {
		return false
	}

	l, r := height(n.Left), height(n.Right)
	if l > r {
		return n.Extra == l+1
	}
	return n.Extra == r+1
}
