// Package avl provides an AVL tree: a binary search tree that
// rebalances itself on insertion so that, at every node, the heights
// of the two subtrees differ by at most one.
//
// Removal is not supported. Keys are unique; inserting a key that is
// already present leaves the tree unchanged.
package avl

import (
	"go.lepak.sg/collections/tree"
	"go.lepak.sg/collections/tree/iterator"
	"golang.org/x/exp/constraints"
)

// Tree is an AVL tree. It is safe for concurrent reads
// (searching, iterating, etc) but not for concurrent reads and writes
// (inserting).
//
// The zero Tree is an empty tree and may be used immediately.
// A nil *Tree is treated as an empty tree by the read-only methods.
//
// Invariants, holding between calls:
//   - At any node N in the tree, all node keys in the subtree rooted at N.Left
//     will be less than N.Key, and all keys under N.Right greater than N.Key
//   - At any node N, the heights of N.Left and N.Right differ by at most 1
//   - N.Extra caches the height of the subtree rooted at N
//
// NodeOf can be used to build trees that break the first two invariants,
// which is only useful for testing Balanced and Valid.
type Tree[T constraints.Ordered] struct {
	root  *tree.Node[T, int]
	count int
}

// New returns an empty tree.
func New[T constraints.Ordered]() *Tree[T] {
	return &Tree[T]{}
}

// NodeOf builds a tree with k at the root and the nodes of left and right
// as its subtrees. The ordering and balance invariants are not checked.
//
// NodeOf takes ownership of the nodes in left and right: both are empty
// afterwards. Either may be nil, which stands for an empty subtree.
func NodeOf[T constraints.Ordered](k T, left, right *Tree[T]) *Tree[T] {
	l, lcount := left.take()
	r, rcount := right.take()

	n := &tree.Node[T, int]{
		Key:   k,
		Left:  l,
		Right: r,
	}
	fixHeight(n)

	return &Tree[T]{
		root:  n,
		count: 1 + lcount + rcount,
	}
}

// FromSlice returns a new tree with every key in s inserted in order.
func FromSlice[S ~[]T, T constraints.Ordered](s S) *Tree[T] {
	t := New[T]()
	for _, k := range s {
		t.Insert(k)
	}
	return t
}

// take moves the nodes out of t, leaving it empty.
func (t *Tree[T]) take() (*tree.Node[T, int], int) {
	if t == nil {
		return nil, 0
	}

	n, count := t.root, t.count
	t.root, t.count = nil, 0
	return n, count
}

func (t *Tree[T]) top() *tree.Node[T, int] {
	if t == nil {
		return nil
	}
	return t.root
}

// Insert inserts k into the tree, rebalancing it if required.
// If k is already in the tree, the tree is not modified and
// Insert returns false.
func (t *Tree[T]) Insert(k T) bool {
	var added bool
	t.root, added = insert(t.root, k)
	if added {
		t.count++
	}
	return added
}

// insert returns the node that now roots the subtree that was at n.
// Every ancestor of the new node is rebalanced on the way back up.
func insert[T constraints.Ordered](n *tree.Node[T, int], k T) (*tree.Node[T, int], bool) {
	if n == nil {
		return tree.NodeOf(k, 1), true
	}

	var added bool
	switch tree.Compare(k, n.Key) {
	case tree.Less:
		n.Left, added = insert(n.Left, k)
	case tree.Greater:
		n.Right, added = insert(n.Right, k)
	case tree.Equal:
		return n, false
	default:
		panic("unreachable")
	}

	if !added {
		// nothing below us changed shape
		return n, false
	}

	return rebalance(n), true
}

// Contains searches for k in the tree and returns true if it was found.
func (t *Tree[T]) Contains(k T) bool {
	n := t.top()

	for n != nil {
		switch tree.Compare(k, n.Key) {
		case tree.Less:
			n = n.Left
		case tree.Greater:
			n = n.Right
		case tree.Equal:
			return true
		default:
			panic("unreachable")
		}
	}

	return false
}

// Len returns the number of keys in the tree.
func (t *Tree[T]) Len() int {
	if t == nil {
		return 0
	}
	return t.count
}

// Height returns the height of the tree. An empty tree has height 0,
// a tree with a single key has height 1.
func (t *Tree[T]) Height() int {
	return height(t.top())
}

// InOrderIterator returns an iterator object that yields
// keys from the tree in ascending order.
func (t *Tree[T]) InOrderIterator() *iterator.InOrder[T, int] {
	return iterator.NewInOrder(t.top(), t.Height())
}

// ToSlice returns the keys of the tree in ascending order.
// The tree is not modified.
func (t *Tree[T]) ToSlice() []T {
	out := make([]T, 0, t.Len())

	i := t.InOrderIterator()
	for i.Next() {
		out = append(out, i.Item())
	}

	return out
}

// Equal reports whether t and o have the same shape with the same key at
// every position. Trees holding the same keys can be unequal if they were
// built differently; compare ToSlice results to compare the key sets.
func (t *Tree[T]) Equal(o *Tree[T]) bool {
	return tree.Same(t.top(), o.top())
}

// String returns a string representation of the tree.
// See tree.Sprint for the format.
func (t *Tree[T]) String() string {
	return tree.Sprint(t.top())
}
