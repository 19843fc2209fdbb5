package iterator

import (
	"go.lepak.sg/collections/tree"
)

var _ Iterator[int] = (*InOrder[int, any])(nil)

// InOrder is an iterator object over a binary tree.
// Nodes have no parent pointers, so the iterator keeps
// its own stack of the nodes it still has to come back to.
// The usage should be pretty familiar:
//	i := someBinaryTree.InOrderIterator()
//	for i.Next() {
//		k := i.Item()
//		... do stuff with k ...
//	}
// The iterator may be abandoned at any time.
// The result of mutating the tree while iterating over it is undefined.
type InOrder[T any, X any] struct {
	root    *tree.Node[T, X]
	stack   []*tree.Node[T, X]
	started bool
}

// Recursive in order iteration looks like this:
//	func visit(n *Node, f func(*Node)) {
//		if n == nil {
//			return
//		}
//		visit(n.Left, f)	--(1)
//		f(n)
//		visit(n.Right, f)	--(2)
//	}
// When Next is called, everything up to (1) can be run,
// all the way down to the leftmost child node. This adds
// visit stack frames and we can replicate this in i.stack.
// The associated call to Item is equivalent to f(n), where
// n is the top of i.stack.
// The next call to Next continues from (2): pop n off and
// push the left spine of n.Right.

// NewInOrder creates a new in-order iterator over the tree rooted at root.
// If the tree's height is known, pass it as heightHint.
// Otherwise it's safe to leave it as 0.
// Note: This is meant to be called by other tree implementations.
func NewInOrder[T any, X any](root *tree.Node[T, X], heightHint int) *InOrder[T, X] {
	return &InOrder[T, X]{
		root:  root,
		stack: make([]*tree.Node[T, X], 0, heightHint),
	}
}

// Next returns true if there is a next node to yield with Item.
// Next must always be called before Item.
func (i *InOrder[T, X]) Next() bool {
	if i == nil {
		return false
	}

	if !i.started {
		i.started = true
		i.pushLeft(i.root)
		return len(i.stack) != 0
	}

	if len(i.stack) == 0 {
		return false
	}

	pop := i.stack[len(i.stack)-1]
	i.stack[len(i.stack)-1] = nil
	i.stack = i.stack[:len(i.stack)-1]

	i.pushLeft(pop.Right)

	return len(i.stack) != 0
}

func (i *InOrder[T, X]) pushLeft(n *tree.Node[T, X]) {
	for n != nil {
		i.stack = append(i.stack, n)
		n = n.Left
	}
}

// Item returns the current key of the iterator.
func (i *InOrder[T, _]) Item() T {
	return i.stack[len(i.stack)-1].Key
}

// Collect drains the iterator and returns everything it yielded.
func Collect[T any](i Iterator[T]) []T {
	var out []T
	for i.Next() {
		out = append(out, i.Item())
	}
	return out
}
