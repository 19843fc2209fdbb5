// Package tree holds the node type and primitive operations
// shared by the binary tree implementations in this module.
package tree

import (
	"golang.org/x/exp/constraints"
)

// Node is a binary tree node. A nil *Node is an empty subtree (a leaf).
// Extra is free for the owning tree implementation to use, for example
// to cache the height of the subtree rooted here.
//
// Each node exclusively owns its children. There are no parent pointers,
// so a subtree can be moved around by reassigning a single pointer.
type Node[T any, X any] struct {
	Key         T
	Extra       X
	Left, Right *Node[T, X]
}

// NodeOf returns a new node with no children.
func NodeOf[T any, X any](k T, x X) *Node[T, X] {
	return &Node[T, X]{
		Key:   k,
		Extra: x,
	}
}

// BasicNodeOf returns a new node with no children and no extra data.
func BasicNodeOf[T any](k T) *Node[T, struct{}] {
	return NodeOf(k, struct{}{})
}

// Instead of using constraints.Ordered, I also considered using
// interface[T any] { CompareTo(T) int }.
// This allows T to mutate, for example if we defined:
//	type IntPtr *int
// and then implemented:
//	func (ip IntPtr) CompareTo(ip2 IntPtr) int {
//		return (*ip2)-(*ip)
//	}
// client code could mutate *IntPtr at any time, ruining our tree invariants.
// This is probably not ideal.

type Order int

const (
	Less Order = iota - 1
	Equal
	Greater
)

func (o Order) String() string {
	switch o {
	case Less:
		return "Less"
	case Equal:
		return "Equal"
	case Greater:
		return "Greater"
	default:
		return "<invalid tree.Order>"
	}
}

// Compare returns the Order of l relative to r.
func Compare[T constraints.Ordered](l, r T) Order {
	if l < r {
		return Less
	} else if l > r {
		return Greater
	} else {
		return Equal
	}
}

// Same reports whether the trees rooted at a and b have the same shape
// and the same key at every position. Extra is not compared.
// Two search trees holding the same keys may still differ here
// if they were built in a different order.
func Same[T comparable, X any](a, b *Node[T, X]) bool {
	if a == nil || b == nil {
		return a == b
	}

	return a.Key == b.Key && Same(a.Left, b.Left) && Same(a.Right, b.Right)
}
