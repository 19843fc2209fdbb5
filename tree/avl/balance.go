package avl

import (
	"go.lepak.sg/collections/tree"
	"golang.org/x/exp/constraints"
)

func height[T constraints.Ordered](n *tree.Node[T, int]) int {
	if n == nil {
		return 0
	}
	return n.Extra
}

func fixHeight[T constraints.Ordered](n *tree.Node[T, int]) {
	l, r := height(n.Left), height(n.Right)
	if l > r {
		n.Extra = l + 1
	} else {
		n.Extra = r + 1
	}
}

// balanceFactor is height(left) - height(right).
// Anything outside [-1, 1] needs rebalancing.
func balanceFactor[T constraints.Ordered](n *tree.Node[T, int]) int {
	if n == nil {
		return 0
	}
	return height(n.Left) - height(n.Right)
}

func rotateLeft[T constraints.Ordered](n *tree.Node[T, int]) *tree.Node[T, int] {
	p := n.RotateLeft()
	if p != n {
		// n is now below p
		fixHeight(n)
		fixHeight(p)
	}
	return p
}

func rotateRight[T constraints.Ordered](n *tree.Node[T, int]) *tree.Node[T, int] {
	l := n.RotateRight()
	if l != n {
		fixHeight(n)
		fixHeight(l)
	}
	return l
}

// rebalance refreshes the height of n, whose children have just
// been rebalanced themselves, and rotates it if it is out of balance.
// It returns the node that now occupies n's position.
//
//	left-left      rotate n right
//	left-right     rotate n.Left left, then n right
//	right-right    rotate n left
//	right-left     rotate n.Right right, then n left
func rebalance[T constraints.Ordered](n *tree.Node[T, int]) *tree.Node[T, int] {
	fixHeight(n)

	bf := balanceFactor(n)
	switch {
	case bf > 1:
		if balanceFactor(n.Left) < 0 {
			n.Left = rotateLeft(n.Left)
		}
		return rotateRight(n)
	case bf < -1:
		if balanceFactor(n.Right) > 0 {
			n.Right = rotateRight(n.Right)
		}
		return rotateLeft(n)
	default:
		return n
	}
}
