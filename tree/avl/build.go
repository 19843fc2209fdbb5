package avl

import (
	"math"
	"math/rand"
)

// BuildRandom builds an AVL tree with num nodes.
// Node keys are in the range [0, num) and are inserted in a random order.
// The seed for the random insert order is a parameter,
// which ensures repeatable results.
func BuildRandom(num int, seed int64) *Tree[int] {
	rd := rand.New(rand.NewSource(seed))

	nodes := make([]int, num)
	for i := 0; i < num; i++ {
		nodes[i] = i
	}

	rd.Shuffle(num, func(i, j int) {
		nodes[i], nodes[j] = nodes[j], nodes[i]
	})

	return FromSlice(nodes)
}

// MaxHeight returns an upper bound on the height of an AVL tree
// holding num keys: ceil(1.44 * log2(num + 2)).
func MaxHeight(num int) int {
	if num <= 0 {
		return 0
	}
	return int(math.Ceil(1.44 * math.Log2(float64(num+2))))
}
