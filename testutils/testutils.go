// Package testutils holds helpers shared by the tests of the
// collections in this module.
package testutils

import (
	"math/rand"

	"github.com/stretchr/testify/assert"
	"golang.org/x/exp/constraints"
	"golang.org/x/exp/slices"
)

type TestT interface {
	Log(...any)
	Logf(string, ...any)
	Error(...any)
	Errorf(string, ...any) // also used by testify/assert
}

// Shuffled returns the integers [0, num) in a random order
// determined by seed.
func Shuffled(num int, seed int64) []int {
	rd := rand.New(rand.NewSource(seed))

	out := make([]int, num)
	for i := range out {
		out[i] = i
	}

	rd.Shuffle(num, func(i, j int) {
		out[i], out[j] = out[j], out[i]
	})

	return out
}

// RandomInts returns num integers in [0, max), with repeats,
// drawn from a source seeded with seed.
func RandomInts(num, max int, seed int64) []int {
	rd := rand.New(rand.NewSource(seed))

	out := make([]int, num)
	for i := range out {
		out[i] = rd.Intn(max)
	}

	return out
}

// SortedUnique returns a sorted copy of s with duplicates removed.
// s is not modified.
func SortedUnique[S ~[]E, E constraints.Ordered](s S) []E {
	out := make([]E, len(s))
	copy(out, s)
	slices.Sort(out)
	return slices.Compact(out)
}

// Reversed returns a reversed copy of s.
func Reversed[S ~[]E, E any](s S) []E {
	out := make([]E, len(s))
	for i, v := range s {
		out[len(s)-1-i] = v
	}
	return out
}

// AssertStrictlyIncreasing expects every element of s to be
// greater than the one before it.
func AssertStrictlyIncreasing[E constraints.Ordered](t TestT, s []E) bool {
	for i := 1; i < len(s); i++ {
		if !assert.Less(t, s[i-1], s[i], "at index %d", i) {
			t.Logf("sequence: %v", s)
			return false
		}
	}
	return true
}
