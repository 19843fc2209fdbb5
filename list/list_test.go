package list

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.lepak.sg/collections/testutils"
)

func TestList(t *testing.T) {
	tests := []struct {
		name   string
		create func() *List[int]
		post   func(t *testing.T, l *List[int])
	}{
		{
			name:   "empty",
			create: New[int],
			post: func(t *testing.T, l *List[int]) {
				assert.Equal(t, 0, l.Len())
				assert.Equal(t, "Nil", l.String())
				assert.Equal(t, []int{}, l.ToSlice())

				l.Delete()
				assert.Equal(t, 0, l.Len())

				l.Reverse()
				assert.Equal(t, "Nil", l.String())

				l.ForEach(func(v int) bool {
					t.Errorf("iter callback was called: %d", v)
					return false
				})
			},
		},
		{
			name: "zero value",
			create: func() *List[int] {
				return &List[int]{}
			},
			post: func(t *testing.T, l *List[int]) {
				l.Insert(4)
				assert.Equal(t, "4 -> Nil", l.String())
			},
		},
		{
			name: "insert reverse delete",
			create: func() *List[int] {
				l := New[int]()
				l.Insert(1)
				l.Insert(2)
				l.Insert(3)
				return l
			},
			post: func(t *testing.T, l *List[int]) {
				assert.Equal(t, "1 -> 2 -> 3 -> Nil", l.String())

				l.Reverse()
				assert.Equal(t, []int{3, 2, 1}, l.ToSlice())

				l.Delete()
				assert.Equal(t, []int{2, 1}, l.ToSlice())
				assert.Equal(t, 2, l.Len())
			},
		},
		{
			name: "chained",
			create: func() *List[int] {
				return New[int]().Insert(1).Insert(2).Insert(3)
			},
			post: func(t *testing.T, l *List[int]) {
				assert.Equal(t, []int{1, 2, 3}, l.ToSlice())
			},
		},
		{
			name: "from slice",
			create: func() *List[int] {
				return FromSlice([]int{7, 8, 9})
			},
			post: func(t *testing.T, l *List[int]) {
				require.NotNil(t, l.head)
				assert.Equal(t, 7, l.head.v)
				assert.Equal(t, "7 -> 8 -> 9 -> Nil", l.String())

				l.Insert(10)
				assert.Equal(t, []int{7, 8, 9, 10}, l.ToSlice())
			},
		},
		{
			name: "delete until empty",
			create: func() *List[int] {
				return FromSlice([]int{1, 2})
			},
			post: func(t *testing.T, l *List[int]) {
				l.Delete()
				assert.Equal(t, "2 -> Nil", l.String())
				l.Delete()
				assert.Equal(t, "Nil", l.String())
				l.Delete()
				assert.Equal(t, "Nil", l.String())
				assert.Nil(t, l.head)

				l.Insert(3)
				assert.Equal(t, []int{3}, l.ToSlice())
			},
		},
		{
			name: "reverse one",
			create: func() *List[int] {
				return FromSlice([]int{1})
			},
			post: func(t *testing.T, l *List[int]) {
				l.Reverse()
				assert.Equal(t, []int{1}, l.ToSlice())
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.post(t, tt.create())
		})
	}
}

func TestRoundTrip(t *testing.T) {
	seedrd := rand.New(rand.NewSource(0x5eed))

	for i := 0; i < 20; i++ {
		seed := int64(seedrd.Uint64())
		s := testutils.RandomInts(i*7, 10, seed)

		t.Run(fmt.Sprintf("len=%d", len(s)), func(t *testing.T) {
			l := FromSlice(s)
			assert.Equal(t, len(s), l.Len())
			assert.Equal(t, s, l.ToSlice())

			// building by Insert gives the same list
			l2 := New[int]()
			for _, v := range s {
				l2.Insert(v)
			}
			assert.True(t, Equal(l, l2))
		})
	}
}

func TestReverse_Involution(t *testing.T) {
	for _, size := range []int{0, 1, 2, 3, 10, 1000} {
		t.Run(fmt.Sprintf("size=%d", size), func(t *testing.T) {
			s := testutils.Shuffled(size, int64(size))
			l := FromSlice(s)

			l.Reverse()
			assert.Equal(t, testutils.Reversed(s), l.ToSlice())

			l.Reverse()
			assert.True(t, Equal(FromSlice(s), l))
		})
	}
}

func TestReverse_ReusesCells(t *testing.T) {
	l := FromSlice([]int{1, 2, 3})
	first, last := l.head, l.head.next.next

	l.Reverse()

	assert.Same(t, last, l.head)
	assert.Same(t, first, l.head.next.next)
	assert.Nil(t, first.next)
}

func TestDelete_Shrinks(t *testing.T) {
	s := testutils.Shuffled(50, 3)
	l := FromSlice(s)

	for i := range s {
		before := l.Len()
		removed := l.head

		l.Delete()

		assert.Equal(t, before-1, l.Len())
		assert.Equal(t, s[i+1:], l.ToSlice())
		assert.Nil(t, removed.next, "removed cell still links into the list")
	}

	assert.Equal(t, 0, l.Len())
}

func TestEqual(t *testing.T) {
	tests := []struct {
		name string
		a, b *List[int]
		want bool
	}{
		{"both empty", New[int](), New[int](), true},
		{"nil and empty", nil, New[int](), true},
		{"same", FromSlice([]int{1, 2, 3}), FromSlice([]int{1, 2, 3}), true},
		{"different value", FromSlice([]int{1, 2, 3}), FromSlice([]int{1, 5, 3}), false},
		{"shorter", FromSlice([]int{1, 2}), FromSlice([]int{1, 2, 3}), false},
		{"longer", FromSlice([]int{1, 2, 3}), FromSlice([]int{1, 2}), false},
		{"empty and not", New[int](), FromSlice([]int{1}), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Equal(tt.a, tt.b))
			assert.Equal(t, tt.want, Equal(tt.b, tt.a))
		})
	}
}

func TestEqualFunc(t *testing.T) {
	type point struct{ x, y []int }

	a := FromSlice([]point{{x: []int{1}}, {y: []int{2}}})
	b := FromSlice([]point{{x: []int{1}}, {y: []int{2}}})

	assert.True(t, EqualFunc(a, b, func(p, q point) bool {
		return fmt.Sprint(p) == fmt.Sprint(q)
	}))
}

func TestString_Stringer(t *testing.T) {
	l := FromSlice([]fmt.Stringer{stringer("a"), stringer("b")})
	assert.Equal(t, "<a> -> <b> -> Nil", l.String())

	assert.Equal(t, "x -> y -> Nil", FromSlice([]string{"x", "y"}).String())
}

type stringer string

func (s stringer) String() string {
	return "<" + string(s) + ">"
}

func TestForEach_Cycle(t *testing.T) {
	l := FromSlice([]int{1, 2, 3, 4})
	// corrupt the list on purpose
	l.head.next.next.next.next = l.head.next

	assert.PanicsWithValue(t, "cycle detected, iteration will not end", func() {
		l.Len()
	})
}

func TestForEach_Stop(t *testing.T) {
	l := FromSlice([]int{1, 2, 3, 4})

	var seen []int
	l.ForEach(func(v int) bool {
		seen = append(seen, v)
		return v < 2
	})

	assert.Equal(t, []int{1, 2}, seen)
}

func BenchmarkFromSlice(b *testing.B) {
	s := testutils.Shuffled(10000, 1)

	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = FromSlice(s)
	}
}
