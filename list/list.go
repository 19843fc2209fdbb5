// Package list provides a singly-linked list that is grown at the tail,
// shrunk at the head and can be reversed in place.
package list

import (
	"fmt"
	"strings"
)

const (
	separator = " -> "
	nilToken  = "Nil"
)

// List is a singly-linked list. It is not safe for concurrent use.
//
// The zero List is empty and may be used immediately.
// Each cell exclusively owns the rest of the list after it, so the list
// is always a finite chain ending in the empty list.
type List[T any] struct {
	head *cell[T]
}

type cell[T any] struct {
	v    T
	next *cell[T]
}

// New returns an empty list.
func New[T any]() *List[T] {
	return &List[T]{}
}

// FromSlice returns a list holding the elements of s in order,
// so that s[0] is at the head.
func FromSlice[S ~[]T, T any](s S) *List[T] {
	l := New[T]()

	// keep a pointer to the last link so that building is linear
	link := &l.head
	for _, v := range s {
		*link = &cell[T]{v: v}
		link = &(*link).next
	}

	return l
}

// Insert appends v at the tail of the list. It returns l so that calls
// may be chained:
//
//	l.Insert(1).Insert(2).Insert(3)
func (l *List[T]) Insert(v T) *List[T] {
	link := &l.head
	for *link != nil {
		link = &(*link).next
	}
	*link = &cell[T]{v: v}

	return l
}

// Delete removes the head of the list. Deleting from an empty list
// does nothing.
func (l *List[T]) Delete() {
	c := l.head
	if c == nil {
		return
	}

	l.head = c.next
	// don't let the removed cell keep the rest of the list alive
	c.next = nil
}

// Reverse reverses the list in place, reusing its cells.
func (l *List[T]) Reverse() {
	var prev *cell[T]
	cur := l.head

	for cur != nil {
		next := cur.next
		cur.next = prev
		prev, cur = cur, next
	}

	l.head = prev
}

// ToSlice returns the elements of the list from head to tail.
// The list is not modified.
func (l *List[T]) ToSlice() []T {
	out := make([]T, 0, l.Len())

	l.ForEach(func(v T) bool {
		out = append(out, v)
		return true
	})

	return out
}

// Len returns the number of elements in the list.
// This takes time linear in the length of the list.
func (l *List[T]) Len() int {
	n := 0

	l.ForEach(func(T) bool {
		n++
		return true
	})

	return n
}

// ForEach calls f on each element from head to tail.
// If f returns false, the iteration is stopped early.
//
// The result of modifying the list while iterating over it is undefined.
func (l *List[T]) ForEach(f func(v T) bool) {
	if l == nil || l.head == nil {
		return
	}

	hare := l.head.next

	for c := l.head; c != nil; c = c.next {
		if c == hare {
			// bug in the list, not in the caller
			panic("cycle detected, iteration will not end")
		}

		if !f(c.v) {
			break
		}

		if hare != nil && hare.next != nil {
			hare = hare.next.next
		} else {
			// hare has reached the end, iteration will too
			hare = nil
		}
	}
}

// Equal reports whether a and b have the same length and
// equal elements at every position.
func Equal[T comparable](a, b *List[T]) bool {
	return EqualFunc(a, b, func(x, y T) bool {
		return x == y
	})
}

// EqualFunc is like Equal but compares elements with eq.
func EqualFunc[T any](a, b *List[T], eq func(x, y T) bool) bool {
	var ca, cb *cell[T]
	if a != nil {
		ca = a.head
	}
	if b != nil {
		cb = b.head
	}

	for ca != nil && cb != nil {
		if !eq(ca.v, cb.v) {
			return false
		}
		ca, cb = ca.next, cb.next
	}

	return ca == nil && cb == nil
}

// String returns the elements of the list joined by " -> ",
// followed by "Nil". An empty list is just "Nil".
// Elements are formatted with fmt.Sprint.
func (l *List[T]) String() string {
	var sb strings.Builder

	l.ForEach(func(v T) bool {
		sb.WriteString(fmt.Sprint(v))
		sb.WriteString(separator)
		return true
	})
	sb.WriteString(nilToken)

	return sb.String()
}
