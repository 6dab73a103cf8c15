// Package rbt implements an ordered key-value map backed by a red-black
// tree: a self-balancing binary search tree that guarantees O(log n)
// lookup, insertion, deletion and ordered traversal.
//
// Keys are ordered by a strict less-than predicate supplied at
// construction. Two keys are considered equal when neither orders before
// the other, so key types compared case-insensitively or by a derived
// field work without a separate equality operation.
package rbt

import (
	"cmp"
	"iter"
)

// New returns an empty tree whose keys are ordered by less.
// less must be a strict weak ordering: less(a, a) is false, and
// less(a, b) && less(b, c) implies less(a, c).
func New[K, V any](less func(a, b K) bool) *Tree[K, V] {
	s := &Node[K, V]{color: black}
	s.parent, s.left, s.right = s, s, s
	return &Tree[K, V]{root: s, sentinel: s, less: less}
}

// NewOrdered returns an empty tree over keys with Go's standard ordering.
func NewOrdered[K cmp.Ordered, V any]() *Tree[K, V] {
	return New[K, V](cmp.Less[K])
}

// FromSeq2 builds a tree ordered by less from a sequence of key-value
// pairs. Later pairs overwrite earlier pairs with an equal key.
func FromSeq2[K, V any](less func(a, b K) bool, seq iter.Seq2[K, V]) *Tree[K, V] {
	return New[K, V](less).SetAll(seq)
}
