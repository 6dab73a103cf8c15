package rbt

import (
	"iter"
)

// rangeBounds resolves nil bounds to their defaults and reports whether
// the half-open range [start, end) is non-empty. A range whose end does
// not order strictly after its start collapses to the empty sequence.
func (t *Tree[K, V]) rangeBounds(start, end *Node[K, V]) (*Node[K, V], *Node[K, V], bool) {
	t.mustLive()
	if start == nil {
		start = minimum(t.root)
	}
	if end == nil {
		end = t.sentinel
	}
	if start.isSentinel() {
		return start, end, false
	}
	if !end.isSentinel() && !t.less(start.key, end.key) {
		return start, end, false
	}
	return start, end, true
}

// Nodes returns a lazy in-order sequence of the nodes in the half-open
// range [start, end). A nil start means the minimum node; a nil end
// means "to the end of the tree". Each range over the sequence starts
// fresh from the resolved start.
//
// The sequence is live, not a snapshot. The successor is captured
// before each node is yielded, so deleting the yielded node is safe and
// insertions beyond the captured successor remain visible. Deleting the
// not-yet-yielded successor truncates the traversal.
func (t *Tree[K, V]) Nodes(start, end *Node[K, V]) iter.Seq[*Node[K, V]] {
	return func(yield func(*Node[K, V]) bool) {
		cur, stop, ok := t.rangeBounds(start, end)
		if !ok {
			return
		}
		for cur != stop && !cur.isSentinel() {
			next := successor(cur)
			if !yield(cur) {
				return
			}
			cur = next
		}
	}
}

// Entries returns the key-value pairs of [start, end) in key order.
// Bounds behave as in Nodes.
func (t *Tree[K, V]) Entries(start, end *Node[K, V]) iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for n := range t.Nodes(start, end) {
			if !yield(n.key, n.value) {
				return
			}
		}
	}
}

// Keys returns the keys of [start, end) in order. Bounds behave as in
// Nodes.
func (t *Tree[K, V]) Keys(start, end *Node[K, V]) iter.Seq[K] {
	return func(yield func(K) bool) {
		for n := range t.Nodes(start, end) {
			if !yield(n.key) {
				return
			}
		}
	}
}

// Values returns the values of [start, end) in key order. Bounds behave
// as in Nodes.
func (t *Tree[K, V]) Values(start, end *Node[K, V]) iter.Seq[V] {
	return func(yield func(V) bool) {
		for n := range t.Nodes(start, end) {
			if !yield(n.value) {
				return
			}
		}
	}
}

// Iterator returns a pull-style cursor over the whole tree.
func (t *Tree[K, V]) Iterator() *Iterator[K, V] {
	return t.IteratorBetween(nil, nil)
}

// IteratorBetween returns a pull-style cursor over [start, end), with
// the same bound and liveness rules as Nodes.
func (t *Tree[K, V]) IteratorBetween(start, end *Node[K, V]) *Iterator[K, V] {
	cur, stop, ok := t.rangeBounds(start, end)
	if !ok {
		return &Iterator[K, V]{next: t.sentinel, end: t.sentinel}
	}
	return &Iterator[K, V]{next: cur, end: stop}
}

// HasNext reports whether another node remains in the range.
func (it *Iterator[K, V]) HasNext() bool {
	return it != nil && it.next != it.end && !it.next.isSentinel()
}

// Next returns the next node in key order, or ErrNoMoreNodes when the
// range is drained. The following node is captured before returning,
// so the caller may delete the returned node.
func (it *Iterator[K, V]) Next() (*Node[K, V], error) {
	if !it.HasNext() {
		return nil, ErrNoMoreNodes
	}
	cur := it.next
	it.next = successor(cur)
	return cur, nil
}
