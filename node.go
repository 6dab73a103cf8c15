package rbt

// Key returns the node's key. Keys are immutable after insertion.
func (n *Node[K, V]) Key() K {
	return n.key
}

// Value returns the node's current value.
func (n *Node[K, V]) Value() V {
	return n.value
}

// SetValue overwrites the node's value in place.
func (n *Node[K, V]) SetValue(v V) {
	n.value = v
}

// Next returns the in-order successor of n, or nil if n holds the
// largest key. Calling Next on a node that has been deleted from its
// tree returns nil.
func (n *Node[K, V]) Next() *Node[K, V] {
	return realOrNil(successor(n))
}

// Prev returns the in-order predecessor of n, or nil if n holds the
// smallest key. Calling Prev on a deleted node returns nil.
func (n *Node[K, V]) Prev() *Node[K, V] {
	return realOrNil(predecessor(n))
}

// isSentinel reports whether n is a tree's sentinel. The sentinel is
// the only node linked to itself.
func (n *Node[K, V]) isSentinel() bool {
	return n.left == n
}

func realOrNil[K, V any](n *Node[K, V]) *Node[K, V] {
	if n.isSentinel() {
		return nil
	}
	return n
}

// minimum descends all-left from n. Returns the sentinel when n is the
// sentinel (empty subtree).
func minimum[K, V any](n *Node[K, V]) *Node[K, V] {
	for !n.isSentinel() && !n.left.isSentinel() {
		n = n.left
	}
	return n
}

// maximum descends all-right from n.
func maximum[K, V any](n *Node[K, V]) *Node[K, V] {
	for !n.isSentinel() && !n.right.isSentinel() {
		n = n.right
	}
	return n
}

// successor returns the next node in key order: the leftmost node of
// the right subtree if there is one, otherwise the first ancestor
// reached from its left side. Returns the sentinel past the maximum.
func successor[K, V any](n *Node[K, V]) *Node[K, V] {
	if n.isSentinel() {
		return n
	}
	if !n.right.isSentinel() {
		return minimum(n.right)
	}
	p := n.parent
	for !p.isSentinel() && n == p.right {
		n = p
		p = p.parent
	}
	return p
}

// predecessor is the mirror of successor.
func predecessor[K, V any](n *Node[K, V]) *Node[K, V] {
	if n.isSentinel() {
		return n
	}
	if !n.left.isSentinel() {
		return maximum(n.left)
	}
	p := n.parent
	for !p.isSentinel() && n == p.left {
		n = p
		p = p.parent
	}
	return p
}
