package rbt

import (
	"iter"
)

// Size returns the number of live entries in the tree.
func (t *Tree[K, V]) Size() int {
	t.mustLive()
	return t.size
}

// Get returns the value stored under key, or the zero value and false
// when the key is absent.
func (t *Tree[K, V]) Get(key K) (V, bool) {
	if n := t.FindNode(key); n != nil {
		return n.value, true
	}
	var zero V
	return zero, false
}

// Has reports whether key is present in the tree.
func (t *Tree[K, V]) Has(key K) bool {
	return t.FindNode(key) != nil
}

// FindNode returns the node holding key, or nil when the key is absent.
// Lookup relies solely on the ordering predicate: a node matches when
// neither its key nor the searched key orders before the other.
func (t *Tree[K, V]) FindNode(key K) *Node[K, V] {
	t.mustLive()
	x := t.root
	for x != t.sentinel {
		switch {
		case t.less(key, x.key):
			x = x.left
		case t.less(x.key, key):
			x = x.right
		default:
			return x
		}
	}
	return nil
}

// Min returns the node with the smallest key, or nil for an empty tree.
func (t *Tree[K, V]) Min() *Node[K, V] {
	t.mustLive()
	return realOrNil(minimum(t.root))
}

// Max returns the node with the largest key, or nil for an empty tree.
func (t *Tree[K, V]) Max() *Node[K, V] {
	t.mustLive()
	return realOrNil(maximum(t.root))
}

// Set stores value under key and returns the tree for chaining. When an
// equal key is already present its value is overwritten in place; no
// new node is allocated and the size does not change.
func (t *Tree[K, V]) Set(key K, value V) *Tree[K, V] {
	t.mustLive()

	parent := t.sentinel
	x := t.root
	for x != t.sentinel {
		parent = x
		switch {
		case t.less(key, x.key):
			x = x.left
		case t.less(x.key, key):
			x = x.right
		default:
			x.value = value
			return t
		}
	}

	n := &Node[K, V]{
		key:    key,
		value:  value,
		color:  red,
		left:   t.sentinel,
		right:  t.sentinel,
		parent: parent,
	}
	if parent == t.sentinel {
		t.root = n
	} else if t.less(key, parent.key) {
		parent.left = n
	} else {
		parent.right = n
	}
	t.size++
	t.fixInsert(n)
	return t
}

// SetAll stores every pair of seq into the tree, in sequence order, and
// returns the tree for chaining.
func (t *Tree[K, V]) SetAll(seq iter.Seq2[K, V]) *Tree[K, V] {
	for k, v := range seq {
		t.Set(k, v)
	}
	return t
}

// fixInsert restores the red-black invariants after linking a new red
// node x: it absorbs red-red violations upward while the uncle is red,
// and resolves the final violation with at most two rotations.
func (t *Tree[K, V]) fixInsert(x *Node[K, V]) {
	for x.parent.color == red {
		if x.parent == x.parent.parent.left {
			y := x.parent.parent.right
			if y.color == red {
				x.parent.color = black
				y.color = black
				x.parent.parent.color = red
				x = x.parent.parent
			} else {
				if x == x.parent.right {
					x = x.parent
					t.leftRotate(x)
				}
				x.parent.color = black
				x.parent.parent.color = red
				t.rightRotate(x.parent.parent)
			}
		} else {
			y := x.parent.parent.left
			if y.color == red {
				x.parent.color = black
				y.color = black
				x.parent.parent.color = red
				x = x.parent.parent
			} else {
				if x == x.parent.left {
					x = x.parent
					t.rightRotate(x)
				}
				x.parent.color = black
				x.parent.parent.color = red
				t.leftRotate(x.parent.parent)
			}
		}
	}
	t.root.color = black
}

func (t *Tree[K, V]) leftRotate(x *Node[K, V]) {
	/*
		Left rotation around node x:
			Before:               After:
			      P                    P
			      |                    |
			      x                    y
			     / \                  / \
			    A   y       →        x   C
			       / \              / \
			      B   C            A   B
	*/
	y := x.right
	x.right = y.left
	if y.left != t.sentinel {
		y.left.parent = x
	}
	y.parent = x.parent
	if x.parent == t.sentinel {
		t.root = y
	} else if x == x.parent.left {
		x.parent.left = y
	} else {
		x.parent.right = y
	}
	y.left = x
	x.parent = y
}

// rightRotate is the mirror image of leftRotate.
func (t *Tree[K, V]) rightRotate(y *Node[K, V]) {
	x := y.left
	y.left = x.right
	if x.right != t.sentinel {
		x.right.parent = y
	}
	x.parent = y.parent
	if y.parent == t.sentinel {
		t.root = x
	} else if y == y.parent.right {
		y.parent.right = x
	} else {
		y.parent.left = x
	}
	x.right = y
	y.parent = x
}

// Delete removes the entry with an equal key and reports whether an
// entry was removed.
func (t *Tree[K, V]) Delete(key K) bool {
	return t.DeleteNode(t.FindNode(key))
}

// DeleteNode unlinks z from the tree and reports whether a node was
// removed. Passing nil, or a node already deleted, is a no-op.
//
// When z has two children its in-order successor is spliced into z's
// structural position carrying z's color, so the node identity that
// remains in the tree for that key range is the successor's, not z's.
// The removed node has its links detached; a held reference to it keeps
// its key and value readable but no longer navigates anywhere.
func (t *Tree[K, V]) DeleteNode(z *Node[K, V]) bool {
	t.mustLive()
	if z == nil || z.isSentinel() {
		return false
	}
	if z.parent == t.sentinel && t.root != z {
		// already detached: every live node except the root has a real parent
		return false
	}

	var x *Node[K, V]
	y := z
	yOriginalColor := y.color

	if z.left == t.sentinel {
		x = z.right
		t.transplant(z, z.right)
	} else if z.right == t.sentinel {
		x = z.left
		t.transplant(z, z.left)
	} else {
		y = minimum(z.right)
		yOriginalColor = y.color
		x = y.right
		if y.parent == z {
			x.parent = y
		} else {
			t.transplant(y, y.right)
			y.right = z.right
			y.right.parent = y
		}
		t.transplant(z, y)
		y.left = z.left
		y.left.parent = y
		y.color = z.color
	}

	if yOriginalColor == black {
		t.fixDelete(x)
	}

	t.size--
	z.parent, z.left, z.right = t.sentinel, t.sentinel, t.sentinel
	return true
}

// transplant replaces the subtree rooted at u with the subtree rooted
// at v in u's parent link. v may be the sentinel; its parent is set as
// scratch for the deletion fix-up.
func (t *Tree[K, V]) transplant(u, v *Node[K, V]) {
	if u.parent == t.sentinel {
		t.root = v
	} else if u == u.parent.left {
		u.parent.left = v
	} else {
		u.parent.right = v
	}
	v.parent = u.parent
}

// fixDelete restores the red-black invariants after a black node was
// spliced out, walking the "double-black" defect at x upward until it
// reaches a red node or the root, or is resolved by rotation.
func (t *Tree[K, V]) fixDelete(x *Node[K, V]) {
	for x != t.root && x.color == black {
		if x == x.parent.left {
			w := x.parent.right
			if w.color == red {
				w.color = black
				x.parent.color = red
				t.leftRotate(x.parent)
				w = x.parent.right
			}
			if w.left.color == black && w.right.color == black {
				w.color = red
				x = x.parent
			} else {
				if w.right.color == black {
					w.left.color = black
					w.color = red
					t.rightRotate(w)
					w = x.parent.right
				}
				w.color = x.parent.color
				x.parent.color = black
				w.right.color = black
				t.leftRotate(x.parent)
				x = t.root
			}
		} else {
			w := x.parent.left
			if w.color == red {
				w.color = black
				x.parent.color = red
				t.rightRotate(x.parent)
				w = x.parent.left
			}
			if w.right.color == black && w.left.color == black {
				w.color = red
				x = x.parent
			} else {
				if w.left.color == black {
					w.right.color = black
					w.color = red
					t.leftRotate(w)
					w = x.parent.left
				}
				w.color = x.parent.color
				x.parent.color = black
				w.left.color = black
				t.rightRotate(x.parent)
				x = t.root
			}
		}
	}
	x.color = black
}

// Clear removes every entry. Held node references become detached from
// the tree but keep their keys and values readable.
func (t *Tree[K, V]) Clear() {
	t.mustLive()
	t.root = t.sentinel
	t.size = 0
}

// Dispose puts the tree in a terminal state: every subsequent operation
// panics. Useful for catching use of a tree whose owner has handed it
// off or torn it down.
func (t *Tree[K, V]) Dispose() {
	t.mustLive()
	t.root = t.sentinel
	t.size = 0
	t.disposed = true
}

func (t *Tree[K, V]) mustLive() {
	if t.disposed {
		panic("rbt: operation on disposed tree")
	}
}
