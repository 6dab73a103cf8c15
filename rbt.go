package rbt

import (
	"errors"
)

type color bool

const (
	red   color = true
	black color = false
)

var (
	ErrNoMoreNodes = errors.New("rbt: no more nodes in the iterator")
)

type (
	// Node is a single entry of a Tree. The key is fixed at insertion;
	// the value may be updated in place. Nodes are owned by the tree
	// that created them and become detached on deletion.
	Node[K, V any] struct {
		key   K
		value V
		color color

		left, right, parent *Node[K, V]
	}

	// Tree is an ordered key-value map backed by a red-black tree.
	// Use New, NewOrdered or FromSeq2 to create one.
	//
	// A Tree is not safe for concurrent use without external
	// synchronization.
	Tree[K, V any] struct {
		root     *Node[K, V]
		sentinel *Node[K, V]
		size     int
		less     func(a, b K) bool
		disposed bool
	}

	// Iterator is a pull-style in-order cursor over a half-open range
	// of nodes. The successor of the node about to be returned is
	// captured eagerly, so deleting the node an Iterator just returned
	// does not disturb the remaining traversal.
	Iterator[K, V any] struct {
		next *Node[K, V]
		end  *Node[K, V]
	}
)
