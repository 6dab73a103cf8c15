package rbt

import (
	"fmt"
	"strings"
)

// Dump returns a human-readable rendering of the tree shape, rightmost
// key first, one node per line as "key(R)" or "key(B)" indented by
// depth. Intended for debugging.
func (t *Tree[K, V]) Dump() string {
	t.mustLive()
	if t.root == t.sentinel {
		return "(empty)\n"
	}
	var b strings.Builder
	t.dump(&b, t.root, 0)
	return b.String()
}

func (t *Tree[K, V]) dump(b *strings.Builder, n *Node[K, V], depth int) {
	if n == t.sentinel {
		return
	}
	t.dump(b, n.right, depth+1)
	c := "B"
	if n.color == red {
		c = "R"
	}
	fmt.Fprintf(b, "%s%v(%s)\n", strings.Repeat("    ", depth), n.key, c)
	t.dump(b, n.left, depth+1)
}

// Validate checks the red-black tree invariants by brute force and
// returns a description of the first violation found, or nil when the
// tree is well formed:
//
//  1. the sentinel and the root are black
//  2. no red node has a red child
//  3. every root-to-sentinel path has the same number of black nodes
//  4. an in-order walk yields keys in strictly increasing order
//  5. the recorded size equals the number of reachable nodes
//
// Intended for tests and fuzzing; production callers never need it.
func (t *Tree[K, V]) Validate() error {
	t.mustLive()
	if t.sentinel.color != black {
		return fmt.Errorf("sentinel is not black")
	}
	if t.root.color != black {
		return fmt.Errorf("root %v is not black", t.root.key)
	}
	count, _, err := t.checkSubtree(t.root)
	if err != nil {
		return err
	}
	if count != t.size {
		return fmt.Errorf("size is %d but %d nodes are reachable", t.size, count)
	}
	var prev *Node[K, V]
	for n := minimum(t.root); !n.isSentinel(); n = successor(n) {
		if prev != nil && !t.less(prev.key, n.key) {
			return fmt.Errorf("in-order walk not strictly increasing: %v before %v", prev.key, n.key)
		}
		prev = n
	}
	return nil
}

// checkSubtree returns the reachable-node count and black-height of the
// subtree at n, or the first invariant violation within it.
func (t *Tree[K, V]) checkSubtree(n *Node[K, V]) (int, int, error) {
	if n == t.sentinel {
		return 0, 1, nil
	}
	if n.color == red && (n.left.color == red || n.right.color == red) {
		return 0, 0, fmt.Errorf("red node %v has a red child", n.key)
	}
	leftCount, leftHeight, err := t.checkSubtree(n.left)
	if err != nil {
		return 0, 0, err
	}
	rightCount, rightHeight, err := t.checkSubtree(n.right)
	if err != nil {
		return 0, 0, err
	}
	if leftHeight != rightHeight {
		return 0, 0, fmt.Errorf("black-height mismatch at %v: left %d, right %d", n.key, leftHeight, rightHeight)
	}
	height := leftHeight
	if n.color == black {
		height++
	}
	return leftCount + rightCount + 1, height, nil
}
