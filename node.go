package kdtree

// node owns one entry and its two subtrees. Children are exclusively owned
// by their parent; the parent field is a plain back-reference and never
// participates in ownership.
//
// The key is stored mutable: erase overwrites a surviving node's entry with
// a descendant's as part of the structural substitution. The public API
// exposes no key mutation.
type node[K, V any] struct {
	pair   Pair[K, V]
	parent *node[K, V]
	left   *node[K, V]
	right  *node[K, V]
}

func newNode[K, V any](key K, value V, parent *node[K, V]) *node[K, V] {
	return &node[K, V]{
		pair:   Pair[K, V]{Key: key, Value: value},
		parent: parent,
	}
}

// leftmost returns the first node of n's subtree in traversal order.
func (n *node[K, V]) leftmost() *node[K, V] {
	for n.left != nil {
		n = n.left
	}
	return n
}

// rightmost returns the last node of n's subtree in traversal order.
func (n *node[K, V]) rightmost() *node[K, V] {
	for n.right != nil {
		n = n.right
	}
	return n
}

// depth counts parent links up to the root (root has depth 0).
func (n *node[K, V]) depth() int {
	d := 0
	for p := n.parent; p != nil; p = p.parent {
		d++
	}
	return d
}

// copySubtree duplicates n's subtree; parent becomes the parent link of
// the copied root.
func copySubtree[K, V any](n, parent *node[K, V]) *node[K, V] {
	if n == nil {
		return nil
	}
	c := newNode(n.pair.Key, n.pair.Value, parent)
	c.left = copySubtree(n.left, c)
	c.right = copySubtree(n.right, c)
	return c
}
