package kdtree

import "fmt"

// Cursor references one entry of a tree, or the one-past-the-last "end"
// position. All end cursors of a tree compare equal.
//
// Stepping follows the structure of the tree as a plain binary tree, using
// only child and parent links: Next visits the leftmost node of the right
// subtree, or climbs until it leaves a left subtree. This is the in-order
// walk of the binary shape, a structural order; it is not a key order
// across dimensions.
//
// A cursor is invalidated when the entry it references is erased, except
// through EraseAt, which hands back a defined replacement. Mutating the
// tree otherwise while holding cursors is the caller's risk.
type Cursor[K, V any] struct {
	tree *Tree[K, V]
	node *node[K, V]
}

// Begin returns a cursor at the first entry in traversal order (the
// leftmost node from the root). For an empty tree Begin equals End.
func (t *Tree[K, V]) Begin() *Cursor[K, V] {
	if t == nil || t.root == nil {
		return t.End()
	}
	return &Cursor[K, V]{tree: t, node: t.root.leftmost()}
}

// End returns the one-past-the-last cursor.
func (t *Tree[K, V]) End() *Cursor[K, V] {
	return &Cursor[K, V]{tree: t}
}

// Valid reports whether the cursor references an entry.
func (c *Cursor[K, V]) Valid() bool {
	return c != nil && c.node != nil
}

// AtEnd reports whether the cursor is at the end position.
func (c *Cursor[K, V]) AtEnd() bool {
	return !c.Valid()
}

// Equal reports whether two cursors reference the same position.
func (c *Cursor[K, V]) Equal(other *Cursor[K, V]) bool {
	var cn, on *node[K, V]
	if c != nil {
		cn = c.node
	}
	if other != nil {
		on = other.node
	}
	return cn == on
}

// Clone returns an independent cursor at the same position.
func (c *Cursor[K, V]) Clone() *Cursor[K, V] {
	if c == nil {
		return nil
	}
	cc := *c
	return &cc
}

// Entry returns the referenced key-value pair.
//
// Fails with ErrInvalidCursor at the end position.
func (c *Cursor[K, V]) Entry() (Pair[K, V], error) {
	if !c.Valid() {
		return Pair[K, V]{}, fmt.Errorf("%w: cannot dereference end position", ErrInvalidCursor)
	}
	return c.node.pair, nil
}

// Key returns the referenced key.
//
// Fails with ErrInvalidCursor at the end position.
func (c *Cursor[K, V]) Key() (K, error) {
	if !c.Valid() {
		var zero K
		return zero, fmt.Errorf("%w: cannot dereference end position", ErrInvalidCursor)
	}
	return c.node.pair.Key, nil
}

// Value returns the referenced value.
//
// Fails with ErrInvalidCursor at the end position.
func (c *Cursor[K, V]) Value() (V, error) {
	if !c.Valid() {
		var zero V
		return zero, fmt.Errorf("%w: cannot dereference end position", ErrInvalidCursor)
	}
	return c.node.pair.Value, nil
}

// SetValue overwrites the referenced entry's value. Keys are immutable.
//
// Fails with ErrInvalidCursor at the end position.
func (c *Cursor[K, V]) SetValue(value V) error {
	if !c.Valid() {
		return fmt.Errorf("%w: cannot mutate end position", ErrInvalidCursor)
	}
	c.node.pair.Value = value
	return nil
}

// Next advances to the structural successor and reports whether the cursor
// still references an entry. At end, Next stays at end and reports false.
func (c *Cursor[K, V]) Next() bool {
	if !c.Valid() {
		return false
	}
	n := c.node
	if n.right != nil {
		c.node = n.right.leftmost()
		return true
	}
	// climb until we leave a left subtree
	p := n.parent
	for p != nil && p.left != n {
		n = p
		p = p.parent
	}
	c.node = p
	return p != nil
}

// Prev steps back to the structural predecessor and reports whether it
// moved. From end it moves to the last entry; at the first entry it stays
// put and reports false.
func (c *Cursor[K, V]) Prev() bool {
	if c == nil {
		return false
	}
	if c.node == nil {
		if c.tree == nil || c.tree.root == nil {
			return false
		}
		c.node = c.tree.root.rightmost()
		return true
	}
	n := c.node
	if n.left != nil {
		c.node = n.left.rightmost()
		return true
	}
	// climb until we leave a right subtree
	p := n.parent
	for p != nil && p.right != n {
		n = p
		p = p.parent
	}
	if p == nil {
		return false
	}
	c.node = p
	return true
}

// EraseAt removes the entry referenced by c and returns a cursor at the
// position where traversal continues, or end if the erased entry was the
// last one.
//
// When the referenced node has children, the substitution erase moves a
// descendant's entry into that very node, so the returned cursor stays on
// the node and now references the substituted entry. Only a childless node
// is unlinked; its removal relocates nothing, so the returned cursor is
// the structural successor computed before the erase.
//
// The active dimension of the referenced node is inferred by walking its
// parent links, so no per-node depth needs to be stored.
//
// Fails with ErrInvalidCursor for end cursors and for cursors bound to a
// different tree.
func (t *Tree[K, V]) EraseAt(c *Cursor[K, V]) (*Cursor[K, V], error) {
	if t == nil || !c.Valid() {
		return t.End(), fmt.Errorf("%w: cannot erase at end position", ErrInvalidCursor)
	}
	if c.tree != t {
		return t.End(), fmt.Errorf("%w: cursor belongs to a different tree", ErrInvalidCursor)
	}
	n := c.node
	if n.left == nil && n.right == nil {
		succ := c.Clone()
		hasSucc := succ.Next()
		t.eraseAtNode(n)
		if !hasSucc {
			return t.End(), nil
		}
		// the successor node survives a leaf removal untouched
		return &Cursor[K, V]{tree: t, node: succ.node}, nil
	}
	t.eraseAtNode(n)
	// n now carries the entry substituted in from below
	return &Cursor[K, V]{tree: t, node: n}, nil
}

// eraseAtNode erases the entry stored at n, inferring the active dimension
// from n's depth.
func (t *Tree[K, V]) eraseAtNode(n *node[K, V]) {
	assert(n != nil, "eraseAtNode called with nil node")
	dim := n.depth() % t.cfg.Dims
	parent := n.parent
	replacement := t.eraseNode(n, n.pair.Key, dim)
	if replacement != nil {
		// n survived with a substituted entry; links are intact
		return
	}
	switch {
	case parent == nil:
		t.root = nil
	case parent.left == n:
		parent.left = nil
	default:
		parent.right = nil
	}
}
