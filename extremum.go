package kdtree

// FindMin returns a cursor at the entry whose dim-th coordinate is minimal
// over the whole tree, or an end cursor for an empty tree.
//
// dim is taken modulo the dimension count and is never an error, also for
// negative values. When several entries tie on the queried coordinate the
// winner is decided by full lexicographic key comparison; treat that as an
// arbitrary deterministic convention.
func (t *Tree[K, V]) FindMin(dim int) *Cursor[K, V] {
	if t == nil || t.root == nil {
		return t.End()
	}
	return &Cursor[K, V]{tree: t, node: t.minOnDim(t.root, t.wrapDim(dim), 0)}
}

// FindMax is the mirror of FindMin: it returns a cursor at the entry whose
// dim-th coordinate is maximal.
func (t *Tree[K, V]) FindMax(dim int) *Cursor[K, V] {
	if t == nil || t.root == nil {
		return t.End()
	}
	return &Cursor[K, V]{tree: t, node: t.maxOnDim(t.root, t.wrapDim(dim), 0)}
}

// wrapDim maps any integer onto a valid dimension index.
func (t *Tree[K, V]) wrapDim(dim int) int {
	d := dim % t.cfg.Dims
	if d < 0 {
		d += t.cfg.Dims
	}
	return d
}

// minOnDim computes the minimum along cmpDim within the subtree at n,
// where n partitions along dim.
//
// The left subtree is always searched. The right subtree can be pruned
// when cmpDim equals the partition dimension: the split guarantees no
// right descendant is smaller on that coordinate than n itself. This
// pruning is what makes single-coordinate queries sublinear on a balanced
// tree.
func (t *Tree[K, V]) minOnDim(n *node[K, V], cmpDim, dim int) *node[K, V] {
	if n == nil {
		return nil
	}
	next := (dim + 1) % t.cfg.Dims
	min := t.minOnDim(n.left, cmpDim, next)
	if cmpDim != dim {
		min = t.minNode(min, t.minOnDim(n.right, cmpDim, next), cmpDim)
	}
	return t.minNode(min, n, cmpDim)
}

// maxOnDim mirrors minOnDim, pruning the left subtree instead.
func (t *Tree[K, V]) maxOnDim(n *node[K, V], cmpDim, dim int) *node[K, V] {
	if n == nil {
		return nil
	}
	next := (dim + 1) % t.cfg.Dims
	max := t.maxOnDim(n.right, cmpDim, next)
	if cmpDim != dim {
		max = t.maxNode(max, t.maxOnDim(n.left, cmpDim, next), cmpDim)
	}
	return t.maxNode(max, n, cmpDim)
}
