package kdtree

// The comparison discipline: descent decisions for find/insert/erase look
// at the active dimension only (lessOnDim), while node-vs-node queries
// (extremum search, bulk partitioning) need a strict total order and break
// coordinate ties with a full lexicographic comparison (cmpKeys).

// cmpDim compares a and b along dim only.
func (t *Tree[K, V]) cmpDim(a, b K, dim int) int {
	return t.cfg.Compare(a, b, dim)
}

// lessOnDim is the descent test: strictly less on the active dimension.
func (t *Tree[K, V]) lessOnDim(a, b K, dim int) bool {
	return t.cfg.Compare(a, b, dim) < 0
}

// cmpLex compares all coordinates in index order.
func (t *Tree[K, V]) cmpLex(a, b K) int {
	for d := 0; d < t.cfg.Dims; d++ {
		if c := t.cfg.Compare(a, b, d); c != 0 {
			return c
		}
	}
	return 0
}

// cmpKeys orders a and b along dim, falling back to full lexicographic
// comparison when the dim-th coordinates are equal. The fallback makes the
// order strict and total for keys that differ anywhere.
func (t *Tree[K, V]) cmpKeys(a, b K, dim int) int {
	if c := t.cfg.Compare(a, b, dim); c != 0 {
		return c
	}
	return t.cmpLex(a, b)
}

func (t *Tree[K, V]) keysEqual(a, b K) bool {
	return t.cmpLex(a, b) == 0
}

// minNode returns the node whose key is smaller along dim; a nil node
// loses to any real node.
func (t *Tree[K, V]) minNode(a, b *node[K, V], dim int) *node[K, V] {
	if a == nil {
		return b
	}
	if b == nil {
		return a
	}
	if t.cmpKeys(a.pair.Key, b.pair.Key, dim) < 0 {
		return a
	}
	return b
}

// maxNode is the mirror of minNode.
func (t *Tree[K, V]) maxNode(a, b *node[K, V], dim int) *node[K, V] {
	if a == nil {
		return b
	}
	if b == nil {
		return a
	}
	if t.cmpKeys(a.pair.Key, b.pair.Key, dim) > 0 {
		return a
	}
	return b
}
