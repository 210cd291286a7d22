package kdtree

// Tree is a k-dimensional search tree mapping fixed-arity keys to values.
//
// At tree depth d, entries are partitioned by their coordinate d mod k:
// keys strictly smaller on that coordinate live in the left subtree,
// everything else in the right. No ordering holds across other
// coordinates.
//
// A tree created by New or FromPairs is ready for use; the zero Tree is
// not (it has no dimension configuration). Trees are not safe for
// concurrent use.
type Tree[K, V any] struct {
	cfg  Config[K]
	root *node[K, V]
	size int
}

// New creates an empty tree with a validated configuration.
//
// A configuration with zero dimensions or without a comparator fails with
// ErrInvalidConfig.
func New[K, V any](cfg Config[K]) (*Tree[K, V], error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &Tree[K, V]{cfg: cfg}, nil
}

// Config returns a copy of the effective tree configuration.
func (t *Tree[K, V]) Config() Config[K] {
	return t.cfg
}

// Size returns the number of live entries.
func (t *Tree[K, V]) Size() int {
	if t == nil {
		return 0
	}
	return t.size
}

// IsEmpty reports whether the tree has no entries.
func (t *Tree[K, V]) IsEmpty() bool {
	return t == nil || t.root == nil
}

// Height returns the tree height, where 0 means empty and 1 means a
// single-node tree.
func (t *Tree[K, V]) Height() int {
	if t == nil {
		return 0
	}
	return subtreeHeight(t.root)
}

func subtreeHeight[K, V any](n *node[K, V]) int {
	if n == nil {
		return 0
	}
	l, r := subtreeHeight(n.left), subtreeHeight(n.right)
	if l > r {
		return l + 1
	}
	return r + 1
}

// Find returns a cursor at the entry with the given key, or an end cursor
// if the key is absent.
func (t *Tree[K, V]) Find(key K) *Cursor[K, V] {
	if t == nil || t.root == nil {
		return t.End()
	}
	return &Cursor[K, V]{tree: t, node: t.findNode(t.root, key, 0)}
}

func (t *Tree[K, V]) findNode(n *node[K, V], key K, dim int) *node[K, V] {
	if n == nil {
		return nil
	}
	if t.keysEqual(key, n.pair.Key) {
		return n
	}
	next := (dim + 1) % t.cfg.Dims
	if t.lessOnDim(key, n.pair.Key, dim) {
		return t.findNode(n.left, key, next)
	}
	return t.findNode(n.right, key, next)
}

// Insert stores key with value. If the key is already present only its
// value is overwritten; the structure and size are unchanged.
func (t *Tree[K, V]) Insert(key K, value V) {
	t.root = t.insertNode(t.root, nil, key, value, 0)
}

func (t *Tree[K, V]) insertNode(n, parent *node[K, V], key K, value V, dim int) *node[K, V] {
	if n == nil {
		t.size++
		return newNode(key, value, parent)
	}
	if t.keysEqual(key, n.pair.Key) {
		n.pair.Value = value
		return n
	}
	next := (dim + 1) % t.cfg.Dims
	if t.lessOnDim(key, n.pair.Key, dim) {
		n.left = t.insertNode(n.left, n, key, value, next)
	} else {
		n.right = t.insertNode(n.right, n, key, value, next)
	}
	return n
}

// Erase removes the entry with the given key and reports whether a removal
// took place. Erasing an absent key leaves the tree unchanged.
func (t *Tree[K, V]) Erase(key K) bool {
	if t == nil || t.root == nil {
		return false
	}
	prev := t.size
	t.root = t.eraseNode(t.root, key, 0)
	return t.size < prev
}

// eraseNode removes key from the subtree at n (partitioning along dim) and
// returns the replacement subtree root.
//
// A matched node with children is not unlinked: its entry is overwritten
// with the minimum-on-dim entry of the right subtree (or, lacking a right
// subtree, the maximum-on-dim of the left one), and that substitute entry
// is then erased one level further down. Exactly one node leaves the tree.
func (t *Tree[K, V]) eraseNode(n *node[K, V], key K, dim int) *node[K, V] {
	if n == nil {
		return nil
	}
	next := (dim + 1) % t.cfg.Dims
	if !t.keysEqual(key, n.pair.Key) {
		if t.lessOnDim(key, n.pair.Key, dim) {
			n.left = t.eraseNode(n.left, key, next)
		} else {
			n.right = t.eraseNode(n.right, key, next)
		}
		return n
	}
	switch {
	case n.left == nil && n.right == nil:
		t.size--
		return nil
	case n.right != nil:
		min := t.minOnDim(n.right, dim, next)
		tracer().Debugf("kdtree: erase substitutes min on dim %d from right subtree", dim)
		n.pair = min.pair
		n.right = t.eraseNode(n.right, min.pair.Key, next)
	default:
		max := t.maxOnDim(n.left, dim, next)
		tracer().Debugf("kdtree: erase substitutes max on dim %d from left subtree", dim)
		n.pair = max.pair
		n.left = t.eraseNode(n.left, max.pair.Key, next)
	}
	return n
}

// Copy returns a deep duplicate of the tree. The copy shares no nodes with
// the original; mutating one never affects the other.
func (t *Tree[K, V]) Copy() *Tree[K, V] {
	if t == nil {
		return nil
	}
	return &Tree[K, V]{
		cfg:  t.cfg,
		root: copySubtree(t.root, nil),
		size: t.size,
	}
}

// ForEach walks entries in traversal order (see Cursor for what that order
// means structurally).
//
// Iteration stops early if callback returns false.
func (t *Tree[K, V]) ForEach(fn func(key K, value V) bool) {
	if t == nil || t.root == nil || fn == nil {
		return
	}
	t.forEachNode(t.root, fn)
}

func (t *Tree[K, V]) forEachNode(n *node[K, V], fn func(K, V) bool) bool {
	if n == nil {
		return true
	}
	if !t.forEachNode(n.left, fn) {
		return false
	}
	if !fn(n.pair.Key, n.pair.Value) {
		return false
	}
	return t.forEachNode(n.right, fn)
}
