package kdtree

import "sort"

// FromPairs bulk-builds a height-balanced tree from an unordered list of
// pairs in O(k·n log n).
//
// Duplicate keys are resolved before building: exactly one entry per
// distinct key survives, carrying the value of the last occurrence in
// input order. That policy is a tie-break convention, not a guarantee
// clients should lean on.
//
// The input slice is not modified.
func FromPairs[K, V any](cfg Config[K], pairs []Pair[K, V]) (*Tree[K, V], error) {
	t, err := New[K, V](cfg)
	if err != nil {
		return nil, err
	}
	if len(pairs) == 0 {
		return t, nil
	}
	own := make([]Pair[K, V], len(pairs))
	copy(own, pairs)
	sort.SliceStable(own, func(i, j int) bool {
		return t.cmpLex(own[i].Key, own[j].Key) < 0
	})
	// Stable sort keeps equal keys in input order, so the last element of
	// each run carries the winning value.
	dedup := own[:0]
	for i := 0; i < len(own); i++ {
		if i+1 < len(own) && t.keysEqual(own[i].Key, own[i+1].Key) {
			continue
		}
		dedup = append(dedup, own[i])
	}
	t.size = len(dedup)
	t.root = t.buildSubtree(dedup, nil, 0)
	tracer().Debugf("kdtree: bulk build of %d entries (%d duplicate keys dropped)",
		t.size, len(own)-t.size)
	return t, nil
}

// buildSubtree partitions pairs around the median along dim, makes the
// median the subtree root and recurses on both halves with the next
// dimension. Partitioning is selection, not a full sort, so one level
// costs linear time.
func (t *Tree[K, V]) buildSubtree(pairs []Pair[K, V], parent *node[K, V], dim int) *node[K, V] {
	if len(pairs) == 0 {
		return nil
	}
	mid := (len(pairs) - 1) / 2
	t.selectNth(pairs, mid, dim)
	n := newNode(pairs[mid].Key, pairs[mid].Value, parent)
	next := (dim + 1) % t.cfg.Dims
	n.left = t.buildSubtree(pairs[:mid], n, next)
	n.right = t.buildSubtree(pairs[mid+1:], n, next)
	return n
}

// selectNth partially orders pairs so that pairs[nth] holds the element a
// full sort along dim would put there, with everything before it ordered
// no higher and everything after it no lower. Expected linear time.
func (t *Tree[K, V]) selectNth(pairs []Pair[K, V], nth, dim int) {
	lo, hi := 0, len(pairs)-1
	for lo < hi {
		p := t.partition(pairs, lo, hi, dim)
		switch {
		case p == nth:
			return
		case nth < p:
			hi = p - 1
		default:
			lo = p + 1
		}
	}
}

// partition runs a Lomuto pass over pairs[lo:hi+1] with a median-of-three
// pivot and returns the pivot's final index. cmpKeys is a strict total
// order, so the pivot position is unique.
func (t *Tree[K, V]) partition(pairs []Pair[K, V], lo, hi, dim int) int {
	mid := lo + (hi-lo)/2
	if t.cmpKeys(pairs[mid].Key, pairs[lo].Key, dim) < 0 {
		pairs[lo], pairs[mid] = pairs[mid], pairs[lo]
	}
	if t.cmpKeys(pairs[hi].Key, pairs[lo].Key, dim) < 0 {
		pairs[lo], pairs[hi] = pairs[hi], pairs[lo]
	}
	if t.cmpKeys(pairs[hi].Key, pairs[mid].Key, dim) < 0 {
		pairs[mid], pairs[hi] = pairs[hi], pairs[mid]
	}
	pairs[mid], pairs[hi] = pairs[hi], pairs[mid]
	pivot := pairs[hi].Key
	i := lo
	for j := lo; j < hi; j++ {
		if t.cmpKeys(pairs[j].Key, pivot, dim) < 0 {
			pairs[i], pairs[j] = pairs[j], pairs[i]
			i++
		}
	}
	pairs[i], pairs[hi] = pairs[hi], pairs[i]
	return i
}
