package kdtree

import "fmt"

// Check validates structural tree invariants.
//
// Every node is validated against the partition discipline of its depth:
// left descendants strictly smaller on the active dimension, right
// descendants not smaller. Parent links and the size counter are verified
// as well. This checker is intentionally strict and meant for tests.
func (t *Tree[K, V]) Check() error {
	if t == nil {
		return fmt.Errorf("%w: nil tree", ErrInvalidConfig)
	}
	if err := t.cfg.validate(); err != nil {
		return err
	}
	if t.root == nil {
		if t.size != 0 {
			return fmt.Errorf("%w: empty tree must have size=0, has %d", ErrInvalidConfig, t.size)
		}
		return nil
	}
	if t.root.parent != nil {
		return fmt.Errorf("%w: root must not have a parent link", ErrInvalidConfig)
	}
	count, err := t.checkNode(t.root, 0)
	if err != nil {
		return err
	}
	if count != t.size {
		return fmt.Errorf("%w: size mismatch (%d counted, %d recorded)", ErrInvalidConfig, count, t.size)
	}
	return nil
}

func (t *Tree[K, V]) checkNode(n *node[K, V], dim int) (int, error) {
	next := (dim + 1) % t.cfg.Dims
	count := 1
	if n.left != nil {
		if n.left.parent != n {
			return 0, fmt.Errorf("%w: broken parent link below dim %d node", ErrInvalidConfig, dim)
		}
		if err := t.checkPartition(n.left, n, dim, true); err != nil {
			return 0, err
		}
		c, err := t.checkNode(n.left, next)
		if err != nil {
			return 0, err
		}
		count += c
	}
	if n.right != nil {
		if n.right.parent != n {
			return 0, fmt.Errorf("%w: broken parent link below dim %d node", ErrInvalidConfig, dim)
		}
		if err := t.checkPartition(n.right, n, dim, false); err != nil {
			return 0, err
		}
		c, err := t.checkNode(n.right, next)
		if err != nil {
			return 0, err
		}
		count += c
	}
	return count, nil
}

// checkPartition verifies every key of the subtree at sub against the
// partition of anchor along dim.
func (t *Tree[K, V]) checkPartition(sub, anchor *node[K, V], dim int, left bool) error {
	if sub == nil {
		return nil
	}
	c := t.cmpDim(sub.pair.Key, anchor.pair.Key, dim)
	if left && c >= 0 {
		return fmt.Errorf("%w: left descendant not strictly below partition on dim %d", ErrInvalidConfig, dim)
	}
	if !left && c < 0 {
		return fmt.Errorf("%w: right descendant below partition on dim %d", ErrInvalidConfig, dim)
	}
	if err := t.checkPartition(sub.left, anchor, dim, left); err != nil {
		return err
	}
	return t.checkPartition(sub.right, anchor, dim, left)
}
