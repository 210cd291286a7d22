package kdtree

import (
	"errors"
	"math/rand"
	"testing"
)

func TestInvariantHoldsAfterEachInsert(t *testing.T) {
	rng := rand.New(rand.NewSource(41))
	tree, err := New[Vector[int], int](Of[int](3))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i := 0; i < 300; i++ {
		tree.Insert(Vector[int]{rng.Intn(40), rng.Intn(40), rng.Intn(40)}, i)
		if err := tree.Check(); err != nil {
			t.Fatalf("invariant broken after insert %d: %v", i, err)
		}
	}
}

func TestInvariantHoldsAfterErases(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	tree, err := New[Vector[int], int](Of[int](2))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// distinct coordinate values keep the partition strict through erase
	// substitutions
	xs, ys := rng.Perm(400), rng.Perm(400)
	keys := make([]Vector[int], 100)
	for i := range keys {
		keys[i] = Vector[int]{xs[i], ys[i]}
		tree.Insert(keys[i], i)
	}
	rng.Shuffle(len(keys), func(i, j int) { keys[i], keys[j] = keys[j], keys[i] })
	for i, k := range keys[:50] {
		if !tree.Erase(k) {
			t.Fatalf("expected erase %d of %v to succeed", i, k)
		}
		if err := tree.Check(); err != nil {
			t.Fatalf("invariant broken after erase %d: %v", i, err)
		}
	}
	if tree.Size() != 50 {
		t.Errorf("expected 50 surviving entries, got %d", tree.Size())
	}
	for _, k := range keys[50:] {
		if tree.Find(k).AtEnd() {
			t.Errorf("surviving key %v no longer found", k)
		}
	}
}

func TestCheckDetectsSizeMismatch(t *testing.T) {
	tree, err := New[Vector[int], int](Of[int](2))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	tree.Insert(Vector[int]{1, 2}, 1)
	tree.size++
	if err := tree.Check(); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("expected size mismatch to be reported, got %v", err)
	}
}

func TestCheckDetectsBrokenParentLink(t *testing.T) {
	tree, err := New[Vector[int], int](Of[int](2))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	tree.Insert(Vector[int]{5, 5}, 1)
	tree.Insert(Vector[int]{2, 9}, 2)
	tree.root.left.parent = nil
	if err := tree.Check(); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("expected broken parent link to be reported, got %v", err)
	}
}

func TestCheckDetectsMisplacedKey(t *testing.T) {
	tree, err := New[Vector[int], int](Of[int](2))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	tree.Insert(Vector[int]{5, 5}, 1)
	tree.Insert(Vector[int]{2, 9}, 2)
	// move the left child's key to the wrong side of the partition
	tree.root.left.pair.Key = Vector[int]{8, 9}
	if err := tree.Check(); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("expected misplaced key to be reported, got %v", err)
	}
}
