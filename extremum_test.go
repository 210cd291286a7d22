package kdtree

import (
	"math/rand"
	"testing"
)

func randomSpace(t *testing.T, dims, n int, seed int64) *Tree[Vector[int], int] {
	rng := rand.New(rand.NewSource(seed))
	tree, err := New[Vector[int], int](Of[int](dims))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i := 0; i < n; i++ {
		key := make(Vector[int], dims)
		for d := range key {
			key[d] = rng.Intn(500)
		}
		tree.Insert(key, i)
	}
	return tree
}

// bruteExtrema scans all entries for the smallest and largest coordinate
// along dim.
func bruteExtrema(tree *Tree[Vector[int], int], dim int) (min, max int) {
	first := true
	tree.ForEach(func(key Vector[int], _ int) bool {
		if first || key[dim] < min {
			min = key[dim]
		}
		if first || key[dim] > max {
			max = key[dim]
		}
		first = false
		return true
	})
	return min, max
}

func TestExtremaAgainstBruteForce(t *testing.T) {
	const dims = 3
	tree := randomSpace(t, dims, 500, 31)
	for d := 0; d < dims; d++ {
		wantMin, wantMax := bruteExtrema(tree, d)
		minKey, err := tree.FindMin(d).Key()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if minKey[d] != wantMin {
			t.Errorf("FindMin(%d) coordinate %d, brute force says %d", d, minKey[d], wantMin)
		}
		if tree.Find(minKey).AtEnd() {
			t.Errorf("FindMin(%d) returned a key that is not in the tree", d)
		}
		maxKey, err := tree.FindMax(d).Key()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if maxKey[d] != wantMax {
			t.Errorf("FindMax(%d) coordinate %d, brute force says %d", d, maxKey[d], wantMax)
		}
		if tree.Find(maxKey).AtEnd() {
			t.Errorf("FindMax(%d) returned a key that is not in the tree", d)
		}
	}
}

func TestExtremumDimensionWrapsAround(t *testing.T) {
	const dims = 3
	tree := randomSpace(t, dims, 100, 32)
	for d := 0; d < dims; d++ {
		base, _ := tree.FindMin(d).Key()
		wrapped, _ := tree.FindMin(d + dims).Key()
		negative, _ := tree.FindMin(d - dims).Key()
		for i := range base {
			if base[i] != wrapped[i] || base[i] != negative[i] {
				t.Fatalf("dimension aliasing broken for dim %d: %v / %v / %v", d, base, wrapped, negative)
			}
		}
	}
}

func TestExtremaOnEmptyTree(t *testing.T) {
	tree, err := New[Vector[int], int](Of[int](2))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !tree.FindMin(0).AtEnd() || !tree.FindMax(1).AtEnd() {
		t.Errorf("extremum queries on an empty tree must return end cursors")
	}
}

func TestExtremaAfterErases(t *testing.T) {
	const dims = 2
	rng := rand.New(rand.NewSource(33))
	tree, err := New[Vector[int], int](Of[int](dims))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// distinct coordinate values per dimension, see randomPlane
	xs, ys := rng.Perm(1200), rng.Perm(1200)
	for i := 0; i < 300; i++ {
		tree.Insert(Vector[int]{xs[i], ys[i]}, i)
	}
	// erase a third of the entries
	var victims []Vector[int]
	tree.ForEach(func(key Vector[int], _ int) bool {
		if rng.Intn(3) == 0 {
			victims = append(victims, key)
		}
		return true
	})
	for _, k := range victims {
		if !tree.Erase(k) {
			t.Fatalf("expected erase of %v to succeed", k)
		}
	}
	for d := 0; d < dims; d++ {
		wantMin, wantMax := bruteExtrema(tree, d)
		if minKey, _ := tree.FindMin(d).Key(); minKey[d] != wantMin {
			t.Errorf("FindMin(%d) after erases: got %d, want %d", d, minKey[d], wantMin)
		}
		if maxKey, _ := tree.FindMax(d).Key(); maxKey[d] != wantMax {
			t.Errorf("FindMax(%d) after erases: got %d, want %d", d, maxKey[d], wantMax)
		}
	}
}
