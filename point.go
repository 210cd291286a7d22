package kdtree

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// CoordCompare orders two keys along a single dimension. It returns a
// negative number if the dim-th coordinate of a is smaller than that of b,
// zero if both are equal, and a positive number otherwise.
//
// dim is always in [0, Dims).
type CoordCompare[K any] func(a, b K, dim int) int

// Config configures a k-d tree over keys of type K.
//
// Keys may be of any type, including structs with heterogeneously typed
// fields; the comparator decides what the coordinates are:
//
//	type Person struct {
//	    Name string
//	    Age  int
//	}
//	cfg := kdtree.Config[Person]{
//	    Dims: 2,
//	    Compare: func(a, b Person, dim int) int {
//	        if dim == 0 {
//	            return strings.Compare(a.Name, b.Name)
//	        }
//	        return a.Age - b.Age
//	    },
//	}
//
// For keys with uniformly typed coordinates, see Of.
type Config[K any] struct {
	// Dims is the number of key dimensions k; it must be at least 1.
	Dims int
	// Compare orders two keys along a single dimension.
	Compare CoordCompare[K]
}

func (cfg Config[K]) validate() error {
	if cfg.Dims <= 0 {
		return fmt.Errorf("%w: dimension count must be positive, got %d", ErrInvalidConfig, cfg.Dims)
	}
	if cfg.Compare == nil {
		return fmt.Errorf("%w: coordinate comparator is required", ErrInvalidConfig)
	}
	return nil
}

// Pair is one key-value entry of a tree.
type Pair[K, V any] struct {
	Key   K
	Value V
}

// Vector is a fixed-arity key with like-typed, naturally ordered
// coordinates. All vectors stored in one tree must have (at least) the
// arity the tree is configured with.
type Vector[T constraints.Ordered] []T

// Of returns a configuration for Vector[T] keys of the given arity,
// comparing coordinates with their natural order.
func Of[T constraints.Ordered](dims int) Config[Vector[T]] {
	return Config[Vector[T]]{
		Dims: dims,
		Compare: func(a, b Vector[T], dim int) int {
			switch {
			case a[dim] < b[dim]:
				return -1
			case b[dim] < a[dim]:
				return 1
			}
			return 0
		},
	}
}
