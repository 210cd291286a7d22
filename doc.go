/*
Package kdtree implements a generic, in-memory k-dimensional search tree.

K-d trees

A k-d tree is a binary search tree over keys with k orthogonal coordinates.
Instead of ordering every level by the same comparison, the partitioning
coordinate cycles with the depth of a node: the root partitions its entries
by coordinate 0, its children by coordinate 1, and so on, wrapping around
modulo k. This makes the structure useful whenever entries are addressed by
several independent attributes at once, e.g. points in a plane or records
ordered by more than one column.

The tree maps a fixed-arity key to a value and supports point lookup,
upserting insertion, deletion, bidirectional traversal and per-dimension
minimum/maximum queries. Single-coordinate extremum queries profit from the
cycling partition: on a balanced tree they visit O(n^((k-1)/k)) nodes
instead of all n.

	Operation          |  balanced tree   |  degenerate tree
	-------------------+------------------+-----------------
	Find / Insert      |  O(k · log n)    |  O(k · n)
	Erase              |  O(k · log n)    |  O(k · n)
	FindMin / FindMax  |  O(n^((k-1)/k))  |  O(n)
	Cursor step        |  O(log n) amort. |  O(n)

Trees are balanced only by bulk construction (FromPairs); subsequent single
inserts and erases may degrade the shape and are not rebalanced. Clients
holding a known data set should therefore prefer bulk construction over a
loop of single inserts.

Trees are not safe for concurrent use.

_________________________________________________________________________

# BSD 3-Clause License

Please refer to the LICENSE file for details.
*/
package kdtree

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'kdtree'
func tracer() tracing.Trace {
	return tracing.Select("kdtree")
}

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
