package kdtree

import (
	"fmt"
	"io"
)

type nodeids[K, V any] struct {
	idTable map[*node[K, V]]int
	max     int
}

func newtable[K, V any]() nodeids[K, V] {
	return nodeids[K, V]{
		idTable: make(map[*node[K, V]]int),
		max:     1,
	}
}

func (ids nodeids[K, V]) find(n *node[K, V]) int {
	return ids.idTable[n]
}

func (ids *nodeids[K, V]) alloc(n *node[K, V]) int {
	if id := ids.find(n); id > 0 {
		return id
	}
	ids.idTable[n] = ids.max
	ids.max++
	return ids.max - 1
}

// ToDot outputs the internal structure of a Tree in Graphviz DOT format
// (for debugging purposes).
func (t *Tree[K, V]) ToDot(w io.Writer) {
	io.WriteString(w, "strict digraph {\n")
	io.WriteString(w, "\tnode [fontname=Arial,fontsize=12];\n")
	if t != nil && t.root != nil {
		ids := newtable[K, V]()
		t.dotNode(w, &ids, t.root, 0)
	}
	io.WriteString(w, "}\n")
}

func (t *Tree[K, V]) dotNode(w io.Writer, ids *nodeids[K, V], n *node[K, V], depth int) {
	ID := ids.alloc(n)
	label := fmt.Sprintf("dim %d\\n%v", depth%t.cfg.Dims, n.pair.Key)
	fmt.Fprintf(w, "\"%d\" [label=\"%s\"];\n", ID, label)
	if n.left == nil && n.right == nil {
		return
	}
	// a single missing child gets a point marker, so left and right stay
	// distinguishable in the rendering
	if n.left == nil {
		nilid := ID + 10000
		fmt.Fprintf(w, "\"%d\" %s;\n", nilid, emptyNode(nilid))
		fmt.Fprintf(w, "\"%d\" -> \"%d\";\n", ID, nilid)
	} else {
		t.dotNode(w, ids, n.left, depth+1)
		fmt.Fprintf(w, "\"%d\" -> \"%d\";\n", ID, ids.find(n.left))
	}
	if n.right == nil {
		nilid := ID + 20000
		fmt.Fprintf(w, "\"%d\" %s;\n", nilid, emptyNode(nilid))
		fmt.Fprintf(w, "\"%d\" -> \"%d\";\n", ID, nilid)
	} else {
		t.dotNode(w, ids, n.right, depth+1)
		fmt.Fprintf(w, "\"%d\" -> \"%d\";\n", ID, ids.find(n.right))
	}
}

func emptyNode(id int) string {
	return fmt.Sprintf("[label=\"%d\",shape=point]", id)
}
