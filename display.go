package kdtree

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"golang.org/x/term"
)

// Dump writes a human-readable rendition of the tree shape to w, one node
// per line, indented by depth. When w is an interactive terminal, the
// active dimension tag of each node is colorized; otherwise output is
// plain text.
//
// The second line of each child block belongs to the left subtree, then
// the right one; missing left children are marked with "·" so the shape
// stays readable.
func (t *Tree[K, V]) Dump(w io.Writer) {
	if t == nil || t.root == nil {
		fmt.Fprintln(w, "(empty tree)")
		return
	}
	palette := dumpPalette(w)
	t.dumpNode(w, t.root, 0, palette)
}

// dumpPalette assigns one color per dimension, cycling when a tree has
// more dimensions than the palette has entries.
func dumpPalette(w io.Writer) []*color.Color {
	palette := []*color.Color{
		color.New(color.FgCyan),
		color.New(color.FgGreen),
		color.New(color.FgMagenta),
		color.New(color.FgYellow),
	}
	f, ok := w.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		for _, c := range palette {
			c.DisableColor()
		}
	}
	return palette
}

func (t *Tree[K, V]) dumpNode(w io.Writer, n *node[K, V], depth int, palette []*color.Color) {
	dim := depth % t.cfg.Dims
	tag := palette[dim%len(palette)].Sprintf("[dim %d]", dim)
	fmt.Fprintf(w, "%s%s %v\n", strings.Repeat("  ", depth), tag, n.pair.Key)
	if n.left == nil && n.right == nil {
		return
	}
	if n.left != nil {
		t.dumpNode(w, n.left, depth+1, palette)
	} else {
		fmt.Fprintf(w, "%s·\n", strings.Repeat("  ", depth+1))
	}
	if n.right != nil {
		t.dumpNode(w, n.right, depth+1, palette)
	}
}
