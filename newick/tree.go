package newick

import (
	"bytes"
	"fmt"
	"math"
	"strings"
)

// Tree corresponds to any value representable in a Newick format. Each
// tree value corresponds to a single node.
//
// *Tree satisfies Node, and TreeBuilder builds values of it, so a *Tree can
// be both parsed and formatted.
type Tree struct {
	// All children of this node, which may be empty.
	Children []*Tree

	// The label of this node. If it's empty, then this node does
	// not have a name.
	Label string

	// The branch length of this node corresponding to the distance between
	// it and its parent node. If it's `nil`, then no distance exists.
	Length *float64
}

// TreeBuilder builds *Tree values during a parse.
type TreeBuilder struct{}

var _ Builder[*Tree] = TreeBuilder{}

// Leaf returns a childless node.
func (TreeBuilder) Leaf(name string) *Tree {
	return &Tree{Label: name}
}

// Internal returns a node owning children.
func (TreeBuilder) Internal(name string, children []*Tree) *Tree {
	return &Tree{Label: name, Children: children}
}

// WithLength sets the length of t in place and returns it.
func (TreeBuilder) WithLength(t *Tree, length *float64) *Tree {
	t.Length = length
	return t
}

var _ Node[*Tree] = (*Tree)(nil)

// Name returns the label of the node.
func (tree *Tree) Name() string {
	return tree.Label
}

// Branches returns the children of the node.
func (tree *Tree) Branches() []*Tree {
	return tree.Children
}

// BranchLength returns the length of the branch above the node.
func (tree *Tree) BranchLength() *float64 {
	return tree.Length
}

// String returns the tree in Newick format, terminated by a ';'.
func (tree *Tree) String() string {
	return Format(tree)
}

// Indent recursively converts a tree to a string, with whitespace indenting
// to indicate depth.
func (tree *Tree) Indent() string {
	buf := new(bytes.Buffer)
	pf := func(format string, v ...interface{}) {
		fmt.Fprintf(buf, format, v...)
	}

	var out func(t *Tree, depth int)
	out = func(t *Tree, depth int) {
		name, length := t.Label, ""
		if len(name) == 0 {
			name = "N/A"
		}
		if t.Length != nil {
			length = fmt.Sprintf(" (%f)", *t.Length)
		}
		pf("%s%s%s\n", strings.Repeat("  ", depth), name, length)
		for _, child := range t.Children {
			out(child, depth+1)
		}
	}
	out(tree, 0)
	return buf.String()
}

// Len returns the number of nodes in the tree.
func (tree *Tree) Len() int {
	n := 1
	for _, child := range tree.Children {
		n += child.Len()
	}
	return n
}

// Leaves returns every childless node of the tree, in the order they
// appear in Newick text.
func (tree *Tree) Leaves() []*Tree {
	if len(tree.Children) == 0 {
		return []*Tree{tree}
	}
	var leaves []*Tree
	for _, child := range tree.Children {
		leaves = append(leaves, child.Leaves()...)
	}
	return leaves
}

// Equal reports whether two trees have the same labels, lengths and
// children, in the same order. NaN lengths are considered equal to each
// other.
func (tree *Tree) Equal(other *Tree) bool {
	if tree == nil || other == nil {
		return tree == other
	}
	if tree.Label != other.Label || !equalLength(tree.Length, other.Length) {
		return false
	}
	if len(tree.Children) != len(other.Children) {
		return false
	}
	for i := range tree.Children {
		if !tree.Children[i].Equal(other.Children[i]) {
			return false
		}
	}
	return true
}

func equalLength(a, b *float64) bool {
	if a == nil || b == nil {
		return a == b
	}
	if math.IsNaN(*a) && math.IsNaN(*b) {
		return true
	}
	return *a == *b
}
