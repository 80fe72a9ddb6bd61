package newick

import (
	"strconv"
	"strings"
)

// Node is the capability a tree type must provide to be formatted. It is
// used as a constraint of the form `T Node[T]`, so that a node's children
// are of the same type as the node itself.
type Node[T any] interface {
	// Name returns the label of the node, or "" if it's unnamed.
	Name() string

	// Branches returns the children of the node in order. Leaves have none.
	Branches() []T

	// BranchLength returns the length of the branch leading to this node
	// from its parent, or nil if there is none.
	BranchLength() *float64
}

// Format returns the Newick text for the tree rooted at root, terminated by
// a ';'. Formatting can not fail.
//
// Labels are written verbatim. In particular, labels containing spaces or
// any of "()[]':;," are not quoted, so the output will not parse back to the
// same tree. Use a Writer with QuoteNames set to get quoted labels.
func Format[T Node[T]](root T) string {
	var buf strings.Builder
	writeNode(&buf, root, false)
	buf.WriteByte(terminal)
	return buf.String()
}

func writeNode[T Node[T]](buf *strings.Builder, node T, quoteNames bool) {
	if children := node.Branches(); len(children) > 0 {
		buf.WriteByte(descStart)
		for i, child := range children {
			if i > 0 {
				buf.WriteByte(branchDelim)
			}
			writeNode(buf, child, quoteNames)
		}
		buf.WriteByte(descEnd)
	}

	name := node.Name()
	if quoteNames && needsQuotes(name) {
		buf.WriteByte(quote)
		buf.WriteString(name)
		buf.WriteByte(quote)
	} else {
		buf.WriteString(name)
	}

	if length := node.BranchLength(); length != nil {
		buf.WriteByte(lengthStart)
		buf.WriteString(formatLength(*length))
	}
}

// formatLength renders a branch length as the shortest decimal that parses
// back to the same float64.
func formatLength(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// needsQuotes reports whether a label has to be quoted to survive a parse.
// Labels that contain a quote can not be quoted at all and are left alone.
func needsQuotes(name string) bool {
	return strings.ContainsAny(name, unquoteBanned) &&
		!strings.ContainsRune(name, quote)
}
