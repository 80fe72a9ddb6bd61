package newick

import (
	"strconv"
)

// Builder is the capability a tree type must provide to be the target of a
// parse. Nodes are built bottom up: children are always built before their
// parent.
type Builder[T any] interface {
	// Leaf builds a childless node. An empty name means the node is unnamed.
	Leaf(name string) T

	// Internal builds a node from a non-empty, ordered list of children.
	Internal(name string, children []T) T

	// WithLength sets the branch length of a freshly built node. It is
	// called exactly once per node, with nil when no length was given.
	WithLength(node T, length *float64) T
}

// ParseOptions configures a parse.
type ParseOptions struct {
	// MaxDepth limits how deeply parenthesized branch sets may nest. Zero
	// means no limit.
	MaxDepth int
}

// Parse reads exactly one tree from s, building it with b. The text must
// consist of a single tree terminated by a ';', optionally followed by
// whitespace.
//
// Any error returned is a *SyntaxError.
func Parse[T any](s string, b Builder[T]) (T, error) {
	return ParseWith(s, b, ParseOptions{})
}

// ParseWith is like Parse, but with explicit options.
func ParseWith[T any](s string, b Builder[T], opts ParseOptions) (T, error) {
	p := &parser[T]{lexer: lex(s), b: b, opts: opts}
	tree, err := p.tree()
	if err != nil {
		var zero T
		return zero, err
	}
	p.skipSpace()
	if !p.done() {
		var zero T
		return zero, p.errorf("unexpected text after the terminal ';'")
	}
	return tree, nil
}

// ParseTree reads exactly one tree from s into a *Tree.
func ParseTree(s string) (*Tree, error) {
	return Parse[*Tree](s, TreeBuilder{})
}

type parser[T any] struct {
	*lexer
	b     Builder[T]
	opts  ParseOptions
	depth int
}

// tree := (branch | sub_tree) ';'
//
// A branch is a sub-tree followed by an optional length, so the branch
// alternative matches wherever sub_tree alone would. Only the branch rule
// is therefore tried.
func (p *parser[T]) tree() (T, error) {
	root, err := p.branch()
	if err != nil {
		return root, err
	}
	p.skipSpace()
	if !p.accept(terminal) {
		return root, p.errorf("expected the terminal ';'")
	}
	return root, nil
}

// sub_tree := internal | leaf
//
// Internal nodes are distinguished by their leading '('. Once it has been
// consumed the leaf alternative can no longer lead to a valid tree, so a
// failure inside the branch set is reported as is.
func (p *parser[T]) subTree() (T, error) {
	p.skipSpace()
	if p.peek() == descStart {
		return p.internal()
	}
	return p.leaf()
}

// leaf := name
func (p *parser[T]) leaf() (T, error) {
	name, err := p.name()
	if err != nil {
		var zero T
		return zero, err
	}
	return p.b.Leaf(name), nil
}

// internal := '(' branch_set ')' name
func (p *parser[T]) internal() (T, error) {
	var zero T

	open := p.mark()
	p.next()
	p.depth++
	if p.opts.MaxDepth > 0 && p.depth > p.opts.MaxDepth {
		return zero, p.errorfAt(open,
			"branch sets nested more than %d deep", p.opts.MaxDepth)
	}

	children, err := p.branchSet()
	if err != nil {
		return zero, err
	}
	p.skipSpace()
	if !p.accept(descEnd) {
		if p.done() {
			return zero, p.errorfAt(open, "unbalanced '('")
		}
		return zero, p.errorf("expected ',' or ')'")
	}
	p.depth--

	name, err := p.name()
	if err != nil {
		return zero, err
	}
	return p.b.Internal(name, children), nil
}

// branch_set := branch (',' branch_set)?
func (p *parser[T]) branchSet() ([]T, error) {
	var children []T
	for {
		child, err := p.branch()
		if err != nil {
			return nil, err
		}
		children = append(children, child)

		p.skipSpace()
		if !p.accept(branchDelim) {
			return children, nil
		}
	}
}

// branch := sub_tree length?
func (p *parser[T]) branch() (T, error) {
	node, err := p.subTree()
	if err != nil {
		return node, err
	}
	length, err := p.length()
	if err != nil {
		var zero T
		return zero, err
	}
	return p.b.WithLength(node, length), nil
}

// name := quoted_name | bare_name
//
// A missing name is the empty bare name.
func (p *parser[T]) name() (string, error) {
	p.skipSpace()
	if p.peek() == quote {
		return p.quotedName()
	}
	return p.bareName(), nil
}

// quoted_name := "'" [^']* "'"
func (p *parser[T]) quotedName() (string, error) {
	open := p.mark()
	p.next()
	start := p.pos
	for {
		switch p.next() {
		case quote:
			return p.input[start : p.pos-1], nil
		case eof:
			return "", p.errorfAt(open, "unterminated quoted label")
		}
	}
}

// bare_name := [^ ()[]':;,]*
func (p *parser[T]) bareName() string {
	start := p.pos
	for {
		if r := p.next(); !isBareLabel(r) {
			p.backup()
			return p.input[start:p.pos]
		}
	}
}

// length := ':' number
//
// Returns nil when there is no ':'. The lexer is left where it was in that
// case, so whitespace is only consumed around an actual length.
func (p *parser[T]) length() (*float64, error) {
	before := p.mark()
	p.skipSpace()
	if !p.accept(lengthStart) {
		p.reset(before)
		return nil, nil
	}
	p.skipSpace()
	v, err := p.number()
	if err != nil {
		return nil, err
	}
	return &v, nil
}

// number scans a floating point literal: an optional sign, then either
// digits with an optional fraction or a fraction alone, then an optional
// exponent. The special values inf, infinity and nan are also accepted.
func (p *parser[T]) number() (float64, error) {
	start := p.mark()
	p.acceptOne("+-")

	if p.acceptFold("infinity") || p.acceptFold("inf") || p.acceptFold("nan") {
		return p.parseFloat(start)
	}

	mantissa := p.acceptRun(digits)
	if p.accept('.') {
		mantissa += p.acceptRun(digits)
	}
	if mantissa == 0 {
		return 0, p.errorfAt(start, "expected a branch length")
	}
	if r := p.peek(); r == 'e' || r == 'E' {
		p.next()
		p.acceptOne("+-")
		if p.acceptRun(digits) == 0 {
			return 0, p.errorfAt(start, "malformed exponent in branch length")
		}
	}
	return p.parseFloat(start)
}

func (p *parser[T]) parseFloat(start mark) (float64, error) {
	text := p.input[start.pos:p.pos]
	v, err := strconv.ParseFloat(text, 64)
	if err != nil {
		// Out of range literals still produce +/-Inf or 0, which is the
		// value the literal denotes as closely as a float64 can.
		if ne, ok := err.(*strconv.NumError); !ok || ne.Err != strconv.ErrRange {
			return 0, p.errorfAt(start, "invalid branch length %q", text)
		}
	}
	return v, nil
}
