package newick

import (
	"bufio"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/cockroachdb/errors"
)

// Reader corresponds to the state necessary to read trees from Newick
// formatted input containing any number of ';'-terminated trees.
//
// Each tree is read fully into memory before it is parsed. Positions in
// syntax errors are relative to the start of the input, not of the tree.
type Reader struct {
	// Options used when parsing each tree. This may be set at any time.
	Options ParseOptions

	buf *bufio.Reader

	// Position of the first byte that has not been handed to the parser.
	at mark
}

// NewReader returns a reader ready for reading trees from `r`.
func NewReader(r io.Reader) *Reader {
	return &Reader{
		buf: bufio.NewReader(r),
		at:  mark{pos: 0, line: 1, col: 1},
	}
}

// ReadAll returns all of the Newick trees in the source input. The first
// error that occurs is returned with no trees. The error is never `io.EOF`.
func (r *Reader) ReadAll() ([]*Tree, error) {
	trees := make([]*Tree, 0)
	for {
		tree, err := r.ReadTree()
		if err == io.EOF {
			break
		} else if err != nil {
			return nil, err
		}
		trees = append(trees, tree)
	}
	return trees, nil
}

// ReadTree reads a single tree from the source input. If the end of the
// input is reached, then a nil `Tree` is returned with `io.EOF` as the error.
func (r *Reader) ReadTree() (*Tree, error) {
	return ReadNext[*Tree](r, TreeBuilder{})
}

// ReadNext reads the next tree from r, building it with b. It returns
// `io.EOF` when nothing but whitespace is left in the input.
func ReadNext[T any](r *Reader, b Builder[T]) (T, error) {
	var zero T

	start := r.at
	text, err := r.nextTree()
	if err != nil {
		return zero, err
	}
	tree, err := ParseWith(text, b, r.Options)
	if err != nil {
		var serr *SyntaxError
		if errors.As(err, &serr) {
			serr.shift(start.pos, start.line, start.col)
		}
		return zero, err
	}
	return tree, nil
}

// nextTree returns the text up to and including the next ';' that is not
// inside a quoted label. At the end of the input whatever remains is
// returned so that the parser can report what is wrong with it.
func (r *Reader) nextTree() (string, error) {
	var text strings.Builder
	quoted := false
	for {
		c, err := r.buf.ReadByte()
		if err == io.EOF {
			if strings.TrimSpace(text.String()) == "" {
				return "", io.EOF
			}
			break
		} else if err != nil {
			return "", errors.Wrap(err, "newick: reading input")
		}
		text.WriteByte(c)
		r.advance(c)

		if c == quote {
			quoted = !quoted
		} else if c == terminal && !quoted {
			break
		}
	}
	return text.String(), nil
}

// advance moves the reader's position past c. Columns count runes, so
// UTF-8 continuation bytes do not move the column.
func (r *Reader) advance(c byte) {
	r.at.pos++
	switch {
	case c == '\n':
		r.at.line++
		r.at.col = 1
	case utf8.RuneStart(c):
		r.at.col++
	}
}
