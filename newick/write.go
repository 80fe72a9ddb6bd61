package newick

import (
	"bufio"
	"io"
	"strings"

	"github.com/cockroachdb/errors"
)

// Writer writes trees in Newick format, one per line.
type Writer struct {
	// When set to true, labels that contain whitespace or any of
	// "()[]':;," are written inside single quotes so that they parse back
	// unchanged. Labels containing a single quote are always written as is.
	// By default, labels are written exactly as Format writes them.
	QuoteNames bool

	buf *bufio.Writer
}

// NewWriter returns a writer that writes trees to `w`. Flush must be called
// once all trees have been written.
func NewWriter(w io.Writer) *Writer {
	return &Writer{buf: bufio.NewWriter(w)}
}

// WriteTree writes the tree rooted at root, followed by a new line.
func WriteTree[T Node[T]](w *Writer, root T) error {
	var text strings.Builder
	writeNode(&text, root, w.QuoteNames)
	text.WriteByte(terminal)
	text.WriteByte('\n')
	if _, err := w.buf.WriteString(text.String()); err != nil {
		return errors.Wrap(err, "newick: writing tree")
	}
	return nil
}

// WriteAll writes every tree and flushes the writer.
func (w *Writer) WriteAll(trees []*Tree) error {
	for _, tree := range trees {
		if err := WriteTree(w, tree); err != nil {
			return err
		}
	}
	return w.Flush()
}

// Flush writes any buffered data to the underlying writer.
func (w *Writer) Flush() error {
	return errors.Wrap(w.buf.Flush(), "newick: flushing output")
}
