package newick

import (
	"bytes"
	"io"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/require"
)

func sample(s string) io.Reader {
	return bytes.NewReader([]byte(s))
}

func TestReader(t *testing.T) {
	r := NewReader(sample("(A,B,(X,Y)C)ROOT;(A,B,C)ROOT;\n\n"))
	trees, err := r.ReadAll()
	require.NoError(t, err)
	require.Len(t, trees, 2)
	require.Equal(t, "(A,B,(X,Y)C)ROOT;", trees[0].String())
	require.Equal(t, "(A,B,C)ROOT;", trees[1].String())

	tree, err := r.ReadTree()
	require.Nil(t, tree)
	require.Equal(t, io.EOF, err)
}

func TestReaderOneByteAtATime(t *testing.T) {
	input := "('a;b':1,c)'x;y';\n  (d,e);"
	r := NewReader(iotest.OneByteReader(sample(input)))
	trees, err := r.ReadAll()
	require.NoError(t, err)
	require.Len(t, trees, 2)
	require.Equal(t, "a;b", trees[0].Children[0].Label)
	require.Equal(t, "x;y", trees[0].Label)
	require.Equal(t, "(d,e);", trees[1].String())
}

func TestReaderEmpty(t *testing.T) {
	for _, input := range []string{"", " ", "\n\t\r\n"} {
		trees, err := NewReader(sample(input)).ReadAll()
		require.NoError(t, err)
		require.Empty(t, trees)
	}
}

func TestReaderEmptyTrees(t *testing.T) {
	trees, err := NewReader(sample(";;")).ReadAll()
	require.NoError(t, err)
	require.Len(t, trees, 2)
	for _, tree := range trees {
		require.Equal(t, 1, tree.Len())
	}
}

func TestReaderErrorPosition(t *testing.T) {
	input := "(A,B);\n(C,D);  (E F);"
	r := NewReader(sample(input))

	_, err := r.ReadTree()
	require.NoError(t, err)
	_, err = r.ReadTree()
	require.NoError(t, err)

	_, err = r.ReadTree()
	var serr *SyntaxError
	require.True(t, errors.As(err, &serr))
	require.Equal(t, 2, serr.Line)
	require.Equal(t, 12, serr.Column)
	require.Equal(t, strings.Index(input, "F);"), serr.Offset)
	require.Equal(t, "F);", serr.Found)
}

func TestReaderMissingTerminal(t *testing.T) {
	r := NewReader(sample("(A,B);\n(C,D)"))
	_, err := r.ReadTree()
	require.NoError(t, err)

	_, err = r.ReadTree()
	var serr *SyntaxError
	require.True(t, errors.As(err, &serr))
	require.Equal(t, 2, serr.Line)
	require.Equal(t, 6, serr.Column)
	require.Equal(t, "EOF", serr.Found)

	_, err = r.ReadTree()
	require.Equal(t, io.EOF, err)
}

func TestReaderIOError(t *testing.T) {
	boom := errors.New("boom")
	r := NewReader(iotest.ErrReader(boom))
	_, err := r.ReadAll()
	require.True(t, errors.Is(err, boom))
	require.False(t, errors.Is(err, ErrSyntax))
}

func TestReaderOptions(t *testing.T) {
	r := NewReader(sample("((A));(((B)));"))
	r.Options.MaxDepth = 2
	tree, err := r.ReadTree()
	require.NoError(t, err)
	require.Equal(t, "((A));", Format(tree))
	_, err = r.ReadTree()
	require.True(t, errors.Is(err, ErrSyntax))
}

func TestWriter(t *testing.T) {
	trees := []*Tree{
		mustParse(t, "(A:0.1,B:0.2,(C:0.3,D:0.4):0.5);"),
		mustParse(t, "('A B',C)'D,E';"),
	}

	var buf bytes.Buffer
	require.NoError(t, NewWriter(&buf).WriteAll(trees))
	require.Equal(t, "(A:0.1,B:0.2,(C:0.3,D:0.4):0.5);\n(A B,C)D,E;\n", buf.String())

	buf.Reset()
	w := NewWriter(&buf)
	w.QuoteNames = true
	require.NoError(t, w.WriteAll(trees))
	require.Equal(t, "(A:0.1,B:0.2,(C:0.3,D:0.4):0.5);\n('A B',C)'D,E';\n", buf.String())

	// Quoted output reads back to the same trees.
	again, err := NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, again, len(trees))
	for i := range trees {
		requireEqualTrees(t, trees[i], again[i])
	}
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("disk full")
}

func TestWriterError(t *testing.T) {
	w := NewWriter(failingWriter{})
	require.NoError(t, WriteTree(w, mustParse(t, "(A,B);")))
	err := w.Flush()
	require.Error(t, err)
	require.Contains(t, err.Error(), "disk full")
}
