package newick

import (
	"fmt"

	"github.com/cockroachdb/errors"
	"github.com/cockroachdb/redact"
)

// ErrSyntax marks every error produced while parsing Newick text. Use
// errors.Is(err, ErrSyntax) to test for it, or errors.As with a
// *SyntaxError to get at the position of the failure.
var ErrSyntax = errors.New("newick: syntax error")

// SyntaxError is returned when input does not match the Newick grammar.
// A syntax error always rejects the entire input; no partial tree is ever
// returned alongside it.
type SyntaxError struct {
	// Byte offset into the input where the failure was detected.
	Offset int

	// 1-based line and column (in runes) of Offset.
	Line, Column int

	// A description of what was expected at Offset.
	Msg string

	// A short excerpt of the input at Offset, or "EOF".
	Found string
}

func newSyntaxError(
	offset, line, col int, found string, format string, v ...interface{},
) *SyntaxError {
	return &SyntaxError{
		Offset: offset,
		Line:   line,
		Column: col,
		Msg:    fmt.Sprintf(format, v...),
		Found:  found,
	}
}

// Error implements error.
func (e *SyntaxError) Error() string {
	return redact.StringWithoutMarkers(e)
}

// SafeFormat implements redact.SafeFormatter. The excerpt of the input is
// treated as unsafe user data.
func (e *SyntaxError) SafeFormat(w redact.SafePrinter, _ rune) {
	w.Printf("Error on line %d, column %d: %s (found %q)",
		e.Line, e.Column, redact.SafeString(e.Msg), e.Found)
}

// Unwrap returns ErrSyntax so that every *SyntaxError matches it.
func (e *SyntaxError) Unwrap() error {
	return ErrSyntax
}

// shift moves the position of e as if the text it was found in started at
// the given offset and line of a larger input.
func (e *SyntaxError) shift(offset, line, col int) {
	if e.Line == 1 {
		e.Column += col - 1
	}
	e.Offset += offset
	e.Line += line - 1
}
