package newick

import (
	"strings"
	"unicode/utf8"
)

const (
	eof         = -1
	terminal    = ';'
	branchDelim = ','
	descStart   = '('
	descEnd     = ')'
	quote       = '\''
	lengthStart = ':'
)

// unquoteBanned lists every character that may not appear in a bare label.
const unquoteBanned = " ()[]':;,"

// lexer is a cursor over the source text. It tracks the byte offset along
// with the line and column of the current position so that errors can be
// located precisely. The zero lexer is not usable; see lex.
type lexer struct {
	input string
	pos   int
	width int
	line  int
	col   int

	// Saved by next so that backup can restore the column after a newline.
	prevCol int
}

func lex(input string) *lexer {
	return &lexer{input: input, line: 1, col: 1}
}

// mark is a saved lexer position.
type mark struct {
	pos, line, col int
}

func (lx *lexer) mark() mark {
	return mark{lx.pos, lx.line, lx.col}
}

func (lx *lexer) reset(m mark) {
	lx.pos, lx.line, lx.col = m.pos, m.line, m.col
	lx.width = 0
}

func (lx *lexer) next() rune {
	if lx.pos >= len(lx.input) {
		lx.width = 0
		return eof
	}
	r, w := utf8.DecodeRuneInString(lx.input[lx.pos:])
	lx.width = w
	lx.pos += w
	lx.prevCol = lx.col
	if r == '\n' {
		lx.line++
		lx.col = 1
	} else {
		lx.col++
	}
	return r
}

// backup steps back one rune. Can be called only once per call of next.
func (lx *lexer) backup() {
	if lx.width == 0 {
		return
	}
	lx.pos -= lx.width
	if lx.input[lx.pos] == '\n' {
		lx.line--
	}
	lx.col = lx.prevCol
	lx.width = 0
}

// peek returns but does not consume the next rune in the input.
func (lx *lexer) peek() rune {
	r := lx.next()
	lx.backup()
	return r
}

// accept consumes the next rune if it's equal to `valid`.
func (lx *lexer) accept(valid rune) bool {
	if lx.next() == valid {
		return true
	}
	lx.backup()
	return false
}

// acceptOne consumes the next rune if it's in the valid set.
func (lx *lexer) acceptOne(valid string) bool {
	r := lx.next()
	if r != eof && strings.ContainsRune(valid, r) {
		return true
	}
	lx.backup()
	return false
}

// acceptRun consumes a run of runes from the valid set and reports how many
// were consumed.
func (lx *lexer) acceptRun(valid string) int {
	n := 0
	for {
		r := lx.next()
		if r == eof || !strings.ContainsRune(valid, r) {
			lx.backup()
			return n
		}
		n++
	}
}

// acceptFold consumes `word` if the input continues with it, ignoring case.
func (lx *lexer) acceptFold(word string) bool {
	rest := lx.input[lx.pos:]
	if len(rest) < len(word) || !strings.EqualFold(rest[:len(word)], word) {
		return false
	}
	for range word {
		lx.next()
	}
	return true
}

// skipSpace consumes any blanks and new lines.
func (lx *lexer) skipSpace() {
	for {
		r := lx.next()
		if !isBlank(r) && !isNL(r) {
			lx.backup()
			return
		}
	}
}

// done reports whether the whole input has been consumed.
func (lx *lexer) done() bool {
	return lx.pos >= len(lx.input)
}

// errorf builds a syntax error located at the current position. The text
// found at that position is attached to the error.
func (lx *lexer) errorf(format string, values ...interface{}) *SyntaxError {
	return lx.errorfAt(lx.mark(), format, values...)
}

func (lx *lexer) errorfAt(at mark, format string, values ...interface{}) *SyntaxError {
	return newSyntaxError(at.pos, at.line, at.col, found(lx.input[at.pos:]),
		format, values...)
}

func isBareLabel(r rune) bool {
	return r != eof && !strings.ContainsRune(unquoteBanned, r)
}

func isBlank(r rune) bool {
	return r == '\t' || r == ' '
}

func isNL(r rune) bool {
	return r == '\n' || r == '\r'
}

const digits = "0123456789"

// found returns a short excerpt of the input starting at an error position.
func found(rest string) string {
	const max = 16
	if rest == "" {
		return "EOF"
	}
	if i := strings.IndexAny(rest, "\r\n"); i >= 0 {
		rest = rest[:i]
		if rest == "" {
			return escapeSpecial('\n')
		}
	}
	if utf8.RuneCountInString(rest) > max {
		runes := []rune(rest)
		rest = string(runes[:max]) + "..."
	}
	return rest
}

func escapeSpecial(c rune) string {
	switch c {
	case '\n':
		return "\\n"
	case '\r':
		return "\\r"
	case '\t':
		return "\\t"
	case eof:
		return "EOF"
	}
	return string(c)
}
