package lexer

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"golang.org/x/term"
)

type tokenType int8

const (
	eof = -1

	hexRun tokenType = iota
	separator
	prefix
	errTok

	separators = " \t\r\n:-,"
)

// Compacted holds the digit runs of an input with the separators and prefixes removed.
type Compacted struct {
	Digits string

	// Offsets maps the i-th rune of Digits to its byte offset in the input.
	Offsets []int
}

// Span returns the byte range in the input of the rune at index i of Digits.
// An index past the end maps to an empty range at the end of the input.
func (c Compacted) Span(input string, i int) (start, end int) {
	if i < 0 || i >= len(c.Offsets) {
		return len(input), len(input)
	}

	start = c.Offsets[i]
	_, w := utf8.DecodeRuneInString(input[start:])
	return start, start + w
}

// Compact lexes free-form hex text such as "0xde ad:be-ef" into its digit runs.
// It does not validate digits; that is left to the decoder.
func Compact(input string) (Compacted, error) {
	tokens, err := runLexer(input)
	if err != nil {
		return Compacted{}, err
	}

	var (
		b       strings.Builder
		offsets = make([]int, 0, len(input))
	)

	for _, token := range tokens {
		if token.TokenType != hexRun {
			continue
		}

		b.WriteString(token.Data)
		for i := range token.Data {
			offsets = append(offsets, token.Pos+i)
		}
	}

	return Compacted{Digits: b.String(), Offsets: offsets}, nil
}

func runLexer(input string) ([]Token, error) {
	l := &lexer{
		input:  input,
		tokens: make([]Token, 0),
	}

	for state := lexSeparator; state != nil; {
		state = state(l)
	}

	if l.err != nil {
		return nil, l.err
	}

	return l.tokens, nil
}

func lexSeparator(l *lexer) lexerStateFn {
	l.acceptRun(separators)
	l.collect(separator)

	if l.peek() == eof {
		return nil
	}

	return lexPrefix
}

func lexPrefix(l *lexer) lexerStateFn {
	if !strings.HasPrefix(l.input[l.pos:], "0x") && !strings.HasPrefix(l.input[l.pos:], "0X") {
		return lexRun
	}

	l.next() // Collect the '0'
	l.next() // Collect the 'x'

	if r := l.peek(); r == eof || strings.ContainsRune(separators, r) {
		l.error("expected hex digits after prefix")
		return nil
	}

	l.collect(prefix)
	return lexRun
}

func lexRun(l *lexer) lexerStateFn {
	for {
		r := l.next()
		if r == eof {
			l.collect(hexRun)
			return nil
		}

		if strings.ContainsRune(separators, r) {
			l.backup()
			l.collect(hexRun)
			return lexSeparator
		}
	}
}

type lexer struct {
	input  string  // the string being scanned
	start  int     // start position of this item
	pos    int     // current position in the input
	width  int     // width of last rune read from input
	tokens []Token // slice of tokens
	err    *SyntaxError
}

type lexerStateFn func(*lexer) lexerStateFn

// collect the current data as a new token on the tokens slice.
func (l *lexer) collect(t tokenType) {
	if l.start == l.pos {
		return
	}

	l.tokens = append(l.tokens, Token{
		TokenType: t,
		Data:      l.input[l.start:l.pos],
		Pos:       l.start,
	})
	l.start = l.pos
}

func (l *lexer) error(msg string) {
	l.err = &SyntaxError{
		Msg:   msg,
		Input: l.input[:l.pos],
		Start: l.start,
		End:   l.pos,
	}

	l.tokens = append(l.tokens, Token{
		TokenType: errTok,
		Data:      msg,
		Pos:       l.start,
	})
	l.start = l.pos
}

func (l *lexer) next() rune {
	if l.pos >= len(l.input) {
		l.width = 0
		return eof
	}

	r, w := utf8.DecodeRuneInString(l.input[l.pos:])
	l.width = w
	l.pos += l.width
	return r
}

func (l *lexer) peek() rune {
	r := l.next()
	l.backup()
	return r
}

func (l *lexer) backup() {
	l.pos -= l.width
}

// acceptRun consumes a run of runes from the valid set.
func (l *lexer) acceptRun(valid string) {
	for strings.ContainsRune(valid, l.next()) {
	}
	l.backup()
}

// SyntaxError is returned by Compact for input it cannot split into digit runs.
type SyntaxError struct {
	Msg   string
	Input string // the input up to and including the offending text
	Start int
	End   int
}

func (e *SyntaxError) Error() string {
	return e.Render(io.Discard)
}

// Render formats the error, underlining the offending text when w is a terminal.
func (e *SyntaxError) Render(w io.Writer) string {
	return fmt.Sprintf("lexer error: %s at position %d (%s)", e.Msg, e.Start, Highlight(w, e.Input, e.Start, e.End))
}

// Highlight underlines input[start:end] when w is a terminal.
func Highlight(w io.Writer, input string, start, end int) string {
	if start < 0 || end > len(input) || start >= end {
		return input
	}

	f, ok := w.(interface{ Fd() uintptr })
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return input
	}

	return fmt.Sprintf("%s\033[4m\033[1;31m%s\033[0m%s", input[:start], input[start:end], input[end:])
}

type Token struct {
	TokenType tokenType
	Data      string
	Pos       int
}

func (t tokenType) String() string {
	switch t {
	case hexRun:
		return "hexRun"
	case separator:
		return "separator"
	case prefix:
		return "prefix"
	case errTok:
		return "ERR"
	default:
		return "unknown"
	}
}
