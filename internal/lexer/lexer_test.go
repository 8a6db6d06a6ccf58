package lexer

import (
	"bytes"
	"os"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLexer(t *testing.T) {
	tokens, err := runLexer(" 0xde ad:be-ef\n")
	require.NoError(t, err)

	require.Len(t, tokens, 10)
	require.Equal(t, separator, tokens[0].TokenType)
	require.Equal(t, prefix, tokens[1].TokenType)
	require.Equal(t, hexRun, tokens[2].TokenType)
	require.Equal(t, "de", tokens[2].Data)
	require.Equal(t, 3, tokens[2].Pos)
	require.Equal(t, separator, tokens[9].TokenType)

	for _, token := range tokens {
		t.Logf("Type: %s, Data: %q", token.TokenType, token.Data)
	}
}

func TestCompact(t *testing.T) {
	c, err := Compact("0xde ad:be-ef")
	require.NoError(t, err)
	require.Equal(t, "deadbeef", c.Digits)
	require.Equal(t, []int{2, 3, 5, 6, 8, 9, 11, 12}, c.Offsets)

	c, err = Compact("0xab 0Xcd,\t01")
	require.NoError(t, err)
	require.Equal(t, "abcd01", c.Digits)

	// A prefix is only recognized at the start of a run.
	c, err = Compact("a0x1")
	require.NoError(t, err)
	require.Equal(t, "a0x1", c.Digits)

	c, err = Compact("")
	require.NoError(t, err)
	require.Equal(t, "", c.Digits)
	require.Empty(t, c.Offsets)

	c, err = Compact(" \n ")
	require.NoError(t, err)
	require.Equal(t, "", c.Digits)
}

func TestCompactPrefixWithoutDigits(t *testing.T) {
	_, err := Compact("ab 0x")
	require.ErrorContains(t, err, "expected hex digits after prefix at position 3")

	_, err = Compact("0x ab")
	require.Error(t, err)
}

func TestCompactSpan(t *testing.T) {
	input := " é1"

	c, err := Compact(input)
	require.NoError(t, err)
	require.Equal(t, "é1", c.Digits)
	require.Equal(t, []int{1, 3}, c.Offsets)

	start, end := c.Span(input, 0)
	require.Equal(t, "é", input[start:end])

	start, end = c.Span(input, 1)
	require.Equal(t, "1", input[start:end])

	start, end = c.Span(input, 2)
	require.Equal(t, len(input), start)
	require.Equal(t, len(input), end)
}

func TestHighlightOutOfRange(t *testing.T) {
	require.Equal(t, "abc", Highlight(os.Stdout, "abc", 2, 1))
	require.Equal(t, "abc", Highlight(os.Stdout, "abc", 0, 4))
	require.Equal(t, "abc", Highlight(os.Stdout, "abc", -1, 1))
}

func TestHighlightNonTerminal(t *testing.T) {
	var buf bytes.Buffer
	require.Equal(t, "abc", Highlight(&buf, "abc", 0, 1))

	f, err := os.CreateTemp(t.TempDir(), "out")
	require.NoError(t, err)
	defer f.Close()
	require.Equal(t, "abc", Highlight(f, "abc", 0, 1))
}

func TestSyntaxError(t *testing.T) {
	_, err := Compact("ab 0x")

	var serr *SyntaxError
	require.ErrorAs(t, err, &serr)
	require.Equal(t, "expected hex digits after prefix", serr.Msg)
	require.Equal(t, 3, serr.Start)
	require.Equal(t, 5, serr.End)
	require.Equal(t, "ab 0x", serr.Input)

	var buf bytes.Buffer
	require.Equal(t, "lexer error: expected hex digits after prefix at position 3 (ab 0x)", serr.Render(&buf))
	require.Equal(t, serr.Render(&buf), err.Error())
}
