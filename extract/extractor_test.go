package extract

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHexFromSource(t *testing.T) {
	literals, err := HexFromSource("./testdata/hexes")
	require.NoError(t, err)

	require.Len(t, literals, 12)

	values := make([]string, 0, len(literals))
	lines := make(map[string][]int)
	for _, literal := range literals {
		values = append(values, literal.Value)
		require.NotEmpty(t, literal.Pos.Filename)
		require.Positive(t, literal.Pos.Line)

		if filepath.Base(literal.Pos.Filename) == "hexes.go" {
			lines[literal.Value] = append(lines[literal.Value], literal.Pos.Line)
		}
	}

	for _, find := range []string{"cafebabe", "0102", "abc", "ff00", "dead", "beef", "zz", "ab", "0a0b"} {
		require.Contains(t, values, find)
	}
	require.NotContains(t, values, "1234")

	// Escapes are interpreted, not reported as written.
	require.NotContains(t, values, `\x61\x62`)
	require.Equal(t, []int{29}, lines["ab"])

	// Every line a value is declared or passed on is reported, in source order.
	require.Equal(t, []int{8, 18}, lines["cafebabe"])
	require.Equal(t, []int{10, 30}, lines["abc"])
	require.Equal(t, []int{22, 23}, lines["dead"])

	// A conversion is reported once, not once more for its argument.
	require.Equal(t, []int{27}, lines["zz"])
}

func TestHexFromSourceMissingDir(t *testing.T) {
	_, err := HexFromSource("./testdata/missing")
	require.Error(t, err)
}
