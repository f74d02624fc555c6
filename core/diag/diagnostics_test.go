package diag_test

import (
	"testing"

	"github.com/avian-lovelace/compiler/core/diag"
	"github.com/avian-lovelace/compiler/core/source"
	"github.com/stretchr/testify/require"
)

func TestKindStringAndByName(t *testing.T) {
	for k := diag.MismatchedBracket; k <= diag.Internal; k++ {
		name := k.String()
		require.NotEqual(t, "unknown diagnostic", name)
		got, ok := diag.KindByName(name)
		require.True(t, ok)
		require.Equal(t, k, got)
	}
}

func TestKindByNameUnknown(t *testing.T) {
	_, ok := diag.KindByName("not a real diagnostic")
	require.False(t, ok)
}

func TestNewCarriesSingleRange(t *testing.T) {
	rng := source.Range{Start: source.Position{Line: 1, Column: 1}, End: source.Position{Line: 1, Column: 2}}
	d := diag.New(diag.ExpectedSemicolon, rng)
	require.Equal(t, rng, d.Range())
	require.Len(t, d.Ranges, 1)
}

func TestNewPairCarriesBothRanges(t *testing.T) {
	a := source.Range{Start: source.Position{Offset: 0}, End: source.Position{Offset: 1}}
	b := source.Range{Start: source.Position{Offset: 5}, End: source.Position{Offset: 6}}
	d := diag.NewPair(diag.MismatchedBracket, a, b)
	require.Equal(t, []source.Range{a, b}, d.Ranges)
	require.Equal(t, a, d.Range())
}

func TestRangeOnEmptyDiagnostic(t *testing.T) {
	var d diag.Diagnostic
	require.Equal(t, source.Range{}, d.Range())
}
