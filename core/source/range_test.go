package source_test

import (
	"testing"

	"github.com/avian-lovelace/compiler/core/source"
	"github.com/stretchr/testify/require"
)

func TestPositionBefore(t *testing.T) {
	a := source.Position{Line: 1, Column: 1, Offset: 0}
	b := source.Position{Line: 1, Column: 2, Offset: 1}
	require.True(t, a.Before(b))
	require.False(t, b.Before(a))
	require.False(t, a.Before(a))
}

func TestUnion(t *testing.T) {
	a := source.Range{
		Start: source.Position{Offset: 2},
		End:   source.Position{Offset: 5},
	}
	b := source.Range{
		Start: source.Position{Offset: 0},
		End:   source.Position{Offset: 3},
	}
	u := source.Union(a, b)
	require.Equal(t, 0, u.Start.Offset)
	require.Equal(t, 5, u.End.Offset)
}

func TestContains(t *testing.T) {
	outer := source.Range{Start: source.Position{Offset: 0}, End: source.Position{Offset: 10}}
	inner := source.Range{Start: source.Position{Offset: 2}, End: source.Position{Offset: 5}}
	require.True(t, outer.Contains(inner))
	require.False(t, inner.Contains(outer))
}

func TestRangeString(t *testing.T) {
	r := source.Range{
		Start: source.Position{Line: 1, Column: 1},
		End:   source.Position{Line: 1, Column: 4},
	}
	require.Equal(t, "1:1-1:4", r.String())
}
