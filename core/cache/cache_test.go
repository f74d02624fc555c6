package cache_test

import (
	"testing"

	"github.com/avian-lovelace/compiler/core/ast"
	"github.com/avian-lovelace/compiler/core/cache"
	"github.com/avian-lovelace/compiler/core/diag"
	"github.com/avian-lovelace/compiler/core/source"
	"github.com/stretchr/testify/require"
)

func TestDigestDeterministic(t *testing.T) {
	a := cache.Digest("f.lum", []byte("let x = 1;"))
	b := cache.Digest("f.lum", []byte("let x = 1;"))
	require.Equal(t, a, b)
}

func TestDigestDiffersOnByteChange(t *testing.T) {
	a := cache.Digest("f.lum", []byte("let x = 1;"))
	b := cache.Digest("f.lum", []byte("let x = 2;"))
	require.NotEqual(t, a, b)
}

func TestDigestDiffersOnFileName(t *testing.T) {
	a := cache.Digest("a.lum", []byte("let x = 1;"))
	b := cache.Digest("b.lum", []byte("let x = 1;"))
	require.NotEqual(t, a, b)
}

func TestPutGetRoundTrip(t *testing.T) {
	c := cache.New()
	key := cache.Digest("f.lum", []byte("let x = 1;"))

	_, _, ok := c.Get(key)
	require.False(t, ok)

	scope := &ast.FileScope{}
	diags := []diag.Diagnostic{diag.New(diag.ExpectedSemicolon, source.Range{})}
	c.Put(key, scope, diags)

	gotScope, gotDiags, ok := c.Get(key)
	require.True(t, ok)
	require.Same(t, scope, gotScope)
	require.Equal(t, diags, gotDiags)
	require.Equal(t, 1, c.Len())
}

func TestPutOverwritesExistingEntry(t *testing.T) {
	c := cache.New()
	key := cache.Digest("f.lum", []byte("x"))
	c.Put(key, &ast.FileScope{}, nil)
	second := &ast.FileScope{Statements: nil}
	c.Put(key, second, nil)
	require.Equal(t, 1, c.Len())
	got, _, _ := c.Get(key)
	require.Same(t, second, got)
}
