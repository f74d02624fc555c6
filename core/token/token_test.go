package token_test

import (
	"testing"

	"github.com/avian-lovelace/compiler/core/token"
	"github.com/stretchr/testify/require"
)

func kinds(toks []token.Token) []token.Kind {
	out := make([]token.Kind, len(toks))
	for i, t := range toks {
		out[i] = t.Kind
	}
	return out
}

func TestLexPunctuationAndKeywords(t *testing.T) {
	toks := token.Lex("t.lum", []byte("let mut print func if then else return and or -> == != <= >="))
	require.Equal(t, []token.Kind{
		token.KwLet, token.KwMut, token.KwPrint, token.KwFunc, token.KwIf, token.KwThen,
		token.KwElse, token.KwReturn, token.KwAnd, token.KwOr, token.Arrow,
		token.EqualEqual, token.BangEqual, token.LessEqual, token.GreaterEqual, token.EOF,
	}, kinds(toks))
}

func TestLexIdentifierVsKeyword(t *testing.T) {
	toks := token.Lex("t.lum", []byte("letter"))
	require.Equal(t, token.Identifier, toks[0].Kind)
	require.Equal(t, "letter", toks[0].Text)
}

func TestLexNeverAbortsOnIllegalByte(t *testing.T) {
	toks := token.Lex("t.lum", []byte("1 @ 2"))
	require.Equal(t, []token.Kind{token.Integer, token.Illegal, token.Integer, token.EOF}, kinds(toks))
}

func TestLexAlwaysEndsInEOF(t *testing.T) {
	toks := token.Lex("t.lum", []byte(""))
	require.Len(t, toks, 1)
	require.Equal(t, token.EOF, toks[0].Kind)
}

func TestMatchingCloser(t *testing.T) {
	closer, ok := token.Token{Kind: token.LBracket}.MatchingCloser()
	require.True(t, ok)
	require.Equal(t, token.RBracket, closer)

	_, ok = token.Token{Kind: token.Plus}.MatchingCloser()
	require.False(t, ok)
}

func TestIsBracketAndOpener(t *testing.T) {
	require.True(t, token.Token{Kind: token.LBracket}.IsBracket())
	require.True(t, token.Token{Kind: token.LBracket}.IsOpener())
	require.True(t, token.Token{Kind: token.RBracket}.IsBracket())
	require.False(t, token.Token{Kind: token.RBracket}.IsOpener())
	require.False(t, token.Token{Kind: token.Plus}.IsBracket())
}
