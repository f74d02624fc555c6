package parser

import "github.com/avian-lovelace/compiler/core/token"

// Operator sets per precedence level. Each level's classifier is the pure
// function matchOpPred builds from one of these sets: only an Atom section
// whose token kind is in the set is accepted, anything else is rejected
// non-consumingly.
var (
	logicalOps       = set(token.KwAnd, token.KwOr)
	equalityOps      = set(token.EqualEqual, token.BangEqual)
	comparisonOps    = set(token.Less, token.LessEqual, token.Greater, token.GreaterEqual)
	additiveOps      = set(token.Plus, token.Minus)
	multiplicativeOps = set(token.Star, token.Slash, token.Percent)
	unaryOps         = set(token.Minus, token.Bang)
)

func set(kinds ...token.Kind) map[token.Kind]bool {
	m := make(map[token.Kind]bool, len(kinds))
	for _, k := range kinds {
		m[k] = true
	}
	return m
}
