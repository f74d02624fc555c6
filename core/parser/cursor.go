package parser

import (
	"github.com/avian-lovelace/compiler/core/parsec"
	"github.com/avian-lovelace/compiler/core/section"
	"github.com/avian-lovelace/compiler/core/token"
)

// Cur is the cursor type threaded through C5: a cursor over sections.
type Cur = parsec.Cursor[section.Section]

func matchOpPred(kinds map[token.Kind]bool) func(section.Section) (token.Token, bool) {
	return func(s section.Section) (token.Token, bool) {
		if s.Kind != section.Atom || !kinds[s.Token.Kind] {
			return token.Token{}, false
		}
		return s.Token, true
	}
}

func matchKind(k token.Kind) func(section.Section) (token.Token, bool) {
	return func(s section.Section) (token.Token, bool) {
		if s.Kind != section.Atom || s.Token.Kind != k {
			return token.Token{}, false
		}
		return s.Token, true
	}
}

func kwParser(k token.Kind) parsec.Parser[section.Section, token.Token] {
	return parsec.NextIf(matchKind(k))
}

func identParser() parsec.Parser[section.Section, token.Token] {
	return parsec.NextIf(matchKind(token.Identifier))
}

// splitAtTopLevel splits secs at every top-level Atom section matching k,
// returning the parts with the separators removed (used for comma-delimited
// parameter and argument lists).
func splitAtTopLevel(secs []section.Section, k token.Kind) [][]section.Section {
	if len(secs) == 0 {
		return nil
	}
	var parts [][]section.Section
	var cur []section.Section
	for _, s := range secs {
		if s.Kind == section.Atom && s.Token.Kind == k {
			parts = append(parts, cur)
			cur = nil
			continue
		}
		cur = append(cur, s)
	}
	parts = append(parts, cur)
	return parts
}
