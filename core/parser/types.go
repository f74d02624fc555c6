package parser

import (
	"github.com/avian-lovelace/compiler/core/ast"
	"github.com/avian-lovelace/compiler/core/parsec"
	"github.com/avian-lovelace/compiler/core/section"
	"github.com/avian-lovelace/compiler/core/source"
	"github.com/avian-lovelace/compiler/core/token"
)

// parseType parses a TYPE nonterminal: a named type (an identifier) or a
// function type `[TYPE,*] -> TYPE`. Function-typed parameters are
// parseable (first-class functions get passed around freely), even though
// type-checking them is out of this pipeline's scope.
//
// A clean non-match (no identifier, no leading Bracket section) fails
// Unbound without consuming input, so callers can Alt against it. A
// failure after the opening `[` has been consumed remains Unbound too: it
// is the caller's job (the enclosing `let`/`func`/param-list context) to
// CatchUnbound it into that context's own diagnostic kind.
func parseType(c Cur) (Cur, parsec.Outcome[ast.TypeRef]) {
	if rest, out := identParser()(c); out.IsOk() {
		tok := out.Value()
		return rest, parsec.Ok(ast.TypeRef{Rng: tok.Range, Name: tok.Text})
	}

	head, ok := c.Head()
	if !ok || head.Kind != section.Bracket {
		return c, parsec.Unbound[ast.TypeRef]()
	}
	rest := c.Rest()

	var params []ast.TypeRef
	for _, part := range splitAtTopLevel(head.Children, token.Comma) {
		if len(part) == 0 {
			continue
		}
		out := parsec.RunToEnd(parsec.Parser[section.Section, ast.TypeRef](parseType), Cur(part))
		if !out.IsOk() {
			return rest, parsec.Unbound[ast.TypeRef]()
		}
		params = append(params, out.Value())
	}

	afterArrow, arrowOut := kwParser(token.Arrow)(rest)
	if !arrowOut.IsOk() {
		return rest, parsec.Unbound[ast.TypeRef]()
	}

	afterResult, resultOut := parseType(afterArrow)
	if !resultOut.IsOk() {
		return afterResult, parsec.Unbound[ast.TypeRef]()
	}
	result := resultOut.Value()

	return afterResult, parsec.Ok(ast.TypeRef{
		Rng:    source.Union(head.Range, result.Range()),
		Params: params,
		Result: &result,
	})
}
