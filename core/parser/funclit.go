package parser

import (
	"github.com/avian-lovelace/compiler/core/ast"
	"github.com/avian-lovelace/compiler/core/diag"
	"github.com/avian-lovelace/compiler/core/parsec"
	"github.com/avian-lovelace/compiler/core/section"
	"github.com/avian-lovelace/compiler/core/source"
	"github.com/avian-lovelace/compiler/core/token"
)

// parseFuncLiteral parses `[params]: TYPE -> EXPR` or `[params]: TYPE { … }`.
// A Bracket section in primary position can only be the start of a function
// literal (call argument lists are handled by parseCallChain, one level up,
// only once a callee already exists), so once the opening bracket is
// consumed every further mismatch is a concrete InvalidFunctionLiteral
// failure rather than the Unbound sentinel.
func parseFuncLiteral(c Cur) (Cur, parsec.Outcome[ast.Expr]) {
	head, ok := c.Head()
	if !ok || head.Kind != section.Bracket {
		return c, parsec.Unbound[ast.Expr]()
	}
	rest := c.Rest()

	params, ok := parseParamList(head.Children)
	if !ok {
		return rest, parsec.Fail[ast.Expr](diag.New(diag.InvalidFunctionLiteral, head.Range))
	}

	afterColon, colonOut := kwParser(token.Colon)(rest)
	if !colonOut.IsOk() {
		return rest, parsec.Fail[ast.Expr](diag.New(diag.InvalidFunctionLiteral, head.Range))
	}

	afterType, typeOut := parseType(afterColon)
	typeOut = parsec.CatchUnbound(typeOut, func() diag.Diagnostic {
		return diag.New(diag.InvalidFunctionLiteral, head.Range)
	})
	if !typeOut.IsOk() {
		return afterType, parsec.Fail[ast.Expr](typeOut.Diagnostics()...)
	}
	resultType := typeOut.Value()

	if afterArrow, arrowOut := kwParser(token.Arrow)(afterType); arrowOut.IsOk() {
		bodyRest, bodyOut := Expression(afterArrow)
		bodyOut = parsec.CatchUnbound(bodyOut, func() diag.Diagnostic {
			return diag.New(diag.InvalidFunctionLiteral, head.Range)
		})
		if !bodyOut.IsOk() {
			return bodyRest, parsec.Fail[ast.Expr](bodyOut.Diagnostics()...)
		}
		lit := ast.FuncLiteral{
			Rng:        source.Union(head.Range, bodyOut.Value().Range()),
			Params:     params,
			ResultType: resultType,
			Body:       ast.FuncBody{Expr: bodyOut.Value()},
		}
		return bodyRest, parsec.OkWithExtra[ast.Expr](lit, bodyOut.Extra())
	}

	braceHead, braceOk := afterType.Head()
	if !braceOk || braceHead.Kind != section.Brace {
		return afterType, parsec.Fail[ast.Expr](diag.New(diag.InvalidFunctionLiteral, head.Range))
	}
	blockRest := afterType.Rest()
	stmts, stmtDiags := parseStatements(braceHead.Children)
	lit := ast.FuncLiteral{
		Rng:        source.Union(head.Range, braceHead.Range),
		Params:     params,
		ResultType: resultType,
		Body:       ast.FuncBody{Block: stmts},
	}
	return blockRest, parsec.OkWithExtra[ast.Expr](lit, stmtDiags)
}

// parseParamList parses a comma-separated `ident: TYPE` list from the
// children of a Bracket section. An empty bracket yields a nil, ok=true
// param list (a zero-argument function).
func parseParamList(secs []section.Section) ([]ast.Param, bool) {
	parts := splitAtTopLevel(secs, token.Comma)
	var params []ast.Param
	for _, part := range parts {
		if len(part) == 0 {
			continue
		}
		if part[0].Kind != section.Atom || part[0].Token.Kind != token.Identifier {
			return nil, false
		}
		nameTok := part[0].Token
		if len(part) < 2 || part[1].Kind != section.Atom || part[1].Token.Kind != token.Colon {
			return nil, false
		}
		out := parsec.RunToEnd(parsec.Parser[section.Section, ast.TypeRef](parseType), Cur(part[2:]))
		if !out.IsOk() {
			return nil, false
		}
		t := out.Value()
		params = append(params, ast.Param{Rng: source.Union(nameTok.Range, t.Range()), Name: nameTok.Text, Type: t})
	}
	return params, true
}
