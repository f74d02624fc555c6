package parser

import (
	"github.com/avian-lovelace/compiler/core/ast"
	"github.com/avian-lovelace/compiler/core/diag"
	"github.com/avian-lovelace/compiler/core/parsec"
	"github.com/avian-lovelace/compiler/core/source"
	"github.com/avian-lovelace/compiler/core/token"
)

// parseIfExpr parses the expression-position `if COND then EXPR else EXPR`,
// admitted as a primary alongside the brace-delimited If statement form.
// Unlike the statement form it never looks for braces: the branches are
// single expressions, and precedence climbing simply stops at the `then`/
// `else` keyword atoms since neither matches any operator.
func parseIfExpr(c Cur) (Cur, parsec.Outcome[ast.Expr]) {
	afterIf, ifOut := kwParser(token.KwIf)(c)
	if !ifOut.IsOk() {
		return c, parsec.Unbound[ast.Expr]()
	}
	ifTok := ifOut.Value()

	condRest, condOut := Expression(afterIf)
	condOut = parsec.CatchUnbound(condOut, func() diag.Diagnostic {
		return diag.New(diag.EmptyIfCondition, ifTok.Range)
	})
	if !condOut.IsOk() {
		return condRest, parsec.Fail[ast.Expr](condOut.Diagnostics()...)
	}
	cond := condOut.Value()

	afterThen, thenOut := kwParser(token.KwThen)(condRest)
	if !thenOut.IsOk() {
		return condRest, parsec.Fail[ast.Expr](diag.New(diag.IfStatementMalformed, ifTok.Range))
	}

	thenRest, thenOutE := Expression(afterThen)
	thenOutE = parsec.CatchUnbound(thenOutE, func() diag.Diagnostic {
		return diag.New(diag.InvalidIfCondition, ifTok.Range)
	})
	if !thenOutE.IsOk() {
		return thenRest, parsec.Fail[ast.Expr](thenOutE.Diagnostics()...)
	}
	thenExpr := thenOutE.Value()

	afterElse, elseOut := kwParser(token.KwElse)(thenRest)
	if !elseOut.IsOk() {
		return thenRest, parsec.Fail[ast.Expr](diag.New(diag.IfStatementMalformed, ifTok.Range))
	}

	elseRest, elseOutE := Expression(afterElse)
	elseOutE = parsec.CatchUnbound(elseOutE, func() diag.Diagnostic {
		return diag.New(diag.InvalidIfCondition, ifTok.Range)
	})
	if !elseOutE.IsOk() {
		return elseRest, parsec.Fail[ast.Expr](elseOutE.Diagnostics()...)
	}
	elseExpr := elseOutE.Value()

	expr := ast.IfExpr{
		Rng:  source.Union(ifTok.Range, elseExpr.Range()),
		Cond: cond,
		Then: thenExpr,
		Else: elseExpr,
	}
	extra := append([]diag.Diagnostic{}, condOut.Extra()...)
	extra = append(extra, thenOutE.Extra()...)
	extra = append(extra, elseOutE.Extra()...)
	return elseRest, parsec.OkWithExtra[ast.Expr](expr, extra)
}
