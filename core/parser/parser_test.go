package parser_test

import (
	"testing"

	"github.com/avian-lovelace/compiler/core/ast"
	"github.com/avian-lovelace/compiler/core/diag"
	"github.com/avian-lovelace/compiler/core/parser"
	"github.com/avian-lovelace/compiler/core/section"
	"github.com/avian-lovelace/compiler/core/token"
	"github.com/stretchr/testify/require"
)

func mustParse(t *testing.T, src string) (*ast.FileScope, []diag.Diagnostic) {
	t.Helper()
	toks := token.Lex("t.lum", []byte(src))
	secs, secDiags := section.Sectionize(toks)
	require.Empty(t, secDiags)
	return parser.Parse(secs)
}

func TestSemicolonTerminationRequired(t *testing.T) {
	scope, diags := mustParse(t, "let x = 1")
	require.Len(t, scope.Statements, 1)
	require.Len(t, diags, 1)
	require.Equal(t, diag.ExpectedSemicolon, diags[0].Kind)
}

func TestSemicolonTerminatedCleanParse(t *testing.T) {
	_, diags := mustParse(t, "let x = 1;")
	require.Empty(t, diags)
}

func TestMultipleStatementsAccumulateIndependently(t *testing.T) {
	scope, diags := mustParse(t, "let x = ; let y = 2;")
	require.Len(t, diags, 1)
	require.Equal(t, diag.EmptyLetExpression, diags[0].Kind)
	// the second, well-formed statement still parses despite the first failing
	require.Len(t, scope.Statements, 1)
	let, ok := scope.Statements[0].(ast.LetDecl)
	require.True(t, ok)
	require.Equal(t, "y", let.Name)
}

func TestLeftAssociativeAdditive(t *testing.T) {
	scope, diags := mustParse(t, "print 1 - 2 - 3;")
	require.Empty(t, diags)
	p := scope.Statements[0].(ast.Print)
	outer, ok := p.Value.(ast.Binary)
	require.True(t, ok)
	require.Equal(t, token.Minus, outer.Op)
	inner, ok := outer.Left.(ast.Binary)
	require.True(t, ok)
	require.Equal(t, token.Minus, inner.Op)
	require.Equal(t, int64(1), inner.Left.(ast.IntLit).Value)
	require.Equal(t, int64(2), inner.Right.(ast.IntLit).Value)
	require.Equal(t, int64(3), outer.Right.(ast.IntLit).Value)
}

func TestMultiplicativeBindsTighterThanAdditive(t *testing.T) {
	scope, diags := mustParse(t, "print 1 + 2 * 3;")
	require.Empty(t, diags)
	p := scope.Statements[0].(ast.Print)
	top := p.Value.(ast.Binary)
	require.Equal(t, token.Plus, top.Op)
	require.Equal(t, int64(1), top.Left.(ast.IntLit).Value)
	mul := top.Right.(ast.Binary)
	require.Equal(t, token.Star, mul.Op)
}

func TestChainedComparisonIsAnError(t *testing.T) {
	_, diags := mustParse(t, "print 1 < 2 < 3;")
	require.Len(t, diags, 1)
	require.Equal(t, diag.ChainedComparison, diags[0].Kind)
}

func TestSingleComparisonIsFine(t *testing.T) {
	_, diags := mustParse(t, "print 1 < 2;")
	require.Empty(t, diags)
}

func TestUnaryRightNested(t *testing.T) {
	scope, diags := mustParse(t, "print -!x;")
	require.Empty(t, diags)
	p := scope.Statements[0].(ast.Print)
	outer := p.Value.(ast.Unary)
	require.Equal(t, token.Minus, outer.Op)
	inner := outer.Operand.(ast.Unary)
	require.Equal(t, token.Bang, inner.Op)
}

func TestParenthesizationIdentity(t *testing.T) {
	plain, diags := mustParse(t, "print 1 + 2;")
	require.Empty(t, diags)
	parened, diags := mustParse(t, "print (1 + 2);")
	require.Empty(t, diags)

	// "(e)" parses to the exact same node shape as "e" - a Binary, not a
	// distinct wrapper node - merely re-ranged to span the parentheses.
	pv := plain.Statements[0].(ast.Print).Value.(ast.Binary)
	qv := parened.Statements[0].(ast.Print).Value.(ast.Binary)
	require.Equal(t, pv.Op, qv.Op)
	require.Equal(t, pv.Left.(ast.IntLit).Value, qv.Left.(ast.IntLit).Value)
	require.Equal(t, pv.Right.(ast.IntLit).Value, qv.Right.(ast.IntLit).Value)

	// the parenthesized form's range spans the parens, not just "1 + 2"
	const src = "print (1 + 2);"
	require.Equal(t, "(1 + 2)", src[qv.Range().Start.Offset:qv.Range().End.Offset])
}

func TestFuncLiteralWithExprBody(t *testing.T) {
	scope, diags := mustParse(t, "func add = [x: Int, y: Int]: Int -> x + y;")
	require.Empty(t, diags)
	decl := scope.Statements[0].(ast.FuncDecl)
	require.Equal(t, "add", decl.Name)
	require.Len(t, decl.Lit.Params, 2)
	require.Equal(t, "x", decl.Lit.Params[0].Name)
	require.Equal(t, "Int", decl.Lit.Params[0].Type.Name)
	require.NotNil(t, decl.Lit.Body.Expr)
}

func TestFuncLiteralWithBlockBody(t *testing.T) {
	scope, diags := mustParse(t, "func add = [x: Int]: Int { return x; };")
	require.Empty(t, diags)
	decl := scope.Statements[0].(ast.FuncDecl)
	require.Len(t, decl.Lit.Body.Block, 1)
	_, ok := decl.Lit.Body.Block[0].(ast.Return)
	require.True(t, ok)
}

func TestCallExpression(t *testing.T) {
	scope, diags := mustParse(t, "add[1, 2];")
	require.Empty(t, diags)
	stmt := scope.Statements[0].(ast.ExprStatement)
	call := stmt.Value.(ast.Call)
	require.Equal(t, "add", call.Callee.(ast.Var).Name)
	require.Len(t, call.Args, 2)
}

func TestIfStatementBothBranches(t *testing.T) {
	scope, diags := mustParse(t, "if x { print 1; } else { print 2; };")
	require.Empty(t, diags)
	stmt := scope.Statements[0].(ast.If)
	require.Len(t, stmt.Then, 1)
	require.Len(t, stmt.Else, 1)
}

func TestIfExpressionPosition(t *testing.T) {
	scope, diags := mustParse(t, "print if x then 1 else 2;")
	require.Empty(t, diags)
	p := scope.Statements[0].(ast.Print)
	ifExpr, ok := p.Value.(ast.IfExpr)
	require.True(t, ok)
	require.Equal(t, int64(1), ifExpr.Then.(ast.IntLit).Value)
	require.Equal(t, int64(2), ifExpr.Else.(ast.IntLit).Value)
}

func TestTrailingSectionsAfterKeywordTypoSuggestsKeyword(t *testing.T) {
	// the fuzzy matcher requires the candidate keyword to be at least as
	// long as the typo, so the typo here is a truncation of "mut" rather
	// than an insertion. "mu" parses as a variable, so the rest of the
	// group is reported as trailing sections, carrying the hint.
	_, diags := mustParse(t, "mu x = 1;")
	require.NotEmpty(t, diags)
	require.Equal(t, diag.UnexpectedTrailingSections, diags[0].Kind)
	require.Equal(t, "mut", diags[0].Suggest)
}

func TestTrailingSectionsAfterCompleteExpressionIsAnError(t *testing.T) {
	_, diags := mustParse(t, "print 1 2;")
	require.Len(t, diags, 1)
	require.Equal(t, diag.UnexpectedTrailingSections, diags[0].Kind)
}

func TestErrorIdempotence(t *testing.T) {
	_, first := mustParse(t, "let x = ;")
	_, second := mustParse(t, "let x = ;")
	require.Equal(t, first, second)
}

func TestUnclosedBracketReportedAsDiagnosticNotCrash(t *testing.T) {
	toks := token.Lex("t.lum", []byte("print (1;"))
	secs, secDiags := section.Sectionize(toks)
	require.Len(t, secDiags, 1)
	require.Equal(t, diag.UnclosedBracket, secDiags[0].Kind)
	require.NotPanics(t, func() { parser.Parse(secs) })
}
