package parser

import (
	"github.com/avian-lovelace/compiler/core/ast"
	"github.com/avian-lovelace/compiler/core/diag"
	"github.com/avian-lovelace/compiler/core/parsec"
	"github.com/avian-lovelace/compiler/core/section"
	"github.com/avian-lovelace/compiler/core/source"
	"github.com/avian-lovelace/compiler/core/token"
	"github.com/avian-lovelace/compiler/internal/suggest"
)

// parseStatements splits secs into semicolon-terminated groups and parses
// each independently. A failure in one group never aborts the others: their
// diagnostics are all collected and returned alongside whatever statements
// did parse, matching the same "accumulate across siblings, short-circuit
// within one" discipline used for a file's top-level statement list and
// every brace-delimited block nested inside an `if` or a function literal.
func parseStatements(secs []section.Section) ([]ast.Statement, []diag.Diagnostic) {
	groups := splitAtTopLevel(secs, token.Semicolon)
	unterminated := len(groups) > 0 && len(groups[len(groups)-1]) > 0
	if !unterminated && len(groups) > 0 {
		groups = groups[:len(groups)-1]
	}

	var stmts []ast.Statement
	var diags []diag.Diagnostic
	for i, group := range groups {
		if unterminated && i == len(groups)-1 {
			break
		}
		if len(group) == 0 {
			continue
		}
		stmt, ds := parseStatementGroup(group)
		if stmt != nil {
			stmts = append(stmts, stmt)
		}
		diags = append(diags, ds...)
	}

	if unterminated {
		last := groups[len(groups)-1]
		stmt, ds := parseStatementGroup(last)
		if stmt != nil {
			stmts = append(stmts, stmt)
		}
		diags = append(diags, ds...)
		diags = append(diags, diag.New(diag.ExpectedSemicolon, rangeOfSections(last)))
	}

	return stmts, diags
}

func parseStatementGroup(group []section.Section) (ast.Statement, []diag.Diagnostic) {
	head := group[0]
	if head.Kind == section.Atom {
		switch head.Token.Kind {
		case token.KwPrint:
			return parsePrintStmt(group)
		case token.KwLet:
			return parseLetStmt(group)
		case token.KwMut:
			return parseMutStmt(group)
		case token.KwFunc:
			return parseFuncStmt(group)
		case token.KwReturn:
			return parseReturnStmt(group)
		case token.KwIf:
			return parseIfStmt(group)
		}
	}
	return parseExprStmt(group)
}

// parseValueExpr parses parts as a complete expression, reporting emptyKind
// when parts is empty, invalidKind when parts is non-empty but does not
// parse as an expression at all, and UnexpectedTrailingSections when a
// complete expression parses but leaves sections unconsumed (e.g. a second
// expression with no operator between it and the first). A nil Expr return
// means the caller should abandon the enclosing statement (diags already
// explains why); a non-nil Expr always comes with whatever side-channel
// diagnostics its nested constructs accumulated.
func parseValueExpr(parts []section.Section, emptyRange source.Range, emptyKind, invalidKind diag.Kind) (ast.Expr, []diag.Diagnostic) {
	if len(parts) == 0 {
		return nil, []diag.Diagnostic{diag.New(emptyKind, emptyRange)}
	}
	rest, out := ExprParser(Expression)(Cur(parts))
	if out.IsOk() && !rest.Empty() {
		ds := append([]diag.Diagnostic{}, out.Extra()...)
		ds = append(ds, diag.New(diag.UnexpectedTrailingSections, rangeOfSections(rest)))
		return nil, ds
	}
	out = parsec.CatchUnbound(out, func() diag.Diagnostic {
		return diag.New(invalidKind, rangeOfSections(parts))
	})
	if !out.IsOk() {
		ds := append([]diag.Diagnostic{}, out.Extra()...)
		ds = append(ds, out.Diagnostics()...)
		return nil, ds
	}
	return out.Value(), out.Extra()
}

func indexOfTopLevelAtom(secs []section.Section, k token.Kind) int {
	for i, s := range secs {
		if s.Kind == section.Atom && s.Token.Kind == k {
			return i
		}
	}
	return -1
}

func parsePrintStmt(group []section.Section) (ast.Statement, []diag.Diagnostic) {
	rng := rangeOfSections(group)
	expr, diags := parseValueExpr(group[1:], rng, diag.EmptyPrintExpression, diag.InvalidPrintExpression)
	if expr == nil {
		return nil, diags
	}
	return ast.Print{Rng: rng, Value: expr}, diags
}

func parseLetStmt(group []section.Section) (ast.Statement, []diag.Diagnostic) {
	rng := rangeOfSections(group)
	rest := group[1:]
	eqIdx := indexOfTopLevelAtom(rest, token.Equal)
	if eqIdx < 0 || len(rest) == 0 || rest[0].Kind != section.Atom || rest[0].Token.Kind != token.Identifier {
		return nil, []diag.Diagnostic{diag.New(diag.LetDeclarationMalformed, rng)}
	}
	name := rest[0].Token.Text
	head := rest[1:eqIdx]
	valueParts := rest[eqIdx+1:]

	var typeRef *ast.TypeRef
	if len(head) > 0 {
		if head[0].Kind != section.Atom || head[0].Token.Kind != token.Colon {
			return nil, []diag.Diagnostic{diag.New(diag.LetDeclarationMalformed, rng)}
		}
		out := parsec.RunToEnd(parsec.Parser[section.Section, ast.TypeRef](parseType), Cur(head[1:]))
		if !out.IsOk() {
			return nil, []diag.Diagnostic{diag.New(diag.LetDeclarationMalformed, rng)}
		}
		t := out.Value()
		typeRef = &t
	}

	expr, diags := parseValueExpr(valueParts, rng, diag.EmptyLetExpression, diag.InvalidLetExpression)
	if expr == nil {
		return nil, diags
	}
	return ast.LetDecl{Rng: rng, Name: name, Type: typeRef, Value: expr}, diags
}

func parseMutStmt(group []section.Section) (ast.Statement, []diag.Diagnostic) {
	rng := rangeOfSections(group)
	rest := group[1:]
	eqIdx := indexOfTopLevelAtom(rest, token.Equal)
	if eqIdx != 1 || len(rest) == 0 || rest[0].Kind != section.Atom || rest[0].Token.Kind != token.Identifier {
		return nil, []diag.Diagnostic{diag.New(diag.MutDeclarationMalformed, rng)}
	}
	name := rest[0].Token.Text
	valueParts := rest[eqIdx+1:]

	expr, diags := parseValueExpr(valueParts, rng, diag.EmptyMutExpression, diag.InvalidMutExpression)
	if expr == nil {
		return nil, diags
	}
	return ast.MutAssign{Rng: rng, Name: name, Value: expr}, diags
}

func parseFuncStmt(group []section.Section) (ast.Statement, []diag.Diagnostic) {
	rng := rangeOfSections(group)
	rest := group[1:]
	eqIdx := indexOfTopLevelAtom(rest, token.Equal)
	if eqIdx != 1 || len(rest) == 0 || rest[0].Kind != section.Atom || rest[0].Token.Kind != token.Identifier {
		return nil, []diag.Diagnostic{diag.New(diag.FuncDeclarationMalformed, rng)}
	}
	name := rest[0].Token.Text
	valueParts := rest[eqIdx+1:]

	expr, diags := parseValueExpr(valueParts, rng, diag.EmptyFuncExpression, diag.InvalidFuncExpression)
	if expr == nil {
		return nil, diags
	}
	lit, ok := expr.(ast.FuncLiteral)
	if !ok {
		return nil, append(diags, diag.New(diag.FuncDeclarationMalformed, rng))
	}
	return ast.FuncDecl{Rng: rng, Name: name, Lit: &lit}, diags
}

func parseReturnStmt(group []section.Section) (ast.Statement, []diag.Diagnostic) {
	rng := rangeOfSections(group)
	rest := group[1:]
	if len(rest) == 0 {
		return ast.Return{Rng: rng}, nil
	}
	expr, diags := parseValueExpr(rest, rng, diag.EmptyReturnExpression, diag.InvalidReturnExpression)
	if expr == nil {
		return nil, diags
	}
	return ast.Return{Rng: rng, Value: expr}, diags
}

func parseIfStmt(group []section.Section) (ast.Statement, []diag.Diagnostic) {
	rng := rangeOfSections(group)
	rest := group[1:]

	braceIdx := -1
	for i, s := range rest {
		if s.Kind == section.Brace {
			braceIdx = i
			break
		}
	}
	if braceIdx < 0 {
		return nil, []diag.Diagnostic{diag.New(diag.IfStatementMalformed, rng)}
	}

	condParts := rest[:braceIdx]
	thenBrace := rest[braceIdx]
	afterThen := rest[braceIdx+1:]

	cond, diags := parseValueExpr(condParts, rng, diag.EmptyIfCondition, diag.InvalidIfCondition)
	if cond == nil {
		return nil, diags
	}

	thenStmts, thenDiags := parseStatements(thenBrace.Children)
	diags = append(diags, thenDiags...)

	var elseStmts []ast.Statement
	if len(afterThen) > 0 {
		if afterThen[0].Kind == section.Atom && afterThen[0].Token.Kind == token.KwElse &&
			len(afterThen) > 1 && afterThen[1].Kind == section.Brace {
			var elseDiags []diag.Diagnostic
			elseStmts, elseDiags = parseStatements(afterThen[1].Children)
			diags = append(diags, elseDiags...)
		} else {
			diags = append(diags, diag.New(diag.IfStatementMalformed, rng))
		}
	}

	return ast.If{Rng: rng, Cond: cond, Then: thenStmts, Else: elseStmts}, diags
}

func parseExprStmt(group []section.Section) (ast.Statement, []diag.Diagnostic) {
	rng := rangeOfSections(group)
	rest, out := ExprParser(Expression)(Cur(group))
	if out.IsOk() && !rest.Empty() {
		ds := append([]diag.Diagnostic{}, out.Extra()...)
		d := diag.New(diag.UnexpectedTrailingSections, rangeOfSections(rest))
		if group[0].Kind == section.Atom && group[0].Token.Kind == token.Identifier {
			d.Suggest = suggest.Keyword(group[0].Token.Text)
		}
		ds = append(ds, d)
		return nil, ds
	}
	out = parsec.CatchUnbound(out, func() diag.Diagnostic {
		d := diag.New(diag.InvalidExpressionStatement, rng)
		if group[0].Kind == section.Atom && group[0].Token.Kind == token.Identifier {
			d.Suggest = suggest.Keyword(group[0].Token.Text)
		}
		return d
	})
	if !out.IsOk() {
		ds := append([]diag.Diagnostic{}, out.Extra()...)
		ds = append(ds, out.Diagnostics()...)
		return nil, ds
	}
	return ast.ExprStatement{Rng: rng, Value: out.Value()}, out.Extra()
}
