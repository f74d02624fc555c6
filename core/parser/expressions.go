// Package parser implements C5: the recursive-descent parser over sections
// that produces the statement/expression tree, following the standard
// precedence cascade (logical → equality → comparison → additive →
// multiplicative → unary → primary).
package parser

import (
	"github.com/avian-lovelace/compiler/core/ast"
	"github.com/avian-lovelace/compiler/core/diag"
	"github.com/avian-lovelace/compiler/core/parsec"
	"github.com/avian-lovelace/compiler/core/section"
	"github.com/avian-lovelace/compiler/core/source"
	"github.com/avian-lovelace/compiler/core/token"
)

// ExprParser is a parser producing an expression node.
type ExprParser = parsec.Parser[section.Section, ast.Expr]

// Expression is the precedence-cascade entry point (the "logical" level).
func Expression(c Cur) (Cur, parsec.Outcome[ast.Expr]) {
	return parseLogical(c)
}

func parseLogical(c Cur) (Cur, parsec.Outcome[ast.Expr]) {
	return leftAssoc(parseEquality, logicalOps)(c)
}

func parseEquality(c Cur) (Cur, parsec.Outcome[ast.Expr]) {
	return nonAssoc(parseComparison, equalityOps)(c)
}

func parseComparison(c Cur) (Cur, parsec.Outcome[ast.Expr]) {
	return nonAssoc(parseAdditive, comparisonOps)(c)
}

func parseAdditive(c Cur) (Cur, parsec.Outcome[ast.Expr]) {
	return leftAssoc(parseMultiplicative, additiveOps)(c)
}

func parseMultiplicative(c Cur) (Cur, parsec.Outcome[ast.Expr]) {
	return leftAssoc(parseUnary, multiplicativeOps)(c)
}

// leftAssoc parses next, then greedily left-folds trailing (op, rhs) pairs,
// using an explicit loop rather than a recursive right-fold, to preserve
// left-associativity without stack depth proportional to term length.
func leftAssoc(next ExprParser, ops map[token.Kind]bool) ExprParser {
	opP := parsec.NextIf(matchOpPred(ops))
	return func(c Cur) (Cur, parsec.Outcome[ast.Expr]) {
		rest, out := next(c)
		if !out.IsOk() {
			return rest, out
		}
		lhs := out.Value()
		cur := rest
		for {
			afterOp, opOut := opP(cur)
			if !opOut.IsOk() {
				break
			}
			rhsRest, rhsOut := next(afterOp)
			if !rhsOut.IsOk() {
				return rhsRest, rhsOut
			}
			rhs := rhsOut.Value()
			lhs = ast.Binary{
				Op:    opOut.Value().Kind,
				Left:  lhs,
				Right: rhs,
				Rng:   source.Union(lhs.Range(), rhs.Range()),
			}
			cur = rhsRest
		}
		return cur, parsec.Ok(lhs)
	}
}

// nonAssoc parses next, then at most one trailing (op, rhs) pair. A second
// operator at the same level is a ChainedComparison error rather than being
// silently accepted: `a == b == c` is rejected, not left- or
// right-associated.
func nonAssoc(next ExprParser, ops map[token.Kind]bool) ExprParser {
	opP := parsec.NextIf(matchOpPred(ops))
	return func(c Cur) (Cur, parsec.Outcome[ast.Expr]) {
		rest, out := next(c)
		if !out.IsOk() {
			return rest, out
		}
		lhs := out.Value()

		afterOp, opOut := opP(rest)
		if !opOut.IsOk() {
			return rest, parsec.Ok(lhs)
		}
		rhsRest, rhsOut := next(afterOp)
		if !rhsOut.IsOk() {
			return rhsRest, rhsOut
		}
		rhs := rhsOut.Value()
		result := ast.Binary{
			Op:    opOut.Value().Kind,
			Left:  lhs,
			Right: rhs,
			Rng:   source.Union(lhs.Range(), rhs.Range()),
		}

		if afterOp2, opOut2 := opP(rhsRest); opOut2.IsOk() {
			rng := source.Union(result.Range(), opOut2.Value().Range)
			return afterOp2, parsec.Fail[ast.Expr](diag.New(diag.ChainedComparison, rng))
		}
		return rhsRest, parsec.Ok(result)
	}
}

// parseUnary greedily consumes prefix operators, parses a primary, then
// right-folds the operators around it so the outermost operator is the
// textually leftmost one (`-!x` parses as `-(!x)`).
func parseUnary(c Cur) (Cur, parsec.Outcome[ast.Expr]) {
	opP := parsec.NextIf(matchOpPred(unaryOps))
	var ops []token.Token
	cur := c
	for {
		rest, out := opP(cur)
		if !out.IsOk() {
			break
		}
		ops = append(ops, out.Value())
		cur = rest
	}

	rest, out := parsePrimary(cur)
	if !out.IsOk() {
		return rest, out
	}
	expr := out.Value()
	for i := len(ops) - 1; i >= 0; i-- {
		op := ops[i]
		expr = ast.Unary{Op: op.Kind, Operand: expr, Rng: source.Union(op.Range, expr.Range())}
	}
	return rest, parsec.Ok(expr)
}

// parsePrimary parses a literal, identifier, parenthesized expression,
// function literal, or `if` expression, then chains any immediately
// following call argument lists left-to-right.
func parsePrimary(c Cur) (Cur, parsec.Outcome[ast.Expr]) {
	rest, out := parseAtom(c)
	if !out.IsOk() {
		return rest, out
	}
	return parseCallChain(out.Value(), rest)
}

func parseCallChain(base ast.Expr, c Cur) (Cur, parsec.Outcome[ast.Expr]) {
	expr := base
	cur := c
	for {
		head, ok := cur.Head()
		if !ok || head.Kind != section.Bracket {
			return cur, parsec.Ok(expr)
		}
		rest := cur.Rest()

		var args []ast.Expr
		for _, part := range splitAtTopLevel(head.Children, token.Comma) {
			if len(part) == 0 {
				continue
			}
			argOut := parsec.RunToEnd(ExprParser(Expression), Cur(part))
			argOut = parsec.CatchUnbound(argOut, func() diag.Diagnostic {
				return diag.New(diag.InvalidCallArgument, rangeOfSections(part))
			})
			if !argOut.IsOk() {
				return rest, parsec.Fail[ast.Expr](argOut.Diagnostics()...)
			}
			args = append(args, argOut.Value())
		}

		expr = ast.Call{Callee: expr, Args: args, Rng: source.Union(expr.Range(), head.Range)}
		cur = rest
	}
}

func parseAtom(c Cur) (Cur, parsec.Outcome[ast.Expr]) {
	return parsec.Alt(parseLiteralOrVar,
		parsec.Alt(parseParenExpr,
			parsec.Alt(parseFuncLiteral, parseIfExpr)))(c)
}

func parseLiteralOrVar(c Cur) (Cur, parsec.Outcome[ast.Expr]) {
	head, ok := c.Head()
	if !ok || head.Kind != section.Atom {
		return c, parsec.Unbound[ast.Expr]()
	}
	t := head.Token
	switch t.Kind {
	case token.Integer:
		return c.Rest(), parsec.Ok[ast.Expr](ast.IntLit{Value: t.Literal.(int64), Rng: t.Range})
	case token.Double:
		return c.Rest(), parsec.Ok[ast.Expr](ast.DoubleLit{Value: t.Literal.(float64), Rng: t.Range})
	case token.Boolean:
		return c.Rest(), parsec.Ok[ast.Expr](ast.BoolLit{Value: t.Literal.(bool), Rng: t.Range})
	case token.Char:
		return c.Rest(), parsec.Ok[ast.Expr](ast.CharLit{Value: t.Literal.(rune), Rng: t.Range})
	case token.String:
		return c.Rest(), parsec.Ok[ast.Expr](ast.StringLit{Value: t.Literal.(string), Rng: t.Range})
	case token.Identifier:
		return c.Rest(), parsec.Ok[ast.Expr](ast.Var{Name: t.Text, Rng: t.Range})
	default:
		return c, parsec.Unbound[ast.Expr]()
	}
}

// parseParenExpr parses a Paren section as a single parenthesized
// expression. The result is the inner expression re-ranged to span the
// parentheses, not a distinct wrapper node, so that `(e)` is semantically
// identical to `e`.
func parseParenExpr(c Cur) (Cur, parsec.Outcome[ast.Expr]) {
	head, ok := c.Head()
	if !ok || head.Kind != section.Paren {
		return c, parsec.Unbound[ast.Expr]()
	}
	rest := c.Rest()

	inner := parsec.RunToEnd(ExprParser(Expression), Cur(head.Children))
	inner = parsec.CatchUnbound(inner, func() diag.Diagnostic {
		return diag.New(diag.ExpectedExpressionInParens, head.Range)
	})
	if !inner.IsOk() {
		return rest, parsec.Fail[ast.Expr](inner.Diagnostics()...)
	}
	return rest, parsec.Ok(inner.Value().WithRange(head.Range))
}

func rangeOfSections(secs []section.Section) source.Range {
	if len(secs) == 0 {
		return source.Range{}
	}
	r := secs[0].Range
	for _, s := range secs[1:] {
		r = source.Union(r, s.Range)
	}
	return r
}
