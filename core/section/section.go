// Package section implements C4: the bracket-matching pass that promotes a
// flat token sequence into a nested tree of sections. It is a hand-written
// stack algorithm rather than a parsec-combinator pipeline, but it still
// reports its diagnostics through diag.Diagnostic and leans on the same
// Range/union discipline as the rest of the pipeline.
//
// Bracketed parameter and argument lists (`[x: Int, y: Int]: Int -> ...`,
// `foo[]`) need a third bracket pair beyond `(`/`)` and `{`/`}`, so
// Sectionize matches `[`/`]` the same way, producing a third Section kind.
package section

import (
	"github.com/avian-lovelace/compiler/core/diag"
	"github.com/avian-lovelace/compiler/core/source"
	"github.com/avian-lovelace/compiler/core/token"
)

// Kind tags a Section's shape.
type Kind int

const (
	Atom Kind = iota
	Paren
	Brace
	Bracket
)

// Section is a token or a balanced bracket group over tokens.
//
// Invariants upheld by Sectionize regardless of input errors:
//   - inside a Paren/Brace/Bracket, the opening and closing bracket tokens
//     are consumed, never present as child Atoms;
//   - children preserve document order;
//   - Range.Start precedes Range.End, and a parent's Range contains every
//     child's Range.
type Section struct {
	Kind     Kind
	Token    token.Token // set when Kind == Atom
	Range    source.Range
	Children []Section // set when Kind != Atom
}

// frame tracks one open bracket on the stack by its opener token.Kind, so
// the closer it wants and the Section Kind it produces are both derived
// from that single token.Kind via the token package's own predicates
// (Token.IsOpener, Token.MatchingCloser) rather than a parallel enum. The
// root frame's openerKind is never read: len(stack) == 1 guards every path
// that would pop it.
type frame struct {
	openerKind  token.Kind
	openerRange source.Range
	children    []Section
}

// sectionKind maps an opener's token.Kind to the Section.Kind it produces.
// This mapping is section's own concern: token has no notion of Section.
func sectionKind(openerKind token.Kind) Kind {
	switch openerKind {
	case token.LBrace:
		return Brace
	case token.LBracket:
		return Bracket
	default:
		return Paren
	}
}

// Sectionize turns a token stream into an ordered sequence of top-level
// sections. It never fails outright: malformed bracketing is reported as
// diagnostics alongside a tree that is, regardless, well-nested.
func Sectionize(tokens []token.Token) ([]Section, []diag.Diagnostic) {
	var diags []diag.Diagnostic
	stack := []frame{{}}

	for _, t := range tokens {
		if t.Kind == token.EOF {
			break
		}
		switch {
		case t.IsOpener():
			stack = append(stack, frame{openerKind: t.Kind, openerRange: t.Range})

		case t.IsBracket():
			if len(stack) == 1 {
				// A closer with no matching opener anywhere on the stack
				// would pop Root and underflow the stack. That is reported
				// as an Internal diagnostic at the closer's position, not a
				// crash. The stray token is dropped; Root is never popped.
				diags = append(diags, diag.NewWithText(diag.Internal, t.Range, "closing bracket with no open bracket"))
				continue
			}
			top := stack[len(stack)-1]
			stack = stack[:len(stack)-1]

			wantCloser, _ := token.Token{Kind: top.openerKind}.MatchingCloser()
			if t.Kind != wantCloser {
				diags = append(diags, diag.NewPair(diag.MismatchedBracket, top.openerRange, t.Range))
			}

			sec := Section{
				Kind:     sectionKind(top.openerKind),
				Range:    source.Union(top.openerRange, t.Range),
				Children: top.children,
			}
			parent := &stack[len(stack)-1]
			parent.children = append(parent.children, sec)

		default:
			parent := &stack[len(stack)-1]
			parent.children = append(parent.children, Section{Kind: Atom, Token: t, Range: t.Range})
		}
	}

	eof := eofRange(tokens)
	for len(stack) > 1 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		diags = append(diags, diag.New(diag.UnclosedBracket, top.openerRange))

		sec := Section{
			Kind:     sectionKind(top.openerKind),
			Range:    source.Union(top.openerRange, eof),
			Children: top.children,
		}
		parent := &stack[len(stack)-1]
		parent.children = append(parent.children, sec)
	}

	return stack[0].children, diags
}

func eofRange(tokens []token.Token) source.Range {
	for _, t := range tokens {
		if t.Kind == token.EOF {
			return t.Range
		}
	}
	if len(tokens) == 0 {
		return source.Range{}
	}
	last := tokens[len(tokens)-1]
	return source.Range{Start: last.Range.End, End: last.Range.End}
}
