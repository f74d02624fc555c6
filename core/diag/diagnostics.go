// Package diag defines the fixed taxonomy of structured parse diagnostics.
//
// Diagnostics are values, not errors in the Go sense: the parsing core never
// returns a Go error from a parse; it returns a best-effort tree alongside a
// (possibly empty) Diagnostic list, and a downstream pass decides what to do
// with the two together.
package diag

import "github.com/avian-lovelace/compiler/core/source"

// Kind tags the fixed, structured diagnostic taxonomy the core reports.
type Kind int

const (
	// Sectioning (C4)
	MismatchedBracket Kind = iota
	UnclosedBracket

	// Statement grouping (C5a)
	ExpectedSemicolon

	// Empty-expression-after-keyword, one per keyword-led form
	EmptyPrintExpression
	EmptyLetExpression
	EmptyMutExpression
	EmptyReturnExpression
	EmptyFuncExpression
	EmptyIfCondition

	// Invalid-expression-in-context, one flavor per context
	InvalidPrintExpression
	InvalidLetExpression
	InvalidMutExpression
	InvalidReturnExpression
	InvalidFuncExpression
	InvalidIfCondition
	InvalidExpressionStatement
	ExpectedExpressionInParens

	// Malformed declaration shape
	LetDeclarationMalformed
	MutDeclarationMalformed
	FuncDeclarationMalformed
	IfStatementMalformed

	// Expression-level
	ChainedComparison // non-associative equality/comparison chained twice
	UnexpectedTrailingSections
	InvalidCallArgument
	InvalidFunctionLiteral

	// Internal invariant violation, never a crash, always a diagnostic.
	Internal
)

var names = [...]string{
	"mismatched bracket",
	"unclosed bracket",
	"expected ';' to end statement group",
	"empty expression after 'print'",
	"empty expression after 'let …='",
	"empty expression after 'mut …='",
	"empty expression after 'return'",
	"empty expression after 'func …='",
	"empty condition after 'if'",
	"invalid expression in 'print'",
	"invalid expression in 'let' declaration",
	"invalid expression in 'mut' assignment",
	"invalid expression in 'return'",
	"invalid expression in 'func' declaration",
	"invalid condition in 'if'",
	"invalid expression statement",
	"expected expression inside parentheses",
	"malformed 'let' declaration",
	"malformed 'mut' assignment",
	"malformed 'func' declaration",
	"malformed 'if' statement",
	"comparison and equality operators do not associate",
	"unexpected sections after a complete expression",
	"invalid call argument",
	"invalid function literal",
	"internal error",
}

func (k Kind) String() string {
	if int(k) >= 0 && int(k) < len(names) {
		return names[k]
	}
	return "unknown diagnostic"
}

// KindByName reverse-looks-up a Kind from its String() text, for decoding
// a Kind that crossed a serialization boundary as a stable name rather than
// a raw, layout-dependent int.
func KindByName(name string) (Kind, bool) {
	for i, n := range names {
		if n == name {
			return Kind(i), true
		}
	}
	return 0, false
}

// Diagnostic is a single structured parse error: a Kind, the minimal ranges
// needed to highlight the offending region, optional free text (an
// identifier or a message), and an optional keyword suggestion.
type Diagnostic struct {
	Kind    Kind
	Ranges  []source.Range
	Text    string // identifier text or message, when the Kind carries one
	Suggest string // "did you mean …" hint, populated by internal/suggest
}

// New builds a Diagnostic carrying a single range.
func New(kind Kind, rng source.Range) Diagnostic {
	return Diagnostic{Kind: kind, Ranges: []source.Range{rng}}
}

// NewWithText builds a Diagnostic carrying a single range and free text.
func NewWithText(kind Kind, rng source.Range, text string) Diagnostic {
	return Diagnostic{Kind: kind, Ranges: []source.Range{rng}, Text: text}
}

// NewPair builds a Diagnostic carrying two ranges (e.g. bracket mismatch:
// opener and closer).
func NewPair(kind Kind, a, b source.Range) Diagnostic {
	return Diagnostic{Kind: kind, Ranges: []source.Range{a, b}}
}

// Range returns the diagnostic's primary (first) range.
func (d Diagnostic) Range() source.Range {
	if len(d.Ranges) == 0 {
		return source.Range{}
	}
	return d.Ranges[0]
}
