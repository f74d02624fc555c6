// Package token defines the tagged token vocabulary the lexer produces
// and the core parsing pipeline consumes.
//
// The lexer itself is an upstream collaborator per the parsing core's
// contract: name resolution, type checking, evaluation and codegen never
// see a Token, only the sections and parse tree built from them. The
// vocabulary is pinned down here because the parser's primary-expression
// and operator-recognition rules need concrete Kind values to switch on.
package token

import "github.com/avian-lovelace/compiler/core/source"

// Kind tags the lexical category of a Token.
type Kind int

const (
	// Special
	EOF Kind = iota
	Illegal

	// Punctuation
	LParen    // (
	RParen    // )
	LBrace    // {
	RBrace    // }
	LBracket  // [
	RBracket  // ]
	Semicolon // ;
	Colon     // :
	Comma     // ,
	Arrow     // ->

	// Assignment / comparison
	Equal        // =
	EqualEqual   // ==
	BangEqual    // !=
	Less         // <
	LessEqual    // <=
	Greater      // >
	GreaterEqual // >=

	// Arithmetic
	Plus     // +
	Minus    // -
	Star     // *
	Slash    // /
	Percent  // %
	Bang     // !

	// Keywords
	KwLet
	KwMut
	KwPrint
	KwFunc
	KwIf
	KwThen
	KwElse
	KwReturn
	KwAnd
	KwOr

	// Literals & identifiers
	Integer
	Double
	Boolean
	Char
	String
	Identifier
)

var names = map[Kind]string{
	EOF:          "EOF",
	Illegal:      "ILLEGAL",
	LParen:       "(",
	RParen:       ")",
	LBrace:       "{",
	RBrace:       "}",
	LBracket:     "[",
	RBracket:     "]",
	Semicolon:    ";",
	Colon:        ":",
	Comma:        ",",
	Arrow:        "->",
	Equal:        "=",
	EqualEqual:   "==",
	BangEqual:    "!=",
	Less:         "<",
	LessEqual:    "<=",
	Greater:      ">",
	GreaterEqual: ">=",
	Plus:         "+",
	Minus:        "-",
	Star:         "*",
	Slash:        "/",
	Percent:      "%",
	Bang:         "!",
	KwLet:        "let",
	KwMut:        "mut",
	KwPrint:      "print",
	KwFunc:       "func",
	KwIf:         "if",
	KwThen:       "then",
	KwElse:       "else",
	KwReturn:     "return",
	KwAnd:        "and",
	KwOr:         "or",
	Integer:      "integer",
	Double:       "double",
	Boolean:      "boolean",
	Char:         "char",
	String:       "string",
	Identifier:   "identifier",
}

func (k Kind) String() string {
	if s, ok := names[k]; ok {
		return s
	}
	return "UNKNOWN"
}

// Keywords maps identifier text to its keyword Kind, used by the lexer and
// by internal/suggest for "did you mean" suggestions against the
// fixed keyword set.
var Keywords = map[string]Kind{
	"let":    KwLet,
	"mut":    KwMut,
	"print":  KwPrint,
	"func":   KwFunc,
	"if":     KwIf,
	"then":   KwThen,
	"else":   KwElse,
	"return": KwReturn,
	"and":    KwAnd,
	"or":     KwOr,
}

// Token is a single lexeme tagged with its Kind, source text, decoded
// literal value (when applicable) and source Range.
type Token struct {
	Kind    Kind
	Text    string
	Literal any // decoded int64/float64/bool/rune/string for literal kinds
	Range   source.Range
}

func (t Token) String() string {
	if t.Text != "" {
		return t.Text
	}
	return t.Kind.String()
}

// IsBracket reports whether the token opens or closes a Paren/Brace/Bracket
// section.
func (t Token) IsBracket() bool {
	switch t.Kind {
	case LParen, RParen, LBrace, RBrace, LBracket, RBracket:
		return true
	}
	return false
}

// IsOpener reports whether the token opens a bracketed section.
func (t Token) IsOpener() bool {
	return t.Kind == LParen || t.Kind == LBrace || t.Kind == LBracket
}

// MatchingCloser returns the Kind that closes this opener, and false if t is
// not an opener.
func (t Token) MatchingCloser() (Kind, bool) {
	switch t.Kind {
	case LParen:
		return RParen, true
	case LBrace:
		return RBrace, true
	case LBracket:
		return RBracket, true
	}
	return Illegal, false
}
