// Package ast is the output of C5: the parsed statement/expression tree.
// Every node carries exactly one source.Range and owns its subtrees; there
// are no cycles.
package ast

import (
	"github.com/avian-lovelace/compiler/core/source"
	"github.com/avian-lovelace/compiler/core/token"
)

// Node is implemented by every statement and expression node.
type Node interface {
	Range() source.Range
}

// Statement is implemented by every statement node.
type Statement interface {
	Node
	statementNode()
}

// Expr is implemented by every expression node. WithRange returns a shallow
// copy of the node with a replaced Range, used to give a parenthesized
// expression the outer range of its parentheses without introducing a
// wrapper node, so "parsing (e)" is semantically identical to "parsing e"
// and differs only in outer range.
type Expr interface {
	Node
	exprNode()
	WithRange(source.Range) Expr
}

// FileScope is the downstream contract handed to name resolution and type
// checking: an ordered sequence of top-level statements.
type FileScope struct {
	Statements []Statement
}

// TypeRef is either a named type (Name non-empty) or a function type
// ([Params] -> Result, Result non-nil). Function-typed parameters are
// parseable (first-class functions can be passed around) even though
// type-checking them is out of this pipeline's scope.
type TypeRef struct {
	Rng    source.Range
	Name   string
	Params []TypeRef
	Result *TypeRef
}

func (t TypeRef) Range() source.Range { return t.Rng }
func (t TypeRef) IsFunc() bool        { return t.Result != nil }

// ---- Statements ----

type Print struct {
	Rng   source.Range
	Value Expr
}

func (n Print) Range() source.Range { return n.Rng }
func (Print) statementNode()        {}

type LetDecl struct {
	Rng   source.Range
	Name  string
	Type  *TypeRef // nil unless the `let IDENT : TYPE = EXPR` form was used
	Value Expr
}

func (n LetDecl) Range() source.Range { return n.Rng }
func (LetDecl) statementNode()        {}

type MutAssign struct {
	Rng   source.Range
	Name  string
	Value Expr
}

func (n MutAssign) Range() source.Range { return n.Rng }
func (MutAssign) statementNode()        {}

// FuncDecl binds an identifier to a function literal at the top level; it
// is visible throughout its enclosing scope (mutual recursion is a
// downstream name-resolution concern, not a parsing one.
type FuncDecl struct {
	Rng  source.Range
	Name string
	Lit  *FuncLiteral
}

func (n FuncDecl) Range() source.Range { return n.Rng }
func (FuncDecl) statementNode()        {}

// If is usable both as a statement (this node) and, via IfExpr, as a
// primary expression; disambiguation between the two is left to the type
// checker, not the parser.
type If struct {
	Rng  source.Range
	Cond Expr
	Then []Statement
	Else []Statement // nil when there is no else clause
}

func (n If) Range() source.Range { return n.Rng }
func (If) statementNode()        {}

// Return is a bare `return;` when Value is nil.
type Return struct {
	Rng   source.Range
	Value Expr
}

func (n Return) Range() source.Range { return n.Rng }
func (Return) statementNode()        {}

// ExprStatement is a bare expression evaluated for effect, the top-level
// form the corpus uses for function calls like `foo[]`.
type ExprStatement struct {
	Rng   source.Range
	Value Expr
}

func (n ExprStatement) Range() source.Range { return n.Rng }
func (ExprStatement) statementNode()        {}

// ---- Expressions ----

type IntLit struct {
	Rng   source.Range
	Value int64
}

func (n IntLit) Range() source.Range            { return n.Rng }
func (IntLit) exprNode()                        {}
func (n IntLit) WithRange(r source.Range) Expr   { n.Rng = r; return n }

type DoubleLit struct {
	Rng   source.Range
	Value float64
}

func (n DoubleLit) Range() source.Range          { return n.Rng }
func (DoubleLit) exprNode()                      {}
func (n DoubleLit) WithRange(r source.Range) Expr { n.Rng = r; return n }

type BoolLit struct {
	Rng   source.Range
	Value bool
}

func (n BoolLit) Range() source.Range          { return n.Rng }
func (BoolLit) exprNode()                      {}
func (n BoolLit) WithRange(r source.Range) Expr { n.Rng = r; return n }

type CharLit struct {
	Rng   source.Range
	Value rune
}

func (n CharLit) Range() source.Range          { return n.Rng }
func (CharLit) exprNode()                      {}
func (n CharLit) WithRange(r source.Range) Expr { n.Rng = r; return n }

type StringLit struct {
	Rng   source.Range
	Value string
}

func (n StringLit) Range() source.Range          { return n.Rng }
func (StringLit) exprNode()                      {}
func (n StringLit) WithRange(r source.Range) Expr { n.Rng = r; return n }

type Var struct {
	Rng  source.Range
	Name string
}

func (n Var) Range() source.Range          { return n.Rng }
func (Var) exprNode()                      {}
func (n Var) WithRange(r source.Range) Expr { n.Rng = r; return n }

// Unary is right-nested: the outermost operator is textually leftmost.
type Unary struct {
	Rng     source.Range
	Op      token.Kind // Minus or Bang
	Operand Expr
}

func (n Unary) Range() source.Range          { return n.Rng }
func (Unary) exprNode()                      {}
func (n Unary) WithRange(r source.Range) Expr { n.Rng = r; return n }

// Binary covers every binary operator level (logical, equality, comparison,
// additive, multiplicative). Left-associative chains are left-folded by the
// parser; equality/comparison admit at most one Binary node per level.
type Binary struct {
	Rng   source.Range
	Op    token.Kind
	Left  Expr
	Right Expr
}

func (n Binary) Range() source.Range          { return n.Rng }
func (Binary) exprNode()                      {}
func (n Binary) WithRange(r source.Range) Expr { n.Rng = r; return n }

type Param struct {
	Rng  source.Range
	Name string
	Type TypeRef
}

func (p Param) Range() source.Range { return p.Rng }

// FuncBody is either a single expression (`-> expr`) or a brace-delimited
// statement block; exactly one of Expr/Block is populated.
type FuncBody struct {
	Expr  Expr
	Block []Statement
}

type FuncLiteral struct {
	Rng        source.Range
	Params     []Param
	ResultType TypeRef
	Body       FuncBody
}

func (n FuncLiteral) Range() source.Range          { return n.Rng }
func (FuncLiteral) exprNode()                      {}
func (n FuncLiteral) WithRange(r source.Range) Expr { n.Rng = r; return n }

// Call is a chained-left `primary[args...]` application.
type Call struct {
	Rng    source.Range
	Callee Expr
	Args   []Expr
}

func (n Call) Range() source.Range          { return n.Rng }
func (Call) exprNode()                      {}
func (n Call) WithRange(r source.Range) Expr { n.Rng = r; return n }

// IfExpr is the expression-position form of If: Then/Else are single
// expressions rather than statement blocks.
type IfExpr struct {
	Rng  source.Range
	Cond Expr
	Then Expr
	Else Expr
}

func (n IfExpr) Range() source.Range          { return n.Rng }
func (IfExpr) exprNode()                      {}
func (n IfExpr) WithRange(r source.Range) Expr { n.Rng = r; return n }
