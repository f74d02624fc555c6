// Package encoding defines a CBOR wire format for handing a parsed
// FileScope and its diagnostics to an out-of-process downstream consumer
// (an evaluator, a language server, a codegen worker). ast.Statement and
// ast.Expr are interfaces, so the wire form flattens each node into a
// tagged union struct, the same technique the teacher's planfmt package
// uses to serialize its own execution-tree interfaces, rather than
// attempting to CBOR-encode an interface value directly.
package encoding

import (
	"fmt"

	"github.com/avian-lovelace/compiler/core/ast"
	"github.com/avian-lovelace/compiler/core/diag"
	"github.com/avian-lovelace/compiler/core/source"
	"github.com/avian-lovelace/compiler/core/token"
	"github.com/fxamacker/cbor/v2"
)

// WireFile is the top-level payload: a canonical FileScope plus the
// diagnostics produced alongside it.
type WireFile struct {
	Statements  []WireStatement
	Diagnostics []WireDiagnostic
}

// WireStatement is a tagged union over every ast.Statement variant.
type WireStatement struct {
	Kind  string
	Range WireRange

	Name  string       // LetDecl, MutAssign, FuncDecl
	Type  *WireType    // LetDecl, when a type annotation was present
	Value *WireExpr    // Print, LetDecl, MutAssign, Return (nil for bare return), ExprStatement
	Lit   *WireExpr    // FuncDecl (always a FuncLiteral kind)
	Cond  *WireExpr    // If
	Then  []WireStatement
	Else  []WireStatement
}

// WireExpr is a tagged union over every ast.Expr variant.
type WireExpr struct {
	Kind  string
	Range WireRange

	Int    int64
	Double float64
	Bool   bool
	Char   int32
	Str    string
	Name   string
	Op     string

	Operand *WireExpr // Unary
	Left    *WireExpr // Binary
	Right   *WireExpr // Binary
	Callee  *WireExpr // Call
	Args    []WireExpr

	Params     []WireParam // FuncLiteral
	ResultType *WireType   // FuncLiteral
	Body       *WireExpr   // FuncLiteral, single-expression body
	Block      []WireStatement

	CondE *WireExpr // IfExpr
	ThenE *WireExpr // IfExpr
	ElseE *WireExpr // IfExpr
}

type WireParam struct {
	Range WireRange
	Name  string
	Type  WireType
}

type WireType struct {
	Range  WireRange
	Name   string
	Params []WireType
	Result *WireType
}

type WireRange struct {
	StartLine, StartColumn int
	StartOffset            int
	EndLine, EndColumn     int
	EndOffset              int
}

type WireDiagnostic struct {
	Kind    string
	Ranges  []WireRange
	Text    string
	Suggest string
}

func toWireRange(r source.Range) WireRange {
	return WireRange{
		StartLine:   r.Start.Line,
		StartColumn: r.Start.Column,
		StartOffset: r.Start.Offset,
		EndLine:     r.End.Line,
		EndColumn:   r.End.Column,
		EndOffset:   r.End.Offset,
	}
}

func fromWireRange(w WireRange) source.Range {
	return source.Range{
		Start: source.Position{Line: w.StartLine, Column: w.StartColumn, Offset: w.StartOffset},
		End:   source.Position{Line: w.EndLine, Column: w.EndColumn, Offset: w.EndOffset},
	}
}

// Encode serializes a FileScope and its diagnostics into deterministic CBOR.
func Encode(scope *ast.FileScope, diags []diag.Diagnostic) ([]byte, error) {
	wf := WireFile{
		Statements:  make([]WireStatement, len(scope.Statements)),
		Diagnostics: make([]WireDiagnostic, len(diags)),
	}
	for i, s := range scope.Statements {
		wf.Statements[i] = toWireStatement(s)
	}
	for i, d := range diags {
		wf.Diagnostics[i] = toWireDiagnostic(d)
	}
	mode, err := cbor.CanonicalEncOptions().EncMode()
	if err != nil {
		return nil, fmt.Errorf("encoding: build CBOR mode: %w", err)
	}
	return mode.Marshal(wf)
}

// Decode parses a CBOR payload produced by Encode back into a FileScope and
// its diagnostics.
func Decode(data []byte) (*ast.FileScope, []diag.Diagnostic, error) {
	var wf WireFile
	if err := cbor.Unmarshal(data, &wf); err != nil {
		return nil, nil, fmt.Errorf("encoding: CBOR decode: %w", err)
	}
	stmts := make([]ast.Statement, len(wf.Statements))
	for i, ws := range wf.Statements {
		s, err := fromWireStatement(ws)
		if err != nil {
			return nil, nil, fmt.Errorf("encoding: statement %d: %w", i, err)
		}
		stmts[i] = s
	}
	diags := make([]diag.Diagnostic, len(wf.Diagnostics))
	for i, wd := range wf.Diagnostics {
		d, err := fromWireDiagnostic(wd)
		if err != nil {
			return nil, nil, fmt.Errorf("encoding: diagnostic %d: %w", i, err)
		}
		diags[i] = d
	}
	return &ast.FileScope{Statements: stmts}, diags, nil
}

func toWireType(t ast.TypeRef) WireType {
	w := WireType{Range: toWireRange(t.Rng), Name: t.Name}
	for _, p := range t.Params {
		w.Params = append(w.Params, toWireType(p))
	}
	if t.Result != nil {
		r := toWireType(*t.Result)
		w.Result = &r
	}
	return w
}

func fromWireType(w WireType) ast.TypeRef {
	t := ast.TypeRef{Rng: fromWireRange(w.Range), Name: w.Name}
	for _, p := range w.Params {
		t.Params = append(t.Params, fromWireType(p))
	}
	if w.Result != nil {
		r := fromWireType(*w.Result)
		t.Result = &r
	}
	return t
}

func toWireExprPtr(e ast.Expr) *WireExpr {
	if e == nil {
		return nil
	}
	w := toWireExpr(e)
	return &w
}

func toWireExpr(e ast.Expr) WireExpr {
	switch n := e.(type) {
	case ast.IntLit:
		return WireExpr{Kind: "int", Range: toWireRange(n.Rng), Int: n.Value}
	case ast.DoubleLit:
		return WireExpr{Kind: "double", Range: toWireRange(n.Rng), Double: n.Value}
	case ast.BoolLit:
		return WireExpr{Kind: "bool", Range: toWireRange(n.Rng), Bool: n.Value}
	case ast.CharLit:
		return WireExpr{Kind: "char", Range: toWireRange(n.Rng), Char: n.Value}
	case ast.StringLit:
		return WireExpr{Kind: "string", Range: toWireRange(n.Rng), Str: n.Value}
	case ast.Var:
		return WireExpr{Kind: "var", Range: toWireRange(n.Rng), Name: n.Name}
	case ast.Unary:
		return WireExpr{Kind: "unary", Range: toWireRange(n.Rng), Op: n.Op.String(), Operand: toWireExprPtr(n.Operand)}
	case ast.Binary:
		return WireExpr{Kind: "binary", Range: toWireRange(n.Rng), Op: n.Op.String(), Left: toWireExprPtr(n.Left), Right: toWireExprPtr(n.Right)}
	case ast.Call:
		w := WireExpr{Kind: "call", Range: toWireRange(n.Rng), Callee: toWireExprPtr(n.Callee)}
		for _, a := range n.Args {
			w.Args = append(w.Args, toWireExpr(a))
		}
		return w
	case ast.FuncLiteral:
		w := WireExpr{Kind: "funclit", Range: toWireRange(n.Rng)}
		for _, p := range n.Params {
			w.Params = append(w.Params, WireParam{Range: toWireRange(p.Rng), Name: p.Name, Type: toWireType(p.Type)})
		}
		rt := toWireType(n.ResultType)
		w.ResultType = &rt
		if n.Body.Expr != nil {
			w.Body = toWireExprPtr(n.Body.Expr)
		} else {
			for _, s := range n.Body.Block {
				w.Block = append(w.Block, toWireStatement(s))
			}
		}
		return w
	case ast.IfExpr:
		return WireExpr{
			Kind:  "ifexpr",
			Range: toWireRange(n.Rng),
			CondE: toWireExprPtr(n.Cond),
			ThenE: toWireExprPtr(n.Then),
			ElseE: toWireExprPtr(n.Else),
		}
	default:
		panic(fmt.Sprintf("encoding: unknown expr node %T", e))
	}
}

func fromWireExpr(w WireExpr) (ast.Expr, error) {
	r := fromWireRange(w.Range)
	switch w.Kind {
	case "int":
		return ast.IntLit{Rng: r, Value: w.Int}, nil
	case "double":
		return ast.DoubleLit{Rng: r, Value: w.Double}, nil
	case "bool":
		return ast.BoolLit{Rng: r, Value: w.Bool}, nil
	case "char":
		return ast.CharLit{Rng: r, Value: w.Char}, nil
	case "string":
		return ast.StringLit{Rng: r, Value: w.Str}, nil
	case "var":
		return ast.Var{Rng: r, Name: w.Name}, nil
	case "unary":
		operand, err := fromWireExprPtr(w.Operand)
		if err != nil {
			return nil, err
		}
		return ast.Unary{Rng: r, Op: opFromString(w.Op), Operand: operand}, nil
	case "binary":
		left, err := fromWireExprPtr(w.Left)
		if err != nil {
			return nil, err
		}
		right, err := fromWireExprPtr(w.Right)
		if err != nil {
			return nil, err
		}
		return ast.Binary{Rng: r, Op: opFromString(w.Op), Left: left, Right: right}, nil
	case "call":
		callee, err := fromWireExprPtr(w.Callee)
		if err != nil {
			return nil, err
		}
		args := make([]ast.Expr, len(w.Args))
		for i, a := range w.Args {
			ae, err := fromWireExpr(a)
			if err != nil {
				return nil, err
			}
			args[i] = ae
		}
		return ast.Call{Rng: r, Callee: callee, Args: args}, nil
	case "funclit":
		params := make([]ast.Param, len(w.Params))
		for i, p := range w.Params {
			params[i] = ast.Param{Rng: fromWireRange(p.Range), Name: p.Name, Type: fromWireType(p.Type)}
		}
		var resultType ast.TypeRef
		if w.ResultType != nil {
			resultType = fromWireType(*w.ResultType)
		}
		body := ast.FuncBody{}
		if w.Body != nil {
			e, err := fromWireExpr(*w.Body)
			if err != nil {
				return nil, err
			}
			body.Expr = e
		} else {
			stmts := make([]ast.Statement, len(w.Block))
			for i, ws := range w.Block {
				s, err := fromWireStatement(ws)
				if err != nil {
					return nil, err
				}
				stmts[i] = s
			}
			body.Block = stmts
		}
		return ast.FuncLiteral{Rng: r, Params: params, ResultType: resultType, Body: body}, nil
	case "ifexpr":
		cond, err := fromWireExprPtr(w.CondE)
		if err != nil {
			return nil, err
		}
		then, err := fromWireExprPtr(w.ThenE)
		if err != nil {
			return nil, err
		}
		els, err := fromWireExprPtr(w.ElseE)
		if err != nil {
			return nil, err
		}
		return ast.IfExpr{Rng: r, Cond: cond, Then: then, Else: els}, nil
	default:
		return nil, fmt.Errorf("encoding: unknown wire expr kind %q", w.Kind)
	}
}

func fromWireExprPtr(w *WireExpr) (ast.Expr, error) {
	if w == nil {
		return nil, nil
	}
	return fromWireExpr(*w)
}

func opFromString(s string) token.Kind {
	for k := token.Kind(0); k <= token.Identifier; k++ {
		if k.String() == s {
			return k
		}
	}
	return token.Illegal
}

func toWireStatement(s ast.Statement) WireStatement {
	switch n := s.(type) {
	case ast.Print:
		return WireStatement{Kind: "print", Range: toWireRange(n.Rng), Value: toWireExprPtr(n.Value)}
	case ast.LetDecl:
		w := WireStatement{Kind: "let", Range: toWireRange(n.Rng), Name: n.Name, Value: toWireExprPtr(n.Value)}
		if n.Type != nil {
			t := toWireType(*n.Type)
			w.Type = &t
		}
		return w
	case ast.MutAssign:
		return WireStatement{Kind: "mut", Range: toWireRange(n.Rng), Name: n.Name, Value: toWireExprPtr(n.Value)}
	case ast.FuncDecl:
		var lit *WireExpr
		if n.Lit != nil {
			l := toWireExpr(*n.Lit)
			lit = &l
		}
		return WireStatement{Kind: "func", Range: toWireRange(n.Rng), Name: n.Name, Lit: lit}
	case ast.If:
		w := WireStatement{Kind: "if", Range: toWireRange(n.Rng), Cond: toWireExprPtr(n.Cond)}
		for _, st := range n.Then {
			w.Then = append(w.Then, toWireStatement(st))
		}
		for _, st := range n.Else {
			w.Else = append(w.Else, toWireStatement(st))
		}
		return w
	case ast.Return:
		return WireStatement{Kind: "return", Range: toWireRange(n.Rng), Value: toWireExprPtr(n.Value)}
	case ast.ExprStatement:
		return WireStatement{Kind: "exprstmt", Range: toWireRange(n.Rng), Value: toWireExprPtr(n.Value)}
	default:
		panic(fmt.Sprintf("encoding: unknown statement node %T", s))
	}
}

func fromWireStatement(w WireStatement) (ast.Statement, error) {
	r := fromWireRange(w.Range)
	switch w.Kind {
	case "print":
		v, err := fromWireExprPtr(w.Value)
		if err != nil {
			return nil, err
		}
		return ast.Print{Rng: r, Value: v}, nil
	case "let":
		v, err := fromWireExprPtr(w.Value)
		if err != nil {
			return nil, err
		}
		var t *ast.TypeRef
		if w.Type != nil {
			tt := fromWireType(*w.Type)
			t = &tt
		}
		return ast.LetDecl{Rng: r, Name: w.Name, Type: t, Value: v}, nil
	case "mut":
		v, err := fromWireExprPtr(w.Value)
		if err != nil {
			return nil, err
		}
		return ast.MutAssign{Rng: r, Name: w.Name, Value: v}, nil
	case "func":
		var lit *ast.FuncLiteral
		if w.Lit != nil {
			e, err := fromWireExpr(*w.Lit)
			if err != nil {
				return nil, err
			}
			fl, ok := e.(ast.FuncLiteral)
			if !ok {
				return nil, fmt.Errorf("encoding: func decl Lit is not a funclit")
			}
			lit = &fl
		}
		return ast.FuncDecl{Rng: r, Name: w.Name, Lit: lit}, nil
	case "if":
		cond, err := fromWireExprPtr(w.Cond)
		if err != nil {
			return nil, err
		}
		then := make([]ast.Statement, len(w.Then))
		for i, ws := range w.Then {
			s, err := fromWireStatement(ws)
			if err != nil {
				return nil, err
			}
			then[i] = s
		}
		var els []ast.Statement
		for _, ws := range w.Else {
			s, err := fromWireStatement(ws)
			if err != nil {
				return nil, err
			}
			els = append(els, s)
		}
		return ast.If{Rng: r, Cond: cond, Then: then, Else: els}, nil
	case "return":
		v, err := fromWireExprPtr(w.Value)
		if err != nil {
			return nil, err
		}
		return ast.Return{Rng: r, Value: v}, nil
	case "exprstmt":
		v, err := fromWireExprPtr(w.Value)
		if err != nil {
			return nil, err
		}
		return ast.ExprStatement{Rng: r, Value: v}, nil
	default:
		return nil, fmt.Errorf("encoding: unknown wire statement kind %q", w.Kind)
	}
}

func toWireDiagnostic(d diag.Diagnostic) WireDiagnostic {
	w := WireDiagnostic{Kind: d.Kind.String(), Text: d.Text, Suggest: d.Suggest}
	for _, r := range d.Ranges {
		w.Ranges = append(w.Ranges, toWireRange(r))
	}
	return w
}

func fromWireDiagnostic(w WireDiagnostic) (diag.Diagnostic, error) {
	kind, ok := diag.KindByName(w.Kind)
	if !ok {
		return diag.Diagnostic{}, fmt.Errorf("encoding: unknown diagnostic kind %q", w.Kind)
	}
	d := diag.Diagnostic{Kind: kind, Text: w.Text, Suggest: w.Suggest}
	for _, r := range w.Ranges {
		d.Ranges = append(d.Ranges, fromWireRange(r))
	}
	return d, nil
}
