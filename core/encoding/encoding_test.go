package encoding_test

import (
	"testing"

	"github.com/avian-lovelace/compiler/core/ast"
	"github.com/avian-lovelace/compiler/core/diag"
	"github.com/avian-lovelace/compiler/core/encoding"
	"github.com/avian-lovelace/compiler/core/source"
	"github.com/avian-lovelace/compiler/core/token"
	"github.com/fxamacker/cbor/v2"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func rng(startOff, endOff int) source.Range {
	return source.Range{
		Start: source.Position{Line: 1, Column: startOff + 1, Offset: startOff},
		End:   source.Position{Line: 1, Column: endOff + 1, Offset: endOff},
	}
}

// a scope touching every statement and expression variant, round-tripped
// through Encode/Decode.
func sampleScope() *ast.FileScope {
	intType := ast.TypeRef{Rng: rng(0, 0), Name: "Int"}
	return &ast.FileScope{
		Statements: []ast.Statement{
			ast.Print{Rng: rng(0, 10), Value: ast.IntLit{Rng: rng(6, 7), Value: 1}},
			ast.LetDecl{
				Rng:   rng(0, 10),
				Name:  "x",
				Type:  &intType,
				Value: ast.DoubleLit{Rng: rng(6, 9), Value: 1.5},
			},
			ast.LetDecl{
				Rng:   rng(0, 10),
				Name:  "y",
				Value: ast.BoolLit{Rng: rng(6, 10), Value: true},
			},
			ast.MutAssign{Rng: rng(0, 8), Name: "y", Value: ast.CharLit{Rng: rng(4, 7), Value: 'a'}},
			ast.FuncDecl{
				Rng:  rng(0, 30),
				Name: "add",
				Lit: &ast.FuncLiteral{
					Rng: rng(10, 30),
					Params: []ast.Param{
						{Rng: rng(11, 18), Name: "x", Type: intType},
						{Rng: rng(20, 27), Name: "y", Type: intType},
					},
					ResultType: intType,
					Body: ast.FuncBody{
						Expr: ast.Binary{
							Rng:   rng(28, 33),
							Op:    token.Plus,
							Left:  ast.Var{Rng: rng(28, 29), Name: "x"},
							Right: ast.Var{Rng: rng(32, 33), Name: "y"},
						},
					},
				},
			},
			ast.FuncDecl{
				Rng:  rng(0, 30),
				Name: "blockFn",
				Lit: &ast.FuncLiteral{
					Rng: rng(10, 30),
					Params: []ast.Param{
						{Rng: rng(11, 18), Name: "n", Type: intType},
					},
					ResultType: intType,
					Body: ast.FuncBody{
						Block: []ast.Statement{
							ast.Return{Rng: rng(11, 20), Value: ast.IntLit{Rng: rng(18, 19), Value: 0}},
						},
					},
				},
			},
			ast.If{
				Rng:  rng(0, 40),
				Cond: ast.Var{Rng: rng(3, 4), Name: "x"},
				Then: []ast.Statement{ast.Return{Rng: rng(7, 15), Value: nil}},
				Else: []ast.Statement{
					ast.ExprStatement{
						Rng: rng(20, 30),
						Value: ast.Call{
							Rng:    rng(20, 29),
							Callee: ast.Var{Rng: rng(20, 23), Name: "foo"},
							Args: []ast.Expr{
								ast.StringLit{Rng: rng(24, 28), Value: "hi"},
							},
						},
					},
				},
			},
			ast.ExprStatement{
				Rng: rng(0, 20),
				Value: ast.Unary{
					Rng:     rng(0, 5),
					Op:      token.Minus,
					Operand: ast.Var{Rng: rng(1, 2), Name: "z"},
				},
			},
			ast.ExprStatement{
				Rng: rng(0, 20),
				Value: ast.IfExpr{
					Rng:  rng(0, 20),
					Cond: ast.Var{Rng: rng(3, 4), Name: "x"},
					Then: ast.IntLit{Rng: rng(10, 11), Value: 1},
					Else: ast.IntLit{Rng: rng(17, 18), Value: 2},
				},
			},
		},
	}
}

func sampleDiagnostics() []diag.Diagnostic {
	return []diag.Diagnostic{
		diag.New(diag.ExpectedSemicolon, rng(0, 1)),
		diag.NewWithText(diag.InvalidExpressionStatement, rng(2, 5), "lett"),
		diag.NewPair(diag.MismatchedBracket, rng(0, 1), rng(10, 11)),
	}
}

func TestEncodeDecodeRoundTripsScope(t *testing.T) {
	scope := sampleScope()
	diags := sampleDiagnostics()

	data, err := encoding.Encode(scope, diags)
	require.NoError(t, err)
	require.NotEmpty(t, data)

	gotScope, gotDiags, err := encoding.Decode(data)
	require.NoError(t, err)
	if diff := cmp.Diff(scope, gotScope); diff != "" {
		t.Errorf("scope mismatch after round trip (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(diags, gotDiags); diff != "" {
		t.Errorf("diagnostics mismatch after round trip (-want +got):\n%s", diff)
	}
}

func TestEncodeDecodeEmptyScope(t *testing.T) {
	scope := &ast.FileScope{}
	data, err := encoding.Encode(scope, nil)
	require.NoError(t, err)

	gotScope, gotDiags, err := encoding.Decode(data)
	require.NoError(t, err)
	require.Empty(t, gotScope.Statements)
	require.Empty(t, gotDiags)
}

func TestEncodeIsDeterministic(t *testing.T) {
	scope := sampleScope()
	diags := sampleDiagnostics()

	a, err := encoding.Encode(scope, diags)
	require.NoError(t, err)
	b, err := encoding.Encode(scope, diags)
	require.NoError(t, err)
	require.Equal(t, a, b)
}

func TestDecodeRejectsGarbage(t *testing.T) {
	_, _, err := encoding.Decode([]byte("not cbor"))
	require.Error(t, err)
}

func TestDecodeRejectsUnknownDiagnosticKind(t *testing.T) {
	wf := encoding.WireFile{
		Diagnostics: []encoding.WireDiagnostic{{Kind: "no such diagnostic kind"}},
	}
	mode, err := cbor.CanonicalEncOptions().EncMode()
	require.NoError(t, err)
	data, err := mode.Marshal(wf)
	require.NoError(t, err)

	_, _, err = encoding.Decode(data)
	require.Error(t, err)
}

func TestDecodeRejectsUnknownStatementKind(t *testing.T) {
	wf := encoding.WireFile{
		Statements: []encoding.WireStatement{{Kind: "no such statement kind"}},
	}
	mode, err := cbor.CanonicalEncOptions().EncMode()
	require.NoError(t, err)
	data, err := mode.Marshal(wf)
	require.NoError(t, err)

	_, _, err = encoding.Decode(data)
	require.Error(t, err)
}
