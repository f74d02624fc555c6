package parser

import (
	"github.com/avian-lovelace/compiler/core/ast"
	"github.com/avian-lovelace/compiler/core/diag"
	"github.com/avian-lovelace/compiler/core/section"
)

// Parse turns a top-level section sequence (the output of Sectionize) into
// a FileScope. It never aborts early: every top-level statement group is
// parsed independently and its diagnostics are folded into the returned
// list regardless of whether earlier or later groups failed.
func Parse(sections []section.Section) (*ast.FileScope, []diag.Diagnostic) {
	stmts, diags := parseStatements(sections)
	return &ast.FileScope{Statements: stmts}, diags
}
