package main

import (
	"github.com/avian-lovelace/compiler/core/ast"
	"github.com/avian-lovelace/compiler/core/cache"
	"github.com/avian-lovelace/compiler/core/diag"
	"github.com/avian-lovelace/compiler/core/parser"
	"github.com/avian-lovelace/compiler/core/section"
	"github.com/avian-lovelace/compiler/core/token"
)

// runPipeline lexes, sections, and parses src, consulting c first (when
// non-nil) so an unchanged file is never re-parsed. The bool result reports
// whether the result came from the cache.
func runPipeline(file string, src []byte, c *cache.Cache) (*ast.FileScope, []diag.Diagnostic, bool) {
	var key cache.Key
	if c != nil {
		key = cache.Digest(file, src)
		if scope, diags, ok := c.Get(key); ok {
			return scope, diags, true
		}
	}

	tokens := token.Lex(file, src)
	secs, secDiags := section.Sectionize(tokens)
	scope, parseDiags := parser.Parse(secs)

	diags := make([]diag.Diagnostic, 0, len(secDiags)+len(parseDiags))
	diags = append(diags, secDiags...)
	diags = append(diags, parseDiags...)

	if c != nil {
		c.Put(key, scope, diags)
	}
	return scope, diags, false
}
