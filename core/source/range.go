// Package source tracks positions and spans over lexer input.
package source

import "fmt"

// Position is a single point in source text.
type Position struct {
	Line   int // 1-based
	Column int // 1-based
	Offset int // 0-based byte offset
}

func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// Before reports whether p comes strictly before q in the source.
func (p Position) Before(q Position) bool {
	return p.Offset < q.Offset
}

// Range is a closed interval [Start, End] over source positions.
// Every syntactic entity in the pipeline (token, section, AST node,
// diagnostic) carries exactly one Range.
type Range struct {
	Start Position
	End   Position
}

func (r Range) String() string {
	return fmt.Sprintf("%s-%s", r.Start, r.End)
}

// Union returns the smallest Range that contains both a and b.
//
// union(a,b) = [min(a.start,b.start), max(a.end,b.end)]
func Union(a, b Range) Range {
	start := a.Start
	if b.Start.Before(start) {
		start = b.Start
	}
	end := a.End
	if end.Before(b.End) {
		end = b.End
	}
	return Range{Start: start, End: end}
}

// Contains reports whether r fully contains s (r ⊇ s).
func (r Range) Contains(s Range) bool {
	return !s.Start.Before(r.Start) && !r.End.Before(s.End)
}
