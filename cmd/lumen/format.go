package main

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/avian-lovelace/compiler/core/diag"
)

// diagFormatter renders diagnostics with a source snippet and caret, the way
// a compiler front-end reports syntax errors at a terminal.
type diagFormatter struct {
	Source   []byte
	Filename string
	Color    bool
}

// Format writes one diagnostic as a filename:line:col header, the offending
// source line, and a caret underline beneath its primary range.
func (f diagFormatter) Format(w io.Writer, d diag.Diagnostic) {
	rng := d.Range()
	header := fmt.Sprintf("%s:%s: %s", f.Filename, rng.Start, d.Kind)
	fmt.Fprintln(w, colorize(header, colorRed, f.Color))

	line := sourceLine(f.Source, rng.Start.Line)
	if line != "" {
		fmt.Fprintln(w, "  "+line)
		col := rng.Start.Column
		if col < 1 {
			col = 1
		}
		width := rng.End.Column - rng.Start.Column
		if width < 1 || rng.End.Line != rng.Start.Line {
			width = 1
		}
		fmt.Fprintln(w, "  "+strings.Repeat(" ", col-1)+colorize(strings.Repeat("^", width), colorYellow, f.Color))
	}

	if d.Text != "" {
		fmt.Fprintln(w, "  "+d.Text)
	}
	if d.Suggest != "" {
		fmt.Fprintln(w, colorize("  did you mean '"+d.Suggest+"'?", colorCyan, f.Color))
	}
}

// sourceLine returns the 1-indexed line n of src, or "" if out of range.
func sourceLine(src []byte, n int) string {
	if n < 1 {
		return ""
	}
	lines := bytes.Split(src, []byte("\n"))
	if n > len(lines) {
		return ""
	}
	return string(lines[n-1])
}
