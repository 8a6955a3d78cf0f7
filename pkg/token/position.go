// Package token holds source positions for tree nodes.
//
// The tree itself is produced by an external front end, so positions are
// optional: a zero Position means the producer did not record one.
package token

import "fmt"

// Position represents a location in the source document.
type Position struct {
	Line   int // 1-based line number
	Column int // 1-based column number
}

// IsValid returns true if the position is valid (line > 0).
func (p Position) IsValid() bool {
	return p.Line > 0
}

// String formats the position as line:column, or "-" when unknown.
func (p Position) String() string {
	if !p.IsValid() {
		return "-"
	}
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// Span represents a range in the source document.
type Span struct {
	Start Position
	End   Position
}

// At returns a span that starts and ends at the given position.
func At(line, column int) Span {
	p := Position{Line: line, Column: column}
	return Span{Start: p, End: p}
}

// IsValid returns true if the start position is valid.
func (s Span) IsValid() bool {
	return s.Start.IsValid()
}

// String formats the span by its start position.
func (s Span) String() string {
	return s.Start.String()
}
