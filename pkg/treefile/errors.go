package treefile

import (
	"fmt"

	"github.com/leapstack-labs/declcheck/pkg/token"
)

// ParseError reports a tree document that could not be turned into a tree.
type ParseError struct {
	Pos     token.Position
	Message string
}

func (e *ParseError) Error() string {
	if !e.Pos.IsValid() {
		return "parse error: " + e.Message
	}
	return fmt.Sprintf("parse error at line %d, column %d: %s", e.Pos.Line, e.Pos.Column, e.Message)
}

// Common error messages
const (
	ErrEmptyDocument   = "empty document"
	ErrExpectedMapping = "expected a node mapping, got %s"
	ErrNoKind          = "node has no kind key (one of %s)"
	ErrManyKinds       = "node has more than one kind key: %s and %s"
	ErrUnknownField    = "unknown field %q for %s node"
	ErrDuplicateField  = "field %q appears more than once"
	ErrMissingField    = "%s node requires field %q"
	ErrBadScalar       = "%s must be a non-empty scalar"
	ErrBadInteger      = "num value %q is not an integer"
	ErrExpectedList    = "block body must be a sequence of statements, got %s"
	ErrMultipleDocs    = "expected exactly one document"
)
