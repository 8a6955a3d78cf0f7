package check

import (
	"errors"
	"fmt"

	"github.com/leapstack-labs/declcheck/pkg/ast"
	"github.com/leapstack-labs/declcheck/pkg/token"
)

// ErrUndeclared matches any UndeclaredVariableError with errors.Is.
var ErrUndeclared = errors.New("undeclared variable")

// UndeclaredVariableError reports a Var or Assign whose identifier was not
// declared earlier in traversal order.
type UndeclaredVariableError struct {
	Name string
	Kind ast.Kind   // KindVar or KindAssign
	Span token.Span // zero when the tree carries no positions
}

func (e *UndeclaredVariableError) Error() string {
	if e.Span.IsValid() {
		return fmt.Sprintf("undeclared variable %q at %s", e.Name, e.Span)
	}
	return fmt.Sprintf("undeclared variable %q", e.Name)
}

// Is makes errors.Is(err, ErrUndeclared) hold.
func (e *UndeclaredVariableError) Is(target error) bool {
	return target == ErrUndeclared
}
