// Package check enforces the declare-before-use rule over a program tree.
//
// The rule is positional, not lexical: a name is visible to every Var and
// Assign visited after its VarDecl in pre-order (node, Left, Right, Else,
// Next), regardless of block nesting. Redeclaration is allowed. Checking stops
// at the first violation.
package check

import (
	"context"
	"log/slog"

	"github.com/leapstack-labs/declcheck/pkg/ast"
	"github.com/leapstack-labs/declcheck/pkg/symtab"
)

// Checker runs one declare-before-use pass.
type Checker struct {
	table  *symtab.Table
	logger *slog.Logger
}

// Option configures a Checker.
type Option func(*Checker)

// WithLogger sets the logger used for debug tracing of declarations and
// references.
func WithLogger(l *slog.Logger) Option {
	return func(c *Checker) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithTable makes the checker populate and consult t instead of a fresh
// table. Names already in t count as declared.
func WithTable(t *symtab.Table) Option {
	return func(c *Checker) {
		if t != nil {
			c.table = t
		}
	}
}

// New creates a checker with its own empty symbol table.
func New(opts ...Option) *Checker {
	c := &Checker{
		table:  symtab.New(),
		logger: slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Table returns the symbol table populated by Check.
func (c *Checker) Table() *symtab.Table {
	return c.table
}

// Check walks root and returns an *UndeclaredVariableError for the first
// reference to a name that has not been declared yet. It also returns the
// context's error if ctx is cancelled mid-walk.
func (c *Checker) Check(ctx context.Context, root *ast.Node) error {
	return ast.Walk(root, func(n *ast.Node) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		return c.visit(n)
	})
}

func (c *Checker) visit(n *ast.Node) error {
	switch n.Kind {
	case ast.KindVarDecl:
		c.logger.Debug("declare", "name", n.Name, "pos", n.Span.String())
		c.table.Declare(n.Name)
	case ast.KindVar, ast.KindAssign:
		if !c.table.IsDeclared(n.Name) {
			return &UndeclaredVariableError{Name: n.Name, Kind: n.Kind, Span: n.Span}
		}
		c.logger.Debug("reference", "name", n.Name, "kind", n.Kind.String())
	}
	return nil
}

// Check runs a fresh checker over root.
func Check(root *ast.Node) error {
	return New().Check(context.Background(), root)
}
