// Package ast defines the program tree of the toy language.
//
// Every node carries the same four edges (Left, Right, Else, Next); their
// meaning depends on Kind:
//
//	Kind     Left               Right          Else        Next
//	Num      -                  -              -           sibling
//	Var      -                  -              -           sibling
//	VarDecl  initializer (opt)  -              -           sibling
//	Assign   value              -              -           sibling
//	BinOp    left operand       right operand  -           sibling
//	If       condition          then branch    else (opt)  sibling
//	While    condition          body           -           sibling
//	Block    first statement    -              -           sibling
//
// Next only chains statements of one block. A node is reachable from exactly
// one parent edge, so the structure is a forest of singly owned trees.
package ast

import "github.com/leapstack-labs/declcheck/pkg/token"

// Node is one element of the tree.
type Node struct {
	Kind Kind

	Left  *Node
	Right *Node
	Else  *Node
	Next  *Node

	Value int    // Num
	Name  string // Var, VarDecl, Assign
	Op    string // BinOp

	// Span is the source range, zero when the producer had none.
	Span token.Span
}

// WithSpan sets the node's source span and returns the node.
func (n *Node) WithSpan(s token.Span) *Node {
	n.Span = s
	return n
}

// Statements returns the statement chain of a Block in order.
// For any other kind it returns nil.
func (n *Node) Statements() []*Node {
	if n == nil || n.Kind != KindBlock {
		return nil
	}
	var stmts []*Node
	for s := n.Left; s != nil; s = s.Next {
		stmts = append(stmts, s)
	}
	return stmts
}
