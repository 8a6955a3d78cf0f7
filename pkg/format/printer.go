// Package format renders program trees as an indented diagnostic transcript.
//
// The output is meant for people, not for re-parsing. Each node is one line;
// Left, Right and Else children are indented one level deeper and the Next
// chain stays at the node's own level, so block statements read as siblings.
package format

import (
	"bytes"
	"strconv"

	"github.com/leapstack-labs/declcheck/pkg/ast"
)

// DefaultIndent is the indentation unit used by Render.
const DefaultIndent = "  "

// Printer accumulates the transcript of one tree.
type Printer struct {
	indent string
	output *bytes.Buffer
}

func newPrinter(opts Options) *Printer {
	return &Printer{
		indent: opts.Indent,
		output: &bytes.Buffer{},
	}
}

// String returns the rendered output.
func (p *Printer) String() string {
	return p.output.String()
}

func (p *Printer) writeIndent(depth int) {
	for i := 0; i < depth; i++ {
		p.output.WriteString(p.indent)
	}
}

func (p *Printer) writeln(depth int, s string) {
	p.writeIndent(depth)
	p.output.WriteString(s)
	p.output.WriteByte('\n')
}

// frame is a pending node and the depth it prints at.
type frame struct {
	node  *ast.Node
	depth int
}

// printTree emits root in pre-order. Children go one level deeper, Next stays
// at the same level. An explicit stack keeps long chains off the call stack.
func (p *Printer) printTree(root *ast.Node) {
	if root == nil {
		return
	}
	stack := []frame{{root, 0}}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		n := f.node

		p.writeln(f.depth, nodeLabel(n))

		if n.Next != nil {
			stack = append(stack, frame{n.Next, f.depth})
		}
		if n.Else != nil {
			stack = append(stack, frame{n.Else, f.depth + 1})
		}
		if n.Right != nil {
			stack = append(stack, frame{n.Right, f.depth + 1})
		}
		if n.Left != nil {
			stack = append(stack, frame{n.Left, f.depth + 1})
		}
	}
}

// nodeLabel returns the fixed per-kind line text.
func nodeLabel(n *ast.Node) string {
	switch n.Kind {
	case ast.KindNum:
		return "NUM: " + strconv.Itoa(n.Value)
	case ast.KindVar:
		return "VAR: " + n.Name
	case ast.KindVarDecl:
		return "DECL: " + n.Name
	case ast.KindAssign:
		return "ASSIGN: " + n.Name
	case ast.KindBinOp:
		return "OP: " + n.Op
	case ast.KindIf:
		return "IF"
	case ast.KindWhile:
		return "WHILE"
	case ast.KindBlock:
		return "BLOCK"
	default:
		return n.Kind.String()
	}
}
