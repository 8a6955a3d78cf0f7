package format

import (
	"bytes"
	"strings"
	"testing"

	"github.com/leapstack-labs/declcheck/pkg/ast"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRender(t *testing.T) {
	tests := []struct {
		name     string
		root     *ast.Node
		expected string
	}{
		{
			name:     "nil",
			root:     nil,
			expected: "",
		},
		{
			name:     "number",
			root:     ast.NewNum(-3),
			expected: "NUM: -3\n",
		},
		{
			name: "block statements are siblings",
			root: ast.NewBlock(ast.Chain(
				ast.NewVarDecl("x", ast.NewNum(5)),
				ast.NewAssign("x", ast.NewNum(6)),
			)),
			expected: `BLOCK
  DECL: x
    NUM: 5
  ASSIGN: x
    NUM: 6
`,
		},
		{
			name: "declaration without initializer",
			root: ast.NewVarDecl("y", nil),
			expected: `DECL: y
`,
		},
		{
			name: "binary operation",
			root: ast.NewBinOp("<", ast.NewVar("i"), ast.NewNum(10)),
			expected: `OP: <
  VAR: i
  NUM: 10
`,
		},
		{
			name: "if without else",
			root: ast.NewIf(
				ast.NewVar("c"),
				ast.NewBlock(ast.NewAssign("x", ast.NewNum(1))),
				nil,
			),
			expected: `IF
  VAR: c
  BLOCK
    ASSIGN: x
      NUM: 1
`,
		},
		{
			name: "if with else",
			root: ast.NewIf(
				ast.NewVar("c"),
				ast.NewBlock(ast.NewAssign("x", ast.NewNum(1))),
				ast.NewBlock(ast.NewAssign("x", ast.NewNum(2))),
			),
			expected: `IF
  VAR: c
  BLOCK
    ASSIGN: x
      NUM: 1
  BLOCK
    ASSIGN: x
      NUM: 2
`,
		},
		{
			name: "while loop",
			root: ast.NewWhile(
				ast.NewBinOp("<", ast.NewVar("i"), ast.NewNum(3)),
				ast.NewBlock(ast.NewAssign("i", ast.NewBinOp("+", ast.NewVar("i"), ast.NewNum(1)))),
			),
			expected: `WHILE
  OP: <
    VAR: i
    NUM: 3
  BLOCK
    ASSIGN: i
      OP: +
        VAR: i
        NUM: 1
`,
		},
		{
			name:     "empty block",
			root:     ast.NewBlock(nil),
			expected: "BLOCK\n",
		},
		{
			name: "nested block keeps its chain one level in",
			root: ast.NewBlock(ast.Chain(
				ast.NewVarDecl("a", nil),
				ast.NewBlock(ast.Chain(ast.NewVar("a"), ast.NewVar("a"))),
				ast.NewVar("a"),
			)),
			expected: `BLOCK
  DECL: a
  BLOCK
    VAR: a
    VAR: a
  VAR: a
`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Render(tt.root))
		})
	}
}

func TestRender_ElseLinesCount(t *testing.T) {
	cond := func() *ast.Node { return ast.NewVar("c") }
	then := func() *ast.Node { return ast.NewNum(1) }

	without := Render(ast.NewIf(cond(), then(), nil))
	with := Render(ast.NewIf(cond(), then(), ast.NewNum(2)))

	assert.Equal(t, 3, strings.Count(without, "\n"))
	assert.Equal(t, 4, strings.Count(with, "\n"))
}

func TestRenderWithOptions_Indent(t *testing.T) {
	root := ast.NewBlock(ast.NewVarDecl("x", ast.NewNum(1)))

	got := RenderWithOptions(root, Options{Indent: "\t"})

	assert.Equal(t, "BLOCK\n\tDECL: x\n\t\tNUM: 1\n", got)
}

func TestRender_DoesNotMutateTree(t *testing.T) {
	decl := ast.NewVarDecl("x", ast.NewNum(1))
	root := ast.NewBlock(decl)

	first := Render(root)
	second := Render(root)

	assert.Equal(t, first, second)
	assert.Nil(t, decl.Next)
}

func TestFprint(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Fprint(&buf, ast.NewVar("v")))
	assert.Equal(t, "VAR: v\n", buf.String())
}
