package ast

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuilders_Fields(t *testing.T) {
	cond := NewVar("c")
	then := NewNum(1)
	els := NewNum(2)

	tests := []struct {
		name string
		node *Node
		want Node
	}{
		{
			name: "num",
			node: NewNum(42),
			want: Node{Kind: KindNum, Value: 42},
		},
		{
			name: "var",
			node: NewVar("x"),
			want: Node{Kind: KindVar, Name: "x"},
		},
		{
			name: "decl without initializer",
			node: NewVarDecl("x", nil),
			want: Node{Kind: KindVarDecl, Name: "x"},
		},
		{
			name: "if with else",
			node: NewIf(cond, then, els),
			want: Node{Kind: KindIf, Left: cond, Right: then, Else: els},
		},
		{
			name: "if without else",
			node: NewIf(cond, then, nil),
			want: Node{Kind: KindIf, Left: cond, Right: then},
		},
		{
			name: "empty block",
			node: NewBlock(nil),
			want: Node{Kind: KindBlock},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, *tt.node)
		})
	}
}

func TestBuilders_EdgesUnsetAreNil(t *testing.T) {
	nodes := []*Node{
		NewNum(0),
		NewVar("a"),
		NewAssign("a", NewNum(1)),
		NewBinOp("+", NewNum(1), NewNum(2)),
		NewWhile(NewVar("a"), NewBlock(nil)),
	}

	for _, n := range nodes {
		t.Run(n.Kind.String(), func(t *testing.T) {
			assert.Nil(t, n.Next, "builders never set Next")
			assert.Nil(t, n.Else)
		})
	}
}

func TestBuilders_CopyIdentifier(t *testing.T) {
	buf := []byte("count")
	n := NewVar(string(buf))
	buf[0] = 'm'

	assert.Equal(t, "count", n.Name)
}

func TestChain(t *testing.T) {
	a, b, c := NewNum(1), NewNum(2), NewNum(3)

	head := Chain(a, nil, b, c)

	require.Same(t, a, head)
	assert.Same(t, b, a.Next)
	assert.Same(t, c, b.Next)
	assert.Nil(t, c.Next)
}

func TestChain_AppendsToExistingChain(t *testing.T) {
	first := Chain(NewNum(1), NewNum(2))
	last := NewNum(3)

	head := Chain(first, last)

	block := NewBlock(head)
	stmts := block.Statements()
	require.Len(t, stmts, 3)
	assert.Same(t, last, stmts[2])
}

func TestChain_RepeatedNodes(t *testing.T) {
	tests := []struct {
		name  string
		build func() (*Node, []*Node)
	}{
		{
			name: "same node twice",
			build: func() (*Node, []*Node) {
				a := NewNum(1)
				return Chain(a, a), []*Node{a}
			},
		},
		{
			name: "node repeated after another",
			build: func() (*Node, []*Node) {
				a, b := NewNum(1), NewNum(2)
				return Chain(a, b, a), []*Node{a, b}
			},
		},
		{
			name: "node already inside an appended chain",
			build: func() (*Node, []*Node) {
				a, b, c := NewNum(1), NewNum(2), NewNum(3)
				first := Chain(a, b)
				return Chain(first, b, c), []*Node{a, b, c}
			},
		},
		{
			name: "pre-linked chain pointing back",
			build: func() (*Node, []*Node) {
				a, b := NewNum(1), NewNum(2)
				b.Next = a
				return Chain(a, b), []*Node{a, b}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			head, want := tt.build()
			got := NewBlock(head).Statements()
			require.Len(t, got, len(want))
			for i := range want {
				assert.Same(t, want[i], got[i])
			}
			assert.Nil(t, got[len(got)-1].Next)
		})
	}
}

func TestChain_Empty(t *testing.T) {
	assert.Nil(t, Chain())
	assert.Nil(t, Chain(nil, nil))
}

func TestStatements_NonBlock(t *testing.T) {
	assert.Nil(t, NewNum(1).Statements())

	var n *Node
	assert.Nil(t, n.Statements())
}

func TestKind_String(t *testing.T) {
	assert.Equal(t, "VarDecl", KindVarDecl.String())
	assert.Equal(t, "Block", KindBlock.String())
	assert.Equal(t, "Kind(?)", Kind(99).String())
	assert.True(t, KindAssign.HasName())
	assert.False(t, KindBinOp.HasName())
}
