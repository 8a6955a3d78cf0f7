package ast

// NewNum creates an integer literal.
func NewNum(v int) *Node {
	return &Node{Kind: KindNum, Value: v}
}

// NewVar creates a variable reference.
func NewVar(name string) *Node {
	return &Node{Kind: KindVar, Name: name}
}

// NewVarDecl creates a declaration. init may be nil.
func NewVarDecl(name string, init *Node) *Node {
	return &Node{Kind: KindVarDecl, Name: name, Left: init}
}

// NewAssign creates an assignment of value to name.
func NewAssign(name string, value *Node) *Node {
	return &Node{Kind: KindAssign, Name: name, Left: value}
}

// NewBinOp creates a binary operation.
func NewBinOp(op string, left, right *Node) *Node {
	return &Node{Kind: KindBinOp, Op: op, Left: left, Right: right}
}

// NewIf creates a conditional. els may be nil.
func NewIf(cond, then, els *Node) *Node {
	return &Node{Kind: KindIf, Left: cond, Right: then, Else: els}
}

// NewWhile creates a loop.
func NewWhile(cond, body *Node) *Node {
	return &Node{Kind: KindWhile, Left: cond, Right: body}
}

// NewBlock creates a block whose body is the Next chain starting at stmts.
func NewBlock(stmts *Node) *Node {
	return &Node{Kind: KindBlock, Left: stmts}
}

// Chain links stmts through their Next edges and returns the head.
// Nil entries are skipped. The Next edge of the last statement is left as is,
// so an already linked chain can be appended. A node that is already part of
// the chain is skipped, and a Next edge pointing back into the chain is cut,
// so the result is always a finite list.
func Chain(stmts ...*Node) *Node {
	var head, tail *Node
	seen := make(map[*Node]bool)
	for _, s := range stmts {
		if s == nil || seen[s] {
			continue
		}
		if head == nil {
			head = s
		} else {
			tail.Next = s
		}
		for tail = s; ; tail = tail.Next {
			seen[tail] = true
			if tail.Next == nil {
				break
			}
			if seen[tail.Next] {
				tail.Next = nil
				break
			}
		}
	}
	return head
}
