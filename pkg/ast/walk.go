package ast

import "errors"

// ErrSkipChildren may be returned by a WalkFunc to skip the Left, Right and
// Else edges of the current node. Its Next chain is still visited.
var ErrSkipChildren = errors.New("skip children")

// WalkFunc is called for every node visited by Walk.
type WalkFunc func(n *Node) error

// Walk visits root and everything reachable from it in pre-order: the node,
// then Left, Right, Else and finally Next, skipping nil edges. The first
// non-nil error other than ErrSkipChildren stops the walk and is returned.
//
// The traversal uses an explicit stack, so long statement chains do not grow
// the goroutine stack.
func Walk(root *Node, fn WalkFunc) error {
	if root == nil {
		return nil
	}
	stack := []*Node{root}
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		err := fn(n)
		skip := errors.Is(err, ErrSkipChildren)
		if err != nil && !skip {
			return err
		}

		// Pushed in reverse so Left is popped first.
		if n.Next != nil {
			stack = append(stack, n.Next)
		}
		if skip {
			continue
		}
		if n.Else != nil {
			stack = append(stack, n.Else)
		}
		if n.Right != nil {
			stack = append(stack, n.Right)
		}
		if n.Left != nil {
			stack = append(stack, n.Left)
		}
	}
	return nil
}
