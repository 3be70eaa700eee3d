package regex

import (
	"fmt"
	"io"
)

// Node is a syntax tree node: *Leaf, *Unary or *Binary.
type Node interface {
	Label() rune
}

type Leaf struct {
	Symbol rune
}

type Unary struct {
	Op    rune
	Child Node
}

type Binary struct {
	Op          rune
	Left, Right Node
}

func (l *Leaf) Label() rune   { return l.Symbol }
func (u *Unary) Label() rune  { return u.Op }
func (b *Binary) Label() rune { return b.Op }

// BuildTree builds the syntax tree of a postfix regex.
func BuildTree(postfix string) (Node, error) {
	var stack []Node
	for i, c := range []rune(postfix) {
		switch {
		case isOperand(c):
			stack = append(stack, &Leaf{Symbol: c})
		case isUnary(c):
			if len(stack) < 1 {
				return nil, fmt.Errorf("%w: %q at %d needs an operand", ErrMalformedExpression, c, i)
			}
			stack[len(stack)-1] = &Unary{Op: c, Child: stack[len(stack)-1]}
		case isBinary(c):
			if len(stack) < 2 {
				return nil, fmt.Errorf("%w: %q at %d needs two operands", ErrMalformedExpression, c, i)
			}
			n := len(stack)
			stack = append(stack[:n-2], &Binary{Op: c, Left: stack[n-2], Right: stack[n-1]})
		default:
			return nil, fmt.Errorf("%w: unexpected %q at %d", ErrMalformedExpression, c, i)
		}
	}
	if len(stack) != 1 {
		return nil, fmt.Errorf("%w: %d trees left", ErrMalformedExpression, len(stack))
	}
	return stack[0], nil
}

// Render prints the tree rooted at n, one node per line:
//
//	+--.
//	   |--a
//	   +--*
//	      +--b
func Render(w io.Writer, n Node) {
	render(w, n, "", true)
}

func render(w io.Writer, n Node, indent string, last bool) {
	if n == nil {
		return
	}
	if last {
		fmt.Fprintf(w, "%s+--%c\n", indent, n.Label())
		indent += "   "
	} else {
		fmt.Fprintf(w, "%s|--%c\n", indent, n.Label())
		indent += "|  "
	}
	switch t := n.(type) {
	case *Unary:
		render(w, t.Child, indent, true)
	case *Binary:
		render(w, t.Left, indent, false)
		render(w, t.Right, indent, true)
	}
}
