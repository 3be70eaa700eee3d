package regex

import (
	"fmt"

	"regexdfa/internal/automaton"
)

// Thompson builds an epsilon-NFA from a postfix regex. Every state is drawn
// from alloc. For binary operators the fragment on top of the stack is the
// right operand.
func Thompson(alloc *automaton.Allocator, postfix string) (*automaton.NFA, error) {
	var stack []*automaton.NFA
	pop := func() *automaton.NFA {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		return n
	}

	for i, c := range []rune(postfix) {
		var (
			frag *automaton.NFA
			err  error
		)
		switch {
		case isOperand(c):
			frag, err = automaton.Basic(alloc, c)
		case isBinary(c):
			if len(stack) < 2 {
				return nil, fmt.Errorf("%w: %q at %d needs two operands", ErrMalformedExpression, c, i)
			}
			right, left := pop(), pop()
			if c == Concat {
				frag, err = automaton.Concat(alloc, left, right)
			} else {
				frag, err = automaton.Union(alloc, left, right)
			}
		case isUnary(c):
			if len(stack) < 1 {
				return nil, fmt.Errorf("%w: %q at %d needs an operand", ErrMalformedExpression, c, i)
			}
			operand := pop()
			switch c {
			case '*':
				frag, err = automaton.Star(alloc, operand)
			case '+':
				frag, err = automaton.Plus(alloc, operand)
			default:
				frag, err = automaton.Optional(alloc, operand)
			}
		default:
			return nil, fmt.Errorf("%w: unexpected %q at %d", ErrMalformedExpression, c, i)
		}
		if err != nil {
			return nil, err
		}
		stack = append(stack, frag)
	}

	switch len(stack) {
	case 0:
		return nil, fmt.Errorf("%w: empty expression", ErrMalformedExpression)
	case 1:
		return stack[0], nil
	default:
		return nil, fmt.Errorf("%w: %d fragments left", ErrMalformedExpression, len(stack))
	}
}
