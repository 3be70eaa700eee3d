package regex

import (
	"fmt"
	"strings"
)

// Concat is the explicit concatenation operator. It is reserved and never
// part of user input.
const Concat = '.'

// ParenPolicy decides what ToPostfix does with unbalanced parentheses.
type ParenPolicy int

const (
	// Lenient absorbs an excess ")" after flushing the operator stack and
	// drops a "(" that is never closed.
	Lenient ParenPolicy = iota
	// Strict fails with ErrUnbalancedParens.
	Strict
)

func (p ParenPolicy) String() string {
	if p == Strict {
		return "strict"
	}
	return "lenient"
}

type options struct {
	parens ParenPolicy
}

// Option configures ToPostfix and Compile.
type Option func(*options)

// WithParenPolicy selects how unbalanced parentheses are handled.
func WithParenPolicy(p ParenPolicy) Option {
	return func(o *options) { o.parens = p }
}

func buildOptions(opts []Option) options {
	var o options
	for _, fn := range opts {
		fn(&o)
	}
	return o
}

func isOperand(c rune) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c >= '0' && c <= '9'
}

func isUnary(c rune) bool { return c == '*' || c == '+' || c == '?' }

func isBinary(c rune) bool { return c == Concat || c == '|' }

func precedence(c rune) int {
	switch {
	case isUnary(c):
		return 3
	case c == Concat:
		return 2
	case c == '|':
		return 1
	}
	return 0
}

// InsertConcatenation makes concatenation explicit by inserting "." between
// a token that can end an operand and a token that can start one.
func InsertConcatenation(regex string) string {
	rs := []rune(regex)
	var sb strings.Builder
	for i, c := range rs {
		sb.WriteRune(c)
		if i+1 == len(rs) {
			break
		}
		next := rs[i+1]
		left := isOperand(c) || c == ')' || isUnary(c)
		right := isOperand(next) || next == '('
		if left && right {
			sb.WriteRune(Concat)
		}
	}
	return sb.String()
}

// ToPostfix converts an infix regex with explicit concatenation to postfix
// with the shunting-yard algorithm. Unary operators bind tighter than
// concatenation, which binds tighter than "|". All operators are left
// associative.
func ToPostfix(regex string, opts ...Option) (string, error) {
	o := buildOptions(opts)

	var ops []rune
	var out strings.Builder
	for i, c := range []rune(regex) {
		switch {
		case isOperand(c):
			out.WriteRune(c)
		case c == '(':
			ops = append(ops, c)
		case c == ')':
			for len(ops) > 0 && ops[len(ops)-1] != '(' {
				out.WriteRune(ops[len(ops)-1])
				ops = ops[:len(ops)-1]
			}
			if len(ops) > 0 {
				ops = ops[:len(ops)-1]
			} else if o.parens == Strict {
				return "", fmt.Errorf("%w: unmatched ) at %d", ErrUnbalancedParens, i)
			}
		case isUnary(c) || isBinary(c):
			for len(ops) > 0 && precedence(ops[len(ops)-1]) >= precedence(c) {
				out.WriteRune(ops[len(ops)-1])
				ops = ops[:len(ops)-1]
			}
			ops = append(ops, c)
		default:
			return "", fmt.Errorf("%w: %q at %d", ErrInvalidSymbol, c, i)
		}
	}

	for len(ops) > 0 {
		top := ops[len(ops)-1]
		ops = ops[:len(ops)-1]
		if top == '(' {
			if o.parens == Strict {
				return "", fmt.Errorf("%w: unclosed (", ErrUnbalancedParens)
			}
			continue
		}
		out.WriteRune(top)
	}
	return out.String(), nil
}
