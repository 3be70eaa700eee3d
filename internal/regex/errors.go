package regex

import "errors"

var (
	// ErrMalformedExpression is returned when a postfix sequence does not
	// reduce to exactly one automaton.
	ErrMalformedExpression = errors.New("regex: malformed expression")
	// ErrInvalidSymbol is returned for characters outside the regex
	// alphabet and operator set.
	ErrInvalidSymbol = errors.New("regex: invalid symbol")
	// ErrUnbalancedParens is returned under the Strict paren policy.
	ErrUnbalancedParens = errors.New("regex: unbalanced parentheses")
)
