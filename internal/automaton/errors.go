package automaton

import "errors"

var (
	// ErrStructuralInvariant is returned by DFA.Validate.
	ErrStructuralInvariant = errors.New("automaton: structural invariant violation")
	// ErrUninitializedAutomaton is returned when an automaton has no
	// initial state, no final state or an empty alphabet where one is
	// required.
	ErrUninitializedAutomaton = errors.New("automaton: uninitialized automaton")
	// ErrFinalStates is returned when a binary combinator receives an
	// operand that does not have exactly one final state.
	ErrFinalStates = errors.New("automaton: operand must have exactly one final state")
	// ErrEpsilonSymbol is returned when epsilon is used as an input symbol.
	ErrEpsilonSymbol = errors.New("automaton: epsilon is not an input symbol")
)
