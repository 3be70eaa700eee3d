package automaton

import "fmt"

// Basic returns the two-state automaton accepting exactly c.
func Basic(alloc *Allocator, c Symbol) (*NFA, error) {
	if c == Epsilon {
		return nil, ErrEpsilonSymbol
	}
	n := NewNFA()
	i, f := alloc.Next(), alloc.Next()
	n.SetInitial(i)
	n.AddFinal(f)
	n.AddTransition(i, c, f)
	return n, nil
}

// Concat returns an automaton for the language of a followed by the
// language of b. a keeps its ids and b is renumbered.
func Concat(alloc *Allocator, a, b *NFA) (*NFA, error) {
	fa, okA := a.soleFinal()
	fb, okB := b.soleFinal()
	if !okA || !okB {
		return nil, fmt.Errorf("%w: concatenation of %d and %d final states", ErrFinalStates, len(a.finals), len(b.finals))
	}
	if b.initial == NoState {
		return nil, fmt.Errorf("%w: right operand of concatenation", ErrUninitializedAutomaton)
	}

	res := a.Clone()
	mapping := res.merge(alloc, b)
	res.clearFinals()
	res.AddTransition(fa, Epsilon, mapping[b.initial])
	res.AddFinal(mapping[fb])
	return res, nil
}

// Union returns an automaton for the union of the languages of a and b.
// Both operands are renumbered behind a fresh initial and final state.
func Union(alloc *Allocator, a, b *NFA) (*NFA, error) {
	fa, okA := a.soleFinal()
	fb, okB := b.soleFinal()
	if !okA || !okB {
		return nil, fmt.Errorf("%w: union of %d and %d final states", ErrFinalStates, len(a.finals), len(b.finals))
	}
	if a.initial == NoState || b.initial == NoState {
		return nil, fmt.Errorf("%w: operand of union", ErrUninitializedAutomaton)
	}

	res := NewNFA()
	i, f := alloc.Next(), alloc.Next()
	res.SetInitial(i)
	res.AddFinal(f)

	ma := res.merge(alloc, a)
	mb := res.merge(alloc, b)
	res.AddTransition(i, Epsilon, ma[a.initial])
	res.AddTransition(i, Epsilon, mb[b.initial])
	res.AddTransition(ma[fa], Epsilon, f)
	res.AddTransition(mb[fb], Epsilon, f)
	return res, nil
}

// Star returns an automaton for zero or more repetitions of a.
func Star(alloc *Allocator, a *NFA) (*NFA, error) {
	return wrap(alloc, a, "kleene star", true, true)
}

// Plus returns an automaton for one or more repetitions of a.
func Plus(alloc *Allocator, a *NFA) (*NFA, error) {
	return wrap(alloc, a, "plus", false, true)
}

// Optional returns an automaton for zero or one occurrence of a.
func Optional(alloc *Allocator, a *NFA) (*NFA, error) {
	return wrap(alloc, a, "optional", true, false)
}

// wrap surrounds a with a fresh initial and final state. skip adds the
// initial-to-final epsilon, repeat the loop from a's final back to its
// initial.
func wrap(alloc *Allocator, a *NFA, op string, skip, repeat bool) (*NFA, error) {
	fa, ok := a.anyFinal()
	if a.initial == NoState || !ok {
		return nil, fmt.Errorf("%w: operand of %s", ErrUninitializedAutomaton, op)
	}
	ia := a.initial

	res := a.Clone()
	i, f := alloc.Next(), alloc.Next()
	res.clearFinals()
	res.SetInitial(i)
	res.AddFinal(f)

	res.AddTransition(i, Epsilon, ia)
	if skip {
		res.AddTransition(i, Epsilon, f)
	}
	if repeat {
		res.AddTransition(fa, Epsilon, ia)
	}
	res.AddTransition(fa, Epsilon, f)
	return res, nil
}
