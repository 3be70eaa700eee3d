package automaton

import (
	"fmt"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// Transition is one entry of a DFA transition function.
type Transition struct {
	From   State
	Symbol Symbol
	To     State
}

// DFA is a deterministic finite automaton. Its transition function is
// partial: a missing (state, symbol) pair rejects the input.
// A DFA is not modified after NewDFA returns.
type DFA struct {
	states   StateSet
	alphabet symbolSet
	delta    map[transKey]State
	initial  State
	finals   StateSet
}

// NewDFA copies its arguments into a new DFA. It does not check them; call
// Validate for that.
func NewDFA(states StateSet, alphabet []Symbol, delta []Transition, initial State, finals StateSet) *DFA {
	d := &DFA{
		states:   states.Clone(),
		alphabet: make(symbolSet, len(alphabet)),
		delta:    make(map[transKey]State, len(delta)),
		initial:  initial,
		finals:   finals.Clone(),
	}
	for _, c := range alphabet {
		d.alphabet[c] = struct{}{}
	}
	for _, t := range delta {
		d.delta[transKey{t.From, t.Symbol}] = t.To
	}
	return d
}

// Validate checks that the initial state, every final state and every
// transition endpoint are declared states and every transition symbol is
// in the alphabet.
func (d *DFA) Validate() error {
	if !d.states.Contains(d.initial) {
		return fmt.Errorf("%w: initial state %d is not a state", ErrStructuralInvariant, d.initial)
	}
	for _, q := range d.finals.Sorted() {
		if !d.states.Contains(q) {
			return fmt.Errorf("%w: final state %d is not a state", ErrStructuralInvariant, q)
		}
	}
	for _, t := range d.Transitions() {
		_, known := d.alphabet[t.Symbol]
		if !d.states.Contains(t.From) || !d.states.Contains(t.To) || !known {
			return fmt.Errorf("%w: invalid transition %d --%q--> %d", ErrStructuralInvariant, t.From, t.Symbol, t.To)
		}
	}
	return nil
}

// Accepts runs word through d.
func (d *DFA) Accepts(word string) bool {
	q := d.initial
	for _, c := range word {
		next, ok := d.delta[transKey{q, c}]
		if !ok {
			return false
		}
		q = next
	}
	return d.finals.Contains(q)
}

// Next returns the destination of q on c.
func (d *DFA) Next(q State, c Symbol) (State, bool) {
	to, ok := d.delta[transKey{q, c}]
	return to, ok
}

func (d *DFA) Initial() State { return d.initial }

func (d *DFA) IsFinal(q State) bool { return d.finals.Contains(q) }

// States returns the states in ascending order.
func (d *DFA) States() []State { return d.states.Sorted() }

// Finals returns the final states in ascending order.
func (d *DFA) Finals() []State { return d.finals.Sorted() }

// Alphabet returns the input symbols in ascending order.
func (d *DFA) Alphabet() []Symbol { return d.alphabet.sorted() }

// Transitions returns every transition ordered by source then symbol.
func (d *DFA) Transitions() []Transition {
	keys := maps.Keys(d.delta)
	slices.SortFunc(keys, func(a, b transKey) bool {
		if a.from != b.from {
			return a.from < b.from
		}
		return a.sym < b.sym
	})
	out := make([]Transition, len(keys))
	for i, k := range keys {
		out[i] = Transition{From: k.from, Symbol: k.sym, To: d.delta[k]}
	}
	return out
}
