package automaton

import (
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

type transKey struct {
	from State
	sym  Symbol
}

// NFA is a nondeterministic finite automaton with epsilon transitions.
// The zero value is not usable; use NewNFA.
type NFA struct {
	states   StateSet
	alphabet symbolSet
	delta    map[transKey]StateSet
	initial  State
	finals   StateSet
}

func NewNFA() *NFA {
	return &NFA{
		states:   StateSet{},
		alphabet: symbolSet{},
		delta:    map[transKey]StateSet{},
		initial:  NoState,
		finals:   StateSet{},
	}
}

// Clone returns a deep copy of n.
func (n *NFA) Clone() *NFA {
	out := &NFA{
		states:   n.states.Clone(),
		alphabet: n.alphabet.clone(),
		delta:    make(map[transKey]StateSet, len(n.delta)),
		initial:  n.initial,
		finals:   n.finals.Clone(),
	}
	for k, to := range n.delta {
		out.delta[k] = to.Clone()
	}
	return out
}

func (n *NFA) AddState(q State) { n.states.Add(q) }

// AddSymbol registers c in the alphabet. Epsilon is ignored.
func (n *NFA) AddSymbol(c Symbol) {
	if c != Epsilon {
		n.alphabet[c] = struct{}{}
	}
}

// AddTransition adds from --c--> to, registering both states and the
// symbol.
func (n *NFA) AddTransition(from State, c Symbol, to State) {
	n.AddState(from)
	n.AddState(to)
	n.AddSymbol(c)
	k := transKey{from, c}
	set, ok := n.delta[k]
	if !ok {
		set = StateSet{}
		n.delta[k] = set
	}
	set.Add(to)
}

func (n *NFA) SetInitial(q State) {
	n.AddState(q)
	n.initial = q
}

func (n *NFA) AddFinal(q State) {
	n.AddState(q)
	n.finals.Add(q)
}

func (n *NFA) clearFinals() { n.finals = StateSet{} }

func (n *NFA) Initial() State { return n.initial }

func (n *NFA) States() StateSet { return n.states.Clone() }

func (n *NFA) Finals() StateSet { return n.finals.Clone() }

// Alphabet returns the input symbols in ascending order.
func (n *NFA) Alphabet() []Symbol { return n.alphabet.sorted() }

// Targets returns the destinations of from on c.
func (n *NFA) Targets(from State, c Symbol) StateSet {
	return n.delta[transKey{from, c}].Clone()
}

// soleFinal returns the only final state of n.
func (n *NFA) soleFinal() (State, bool) {
	if len(n.finals) != 1 {
		return NoState, false
	}
	for q := range n.finals {
		return q, true
	}
	return NoState, false
}

// anyFinal returns the smallest final state of n.
func (n *NFA) anyFinal() (State, bool) {
	if len(n.finals) == 0 {
		return NoState, false
	}
	return n.finals.Sorted()[0], true
}

// LambdaClosure returns every state reachable from set through epsilon
// transitions only, set included.
func (n *NFA) LambdaClosure(set StateSet) StateSet {
	closure := set.Clone()
	stack := set.Sorted()
	for len(stack) > 0 {
		q := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for next := range n.delta[transKey{q, Epsilon}] {
			if !closure.Contains(next) {
				closure.Add(next)
				stack = append(stack, next)
			}
		}
	}
	return closure
}

// Move returns the states reachable from set by exactly one transition
// labelled c. It is empty for Epsilon.
func (n *NFA) Move(set StateSet, c Symbol) StateSet {
	out := StateSet{}
	if c == Epsilon {
		return out
	}
	for q := range set {
		for next := range n.delta[transKey{q, c}] {
			out.Add(next)
		}
	}
	return out
}

// sortedKeys returns the transition keys ordered by state then symbol.
func (n *NFA) sortedKeys() []transKey {
	keys := maps.Keys(n.delta)
	slices.SortFunc(keys, func(a, b transKey) bool {
		if a.from != b.from {
			return a.from < b.from
		}
		return a.sym < b.sym
	})
	return keys
}

// merge copies every state and transition of other into n under fresh ids
// drawn from alloc and returns the old-to-new mapping. Initial and final
// markers of other are not copied.
func (n *NFA) merge(alloc *Allocator, other *NFA) map[State]State {
	all := other.states.Clone()
	for k, to := range other.delta {
		all.Add(k.from)
		for q := range to {
			all.Add(q)
		}
	}

	mapping := make(map[State]State, len(all))
	for _, old := range all.Sorted() {
		q := alloc.Next()
		mapping[old] = q
		n.AddState(q)
	}
	for _, k := range other.sortedKeys() {
		for _, to := range other.delta[k].Sorted() {
			n.AddTransition(mapping[k.from], k.sym, mapping[to])
		}
	}
	for c := range other.alphabet {
		n.AddSymbol(c)
	}
	return mapping
}
