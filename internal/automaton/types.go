package automaton

import (
	"fmt"
	"strings"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// State identifies a state of an automaton.
type State int

// NoState marks an automaton whose initial state was never set.
const NoState State = -1

// Symbol is one input character.
type Symbol = rune

// Epsilon labels empty transitions. It is never part of an alphabet.
const Epsilon Symbol = 0

// StateSet is an unordered set of states.
type StateSet map[State]struct{}

func NewStateSet(states ...State) StateSet {
	s := make(StateSet, len(states))
	for _, q := range states {
		s[q] = struct{}{}
	}
	return s
}

func (s StateSet) Add(q State) { s[q] = struct{}{} }

func (s StateSet) Contains(q State) bool {
	_, ok := s[q]
	return ok
}

// Intersects reports whether s and o share at least one state.
func (s StateSet) Intersects(o StateSet) bool {
	small, big := s, o
	if len(small) > len(big) {
		small, big = big, small
	}
	for q := range small {
		if big.Contains(q) {
			return true
		}
	}
	return false
}

func (s StateSet) Clone() StateSet {
	out := make(StateSet, len(s))
	for q := range s {
		out[q] = struct{}{}
	}
	return out
}

// Sorted returns the states in ascending order.
func (s StateSet) Sorted() []State {
	ids := maps.Keys(s)
	slices.Sort(ids)
	return ids
}

// String formats the set as {1,2,3}.
func (s StateSet) String() string {
	ids := s.Sorted()
	parts := make([]string, len(ids))
	for i, q := range ids {
		parts[i] = fmt.Sprint(int(q))
	}
	return "{" + strings.Join(parts, ",") + "}"
}

type symbolSet map[Symbol]struct{}

func (s symbolSet) sorted() []Symbol {
	syms := maps.Keys(s)
	slices.Sort(syms)
	return syms
}

func (s symbolSet) clone() symbolSet {
	out := make(symbolSet, len(s))
	for c := range s {
		out[c] = struct{}{}
	}
	return out
}

// Allocator hands out fresh state ids for one compilation. Automata that
// are combined with each other must draw their states from the same
// Allocator.
type Allocator struct {
	next State
}

func NewAllocator() *Allocator { return &Allocator{} }

// Next returns a state id that was never returned before by a.
func (a *Allocator) Next() State {
	q := a.next
	a.next++
	return q
}

// Allocated reports how many ids a has handed out.
func (a *Allocator) Allocated() int { return int(a.next) }

// symbolLabel prints a symbol for tables and graphs.
func symbolLabel(c Symbol) string {
	if c == Epsilon {
		return "lambda"
	}
	return string(c)
}
