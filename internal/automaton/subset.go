package automaton

import (
	"encoding/binary"
	"fmt"

	"github.com/dchest/siphash"
	"golang.org/x/exp/slices"
)

// fixed keys; the digest only buckets subsets, equality is checked
// element by element.
const (
	subsetKey0 = 0x736f6d6570736575
	subsetKey1 = 0x646f72616e646f6d
)

type subsetEntry struct {
	ids   []State
	state State
}

// subsetIndex maps sets of NFA states to DFA states.
type subsetIndex struct {
	buckets map[uint64][]subsetEntry
	buf     []byte
}

func newSubsetIndex() *subsetIndex {
	return &subsetIndex{buckets: map[uint64][]subsetEntry{}}
}

func (x *subsetIndex) digest(ids []State) uint64 {
	x.buf = x.buf[:0]
	for _, q := range ids {
		x.buf = binary.LittleEndian.AppendUint64(x.buf, uint64(q))
	}
	return siphash.Hash(subsetKey0, subsetKey1, x.buf)
}

func (x *subsetIndex) lookup(ids []State) (State, bool) {
	for _, e := range x.buckets[x.digest(ids)] {
		if slices.Equal(e.ids, ids) {
			return e.state, true
		}
	}
	return NoState, false
}

func (x *subsetIndex) insert(ids []State, q State) {
	h := x.digest(ids)
	x.buckets[h] = append(x.buckets[h], subsetEntry{ids: ids, state: q})
}

// ToDFA converts n into an equivalent DFA with the subset construction.
// DFA state 0 is the epsilon closure of n's initial state. Symbols that
// lead to the empty set get no transition.
func ToDFA(n *NFA) (*DFA, error) {
	if n.initial == NoState {
		return nil, fmt.Errorf("%w: no initial state", ErrUninitializedAutomaton)
	}
	if len(n.alphabet) == 0 {
		return nil, fmt.Errorf("%w: empty alphabet", ErrUninitializedAutomaton)
	}
	alphabet := n.alphabet.sorted()

	index := newSubsetIndex()
	states := StateSet{}
	finals := StateSet{}
	var delta []Transition

	type item struct {
		set   StateSet
		state State
	}
	var next State
	start := n.LambdaClosure(NewStateSet(n.initial))
	index.insert(start.Sorted(), next)
	states.Add(next)
	queue := []item{{start, next}}
	next++

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		if cur.set.Intersects(n.finals) {
			finals.Add(cur.state)
		}
		for _, c := range alphabet {
			u := n.LambdaClosure(n.Move(cur.set, c))
			if len(u) == 0 {
				continue
			}
			ids := u.Sorted()
			to, ok := index.lookup(ids)
			if !ok {
				to = next
				next++
				index.insert(ids, to)
				states.Add(to)
				queue = append(queue, item{u, to})
			}
			delta = append(delta, Transition{From: cur.state, Symbol: c, To: to})
		}
	}
	return NewDFA(states, alphabet, delta, 0, finals), nil
}
