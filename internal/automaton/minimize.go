package automaton

import (
	"fmt"
	"strings"
)

// Minimize returns the smallest DFA accepting the same language as d.
// Missing transitions are treated as edges into a rejecting sink, which
// stays implicit in the result. Rejecting states with outgoing edges are
// kept even if no final state is reachable from them. States of the result are numbered in
// breadth-first order from the initial state 0.
func (d *DFA) Minimize() *DFA {
	alphabet := d.Alphabet()
	reachable := d.reachable(alphabet)

	// --- 1. initial partition: finals and the rest
	block := make(map[State]int, len(reachable))
	for _, q := range reachable {
		if d.finals.Contains(q) {
			block[q] = 1
		} else {
			block[q] = 0
		}
	}

	// --- 2. refine until the number of blocks is stable
	count := countBlocks(block)
	for {
		sigs := map[string]int{}
		refined := make(map[State]int, len(block))
		for _, q := range reachable {
			var sb strings.Builder
			fmt.Fprintf(&sb, "%d", block[q])
			for _, c := range alphabet {
				if to, ok := d.delta[transKey{q, c}]; ok {
					fmt.Fprintf(&sb, ",%d", block[to])
				} else {
					sb.WriteString(",-")
				}
			}
			sig := sb.String()
			id, ok := sigs[sig]
			if !ok {
				id = len(sigs)
				sigs[sig] = id
			}
			refined[q] = id
		}
		block = refined
		if len(sigs) == count {
			break
		}
		count = len(sigs)
	}

	// --- 3. renumber blocks breadth-first and rebuild
	rename := map[int]State{block[d.initial]: 0}
	order := []State{d.initial}
	for i := 0; i < len(order); i++ {
		q := order[i]
		for _, c := range alphabet {
			to, ok := d.delta[transKey{q, c}]
			if !ok {
				continue
			}
			if _, seen := rename[block[to]]; !seen {
				rename[block[to]] = State(len(rename))
				order = append(order, to)
			}
		}
	}

	states := StateSet{}
	finals := StateSet{}
	var delta []Transition
	for _, rep := range order {
		q := rename[block[rep]]
		states.Add(q)
		if d.finals.Contains(rep) {
			finals.Add(q)
		}
		for _, c := range alphabet {
			if to, ok := d.delta[transKey{rep, c}]; ok {
				delta = append(delta, Transition{From: q, Symbol: c, To: rename[block[to]]})
			}
		}
	}
	return NewDFA(states, alphabet, delta, 0, finals)
}

// reachable lists the states reachable from the initial state.
func (d *DFA) reachable(alphabet []Symbol) []State {
	seen := StateSet{d.initial: {}}
	order := []State{d.initial}
	for i := 0; i < len(order); i++ {
		for _, c := range alphabet {
			if to, ok := d.delta[transKey{order[i], c}]; ok && !seen.Contains(to) {
				seen.Add(to)
				order = append(order, to)
			}
		}
	}
	return order
}

func countBlocks(block map[State]int) int {
	ids := map[int]struct{}{}
	for _, b := range block {
		ids[b] = struct{}{}
	}
	return len(ids)
}
