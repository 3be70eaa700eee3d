package automaton

// Product runs a and b in lockstep over the union of their alphabets. A
// product state is final when op reports true for the finality of its two
// components. A missing transition on one side moves that side into an
// implicit dead state, so op sees false for it from then on; pairs where
// both sides are dead are dropped.
func Product(a, b *DFA, op func(inA, inB bool) bool) *DFA {
	type pair struct{ p, q State }

	alphabet := a.alphabet.clone()
	for c := range b.alphabet {
		alphabet[c] = struct{}{}
	}
	symbols := alphabet.sorted()

	final := func(p pair) bool {
		return op(p.p != NoState && a.IsFinal(p.p), p.q != NoState && b.IsFinal(p.q))
	}
	step := func(d *DFA, q State, c Symbol) State {
		if q == NoState {
			return NoState
		}
		if to, ok := d.Next(q, c); ok {
			return to
		}
		return NoState
	}

	ids := map[pair]State{}
	states := StateSet{}
	finals := StateSet{}
	var delta []Transition

	start := pair{a.initial, b.initial}
	ids[start] = 0
	states.Add(0)
	queue := []pair{start}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		from := ids[cur]
		if final(cur) {
			finals.Add(from)
		}
		for _, c := range symbols {
			np := pair{step(a, cur.p, c), step(b, cur.q, c)}
			if np.p == NoState && np.q == NoState {
				continue
			}
			to, seen := ids[np]
			if !seen {
				to = State(len(ids))
				ids[np] = to
				states.Add(to)
				queue = append(queue, np)
			}
			delta = append(delta, Transition{From: from, Symbol: c, To: to})
		}
	}
	return NewDFA(states, symbols, delta, 0, finals)
}

// Intersect accepts the words accepted by both a and b.
func Intersect(a, b *DFA) *DFA {
	return Product(a, b, func(x, y bool) bool { return x && y })
}

// UnionDFA accepts the words accepted by a or b.
func UnionDFA(a, b *DFA) *DFA {
	return Product(a, b, func(x, y bool) bool { return x || y })
}

// Difference accepts the words accepted by a and rejected by b.
func Difference(a, b *DFA) *DFA {
	return Product(a, b, func(x, y bool) bool { return x && !y })
}

// Equivalent reports whether a and b accept the same language.
func Equivalent(a, b *DFA) bool {
	sym := Product(a, b, func(x, y bool) bool { return x != y })
	return len(sym.finals) == 0
}

// Reverse returns a DFA for the reversal of d's language: every edge is
// flipped, a fresh initial state reaches d's final states on epsilon and
// d's initial state becomes the only final state.
func Reverse(d *DFA) (*DFA, error) {
	n := NewNFA()
	for _, q := range d.States() {
		n.AddState(q)
	}
	for _, c := range d.Alphabet() {
		n.AddSymbol(c)
	}
	for _, t := range d.Transitions() {
		n.AddTransition(t.To, t.Symbol, t.From)
	}

	start := State(0)
	for q := range d.states {
		if q >= start {
			start = q + 1
		}
	}
	n.SetInitial(start)
	for _, q := range d.Finals() {
		n.AddTransition(start, Epsilon, q)
	}
	n.AddFinal(d.initial)
	return ToDFA(n)
}

// Shortest returns a shortest word d accepts, choosing the smallest
// symbols first among words of equal length.
func (d *DFA) Shortest() (string, bool) {
	type visit struct {
		q    State
		word []rune
	}
	alphabet := d.Alphabet()
	seen := NewStateSet(d.initial)
	queue := []visit{{q: d.initial}}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		if d.IsFinal(cur.q) {
			return string(cur.word), true
		}
		for _, c := range alphabet {
			to, ok := d.Next(cur.q, c)
			if !ok || seen.Contains(to) {
				continue
			}
			seen.Add(to)
			word := append(append([]rune(nil), cur.word...), c)
			queue = append(queue, visit{to, word})
		}
	}
	return "", false
}
