package automaton

import (
	"fmt"
	"io"
)

// ExportDOT writes a Graphviz description of a *DFA or *NFA to w.
func ExportDOT(w io.Writer, g interface{}) error {
	fmt.Fprintln(w, "digraph G {")
	fmt.Fprintln(w, "    rankdir=LR;")

	switch t := g.(type) {

	//------------------------------------------------------------------ DFA
	case *DFA:
		for _, q := range t.States() {
			fmt.Fprintf(w, "    q%d [shape=%s];\n", q, shape(t.IsFinal(q)))
		}
		for _, tr := range t.Transitions() {
			fmt.Fprintf(w, "    q%d -> q%d [label=\"%s\"];\n", tr.From, tr.To, symbolLabel(tr.Symbol))
		}
		fmt.Fprintf(w, "    _start [shape=point]; _start -> q%d;\n", t.Initial())

	//------------------------------------------------------------------ NFA
	case *NFA:
		for _, q := range t.states.Sorted() {
			fmt.Fprintf(w, "    n%d [shape=%s];\n", q, shape(t.finals.Contains(q)))
		}
		for _, k := range t.sortedKeys() {
			label := symbolLabel(k.sym)
			if k.sym == Epsilon {
				label = "ε"
			}
			for _, to := range t.delta[k].Sorted() {
				fmt.Fprintf(w, "    n%d -> n%d [label=\"%s\"];\n", k.from, to, label)
			}
		}
		if t.initial != NoState {
			fmt.Fprintf(w, "    _start [shape=point]; _start -> n%d;\n", t.initial)
		}

	default:
		return fmt.Errorf("automaton: cannot export %T", g)
	}

	_, err := fmt.Fprintln(w, "}")
	return err
}

func shape(final bool) string {
	if final {
		return "doublecircle"
	}
	return "circle"
}
