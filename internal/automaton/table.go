package automaton

import (
	"fmt"
	"io"
	"strings"

	"github.com/olekukonko/tablewriter"
)

const rule = "---------------------------------------"

// stateLabel marks the initial state with -> and final states with *.
func stateLabel(q, initial State, final bool) string {
	var sb strings.Builder
	if q == initial {
		sb.WriteString("->")
	}
	if final {
		sb.WriteString("*")
	}
	fmt.Fprintf(&sb, "%d", q)
	return sb.String()
}

func joinStates(qs []State) string {
	parts := make([]string, len(qs))
	for i, q := range qs {
		parts[i] = fmt.Sprint(int(q))
	}
	return "{ " + strings.Join(parts, " ") + " }"
}

func joinSymbols(cs []Symbol) string {
	parts := make([]string, len(cs))
	for i, c := range cs {
		parts[i] = string(c)
	}
	return "{ " + strings.Join(parts, " ") + " }"
}

func writeHeader(w io.Writer, title string, states, finals []State, alphabet []Symbol, initial State) {
	fmt.Fprintln(w, rule)
	fmt.Fprintln(w, title)
	fmt.Fprintln(w, "Q:", joinStates(states))
	fmt.Fprintln(w, "Sigma:", joinSymbols(alphabet))
	fmt.Fprintln(w, "q0:", int(initial))
	fmt.Fprintln(w, "F:", joinStates(finals))
	fmt.Fprintln(w, rule)
}

// PrintTable writes the five components of d followed by its transition
// table. Missing transitions print as "-".
func (d *DFA) PrintTable(w io.Writer) error {
	alphabet := d.Alphabet()
	writeHeader(w, "DFA M = (Q, Sigma, delta, q0, F)", d.States(), d.Finals(), alphabet, d.initial)

	table := tablewriter.NewWriter(w)
	head := []string{"state"}
	for _, c := range alphabet {
		head = append(head, symbolLabel(c))
	}
	if err := table.Append(head); err != nil {
		return err
	}
	for _, q := range d.States() {
		row := []string{stateLabel(q, d.initial, d.IsFinal(q))}
		for _, c := range alphabet {
			if to, ok := d.Next(q, c); ok {
				row = append(row, fmt.Sprint(int(to)))
			} else {
				row = append(row, "-")
			}
		}
		if err := table.Append(row); err != nil {
			return err
		}
	}
	return table.Render()
}

// PrintTable writes the five components of n followed by its transition
// table, epsilon moves first.
func (n *NFA) PrintTable(w io.Writer) error {
	alphabet := n.Alphabet()
	writeHeader(w, "NFA M = (Q, Sigma, delta, q0, F)", n.states.Sorted(), n.finals.Sorted(), alphabet, n.initial)

	symbols := append([]Symbol{Epsilon}, alphabet...)
	table := tablewriter.NewWriter(w)
	head := []string{"state"}
	for _, c := range symbols {
		head = append(head, symbolLabel(c))
	}
	if err := table.Append(head); err != nil {
		return err
	}
	for _, q := range n.states.Sorted() {
		row := []string{stateLabel(q, n.initial, n.finals.Contains(q))}
		for _, c := range symbols {
			row = append(row, n.delta[transKey{q, c}].String())
		}
		if err := table.Append(row); err != nil {
			return err
		}
	}
	return table.Render()
}
