package regex

import (
	"fmt"

	"regexdfa/internal/automaton"
)

// Regex is a compiled regular expression.
type Regex struct {
	pattern  string
	explicit string
	postfix  string
	nfa      *automaton.NFA
	dfa      *automaton.DFA
}

// Compile turns pattern into a DFA:
// tokenize, insert concatenation, convert to postfix, build the
// Thompson NFA and run the subset construction. The resulting DFA is
// validated before it is returned. Each call owns its own state
// allocator, so Compile is safe for concurrent use.
func Compile(pattern string, opts ...Option) (*Regex, error) {
	tokens, err := Tokenize(pattern)
	if err != nil {
		return nil, err
	}
	explicit := InsertConcatenation(Join(tokens))
	postfix, err := ToPostfix(explicit, opts...)
	if err != nil {
		return nil, err
	}

	nfa, err := Thompson(automaton.NewAllocator(), postfix)
	if err != nil {
		return nil, err
	}
	dfa, err := automaton.ToDFA(nfa)
	if err != nil {
		return nil, err
	}
	if err := dfa.Validate(); err != nil {
		return nil, fmt.Errorf("compile %q: %w", pattern, err)
	}

	return &Regex{
		pattern:  pattern,
		explicit: explicit,
		postfix:  postfix,
		nfa:      nfa,
		dfa:      dfa,
	}, nil
}

func MustCompile(pattern string, opts ...Option) *Regex {
	r, err := Compile(pattern, opts...)
	if err != nil {
		panic(err)
	}
	return r
}

func (r *Regex) Pattern() string { return r.pattern }

// Explicit returns the pattern with "." between concatenated operands.
func (r *Regex) Explicit() string { return r.explicit }

func (r *Regex) Postfix() string { return r.postfix }

func (r *Regex) NFA() *automaton.NFA { return r.nfa.Clone() }

func (r *Regex) DFA() *automaton.DFA { return r.dfa }

// Tree returns the syntax tree of the pattern.
func (r *Regex) Tree() Node {
	// the postfix already reduced to one NFA
	n, _ := BuildTree(r.postfix)
	return n
}

// Match reports whether the DFA accepts word.
func (r *Regex) Match(word string) bool { return r.dfa.Accepts(word) }
