package automaton

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ------------------------------------------------------------------- helpers

func basic(t *testing.T, alloc *Allocator, c Symbol) *NFA {
	t.Helper()
	n, err := Basic(alloc, c)
	require.NoError(t, err)
	return n
}

func mustDFA(t *testing.T, n *NFA) *DFA {
	t.Helper()
	d, err := ToDFA(n)
	require.NoError(t, err)
	require.NoError(t, d.Validate())
	return d
}

func accepts(t *testing.T, d *DFA, yes, no []string) {
	t.Helper()
	for _, w := range yes {
		assert.True(t, d.Accepts(w), "want %q accepted", w)
	}
	for _, w := range no {
		assert.False(t, d.Accepts(w), "want %q rejected", w)
	}
}

// ------------------------------------------------------------------- Basic

func TestBasic(t *testing.T) {
	alloc := NewAllocator()
	n := basic(t, alloc, 'x')

	assert.Equal(t, State(0), n.Initial())
	assert.Equal(t, []State{1}, n.Finals().Sorted())
	assert.Equal(t, []Symbol{'x'}, n.Alphabet())
	assert.Equal(t, []State{1}, n.Targets(0, 'x').Sorted())
	assert.Equal(t, 2, alloc.Allocated())

	_, err := Basic(alloc, Epsilon)
	assert.ErrorIs(t, err, ErrEpsilonSymbol)
}

// ------------------------------------------------------------------- binary

func TestConcatRenumbersRightOperand(t *testing.T) {
	alloc := NewAllocator()
	a := basic(t, alloc, 'a') // 0 -a-> 1
	b := basic(t, alloc, 'b') // 2 -b-> 3

	c, err := Concat(alloc, a, b)
	require.NoError(t, err)

	// b's states 2,3 become 4,5
	assert.Equal(t, State(0), c.Initial())
	assert.Equal(t, []State{5}, c.Finals().Sorted())
	assert.Equal(t, []State{0, 1, 4, 5}, c.States().Sorted())
	assert.Equal(t, []State{4}, c.Targets(1, Epsilon).Sorted())
	assert.Equal(t, []State{5}, c.Targets(4, 'b').Sorted())
	assert.Equal(t, []Symbol{'a', 'b'}, c.Alphabet())

	// operands untouched
	assert.Equal(t, []State{1}, a.Finals().Sorted())
	assert.Empty(t, a.Targets(1, Epsilon))
	assert.Equal(t, State(2), b.Initial())

	accepts(t, mustDFA(t, c), []string{"ab"}, []string{"", "a", "b", "ba", "abb"})
}

func TestUnionRenumbersBothOperands(t *testing.T) {
	alloc := NewAllocator()
	a := basic(t, alloc, 'a') // 0,1
	b := basic(t, alloc, 'b') // 2,3

	u, err := Union(alloc, a, b)
	require.NoError(t, err)

	// fresh 4,5; a -> 6,7; b -> 8,9
	assert.Equal(t, State(4), u.Initial())
	assert.Equal(t, []State{5}, u.Finals().Sorted())
	assert.Equal(t, []State{6, 8}, u.Targets(4, Epsilon).Sorted())
	assert.Equal(t, []State{5}, u.Targets(7, Epsilon).Sorted())
	assert.Equal(t, []State{5}, u.Targets(9, Epsilon).Sorted())
	assert.False(t, u.States().Contains(0))

	accepts(t, mustDFA(t, u), []string{"a", "b"}, []string{"", "ab", "c"})
}

func TestBinaryRequiresSingleFinal(t *testing.T) {
	alloc := NewAllocator()
	a := basic(t, alloc, 'a')
	b := basic(t, alloc, 'b')
	b.AddFinal(b.Initial())

	_, err := Concat(alloc, a, b)
	assert.ErrorIs(t, err, ErrFinalStates)
	_, err = Union(alloc, b, a)
	assert.ErrorIs(t, err, ErrFinalStates)
	_, err = Union(alloc, a, NewNFA())
	assert.ErrorIs(t, err, ErrFinalStates)
}

// ------------------------------------------------------------------- unary

func TestStarPlusOptionalEdges(t *testing.T) {
	tests := []struct {
		name         string
		op           func(*Allocator, *NFA) (*NFA, error)
		skip, repeat bool
	}{
		{"star", Star, true, true},
		{"plus", Plus, false, true},
		{"optional", Optional, true, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			alloc := NewAllocator()
			a := basic(t, alloc, 'a') // 0 -a-> 1

			r, err := tt.op(alloc, a)
			require.NoError(t, err)

			assert.Equal(t, State(2), r.Initial())
			assert.Equal(t, []State{3}, r.Finals().Sorted())
			assert.True(t, r.Targets(2, Epsilon).Contains(0))
			assert.Equal(t, tt.skip, r.Targets(2, Epsilon).Contains(3))
			assert.Equal(t, tt.repeat, r.Targets(1, Epsilon).Contains(0))
			assert.True(t, r.Targets(1, Epsilon).Contains(3))

			// operand untouched
			assert.Equal(t, State(0), a.Initial())
			assert.Equal(t, []State{1}, a.Finals().Sorted())
		})
	}
}

func TestUnaryLanguages(t *testing.T) {
	alloc := NewAllocator()

	star, err := Star(alloc, basic(t, alloc, 'a'))
	require.NoError(t, err)
	accepts(t, mustDFA(t, star), []string{"", "a", "aaaa"}, []string{"b", "ab"})

	plus, err := Plus(alloc, basic(t, alloc, 'a'))
	require.NoError(t, err)
	accepts(t, mustDFA(t, plus), []string{"a", "aaa"}, []string{"", "b"})

	opt, err := Optional(alloc, basic(t, alloc, 'a'))
	require.NoError(t, err)
	accepts(t, mustDFA(t, opt), []string{"", "a"}, []string{"aa", "b"})
}

func TestUnaryRequiresInitializedOperand(t *testing.T) {
	alloc := NewAllocator()
	for _, op := range []func(*Allocator, *NFA) (*NFA, error){Star, Plus, Optional} {
		_, err := op(alloc, NewNFA())
		assert.ErrorIs(t, err, ErrUninitializedAutomaton)
	}
}

func TestNestedCompositionKeepsIdsUnique(t *testing.T) {
	// a(a|b)*
	alloc := NewAllocator()
	ab, err := Union(alloc, basic(t, alloc, 'a'), basic(t, alloc, 'b'))
	require.NoError(t, err)
	loop, err := Star(alloc, ab)
	require.NoError(t, err)
	n, err := Concat(alloc, basic(t, alloc, 'a'), loop)
	require.NoError(t, err)

	for _, q := range n.States().Sorted() {
		assert.Less(t, int(q), alloc.Allocated())
	}
	accepts(t, mustDFA(t, n),
		[]string{"a", "aab", "abba"},
		[]string{"", "b", "ba"})
}
