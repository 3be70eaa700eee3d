package regex

import (
	"bytes"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"regexdfa/internal/automaton"
)

// ------------------------------------------------------------------- helpers

func newRE(t *testing.T, pat string, opts ...Option) *Regex {
	t.Helper()
	re, err := Compile(pat, opts...)
	require.NoError(t, err, "compile %q", pat)
	return re
}

func acc(t *testing.T, re *Regex, in string, want bool) {
	t.Helper()
	if got := re.Match(in); got != want {
		t.Fatalf("pattern %q on %q want %v got %v", re.Pattern(), in, want, got)
	}
}

// words lists every word over {a,b} up to length max.
func words(max int) []string {
	out := []string{""}
	level := []string{""}
	for i := 0; i < max; i++ {
		var next []string
		for _, w := range level {
			next = append(next, w+"a", w+"b")
		}
		out = append(out, next...)
		level = next
	}
	return out
}

var operands = []string{"a", "b", "ab", "a|b", "a*", "(ab)+", "b?"}

// ------------------------------------------------------------------- scenarios

func TestScenarios(t *testing.T) {
	tests := []struct {
		pattern string
		yes, no []string
	}{
		{"a(a|b)*", []string{"a", "aab", "abba"}, []string{"", "b", "ba"}},
		{"a+b", []string{"ab", "aab"}, []string{"b", "a"}},
		{"a?b", []string{"b", "ab"}, []string{"aab", ""}},
		{"a|bc*", []string{"a", "b", "bc", "bccc"}, []string{"ab", "", "c"}},
		{"(ab|a)*c", []string{"c", "abc", "aababc"}, []string{"", "b", "abbc"}},
		{"1(0|1)*0", []string{"10", "1100"}, []string{"1", "01", "101"}},
	}
	for _, tt := range tests {
		t.Run(tt.pattern, func(t *testing.T) {
			re := newRE(t, tt.pattern)
			for _, w := range tt.yes {
				acc(t, re, w, true)
			}
			for _, w := range tt.no {
				acc(t, re, w, false)
			}
		})
	}
}

func TestPostfixScenario(t *testing.T) {
	re := newRE(t, "ab|c")
	assert.Equal(t, "a.b|c", re.Explicit())
	assert.Equal(t, "ab.c|", re.Postfix())
	assert.Equal(t, "ab|c", re.Pattern())
}

func TestSingleSymbol(t *testing.T) {
	for _, x := range []string{"a", "z", "Q", "7"} {
		re := newRE(t, x)
		acc(t, re, x, true)
		acc(t, re, "", false)
		acc(t, re, x+x, false)
		acc(t, re, "b", x == "b")
	}
}

// ------------------------------------------------------------------- laws

func TestUnionLaw(t *testing.T) {
	for _, a := range operands {
		for _, b := range operands {
			ra, rb := newRE(t, a), newRE(t, b)
			ru := newRE(t, "("+a+")|("+b+")")
			for _, w := range words(5) {
				assert.Equal(t, ra.Match(w) || rb.Match(w), ru.Match(w), "(%s)|(%s) on %q", a, b, w)
			}
		}
	}
}

func TestConcatenationLaw(t *testing.T) {
	for _, a := range operands {
		for _, b := range operands {
			ra, rb := newRE(t, a), newRE(t, b)
			rc := newRE(t, "("+a+")("+b+")")
			for _, w := range words(5) {
				want := false
				for i := 0; i <= len(w) && !want; i++ {
					want = ra.Match(w[:i]) && rb.Match(w[i:])
				}
				assert.Equal(t, want, rc.Match(w), "(%s)(%s) on %q", a, b, w)
			}
		}
	}
}

func TestStarLaw(t *testing.T) {
	for _, a := range operands {
		ra := newRE(t, a)
		rs := newRE(t, "("+a+")*")
		rp := newRE(t, "("+a+")+")
		acc(t, rs, "", true)
		if !ra.Match("") {
			acc(t, rp, "", false)
		}
		for _, w := range words(5) {
			// split[i]: w[:i] is a concatenation of words of a
			split := make([]bool, len(w)+1)
			split[0] = true
			for j := 1; j <= len(w); j++ {
				for i := 0; i < j && !split[j]; i++ {
					split[j] = split[i] && ra.Match(w[i:j])
				}
			}
			assert.Equal(t, split[len(w)], rs.Match(w), "(%s)* on %q", a, w)
		}
	}
}

// ------------------------------------------------------------------- structure

func TestCompiledDFAIsWellFormed(t *testing.T) {
	for _, pat := range append(operands, "a(a|b)*", "(a|b)*abb", "((a))?") {
		d := newRE(t, pat).DFA()
		require.NoError(t, d.Validate(), "pattern %q", pat)
		assert.Equal(t, automaton.State(0), d.Initial())

		seen := map[[2]int]bool{}
		for _, tr := range d.Transitions() {
			k := [2]int{int(tr.From), int(tr.Symbol)}
			assert.False(t, seen[k])
			seen[k] = true
		}
	}
}

func TestCompileErrors(t *testing.T) {
	tests := []struct {
		pattern string
		err     error
	}{
		{"", ErrMalformedExpression},
		{"   ", ErrMalformedExpression},
		{"()", ErrMalformedExpression},
		{"a|", ErrMalformedExpression},
		{"*a", ErrMalformedExpression},
		{"|", ErrMalformedExpression},
		{"a.b", ErrInvalidSymbol},
		{"a-b", ErrInvalidSymbol},
	}
	for _, tt := range tests {
		re, err := Compile(tt.pattern)
		assert.ErrorIs(t, err, tt.err, "pattern %q", tt.pattern)
		assert.Nil(t, re)
	}

	_, err := Compile("(a|b", WithParenPolicy(Strict))
	assert.ErrorIs(t, err, ErrUnbalancedParens)
	re := newRE(t, "(a|b")
	acc(t, re, "b", true)
	re = newRE(t, "a)b")
	acc(t, re, "ab", true)

	assert.Panics(t, func() { MustCompile("a|") })
}

func TestWhitespaceIgnored(t *testing.T) {
	re := newRE(t, " a ( a | b ) * ")
	assert.Equal(t, "aab|*.", re.Postfix())
	acc(t, re, "abab", true)
}

func TestTreeAndNFA(t *testing.T) {
	re := newRE(t, "a(a|b)*")

	var buf bytes.Buffer
	Render(&buf, re.Tree())
	assert.Equal(t, "+--.\n   |--a\n   +--*\n      +--|\n         |--a\n         +--b\n", buf.String())

	n := re.NFA()
	assert.Equal(t, []automaton.Symbol{'a', 'b'}, n.Alphabet())
	assert.Len(t, n.Finals(), 1)
}

func TestConcurrentCompile(t *testing.T) {
	ref := newRE(t, "a(a|b)*")
	want := ref.NFA().States().Sorted()

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			re, err := Compile("a(a|b)*")
			if assert.NoError(t, err) {
				assert.True(t, re.Match("abba"))
				// every compilation numbers its states from zero
				assert.Equal(t, want, re.NFA().States().Sorted())
			}
		}()
	}
	wg.Wait()
}

func BenchmarkCompile(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_ = MustCompile("(a|b)*abb(a|b)*")
	}
}
