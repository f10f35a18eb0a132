package pda_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ava12/gramutil/grammar"
	"github.com/ava12/gramutil/internal/langtest"
	. "github.com/ava12/gramutil/internal/test"
	"github.com/ava12/gramutil/pda"
)

func TestFromGrammar(t *testing.T) {
	g := langtest.MustParse(t, "S -> a S b | $")
	before := g.String()
	a := pda.FromGrammar(g)

	expected := "start: start\n" +
		"stack: ⊥\n" +
		"(start, $, ⊥) -> (loop, S ⊥)\n" +
		"(loop, $, S) -> (loop, a S b)\n" +
		"(loop, $, S) -> (loop, $)\n" +
		"(loop, a, a) -> (loop, $)\n" +
		"(loop, b, b) -> (loop, $)\n" +
		"(loop, $, ⊥) -> (done, $)"
	ExpectString(t, expected, a.String())
	ExpectString(t, before, g.String())

	assert.Equal(t, []pda.State{pda.StartState, pda.LoopState, pda.DoneState}, a.States())
	assert.Equal(t, []string{pda.Bottom, "S", "a", "b"}, a.StackAlphabet())
	assert.Equal(t, []string{"a", "b"}, a.InputAlphabet())
	assert.Len(t, a.Moves(pda.LoopState, "", "S"), 2)
}

func TestFromGrammarEmptyLanguage(t *testing.T) {
	g := langtest.MustParse(t, "S -> A\nA -> a A").Simplify()
	a := pda.FromGrammar(g)
	for _, w := range []string{"", "a", "aa"} {
		Assert(t, !a.Accepts(split(w)), "%q must be rejected", w)
	}
}

func TestPalindromeScenario(t *testing.T) {
	g := langtest.MustParse(t, "S -> 0 S 0 | T\nT -> 1 T 1 | $")
	samples := map[string]bool{
		"":        true,
		"00":      true,
		"11":      true,
		"0110":    true,
		"001100":  true,
		"01110":   false,
		"010":     false,
		"0101010": false,
	}

	for _, h := range []*grammar.Grammar{g, g.Clone().Simplify()} {
		a := pda.FromGrammar(h)
		for w, accepted := range samples {
			word := split(w)
			Assert(t, a.Accepts(word) == accepted, "%q: expecting %t", w, accepted)
			Assert(t, langtest.Generates(h, word) == accepted, "%q: grammar expecting %t", w, accepted)
		}
	}
}

var roundTripGrammars = []struct {
	text     string
	alphabet []string
	maxLen   int
}{
	{"S -> a S b | $", []string{"a", "b"}, 6},
	{"S -> 0 S 0 | T\nT -> 1 T 1 | $", []string{"0", "1"}, 6},
	{"S -> A B\nA -> a A | $\nB -> b B | b", []string{"a", "b"}, 5},
	{"S -> l S r S | $", []string{"l", "r"}, 6},
	{"S -> a | S p S", []string{"a", "p"}, 5},
	{"S -> A | B c\nA -> B\nB -> b | $\nC -> c", []string{"b", "c"}, 4},
	{"S -> A\nA -> a A", []string{"a"}, 3},
}

func TestGrammarAutomatonGrammar(t *testing.T) {
	for _, s := range roundTripGrammars {
		g := langtest.MustParse(t, s.text)
		a := pda.FromGrammar(g)
		h := a.ToGrammar().Simplify()
		for _, w := range langtest.Words(s.alphabet, s.maxLen) {
			expected := langtest.Generates(g, w)
			Assert(t, a.Accepts(w) == expected, "%q: automaton on %v: expecting %t", s.text, w, expected)
			Assert(t, langtest.Generates(h, w) == expected, "%q: converted grammar on %v: expecting %t", s.text, w, expected)
		}
	}
}

func TestAutomatonGrammarAutomaton(t *testing.T) {
	samples := []struct {
		name     string
		a        *pda.Automaton
		alphabet []string
	}{
		{"anbn", anbn(t), []string{"a", "b"}},
		{"anyC", anyC(t), []string{"c", "d"}},
		{"halting", halting(t), []string{"c"}},
	}

	for _, s := range samples {
		g := s.a.ToGrammar().Simplify()
		b := pda.FromGrammar(g)
		for _, w := range langtest.Words(s.alphabet, 6) {
			expected := s.a.Accepts(w)
			Assert(t, langtest.Generates(g, w) == expected, "%s: grammar on %v: expecting %t", s.name, w, expected)
			Assert(t, b.Accepts(w) == expected, "%s: converted automaton on %v: expecting %t", s.name, w, expected)
		}
	}
}

func TestConvertedGrammarParses(t *testing.T) {
	g := anbn(t).ToGrammar().Simplify()
	h := langtest.MustParse(t, g.String())
	ExpectString(t, g.String(), h.String())
	for _, w := range langtest.Words([]string{"a", "b"}, 6) {
		ExpectBool(t, langtest.Generates(g, w), langtest.Generates(h, w))
	}
}

func TestAcceptsLongNullableBody(t *testing.T) {
	g := langtest.MustParse(t, "S -> A A A A A A A A A A a\nA -> $ | b")
	a := pda.FromGrammar(g)
	for _, w := range langtest.Words([]string{"a", "b"}, 5) {
		expected := langtest.Generates(g, w)
		Assert(t, a.Accepts(w) == expected, "%v: expecting %t", w, expected)
	}
	Assert(t, a.Accepts([]string{"a"}), "\"a\" must be accepted")
	Assert(t, !a.AcceptsWithin([]string{"a"}, 10), "\"a\" needs a stack of 12 symbols")
	Assert(t, a.AcceptsWithin([]string{"a"}, 12), "\"a\" must be accepted within 12 symbols")
}

func TestAcceptsEpsilonLoops(t *testing.T) {
	samples := []struct {
		text     string
		alphabet []string
	}{
		{"S -> S S | $", []string{"a"}},
		{"S -> S S | a | $", []string{"a"}},
		{"S -> A S | b\nA -> A | $ | a", []string{"a", "b"}},
		{"S -> S a | B\nB -> B B | $", []string{"a"}},
	}

	for _, s := range samples {
		g := langtest.MustParse(t, s.text)
		a := pda.FromGrammar(g)
		for _, w := range langtest.Words(s.alphabet, 5) {
			expected := langtest.Generates(g, w)
			Assert(t, a.Accepts(w) == expected, "%q on %v: expecting %t", s.text, w, expected)
		}
	}
}

func TestFromGrammarDistinctStackNames(t *testing.T) {
	s := grammar.Nonterminal(grammar.StartName)
	plain := grammar.Nonterminal("T_0a_0b_0c")
	compound := grammar.TripleNonterminal("a", "b", "c")
	c, x, y := grammar.Terminal("c"), grammar.Terminal("x"), grammar.Terminal("y")
	g := grammar.New().
		Add(s, grammar.NewBody(plain, c)).
		Add(s, grammar.NewBody(compound)).
		Add(plain, grammar.NewBody(x)).
		Add(compound, grammar.NewBody(y))

	a := pda.FromGrammar(g)
	assert.Equal(t, []string{pda.Bottom, "S", "T_0a_0b_0c", "c", "T_0a_0b_0c_1", "x", "y"}, a.StackAlphabet())
	for w, accepted := range map[string]bool{"xc": true, "y": true, "yc": false, "x": false} {
		Assert(t, a.Accepts(split(w)) == accepted, "%q: expecting %t", w, accepted)
	}
}
