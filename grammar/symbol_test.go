package grammar

import (
	"sort"
	"testing"

	. "github.com/ava12/gramutil/internal/test"
)

func TestSymbolKinds(t *testing.T) {
	Assert(t, Epsilon.IsEpsilon(), "Epsilon must be epsilon")
	Assert(t, Terminal("a").IsTerminal(), "terminal expected")
	Assert(t, Nonterminal("A").IsNonterminal(), "nonterminal expected")
	Assert(t, TripleNonterminal("p", "X", "q").IsNonterminal(), "nonterminal expected")
	ExpectString(t, "$", Epsilon.Name())
	ExpectString(t, "nonterminal", NonterminalKind.String())

	_, isTriple := Nonterminal("T_0p_0X_0q").Triple()
	Assert(t, !isTriple, "plain nonterminal must not carry a triple")
	tr, isTriple := TripleNonterminal("p", "X", "q").Triple()
	Assert(t, isTriple && tr == Triple{"p", "X", "q"}, "triple expected, got %v", tr)
}

func TestTripleName(t *testing.T) {
	samples := []struct {
		t        Triple
		expected string
	}{
		{Triple{"p", "X", "q"}, "T_0p_0X_0q"},
		{Triple{"a_b", "", ""}, "T_0a__b_0_0"},
		{Triple{"start", "⊥", "loop"}, "T_0start_0_x22a5__0loop"},
		{Triple{"q 1", "-", "q2"}, "T_0q_x20_1_0_x2d__0q2"},
	}

	for _, s := range samples {
		ExpectString(t, s.expected, s.t.Name())
		Assert(t, IsNonterminalName(s.t.Name()), "%q must be a valid nonterminal name", s.t.Name())
	}
}

func TestTripleNamesDiffer(t *testing.T) {
	triples := []Triple{
		{"a", "b", "c"},
		{"a_0b", "c", ""},
		{"a", "b_0c", ""},
		{"a_", "0b", "c"},
		{"a", "_0b", "c"},
		{"_x20_", "", ""},
		{" ", "", ""},
		{"", "", ""},
		{"", "", "_"},
		{"", "_", ""},
	}

	names := make(map[string]Triple)
	for _, tr := range triples {
		name := tr.Name()
		if other, has := names[name]; has {
			t.Errorf("%v and %v share name %q", other, tr, name)
		}
		names[name] = tr
	}

	Assert(t, TripleNonterminal("p", "X", "q") != Nonterminal("T_0p_0X_0q"), "compound and plain nonterminals must differ")
	Assert(t, TripleNonterminal("", "", "") != Nonterminal(""), "compound and plain nonterminals must differ")
	_, isTriple := Nonterminal("").Triple()
	Assert(t, !isTriple, "plain nonterminal must not carry a triple")
	ExpectInt(t, 1, Compare(TripleNonterminal("", "", ""), Nonterminal("")))
}

func TestCompare(t *testing.T) {
	symbols := []Symbol{
		TripleNonterminal("q", "A", "p"),
		Nonterminal("B"),
		Terminal("b"),
		TripleNonterminal("p", "B", "p"),
		Epsilon,
		Nonterminal("A"),
		TripleNonterminal("p", "A", "q"),
		Terminal("a"),
	}
	sort.Slice(symbols, func(i, j int) bool {
		return Compare(symbols[i], symbols[j]) < 0
	})

	expected := []string{"$", "a", "b", "A", "B", "T_0p_0A_0q", "T_0p_0B_0p", "T_0q_0A_0p"}
	for i, s := range symbols {
		ExpectString(t, expected[i], s.Name())
	}
	ExpectInt(t, 0, Compare(Terminal("a"), Terminal("a")))
}

func TestNames(t *testing.T) {
	for _, name := range []string{"a", "0", "num_2", "_"} {
		Assert(t, IsTerminalName(name), "%q must be a terminal name", name)
		Assert(t, !IsNonterminalName(name), "%q must not be a nonterminal name", name)
	}
	for _, name := range []string{"S", "A_1", "Expr"} {
		Assert(t, IsNonterminalName(name), "%q must be a nonterminal name", name)
		Assert(t, !IsTerminalName(name), "%q must not be a terminal name", name)
	}
	for _, name := range []string{"", "$", "aB", "a-b", "_A"} {
		Assert(t, !IsTerminalName(name) && !IsNonterminalName(name), "%q must be rejected", name)
	}
}
