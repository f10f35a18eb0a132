package pda

import (
	"github.com/ava12/gramutil/grammar"
)

// ToGrammar builds a grammar generating the language accepted by the automaton
// using triple nonterminals: <p,X,q> derives input that takes the automaton from state p
// to state q removing X from the top of the stack.
// The start symbol gets a body <start,initial,q> for every state q.
// A transition with no stack condition is handled as one transition per stack symbol X
// that pops X and pushes it back under its own push list.
// The result is not simplified and may be large: a transition pushing k symbols
// produces len(States())^k productions.
func (a *Automaton) ToGrammar() *grammar.Grammar {
	g := grammar.New()
	for _, q := range a.states {
		g.Add(g.Start(), grammar.NewBody(triple(a.start, a.initial, q)))
	}

	for _, t := range a.popTransitions() {
		a.addTripleRules(g, t)
	}
	return g
}

func triple(from State, stack string, to State) grammar.Symbol {
	return grammar.TripleNonterminal(string(from), stack, string(to))
}

// addTripleRules adds productions <p,X,qk> -> t <r,Y1,q1> <q1,Y2,q2> ... <q(k-1),Yk,qk>
// for every sequence of states q1..qk.
func (a *Automaton) addTripleRules(g *grammar.Grammar, t Transition) {
	var prefix grammar.Body
	if t.Input != "" {
		prefix = grammar.Body{grammar.Terminal(t.Input)}
	}

	k := len(t.Push)
	if k == 0 {
		g.Add(triple(t.From, t.Pop, t.To), prefix)
		return
	}

	n := len(a.states)
	digits := make([]int, k)
	for {
		body := make(grammar.Body, 0, len(prefix)+k)
		body = append(body, prefix...)
		from := t.To
		for i, y := range t.Push {
			to := a.states[digits[i]]
			body = append(body, triple(from, y, to))
			from = to
		}
		g.Add(triple(t.From, t.Pop, from), body)

		i := k - 1
		for i >= 0 && digits[i] == n-1 {
			digits[i] = 0
			i--
		}
		if i < 0 {
			return
		}
		digits[i]++
	}
}
