package pda

import (
	"strconv"

	"github.com/ava12/gramutil/grammar"
)

// States of automata built by FromGrammar.
const (
	StartState State = "start"
	LoopState  State = "loop"
	DoneState  State = "done"
)

// FromGrammar builds an automaton accepting the language generated by g.
// The automaton simulates leftmost derivations: in LoopState a nonterminal on top of the stack
// is replaced with one of its bodies and a terminal on top of the stack is matched against input.
// Stack symbols are symbol names, the initial stack symbol is Bottom. If distinct grammar symbols
// share a name (e.g. plain nonterminal "T_0p_0X_0q" and triple (p, X, q)) or a name equals Bottom,
// the later symbol gets the first free name of the form "<name>_<n>".
// g is not modified. Panics if some terminal name is not a valid terminal token.
func FromGrammar(g *grammar.Grammar) *Automaton {
	names := newStackNames()
	b := NewBuilder(StartState, Bottom).AddStates(LoopState, DoneState)
	b.Add(Transition{From: StartState, Pop: Bottom, To: LoopState, Push: []string{names.get(g.Start()), Bottom}})

	for _, p := range g.Productions() {
		b.Add(Transition{From: LoopState, Pop: names.get(p.Head), To: LoopState, Push: names.body(p.Body)})
	}
	for _, t := range g.Terminals() {
		b.Add(Transition{From: LoopState, Input: t.Name(), Pop: names.get(t), To: LoopState})
	}
	b.Add(Transition{From: LoopState, Pop: Bottom, To: DoneState})

	a, e := b.Build()
	if e != nil {
		panic(e)
	}
	return a
}

// stackNames assigns distinct stack symbols to grammar symbols in order of appearance.
type stackNames struct {
	names map[grammar.Symbol]string
	used  map[string]bool
}

func newStackNames() *stackNames {
	return &stackNames{
		names: make(map[grammar.Symbol]string),
		used:  map[string]bool{Bottom: true},
	}
}

func (sn *stackNames) get(s grammar.Symbol) string {
	if name, has := sn.names[s]; has {
		return name
	}

	base := s.Name()
	name := base
	for i := 1; sn.used[name]; i++ {
		name = base + "_" + strconv.Itoa(i)
	}
	sn.names[s] = name
	sn.used[name] = true
	return name
}

func (sn *stackNames) body(body grammar.Body) []string {
	result := make([]string, len(body))
	for i, s := range body {
		result[i] = sn.get(s)
	}
	return result
}
