// Package pda defines pushdown automata accepting by empty stack
// and conversions between automata and context-free grammars.
package pda

import (
	"fmt"
	"strings"

	"github.com/ava12/gramutil/grammar"
)

// Bottom is the initial stack symbol of automata built from grammars.
const Bottom = "⊥"

// State is an automaton state name.
type State string

// Transition moves the automaton from state From to state To.
// Input is the consumed input symbol, empty Input means no input is consumed.
// Pop is the symbol required on top of the stack and removed from it,
// empty Pop means there is no stack condition and nothing is removed.
// Push lists symbols put onto the stack, top of the stack first;
// empty Push means nothing is pushed.
type Transition struct {
	From  State
	Input string
	Pop   string
	To    State
	Push  []string
}

func (t Transition) clone() Transition {
	t.Push = append([]string(nil), t.Push...)
	return t
}

func (t Transition) key() string {
	var sb strings.Builder
	for _, part := range [...]string{string(t.From), t.Input, t.Pop, string(t.To)} {
		fmt.Fprintf(&sb, "%d:%s", len(part), part)
	}
	for _, s := range t.Push {
		fmt.Fprintf(&sb, "%d:%s", len(s), s)
	}
	return sb.String()
}

func orEpsilon(s string) string {
	if s == "" {
		return grammar.EpsilonText
	}
	return s
}

// String returns transition as "(p, a, X) -> (q, Y Z)".
// "$" stands for no input and for empty push, "-" stands for no stack condition.
func (t Transition) String() string {
	pop := t.Pop
	if pop == "" {
		pop = "-"
	}
	push := grammar.EpsilonText
	if len(t.Push) > 0 {
		push = strings.Join(t.Push, " ")
	}
	return fmt.Sprintf("(%s, %s, %s) -> (%s, %s)", t.From, orEpsilon(t.Input), pop, t.To, push)
}

type moveKey struct {
	state State
	input string
	pop   string
}

// Automaton is a nondeterministic pushdown automaton accepting by empty stack:
// input is accepted if it can be consumed completely leaving the stack empty.
// An automaton with empty stack has halted, no transition applies to it.
// Automaton is immutable and safe for concurrent use.
type Automaton struct {
	start        State
	initial      string
	states       []State
	stackSymbols []string
	inputSymbols []string
	transitions  []Transition
	moves        map[moveKey][]int
}

// Start returns the start state.
func (a *Automaton) Start() State {
	return a.start
}

// InitialStack returns the symbol the stack initially contains.
func (a *Automaton) InitialStack() string {
	return a.initial
}

// States returns states in order of appearance, the start state first.
func (a *Automaton) States() []State {
	return append([]State(nil), a.states...)
}

// StackAlphabet returns stack symbols in order of appearance, the initial symbol first.
func (a *Automaton) StackAlphabet() []string {
	return append([]string(nil), a.stackSymbols...)
}

// InputAlphabet returns input symbols in order of appearance.
func (a *Automaton) InputAlphabet() []string {
	return append([]string(nil), a.inputSymbols...)
}

// Transitions returns all transitions in order of addition.
func (a *Automaton) Transitions() []Transition {
	result := make([]Transition, len(a.transitions))
	for i, t := range a.transitions {
		result[i] = t.clone()
	}
	return result
}

// Moves returns all transitions from state that consume input (empty for none)
// and pop symbol (empty for no stack condition). Several transitions may share the same key.
func (a *Automaton) Moves(state State, input, pop string) []Transition {
	result := a.moveList(state, input, pop)
	for i, t := range result {
		result[i] = t.clone()
	}
	return result
}

func (a *Automaton) moveList(state State, input, pop string) []Transition {
	indexes := a.moves[moveKey{state, input, pop}]
	result := make([]Transition, len(indexes))
	for i, index := range indexes {
		result[i] = a.transitions[index]
	}
	return result
}

// String returns a dump: start state and initial stack symbol followed by transitions, one per line.
func (a *Automaton) String() string {
	lines := make([]string, 0, len(a.transitions)+2)
	lines = append(lines, "start: "+string(a.start), "stack: "+a.initial)
	for _, t := range a.transitions {
		lines = append(lines, t.String())
	}
	return strings.Join(lines, "\n")
}

// Builder collects states, stack symbols, and transitions of an automaton.
// The first error is remembered and returned by Build, subsequent calls are ignored.
type Builder struct {
	a        *Automaton
	stateSet map[State]bool
	stackSet map[string]bool
	inputSet map[string]bool
	transSet map[string]bool
	e        error
}

// NewBuilder creates builder for an automaton with given start state and initial stack symbol.
func NewBuilder(start State, initial string) *Builder {
	b := &Builder{
		a: &Automaton{
			start:   start,
			initial: initial,
			moves:   make(map[moveKey][]int),
		},
		stateSet: make(map[State]bool),
		stackSet: make(map[string]bool),
		inputSet: make(map[string]bool),
		transSet: make(map[string]bool),
	}
	if start == "" {
		b.e = emptyStateError()
	} else if initial == "" {
		b.e = initialSymbolError()
	}
	b.AddStates(start)
	b.AddStackSymbols(initial)
	return b
}

// AddStates declares states, states used in transitions are declared automatically.
func (b *Builder) AddStates(states ...State) *Builder {
	for _, s := range states {
		if b.e != nil {
			break
		}
		if s == "" {
			b.e = emptyStateError()
		} else if !b.stateSet[s] {
			b.stateSet[s] = true
			b.a.states = append(b.a.states, s)
		}
	}
	return b
}

// AddStackSymbols declares stack symbols, symbols used in transitions are declared automatically.
func (b *Builder) AddStackSymbols(symbols ...string) *Builder {
	for _, s := range symbols {
		if b.e != nil {
			break
		}
		if s == "" {
			b.e = emptyStackSymbolError()
		} else if !b.stackSet[s] {
			b.stackSet[s] = true
			b.a.stackSymbols = append(b.a.stackSymbols, s)
		}
	}
	return b
}

// Add adds transitions. Input symbols must be valid terminal names (see grammar.IsTerminalName),
// pushed symbols must not be empty. Duplicate transitions are ignored.
func (b *Builder) Add(transitions ...Transition) *Builder {
	for _, t := range transitions {
		if b.e != nil {
			break
		}
		b.add(t)
	}
	return b
}

func (b *Builder) add(t Transition) {
	if t.Input != "" && !grammar.IsTerminalName(t.Input) {
		b.e = wrongInputError(t)
		return
	}
	for _, s := range t.Push {
		if s == "" {
			b.e = emptyStackSymbolError()
			return
		}
	}

	b.AddStates(t.From, t.To)
	if t.Pop != "" {
		b.AddStackSymbols(t.Pop)
	}
	b.AddStackSymbols(t.Push...)
	if b.e != nil {
		return
	}

	if t.Input != "" && !b.inputSet[t.Input] {
		b.inputSet[t.Input] = true
		b.a.inputSymbols = append(b.a.inputSymbols, t.Input)
	}

	k := t.key()
	if b.transSet[k] {
		return
	}

	b.transSet[k] = true
	mk := moveKey{t.From, t.Input, t.Pop}
	b.a.moves[mk] = append(b.a.moves[mk], len(b.a.transitions))
	b.a.transitions = append(b.a.transitions, t.clone())
}

// Build returns the automaton or the first error encountered.
// Builder must not be used after Build.
func (b *Builder) Build() (*Automaton, error) {
	if b.e != nil {
		return nil, b.e
	}
	return b.a, nil
}
