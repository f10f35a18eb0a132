package pda

import (
	"strconv"
	"strings"

	"github.com/ava12/gramutil/internal/queue"
)

// config is an instantaneous description of the automaton.
// stack holds the top of the stack at the end.
type config struct {
	state State
	pos   int
	stack []string
}

func (c config) key() string {
	var sb strings.Builder
	sb.WriteString(strconv.Itoa(len(c.state)))
	sb.WriteByte(':')
	sb.WriteString(string(c.state))
	sb.WriteString(strconv.Itoa(c.pos))
	for _, s := range c.stack {
		sb.WriteByte(',')
		sb.WriteString(strconv.Itoa(len(s)))
		sb.WriteByte(':')
		sb.WriteString(s)
	}
	return sb.String()
}

func (c config) apply(t Transition, consumed bool) config {
	rest := c.stack
	if t.Pop != "" {
		rest = rest[:len(rest)-1]
	}
	stack := make([]string, len(rest), len(rest)+len(t.Push))
	copy(stack, rest)
	for i := len(t.Push) - 1; i >= 0; i-- {
		stack = append(stack, t.Push[i])
	}

	pos := c.pos
	if consumed {
		pos++
	}
	return config{t.To, pos, stack}
}

// summary tells that the automaton in state from with stack symbol on top may consume
// some input, remove that symbol and everything pushed above it, and end in state to.
type summary struct {
	from  State
	stack string
	to    State
}

type point struct {
	state State
	pos   int
}

// Accepts tells whether the automaton accepts input, a sequence of input symbols.
// The answer is exact for any automaton: for every span input[i:j], shortest spans first,
// the set of summaries consuming exactly that span is grown until it stops changing.
// Input is accepted if a summary from the start state removing the initial symbol consumes it all.
func (a *Automaton) Accepts(input []string) bool {
	n := len(input)
	popped := make([][]map[summary]bool, n+1)
	for i := range popped {
		popped[i] = make([]map[summary]bool, n+1)
		for j := i; j <= n; j++ {
			popped[i][j] = make(map[summary]bool)
		}
	}

	transitions := a.popTransitions()
	for length := 0; length <= n; length++ {
		for i := 0; i+length <= n; i++ {
			j := i + length
			for changed := true; changed; {
				changed = false
				for _, t := range transitions {
					start := i
					if t.Input != "" {
						if i == j || input[i] != t.Input {
							continue
						}
						start++
					}

					for _, q := range a.chainEnds(popped, t, start, j) {
						s := summary{t.From, t.Pop, q}
						if !popped[i][j][s] {
							popped[i][j][s] = true
							changed = true
						}
					}
				}
			}
		}
	}

	for _, q := range a.states {
		if popped[0][n][summary{a.start, a.initial, q}] {
			return true
		}
	}
	return false
}

// chainEnds returns states reachable after transition t by removing its pushed symbols
// one by one while consuming exactly input[i:j].
func (a *Automaton) chainEnds(popped [][]map[summary]bool, t Transition, i, j int) []State {
	current := map[point]bool{{t.To, i}: true}
	for _, y := range t.Push {
		next := make(map[point]bool)
		for p := range current {
			for pos := p.pos; pos <= j; pos++ {
				for _, q := range a.states {
					if popped[p.pos][pos][summary{p.state, y, q}] {
						next[point{q, pos}] = true
					}
				}
			}
		}
		current = next
	}

	var result []State
	for p := range current {
		if p.pos == j {
			result = append(result, p.state)
		}
	}
	return result
}

// popTransitions returns transitions with every transition having no stack condition
// replaced with one transition per stack symbol X that pops X and pushes it back
// under its own push list.
func (a *Automaton) popTransitions() []Transition {
	result := make([]Transition, 0, len(a.transitions))
	for _, t := range a.transitions {
		if t.Pop != "" {
			result = append(result, t)
			continue
		}

		for _, x := range a.stackSymbols {
			push := make([]string, len(t.Push)+1)
			copy(push, t.Push)
			push[len(t.Push)] = x
			result = append(result, Transition{From: t.From, Input: t.Input, Pop: x, To: t.To, Push: push})
		}
	}
	return result
}

// AcceptsWithin simulates the automaton searching computations breadth-first for one consuming
// all input and leaving the stack empty. Configurations with stack higher than depth symbols
// are not explored, so the search always terminates but may miss computations that need
// a higher stack; Accepts has no such limitation.
func (a *Automaton) AcceptsWithin(input []string, depth int) bool {
	initial := config{a.start, 0, []string{a.initial}}
	visited := map[string]bool{initial.key(): true}
	q := queue.New(initial)

	for !q.IsEmpty() {
		c, _ := q.First()
		if len(c.stack) == 0 {
			if c.pos == len(input) {
				return true
			}
			continue
		}

		top := c.stack[len(c.stack)-1]
		for _, pop := range [...]string{top, ""} {
			for _, t := range a.moveList(c.state, "", pop) {
				visit(q, visited, c.apply(t, false), depth)
			}
			if c.pos < len(input) {
				for _, t := range a.moveList(c.state, input[c.pos], pop) {
					visit(q, visited, c.apply(t, true), depth)
				}
			}
		}
	}
	return false
}

func visit(q *queue.Queue[config], visited map[string]bool, c config, depth int) {
	if len(c.stack) > depth {
		return
	}
	k := c.key()
	if !visited[k] {
		visited[k] = true
		q.Append(c)
	}
}
