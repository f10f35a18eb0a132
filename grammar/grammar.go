package grammar

import (
	"fmt"
	"strings"
)

// Body is the right-hand side of a production. The empty body denotes epsilon.
type Body []Symbol

// NewBody creates a body dropping Epsilon symbols, so that "$" and the empty sequence are the same body.
func NewBody(symbols ...Symbol) Body {
	result := make(Body, 0, len(symbols))
	for _, s := range symbols {
		if !s.IsEpsilon() {
			result = append(result, s)
		}
	}
	return result
}

// IsEpsilon tells whether the body derives only the empty string directly.
func (b Body) IsEpsilon() bool {
	return len(b) == 0
}

// IsUnit tells whether the body consists of a single nonterminal.
func (b Body) IsUnit() bool {
	return len(b) == 1 && b[0].IsNonterminal()
}

// Equal compares bodies symbol by symbol.
func (b Body) Equal(o Body) bool {
	if len(b) != len(o) {
		return false
	}
	for i, s := range b {
		if s != o[i] {
			return false
		}
	}
	return true
}

func (b Body) key() string {
	var sb strings.Builder
	for _, s := range b {
		s.key(&sb)
	}
	return sb.String()
}

func (b Body) String() string {
	if len(b) == 0 {
		return EpsilonText
	}

	names := make([]string, len(b))
	for i, s := range b {
		names[i] = s.Name()
	}
	return strings.Join(names, " ")
}

func (b Body) clone() Body {
	result := make(Body, len(b))
	copy(result, b)
	return result
}

// Production is a single rewrite rule.
type Production struct {
	Head Symbol
	Body Body
}

func (p Production) String() string {
	return p.Head.Name() + " -> " + p.Body.String()
}

// Grammar holds the start symbol and productions grouped by head.
// Heads and bodies keep insertion order. The start symbol is always a head,
// a start symbol with no productions means the grammar generates the empty language.
// Grammar never exposes its internal tables, all accessors return copies.
type Grammar struct {
	start Symbol
	heads []Symbol
	rules map[Symbol][]Body
}

// New creates a grammar with start symbol S and no productions.
func New() *Grammar {
	start := Nonterminal(StartName)
	return &Grammar{
		start: start,
		heads: []Symbol{start},
		rules: map[Symbol][]Body{start: nil},
	}
}

// Start returns the start symbol.
func (g *Grammar) Start() Symbol {
	return g.start
}

// Add appends production. Epsilon symbols in body are dropped.
// Panics if head is not a nonterminal or if head or some body symbol has empty name.
func (g *Grammar) Add(head Symbol, body Body) *Grammar {
	if !head.IsNonterminal() {
		panic(fmt.Sprintf("production head must be a nonterminal, got %s %q", head.Kind(), head.Name()))
	}
	if head.hasEmptyName() {
		panic("production head has empty name")
	}
	for _, s := range body {
		if s.hasEmptyName() {
			panic(fmt.Sprintf("%s in production body has empty name", s.Kind()))
		}
	}

	bodies, has := g.rules[head]
	if !has {
		g.heads = append(g.heads, head)
	}
	g.rules[head] = append(bodies, NewBody(body...))
	return g
}

// Nonterminals returns heads in insertion order, start symbol first.
func (g *Grammar) Nonterminals() []Symbol {
	result := make([]Symbol, len(g.heads))
	copy(result, g.heads)
	return result
}

// Terminals returns terminals used in productions in order of first appearance.
func (g *Grammar) Terminals() []Symbol {
	result := []Symbol{}
	seen := make(map[Symbol]bool)
	g.eachSymbol(func(s Symbol) {
		if s.IsTerminal() && !seen[s] {
			seen[s] = true
			result = append(result, s)
		}
	})
	return result
}

// Undefined returns nonterminals used in production bodies but never defined as heads.
func (g *Grammar) Undefined() []Symbol {
	result := []Symbol{}
	seen := make(map[Symbol]bool)
	g.eachSymbol(func(s Symbol) {
		if _, defined := g.rules[s]; s.IsNonterminal() && !defined && !seen[s] {
			seen[s] = true
			result = append(result, s)
		}
	})
	return result
}

func (g *Grammar) eachSymbol(f func(Symbol)) {
	for _, head := range g.heads {
		for _, body := range g.rules[head] {
			for _, s := range body {
				f(s)
			}
		}
	}
}

// Has tells whether nonterminal is defined as a head.
func (g *Grammar) Has(head Symbol) bool {
	_, has := g.rules[head]
	return has
}

// Bodies returns copies of bodies for given head, nil if head is not defined.
func (g *Grammar) Bodies(head Symbol) []Body {
	bodies := g.rules[head]
	if bodies == nil {
		return nil
	}

	result := make([]Body, len(bodies))
	for i, body := range bodies {
		result[i] = body.clone()
	}
	return result
}

// Productions returns all productions grouped by head.
func (g *Grammar) Productions() []Production {
	result := make([]Production, 0, g.Len())
	for _, head := range g.heads {
		for _, body := range g.rules[head] {
			result = append(result, Production{head, body.clone()})
		}
	}
	return result
}

// Len returns the number of productions.
func (g *Grammar) Len() int {
	result := 0
	for _, bodies := range g.rules {
		result += len(bodies)
	}
	return result
}

// IsEmpty tells whether the start symbol has no productions, i.e. the grammar generates nothing.
func (g *Grammar) IsEmpty() bool {
	return len(g.rules[g.start]) == 0
}

// Clone returns a deep copy.
func (g *Grammar) Clone() *Grammar {
	result := &Grammar{
		start: g.start,
		heads: make([]Symbol, len(g.heads)),
		rules: make(map[Symbol][]Body, len(g.rules)),
	}
	copy(result.heads, g.heads)
	for head := range g.rules {
		result.rules[head] = g.Bodies(head)
	}
	return result
}

// Equal compares grammars structurally: both must define the same heads
// and the same set of bodies for each head. Order and duplicates are ignored.
func (g *Grammar) Equal(o *Grammar) bool {
	if g.start != o.start || len(g.rules) != len(o.rules) {
		return false
	}

	for head, bodies := range g.rules {
		others, has := o.rules[head]
		if !has || !sameBodySet(bodies, others) {
			return false
		}
	}
	return true
}

func bodyKeys(bodies []Body) map[string]bool {
	result := make(map[string]bool, len(bodies))
	for _, body := range bodies {
		result[body.key()] = true
	}
	return result
}

func sameBodySet(a, b []Body) bool {
	ak, bk := bodyKeys(a), bodyKeys(b)
	if len(ak) != len(bk) {
		return false
	}
	for k := range ak {
		if !bk[k] {
			return false
		}
	}
	return true
}

// String returns grammar description parsable by langdef package.
// Heads with no productions are skipped. If the grammar generates the empty language
// the start symbol is written as "S -> S" preceded by a comment line.
func (g *Grammar) String() string {
	lines := make([]string, 0, len(g.heads)+1)
	if g.IsEmpty() {
		lines = append(lines, "# empty language")
	}

	width := 0
	for _, head := range g.heads {
		if l := len(head.Name()); l > width && (len(g.rules[head]) > 0 || head == g.start) {
			width = l
		}
	}

	for _, head := range g.heads {
		bodies := g.rules[head]
		var alternatives []string
		if len(bodies) == 0 {
			if head != g.start {
				continue
			}
			alternatives = []string{head.Name()}
		}

		for _, body := range bodies {
			alternatives = append(alternatives, body.String())
		}
		lines = append(lines, fmt.Sprintf("%-*s -> %s", width, head.Name(), strings.Join(alternatives, " | ")))
	}
	return strings.Join(lines, "\n")
}

// replace swaps in a new production table. Heads with no bodies are dropped,
// the start symbol is always kept.
func (g *Grammar) replace(heads []Symbol, rules map[Symbol][]Body) {
	g.heads = make([]Symbol, 0, len(heads))
	g.rules = make(map[Symbol][]Body, len(heads))
	for _, head := range heads {
		bodies := rules[head]
		if len(bodies) == 0 && head != g.start {
			continue
		}
		if _, dup := g.rules[head]; dup {
			continue
		}
		g.heads = append(g.heads, head)
		g.rules[head] = bodies
	}
	if _, has := g.rules[g.start]; !has {
		g.heads = append([]Symbol{g.start}, g.heads...)
		g.rules[g.start] = nil
	}
}
