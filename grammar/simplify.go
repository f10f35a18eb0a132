package grammar

import (
	"strconv"

	"github.com/ava12/gramutil/internal/queue"
)

// Simplification steps mutate the grammar in place and return it.
// Every step builds a new production table and swaps it in when done.
// Steps are independent, but Simplify order matters:
// unreachable nonterminals should be removed after non-generating ones,
// unit productions should be removed after epsilon productions,
// and unit production removal may leave unreachable nonterminals.

// Simplify removes non-generating nonterminals, unreachable nonterminals,
// epsilon productions, unit productions, and finally unreachable nonterminals again.
// Result generates the same language; it is idempotent.
func (g *Grammar) Simplify() *Grammar {
	return g.RemoveNongenerating().
		RemoveUnreachable().
		RemoveEpsilons().
		RemoveUnits().
		RemoveUnreachable()
}

// mark computes the fixpoint set of heads having a body that satisfies accept and consists
// of terminals and already marked nonterminals only. Each body keeps a counter of unmarked
// nonterminal occurrences, newly marked heads are processed using a work-list.
func (g *Grammar) mark(accept func(Body) bool) map[Symbol]bool {
	marked := make(map[Symbol]bool)
	var pending []int
	var owners []Symbol
	users := make(map[Symbol][]int)
	q := queue.New[Symbol]()

	for _, head := range g.heads {
		for _, body := range g.rules[head] {
			if !accept(body) {
				continue
			}

			index := len(pending)
			count := 0
			for _, s := range body {
				if s.IsNonterminal() {
					count++
					users[s] = append(users[s], index)
				}
			}
			pending = append(pending, count)
			owners = append(owners, head)
			if count == 0 && !marked[head] {
				marked[head] = true
				q.Append(head)
			}
		}
	}

	for !q.IsEmpty() {
		s, _ := q.First()
		for _, index := range users[s] {
			pending[index]--
			if pending[index] == 0 && !marked[owners[index]] {
				marked[owners[index]] = true
				q.Append(owners[index])
			}
		}
	}

	return marked
}

func anyBody(Body) bool {
	return true
}

func noTerminals(b Body) bool {
	for _, s := range b {
		if s.IsTerminal() {
			return false
		}
	}
	return true
}

// Generating returns nonterminals deriving at least one terminal string.
// Undefined nonterminals are never generating.
func (g *Grammar) Generating() map[Symbol]bool {
	return g.mark(anyBody)
}

// Nullable returns nonterminals deriving the empty string.
func (g *Grammar) Nullable() map[Symbol]bool {
	return g.mark(noTerminals)
}

// Reachable returns nonterminals reachable from the start symbol, including undefined ones.
func (g *Grammar) Reachable() map[Symbol]bool {
	reached := map[Symbol]bool{g.start: true}
	q := queue.New(g.start)
	for !q.IsEmpty() {
		head, _ := q.First()
		for _, body := range g.rules[head] {
			for _, s := range body {
				if s.IsNonterminal() && !reached[s] {
					reached[s] = true
					q.Append(s)
				}
			}
		}
	}
	return reached
}

// RemoveNongenerating drops every production that has a non-generating head or body symbol.
// If the start symbol is non-generating it is left with no productions: the grammar generates
// the empty language.
func (g *Grammar) RemoveNongenerating() *Grammar {
	g.replace(g.heads, g.generatingRules())
	return g
}

// generatingRules returns the production table without non-generating heads
// and without bodies referring to non-generating nonterminals.
func (g *Grammar) generatingRules() map[Symbol][]Body {
	generating := g.Generating()
	rules := make(map[Symbol][]Body, len(generating))
	for _, head := range g.heads {
		if !generating[head] {
			continue
		}

		for _, body := range g.rules[head] {
			if allGenerating(body, generating) {
				rules[head] = append(rules[head], body)
			}
		}
	}
	return rules
}

func allGenerating(body Body, generating map[Symbol]bool) bool {
	for _, s := range body {
		if s.IsNonterminal() && !generating[s] {
			return false
		}
	}
	return true
}

// RemoveUnreachable drops productions of nonterminals not reachable from the start symbol.
func (g *Grammar) RemoveUnreachable() *Grammar {
	reached := g.Reachable()
	rules := make(map[Symbol][]Body, len(reached))
	for _, head := range g.heads {
		if reached[head] {
			rules[head] = g.rules[head]
		}
	}
	g.replace(g.heads, rules)
	return g
}

// RemoveEpsilons replaces every body containing nullable nonterminals with all its variants
// obtained by deleting any subset of nullable occurrences and drops epsilon productions.
// "S -> $" is kept if the start symbol was nullable; in that case occurrences of S in bodies
// are renamed to a fresh copy of S (named S0, S1, or the like), so that no other nonterminal derives
// the empty string through S. Nonterminals that derived only the empty string become non-generating;
// they are removed together with bodies referring to them.
func (g *Grammar) RemoveEpsilons() *Grammar {
	nullable := g.Nullable()
	heads := g.heads
	rules := g.rules
	if nullable[g.start] && g.refersTo(g.start) {
		var fresh Symbol
		fresh, heads, rules = g.splitStart()
		nullable[fresh] = true
	}

	result := make(map[Symbol][]Body, len(rules))
	for _, head := range heads {
		keepEpsilon := head == g.start && nullable[head]
		seen := make(map[string]bool)
		for _, body := range rules[head] {
			for _, variant := range expand(body, nullable) {
				if variant.IsEpsilon() && !keepEpsilon {
					continue
				}
				if k := variant.key(); !seen[k] {
					seen[k] = true
					result[head] = append(result[head], variant)
				}
			}
		}
	}

	expanded := &Grammar{start: g.start, heads: heads, rules: result}
	g.replace(heads, expanded.generatingRules())
	return g
}

func (g *Grammar) refersTo(target Symbol) bool {
	for _, head := range g.heads {
		for _, body := range g.rules[head] {
			for _, s := range body {
				if s == target {
					return true
				}
			}
		}
	}
	return false
}

// splitStart returns a fresh nonterminal and a copy of the production table where every body
// occurrence of the start symbol is replaced with the fresh nonterminal having the same bodies.
// The fresh nonterminal directly follows the start symbol.
func (g *Grammar) splitStart() (Symbol, []Symbol, map[Symbol][]Body) {
	fresh := g.freshNonterminal(StartName)
	rename := func(body Body) Body {
		result := body.clone()
		for i, s := range result {
			if s == g.start {
				result[i] = fresh
			}
		}
		return result
	}

	heads := make([]Symbol, 0, len(g.heads)+1)
	rules := make(map[Symbol][]Body, len(g.rules)+1)
	for _, head := range g.heads {
		heads = append(heads, head)
		if head == g.start {
			heads = append(heads, fresh)
		}
		for _, body := range g.rules[head] {
			rules[head] = append(rules[head], rename(body))
		}
	}
	rules[fresh] = rules[g.start]
	return fresh, heads, rules
}

// freshNonterminal returns plain nonterminal named base followed by a number
// that is not used anywhere in the grammar.
func (g *Grammar) freshNonterminal(base string) Symbol {
	used := make(map[Symbol]bool, len(g.heads))
	for _, head := range g.heads {
		used[head] = true
	}
	g.eachSymbol(func(s Symbol) {
		used[s] = true
	})

	for i := 0; ; i++ {
		result := Nonterminal(base + strconv.Itoa(i))
		if !used[result] {
			return result
		}
	}
}

// expand returns body variants with every subset of nullable occurrences deleted.
// The first variant is the body itself.
func expand(body Body, nullable map[Symbol]bool) []Body {
	var positions []int
	for i, s := range body {
		if nullable[s] {
			positions = append(positions, i)
		}
	}

	total := 1 << len(positions)
	result := make([]Body, 0, total)
	for mask := 0; mask < total; mask++ {
		variant := make(Body, 0, len(body))
		next := 0
		for i, s := range body {
			if next < len(positions) && positions[next] == i {
				deleted := mask&(1<<next) != 0
				next++
				if deleted {
					continue
				}
			}
			variant = append(variant, s)
		}
		result = append(result, variant)
	}
	return result
}

// RemoveUnits replaces unit productions "A -> B" with the non-unit bodies of every nonterminal
// reachable from A through unit productions. Own bodies of A come first.
func (g *Grammar) RemoveUnits() *Grammar {
	rules := make(map[Symbol][]Body, len(g.rules))
	for _, head := range g.heads {
		seenBodies := make(map[string]bool)
		closure := g.unitClosure(head)
		for _, source := range closure {
			for _, body := range g.rules[source] {
				if body.IsUnit() {
					continue
				}
				if k := body.key(); !seenBodies[k] {
					seenBodies[k] = true
					rules[head] = append(rules[head], body.clone())
				}
			}
		}
	}
	g.replace(g.heads, rules)
	return g
}

// unitClosure returns head followed by nonterminals reachable from it through unit productions,
// in breadth-first order.
func (g *Grammar) unitClosure(head Symbol) []Symbol {
	result := []Symbol{head}
	seen := map[Symbol]bool{head: true}
	q := queue.New(head)
	for !q.IsEmpty() {
		s, _ := q.First()
		for _, body := range g.rules[s] {
			if body.IsUnit() && !seen[body[0]] {
				seen[body[0]] = true
				result = append(result, body[0])
				q.Append(body[0])
			}
		}
	}
	return result
}

// RemoveDuplicates keeps the first occurrence of every body for each head.
func (g *Grammar) RemoveDuplicates() *Grammar {
	rules := make(map[Symbol][]Body, len(g.rules))
	for _, head := range g.heads {
		seen := make(map[string]bool)
		for _, body := range g.rules[head] {
			if k := body.key(); !seen[k] {
				seen[k] = true
				rules[head] = append(rules[head], body)
			}
		}
	}
	g.replace(g.heads, rules)
	return g
}
