// Package langtest contains language comparison tools for tests.
package langtest

import (
	"testing"

	"github.com/ava12/gramutil/grammar"
	"github.com/ava12/gramutil/langdef"
)

// MustParse parses grammar text failing the test on error.
func MustParse(t testing.TB, text string) *grammar.Grammar {
	t.Helper()
	g, e := langdef.ParseString("", text)
	if e != nil {
		t.Fatalf("cannot parse grammar: %s", e)
	}
	return g
}

// Words returns all sequences of alphabet symbols of length 0 to maxLen, shorter ones first.
func Words(alphabet []string, maxLen int) [][]string {
	result := [][]string{{}}
	level := [][]string{{}}
	for n := 1; n <= maxLen; n++ {
		next := make([][]string, 0, len(level)*len(alphabet))
		for _, w := range level {
			for _, a := range alphabet {
				word := make([]string, n)
				copy(word, w)
				word[n-1] = a
				next = append(next, word)
			}
		}
		result = append(result, next...)
		level = next
	}
	return result
}

// Split splits word into single character symbols.
func Split(word string) []string {
	result := make([]string, 0, len(word))
	for _, r := range word {
		result = append(result, string(r))
	}
	return result
}

// Generates tells whether g derives word. Works for any grammar including epsilon
// and unit productions: for each span of the word, shortest spans first,
// the set of nonterminals deriving it is grown until it stops changing.
func Generates(g *grammar.Grammar, word []string) bool {
	n := len(word)
	table := make([][]map[grammar.Symbol]bool, n+1)
	for i := range table {
		table[i] = make([]map[grammar.Symbol]bool, n+1)
		for j := i; j <= n; j++ {
			table[i][j] = make(map[grammar.Symbol]bool)
		}
	}

	derives := func(s grammar.Symbol, i, j int) bool {
		if s.IsTerminal() {
			return j == i+1 && word[i] == s.Name()
		}
		return table[i][j][s]
	}

	bodyDerives := func(body grammar.Body, i, j int) bool {
		current := map[int]bool{i: true}
		for _, s := range body {
			next := make(map[int]bool)
			for p := range current {
				for q := p; q <= j; q++ {
					if derives(s, p, q) {
						next[q] = true
					}
				}
			}
			current = next
		}
		return current[j]
	}

	productions := g.Productions()
	for length := 0; length <= n; length++ {
		for i := 0; i+length <= n; i++ {
			j := i + length
			for changed := true; changed; {
				changed = false
				for _, p := range productions {
					if !table[i][j][p.Head] && bodyDerives(p.Body, i, j) {
						table[i][j][p.Head] = true
						changed = true
					}
				}
			}
		}
	}
	return table[0][n][g.Start()]
}

// Language returns words up to maxLen symbols generated by g.
func Language(g *grammar.Grammar, alphabet []string, maxLen int) [][]string {
	var result [][]string
	for _, w := range Words(alphabet, maxLen) {
		if Generates(g, w) {
			result = append(result, w)
		}
	}
	return result
}
