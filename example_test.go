package gramutil_test

import (
	"fmt"
	"strings"

	"github.com/ava12/gramutil/langdef"
	"github.com/ava12/gramutil/pda"
)

func Example() {
	g, e := langdef.ParseString("example grammar", `
# a^n b^n
S -> a S b
  -> $
`)
	if e != nil {
		fmt.Println(e)
		return
	}
	fmt.Println(g)

	automaton := pda.FromGrammar(g)
	fmt.Println(automaton)
	for _, w := range []string{"", "ab", "aabb", "aab"} {
		fmt.Printf("%q: %t\n", w, automaton.Accepts(strings.Split(w, "")))
	}

	converted := automaton.ToGrammar()
	fmt.Println(converted.Len())
	fmt.Println(pda.FromGrammar(converted.Simplify()).Accepts(strings.Split("aabb", "")))

	// Output:
	// S -> a S b | $
	// start: start
	// stack: ⊥
	// (start, $, ⊥) -> (loop, S ⊥)
	// (loop, $, S) -> (loop, a S b)
	// (loop, $, S) -> (loop, $)
	// (loop, a, a) -> (loop, $)
	// (loop, b, b) -> (loop, $)
	// (loop, $, ⊥) -> (done, $)
	// "": true
	// "ab": true
	// "aabb": true
	// "aab": false
	// 43
	// true
}
