package grammar_test

import (
	"fmt"

	"github.com/ava12/gramutil/langdef"
)

func ExampleGrammar_Simplify() {
	g, e := langdef.ParseString("", "S -> A B\nA -> a | $\nB -> b\nC -> c")
	if e != nil {
		fmt.Println(e)
		return
	}

	fmt.Println(g.Simplify())

	// Output:
	// S -> A B | b
	// A -> a
	// B -> b
}

func ExampleGrammar_RemoveNongenerating() {
	g, _ := langdef.ParseString("", "S -> S")
	fmt.Println(g.RemoveNongenerating())
	fmt.Println(g.IsEmpty())

	// Output:
	// # empty language
	// S -> S
	// true
}
