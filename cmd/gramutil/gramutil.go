/*
gramutil is a console utility converting grammar description to pushdown automaton and back.
Usage is

	gramutil [-s] [-r] [-a <tokens>] [-o <name>] [<file>]

-s flag instructs gramutil to simplify the grammar before conversion;

-r flag instructs gramutil to convert the automaton back to grammar and output both converted and simplified grammars;

-a <tokens> defines space-separated input symbols, gramutil reports whether the automaton accepts them;

-o <name> defines output file name, default is standard output;

<file> defines grammar definition file parsable by langdef.Parse(), standard input is used if omitted or "-".
*/
package main

import (
	"bytes"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/ava12/gramutil/grammar"
	"github.com/ava12/gramutil/langdef"
	"github.com/ava12/gramutil/pda"
)

var (
	simplify, reverse, checkInput bool
	tokens                        string
	inFileName, outFileName       string
)

func main() {
	flag.Usage = func() {
		fmt.Fprintln(flag.CommandLine.Output(), "Usage is  gramutil [-s] [-r] [-a <tokens>] [-o <name>] [<file>]")
		flag.PrintDefaults()
		fmt.Fprintln(flag.CommandLine.Output(), "  <file>")
		fmt.Fprintln(flag.CommandLine.Output(), "\tgrammar definition file name, default is standard input")
	}

	flag.BoolVar(&simplify, "s", false, "simplify grammar before conversion")
	flag.BoolVar(&reverse, "r", false, "convert automaton back to grammar")
	flag.StringVar(&tokens, "a", "", "space-separated input symbols to check")
	flag.StringVar(&outFileName, "o", "", "output file name, default is standard output")
	flag.Parse()
	flag.Visit(func(f *flag.Flag) {
		checkInput = checkInput || f.Name == "a"
	})
	if flag.NArg() > 1 {
		flag.Usage()
		os.Exit(2)
	}
	inFileName = flag.Arg(0)

	var gr *grammar.Grammar
	src, e := readInput()
	if e == nil {
		gr, e = langdef.ParseBytes(inFileName, src)
	}
	var content []byte
	if e == nil {
		content = makeReport(gr)
		if outFileName == "" {
			_, e = os.Stdout.Write(content)
		} else {
			e = os.WriteFile(outFileName, content, 0o666)
		}
	}

	if e != nil {
		fmt.Println(e.Error())
		os.Exit(3)
	}
}

func readInput() ([]byte, error) {
	if inFileName == "" || inFileName == "-" {
		inFileName = "stdin"
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(inFileName)
}

func makeReport(gr *grammar.Grammar) []byte {
	var buffer bytes.Buffer
	section := func(title string, content fmt.Stringer) {
		buffer.WriteString("<" + title + ">\n")
		buffer.WriteString(content.String())
		buffer.WriteString("\n\n")
	}

	if simplify {
		gr.Simplify()
	}
	section("Grammar", gr)

	automaton := pda.FromGrammar(gr)
	section("Pushdown Automaton", automaton)

	if checkInput {
		input := strings.Fields(tokens)
		verdict := "rejected"
		if automaton.Accepts(input) {
			verdict = "accepted"
		}
		word := strings.Join(input, " ")
		if word == "" {
			word = grammar.EpsilonText
		}
		buffer.WriteString(fmt.Sprintf("<Input>\n%s: %s\n\n", word, verdict))
	}

	if reverse {
		converted := automaton.ToGrammar()
		section("Converted Grammar", converted)
		section("Simplified Grammar", converted.Clone().Simplify())
	}

	return buffer.Bytes()
}
