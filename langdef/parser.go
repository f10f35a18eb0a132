// Package langdef converts grammar description to grammar.
//
// Grammar description consists of lines, each line defines alternatives for a nonterminal:
//
//	S -> a S b | T
//	  -> c
//	T -> $
//
// A line starting with "->" adds alternatives to the nonterminal of the previous line.
// Symbols are separated with spaces. Terminals are [a-z0-9_]+, nonterminals are [A-Z][A-Za-z0-9_]*,
// "$" stands for the empty string and must be the only symbol of its alternative.
// The start symbol is S, it must have at least one production.
// Empty lines and text from "#" to the end of line are ignored.
// Nonterminals used in bodies need not be defined, such nonterminals generate nothing.
package langdef

import (
	"regexp"

	"github.com/ava12/gramutil/grammar"
	"github.com/ava12/gramutil/lexer"
	"github.com/ava12/gramutil/source"
)

const (
	arrowTok = "arrow"
	pipeTok  = "pipe"
	nlTok    = "nl"
	wordTok  = "word"
)

const (
	arrowTokType = iota
	pipeTokType
	nlTokType
	wordTokType
)

var grammarLexer *lexer.Lexer

func init() {
	tokenTypes := []lexer.TokenType{
		{Type: arrowTokType, TypeName: arrowTok},
		{Type: pipeTokType, TypeName: pipeTok},
		{Type: nlTokType, TypeName: nlTok},
		{Type: wordTokType, TypeName: wordTok},
		{Type: lexer.ErrorTokenType, TypeName: lexer.ErrorTokenName},
	}

	re := regexp.MustCompile(`^(?:[ \t\r]+|#[^\n]*|(->)|(\|)|(\n)|([A-Za-z0-9_$]+)|(.))`)
	grammarLexer = lexer.New(re, tokenTypes)
}

// ParseString parses grammar description and returns a grammar on success.
// Returns nil and gramutil.Error on error.
func ParseString(name, content string) (*grammar.Grammar, error) {
	return Parse(source.New(name, []byte(content)))
}

// ParseBytes parses grammar description and returns a grammar on success.
// Returns nil and gramutil.Error on error.
func ParseBytes(name string, content []byte) (*grammar.Grammar, error) {
	return Parse(source.New(name, content))
}

// Parse parses grammar description and returns a grammar on success.
// Returns nil and gramutil.Error on error.
func Parse(s *source.Source) (*grammar.Grammar, error) {
	tokens, e := grammarLexer.Tokens(s)
	if e != nil {
		return nil, e
	}

	c := &parseContext{g: grammar.New()}
	for _, line := range splitLines(tokens) {
		e = c.parseLine(line)
		if e != nil {
			return nil, e
		}
	}

	if c.g.IsEmpty() {
		return nil, noStartError(s.Name())
	}
	return c.g, nil
}

type parseContext struct {
	g       *grammar.Grammar
	head    grammar.Symbol
	hasHead bool
}

func isTerminator(t *lexer.Token) bool {
	return t.Type() == nlTokType || t.Type() == lexer.EofTokenType
}

// splitLines groups tokens by lines, each line ends with its newline or EoF token.
// Empty lines are skipped.
func splitLines(tokens []*lexer.Token) [][]*lexer.Token {
	var result [][]*lexer.Token
	start := 0
	for i, t := range tokens {
		if !isTerminator(t) {
			continue
		}

		if i > start {
			result = append(result, tokens[start:i+1])
		}
		start = i + 1
	}
	return result
}

func (c *parseContext) parseLine(line []*lexer.Token) error {
	first := line[0]
	var rest []*lexer.Token

	switch first.Type() {
	case arrowTokType:
		if !c.hasHead {
			return noContinuationError(first)
		}
		rest = line[1:]

	case wordTokType:
		if !grammar.IsNonterminalName(first.Text()) {
			return wrongHeadError(first)
		}
		if line[1].Type() != arrowTokType {
			return missingArrowError(line[1])
		}
		c.head = grammar.Nonterminal(first.Text())
		c.hasHead = true
		rest = line[2:]

	default:
		return unexpectedTokenError(first)
	}

	var words []*lexer.Token
	for _, t := range rest {
		switch t.Type() {
		case wordTokType:
			words = append(words, t)

		case arrowTokType:
			return unexpectedTokenError(t)

		default:
			body, e := makeBody(words, t)
			if e != nil {
				return e
			}

			c.g.Add(c.head, body)
			words = words[:0]
		}
	}
	return nil
}

func makeBody(words []*lexer.Token, terminator *lexer.Token) (grammar.Body, error) {
	if len(words) == 0 {
		return nil, emptyAlternativeError(terminator)
	}

	result := make(grammar.Body, 0, len(words))
	for _, w := range words {
		text := w.Text()
		switch {
		case text == grammar.EpsilonText:
			if len(words) > 1 {
				return nil, mixedEpsilonError(w)
			}
		case grammar.IsNonterminalName(text):
			result = append(result, grammar.Nonterminal(text))
		case grammar.IsTerminalName(text):
			result = append(result, grammar.Terminal(text))
		default:
			return nil, wrongSymbolError(w)
		}
	}
	return result, nil
}
