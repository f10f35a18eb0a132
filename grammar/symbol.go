// Package grammar defines context-free grammar structure and grammar simplification.
package grammar

import (
	"regexp"
	"strconv"
	"strings"
)

// StartName is the name of the start nonterminal of every grammar.
const StartName = "S"

// EpsilonText is the textual representation of the empty string.
const EpsilonText = "$"

// Kind tells the class of a symbol.
type Kind uint8

const (
	EpsilonKind Kind = iota
	TerminalKind
	NonterminalKind
)

func (k Kind) String() string {
	switch k {
	case EpsilonKind:
		return "epsilon"
	case TerminalKind:
		return "terminal"
	case NonterminalKind:
		return "nonterminal"
	default:
		return "kind(" + strconv.Itoa(int(k)) + ")"
	}
}

var (
	terminalRe    = regexp.MustCompile(`^[a-z0-9_]+$`)
	nonterminalRe = regexp.MustCompile(`^[A-Z][A-Za-z0-9_]*$`)
)

// IsTerminalName tells whether name is a valid terminal token.
func IsTerminalName(name string) bool {
	return terminalRe.MatchString(name)
}

// IsNonterminalName tells whether name is a valid nonterminal token.
func IsNonterminalName(name string) bool {
	return nonterminalRe.MatchString(name)
}

// Triple identifies a nonterminal synthesized from a pushdown automaton:
// the automaton may go from state From to state To while popping Stack symbol.
type Triple struct {
	From, Stack, To string
}

// Name renders the triple as a nonterminal token.
// Distinct triples always get distinct names: parts are separated with "_0",
// underscores inside parts are doubled, and runes other than ASCII letters and digits
// are written as "_x<hex>_".
func (t Triple) Name() string {
	var sb strings.Builder
	sb.WriteString("T")
	for _, part := range [...]string{t.From, t.Stack, t.To} {
		sb.WriteString("_0")
		writeTriplePart(&sb, part)
	}
	return sb.String()
}

func writeTriplePart(sb *strings.Builder, part string) {
	for _, r := range part {
		switch {
		case r == '_':
			sb.WriteString("__")
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			sb.WriteRune(r)
		default:
			sb.WriteString("_x")
			sb.WriteString(strconv.FormatInt(int64(r), 16))
			sb.WriteByte('_')
		}
	}
}

// Symbol is a terminal, a nonterminal, or epsilon. Symbols are comparable and may be used as map keys.
// A nonterminal is either plain (named) or compound (carrying a Triple);
// a compound nonterminal never equals a plain one, even if their names coincide.
// Plain symbols with empty names are not allowed in grammars.
type Symbol struct {
	kind     Kind
	compound bool
	name     string
	triple   Triple
}

// Epsilon denotes the empty string.
var Epsilon = Symbol{}

// Terminal creates terminal symbol.
func Terminal(name string) Symbol {
	return Symbol{kind: TerminalKind, name: name}
}

// Nonterminal creates plain nonterminal symbol.
func Nonterminal(name string) Symbol {
	return Symbol{kind: NonterminalKind, name: name}
}

// TripleNonterminal creates compound nonterminal symbol.
func TripleNonterminal(from, stack, to string) Symbol {
	return Symbol{kind: NonterminalKind, compound: true, triple: Triple{from, stack, to}}
}

func (s Symbol) Kind() Kind {
	return s.kind
}

func (s Symbol) IsEpsilon() bool {
	return s.kind == EpsilonKind
}

func (s Symbol) IsTerminal() bool {
	return s.kind == TerminalKind
}

func (s Symbol) IsNonterminal() bool {
	return s.kind == NonterminalKind
}

// Triple returns the triple carried by compound nonterminal.
func (s Symbol) Triple() (Triple, bool) {
	return s.triple, s.isCompound()
}

func (s Symbol) isCompound() bool {
	return s.compound
}

func (s Symbol) hasEmptyName() bool {
	return !s.compound && s.kind != EpsilonKind && s.name == ""
}

// Name returns symbol name, compound nonterminals are rendered with Triple.Name.
func (s Symbol) Name() string {
	switch {
	case s.kind == EpsilonKind:
		return EpsilonText
	case s.isCompound():
		return s.triple.Name()
	default:
		return s.name
	}
}

func (s Symbol) String() string {
	return s.Name()
}

// Compare orders symbols: epsilon, terminals, plain nonterminals, compound nonterminals;
// symbols of the same class are ordered by name or by triple parts.
// Returns -1, 0, or 1.
func Compare(a, b Symbol) int {
	if a.kind != b.kind {
		return compareInts(int(a.kind), int(b.kind))
	}

	ac, bc := a.isCompound(), b.isCompound()
	switch {
	case ac && !bc:
		return 1
	case !ac && bc:
		return -1
	case ac:
		if c := strings.Compare(a.triple.From, b.triple.From); c != 0 {
			return c
		}
		if c := strings.Compare(a.triple.Stack, b.triple.Stack); c != 0 {
			return c
		}
		return strings.Compare(a.triple.To, b.triple.To)
	default:
		return strings.Compare(a.name, b.name)
	}
}

func compareInts(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// key appends an unambiguous encoding of the symbol.
func (s Symbol) key(sb *strings.Builder) {
	var text string
	switch {
	case s.kind == EpsilonKind:
		sb.WriteByte('e')
		return
	case s.kind == TerminalKind:
		sb.WriteByte('t')
		text = s.name
	case s.isCompound():
		sb.WriteByte('c')
		text = s.triple.Name()
	default:
		sb.WriteByte('n')
		text = s.name
	}
	sb.WriteString(strconv.Itoa(len(text)))
	sb.WriteByte(':')
	sb.WriteString(text)
}
