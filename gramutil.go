/*
Package gramutil converts between context-free grammars and pushdown automata.

Consists of subpackages:
  - cmd/gramutil: console utility printing a grammar, its automaton, and the grammar converted back;
  - grammar: symbols, productions, grammar structure, and the simplification pipeline;
  - langdef: converts grammar description (one "HEAD -> body | body" line per nonterminal) to grammar;
  - lexer: lexical analyzer used by langdef;
  - pda: pushdown automata, conversion of grammars to automata and back;
  - source: defines source file used by lexer.

Typical usage is:

1. Describe grammar as text, start symbol is always S.

2. Parse it using langdef subpackage.

3. Simplify the grammar if needed, order of simplification steps matters, see grammar.Grammar.Simplify.

4. Build an automaton with pda.FromGrammar, convert automata back with pda.Automaton.ToGrammar.
*/
package gramutil

import (
	"fmt"
)

// Error classes used by subpackages, each class contains up to 99 error codes:
const (
	GrammarErrors   = 1   // used by langdef
	LexicalErrors   = 101 // used by lexer
	AutomatonErrors = 201 // used by pda
)

// Error is the error type used by gramutil subpackages.
type Error struct {
	// Code contains non-zero error code.
	Code int

	// Message contains non-empty error message including source name and position information if provided.
	Message string

	// SourceName contains source name that caused this error or empty string.
	SourceName string

	// Line contains line number in source file or 0.
	Line int

	// Col contains column number in source file or 0.
	Col int
}

// SourcePos is used to retrieve source name and position information when constructing an error;
// source.Pos and lexer.Token implement this interface.
type SourcePos interface {
	// SourceName returns source file name or empty string.
	SourceName() string
	// Line returns line number or 0.
	Line() int
	// Col returns column number or 0.
	Col() int
}

// NewError creates new Error structure.
// name, line, and col will be added to error message if provided (non-zero).
func NewError(code int, msg, name string, line, col int) *Error {
	if line != 0 && col != 0 {
		if name == "" {
			msg += fmt.Sprintf(" at line %d col %d", line, col)
		} else {
			msg += fmt.Sprintf(" in %s at line %d col %d", name, line, col)
		}
	}
	return &Error{code, msg, name, line, col}
}

// Error simply returns Error.Message.
func (e *Error) Error() string {
	return e.Message
}

// FormatError creates Error structure with no source and position information.
// params will be added to error message using fmt.Sprintf function.
func FormatError(code int, msg string, params ...any) *Error {
	if len(params) > 0 {
		msg = fmt.Sprintf(msg, params...)
	}
	return NewError(code, msg, "", 0, 0)
}

// FormatErrorPos creates Error structure with source and position information.
// pos must not be nil.
// params will be added to error message using fmt.Sprintf function.
func FormatErrorPos(pos SourcePos, code int, msg string, params ...any) *Error {
	if len(params) > 0 {
		msg = fmt.Sprintf(msg, params...)
	}
	return NewError(code, msg, pos.SourceName(), pos.Line(), pos.Col())
}
