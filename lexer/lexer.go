// Package lexer defines lexical analyzer used by langdef.
package lexer

import (
	"fmt"
	"regexp"
	"unicode/utf8"

	"github.com/ava12/gramutil"
	"github.com/ava12/gramutil/source"
)

const (
	// ErrorTokenType is the type for fake tokens capturing broken lexemes.
	// Lexer never returns a token of this type, an error with message containing token text is returned instead.
	ErrorTokenType = EofTokenType - 1

	// ErrorTokenName is the type name for ErrorTokenType.
	ErrorTokenName = "-error-"
)

// Error codes used by lexer:
const (
	// WrongCharError indicates that lexer cannot fetch any token at current position.
	// Error message contains the rune at current source position.
	WrongCharError = gramutil.LexicalErrors + iota

	// BadTokenError indicates that lexer has fetched a token of ErrorTokenType.
	BadTokenError
)

// TokenType describes token type for specific capturing group of regular expression.
type TokenType struct {
	// Type contains token type, must not be negative unless it is ErrorTokenType.
	Type int

	// TypeName contains token type name, may be any value.
	TypeName string
}

// Lexer splits source into tokens using regexp.Regexp.
// Lexer is immutable and safe for concurrent use.
// Each token type maps to its own regexp capturing group index.
// A match containing no captured groups is treated as insignificant lexeme (e.g. whitespace or comment).
// Every byte of source must belong to some lexeme.
type Lexer struct {
	types []TokenType
	re    *regexp.Regexp
}

// New creates new Lexer.
// Each n-th element of types describes token type for (n+1)-th regexp capturing group.
// A group that has no description or that has negative token type is treated as ErrorTokenType.
// re must be anchored at the start of input ("^...").
func New(re *regexp.Regexp, types []TokenType) *Lexer {
	ts := make([]TokenType, len(types))
	for i, t := range types {
		ts[i].TypeName = t.TypeName
		if t.Type >= 0 {
			ts[i].Type = t.Type
		} else {
			ts[i].Type = ErrorTokenType
		}
	}
	return &Lexer{types: ts, re: re}
}

func wrongCharError(s *source.Source, pos int) *gramutil.Error {
	r, _ := utf8.DecodeRune(s.Content()[pos:])
	line, col := s.LineCol(pos)
	msg := fmt.Sprintf("wrong char \"%c\" (u+%x)", r, r)
	return gramutil.NewError(WrongCharError, msg, s.Name(), line, col)
}

func badTokenError(t *Token) *gramutil.Error {
	return gramutil.FormatErrorPos(t, BadTokenError, "bad token %q", t.Text())
}

// next fetches the token starting at pos.
// Returns nil token and positive advance for insignificant lexemes.
func (l *Lexer) next(s *source.Source, pos int) (*Token, int, error) {
	content := s.Content()[pos:]
	match := l.re.FindSubmatchIndex(content)
	if len(match) == 0 || match[0] != 0 || match[1] <= match[0] {
		return nil, 0, wrongCharError(s, pos)
	}

	for i := 2; i < len(match); i += 2 {
		if match[i] < 0 || match[i+1] < 0 {
			continue
		}

		tokenType, typeName := ErrorTokenType, ErrorTokenName
		if group := (i >> 1) - 1; group < len(l.types) {
			tokenType, typeName = l.types[group].Type, l.types[group].TypeName
		}
		text := string(content[match[i]:match[i+1]])
		token := NewToken(tokenType, typeName, text, source.NewPos(s, pos+match[i]))
		if tokenType == ErrorTokenType {
			return nil, 0, badTokenError(token)
		}

		return token, match[1], nil
	}

	return nil, match[1], nil
}

// Tokens splits the whole source into tokens, the last token is always of EofTokenType.
// Returns nil and gramutil.Error on lexical error.
func (l *Lexer) Tokens(s *source.Source) ([]*Token, error) {
	var result []*Token
	for pos := 0; pos < s.Len(); {
		token, advance, e := l.next(s, pos)
		if e != nil {
			return nil, e
		}

		if token != nil {
			result = append(result, token)
		}
		pos += advance
	}
	return append(result, EofToken(s)), nil
}
