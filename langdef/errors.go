package langdef

import (
	"github.com/ava12/gramutil"
	"github.com/ava12/gramutil/grammar"
	"github.com/ava12/gramutil/lexer"
)

// Error codes used by langdef:
const (
	UnexpectedTokenError = gramutil.GrammarErrors + iota
	WrongHeadError
	MissingArrowError
	EmptyAlternativeError
	WrongSymbolError
	MixedEpsilonError
	NoContinuationError
	NoStartError
)

func unexpectedTokenError(token *lexer.Token) *gramutil.Error {
	return gramutil.FormatErrorPos(token, UnexpectedTokenError, "unexpected %s token %q", token.TypeName(), token.Text())
}

func wrongHeadError(token *lexer.Token) *gramutil.Error {
	return gramutil.FormatErrorPos(token, WrongHeadError, "production head must be a nonterminal, got %q", token.Text())
}

func missingArrowError(token *lexer.Token) *gramutil.Error {
	return gramutil.FormatErrorPos(token, MissingArrowError, "expecting \"->\" after production head, got %q", token.Text())
}

func emptyAlternativeError(token *lexer.Token) *gramutil.Error {
	return gramutil.FormatErrorPos(token, EmptyAlternativeError, "empty alternative, use \"$\" for the empty string")
}

func wrongSymbolError(token *lexer.Token) *gramutil.Error {
	return gramutil.FormatErrorPos(token, WrongSymbolError, "%q is neither a terminal nor a nonterminal", token.Text())
}

func mixedEpsilonError(token *lexer.Token) *gramutil.Error {
	return gramutil.FormatErrorPos(token, MixedEpsilonError, "\"$\" must be the only symbol of an alternative")
}

func noContinuationError(token *lexer.Token) *gramutil.Error {
	return gramutil.FormatErrorPos(token, NoContinuationError, "continuation line has no production head to continue")
}

func noStartError(name string) *gramutil.Error {
	e := gramutil.FormatError(NoStartError, "no productions for start symbol %q", grammar.StartName)
	e.SourceName = name
	return e
}
