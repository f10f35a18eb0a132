package pda

import (
	"github.com/ava12/gramutil"
)

// Error codes used by pda:
const (
	EmptyStateError = gramutil.AutomatonErrors + iota
	WrongInputError
	EmptyStackSymbolError
	InitialSymbolError
)

func emptyStateError() *gramutil.Error {
	return gramutil.FormatError(EmptyStateError, "state name must not be empty")
}

func wrongInputError(t Transition) *gramutil.Error {
	return gramutil.FormatError(WrongInputError, "input symbol %q of transition %s is not a terminal name", t.Input, t)
}

func emptyStackSymbolError() *gramutil.Error {
	return gramutil.FormatError(EmptyStackSymbolError, "stack symbol must not be empty")
}

func initialSymbolError() *gramutil.Error {
	return gramutil.FormatError(InitialSymbolError, "initial stack symbol must not be empty")
}
