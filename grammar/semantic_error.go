package grammar

import "fmt"

// MalformedGrammarError indicates a structural problem in a rule set that
// prevents grammar construction. It is fatal; no partial grammar is built.
type MalformedGrammarError struct {
	Cause  error
	Symbol string
}

func (e *MalformedGrammarError) Error() string {
	if e.Symbol != "" {
		return fmt.Sprintf("malformed grammar: %v: %v", e.Cause, e.Symbol)
	}
	return fmt.Sprintf("malformed grammar: %v", e.Cause)
}

func (e *MalformedGrammarError) Unwrap() error {
	return e.Cause
}

type semanticError struct {
	message string
}

func newSemanticError(message string) *semanticError {
	return &semanticError{
		message: message,
	}
}

func (e *semanticError) Error() string {
	return e.message
}

var (
	semErrNoProduction        = newSemanticError("a grammar needs at least one production")
	semErrUndefinedNonTerm    = newSemanticError("a non-terminal symbol has no production")
	semErrTermAsHead          = newSemanticError("a terminal symbol cannot be the head of a production")
	semErrDuplicateProduction = newSemanticError("duplicate production")
	semErrReservedName        = newSemanticError("a symbol name is reserved")
)
