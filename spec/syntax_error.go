package spec

import "fmt"

// SyntaxError indicates that a grammar source doesn't conform to the rule
// notation.
type SyntaxError struct {
	Row     int
	Message string
}

func newSyntaxError(row int, message string) *SyntaxError {
	return &SyntaxError{
		Row:     row,
		Message: message,
	}
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("%v: %v", e.Row, e.Message)
}
