// Package diag implements the error taxonomy: a fatal syntax/allocation
// error surface. It has no kind for internal invariant violations, and
// the type switches over AST node kinds elsewhere ignore a kind they do
// not list rather than panic.
//
// Grounded in structure on _examples/funvibe-funxy/internal/diagnostics
// (a typed Error carrying a token and message) but adapted to a
// single-fatal-error propagation policy: funxy accumulates many
// recoverable errors and keeps parsing; this parser stops at the first
// syntax error and returns it, replacing the original C implementation's
// setjmp/longjmp escape with a result-typed parser.
package diag

import (
	"fmt"

	"github.com/dibyendumajumdar/ravi-compiler-sub001/internal/token"
)

// Kind classifies a diagnostic.
type Kind int

const (
	SyntaxError Kind = iota
	AllocationError
)

func (k Kind) String() string {
	switch k {
	case SyntaxError:
		return "syntax error"
	case AllocationError:
		return "allocation error"
	default:
		return "error"
	}
}

// Error is the single diagnostic surface exposed to embedders: a single
// diagnostic message plus the status code. DisplayName is the name
// passed to Parse, used only for rendering.
type Error struct {
	Kind        Kind
	Token       token.Token
	Message     string
	DisplayName string
}

func (e *Error) Error() string {
	name := e.DisplayName
	if name == "" {
		name = "<input>"
	}
	return fmt.Sprintf("%s:%d:%d: %s: %s", name, e.Token.Line, e.Token.Column, e.Kind, e.Message)
}

// NewSyntaxError builds a SyntaxError diagnostic anchored at tok.
func NewSyntaxError(tok token.Token, format string, args ...interface{}) *Error {
	return &Error{Kind: SyntaxError, Token: tok, Message: fmt.Sprintf(format, args...)}
}

// NewAllocationError builds an AllocationError diagnostic anchored at tok.
func NewAllocationError(tok token.Token, format string, args ...interface{}) *Error {
	return &Error{Kind: AllocationError, Token: tok, Message: fmt.Sprintf(format, args...)}
}
