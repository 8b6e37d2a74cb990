package value

import (
	"fmt"

	"github.com/plorth-go/plorth/internal/position"
)

// ErrorCode is one of the closed set of error kinds a Plorth error may
// carry.
type ErrorCode string

const (
	ErrSyntax    ErrorCode = "syntax"
	ErrReference ErrorCode = "reference"
	ErrType      ErrorCode = "type"
	ErrValue     ErrorCode = "value"
	ErrRange     ErrorCode = "range"
	ErrUnknown   ErrorCode = "unknown"
	ErrIO        ErrorCode = "io"
	ErrImport    ErrorCode = "import"
)

// Error is a pair of (code, message) plus an optional source position.
type Error struct {
	Code    ErrorCode
	Message string
	Pos     position.Position
	HasPos  bool
}

// NewError constructs an Error with no position.
func NewError(code ErrorCode, message string) *Error {
	return &Error{Code: code, Message: message}
}

// NewErrorAt constructs an Error carrying a source position.
func NewErrorAt(code ErrorCode, message string, pos position.Position) *Error {
	return &Error{Code: code, Message: message, Pos: pos, HasPos: true}
}

// NewErrorf is NewError with fmt.Sprintf formatting.
func NewErrorf(code ErrorCode, format string, args ...interface{}) *Error {
	return NewError(code, fmt.Sprintf(format, args...))
}

func (e *Error) Kind() Kind { return KindError }

func (e *Error) Equals(other Value) bool {
	o, ok := other.(*Error)
	return ok && o.Code == e.Code && o.Message == e.Message
}

// Error implements the standard error interface so *Error can also be used
// with errors.Is/As and returned from Go functions directly.
func (e *Error) Error() string {
	return e.String()
}

func (e *Error) String() string {
	if e.HasPos {
		return fmt.Sprintf("%s: %s - %s", e.Pos, e.Code, e.Message)
	}
	return fmt.Sprintf("%s - %s", e.Code, e.Message)
}

// Source renders "<error: code - message>", the to_source form.
func (e *Error) Source() string {
	return fmt.Sprintf("<error: %s - %s>", e.Code, e.Message)
}

// AsObject renders the error as a plain object with "code" and "message"
// properties. (`try` pushes the *Error itself, not this object.)
func (e *Error) AsObject() *Object {
	o := EmptyObject()
	o.Set("code", NewString(string(e.Code)))
	o.Set("message", NewString(e.Message))
	return o
}
