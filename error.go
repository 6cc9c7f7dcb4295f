package icicle

import (
	"errors"
	"fmt"
)

// ErrOptionNotSet is returned by [GetOr] when neither the short nor the long
// name was present on the command line. Absence of an option is not a parse
// error; callers decide whether it is fatal.
var ErrOptionNotSet = errors.New("option not set")

// ErrorCode identifies a class of parse error.
type ErrorCode int

const (
	// ErrUnknownOption reports an option token whose name is not declared on
	// the resolved command.
	ErrUnknownOption ErrorCode = iota + 1
	// ErrMalformedOption reports an option token that does not follow the
	// name=value form, or carries a value where none is accepted.
	ErrMalformedOption
	// ErrArgumentCount reports a mismatch between the positional tokens given
	// and the argument slots the resolved command declares.
	ErrArgumentCount
)

func (c ErrorCode) String() string {
	switch c {
	case ErrUnknownOption:
		return "unknown option"
	case ErrMalformedOption:
		return "malformed option"
	case ErrArgumentCount:
		return "argument count mismatch"
	default:
		return "unknown error"
	}
}

// ParseError is returned by [Parse] when the input cannot be bound against
// the resolved command's descriptors. Command is the full path of the
// resolved command and Token the offending input token, when there is one.
type ParseError struct {
	Code    ErrorCode
	Command string
	Token   string
	detail  string
}

func (e *ParseError) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.detail != "" {
		return fmt.Sprintf("command %q: %s", e.Command, e.detail)
	}
	return fmt.Sprintf("command %q: %s: %q", e.Command, e.Code, e.Token)
}

// Is reports whether target carries the same error code, so tests and callers
// can match with errors.Is against a bare &ParseError{Code: ...}.
func (e *ParseError) Is(target error) bool {
	var pe *ParseError
	if !errors.As(target, &pe) {
		return false
	}
	return pe.Code == e.Code
}

// CoercionError is returned by [GetOr] when an option value is present but
// cannot be parsed into the requested type. Coercion is lazy, so the error
// surfaces at first typed access rather than at parse time.
type CoercionError struct {
	Name  string
	Value string
	Err   error
}

func (e *CoercionError) Error() string {
	return fmt.Sprintf("option %q: cannot parse %q: %v", e.Name, e.Value, e.Err)
}

func (e *CoercionError) Unwrap() error { return e.Err }
