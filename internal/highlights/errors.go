package highlights

import (
	"errors"
	"fmt"
)

// Kind classifies failures so the command line can pick an exit code.
type Kind string

const (
	KindGeneral Kind = "general"
	KindIO      Kind = "io"
	KindFormat  Kind = "format"
)

// Exit codes follow sysexits.h.
const (
	ExitOK      = 0
	ExitGeneral = 1
	ExitDataErr = 65
	ExitIOErr   = 74
)

// Error is a classified failure with a human readable message.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err == nil {
		return e.Message
	}
	return fmt.Sprintf("%s: %v", e.Message, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// IOError reports a failed read or write on an input or output.
func IOError(message string, cause error) *Error {
	return &Error{Kind: KindIO, Message: message, Err: cause}
}

// FormatError reports input data that does not match the expected schema.
func FormatError(message string, cause error) *Error {
	return &Error{Kind: KindFormat, Message: message, Err: cause}
}

// GeneralError reports anything that is neither an I/O nor a format failure.
func GeneralError(message string) *Error {
	return &Error{Kind: KindGeneral, Message: message}
}

// KindOf returns the kind of the first *Error in the chain, or KindGeneral.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindGeneral
}

// ExitCode maps an error to a process exit code.
func ExitCode(err error) int {
	if err == nil {
		return ExitOK
	}
	switch KindOf(err) {
	case KindFormat:
		return ExitDataErr
	case KindIO:
		return ExitIOErr
	default:
		return ExitGeneral
	}
}
