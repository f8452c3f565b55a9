package pkg

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
)

// Error represents an expected, user-facing failure with optional structured
// logging attributes. It implements both error and slog.LogValuer.
//
// A silent Error describes an outcome the user chose or can safely ignore
// (a declined prompt, nothing to delete). The CLI prints silent errors as
// plain information and exits successfully.
type Error struct {
	msg    string
	err    error       // Wrapped error (for errors.Unwrap)
	attrs  []slog.Attr // Attributes for structured logging
	silent bool
}

// NewError creates a new Error with a message.
func NewError(msg string) *Error {
	return &Error{msg: msg}
}

// AsError returns the first *Error found in err's chain.
func AsError(err error) (*Error, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e, true
	}

	return nil, false
}

// Error implements the error interface.
func (e *Error) Error() string {
	// Build error message using the first available format,
	// depending on which fields are set:
	//
	//   1. "<msg>: <err>" // base and wrapped error both set
	//   2. "<msg>"        // wrapped error is nil
	//   3. "<err>"        // base error message is empty
	//   4. ""             // no fields are set
	part := make([]string, 0, 2)

	if e.msg != "" {
		part = append(part, e.msg)
	}

	if e.err != nil {
		part = append(part, e.err.Error())
	}

	return strings.Join(part, ": ")
}

// Message returns the user-facing message without the wrapped cause.
func (e *Error) Message() string {
	if e.msg == "" && e.err != nil {
		return e.err.Error()
	}

	return e.msg
}

// Silent reports whether the error should be reported as information only.
func (e *Error) Silent() bool { return e.silent }

// Unwrap implements error unwrapping for errors.Is/As.
func (e *Error) Unwrap() error { return e.err }

// Is reports whether target is the sentinel this error was derived from.
// Derived errors share the sentinel's message, so errors.Is matches through
// Wrap, With, and Silently.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}

	return t.msg == e.msg || t.msg == e.base()
}

// LogValue implements slog.LogValuer for rich structured logging.
func (e *Error) LogValue() slog.Value {
	attrs := make([]slog.Attr, 0, len(e.attrs)+3)

	if e.msg != "" {
		attrs = append(attrs, slog.String("error", e.msg))
	}

	if e.err != nil {
		attrs = append(attrs, slog.String("cause", e.err.Error()))
	}

	if e.silent {
		attrs = append(attrs, slog.Bool("silent", true))
	}

	return slog.GroupValue(append(attrs, e.attrs...)...)
}

// Wrap creates a new Error wrapping another error.
func (e *Error) Wrap(err error) *Error {
	c := e.clone()
	c.err = err

	return c
}

// With adds attributes to the error for structured logging.
// This creates a new Error instance to maintain immutability.
func (e *Error) With(attrs ...slog.Attr) *Error {
	c := e.clone()
	c.attrs = make([]slog.Attr, len(e.attrs)+len(attrs))
	copy(c.attrs, e.attrs)
	copy(c.attrs[len(e.attrs):], attrs)

	return c
}

// Withf returns a copy of the error whose user-facing message is replaced
// by the formatted string. The original message is kept as the "kind"
// attribute so errors.Is still matches the sentinel.
func (e *Error) Withf(format string, args ...any) *Error {
	c := e.clone()
	c.attrs = append(c.attrs[:len(c.attrs):len(c.attrs)], slog.String(kindKey, e.base()))
	c.msg = fmt.Sprintf(format, args...)

	return c
}

// Silently returns a copy of the error marked silent.
func (e *Error) Silently() *Error {
	c := e.clone()
	c.silent = true

	return c
}

const kindKey = "kind"

// base returns the sentinel message this error was derived from.
func (e *Error) base() string {
	for _, a := range e.attrs {
		if a.Key == kindKey {
			return a.Value.String()
		}
	}

	return e.msg
}

func (e *Error) clone() *Error {
	return &Error{
		msg:    e.msg,
		err:    e.err,
		attrs:  e.attrs, // Share attrs
		silent: e.silent,
	}
}
