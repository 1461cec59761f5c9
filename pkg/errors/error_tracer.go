package errors

import "github.com/pkg/errors"

// StackTracer is satisfied by errors that carry a pkg/errors stack trace.
// The logger walks wrapped errors through this interface.
type StackTracer interface {
	StackTrace() errors.StackTrace
}

// ErrorTracer prefixes an underlying error with an operation message while
// keeping the cause's stack trace reachable.
type ErrorTracer struct {
	Message string
	Err     error
}

// NewTracer creates a tracer with the given message. Callers attach the
// cause with Wrap.
func NewTracer(message string) *ErrorTracer {
	return &ErrorTracer{
		Message: message,
	}
}

func (e *ErrorTracer) Error() string {
	return e.Message
}

func (e *ErrorTracer) Unwrap() error {
	return e.Err
}

// Wrap attaches the cause, capturing a stack trace when it carries none.
func (e *ErrorTracer) Wrap(err error) *ErrorTracer {
	e.Err = err
	if _, ok := err.(StackTracer); !ok {
		e.Err = errors.WithStack(err)
	}
	return e
}

// StackTrace exposes the wrapped error's stack trace, nil when the cause
// never captured one.
func (e *ErrorTracer) StackTrace() errors.StackTrace {
	if errWithStack, ok := e.Unwrap().(StackTracer); ok {
		return errWithStack.StackTrace()
	}
	return nil
}
