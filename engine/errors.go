package engine

import (
	"errors"
	"fmt"
)

// Op describes an operation, usually as "engine.Function".
type Op string

// ErrorKind categorizes a failure for recovery decisions.
type ErrorKind uint8

const (
	KindOther          ErrorKind = iota
	KindInit                     // raw mode, size query, locale, signal setup
	KindGeometry                 // dimension exceeds uint16
	KindCapacity                 // registry or child list full; recoverable
	KindNotInitialized           // lifecycle operation without an active session
	KindNoRoot                   // event pump with no root component
)

func (k ErrorKind) String() string {
	switch k {
	case KindInit:
		return "initialization failed"
	case KindGeometry:
		return "geometry overflow"
	case KindCapacity:
		return "capacity exceeded"
	case KindNotInitialized:
		return "session not initialized"
	case KindNoRoot:
		return "no root component"
	default:
		return "error"
	}
}

// Error is the structured error type for session operations.
type Error struct {
	Op   Op        // Operation that failed
	Kind ErrorKind // Category of error
	Err  error
}

// Error returns the error message.
func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %s", e.Op, e.Kind, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Op, e.Kind)
}

// Unwrap returns the underlying error.
func (e *Error) Unwrap() error {
	return e.Err
}

// E creates an Error. Arguments can be:
// - Op: the operation name
// - ErrorKind: the error kind
// - string: context message
// - error: the underlying error
func E(args ...any) error {
	e := &Error{}
	for _, arg := range args {
		switch a := arg.(type) {
		case Op:
			e.Op = a
		case ErrorKind:
			e.Kind = a
		case string:
			e.Err = errors.New(a)
		case error:
			e.Err = a
		}
	}
	return e
}

// Is reports whether err carries the given ErrorKind.
func Is(kind ErrorKind, err error) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}

// Fatal reports whether the error forced terminal restoration.
// Capacity and uncategorized errors leave the session active.
func Fatal(err error) bool {
	var e *Error
	if !errors.As(err, &e) {
		return false
	}
	switch e.Kind {
	case KindCapacity, KindOther:
		return false
	}
	return true
}
