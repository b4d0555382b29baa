// Package errors provides structured error handling for observable models.
package errors

import (
	goerrors "errors"
	"fmt"
	"time"
)

// ErrorKind identifies the category of an error.
type ErrorKind int

const (
	// KindUnknown indicates an error of unknown type.
	KindUnknown ErrorKind = iota
	// KindIndexOutOfRange indicates list access outside [0, len).
	KindIndexOutOfRange
	// KindKeyNotFound indicates a catalog lookup of an absent key.
	KindKeyNotFound
	// KindEmptySequence indicates a reduction that needs at least one element.
	KindEmptySequence
	// KindParse indicates text that could not be converted to a value.
	KindParse
	// KindTypeMismatch indicates a dynamic value not assignable to the element type.
	KindTypeMismatch
	// KindDuplicateKey indicates a catalog constructed with a repeated key.
	KindDuplicateKey
	// KindFormat indicates a malformed or incompatible asset document.
	KindFormat
	// KindPanic indicates a recovered panic.
	KindPanic
)

func (k ErrorKind) String() string {
	switch k {
	case KindIndexOutOfRange:
		return "index out of range"
	case KindKeyNotFound:
		return "key not found"
	case KindEmptySequence:
		return "empty sequence"
	case KindParse:
		return "parse"
	case KindTypeMismatch:
		return "type mismatch"
	case KindDuplicateKey:
		return "duplicate key"
	case KindFormat:
		return "format"
	case KindPanic:
		return "panic"
	default:
		return "unknown"
	}
}

// ModelError represents a structured error raised by a model operation.
type ModelError struct {
	// Op is the operation that failed (e.g., "observable.List.At").
	Op string
	// Kind categorizes the error.
	Kind ErrorKind
	// Key is the catalog key or list index involved, if applicable.
	Key string
	// Err is the underlying error.
	Err error
	// StackTrace contains the call stack at the time of the error.
	StackTrace string
	// Timestamp is when the error occurred.
	Timestamp time.Time
}

func (e *ModelError) Error() string {
	msg := e.Kind.String()
	if e.Err != nil {
		msg = e.Err.Error()
	}
	if e.Key != "" {
		return fmt.Sprintf("%s [%s] key=%s: %s", e.Op, e.Kind, e.Key, msg)
	}
	return fmt.Sprintf("%s [%s]: %s", e.Op, e.Kind, msg)
}

func (e *ModelError) Unwrap() error {
	return e.Err
}

// New returns a ModelError for op with the given kind and cause.
func New(op string, kind ErrorKind, err error) *ModelError {
	return &ModelError{Op: op, Kind: kind, Err: err}
}

// Newf is like New but formats the cause.
func Newf(op string, kind ErrorKind, format string, args ...any) *ModelError {
	return &ModelError{Op: op, Kind: kind, Err: fmt.Errorf(format, args...)}
}

// KindOf returns the kind of the first ModelError in err's chain,
// or KindUnknown if there is none.
func KindOf(err error) ErrorKind {
	var me *ModelError
	if goerrors.As(err, &me) {
		return me.Kind
	}
	return KindUnknown
}

// IsKind reports whether err's chain contains a ModelError of the given kind.
func IsKind(err error, kind ErrorKind) bool {
	return err != nil && KindOf(err) == kind
}

// PanicError represents a recovered panic.
type PanicError struct {
	// Op is the operation that panicked (e.g., "modelasset.main").
	Op string
	// Value is the value passed to panic().
	Value any
	// StackTrace contains the call stack at the time of the panic.
	StackTrace string
	// Timestamp is when the panic occurred.
	Timestamp time.Time
}

func (e *PanicError) Error() string {
	if e.Op != "" {
		return fmt.Sprintf("panic in %s: %v", e.Op, e.Value)
	}
	return fmt.Sprintf("panic: %v", e.Value)
}

// ParseError represents a failure to convert text into a typed value.
type ParseError struct {
	// DataType is the expected type name.
	DataType string
	// Input is the text that failed to parse.
	Input string
	// Err is the underlying conversion error, if any.
	Err error
}

func (e *ParseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("failed to parse %s from %q: %v", e.DataType, e.Input, e.Err)
	}
	return fmt.Sprintf("failed to parse %s from %q", e.DataType, e.Input)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// ErrorHandler receives errors reported by model tooling.
type ErrorHandler interface {
	// HandleError is called when an error occurs.
	HandleError(err *ModelError)
	// HandlePanic is called when a panic is recovered.
	HandlePanic(err *PanicError)
}
