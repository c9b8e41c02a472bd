// Package errors provides structured error reporting for rowkit.
//
// Component operations are total: nothing in a row's public API returns an
// error. Problems the host geometry engine detects, such as conflicting
// constraints, are reported to a process-wide [ErrorHandler] instead.
package errors

import (
	"fmt"
	"time"
)

// ErrorKind identifies the category of an error.
type ErrorKind int

const (
	// KindUnknown indicates an error of unknown type.
	KindUnknown ErrorKind = iota
	// KindLayout indicates a constraint or layout pass problem.
	KindLayout
	// KindConfig indicates a style or project configuration problem.
	KindConfig
	// KindInit indicates an initialization error.
	KindInit
	// KindPanic indicates a recovered panic.
	KindPanic
)

func (k ErrorKind) String() string {
	switch k {
	case KindLayout:
		return "layout"
	case KindConfig:
		return "config"
	case KindInit:
		return "init"
	case KindPanic:
		return "panic"
	default:
		return "unknown"
	}
}

// Error represents a structured error reported by rowkit.
type Error struct {
	// Op is the operation that failed (e.g., "constraint.Engine.Activate").
	Op string
	// Kind categorizes the error.
	Kind ErrorKind
	// Err is the underlying error.
	Err error
	// StackTrace contains the call stack at the time of the error.
	StackTrace string
	// Timestamp is when the error occurred.
	Timestamp time.Time
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s [%s]: %v", e.Op, e.Kind, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// ConflictError describes two required constraints on the same item and
// attribute that cannot both hold.
type ConflictError struct {
	// Item is the debug name of the constrained item.
	Item string
	// Attribute is the constrained attribute (e.g., "width").
	Attribute string
	// Existing is the constraint that was already active.
	Existing string
	// Incoming is the constraint being activated.
	Incoming string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("unsatisfiable %s.%s: %s conflicts with %s", e.Item, e.Attribute, e.Incoming, e.Existing)
}

// PanicError represents a recovered panic.
type PanicError struct {
	// Op is the operation that panicked (e.g., "view.LayoutIfNeeded").
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

// ErrorHandler receives errors reported by rowkit.
type ErrorHandler interface {
	// HandleError is called when an error is reported.
	HandleError(err *Error)
	// HandlePanic is called when a panic is recovered.
	HandlePanic(err *PanicError)
}
