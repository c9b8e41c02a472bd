package errors

import (
	"fmt"
	"runtime"
	"strings"
	"sync"
	"time"
)

// The process-wide handler receives layout conflicts from the constraint
// engine, font and image failures from views, and panics recovered from
// LayoutSubviews overrides. The rowview CLI swaps in a verbose LogHandler;
// tests swap in a recorder.
var (
	handlerMu sync.RWMutex
	handler   ErrorHandler = &LogHandler{}
)

// SetHandler installs h and returns the handler it replaced, so callers can
// restore it when done. A nil h reinstalls a quiet LogHandler.
func SetHandler(h ErrorHandler) ErrorHandler {
	if h == nil {
		h = &LogHandler{}
	}
	handlerMu.Lock()
	defer handlerMu.Unlock()
	prev := handler
	handler = h
	return prev
}

// Handler returns the installed handler.
func Handler() ErrorHandler {
	handlerMu.RLock()
	defer handlerMu.RUnlock()
	return handler
}

// Report stamps err with the current time unless it already has one and
// hands it to the installed handler. Reporting never interrupts layout.
func Report(err *Error) {
	if err == nil {
		return
	}
	if err.Timestamp.IsZero() {
		err.Timestamp = time.Now()
	}
	Handler().HandleError(err)
}

// ReportPanic hands a recovered panic to the installed handler.
func ReportPanic(err *PanicError) {
	if err == nil {
		return
	}
	if err.Timestamp.IsZero() {
		err.Timestamp = time.Now()
	}
	Handler().HandlePanic(err)
}

// Recover turns a panic in the calling function into a reported
// PanicError. It must be deferred directly:
//
//	defer errors.Recover("view.LayoutIfNeeded")
//
// A layout pass that panics halfway leaves the frames it already assigned.
func Recover(op string) {
	if r := recover(); r != nil {
		ReportPanic(&PanicError{
			Op:         op,
			Value:      r,
			StackTrace: CaptureStack(),
		})
	}
}

// CaptureStack formats the caller's stack, one "function\n\tfile:line"
// entry per frame, up to 32 frames. Its own frame and runtime.Callers are
// left out.
func CaptureStack() string {
	pcs := make([]uintptr, 32)
	pcs = pcs[:runtime.Callers(3, pcs)]
	if len(pcs) == 0 {
		return ""
	}
	var sb strings.Builder
	frames := runtime.CallersFrames(pcs)
	for {
		f, more := frames.Next()
		fmt.Fprintf(&sb, "%s\n\t%s:%d\n", f.Function, f.File, f.Line)
		if !more {
			return sb.String()
		}
	}
}
