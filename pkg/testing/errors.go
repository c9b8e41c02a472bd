package testing

import (
	"sync"
	"testing"

	"github.com/go-drift/rowkit/pkg/errors"
)

// ErrorRecorder is an errors.ErrorHandler that keeps what it receives.
type ErrorRecorder struct {
	mu     sync.Mutex
	errs   []*errors.Error
	panics []*errors.PanicError
}

// RecordErrors installs a new ErrorRecorder as the global error handler
// for the rest of the test and restores the previous handler on cleanup.
func RecordErrors(t testing.TB) *ErrorRecorder {
	t.Helper()
	r := &ErrorRecorder{}
	prev := errors.SetHandler(r)
	t.Cleanup(func() { errors.SetHandler(prev) })
	return r
}

// HandleError records err.
func (r *ErrorRecorder) HandleError(err *errors.Error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.errs = append(r.errs, err)
}

// HandlePanic records err.
func (r *ErrorRecorder) HandlePanic(err *errors.PanicError) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.panics = append(r.panics, err)
}

// Errors returns the reported errors in order.
func (r *ErrorRecorder) Errors() []*errors.Error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]*errors.Error(nil), r.errs...)
}

// Panics returns the recovered panics in order.
func (r *ErrorRecorder) Panics() []*errors.PanicError {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]*errors.PanicError(nil), r.panics...)
}

// Conflicts returns the constraint conflicts among the reported errors.
func (r *ErrorRecorder) Conflicts() []*errors.ConflictError {
	var out []*errors.ConflictError
	for _, e := range r.Errors() {
		if conflict, ok := e.Err.(*errors.ConflictError); ok {
			out = append(out, conflict)
		}
	}
	return out
}

// Reset forgets everything recorded so far.
func (r *ErrorRecorder) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.errs = nil
	r.panics = nil
}
