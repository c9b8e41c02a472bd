package errors

import (
	"bytes"
	"strings"
	"testing"
	"time"
)

func TestErrorString(t *testing.T) {
	err := &Error{
		Op:   "constraint.Engine.Activate",
		Kind: KindLayout,
		Err:  &ConflictError{Item: "icon", Attribute: "width", Existing: "icon.width == 12", Incoming: "icon.width == 24"},
	}
	got := err.Error()
	want := "constraint.Engine.Activate [layout]: unsatisfiable icon.width: icon.width == 24 conflicts with icon.width == 12"
	if got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}

func TestErrorKindString(t *testing.T) {
	tests := []struct {
		kind ErrorKind
		want string
	}{
		{KindUnknown, "unknown"},
		{KindLayout, "layout"},
		{KindConfig, "config"},
		{KindInit, "init"},
		{KindPanic, "panic"},
	}
	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("ErrorKind(%d).String() = %q, want %q", tt.kind, got, tt.want)
		}
	}
}

func TestPanicErrorString(t *testing.T) {
	err := &PanicError{Value: "boom", Timestamp: time.Now()}
	if got, want := err.Error(), "panic: boom"; got != want {
		t.Errorf("PanicError.Error() = %q, want %q", got, want)
	}
	err.Op = "view.LayoutIfNeeded"
	if got, want := err.Error(), "panic in view.LayoutIfNeeded: boom"; got != want {
		t.Errorf("PanicError.Error() = %q, want %q", got, want)
	}
}

func TestReport(t *testing.T) {
	var captured *Error
	prev := SetHandler(&testHandler{onError: func(err *Error) { captured = err }})
	defer SetHandler(prev)

	Report(&Error{Op: "test.op", Kind: KindConfig})

	if captured == nil {
		t.Fatal("expected error to be captured")
	}
	if captured.Op != "test.op" {
		t.Errorf("Op = %q, want %q", captured.Op, "test.op")
	}
	if captured.Timestamp.IsZero() {
		t.Error("expected Timestamp to be set")
	}
}

func TestRecover(t *testing.T) {
	var captured *PanicError
	prev := SetHandler(&testHandler{onPanic: func(err *PanicError) { captured = err }})
	defer SetHandler(prev)

	func() {
		defer Recover("test.recover")
		panic("intentional test panic")
	}()

	if captured == nil {
		t.Fatal("expected panic to be recovered and captured")
	}
	if captured.Op != "test.recover" {
		t.Errorf("Op = %q, want %q", captured.Op, "test.recover")
	}
	if captured.StackTrace == "" {
		t.Error("expected stack trace")
	}
}

func TestSetHandlerNil(t *testing.T) {
	prev := SetHandler(nil)
	defer SetHandler(prev)
	if _, ok := Handler().(*LogHandler); !ok {
		t.Errorf("SetHandler(nil) should set LogHandler, got %T", Handler())
	}
}

func TestSetHandlerReturnsPrevious(t *testing.T) {
	first := &testHandler{}
	orig := SetHandler(first)
	defer SetHandler(orig)

	if prev := SetHandler(&testHandler{}); prev != first {
		t.Errorf("SetHandler returned %T %p, want the handler it replaced", prev, prev)
	}
}

func TestReportPanicStampsTime(t *testing.T) {
	var captured *PanicError
	prev := SetHandler(&testHandler{onPanic: func(err *PanicError) { captured = err }})
	defer SetHandler(prev)

	ReportPanic(&PanicError{Op: "view.LayoutIfNeeded", Value: "boom"})
	ReportPanic(nil)

	if captured == nil || captured.Timestamp.IsZero() {
		t.Fatalf("expected a timestamped panic, got %+v", captured)
	}
}

func TestLogHandler(t *testing.T) {
	var buf bytes.Buffer
	h := &LogHandler{Out: &buf}
	h.HandleError(&Error{Op: "style.Load", Kind: KindConfig, Err: errForTest})
	if got, want := buf.String(), "[rowkit error] style.Load: test failure\n"; got != want {
		t.Errorf("log line = %q, want %q", got, want)
	}

	buf.Reset()
	h.Verbose = true
	h.HandlePanic(&PanicError{Op: "op", Value: 1, StackTrace: "frames"})
	if !strings.Contains(buf.String(), "Stack trace:\nframes") {
		t.Errorf("verbose panic output missing stack trace: %q", buf.String())
	}
}

var errForTest = testError("test failure")

type testError string

func (e testError) Error() string { return string(e) }

type testHandler struct {
	onError func(*Error)
	onPanic func(*PanicError)
}

func (h *testHandler) HandleError(err *Error) {
	if h.onError != nil {
		h.onError(err)
	}
}

func (h *testHandler) HandlePanic(err *PanicError) {
	if h.onPanic != nil {
		h.onPanic(err)
	}
}
