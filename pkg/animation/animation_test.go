package animation_test

import (
	"math"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/go-drift/rowkit/pkg/animation"
	"github.com/go-drift/rowkit/pkg/graphics"
	rowtest "github.com/go-drift/rowkit/pkg/testing"
)

func near(a, b float64) bool { return math.Abs(a-b) < 1e-6 }

func TestAnimationController_TicksAndStops(t *testing.T) {
	clk := rowtest.UseFakeClock(t)
	before := animation.ActiveTickers()

	c := animation.NewAnimationController(100 * time.Millisecond)
	ticks := 0
	c.AddListener(func() { ticks++ })

	c.Repeat(false)
	if !c.IsAnimating() || animation.ActiveTickers() != before+1 {
		t.Fatalf("expected a running ticker")
	}
	clk.Frame(40 * time.Millisecond)
	if !near(c.Value, 0.4) || c.Status() != animation.AnimationForward {
		t.Errorf("value = %v status = %v", c.Value, c.Status())
	}

	c.Stop()
	if c.IsAnimating() || c.IsRepeating() || animation.ActiveTickers() != before {
		t.Error("Stop should remove the ticker")
	}
	if !near(c.Value, 0.4) || c.Status() != animation.AnimationForward {
		t.Errorf("Stop between bounds should keep value and status, got %v %v", c.Value, c.Status())
	}
	clk.Frame(40 * time.Millisecond)
	if ticks != 1 {
		t.Errorf("ticks = %d, want 1", ticks)
	}
}

func TestAnimationController_RepeatRestart(t *testing.T) {
	clk := rowtest.UseFakeClock(t)
	c := animation.NewAnimationController(100 * time.Millisecond)
	t.Cleanup(c.Dispose)

	c.Repeat(false)
	clk.Frame(100 * time.Millisecond)
	if c.Value != 0 || !c.IsRepeating() {
		t.Errorf("after one run value = %v repeating = %v", c.Value, c.IsRepeating())
	}
	clk.Frame(25 * time.Millisecond)
	if !near(c.Value, 0.25) || c.Status() != animation.AnimationForward {
		t.Errorf("value = %v status = %v", c.Value, c.Status())
	}
}

func TestAnimationController_RepeatReverse(t *testing.T) {
	clk := rowtest.UseFakeClock(t)
	c := animation.NewAnimationController(100 * time.Millisecond)
	t.Cleanup(c.Dispose)

	c.Repeat(true)
	clk.Frame(100 * time.Millisecond)
	if c.Value != 1 || c.Status() != animation.AnimationReverse {
		t.Errorf("turnaround value = %v status = %v", c.Value, c.Status())
	}
	clk.Frame(50 * time.Millisecond)
	if !near(c.Value, 0.5) {
		t.Errorf("value = %v, want 0.5", c.Value)
	}
	clk.Frame(50 * time.Millisecond)
	if c.Value != 0 || c.Status() != animation.AnimationForward {
		t.Errorf("second turnaround value = %v status = %v", c.Value, c.Status())
	}

	c.Stop()
	if c.IsRepeating() || c.IsAnimating() || c.Status() != animation.AnimationDismissed {
		t.Errorf("after Stop repeating = %v status = %v", c.IsRepeating(), c.Status())
	}
}

func TestAnimationController_ResetAndDispose(t *testing.T) {
	clk := rowtest.UseFakeClock(t)
	c := animation.NewAnimationController(100 * time.Millisecond)
	calls := 0
	unsubscribe := c.AddListener(func() { calls++ })

	c.Repeat(false)
	clk.Frame(40 * time.Millisecond)
	c.Reset()
	if c.Value != 0 || c.IsAnimating() || c.Status() != animation.AnimationDismissed {
		t.Errorf("after Reset value = %v status = %v", c.Value, c.Status())
	}
	if calls != 2 {
		t.Errorf("calls = %d, want 2", calls)
	}

	unsubscribe()
	c.Repeat(false)
	clk.Frame(40 * time.Millisecond)
	if calls != 2 {
		t.Errorf("unsubscribed listener ran: calls = %d", calls)
	}
	c.Dispose()
	if c.IsAnimating() {
		t.Error("Dispose should stop the ticker")
	}
}

func TestTicker(t *testing.T) {
	clk := rowtest.UseFakeClock(t)
	var got []time.Duration
	tk := animation.NewTicker(func(elapsed time.Duration) { got = append(got, elapsed) })

	tk.Start()
	tk.Start()
	clk.Frame(16 * time.Millisecond)
	clk.Frame(16 * time.Millisecond)
	if tk.Elapsed() != 32*time.Millisecond {
		t.Errorf("elapsed = %v", tk.Elapsed())
	}
	tk.Stop()
	clk.Frame(16 * time.Millisecond)

	if diff := cmp.Diff([]time.Duration{16 * time.Millisecond, 32 * time.Millisecond}, got); diff != "" {
		t.Errorf("callbacks mismatch (-want +got):\n%s", diff)
	}
	if tk.IsActive() || tk.Elapsed() != 0 {
		t.Error("stopped ticker should report inactive")
	}
}

func TestCurves(t *testing.T) {
	for name, curve := range map[string]func(float64) float64{
		"linear":    animation.LinearCurve,
		"easeInOut": animation.EaseInOut,
	} {
		if curve(0) != 0 || curve(1) != 1 {
			t.Errorf("%s endpoints = %v, %v", name, curve(0), curve(1))
		}
	}
	if got := animation.EaseInOut(0.5); !near(got, 0.5) {
		t.Errorf("EaseInOut(0.5) = %v, want 0.5", got)
	}
	if animation.EaseInOut(0.25) >= 0.25 {
		t.Error("EaseInOut should start slowly")
	}
	if animation.EaseInOut(0.75) <= 0.75 {
		t.Error("EaseInOut should end slowly")
	}
}

func TestTween(t *testing.T) {
	gray := animation.LerpColor(graphics.ColorBlack, graphics.ColorWhite, 0.5)
	if gray != graphics.RGB(128, 128, 128) {
		t.Errorf("LerpColor = %v", gray)
	}

	c := animation.NewAnimationController(time.Second)
	c.Value = 0.25
	if got := animation.TweenFloat64(10, 30).Transform(c); got != 15 {
		t.Errorf("Transform = %v, want 15", got)
	}
	if got := (&animation.Tween[string]{Begin: "a", End: "b"}).Evaluate(0.1); got != "b" {
		t.Errorf("tween without lerp = %q, want end value", got)
	}
}
