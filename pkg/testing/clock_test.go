package testing

import (
	"testing"
	"time"

	"github.com/go-drift/rowkit/pkg/animation"
)

func TestFakeClock_Advance(t *testing.T) {
	clk := NewFakeClock()
	start := clk.Now()

	clk.Advance(100 * time.Millisecond)
	elapsed := clk.Now().Sub(start)

	if elapsed != 100*time.Millisecond {
		t.Errorf("expected 100ms elapsed, got %v", elapsed)
	}
}

func TestFakeClock_Set(t *testing.T) {
	clk := NewFakeClock()
	target := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

	clk.Set(target)
	if !clk.Now().Equal(target) {
		t.Errorf("expected %v, got %v", target, clk.Now())
	}
}

func TestFakeClock_FrameStepsTickers(t *testing.T) {
	clk := UseFakeClock(t)
	if !animation.Now().Equal(clk.Now()) {
		t.Fatal("expected UseFakeClock to install the clock")
	}

	var got []time.Duration
	ticker := animation.NewTicker(func(elapsed time.Duration) {
		got = append(got, elapsed)
	})
	ticker.Start()
	defer ticker.Stop()

	clk.Frame(16 * time.Millisecond)
	clk.Frame(16 * time.Millisecond)

	if len(got) != 2 || got[0] != 16*time.Millisecond || got[1] != 32*time.Millisecond {
		t.Errorf("elapsed per frame = %v, want [16ms 32ms]", got)
	}
}
