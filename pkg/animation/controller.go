package animation

import (
	"fmt"
	"time"
)

// AnimationStatus is where a controller is in its run.
type AnimationStatus int

const (
	// AnimationDismissed means stopped at the lower bound.
	AnimationDismissed AnimationStatus = iota
	// AnimationForward means moving toward the upper bound.
	AnimationForward
	// AnimationReverse means moving toward the lower bound.
	AnimationReverse
	// AnimationCompleted means stopped at the upper bound.
	AnimationCompleted
)

// String returns a human-readable representation of the animation status.
func (s AnimationStatus) String() string {
	switch s {
	case AnimationDismissed:
		return "dismissed"
	case AnimationForward:
		return "forward"
	case AnimationReverse:
		return "reverse"
	case AnimationCompleted:
		return "completed"
	default:
		return fmt.Sprintf("AnimationStatus(%d)", int(s))
	}
}

type repeatMode int

const (
	repeatNone repeatMode = iota
	repeatRestart
	repeatReverse
)

// AnimationController repeatedly moves Value between LowerBound and
// UpperBound over Duration. Listeners run on every tick. Call Dispose when
// done.
type AnimationController struct {
	// Value is the current animation value.
	Value float64

	// Duration is the time for one full run between the bounds.
	Duration time.Duration

	// Curve transforms linear progress. Nil means linear.
	Curve func(float64) float64

	LowerBound float64
	UpperBound float64

	status         AnimationStatus
	repeat         repeatMode
	ticker         *Ticker
	target         float64
	startValue     float64
	listeners      map[int]func()
	nextListenerID int
}

// NewAnimationController creates a dismissed controller over [0, 1].
func NewAnimationController(duration time.Duration) *AnimationController {
	return &AnimationController{
		Duration:   duration,
		UpperBound: 1,
		Curve:      LinearCurve,
		listeners:  make(map[int]func()),
	}
}

// Repeat runs from the lower bound to the upper bound until stopped. With
// reverse set, each run turns around at the bound it reached; otherwise the
// value jumps back to the lower bound and starts over.
func (c *AnimationController) Repeat(reverse bool) {
	c.repeat = repeatRestart
	if reverse {
		c.repeat = repeatReverse
	}
	c.Value = c.LowerBound
	c.animateTo(c.UpperBound, AnimationForward)
}

// IsRepeating reports whether the controller is running in Repeat mode.
func (c *AnimationController) IsRepeating() bool {
	return c.repeat != repeatNone && c.ticker != nil
}

func (c *AnimationController) animateTo(target float64, direction AnimationStatus) {
	if c.ticker != nil {
		c.ticker.Stop()
	}
	c.target = target
	c.startValue = c.Value
	c.status = direction
	c.ticker = NewTicker(c.tick)
	c.ticker.Start()
}

func (c *AnimationController) tick(elapsed time.Duration) {
	progress := 1.0
	if c.Duration > 0 {
		progress = min(1, float64(elapsed)/float64(c.Duration))
	}
	eased := progress
	if c.Curve != nil {
		eased = c.Curve(progress)
	}
	c.Value = c.startValue + (c.target-c.startValue)*eased
	c.notifyListeners()

	if progress < 1 {
		return
	}
	switch c.repeat {
	case repeatRestart:
		c.Value = c.LowerBound
		c.startValue = c.LowerBound
		c.ticker.Restart()
	case repeatReverse:
		c.startValue = c.Value
		if c.status == AnimationForward {
			c.target = c.LowerBound
			c.status = AnimationReverse
		} else {
			c.target = c.UpperBound
			c.status = AnimationForward
		}
		c.ticker.Restart()
	default:
		c.Stop()
	}
}

// Reset stops the controller and sets the value to the lower bound.
func (c *AnimationController) Reset() {
	c.Stop()
	c.Value = c.LowerBound
	c.status = AnimationDismissed
	c.notifyListeners()
}

// Stop stops at the current value. The status settles to dismissed or
// completed when the value sits on a bound.
func (c *AnimationController) Stop() {
	c.repeat = repeatNone
	if c.ticker != nil {
		c.ticker.Stop()
		c.ticker = nil
	}
	switch {
	case c.Value <= c.LowerBound:
		c.status = AnimationDismissed
	case c.Value >= c.UpperBound:
		c.status = AnimationCompleted
	}
}

// Status returns the current animation status.
func (c *AnimationController) Status() AnimationStatus {
	return c.status
}

// IsAnimating reports whether the controller is ticking.
func (c *AnimationController) IsAnimating() bool {
	return c.ticker != nil
}

// AddListener registers fn to run whenever the value changes. It returns
// an unsubscribe function.
func (c *AnimationController) AddListener(fn func()) func() {
	id := c.nextListenerID
	c.nextListenerID++
	c.listeners[id] = fn
	return func() { delete(c.listeners, id) }
}

func (c *AnimationController) notifyListeners() {
	for _, listener := range c.listeners {
		listener()
	}
}

// Dispose stops the controller and drops its listeners.
func (c *AnimationController) Dispose() {
	c.Stop()
	clear(c.listeners)
}
