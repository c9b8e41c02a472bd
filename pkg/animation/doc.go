// Package animation drives time-based values for view effects such as the
// loading shimmer.
//
// An [AnimationController] produces a value that moves between LowerBound
// and UpperBound over Duration, optionally eased by a curve. Controllers
// run on [Ticker]s, which the host advances once per frame with
// [StepTickers]. Time comes from the package [Clock]; tests replace it with
// [SetClock] to step animations deterministically.
//
//	c := animation.NewAnimationController(1500 * time.Millisecond)
//	c.Curve = animation.EaseInOut
//	c.AddListener(func() { placeholder.Phase = c.Value })
//	c.Repeat()
//	...
//	c.Dispose()
package animation
