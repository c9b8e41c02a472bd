package animation

import (
	"math"

	"github.com/go-drift/rowkit/pkg/graphics"
)

// Tween maps a controller's value onto a range of T.
type Tween[T any] struct {
	Begin T
	End   T
	// Lerp interpolates between a and b at progress t.
	Lerp func(a, b T, t float64) T
}

// Evaluate returns the interpolated value at t.
func (tw *Tween[T]) Evaluate(t float64) T {
	if tw.Lerp == nil {
		return tw.End
	}
	return tw.Lerp(tw.Begin, tw.End, t)
}

// Transform evaluates the tween at the controller's current value.
func (tw *Tween[T]) Transform(controller *AnimationController) T {
	return tw.Evaluate(controller.Value)
}

// LerpFloat64 linearly interpolates between a and b.
func LerpFloat64(a, b, t float64) float64 {
	return a + (b-a)*t
}

// LerpColor interpolates each ARGB channel independently.
func LerpColor(a, b graphics.Color, t float64) graphics.Color {
	channel := func(shift uint) uint8 {
		from := float64(uint8(a >> shift))
		to := float64(uint8(b >> shift))
		return uint8(math.Round(LerpFloat64(from, to, t)))
	}
	return graphics.RGBA8(channel(16), channel(8), channel(0), channel(24))
}

// TweenFloat64 creates a tween for float64 values.
func TweenFloat64(begin, end float64) *Tween[float64] {
	return &Tween[float64]{Begin: begin, End: end, Lerp: LerpFloat64}
}

// TweenColor creates a tween for colors.
func TweenColor(begin, end graphics.Color) *Tween[graphics.Color] {
	return &Tween[graphics.Color]{Begin: begin, End: end, Lerp: LerpColor}
}
