package animation

import "math"

// Curves map linear progress t in [0, 1] to eased progress. Assign one to
// an [AnimationController]'s Curve field.

// LinearCurve returns t unchanged.
func LinearCurve(t float64) float64 {
	return t
}

// EaseInOut starts and ends slowly. Equivalent to CSS ease-in-out.
var EaseInOut = cubicBezier(0.42, 0.0, 0.58, 1.0)

// cubicBezier returns an easing function equivalent to CSS
// cubic-bezier(x1, y1, x2, y2).
func cubicBezier(x1, y1, x2, y2 float64) func(float64) float64 {
	return func(t float64) float64 {
		if t <= 0 {
			return 0
		}
		if t >= 1 {
			return 1
		}

		// Solve x(u) = t with Newton's method, then fall back to bisection.
		u := t
		for range 8 {
			x := bezier(x1, x2, u) - t
			if math.Abs(x) < 1e-7 {
				return bezier(y1, y2, clampUnit(u))
			}
			dx := bezierSlope(x1, x2, u)
			if math.Abs(dx) < 1e-7 {
				break
			}
			u -= x / dx
		}

		low, high := 0.0, 1.0
		u = clampUnit(u)
		for range 16 {
			x := bezier(x1, x2, u) - t
			if math.Abs(x) < 1e-7 {
				break
			}
			if x > 0 {
				high = u
			} else {
				low = u
			}
			u = (low + high) / 2
		}
		return bezier(y1, y2, u)
	}
}

func bezier(a, b, t float64) float64 {
	inv := 1 - t
	return 3*inv*inv*t*a + 3*inv*t*t*b + t*t*t
}

func bezierSlope(a, b, t float64) float64 {
	inv := 1 - t
	return 3*inv*inv*a + 6*inv*t*(b-a) + 3*t*t*(1-b)
}

func clampUnit(v float64) float64 {
	return max(0, min(1, v))
}
