package animation

// Curve transforms animation progress in [0, 1] into eased progress.
type Curve func(t float64) float64

// LinearCurve returns linear progress (no easing).
func LinearCurve(t float64) float64 {
	return t
}

// QuadraticEaseIn starts slowly and accelerates (t squared).
func QuadraticEaseIn(t float64) float64 {
	return t * t
}

// Ease maps progress p through the quadratic ease-in curve onto the
// range [lo, hi]: Ease(0, lo, hi) == lo and Ease(1, lo, hi) == hi.
// Pure; p outside [0, 1] extrapolates along the same parabola.
func Ease(p, lo, hi float64) float64 {
	return QuadraticEaseIn(p)*(hi-lo) + lo
}
