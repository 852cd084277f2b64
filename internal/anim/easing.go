package anim

import "math"

// Easing maps linear progress t ∈ [0, 1] to eased progress.
type Easing func(t float64) float64

// Linear performs no easing.
func Linear(t float64) float64 {
	return t
}

// PowerIn accelerates with exponent n+1 (power1 = quadratic).
func PowerIn(n int) Easing {
	exp := float64(n + 1)
	return func(t float64) float64 {
		return math.Pow(t, exp)
	}
}

// PowerOut decelerates with exponent n+1.
func PowerOut(n int) Easing {
	exp := float64(n + 1)
	return func(t float64) float64 {
		return 1 - math.Pow(1-t, exp)
	}
}

// PowerInOut accelerates through the first half and decelerates through the
// second.
func PowerInOut(n int) Easing {
	exp := float64(n + 1)
	return func(t float64) float64 {
		if t < 0.5 {
			return math.Pow(2*t, exp) / 2
		}
		return 1 - math.Pow(2*(1-t), exp)/2
	}
}

var (
	Power2Out   = PowerOut(2)
	Power3In    = PowerIn(3)
	Power3InOut = PowerInOut(3)
	Power4Out   = PowerOut(4)
)

// Lerp interpolates between a and b.
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

func clamp01(t float64) float64 {
	if t < 0 {
		return 0
	}
	if t > 1 {
		return 1
	}
	return t
}
