package trig

import "math"

const (
	// Pi is the circle constant written out to 50 significant digits.
	// The engine carries its own constant instead of math.Pi so the
	// conversion and reduction stages are self contained.
	Pi = 3.14159265358979323846264338327950288419716939937510

	// Epsilon is the cosine magnitude below which the tangent is
	// reported as undefined rather than divided out.
	Epsilon = 1e-12

	// SeriesTerms is the fixed number of Maclaurin terms used by Sin
	// and Cos. It is part of the numeric contract and not configurable.
	SeriesTerms = 15
)

const twoPi = 2 * Pi

// ToRadians converts an angle in degrees to radians.
func ToRadians(degrees float64) float64 {
	return degrees * Pi / 180.0
}

// NormalizeRadians reduces an angle to the equivalent value in [-Pi, Pi].
// It is idempotent: a value already in range comes back unchanged.
func NormalizeRadians(radians float64) float64 {
	r := math.Mod(radians, twoPi)
	if r > Pi {
		r -= twoPi
	}
	if r < -Pi {
		r += twoPi
	}
	return r
}

// Sin evaluates sine by a fixed 15-term Maclaurin series.
// The caller is expected to range reduce the argument first; far outside
// [-Pi, Pi] the truncated series loses accuracy quickly.
func Sin(x float64) float64 {
	term := x
	sum := x
	for n := 1; n < SeriesTerms; n++ {
		term *= -x * x / float64((2*n)*(2*n+1))
		sum += term
	}
	return sum
}

// Cos evaluates cosine by a fixed 15-term Maclaurin series.
func Cos(x float64) float64 {
	term := 1.0
	sum := 1.0
	for n := 1; n < SeriesTerms; n++ {
		term *= -x * x / float64((2*n-1)*(2*n))
		sum += term
	}
	return sum
}

// Tan computes the tangent of x as Sin(x)/Cos(x).
// When the series cosine magnitude is below Epsilon the quotient is
// meaningless, so ErrUndefinedTangent is returned instead of a huge float.
func Tan(x float64) (float64, error) {
	c := Cos(x)
	if math.Abs(c) < Epsilon {
		return 0, ErrUndefinedTangent
	}
	return Sin(x) / c, nil
}
