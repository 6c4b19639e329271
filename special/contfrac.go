package special

import "math"

// lentzTiny replaces a vanishing denominator in the Lentz recurrences.
const lentzTiny = 1e-50

// ContinuedFraction is a continued fraction
//
//	A(0) + B(1)/(A(1) + B(2)/(A(2) + B(3)/(A(3) + ...)))
//
// whose partial numerators and denominators may depend on a parameter x.
type ContinuedFraction struct {
	A func(n int, x float64) float64
	B func(n int, x float64) float64
}

// Evaluate computes the continued fraction at x with the modified Lentz
// method. It stops once two successive convergents agree to within epsilon
// (relative) and fails with a *ConvergenceError after maxIterations steps, or
// as soon as a convergent becomes infinite or NaN.
//
// The state is three running values and an index; evaluation never recurses.
func (cf ContinuedFraction) Evaluate(x, epsilon float64, maxIterations int) (float64, error) {
	h := cf.A(0, x)
	if math.Abs(h) < lentzTiny {
		h = lentzTiny
	}
	c := h
	d := 0.0

	for n := 1; n <= maxIterations; n++ {
		a := cf.A(n, x)
		b := cf.B(n, x)

		d = a + b*d
		if math.Abs(d) < lentzTiny {
			d = lentzTiny
		}
		c = a + b/c
		if math.Abs(c) < lentzTiny {
			c = lentzTiny
		}
		d = 1 / d
		step := c * d
		h *= step

		if math.IsInf(h, 0) {
			return math.NaN(), &ConvergenceError{X: x, Iterations: n, Reason: "infinite convergent"}
		}
		if math.IsNaN(h) {
			return math.NaN(), &ConvergenceError{X: x, Iterations: n, Reason: "NaN convergent"}
		}
		if math.Abs(step-1) < epsilon {
			return h, nil
		}
	}
	return math.NaN(), &ConvergenceError{X: x, Iterations: maxIterations, Reason: "max iterations"}
}
