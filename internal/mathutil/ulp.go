package mathutil

import "math"

// ULP returns the unit in the last place of x: the gap between |x| and the
// next larger float64. ULP(±Inf) is +Inf and ULP(NaN) is NaN.
func ULP(x float64) float64 {
	x = math.Abs(x)
	if math.IsInf(x, 0) || math.IsNaN(x) {
		return x
	}
	if x == math.MaxFloat64 {
		return x - math.Nextafter(x, 0)
	}
	return math.Nextafter(x, math.Inf(1)) - x
}

// ULPDistance returns |got - want| measured in units of ULP(want).
// Two NaNs are zero apart; a NaN against a number is +Inf apart.
func ULPDistance(want, got float64) float64 {
	switch {
	case math.IsNaN(want) && math.IsNaN(got):
		return 0
	case math.IsNaN(want) || math.IsNaN(got):
		return math.Inf(1)
	case want == got:
		return 0
	}
	return math.Abs(got-want) / ULP(want)
}

// WithinULPs reports whether got is within n ulps of want.
func WithinULPs(want, got float64, n float64) bool {
	return ULPDistance(want, got) <= n
}

// RelErr returns |got - want| / |want|, or |got| when want is zero.
func RelErr(want, got float64) float64 {
	if want == 0 {
		return math.Abs(got)
	}
	return math.Abs((got - want) / want)
}
