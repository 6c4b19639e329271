// Package distribution provides cumulative distribution functions whose
// closed forms reduce to the regularized incomplete Beta function.
package distribution

import (
	"math"

	"github.com/ieee0824/betafn-go/special"
)

// Beta is the Beta distribution on [0, 1] with shape parameters Alpha and Beta.
type Beta struct {
	Alpha float64
	Beta  float64
}

func (d Beta) valid() bool {
	return positiveFinite(d.Alpha) && positiveFinite(d.Beta)
}

// CDF returns P(X <= x).
func (d Beta) CDF(x float64) float64 {
	if !d.valid() || math.IsNaN(x) {
		return math.NaN()
	}
	switch {
	case x <= 0:
		return 0
	case x >= 1:
		return 1
	}
	return special.RegularizedBeta(x, d.Alpha, d.Beta)
}

// Survival returns P(X > x). It keeps full relative precision in the upper
// tail, where 1 - CDF(x) would round to zero.
func (d Beta) Survival(x float64) float64 {
	if !d.valid() || math.IsNaN(x) {
		return math.NaN()
	}
	switch {
	case x <= 0:
		return 1
	case x >= 1:
		return 0
	}
	return special.RegularizedBetaComplement(x, d.Alpha, d.Beta)
}

func positiveFinite(v float64) bool {
	return v > 0 && !math.IsInf(v, 1)
}
