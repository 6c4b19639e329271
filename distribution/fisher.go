package distribution

import (
	"math"

	"github.com/ieee0824/betafn-go/special"
)

// F is Snedecor's F distribution with D1 and D2 degrees of freedom.
type F struct {
	D1 float64
	D2 float64
}

// CDF returns P(X <= x).
func (d F) CDF(x float64) float64 {
	if !positiveFinite(d.D1) || !positiveFinite(d.D2) || math.IsNaN(x) {
		return math.NaN()
	}
	switch {
	case x <= 0:
		return 0
	case math.IsInf(x, 1):
		return 1
	}
	y := d.D1 * x
	return special.RegularizedBeta(y/(y+d.D2), d.D1/2, d.D2/2)
}
