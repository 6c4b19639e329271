package distribution

import (
	"math"

	"github.com/ieee0824/betafn-go/special"
)

// StudentsT is the standard Student's t distribution with Nu degrees of freedom.
type StudentsT struct {
	Nu float64
}

// CDF returns P(T <= t).
func (d StudentsT) CDF(t float64) float64 {
	if !positiveFinite(d.Nu) || math.IsNaN(t) {
		return math.NaN()
	}
	switch {
	case math.IsInf(t, -1):
		return 0
	case math.IsInf(t, 1):
		return 1
	case t == 0:
		return 0.5
	}

	// tail = P(T > |t|)
	var tail float64
	t2 := t * t
	if t2 < d.Nu {
		// 1 - nu/(nu+t²) loses digits here; use the complementary argument.
		tail = 0.5 * special.RegularizedBetaComplement(t2/(d.Nu+t2), 0.5, d.Nu/2)
	} else {
		tail = 0.5 * special.RegularizedBeta(d.Nu/(d.Nu+t2), d.Nu/2, 0.5)
	}
	if t < 0 {
		return tail
	}
	return 1 - tail
}
