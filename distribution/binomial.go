package distribution

import (
	"math"

	"github.com/ieee0824/betafn-go/special"
)

// Binomial is the number of successes in N independent trials that each
// succeed with probability P.
type Binomial struct {
	N int
	P float64
}

// CDF returns P(X <= k). Non-integer k is floored.
func (d Binomial) CDF(k float64) float64 {
	if d.N < 0 || !(d.P >= 0 && d.P <= 1) || math.IsNaN(k) {
		return math.NaN()
	}
	k = math.Floor(k)
	n := float64(d.N)
	switch {
	case k < 0:
		return 0
	case k >= n:
		return 1
	}
	// P(X <= k) = I_{1-p}(n-k, k+1) = 1 - I_p(k+1, n-k)
	return special.RegularizedBetaComplement(d.P, k+1, n-k)
}
