package special

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTwoProd(t *testing.T) {
	e := math.Ldexp(1, -30)
	p := twoProd(1+e, 1-e)
	assert.Equal(t, 1.0, p.hi)
	assert.Equal(t, -math.Ldexp(1, -60), p.lo)

	s := twoSum(1, 1e-20)
	assert.Equal(t, doubleDouble{1, 1e-20}, s)
}

func TestGamma2Coeffs(t *testing.T) {
	assert.Equal(t, doubleDouble{1, 0}, gamma2Coeffs[0])
	assert.InDelta(t, 1-eulerGamma, gamma2Coeffs[1].hi, 1e-17)

	// The coefficients alternate in sign and halve from one to the next once
	// the pole of Γ(2+y) at y = -2 dominates.
	for k := 20; k < len(gamma2Coeffs); k++ {
		ratio := gamma2Coeffs[k].hi / gamma2Coeffs[k-1].hi
		assert.InDeltaf(t, -0.5, ratio, 1e-3, "k=%d", k)
	}
}

func TestGammaDDFactorials(t *testing.T) {
	f := 1.0
	for n := 1; n <= 11; n++ {
		g := gammaDD(float64(n))
		assert.Equalf(t, doubleDouble{f, 0}, g, "n=%d", n)
		f *= float64(n)
	}
}

func TestGammaDDIdentities(t *testing.T) {
	// Γ(5/2) = 3/2 Γ(3/2).
	d := gammaDD(2.5).add(gammaDD(1.5).mul(doubleDouble{-1.5, 0}))
	assert.InDelta(t, 0, d.hi, 1e-26)

	// Γ(3/2)² = π/4, with π carried to double-double precision.
	g := gammaDD(1.5)
	quarterPi := doubleDouble{math.Pi / 4, 1.2246467991473532e-16 / 4}
	d = g.mul(g).add(doubleDouble{-quarterPi.hi, -quarterPi.lo})
	assert.InDelta(t, 0, d.hi, 1e-26)
}

func TestGammaDDAgainstGamma(t *testing.T) {
	for _, x := range []float64{1e-300, 1e-8, 0.1, 0.3, 0.7, 1.2, 2.9, 4.4, 7.7, 10.3} {
		assert.InEpsilonf(t, math.Gamma(x), gammaDD(x).hi, 1e-15, "x=%g", x)
	}
}
