package special

import "math"

// eulerGamma is the Euler–Mascheroni constant.
const eulerGamma = 0.57721566490153286060651209008240243

// zetaTerms is the number of Taylor coefficients kept for log Γ(2+y).
// With |y| <= 1/2 the k-th term is about 4^-k / k, so 30 terms reach
// well below one ulp.
const zetaTerms = 30

// zetaMinusOne returns ζ(k) - 1 for k >= 2 by Euler–Maclaurin summation:
// the first terms 2^-k ... 9^-k are added directly (smallest first) and the
// tail from n = 10 is replaced by its integral, half its first term and the
// Bernoulli corrections.
func zetaMinusOne(k int) float64 {
	const n = 10.0
	fk := float64(k)

	// e = (k)(k+1)...(k+2j-2) / (2j)! * n^-(k+2j-1), starting at j = 1.
	e := fk * math.Pow(n, -fk-1) / 2
	tail := 0.0
	for j, b := range bernoulli {
		tail += b * e
		m := float64(2*j + 2) // 2j for the next j
		e *= (fk + m - 1) * (fk + m) / (n * n * (m + 1) * (m + 2))
	}
	tail += math.Pow(n, 1-fk)/(fk-1) + math.Pow(n, -fk)/2

	sum := tail
	for i := n - 1; i >= 2; i-- {
		sum += math.Pow(i, -fk)
	}
	return sum
}

// lgamma2Coeffs[k-1] is the coefficient of y^k in the Taylor expansion
//
//	log Γ(2+y) = (1-γ) y + Σ_{k>=2} (-1)^k (ζ(k)-1)/k y^k
//
// which converges for |y| < 2.
var lgamma2Coeffs = func() [zetaTerms]float64 {
	var c [zetaTerms]float64
	c[0] = 1 - eulerGamma
	for k := 2; k <= zetaTerms; k++ {
		v := zetaMinusOne(k) / float64(k)
		if k%2 == 1 {
			v = -v
		}
		c[k-1] = v
	}
	return c
}()

// logGammaNear2 returns log Γ(2+y) for |y| <= 1/2. The result is zero at
// y = 0 and carries full relative precision near it.
func logGammaNear2(y float64) float64 {
	p := lgamma2Coeffs[zetaTerms-1]
	for k := zetaTerms - 2; k >= 0; k-- {
		p = p*y + lgamma2Coeffs[k]
	}
	return p * y
}

// logGammaSum returns log Γ(a+b) for 1 <= a, b <= 2.
//
// The sum a+b lies in [2, 4]; it is brought back next to 2 with at most two
// steps of Γ(x+1) = xΓ(x), so log Γ(a+b) keeps full relative precision where
// it vanishes instead of inheriting the absolute error of a general log-gamma.
func logGammaSum(a, b float64) (float64, error) {
	if err := checkRange("a", a, 1, 2); err != nil {
		return math.NaN(), err
	}
	if err := checkRange("b", b, 1, 2); err != nil {
		return math.NaN(), err
	}

	x := (a - 1) + (b - 1)
	switch {
	case x <= 0.5:
		return logGammaNear2(x), nil
	case x <= 1.5:
		return logGammaNear2(x-1) + math.Log1p(x), nil
	default:
		return logGammaNear2(x-2) + math.Log(x*(1+x)), nil
	}
}
