package special

import "math"

// regime selects the evaluation path of LogBeta for an ordered pair a <= b.
// The four regimes partition the positive quadrant.
type regime int

const (
	// regimeDirect: a < 1 and b < 10.
	regimeDirect regime = iota
	// regimeShifted: 1 <= a and b < 10; both arguments are shifted into (1, 2].
	regimeShifted
	// regimeLargeB: a < 10 <= b.
	regimeLargeB
	// regimeLargeBoth: 10 <= a.
	regimeLargeBoth
)

var regimeNames = [...]string{
	regimeDirect:    "direct",
	regimeShifted:   "shifted",
	regimeLargeB:    "large-b",
	regimeLargeBoth: "large-both",
}

func (r regime) String() string {
	if r < 0 || int(r) >= len(regimeNames) {
		return "unknown"
	}
	return regimeNames[r]
}

var regimeEval = [...]func(a, b float64) float64{
	regimeDirect:    logBetaDirect,
	regimeShifted:   logBetaShifted,
	regimeLargeB:    logBetaLargeB,
	regimeLargeBoth: logBetaLargeBoth,
}

// classify returns the regime of a pair with 0 < a <= b.
func classify(a, b float64) regime {
	switch {
	case a >= 10:
		return regimeLargeBoth
	case b >= 10:
		return regimeLargeB
	case a >= 1:
		return regimeShifted
	default:
		return regimeDirect
	}
}

// LogBeta returns log B(a, b) = log Γ(a) + log Γ(b) - log Γ(a+b).
//
// The result is NaN if either argument is NaN, infinite, zero or negative.
// LogBeta(a, b) and LogBeta(b, a) are bitwise identical.
func LogBeta(a, b float64) float64 {
	if !validShape(a) || !validShape(b) {
		return math.NaN()
	}
	lo, hi := min(a, b), max(a, b)
	return regimeEval[classify(lo, hi)](lo, hi)
}

// Beta returns B(a, b) = Γ(a)Γ(b)/Γ(a+b), or NaN for invalid arguments.
// It underflows to zero once log B(a, b) drops below about -745.
func Beta(a, b float64) float64 {
	return math.Exp(LogBeta(a, b))
}

func validShape(v float64) bool {
	return v > 0 && !math.IsInf(v, 1)
}

func logGamma(x float64) float64 {
	v, _ := math.Lgamma(x)
	return v
}

// must unwraps a helper result inside the dispatcher, where every helper is
// called within its domain.
func must(v float64, err error) float64 {
	if err != nil {
		panic("special: " + err.Error())
	}
	return v
}

// logBetaDirect handles a < 1, b < 10. B(a, b) is close to one for much of
// this range, where a relative error of one ulp in Γ(a)Γ(b)/Γ(a+b) costs many
// ulps of its logarithm, so the ratio is formed in double-double precision
// and rounded once by the final log. Log-gammas are used only when Γ(a)
// overflows for subnormal a.
func logBetaDirect(a, b float64) float64 {
	g := gammaDD(a).mul(gammaDD(b).div(gammaDD(a + b)))
	if g.hi > 0 && !math.IsInf(g.hi, 1) && !math.IsNaN(g.lo) {
		return math.Log(g.hi) + g.lo/g.hi
	}
	return logGamma(a) + logGamma(b) - logGamma(a+b)
}

// logBetaShifted handles 1 <= a <= b < 10. Using
//
//	B(a, b) = (a-1)/(a+b-1) B(a-1, b)
//
// a and then b are reduced into (1, 2], where logGammaSum applies.
func logBetaShifted(a, b float64) float64 {
	prodA := 1.0
	ared := a
	for ared > 2 {
		ared--
		h := ared / b
		prodA *= h / (1 + h)
	}
	prodB := 1.0
	bred := b
	for bred > 2 {
		bred--
		prodB *= bred / (ared + bred)
	}
	return math.Log(prodA) + math.Log(prodB) +
		(logGamma(ared) + (logGamma(bred) - must(logGammaSum(ared, bred))))
}

// logBetaLargeB handles a < 10 <= b. a is reduced to at most 2, then
// log Γ(b) - log Γ(a+b) comes from the asymptotic helper.
func logBetaLargeB(a, b float64) float64 {
	if a <= 2 {
		return logGamma(a) + must(logGammaMinusLogGammaSum(a, b))
	}
	if b > 1000 {
		// Each factor ared/(ared+b) is scaled by b so the product cannot
		// underflow; the n powers of b come back in log space.
		n := int(math.Floor(a - 1))
		prod := 1.0
		ared := a
		for range n {
			ared--
			prod *= ared / (1 + ared/b)
		}
		return (math.Log(prod) - float64(n)*math.Log(b)) +
			(logGamma(ared) + must(logGammaMinusLogGammaSum(ared, b)))
	}
	prod := 1.0
	ared := a
	for ared > 2 {
		ared--
		h := ared / b
		prod *= h / (1 + h)
	}
	return math.Log(prod) + logGamma(ared) + must(logGammaMinusLogGammaSum(ared, b))
}

// logBetaLargeBoth handles 10 <= a <= b with Stirling's formula written in
// terms of h = a/b:
//
//	log B(a, b) = -log(b)/2 + log(2π)/2 + w - u - v
//	u = -(a - 1/2) log(h/(1+h)),  v = b log(1+h)
//
// where w = δ(a) + δ(b) - δ(a+b). No log-gamma is evaluated.
func logBetaLargeBoth(a, b float64) float64 {
	w := must(sumDeltaMinusDeltaSum(a, b))
	h := a / b
	c := h / (1 + h)
	u := -(a - 0.5) * math.Log(c)
	v := b * math.Log1p(h)
	base := (-0.5*math.Log(b) + halfLogTwoPi) + w
	if u <= v {
		return (base - u) - v
	}
	return (base - v) - u
}
