package special

import "math"

// doubleDouble is an unevaluated sum hi + lo with |lo| <= ulp(hi)/2,
// carrying about 106 bits of significand.
type doubleDouble struct {
	hi, lo float64
}

// twoSum returns s = fl(a+b) and the rounding error e, so that a+b = s+e exactly.
func twoSum(a, b float64) doubleDouble {
	s := a + b
	bb := s - a
	e := (a - (s - bb)) + (b - bb)
	return doubleDouble{s, e}
}

// fastTwoSum is twoSum for |a| >= |b|.
func fastTwoSum(a, b float64) doubleDouble {
	s := a + b
	return doubleDouble{s, b - (s - a)}
}

// twoProd returns the product of a and b with its exact rounding error.
func twoProd(a, b float64) doubleDouble {
	p := a * b
	return doubleDouble{p, math.FMA(a, b, -p)}
}

func (x doubleDouble) add(y doubleDouble) doubleDouble {
	s := twoSum(x.hi, y.hi)
	s.lo += x.lo + y.lo
	return fastTwoSum(s.hi, s.lo)
}

func (x doubleDouble) mul(y doubleDouble) doubleDouble {
	p := twoProd(x.hi, y.hi)
	p.lo += x.hi*y.lo + x.lo*y.hi
	return fastTwoSum(p.hi, p.lo)
}

// div is long division with three partial quotients.
func (x doubleDouble) div(y doubleDouble) doubleDouble {
	q1 := x.hi / y.hi
	r := x.add(doubleDouble{-q1, 0}.mul(y))
	q2 := r.hi / y.hi
	r = r.add(doubleDouble{-q2, 0}.mul(y))
	q3 := r.hi / y.hi
	return fastTwoSum(q1, q2).add(doubleDouble{q3, 0})
}

// gamma2Coeffs[k] is the coefficient of y^k in Γ(2+y), split into a leading
// double and its correction. They are the exponential of the series of
// lgamma2Coeffs, evaluated with 70 significant digits.
var gamma2Coeffs = [...]doubleDouble{
	{1.0, 0.0},
	{0.42278433509846713, 4.942915152430645e-18},
	{0.4118403304264397, 1.2103393958429376e-18},
	{0.08157691924708627, 5.271149295793965e-19},
	{0.0742490107535139, 3.974729819595808e-18},
	{-0.00026698206874501475, -1.5403592712871224e-20},
	{0.011154045718130992, -7.080895262887566e-19},
	{-0.0028526458211553408, -3.61047310747762e-20},
	{0.002103933340697388, 6.690455008798711e-20},
	{-0.0009195738388259458, -1.9796507167047744e-20},
	{0.0004903884508225733, -3.228209868059536e-20},
	{-0.00024094143582384595, -1.0709401836169619e-20},
	{0.0001216738065319887, 4.811156158228414e-21},
	{-6.079289131104111e-05, 8.819547978599213e-22},
	{3.0453557037787663e-05, 3.493413838768947e-23},
	{-1.5234935894944246e-05, 5.521253196875138e-22},
	{7.621779696167112e-06, 6.920196579997447e-23},
	{-3.8121104000961737e-06, 1.680722861188251e-22},
	{1.906491657580023e-06, -5.790649026408222e-23},
	{-9.533877802656656e-07, -5.210986553292968e-25},
	{4.7674169458185777e-07, -1.3096845292005306e-23},
	{-2.3838673864099568e-07, -3.6306870099052795e-24},
	{1.1919867478784573e-07, -3.044512593157479e-24},
	{-5.9601105815329215e-08, 2.1355700640716353e-24},
	{2.980114259860971e-08, 1.2804760827076625e-24},
	{-1.4900767892691513e-08, 2.1170579770184687e-25},
	{7.4504494874176175e-09, 1.728455194763229e-25},
	{-3.7252465929722097e-09, 1.7019282339006934e-25},
	{1.8626305801577528e-09, -2.982563598116885e-26},
	{-9.313177181132121e-10, -4.532554664688023e-26},
	{4.656596684375421e-10, 1.1797653646703174e-26},
	{-2.3283010402143966e-10, 2.6452633058139898e-27},
	{1.1641514194720041e-10, 4.289230477983851e-28},
	{-5.820760095299144e-11, 1.060289759823197e-27},
	{2.9103810469767247e-11, -6.140125423329293e-28},
	{-1.4551908566009414e-11, 1.4059180083372825e-28},
	{7.2759553933887915e-12, 1.3536690142484064e-28},
	{-3.6379780668246294e-12, 5.362503473144676e-29},
	{1.8189891567896106e-12, -2.41143033433258e-29},
	{-9.094946195207084e-13, -4.1747534918973346e-30},
	{4.5474732346902306e-13, -1.2994550285662868e-29},
	{-2.2737366630407642e-13, 3.8429354640686935e-30},
	{1.1368683467522867e-13, -5.3905164382688346e-30},
	{-5.684341784534502e-14, 1.7772943616421966e-30},
	{2.8421709091916207e-14, 1.515106601805227e-30},
}

// gammaNear2 returns Γ(2+y) for |y| <= 1/2 with a relative error near 1e-27.
func gammaNear2(y doubleDouble) doubleDouble {
	p := gamma2Coeffs[len(gamma2Coeffs)-1]
	for k := len(gamma2Coeffs) - 2; k >= 0; k-- {
		p = p.mul(y).add(gamma2Coeffs[k])
	}
	return p
}

// gammaDD returns Γ(x) in double-double precision for 0 < x < 12. The
// argument is moved into [1.5, 2.5] by the recurrence Γ(x+1) = xΓ(x); each
// shifted argument x+k is kept exactly as a double-double.
func gammaDD(x float64) doubleDouble {
	if x < 1.5 {
		n := int(math.Ceil(1.5 - x))
		den := doubleDouble{x, 0}
		for k := 1; k < n; k++ {
			den = den.mul(twoSum(x, float64(k)))
		}
		return gammaNear2(twoSum(x, float64(n-2))).div(den)
	}
	num := doubleDouble{1, 0}
	n := 0
	for x-float64(n) > 2.5 {
		n++
		num = num.mul(twoSum(x, float64(-n)))
	}
	return num.mul(gammaNear2(twoSum(x, float64(-n-2))))
}
