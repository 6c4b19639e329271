package special

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"gonum.org/v1/gonum/mathext"

	"github.com/ieee0824/betafn-go/internal/mathutil"
)

func TestLogBetaInvalid(t *testing.T) {
	nan := math.NaN()
	tests := []struct {
		name string
		a, b float64
	}{
		{"NaN/positive", nan, 2},
		{"positive/NaN", 1, nan},
		{"negative/positive", -1, 2},
		{"positive/negative", 1, -2},
		{"zero/positive", 0, 2},
		{"positive/zero", 1, 0},
		{"negative zero", math.Copysign(0, -1), 1},
		{"infinite", math.Inf(1), 1},
		{"negative infinite", 1, math.Inf(-1)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.True(t, math.IsNaN(LogBeta(tt.a, tt.b)))
		})
	}
}

func TestLogBetaKnownValue(t *testing.T) {
	assert.InDelta(t, -0.693147180559945, LogBeta(1, 2), 1e-14)
	assert.InDelta(t, math.Log(math.Pi), LogBeta(0.5, 0.5), 1e-15)
	assert.Equal(t, 0.0, LogBeta(1, 1))
}

func TestLogBetaReference(t *testing.T) {
	// want computed with 60 significant digits; ulps reflects the regime.
	tests := []struct {
		a, b, want float64
		ulps       float64
	}{
		// shifted
		{1.5, 1.5, -0.9347116558304358, 8},
		{1.25, 1.75, -0.875820138002244, 8},
		{2.5, 3.5, -3.301835269962053, 8},
		{3, 7, -5.529429087511423, 8},
		{4.5, 9.75, -8.509251484240655, 8},
		{1, 9, -2.1972245773362196, 8},
		// large-both
		{10, 10, -13.736229227036555, 4},
		{10, 25, -20.99427066400389, 4},
		{12.5, 100, -39.52188721466387, 4},
		{50, 50, -70.00271747688562, 4},
		{100, 1e3, -336.4348576477366, 4},
		{1e3, 1e3, -1388.4826016359023, 4},
		{1e4, 1e5, -33513.60927656998, 4},
		{1e5, 1e6, -335104.4969524304, 4},
		// direct
		{0.5, 4, -0.08961215868968714, 3},
		{0.5, 3, 0.06453852113757118, 3},
		{0.25, 0.75, 1.4913034761293729, 3},
		{0.125, 8, 1.7664287541275008, 3},
		// large-b
		{0.5, 20, -0.919251844406604, 8},
		{1.5, 30, -5.234941138250011, 8},
		{2.5, 15, -6.605210842735749, 8},
		{5, 20, -12.266791380564879, 8},
		{7.5, 500, -39.12372057268607, 8},
		{3.5, 5000, -28.61007739266078, 8},
		{8.75, 1e6, -110.81260004866292, 8},
		{0.001, 1e5, 6.895665964913892, 8},
	}
	for _, tt := range tests {
		got := LogBeta(tt.a, tt.b)
		assert.Truef(t, mathutil.WithinULPs(tt.want, got, tt.ulps),
			"LogBeta(%g, %g) = %.17g, want %.17g (%.1f ulps, regime %v)",
			tt.a, tt.b, got, tt.want, mathutil.ULPDistance(tt.want, got), classify(min(tt.a, tt.b), max(tt.a, tt.b)))
	}
}

var sweep = []float64{
	5e-324, 1e-300, 1e-10, 0.3, 0.5, 1, 1.25, 1.5, 2, 2.5, 3, 7.5,
	9.99, 10, 10.01, 64.33333333333334, 223, 999, 1000, 1001,
	1e6, 1e100, 1e300, math.MaxFloat64,
}

func TestLogBetaSymmetry(t *testing.T) {
	for _, a := range sweep {
		for _, b := range sweep {
			ab, ba := LogBeta(a, b), LogBeta(b, a)
			assert.Equalf(t, ab, ba, "a=%g b=%g", a, b)
		}
	}
}

func TestLogBetaNeverPanics(t *testing.T) {
	for _, a := range sweep {
		for _, b := range sweep {
			assert.NotPanicsf(t, func() {
				assert.Falsef(t, math.IsNaN(LogBeta(a, b)), "a=%g b=%g", a, b)
			}, "a=%g b=%g", a, b)
		}
	}
}

func TestLogBetaAgainstGonum(t *testing.T) {
	args := []float64{0.1, 0.5, 0.9, 1, 1.7, 2, 3.3, 6, 9.5, 10, 12, 25, 50}
	for _, a := range args {
		for _, b := range args {
			want := mathext.Lbeta(a, b)
			lab, _ := math.Lgamma(a + b)
			tol := 1e-14 * (1 + math.Abs(lab))
			assert.InDeltaf(t, want, LogBeta(a, b), tol, "a=%g b=%g", a, b)
		}
	}
}

func TestLogBetaRecurrence(t *testing.T) {
	// B(a+1, b) = B(a, b) a/(a+b), across regime boundaries.
	pairs := [][2]float64{{0.5, 9.5}, {1.5, 8.25}, {9.5, 9.5}, {9.5, 1e3}, {9.25, 2e3}, {30, 40}}
	for _, p := range pairs {
		a, b := p[0], p[1]
		want := LogBeta(a, b) + math.Log(a/(a+b))
		assert.InDeltaf(t, want, LogBeta(a+1, b), 1e-13*(1+math.Abs(want)), "a=%g b=%g", a, b)
	}
}

func TestBeta(t *testing.T) {
	assert.InDelta(t, 0.5, Beta(1, 2), 1e-15)
	assert.InDelta(t, math.Pi, Beta(0.5, 0.5), 1e-14)
	assert.InDelta(t, 1.0/60, Beta(3, 4), 1e-15)
	assert.Equal(t, 0.0, Beta(1e3, 1e3))
	assert.True(t, math.IsNaN(Beta(-1, 1)))
}

func TestClassify(t *testing.T) {
	tests := []struct {
		a, b float64
		want regime
	}{
		{0.5, 0.5, regimeDirect},
		{0.999, 9.999, regimeDirect},
		{1, 1, regimeShifted},
		{1, 9.999, regimeShifted},
		{9.999, 9.999, regimeShifted},
		{0.5, 10, regimeLargeB},
		{9.999, 1e300, regimeLargeB},
		{10, 10, regimeLargeBoth},
		{10, math.MaxFloat64, regimeLargeBoth},
	}
	for _, tt := range tests {
		assert.Equalf(t, tt.want, classify(tt.a, tt.b), "a=%g b=%g", tt.a, tt.b)
	}

	assert.Equal(t, "large-both", regimeLargeBoth.String())
	assert.Equal(t, "direct", regimeDirect.String())
	assert.Equal(t, "unknown", regime(42).String())
	assert.Len(t, regimeEval, len(regimeNames))
}
