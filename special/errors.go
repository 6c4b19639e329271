package special

import (
	"errors"
	"fmt"
)

var (
	// ErrOutOfRange is matched by errors returned when an argument lies
	// outside a closed interval.
	ErrOutOfRange = errors.New("argument out of range")
	// ErrTooSmall is matched by errors returned when an argument is below
	// its lower bound.
	ErrTooSmall = errors.New("argument too small")
	// ErrNoConvergence is matched by errors returned when a continued
	// fraction fails to converge.
	ErrNoConvergence = errors.New("continued fraction did not converge")
)

// RangeError reports an argument outside [Lower, Upper].
type RangeError struct {
	Arg   string
	Value float64
	Lower float64
	Upper float64
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("%s = %g out of range [%g, %g]", e.Arg, e.Value, e.Lower, e.Upper)
}

func (e *RangeError) Unwrap() error { return ErrOutOfRange }

// TooSmallError reports an argument below Bound.
type TooSmallError struct {
	Arg   string
	Value float64
	Bound float64
}

func (e *TooSmallError) Error() string {
	return fmt.Sprintf("%s = %g is smaller than the minimum (%g)", e.Arg, e.Value, e.Bound)
}

func (e *TooSmallError) Unwrap() error { return ErrTooSmall }

// ConvergenceError reports a continued fraction that stopped without
// meeting its tolerance.
type ConvergenceError struct {
	X          float64
	Iterations int
	Reason     string // "max iterations", "infinite convergent" or "NaN convergent"
}

func (e *ConvergenceError) Error() string {
	return fmt.Sprintf("continued fraction at x = %g: %s after %d iterations", e.X, e.Reason, e.Iterations)
}

func (e *ConvergenceError) Unwrap() error { return ErrNoConvergence }

func checkRange(arg string, v, lo, hi float64) error {
	if !(v >= lo && v <= hi) {
		return &RangeError{Arg: arg, Value: v, Lower: lo, Upper: hi}
	}
	return nil
}

func checkAtLeast(arg string, v, bound float64) error {
	if !(v >= bound) {
		return &TooSmallError{Arg: arg, Value: v, Bound: bound}
	}
	return nil
}
