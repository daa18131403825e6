package field

import (
	"math"
	"strconv"
)

// Eps is the tolerance used by Real.Equal. The Real field models
// approximate computation, so equality of two values that drifted apart
// by rounding must still hold.
const Eps = 1e-10

// Real wraps a float64 so that approximate arithmetic satisfies the same
// Element capability set as the exact fields. It is the terminal
// embedding target: Real() is the identity on Real.
//
// Two distinct equality contracts live here on purpose. Equal is
// epsilon-tolerant (Eps); IsZero is an exact v == 0 test. Pivot and
// singularity checks upstream go through IsZero, keeping the epsilon
// tolerance out of exact-zero decisions.
type Real struct {
	v float64
}

// NewReal wraps v.
func NewReal(v float64) Real { return Real{v: v} }

// Float returns the wrapped float64.
func (x Real) Float() float64 { return x.v }

// Clone returns a copy.
func (x Real) Clone() Real { return x }

// Zero returns 0.
func (Real) Zero() Real { return Real{} }

// One returns 1.
func (Real) One() Real { return Real{v: 1} }

// Add returns x + o.
func (x Real) Add(o Real) Real { return Real{v: x.v + o.v} }

// Sub returns x − o.
func (x Real) Sub(o Real) Real { return Real{v: x.v - o.v} }

// Mul returns x · o.
func (x Real) Mul(o Real) Real { return Real{v: x.v * o.v} }

// Neg returns −x.
func (x Real) Neg() Real { return Real{v: -x.v} }

// Inv returns 1/x, or ErrDivisionByZero when x is exactly zero.
func (x Real) Inv() (Real, error) {
	if x.v == 0 {
		return Real{}, ErrDivisionByZero
	}
	return Real{v: 1 / x.v}, nil
}

// Div returns x / o, or ErrDivisionByZero when o is exactly zero.
func (x Real) Div(o Real) (Real, error) {
	if o.v == 0 {
		return Real{}, ErrDivisionByZero
	}
	return Real{v: x.v / o.v}, nil
}

// Equal reports |x − o| ≤ Eps.
func (x Real) Equal(o Real) bool { return math.Abs(x.v-o.v) <= Eps }

// IsZero reports exact equality with zero (no tolerance).
func (x Real) IsZero() bool { return x.v == 0 }

// Real is the identity embedding.
func (x Real) Real() float64 { return x.v }

// String renders the shortest float64 representation.
func (x Real) String() string { return strconv.FormatFloat(x.v, 'g', -1, 64) }
