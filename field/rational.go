package field

import "math/big"

// Rational is an exact fraction over arbitrary-precision integers.
//
// Invariant (established by every constructor and arithmetic method):
// the denominator is strictly positive and gcd(|num|, den) = 1. Reduction
// happens eagerly at construction, never lazily, so Equal can compare the
// (num, den) pair structurally.
//
// The Go zero value represents 0/1 and is fully usable. The internal
// big.Ints are treated as immutable after construction; values may be
// copied and shared freely across goroutines.
type Rational struct {
	num, den *big.Int
}

var (
	intZero = big.NewInt(0)
	intOne  = big.NewInt(1)
	intFive = big.NewInt(5)
)

// NewRational returns the reduced fraction p/q.
// Returns ErrDivisionByZero when q is zero.
func NewRational(p, q int64) (Rational, error) {
	return NewRationalBig(big.NewInt(p), big.NewInt(q))
}

// NewRationalBig returns the reduced fraction p/q over big integers.
// The inputs are copied, never retained. Returns ErrDivisionByZero when
// q is zero.
func NewRationalBig(p, q *big.Int) (Rational, error) {
	if q.Sign() == 0 {
		return Rational{}, ErrDivisionByZero
	}
	return reduce(p, q), nil
}

// Int returns the rational n/1.
func Int(n int64) Rational {
	return Rational{num: big.NewInt(n), den: big.NewInt(1)}
}

// reduce normalizes p/q: sign moved to the numerator, both divided by
// their gcd. Callers guarantee q != 0.
func reduce(p, q *big.Int) Rational {
	num := new(big.Int).Set(p)
	den := new(big.Int).Set(q)
	if den.Sign() < 0 {
		num.Neg(num)
		den.Neg(den)
	}
	if num.Sign() == 0 {
		return Rational{num: new(big.Int), den: big.NewInt(1)}
	}
	g := new(big.Int).GCD(nil, nil, new(big.Int).Abs(num), den)
	num.Quo(num, g)
	den.Quo(den, g)
	return Rational{num: num, den: den}
}

// p and q give nil-safe access to the numerator and denominator, mapping
// the Go zero value to the canonical 0/1.
func (r Rational) p() *big.Int {
	if r.num == nil {
		return intZero
	}
	return r.num
}

func (r Rational) q() *big.Int {
	if r.den == nil {
		return intOne
	}
	return r.den
}

// Num returns a copy of the reduced numerator.
func (r Rational) Num() *big.Int { return new(big.Int).Set(r.p()) }

// Den returns a copy of the reduced denominator (always > 0).
func (r Rational) Den() *big.Int { return new(big.Int).Set(r.q()) }

// Clone returns a deep copy.
func (r Rational) Clone() Rational {
	return Rational{num: new(big.Int).Set(r.p()), den: new(big.Int).Set(r.q())}
}

// Zero returns 0/1.
func (Rational) Zero() Rational { return Int(0) }

// One returns 1/1.
func (Rational) One() Rational { return Int(1) }

// Add returns r + o via cross-multiplication, re-normalized.
func (r Rational) Add(o Rational) Rational {
	num := new(big.Int).Mul(r.p(), o.q())
	num.Add(num, new(big.Int).Mul(o.p(), r.q()))
	return reduce(num, new(big.Int).Mul(r.q(), o.q()))
}

// Sub returns r − o.
func (r Rational) Sub(o Rational) Rational {
	num := new(big.Int).Mul(r.p(), o.q())
	num.Sub(num, new(big.Int).Mul(o.p(), r.q()))
	return reduce(num, new(big.Int).Mul(r.q(), o.q()))
}

// Mul returns r · o.
func (r Rational) Mul(o Rational) Rational {
	return reduce(new(big.Int).Mul(r.p(), o.p()), new(big.Int).Mul(r.q(), o.q()))
}

// Neg returns −r. The pair stays reduced, so no re-normalization is needed.
func (r Rational) Neg() Rational {
	return Rational{num: new(big.Int).Neg(r.p()), den: new(big.Int).Set(r.q())}
}

// Inv returns 1/r, or ErrDivisionByZero when the numerator is zero.
func (r Rational) Inv() (Rational, error) {
	if r.p().Sign() == 0 {
		return Rational{}, ErrDivisionByZero
	}
	return reduce(r.q(), r.p()), nil
}

// Div returns r / o; propagates ErrDivisionByZero from o.Inv().
func (r Rational) Div(o Rational) (Rational, error) {
	oi, err := o.Inv()
	if err != nil {
		return Rational{}, err
	}
	return r.Mul(oi), nil
}

// Equal reports exact structural equality of the reduced pairs. Valid
// because construction always normalizes.
func (r Rational) Equal(o Rational) bool {
	return r.p().Cmp(o.p()) == 0 && r.q().Cmp(o.q()) == 0
}

// IsZero reports whether r is exactly zero.
func (r Rational) IsZero() bool { return r.p().Sign() == 0 }

// Cmp compares r and o, returning -1, 0 or +1. Denominators are positive,
// so the sign of p₁q₂ − p₂q₁ decides.
func (r Rational) Cmp(o Rational) int {
	lhs := new(big.Int).Mul(r.p(), o.q())
	rhs := new(big.Int).Mul(o.p(), r.q())
	return lhs.Cmp(rhs)
}

// Real embeds r into float64 with correct rounding.
func (r Rational) Real() float64 {
	f, _ := new(big.Rat).SetFrac(r.p(), r.q()).Float64()
	return f
}

// rat returns r as a big.Rat, for high-precision embedding paths.
func (r Rational) rat() *big.Rat { return new(big.Rat).SetFrac(r.p(), r.q()) }

// String renders "p" for integers and "p/q" otherwise.
func (r Rational) String() string {
	if r.q().Cmp(intOne) == 0 {
		return r.p().String()
	}
	return r.p().String() + "/" + r.q().String()
}
