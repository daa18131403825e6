package field

import "math/big"

// Quadratic is an element of ℚ(√5), the degree-2 extension of the
// rationals: the pair (a, b) represents a + b·√5.
//
// There is no reduction invariant beyond each coefficient being a valid
// Rational. The field norm N(x) = a² − 5b² vanishes only at the zero
// element (√5 is irrational), which is what makes Inv total away from zero.
//
// The Go zero value represents 0 + 0·√5.
type Quadratic struct {
	a, b Rational // a + b·√5
}

// NewQuadratic returns the element a + b·√5.
func NewQuadratic(a, b Rational) Quadratic { return Quadratic{a: a, b: b} }

// QuadInt returns the element n + 0·√5.
func QuadInt(n int64) Quadratic { return Quadratic{a: Int(n)} }

// Sqrt5 returns √5.
func Sqrt5() Quadratic { return Quadratic{b: Int(1)} }

// GoldenRatio returns φ = (1+√5)/2, a root of x² = x + 1.
func GoldenRatio() Quadratic {
	half, _ := NewRational(1, 2)
	return Quadratic{a: half, b: half}
}

// GoldenRatioConjugate returns (1−√5)/2, the Galois conjugate of φ.
func GoldenRatioConjugate() Quadratic {
	half, _ := NewRational(1, 2)
	return Quadratic{a: half, b: half.Neg()}
}

// C0 returns the rational part a.
func (x Quadratic) C0() Rational { return x.a.Clone() }

// C1 returns the √5 coefficient b.
func (x Quadratic) C1() Rational { return x.b.Clone() }

// Clone returns a deep copy.
func (x Quadratic) Clone() Quadratic {
	return Quadratic{a: x.a.Clone(), b: x.b.Clone()}
}

// Zero returns 0 + 0·√5.
func (Quadratic) Zero() Quadratic { return Quadratic{} }

// One returns 1 + 0·√5.
func (Quadratic) One() Quadratic { return QuadInt(1) }

// Add returns x + o, componentwise.
func (x Quadratic) Add(o Quadratic) Quadratic {
	return Quadratic{a: x.a.Add(o.a), b: x.b.Add(o.b)}
}

// Sub returns x − o, componentwise.
func (x Quadratic) Sub(o Quadratic) Quadratic {
	return Quadratic{a: x.a.Sub(o.a), b: x.b.Sub(o.b)}
}

// Mul returns x · o by the product rule
// (a + b√5)(c + d√5) = (ac + 5bd) + (ad + bc)√5.
func (x Quadratic) Mul(o Quadratic) Quadratic {
	five := reduce(intFive, intOne)
	return Quadratic{
		a: x.a.Mul(o.a).Add(five.Mul(x.b.Mul(o.b))),
		b: x.a.Mul(o.b).Add(x.b.Mul(o.a)),
	}
}

// Neg returns −x.
func (x Quadratic) Neg() Quadratic {
	return Quadratic{a: x.a.Neg(), b: x.b.Neg()}
}

// Conjugate returns the Galois conjugate a − b·√5.
func (x Quadratic) Conjugate() Quadratic {
	return Quadratic{a: x.a.Clone(), b: x.b.Neg()}
}

// Norm returns the field norm N(x) = a² − 5b² = x · x̄, a Rational.
func (x Quadratic) Norm() Rational {
	five := reduce(intFive, intOne)
	return x.a.Mul(x.a).Sub(five.Mul(x.b.Mul(x.b)))
}

// Trace returns the field trace 2a = x + x̄, a Rational.
func (x Quadratic) Trace() Rational {
	return x.a.Add(x.a)
}

// Inv returns 1/x = x̄/N(x). The norm vanishes only at zero, so
// ErrDivisionByZero is returned exactly for the zero element.
func (x Quadratic) Inv() (Quadratic, error) {
	n := x.Norm()
	if n.IsZero() {
		return Quadratic{}, ErrDivisionByZero
	}
	a, err := x.a.Div(n)
	if err != nil {
		return Quadratic{}, err
	}
	b, err := x.b.Neg().Div(n)
	if err != nil {
		return Quadratic{}, err
	}
	return Quadratic{a: a, b: b}, nil
}

// Div returns x / o; propagates ErrDivisionByZero from o.Inv().
func (x Quadratic) Div(o Quadratic) (Quadratic, error) {
	oi, err := o.Inv()
	if err != nil {
		return Quadratic{}, err
	}
	return x.Mul(oi), nil
}

// Equal reports exact componentwise equality.
func (x Quadratic) Equal(o Quadratic) bool {
	return x.a.Equal(o.a) && x.b.Equal(o.b)
}

// IsZero reports whether both coefficients are exactly zero.
func (x Quadratic) IsZero() bool { return x.a.IsZero() && x.b.IsZero() }

// embedPrec is the working precision for the √5 embedding. 192 bits keeps
// the pre-rounding error far below one float64 ulp even for coefficients
// with very large numerators.
const embedPrec = 192

var bigSqrt5 = func() *big.Float {
	five := new(big.Float).SetPrec(embedPrec).SetInt64(5)
	return new(big.Float).SetPrec(embedPrec).Sqrt(five)
}()

// Real embeds x into float64 as a + b·√5. The sum is accumulated in
// extended precision and rounded once at the end.
func (x Quadratic) Real() float64 {
	res := new(big.Float).SetPrec(embedPrec).SetRat(x.a.rat())
	bb := new(big.Float).SetPrec(embedPrec).SetRat(x.b.rat())
	res.Add(res, bb.Mul(bb, bigSqrt5))
	f, _ := res.Float64()
	return f
}

// String renders forms like "3", "√5", "2 - 3/2√5".
func (x Quadratic) String() string {
	if x.b.IsZero() {
		return x.a.String()
	}
	abs := x.b
	neg := x.b.Cmp(Int(0)) < 0
	if neg {
		abs = x.b.Neg()
	}
	surd := abs.String() + "√5"
	if abs.Equal(Int(1)) {
		surd = "√5"
	}
	if x.a.IsZero() {
		if neg {
			return "-" + surd
		}
		return surd
	}
	if neg {
		return x.a.String() + " - " + surd
	}
	return x.a.String() + " + " + surd
}
