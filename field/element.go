package field

import "fmt"

// Element is the capability set every scalar type must satisfy to be usable
// by vec, mat and form. It is self-referential: a field type F implements
// Element[F], and generic containers are declared as e.g. Vector3[E
// Element[E]].
//
// Contract:
//   - Every method is pure. Receivers and arguments are never mutated;
//     results are fresh values.
//   - Zero and One ignore their receiver, so the type's Go zero value is a
//     valid witness: `var w F; id := w.One()`.
//   - Inv and Div return ErrDivisionByZero on a zero operand and succeed
//     otherwise.
//   - Equal never returns an error; its tolerance is field-specific (exact
//     for Rational and Quadratic, epsilon for Real). IsZero is exact on
//     every field and is the test all pivot/singularity checks use.
//   - Real is the canonical embedding into float64; it is idempotent on
//     the Real field itself.
type Element[E any] interface {
	// Clone returns a deep copy of the element.
	Clone() E
	// Zero returns the field's additive identity.
	Zero() E
	// One returns the field's multiplicative identity.
	One() E

	// Add returns receiver + o.
	Add(o E) E
	// Sub returns receiver − o.
	Sub(o E) E
	// Mul returns receiver · o.
	Mul(o E) E
	// Neg returns −receiver.
	Neg() E
	// Inv returns the multiplicative inverse, or ErrDivisionByZero.
	Inv() (E, error)
	// Div returns receiver / o, or ErrDivisionByZero when o is zero.
	Div(o E) (E, error)

	// Equal reports whether the two elements are equal under the field's
	// equality contract.
	Equal(o E) bool
	// IsZero reports exact equality with the additive identity.
	IsZero() bool

	// Real embeds the element into float64.
	Real() float64

	fmt.Stringer
}
