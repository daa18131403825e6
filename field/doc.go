// Package field defines the scalar layer of the kernel: the Element
// capability set every field type must satisfy, and three concrete fields.
//
// The capability set is expressed as a self-referential generic constraint
// (Element[E]), so containers in vec/ and mat/ stay concrete value types
// with no interface boxing. A field element must provide:
//
//	Clone, Zero, One — value duplication and the type-level constants
//	Add, Sub, Mul, Neg — the ring operations
//	Inv, Div — with an error on a zero operand
//	Equal, IsZero — the field's equality contract
//	Real — embedding into float64
//	String — human-readable exact representation
//
// Concrete fields:
//
//   - Rational  — exact fractions over arbitrary-precision integers,
//     always stored in canonical reduced form.
//   - Quadratic — the degree-2 extension ℚ(√5); elements are pairs of
//     Rationals a + b·√5. Hosts the golden ratio as a named value.
//   - Real      — a float64 wrapper; the universal embedding target.
//     Its Equal is epsilon-tolerant, reflecting approximate computation.
//
// Every arithmetic method is pure: it never mutates its receiver or its
// argument and returns a fresh value. All three fields are value types
// whose Go zero value acts as the field's zero, so a `var w F` witness is
// always safe to use with Zero()/One().
//
// Equality contracts are deliberately split: Rational and Quadratic use
// exact structural equality; Real.Equal tolerates Eps. IsZero is exact on
// all three fields — singularity detection upstream relies on that.
package field
