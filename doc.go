// Package exalg is an exact-arithmetic linear algebra kernel: field-generic
// scalars, fixed-size vectors and matrices, and symmetric-bilinear-form
// geometry on top of them.
//
// 🚀 What is exalg?
//
//	A small, pure-Go library for doing 3- and 4-dimensional linear algebra
//	without floating-point error. The same generic code runs over:
//	  • exact rationals (arbitrary-precision fractions)
//	  • the algebraic extension ℚ(√5) (golden-ratio arithmetic)
//	  • plain float64, as the terminal embedding target
//
// ✨ Key features:
//   - Field capability set as a Go type constraint — vectors, matrices and
//     inner products are generic over any conforming scalar
//   - Exact matrix inversion: adjugate/determinant in 3×3, Gauss-Jordan
//     with exact zero-pivot tests in 4×4
//   - Signature-aware geometry: Euclidean and Lorentzian inner products,
//     reflections, projections, hyperbolic distance, diagonalization
//   - Pure values everywhere — no operation mutates its operands
//
// Everything is organized under four subpackages, leaves first:
//
//	field/ — Element constraint plus Rational, Quadratic (ℚ(√5)) and Real
//	vec/   — Vector3 and Vector4 over any field
//	mat/   — Matrix3 and Matrix4: ring/group structure, inverses, powers
//	form/  — InnerProduct: Gram-matrix geometry and real-valued fallbacks
//
// Data flows strictly upward (field → vec → mat → form); nothing depends
// on anything above it. Rendering or visualization code should consume
// only the Real() embeddings, never the exact representations directly.
//
// See the examples/ directory for end-to-end scenarios.
package exalg
