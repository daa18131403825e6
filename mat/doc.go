// Package mat provides 3×3 and 4×4 square matrices over any field
// satisfying field.Element, with full ring/group structure: addition,
// scalar multiplication, matrix multiplication, determinant, inverse,
// transpose, integer powers, conjugation and change of basis.
//
// Storage is column-major: a Matrix3 is three column Vector3s, so m[j] is
// column j and Entry(i, j) reads column j's i-th component. The internal
// layout is therefore transposed relative to the usual row/column reading
// convention — Entry, Det and Inverse all depend on this and the
// convention is pinned down by tests.
//
// MulVec(v) = Σ columns[i]·vᵢ is the sole multiplication kernel between
// vectors and matrices; RightMul and LeftMul are defined in terms of it.
//
// Exactness discipline: Det is division-free cofactor expansion, so it is
// exact over any field. Singularity checks (Inverse, Pow with negative
// exponents, Conj, change of basis) use exact field zero tests via
// IsZero, never epsilon comparison. The 4×4 inverse runs Gauss-Jordan
// with first-nonzero pivoting rather than maximum-magnitude pivoting:
// fields like ℚ(√5) carry no total order, so numerical pivoting
// strategies do not generalize.
//
// All methods except the pointer-receiver Set are pure and return fresh
// values.
package mat
