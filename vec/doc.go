// Package vec provides fixed-size vectors of dimension 3 and 4, generic
// over any field satisfying field.Element.
//
// Vector3 and Vector4 are plain arrays of field elements, so components
// are read by indexing (v[0], v[1], ...). All named operations (Add, Sub,
// Scale, Neg, Real, ...) are pure and return a fresh vector; the only
// mutator is the pointer-receiver Set, provided for callers that need a
// stable identity across reassignment. Callers must treat Set as
// exclusive-access: no concurrent readers during the call.
//
// Basis3 and Basis4 build standard basis vectors from the field's
// zero/one constants; an out-of-range index yields ErrIndexOutOfRange.
//
// Dot is the raw Euclidean pairing Σ vᵢwᵢ over the field, and Cross
// (Vector3 only) is the determinant-formula cross product — both are
// defined on the exact field, not on embeddings; metric-aware variants
// live in the form package.
package vec
