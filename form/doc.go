// Package form provides symmetric bilinear forms ("inner products") over
// 3-dimensional vectors: an InnerProduct wraps a symmetric Gram matrix B
// and exposes the geometry it induces.
//
// Every query reduces to one definition: Dot(v, w) is the Euclidean
// pairing of v against B·w. Norms, the metric cross product, reflections
// and projections all derive from it, over the exact field.
//
// Signature matters. With B positive definite (signature (3,0)) the form
// is Euclidean and RealAngle is meaningful; with signature (2,1) the form
// is Lorentzian, vectors of negative norm² live on hyperboloid sheets,
// and RealDistance measures hyperbolic distance between them.
//
// The Real* methods return float64, not field elements, because they need
// square roots, arccos or arccosh that most exact fields cannot
// represent. They are fallbacks for rendering and diagnostics; everything
// else stays exact.
//
// RealAngle carries a documented but unchecked precondition: it is only
// meaningful for positive-definite forms and silently produces
// meaningless values otherwise. RealDistance, by contrast, checks its
// precondition and fails with ErrNotOnHyperboloid.
package form
