package form

import (
	"math"

	"github.com/katalvlaran/exalg/field"
	"github.com/katalvlaran/exalg/mat"
	"github.com/katalvlaran/exalg/vec"
)

// InnerProduct wraps a symmetric Gram matrix B over a field E and exposes
// the geometry it induces. It is stateless beyond holding B: every query
// is a pure function of the stored form and the caller's vectors.
type InnerProduct[E field.Element[E]] struct {
	b mat.Matrix3[E]
}

// New wraps the Gram matrix b. Returns ErrAsymmetric when b is not
// symmetric under the field's equality.
func New[E field.Element[E]](b mat.Matrix3[E]) (InnerProduct[E], error) {
	if !b.Equal(b.Transpose()) {
		return InnerProduct[E]{}, ErrAsymmetric
	}
	return InnerProduct[E]{b: b.Clone()}, nil
}

// Euclidean returns the standard positive-definite form (B = I,
// signature (3,0)).
func Euclidean[E field.Element[E]]() InnerProduct[E] {
	return InnerProduct[E]{b: mat.Identity3[E]()}
}

// Lorentzian returns the form B = diag(1, 1, −1) of signature (2,1),
// whose negative-norm vectors fill the two-sheeted hyperboloid family.
func Lorentzian[E field.Element[E]]() InnerProduct[E] {
	var w E
	o := w.One()
	return InnerProduct[E]{b: mat.Diagonal3(o, o.Clone(), o.Neg())}
}

// Gram returns a copy of the Gram matrix B.
func (ip InnerProduct[E]) Gram() mat.Matrix3[E] { return ip.b.Clone() }

// Dot returns ⟨v, w⟩ = v · (B·w), the single definition every other query
// derives from.
func (ip InnerProduct[E]) Dot(v, w vec.Vector3[E]) E {
	return v.Dot(ip.b.MulVec(w))
}

// Norm2 returns ⟨v, v⟩. It may be negative or zero for indefinite forms.
func (ip InnerProduct[E]) Norm2(v vec.Vector3[E]) E {
	return ip.Dot(v, v)
}

// Cross returns the Euclidean cross product of B·v and B·w — the
// metric-aware generalization of the ordinary cross product induced by
// the Hodge star of B.
func (ip InnerProduct[E]) Cross(v, w vec.Vector3[E]) vec.Vector3[E] {
	return ip.b.MulVec(v).Cross(ip.b.MulVec(w))
}

// ReflectIn builds the reflection matrix across the hyperplane
// B-orthogonal to n, column by column: eᵢ − (2⟨eᵢ, n⟩/⟨n, n⟩)·n.
// Returns ErrIsotropic when n has zero norm².
func (ip InnerProduct[E]) ReflectIn(n vec.Vector3[E]) (mat.Matrix3[E], error) {
	q := ip.Norm2(n)
	if q.IsZero() {
		return mat.Matrix3[E]{}, ErrIsotropic
	}
	var w E
	two := w.One().Add(w.One())
	bn := ip.b.MulVec(n) // ⟨eᵢ, n⟩ = (B·n)ᵢ
	r := mat.Zero3[E]()
	for i := 0; i < 3; i++ {
		e, err := vec.Basis3[E](i)
		if err != nil {
			return mat.Matrix3[E]{}, err
		}
		f, err := two.Mul(bn[i]).Div(q)
		if err != nil {
			return mat.Matrix3[E]{}, err
		}
		r[i] = e.Sub(n.Scale(f))
	}
	return r, nil
}

// ProjectOnto returns the B-orthogonal projection matrix onto span(v):
// P = v·vᵗ·B / ⟨v, v⟩, whose j-th column is v scaled by (B·v)ⱼ/⟨v, v⟩.
// Returns ErrIsotropic when v has zero norm².
func (ip InnerProduct[E]) ProjectOnto(v vec.Vector3[E]) (mat.Matrix3[E], error) {
	q := ip.Norm2(v)
	if q.IsZero() {
		return mat.Matrix3[E]{}, ErrIsotropic
	}
	bv := ip.b.MulVec(v)
	p := mat.Zero3[E]()
	for j := 0; j < 3; j++ {
		f, err := bv[j].Div(q)
		if err != nil {
			return mat.Matrix3[E]{}, err
		}
		p[j] = v.Scale(f)
	}
	return p, nil
}

// RealNorm returns √|⟨v, v⟩| after real embedding. The absolute value is
// a deliberate abuse of notation so the norm stays defined for indefinite
// forms.
func (ip InnerProduct[E]) RealNorm(v vec.Vector3[E]) float64 {
	return math.Sqrt(math.Abs(ip.Norm2(v).Real()))
}

// RealAngle returns arccos(⟨v, w⟩ / (‖v‖·‖w‖)) after real embedding.
//
// Precondition (documented, not checked): the form is positive definite.
// For indefinite forms the result is mathematically meaningless but no
// error is raised.
func (ip InnerProduct[E]) RealAngle(v, w vec.Vector3[E]) float64 {
	return math.Acos(ip.Dot(v, w).Real() / (ip.RealNorm(v) * ip.RealNorm(w)))
}

// RealDistance returns the hyperbolic distance arccosh(−⟨v, w⟩) between
// two vectors of strictly negative norm² under a Lorentzian form.
// Returns ErrNotOnHyperboloid when either vector has non-negative norm².
//
// Precondition (documented, not checked): the distance is the geodesic
// distance of the hyperboloid model for points normalized to norm² = −1;
// vectors off the unit sheet scale the arccosh argument accordingly.
func (ip InnerProduct[E]) RealDistance(v, w vec.Vector3[E]) (float64, error) {
	if ip.Norm2(v).Real() >= 0 || ip.Norm2(w).Real() >= 0 {
		return 0, ErrNotOnHyperboloid
	}
	return math.Acosh(-ip.Dot(v, w).Real()), nil
}
