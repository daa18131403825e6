package form

import (
	"math"

	"github.com/katalvlaran/exalg/field"
	"github.com/katalvlaran/exalg/mat"
	"github.com/katalvlaran/exalg/vec"
)

// diagTol is the degeneracy threshold for Gram-Schmidt residual norms in
// the real-embedded form.
const diagTol = 1e-12

// diagonalize runs Gram-Schmidt over the real embedding of B in axis
// order e0, e1, e2, rescales each axis by 1/√|⟨u, u⟩|, and reorders the
// columns so positive-norm axes come first. The returned signs are the
// resulting diagonal of CᵗBC, each exactly ±1.
func (ip InnerProduct[E]) diagonalize() (cols [3]vec.Vector3[field.Real], signs [3]int, err error) {
	br := ip.b.Real()
	dot := func(v, w vec.Vector3[field.Real]) float64 {
		return v.Dot(br.MulVec(w)).Real()
	}

	var u [3]vec.Vector3[field.Real]
	var q [3]float64
	for k := 0; k < 3; k++ {
		uk, berr := vec.Basis3[field.Real](k)
		if berr != nil {
			return cols, signs, berr
		}
		for j := 0; j < k; j++ {
			c := dot(uk, u[j]) / q[j]
			uk = uk.Sub(u[j].Scale(field.NewReal(c)))
		}
		qk := dot(uk, uk)
		if math.Abs(qk) <= diagTol {
			return cols, signs, ErrDegenerateForm
		}
		u[k] = uk
		q[k] = qk
	}

	// Rescale only after the whole orthogonal set is built: the
	// projections above divide by the unscaled norms q[j].
	for k := 0; k < 3; k++ {
		u[k] = u[k].Scale(field.NewReal(1 / math.Sqrt(math.Abs(q[k]))))
	}

	// Positive-norm axes first, then negative: (3,0) yields diag(1,1,1)
	// and (2,1) yields diag(1,1,−1).
	idx := 0
	for k := 0; k < 3; k++ {
		if q[k] > 0 {
			cols[idx], signs[idx] = u[k], +1
			idx++
		}
	}
	for k := 0; k < 3; k++ {
		if q[k] < 0 {
			cols[idx], signs[idx] = u[k], -1
			idx++
		}
	}
	return cols, signs, nil
}

// RealDiagonalize returns a real change-of-basis matrix C such that
// Cᵗ·B.Real()·C equals diag(1,1,1) or diag(1,1,−1) depending on the
// form's signature. The computation lives entirely in the Real field: it
// needs square roots the exact fields cannot represent. Returns
// ErrDegenerateForm when the embedded form is degenerate.
func (ip InnerProduct[E]) RealDiagonalize() (mat.Matrix3[field.Real], error) {
	cols, _, err := ip.diagonalize()
	if err != nil {
		return mat.Matrix3[field.Real]{}, err
	}
	return mat.NewMatrix3(cols[0], cols[1], cols[2]), nil
}

// Signature returns the count of positive and negative axes of the
// real-embedded form — (3, 0) for Euclidean, (2, 1) for Lorentzian.
// Returns ErrDegenerateForm when the form is degenerate.
func (ip InnerProduct[E]) Signature() (pos, neg int, err error) {
	_, signs, err := ip.diagonalize()
	if err != nil {
		return 0, 0, err
	}
	for _, s := range signs {
		if s > 0 {
			pos++
		} else {
			neg++
		}
	}
	return pos, neg, nil
}
