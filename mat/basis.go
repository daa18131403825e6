package mat

import "github.com/katalvlaran/exalg/field"

// NewBasisTransform3 returns the matrix taking standard coordinates to
// coordinates in the basis whose columns form `to` — that is, to⁻¹.
// Returns ErrDegenerateBasis when `to` has zero determinant.
func NewBasisTransform3[E field.Element[E]](to Matrix3[E]) (Matrix3[E], error) {
	if to.Det().IsZero() {
		return Matrix3[E]{}, ErrDegenerateBasis
	}
	inv, err := to.Inverse()
	if err != nil {
		return Matrix3[E]{}, err
	}
	return inv, nil
}

// BasisChange3 returns the change-of-basis matrix to⁻¹·from, mapping
// coordinates in the `from` basis to coordinates in the `to` basis.
// Returns ErrDegenerateBasis when either basis matrix is singular.
func BasisChange3[E field.Element[E]](from, to Matrix3[E]) (Matrix3[E], error) {
	if from.Det().IsZero() || to.Det().IsZero() {
		return Matrix3[E]{}, ErrDegenerateBasis
	}
	toInv, err := to.Inverse()
	if err != nil {
		return Matrix3[E]{}, err
	}
	return toInv.RightMul(from), nil
}

// NewBasisTransform4 is the 4×4 analogue of NewBasisTransform3.
func NewBasisTransform4[E field.Element[E]](to Matrix4[E]) (Matrix4[E], error) {
	if to.Det().IsZero() {
		return Matrix4[E]{}, ErrDegenerateBasis
	}
	inv, err := to.Inverse()
	if err != nil {
		return Matrix4[E]{}, err
	}
	return inv, nil
}

// BasisChange4 is the 4×4 analogue of BasisChange3.
func BasisChange4[E field.Element[E]](from, to Matrix4[E]) (Matrix4[E], error) {
	if from.Det().IsZero() || to.Det().IsZero() {
		return Matrix4[E]{}, ErrDegenerateBasis
	}
	toInv, err := to.Inverse()
	if err != nil {
		return Matrix4[E]{}, err
	}
	return toInv.RightMul(from), nil
}
