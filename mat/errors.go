package mat

import "errors"

var (
	// ErrSingular is returned by Inverse, Pow (negative exponents) and
	// Conj when the determinant is exactly zero under the field's IsZero.
	ErrSingular = errors.New("mat: singular matrix")

	// ErrDegenerateBasis is returned by the change-of-basis factories when
	// either basis matrix has zero determinant.
	ErrDegenerateBasis = errors.New("mat: degenerate basis matrix")
)
