package form

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/exalg/field"
)

var (
	// ErrAsymmetric is returned by New when the Gram matrix is not
	// symmetric under the field's equality.
	ErrAsymmetric = errors.New("form: gram matrix is not symmetric")

	// ErrIsotropic is returned by ReflectIn and ProjectOnto when the
	// argument vector has zero norm² under the form. It wraps
	// field.ErrDivisionByZero, so errors.Is matches either sentinel.
	ErrIsotropic = fmt.Errorf("form: isotropic vector: %w", field.ErrDivisionByZero)

	// ErrNotOnHyperboloid is returned by RealDistance when a vector's
	// norm² is non-negative.
	ErrNotOnHyperboloid = errors.New("form: vector is not on the hyperboloid")

	// ErrDegenerateForm is returned by RealDiagonalize and Signature when
	// the real-embedded form is degenerate (a Gram-Schmidt axis collapses
	// to zero norm).
	ErrDegenerateForm = errors.New("form: degenerate form")
)
