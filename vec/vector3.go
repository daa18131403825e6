package vec

import (
	"strings"

	"github.com/katalvlaran/exalg/field"
)

// Vector3 is an ordered triple of field elements. Components are accessed
// by indexing. All methods except Set are pure.
type Vector3[E field.Element[E]] [3]E

// NewVector3 builds a vector from three components.
func NewVector3[E field.Element[E]](x, y, z E) Vector3[E] {
	return Vector3[E]{x, y, z}
}

// Basis3 returns the i-th standard basis vector of the field E, or
// ErrIndexOutOfRange for i outside [0, 3).
func Basis3[E field.Element[E]](i int) (Vector3[E], error) {
	if i < 0 || i >= 3 {
		return Vector3[E]{}, ErrIndexOutOfRange
	}
	var w E
	v := Vector3[E]{w.Zero(), w.Zero(), w.Zero()}
	v[i] = w.One()
	return v, nil
}

// Zero3 returns the zero vector of the field E.
func Zero3[E field.Element[E]]() Vector3[E] {
	var w E
	return Vector3[E]{w.Zero(), w.Zero(), w.Zero()}
}

// Clone returns a deep copy.
func (v Vector3[E]) Clone() Vector3[E] {
	return Vector3[E]{v[0].Clone(), v[1].Clone(), v[2].Clone()}
}

// Set overwrites the receiver's components in place. The one opt-in
// mutator; callers must guarantee exclusive access for the duration of
// the call.
func (v *Vector3[E]) Set(x, y, z E) {
	v[0], v[1], v[2] = x, y, z
}

// Add returns v + o componentwise.
func (v Vector3[E]) Add(o Vector3[E]) Vector3[E] {
	return Vector3[E]{v[0].Add(o[0]), v[1].Add(o[1]), v[2].Add(o[2])}
}

// Sub returns v − o componentwise.
func (v Vector3[E]) Sub(o Vector3[E]) Vector3[E] {
	return Vector3[E]{v[0].Sub(o[0]), v[1].Sub(o[1]), v[2].Sub(o[2])}
}

// Scale returns v with every component multiplied by s.
func (v Vector3[E]) Scale(s E) Vector3[E] {
	return Vector3[E]{v[0].Mul(s), v[1].Mul(s), v[2].Mul(s)}
}

// Neg returns −v.
func (v Vector3[E]) Neg() Vector3[E] {
	return Vector3[E]{v[0].Neg(), v[1].Neg(), v[2].Neg()}
}

// Dot returns the raw Euclidean pairing Σ vᵢwᵢ over the field.
func (v Vector3[E]) Dot(o Vector3[E]) E {
	return v[0].Mul(o[0]).Add(v[1].Mul(o[1])).Add(v[2].Mul(o[2]))
}

// Cross returns the Euclidean cross product by the determinant formula,
// computed over the raw field.
func (v Vector3[E]) Cross(o Vector3[E]) Vector3[E] {
	return Vector3[E]{
		v[1].Mul(o[2]).Sub(v[2].Mul(o[1])),
		v[2].Mul(o[0]).Sub(v[0].Mul(o[2])),
		v[0].Mul(o[1]).Sub(v[1].Mul(o[0])),
	}
}

// Equal reports componentwise equality under the field's contract.
func (v Vector3[E]) Equal(o Vector3[E]) bool {
	return v[0].Equal(o[0]) && v[1].Equal(o[1]) && v[2].Equal(o[2])
}

// IsZero reports whether every component is exactly zero.
func (v Vector3[E]) IsZero() bool {
	return v[0].IsZero() && v[1].IsZero() && v[2].IsZero()
}

// Real embeds the vector componentwise into the Real field.
func (v Vector3[E]) Real() Vector3[field.Real] {
	return Vector3[field.Real]{
		field.NewReal(v[0].Real()),
		field.NewReal(v[1].Real()),
		field.NewReal(v[2].Real()),
	}
}

// String renders "(x, y, z)" using each component's exact representation.
func (v Vector3[E]) String() string {
	var sb strings.Builder
	sb.WriteByte('(')
	sb.WriteString(v[0].String())
	sb.WriteString(", ")
	sb.WriteString(v[1].String())
	sb.WriteString(", ")
	sb.WriteString(v[2].String())
	sb.WriteByte(')')
	return sb.String()
}
