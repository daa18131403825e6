package vec

import (
	"strings"

	"github.com/katalvlaran/exalg/field"
)

// Vector4 is an ordered quadruple of field elements. Same contracts as
// Vector3: pure methods, opt-in pointer Set, indexing for components.
type Vector4[E field.Element[E]] [4]E

// NewVector4 builds a vector from four components.
func NewVector4[E field.Element[E]](x, y, z, w E) Vector4[E] {
	return Vector4[E]{x, y, z, w}
}

// Basis4 returns the i-th standard basis vector of the field E, or
// ErrIndexOutOfRange for i outside [0, 4).
func Basis4[E field.Element[E]](i int) (Vector4[E], error) {
	if i < 0 || i >= 4 {
		return Vector4[E]{}, ErrIndexOutOfRange
	}
	var w E
	v := Vector4[E]{w.Zero(), w.Zero(), w.Zero(), w.Zero()}
	v[i] = w.One()
	return v, nil
}

// Zero4 returns the zero vector of the field E.
func Zero4[E field.Element[E]]() Vector4[E] {
	var w E
	return Vector4[E]{w.Zero(), w.Zero(), w.Zero(), w.Zero()}
}

// Clone returns a deep copy.
func (v Vector4[E]) Clone() Vector4[E] {
	return Vector4[E]{v[0].Clone(), v[1].Clone(), v[2].Clone(), v[3].Clone()}
}

// Set overwrites the receiver's components in place (exclusive access).
func (v *Vector4[E]) Set(x, y, z, w E) {
	v[0], v[1], v[2], v[3] = x, y, z, w
}

// Add returns v + o componentwise.
func (v Vector4[E]) Add(o Vector4[E]) Vector4[E] {
	return Vector4[E]{v[0].Add(o[0]), v[1].Add(o[1]), v[2].Add(o[2]), v[3].Add(o[3])}
}

// Sub returns v − o componentwise.
func (v Vector4[E]) Sub(o Vector4[E]) Vector4[E] {
	return Vector4[E]{v[0].Sub(o[0]), v[1].Sub(o[1]), v[2].Sub(o[2]), v[3].Sub(o[3])}
}

// Scale returns v with every component multiplied by s.
func (v Vector4[E]) Scale(s E) Vector4[E] {
	return Vector4[E]{v[0].Mul(s), v[1].Mul(s), v[2].Mul(s), v[3].Mul(s)}
}

// Neg returns −v.
func (v Vector4[E]) Neg() Vector4[E] {
	return Vector4[E]{v[0].Neg(), v[1].Neg(), v[2].Neg(), v[3].Neg()}
}

// Dot returns the raw Euclidean pairing Σ vᵢwᵢ over the field.
func (v Vector4[E]) Dot(o Vector4[E]) E {
	return v[0].Mul(o[0]).Add(v[1].Mul(o[1])).Add(v[2].Mul(o[2])).Add(v[3].Mul(o[3]))
}

// Equal reports componentwise equality under the field's contract.
func (v Vector4[E]) Equal(o Vector4[E]) bool {
	return v[0].Equal(o[0]) && v[1].Equal(o[1]) && v[2].Equal(o[2]) && v[3].Equal(o[3])
}

// IsZero reports whether every component is exactly zero.
func (v Vector4[E]) IsZero() bool {
	return v[0].IsZero() && v[1].IsZero() && v[2].IsZero() && v[3].IsZero()
}

// Real embeds the vector componentwise into the Real field.
func (v Vector4[E]) Real() Vector4[field.Real] {
	return Vector4[field.Real]{
		field.NewReal(v[0].Real()),
		field.NewReal(v[1].Real()),
		field.NewReal(v[2].Real()),
		field.NewReal(v[3].Real()),
	}
}

// String renders "(x, y, z, w)" using each component's exact representation.
func (v Vector4[E]) String() string {
	var sb strings.Builder
	sb.WriteByte('(')
	sb.WriteString(v[0].String())
	sb.WriteString(", ")
	sb.WriteString(v[1].String())
	sb.WriteString(", ")
	sb.WriteString(v[2].String())
	sb.WriteString(", ")
	sb.WriteString(v[3].String())
	sb.WriteByte(')')
	return sb.String()
}
