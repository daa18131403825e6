package mat

import (
	"strings"

	"github.com/katalvlaran/exalg/field"
	"github.com/katalvlaran/exalg/vec"
)

// Matrix3 is a 3×3 matrix stored as three column vectors: m[j] is column
// j, so Entry(i, j) = m[j][i]. All methods except Set are pure.
type Matrix3[E field.Element[E]] [3]vec.Vector3[E]

// NewMatrix3 builds a matrix from three column vectors.
func NewMatrix3[E field.Element[E]](c0, c1, c2 vec.Vector3[E]) Matrix3[E] {
	return Matrix3[E]{c0, c1, c2}
}

// Identity3 returns the identity matrix of the field E.
func Identity3[E field.Element[E]]() Matrix3[E] {
	var w E
	z, o := w.Zero(), w.One()
	return Matrix3[E]{
		{o, z, z},
		{z, o, z},
		{z, z, o},
	}
}

// Zero3 returns the zero matrix of the field E.
func Zero3[E field.Element[E]]() Matrix3[E] {
	return Matrix3[E]{vec.Zero3[E](), vec.Zero3[E](), vec.Zero3[E]()}
}

// Diagonal3 returns diag(d0, d1, d2).
func Diagonal3[E field.Element[E]](d0, d1, d2 E) Matrix3[E] {
	var w E
	z := w.Zero()
	return Matrix3[E]{
		{d0, z.Clone(), z.Clone()},
		{z.Clone(), d1, z.Clone()},
		{z.Clone(), z.Clone(), d2},
	}
}

// Entry reads the element at row i, column j. The receiver stores
// columns, hence the index flip.
func (m Matrix3[E]) Entry(i, j int) E { return m[j][i] }

// Col returns column j.
func (m Matrix3[E]) Col(j int) vec.Vector3[E] { return m[j].Clone() }

// Clone returns a deep copy.
func (m Matrix3[E]) Clone() Matrix3[E] {
	return Matrix3[E]{m[0].Clone(), m[1].Clone(), m[2].Clone()}
}

// Set overwrites the receiver's columns in place (exclusive access).
func (m *Matrix3[E]) Set(c0, c1, c2 vec.Vector3[E]) {
	m[0], m[1], m[2] = c0, c1, c2
}

// Add returns m + o columnwise.
func (m Matrix3[E]) Add(o Matrix3[E]) Matrix3[E] {
	return Matrix3[E]{m[0].Add(o[0]), m[1].Add(o[1]), m[2].Add(o[2])}
}

// Sub returns m − o columnwise.
func (m Matrix3[E]) Sub(o Matrix3[E]) Matrix3[E] {
	return Matrix3[E]{m[0].Sub(o[0]), m[1].Sub(o[1]), m[2].Sub(o[2])}
}

// Scale returns m with every entry multiplied by s.
func (m Matrix3[E]) Scale(s E) Matrix3[E] {
	return Matrix3[E]{m[0].Scale(s), m[1].Scale(s), m[2].Scale(s)}
}

// MulVec applies m to v: Σ columns[i]·vᵢ. This is the one multiplication
// kernel between vectors and matrices; RightMul builds on it.
func (m Matrix3[E]) MulVec(v vec.Vector3[E]) vec.Vector3[E] {
	return m[0].Scale(v[0]).Add(m[1].Scale(v[1])).Add(m[2].Scale(v[2]))
}

// RightMul returns m·o: m applied to each column of o.
func (m Matrix3[E]) RightMul(o Matrix3[E]) Matrix3[E] {
	return Matrix3[E]{m.MulVec(o[0]), m.MulVec(o[1]), m.MulVec(o[2])}
}

// LeftMul returns o·m.
func (m Matrix3[E]) LeftMul(o Matrix3[E]) Matrix3[E] {
	return o.RightMul(m)
}

// Transpose returns mᵗ. Transpose(Transpose(m)) equals m exactly.
func (m Matrix3[E]) Transpose() Matrix3[E] {
	t := Zero3[E]()
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			t[i][j] = m[j][i].Clone()
		}
	}
	return t
}

// Trace returns the sum of diagonal entries.
func (m Matrix3[E]) Trace() E {
	return m.Entry(0, 0).Add(m.Entry(1, 1)).Add(m.Entry(2, 2))
}

// det2 is the 2×2 determinant ad − bc.
func det2[E field.Element[E]](a, b, c, d E) E {
	return a.Mul(d).Sub(b.Mul(c))
}

// Det returns the determinant by cofactor expansion along the first row.
// Division-free, so exact over any field.
func (m Matrix3[E]) Det() E {
	a := m.Entry
	return a(0, 0).Mul(det2(a(1, 1), a(1, 2), a(2, 1), a(2, 2))).
		Sub(a(0, 1).Mul(det2(a(1, 0), a(1, 2), a(2, 0), a(2, 2)))).
		Add(a(0, 2).Mul(det2(a(1, 0), a(1, 1), a(2, 0), a(2, 1))))
}

// Inverse returns m⁻¹ by the adjugate-over-determinant formula.
// Returns ErrSingular when the determinant is exactly zero.
func (m Matrix3[E]) Inverse() (Matrix3[E], error) {
	d := m.Det()
	if d.IsZero() {
		return Matrix3[E]{}, ErrSingular
	}
	di, err := d.Inv()
	if err != nil {
		return Matrix3[E]{}, err
	}
	a := m.Entry
	// adj(i,j) is the (j,i) cofactor; inv = adj · d⁻¹.
	adj := func(i, j int) E {
		switch 3*i + j {
		case 0:
			return det2(a(1, 1), a(1, 2), a(2, 1), a(2, 2))
		case 1:
			return det2(a(0, 2), a(0, 1), a(2, 2), a(2, 1))
		case 2:
			return det2(a(0, 1), a(0, 2), a(1, 1), a(1, 2))
		case 3:
			return det2(a(1, 2), a(1, 0), a(2, 2), a(2, 0))
		case 4:
			return det2(a(0, 0), a(0, 2), a(2, 0), a(2, 2))
		case 5:
			return det2(a(0, 2), a(0, 0), a(1, 2), a(1, 0))
		case 6:
			return det2(a(1, 0), a(1, 1), a(2, 0), a(2, 1))
		case 7:
			return det2(a(0, 1), a(0, 0), a(2, 1), a(2, 0))
		default:
			return det2(a(0, 0), a(0, 1), a(1, 0), a(1, 1))
		}
	}
	inv := Zero3[E]()
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			inv[j][i] = adj(i, j).Mul(di)
		}
	}
	return inv, nil
}

// Conj returns c·m·c⁻¹, the conjugation of m by the change of basis c.
// Propagates ErrSingular from c.Inverse().
func (m Matrix3[E]) Conj(c Matrix3[E]) (Matrix3[E], error) {
	ci, err := c.Inverse()
	if err != nil {
		return Matrix3[E]{}, err
	}
	return c.RightMul(m.RightMul(ci)), nil
}

// Pow returns mⁿ by exponentiation by squaring. n = 0 yields the
// identity; a negative n inverts first and returns ErrSingular when m is
// singular.
func (m Matrix3[E]) Pow(n int) (Matrix3[E], error) {
	base := m.Clone()
	if n < 0 {
		inv, err := m.Inverse()
		if err != nil {
			return Matrix3[E]{}, err
		}
		base = inv
		n = -n
	}
	acc := Identity3[E]()
	for n > 0 {
		if n&1 == 1 {
			acc = acc.RightMul(base)
		}
		base = base.RightMul(base)
		n >>= 1
	}
	return acc, nil
}

// Equal reports entrywise equality under the field's contract.
func (m Matrix3[E]) Equal(o Matrix3[E]) bool {
	return m[0].Equal(o[0]) && m[1].Equal(o[1]) && m[2].Equal(o[2])
}

// Real embeds the matrix columnwise into the Real field.
func (m Matrix3[E]) Real() Matrix3[field.Real] {
	return Matrix3[field.Real]{m[0].Real(), m[1].Real(), m[2].Real()}
}

// String renders the matrix row by row: "[(r0); (r1); (r2)]".
func (m Matrix3[E]) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i := 0; i < 3; i++ {
		if i > 0 {
			sb.WriteString("; ")
		}
		row := vec.Vector3[E]{m[0][i], m[1][i], m[2][i]}
		sb.WriteString(row.String())
	}
	sb.WriteByte(']')
	return sb.String()
}
