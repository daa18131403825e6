package mat

import (
	"strings"

	"github.com/katalvlaran/exalg/field"
	"github.com/katalvlaran/exalg/vec"
)

// Matrix4 is a 4×4 matrix stored as four column vectors: m[j] is column
// j, so Entry(i, j) = m[j][i]. All methods except Set are pure.
type Matrix4[E field.Element[E]] [4]vec.Vector4[E]

// NewMatrix4 builds a matrix from four column vectors.
func NewMatrix4[E field.Element[E]](c0, c1, c2, c3 vec.Vector4[E]) Matrix4[E] {
	return Matrix4[E]{c0, c1, c2, c3}
}

// Identity4 returns the identity matrix of the field E.
func Identity4[E field.Element[E]]() Matrix4[E] {
	var w E
	z, o := w.Zero(), w.One()
	return Matrix4[E]{
		{o, z, z, z},
		{z, o, z, z},
		{z, z, o, z},
		{z, z, z, o},
	}
}

// Zero4 returns the zero matrix of the field E.
func Zero4[E field.Element[E]]() Matrix4[E] {
	return Matrix4[E]{vec.Zero4[E](), vec.Zero4[E](), vec.Zero4[E](), vec.Zero4[E]()}
}

// Entry reads the element at row i, column j. The receiver stores
// columns, hence the index flip.
func (m Matrix4[E]) Entry(i, j int) E { return m[j][i] }

// Col returns column j.
func (m Matrix4[E]) Col(j int) vec.Vector4[E] { return m[j].Clone() }

// Clone returns a deep copy.
func (m Matrix4[E]) Clone() Matrix4[E] {
	return Matrix4[E]{m[0].Clone(), m[1].Clone(), m[2].Clone(), m[3].Clone()}
}

// Set overwrites the receiver's columns in place (exclusive access).
func (m *Matrix4[E]) Set(c0, c1, c2, c3 vec.Vector4[E]) {
	m[0], m[1], m[2], m[3] = c0, c1, c2, c3
}

// Add returns m + o columnwise.
func (m Matrix4[E]) Add(o Matrix4[E]) Matrix4[E] {
	return Matrix4[E]{m[0].Add(o[0]), m[1].Add(o[1]), m[2].Add(o[2]), m[3].Add(o[3])}
}

// Sub returns m − o columnwise.
func (m Matrix4[E]) Sub(o Matrix4[E]) Matrix4[E] {
	return Matrix4[E]{m[0].Sub(o[0]), m[1].Sub(o[1]), m[2].Sub(o[2]), m[3].Sub(o[3])}
}

// Scale returns m with every entry multiplied by s.
func (m Matrix4[E]) Scale(s E) Matrix4[E] {
	return Matrix4[E]{m[0].Scale(s), m[1].Scale(s), m[2].Scale(s), m[3].Scale(s)}
}

// MulVec applies m to v: Σ columns[i]·vᵢ.
func (m Matrix4[E]) MulVec(v vec.Vector4[E]) vec.Vector4[E] {
	return m[0].Scale(v[0]).Add(m[1].Scale(v[1])).Add(m[2].Scale(v[2])).Add(m[3].Scale(v[3]))
}

// RightMul returns m·o: m applied to each column of o.
func (m Matrix4[E]) RightMul(o Matrix4[E]) Matrix4[E] {
	return Matrix4[E]{m.MulVec(o[0]), m.MulVec(o[1]), m.MulVec(o[2]), m.MulVec(o[3])}
}

// LeftMul returns o·m.
func (m Matrix4[E]) LeftMul(o Matrix4[E]) Matrix4[E] {
	return o.RightMul(m)
}

// Transpose returns mᵗ. Transpose(Transpose(m)) equals m exactly.
func (m Matrix4[E]) Transpose() Matrix4[E] {
	t := Zero4[E]()
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			t[i][j] = m[j][i].Clone()
		}
	}
	return t
}

// Trace returns the sum of diagonal entries.
func (m Matrix4[E]) Trace() E {
	return m.Entry(0, 0).Add(m.Entry(1, 1)).Add(m.Entry(2, 2)).Add(m.Entry(3, 3))
}

// minorDet returns the determinant of the 3×3 submatrix obtained by
// deleting row r and column c.
func (m Matrix4[E]) minorDet(r, c int) E {
	var rows, cols [3]int
	k := 0
	for i := 0; i < 4; i++ {
		if i != r {
			rows[k] = i
			k++
		}
	}
	k = 0
	for j := 0; j < 4; j++ {
		if j != c {
			cols[k] = j
			k++
		}
	}
	a := func(i, j int) E { return m.Entry(rows[i], cols[j]) }
	return a(0, 0).Mul(det2(a(1, 1), a(1, 2), a(2, 1), a(2, 2))).
		Sub(a(0, 1).Mul(det2(a(1, 0), a(1, 2), a(2, 0), a(2, 2)))).
		Add(a(0, 2).Mul(det2(a(1, 0), a(1, 1), a(2, 0), a(2, 1))))
}

// Det returns the determinant by cofactor expansion along the first row.
// Division-free, so exact over any field.
func (m Matrix4[E]) Det() E {
	d := m.Entry(0, 0).Mul(m.minorDet(0, 0))
	d = d.Sub(m.Entry(0, 1).Mul(m.minorDet(0, 1)))
	d = d.Add(m.Entry(0, 2).Mul(m.minorDet(0, 2)))
	return d.Sub(m.Entry(0, 3).Mul(m.minorDet(0, 3)))
}

// Inverse returns m⁻¹ via Gauss-Jordan elimination on the augmented
// [m | I] matrix. Pivoting swaps in the first row with a nonzero pivot
// candidate — not the largest one: the field may carry no total order, so
// magnitude pivoting does not generalize, and correctness needs only
// exact zero tests. Returns ErrSingular up front when Det is zero, or
// when a column offers no nonzero pivot.
func (m Matrix4[E]) Inverse() (Matrix4[E], error) {
	if m.Det().IsZero() {
		return Matrix4[E]{}, ErrSingular
	}

	// Augmented row-major working copy: rows of [m | I].
	var w E
	var aug [4][8]E
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			aug[i][j] = m.Entry(i, j).Clone()
			if i == j {
				aug[i][4+j] = w.One()
			} else {
				aug[i][4+j] = w.Zero()
			}
		}
	}

	for col := 0; col < 4; col++ {
		// First nonzero pivot candidate in this column.
		pivot := -1
		for r := col; r < 4; r++ {
			if !aug[r][col].IsZero() {
				pivot = r
				break
			}
		}
		if pivot < 0 {
			return Matrix4[E]{}, ErrSingular
		}
		aug[col], aug[pivot] = aug[pivot], aug[col]

		// Normalize the pivot row.
		pi, err := aug[col][col].Inv()
		if err != nil {
			return Matrix4[E]{}, err
		}
		for j := 0; j < 8; j++ {
			aug[col][j] = aug[col][j].Mul(pi)
		}

		// Eliminate the column everywhere else.
		for r := 0; r < 4; r++ {
			if r == col || aug[r][col].IsZero() {
				continue
			}
			f := aug[r][col].Clone()
			for j := 0; j < 8; j++ {
				aug[r][j] = aug[r][j].Sub(f.Mul(aug[col][j]))
			}
		}
	}

	inv := Zero4[E]()
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			inv[j][i] = aug[i][4+j]
		}
	}
	return inv, nil
}

// Conj returns c·m·c⁻¹, the conjugation of m by the change of basis c.
// Propagates ErrSingular from c.Inverse().
func (m Matrix4[E]) Conj(c Matrix4[E]) (Matrix4[E], error) {
	ci, err := c.Inverse()
	if err != nil {
		return Matrix4[E]{}, err
	}
	return c.RightMul(m.RightMul(ci)), nil
}

// Pow returns mⁿ by exponentiation by squaring. n = 0 yields the
// identity; a negative n inverts first and returns ErrSingular when m is
// singular.
func (m Matrix4[E]) Pow(n int) (Matrix4[E], error) {
	base := m.Clone()
	if n < 0 {
		inv, err := m.Inverse()
		if err != nil {
			return Matrix4[E]{}, err
		}
		base = inv
		n = -n
	}
	acc := Identity4[E]()
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
func (m Matrix4[E]) Equal(o Matrix4[E]) bool {
	return m[0].Equal(o[0]) && m[1].Equal(o[1]) && m[2].Equal(o[2]) && m[3].Equal(o[3])
}

// Real embeds the matrix columnwise into the Real field.
func (m Matrix4[E]) Real() Matrix4[field.Real] {
	return Matrix4[field.Real]{m[0].Real(), m[1].Real(), m[2].Real(), m[3].Real()}
}

// String renders the matrix row by row: "[(r0); (r1); (r2); (r3)]".
func (m Matrix4[E]) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i := 0; i < 4; i++ {
		if i > 0 {
			sb.WriteString("; ")
		}
		row := vec.Vector4[E]{m[0][i], m[1][i], m[2][i], m[3][i]}
		sb.WriteString(row.String())
	}
	sb.WriteByte(']')
	return sb.String()
}
