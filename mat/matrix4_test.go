package mat_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/exalg/field"
	"github.com/katalvlaran/exalg/mat"
	"github.com/katalvlaran/exalg/vec"
)

func v4(a, b, c, d int64) vec.Vector4[field.Rational] {
	return vec.NewVector4(field.Int(a), field.Int(b), field.Int(c), field.Int(d))
}

func m4(c0, c1, c2, c3 vec.Vector4[field.Rational]) mat.Matrix4[field.Rational] {
	return mat.NewMatrix4(c0, c1, c2, c3)
}

// invertible4 is unit upper triangular up to a shear, so its determinant
// is 1 and its inverse is exact over ℚ.
func invertible4() mat.Matrix4[field.Rational] {
	return m4(v4(1, 0, 0, 0), v4(2, 1, 0, 0), v4(3, 4, 1, 0), v4(5, 6, 7, 1))
}

// dense4 has determinant different from ±1 to exercise true division.
func dense4() mat.Matrix4[field.Rational] {
	return m4(v4(2, 1, 0, 3), v4(1, 0, 2, 1), v4(0, 3, 1, 0), v4(1, 1, 0, 2))
}

func TestMatrix4_EntryReadsColumnMajor(t *testing.T) {
	m := m4(v4(1, 2, 3, 4), v4(5, 6, 7, 8), v4(9, 10, 11, 12), v4(13, 14, 15, 16))
	for j := int64(0); j < 4; j++ {
		for i := int64(0); i < 4; i++ {
			want := field.Int(4*j + i + 1)
			require.True(t, m.Entry(int(i), int(j)).Equal(want), "entry(%d,%d)", i, j)
		}
	}
}

func TestMatrix4_DetTriangular(t *testing.T) {
	require.True(t, invertible4().Det().Equal(field.Int(1)))
	require.True(t, mat.Identity4[field.Rational]().Det().Equal(field.Int(1)))
	require.True(t, mat.Zero4[field.Rational]().Det().IsZero())
}

func TestMatrix4_DetMultiplicative(t *testing.T) {
	// det(A·B) = det(A)·det(B) over the rationals.
	a := dense4()
	b := invertible4()
	require.True(t, a.RightMul(b).Det().Equal(a.Det().Mul(b.Det())))

	c := m4(v4(1, 2, 0, 1), v4(0, 1, 1, 0), v4(2, 0, 1, 3), v4(1, 1, 1, 1))
	require.True(t, a.RightMul(c).Det().Equal(a.Det().Mul(c.Det())))
}

func TestMatrix4_InverseRoundtrip(t *testing.T) {
	id := mat.Identity4[field.Rational]()
	for _, m := range []mat.Matrix4[field.Rational]{invertible4(), dense4()} {
		require.False(t, m.Det().IsZero())
		inv, err := m.Inverse()
		require.NoError(t, err)
		require.True(t, m.RightMul(inv).Equal(id), "M·M⁻¹")
		require.True(t, inv.RightMul(m).Equal(id), "M⁻¹·M")
	}
}

func TestMatrix4_InversePivotSwap(t *testing.T) {
	// Zero in the (0,0) slot forces the first-nonzero row swap.
	perm := m4(v4(0, 1, 0, 0), v4(1, 0, 0, 0), v4(0, 0, 1, 0), v4(0, 0, 0, 1))
	inv, err := perm.Inverse()
	require.NoError(t, err)
	// A transposition is its own inverse.
	require.True(t, inv.Equal(perm))
	require.True(t, perm.Det().Equal(field.Int(-1)))
}

func TestMatrix4_InverseSingular(t *testing.T) {
	sing := m4(v4(1, 2, 3, 4), v4(2, 4, 6, 8), v4(0, 1, 0, 1), v4(1, 0, 0, 0))
	_, err := sing.Inverse()
	require.ErrorIs(t, err, mat.ErrSingular)
}

func TestMatrix4_InverseQuadraticField(t *testing.T) {
	phi := field.GoldenRatio()
	one := field.QuadInt(1)
	zero := field.QuadInt(0)
	m := mat.NewMatrix4(
		vec.NewVector4(phi, zero, zero, zero),
		vec.NewVector4(one, one, zero, zero),
		vec.NewVector4(zero, zero, field.Sqrt5(), zero),
		vec.NewVector4(zero, zero, zero, one),
	)
	inv, err := m.Inverse()
	require.NoError(t, err)
	require.True(t, m.RightMul(inv).Equal(mat.Identity4[field.Quadratic]()))
	require.True(t, inv.RightMul(m).Equal(mat.Identity4[field.Quadratic]()))
}

func TestMatrix4_TransposeInvolution(t *testing.T) {
	a := dense4()
	require.True(t, a.Transpose().Transpose().Equal(a))
	require.True(t, a.Transpose().Entry(1, 3).Equal(a.Entry(3, 1)))
}

func TestMatrix4_ScaledIdentityTrace(t *testing.T) {
	// 2·I₄ has trace 8.
	twice := mat.Identity4[field.Rational]().Scale(field.Int(2))
	require.True(t, twice.Trace().Equal(field.Int(8)))
}

func TestMatrix4_Pow(t *testing.T) {
	a := dense4()
	id := mat.Identity4[field.Rational]()

	p0, err := a.Pow(0)
	require.NoError(t, err)
	require.True(t, p0.Equal(id))

	p1, err := a.Pow(1)
	require.NoError(t, err)
	require.True(t, p1.Equal(a))

	inv, err := a.Inverse()
	require.NoError(t, err)
	pm1, err := a.Pow(-1)
	require.NoError(t, err)
	require.True(t, pm1.Equal(inv))

	p4, err := a.Pow(4)
	require.NoError(t, err)
	require.True(t, p4.Equal(a.RightMul(a).RightMul(a).RightMul(a)))

	pm3, err := a.Pow(-3)
	require.NoError(t, err)
	p3, err := a.Pow(3)
	require.NoError(t, err)
	require.True(t, pm3.RightMul(p3).Equal(id))
}

func TestMatrix4_PowSingularNegative(t *testing.T) {
	sing := m4(v4(1, 0, 0, 0), v4(1, 0, 0, 0), v4(0, 0, 1, 0), v4(0, 0, 0, 1))
	_, err := sing.Pow(-2)
	require.ErrorIs(t, err, mat.ErrSingular)

	// Non-negative powers of a singular matrix are still fine.
	p2, err := sing.Pow(2)
	require.NoError(t, err)
	require.True(t, p2.Equal(sing.RightMul(sing)))
}

func TestMatrix4_Conj(t *testing.T) {
	a := dense4()
	c := invertible4()
	conj, err := a.Conj(c)
	require.NoError(t, err)
	require.True(t, conj.Trace().Equal(a.Trace()))
	require.True(t, conj.Det().Equal(a.Det()))
	require.True(t, conj.RightMul(c).Equal(c.RightMul(a)))
}

func TestBasisChange4(t *testing.T) {
	id := mat.Identity4[field.Rational]()
	basis := invertible4()

	tr, err := mat.NewBasisTransform4(basis)
	require.NoError(t, err)
	require.True(t, tr.RightMul(basis).Equal(id))

	roundtrip, err := mat.BasisChange4(basis, basis)
	require.NoError(t, err)
	require.True(t, roundtrip.Equal(id))

	sing := m4(v4(1, 0, 0, 0), v4(1, 0, 0, 0), v4(0, 0, 1, 0), v4(0, 0, 0, 1))
	_, err = mat.NewBasisTransform4(sing)
	require.ErrorIs(t, err, mat.ErrDegenerateBasis)
	_, err = mat.BasisChange4(basis, sing)
	require.ErrorIs(t, err, mat.ErrDegenerateBasis)
}

func TestMatrix4_MulVec(t *testing.T) {
	m := invertible4()
	// m·e1 is column 1.
	e1, err := vec.Basis4[field.Rational](1)
	require.NoError(t, err)
	require.True(t, m.MulVec(e1).Equal(m.Col(1)))
}
