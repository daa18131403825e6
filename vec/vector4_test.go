package vec_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/exalg/field"
	"github.com/katalvlaran/exalg/vec"
)

func v4(a, b, c, d int64) vec.Vector4[field.Rational] {
	return vec.NewVector4(field.Int(a), field.Int(b), field.Int(c), field.Int(d))
}

func TestVector4_Componentwise(t *testing.T) {
	a := v4(1, 2, 3, 4)
	b := v4(5, 6, 7, 8)

	require.True(t, a.Add(b).Equal(v4(6, 8, 10, 12)))
	require.True(t, b.Sub(a).Equal(v4(4, 4, 4, 4)))
	require.True(t, a.Scale(field.Int(3)).Equal(v4(3, 6, 9, 12)))
	require.True(t, a.Neg().Equal(v4(-1, -2, -3, -4)))
	require.True(t, a.Dot(b).Equal(field.Int(70)))
}

func TestBasis4(t *testing.T) {
	for i := 0; i < 4; i++ {
		e, err := vec.Basis4[field.Rational](i)
		require.NoError(t, err)
		for j := 0; j < 4; j++ {
			if i == j {
				require.True(t, e[j].Equal(field.Int(1)))
			} else {
				require.True(t, e[j].IsZero())
			}
		}
	}

	_, err := vec.Basis4[field.Rational](4)
	require.ErrorIs(t, err, vec.ErrIndexOutOfRange)
	_, err = vec.Basis4[field.Rational](-1)
	require.ErrorIs(t, err, vec.ErrIndexOutOfRange)
}

func TestVector4_SetMutatesInPlace(t *testing.T) {
	a := v4(1, 2, 3, 4)
	a.Set(field.Int(9), field.Int(8), field.Int(7), field.Int(6))
	require.True(t, a.Equal(v4(9, 8, 7, 6)))
}

func TestVector4_QuadraticField(t *testing.T) {
	// The same generic code runs over ℚ(√5).
	phi := field.GoldenRatio()
	a := vec.NewVector4(phi, field.QuadInt(1), field.QuadInt(0), field.QuadInt(0))
	dot := a.Dot(a)
	// φ² + 1 = φ + 2.
	require.True(t, dot.Equal(phi.Add(field.QuadInt(2))))
}

func TestVector4_String(t *testing.T) {
	require.Equal(t, "(1, 2, 3, 4)", v4(1, 2, 3, 4).String())
}
