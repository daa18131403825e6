package field_test

import (
	"fmt"

	"github.com/katalvlaran/exalg/field"
)

// ExampleNewRational shows construction-time normalization: the fraction
// is reduced and the sign moved to the numerator before anything else
// sees it.
func ExampleNewRational() {
	a, _ := field.NewRational(6, 8)
	b, _ := field.NewRational(1, -6)
	fmt.Println(a)
	fmt.Println(b)
	fmt.Println(a.Add(b))
	// Output:
	// 3/4
	// -1/6
	// 7/12
}

// ExampleGoldenRatio demonstrates exact golden-ratio arithmetic in ℚ(√5):
// φ² = φ + 1 holds on the nose, not up to rounding.
func ExampleGoldenRatio() {
	phi := field.GoldenRatio()
	fmt.Println(phi)
	fmt.Println(phi.Mul(phi))
	fmt.Println(phi.Mul(phi).Equal(phi.Add(field.QuadInt(1))))
	fmt.Printf("%.6f\n", phi.Real())
	// Output:
	// 1/2 + 1/2√5
	// 3/2 + 1/2√5
	// true
	// 1.618034
}
