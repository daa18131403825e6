package mat_test

import (
	"fmt"

	"github.com/katalvlaran/exalg/field"
	"github.com/katalvlaran/exalg/mat"
	"github.com/katalvlaran/exalg/vec"
)

// ExampleMatrix3_Inverse inverts a rational matrix exactly: the entries
// of the inverse are fractions, not approximations.
func ExampleMatrix3_Inverse() {
	m := mat.NewMatrix3(
		vec.NewVector3(field.Int(2), field.Int(0), field.Int(0)),
		vec.NewVector3(field.Int(0), field.Int(3), field.Int(0)),
		vec.NewVector3(field.Int(1), field.Int(0), field.Int(1)),
	)

	inv, err := m.Inverse()
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(inv)
	fmt.Println(m.RightMul(inv).Equal(mat.Identity3[field.Rational]()))
	// Output:
	// [(1/2, 0, -1/2); (0, 1/3, 0); (0, 0, 1)]
	// true
}

// ExampleMatrix4_Pow iterates a shear exactly; negative exponents walk
// the group inverse.
func ExampleMatrix4_Pow() {
	shear := mat.Identity4[field.Rational]()
	c1 := shear.Col(1)
	c1[0] = field.Int(1) // unit shear in the xy-plane
	shear.Set(shear.Col(0), c1, shear.Col(2), shear.Col(3))

	p5, _ := shear.Pow(5)
	pm5, _ := shear.Pow(-5)
	fmt.Println(p5.Entry(0, 1))
	fmt.Println(pm5.Entry(0, 1))
	fmt.Println(p5.RightMul(pm5).Equal(mat.Identity4[field.Rational]()))
	// Output:
	// 5
	// -5
	// true
}
