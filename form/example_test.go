package form_test

import (
	"fmt"

	"github.com/katalvlaran/exalg/field"
	"github.com/katalvlaran/exalg/form"
	"github.com/katalvlaran/exalg/vec"
)

// ExampleInnerProduct_RealDistance measures hyperbolic distance between
// two points of the hyperboloid model under the Lorentzian form
// diag(1, 1, −1). Both vectors have strictly negative norm², which is
// what puts them on the hyperboloid family in the first place.
func ExampleInnerProduct_RealDistance() {
	ip := form.Lorentzian[field.Rational]()
	v := vec.NewVector3(field.Int(0), field.Int(0), field.Int(1))
	w := vec.NewVector3(field.Int(0), field.Int(0), field.Int(2))

	d, err := ip.RealDistance(v, w)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Printf("distance = %.7f\n", d)
	// Output:
	// distance = 1.3169579
}

// ExampleInnerProduct_ReflectIn builds the exact reflection across the
// xy-plane: every entry of the resulting matrix is a rational number, no
// floating point involved.
func ExampleInnerProduct_ReflectIn() {
	ip := form.Euclidean[field.Rational]()
	n := vec.NewVector3(field.Int(0), field.Int(0), field.Int(1))

	r, err := ip.ReflectIn(n)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(r)
	fmt.Println(r.MulVec(vec.NewVector3(field.Int(2), field.Int(3), field.Int(4))))
	// Output:
	// [(1, 0, 0); (0, 1, 0); (0, 0, -1)]
	// (2, 3, -4)
}
