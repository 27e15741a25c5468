package curve_test

import (
	"fmt"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/orthotools/segkit/curve"
)

// ExampleDistance compares a unit square with the same square lifted by 0.5.
// Every source vertex is 0.5 away from the target, so the weighted mean is 0.5.
func ExampleDistance() {
	src := []r3.Vec{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1}}
	dst := make([]r3.Vec, len(src))
	for i, p := range src {
		dst[i] = r3.Add(p, r3.Vec{Z: 0.5})
	}

	d, err := curve.Distance(src, dst)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Printf("Dist = %.3f\n", d)
	// Output:
	// Dist = 0.500
}

// ExampleCompare shows the asymmetry of the metric on a square and a
// triangle cut from it.
func ExampleCompare() {
	square := []r3.Vec{{X: 0, Y: 0}, {X: 2, Y: 0}, {X: 2, Y: 2}, {X: 0, Y: 2}}
	triangle := []r3.Vec{{X: 0, Y: 0}, {X: 2, Y: 0}, {X: 0, Y: 2}}

	cmp, err := curve.Compare(triangle, square)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Printf("triangle->square %.4f\n", cmp.Forward)
	fmt.Printf("square->triangle %.4f\n", cmp.Backward)
	// Output:
	// triangle->square 0.0000
	// square->triangle 0.3536
}
