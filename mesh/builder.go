// SPDX-License-Identifier: MIT

package mesh

import (
	"fmt"

	"gonum.org/v1/gonum/spatial/r3"
)

// Grid builds a planar triangulated grid of cols×rows vertices in the z=0
// plane, spaced by spacing. Vertex (x, y) has id GridID(x, y, cols).
// Each quad is split along its (x,y)-(x+1,y+1) diagonal, so an interior
// vertex has six neighbors.
// Returns ErrInvalidMesh if cols or rows is below 2 or spacing is not positive.
func Grid(cols, rows int, spacing float64) (*Mesh, error) {
	if cols < 2 || rows < 2 || spacing <= 0 {
		return nil, fmt.Errorf("%w: grid %dx%d spacing %g", ErrInvalidMesh, cols, rows, spacing)
	}
	vertices := make([]r3.Vec, 0, cols*rows)
	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			vertices = append(vertices, r3.Vec{X: float64(x) * spacing, Y: float64(y) * spacing})
		}
	}
	faces := make([]Face, 0, 2*(cols-1)*(rows-1))
	for y := 0; y+1 < rows; y++ {
		for x := 0; x+1 < cols; x++ {
			a := GridID(x, y, cols)
			b := GridID(x+1, y, cols)
			c := GridID(x+1, y+1, cols)
			d := GridID(x, y+1, cols)
			faces = append(faces, Face{a, b, c}, Face{a, c, d})
		}
	}
	return New(vertices, faces)
}

// GridID maps grid coordinates to a row-major vertex id.
func GridID(x, y, cols int) int {
	return y*cols + x
}
