// SPDX-License-Identifier: MIT

package mesh

import (
	"errors"

	"gonum.org/v1/gonum/spatial/r3"
)

// Sentinel errors for mesh construction.
var (
	// ErrInvalidMesh indicates that faces reference missing vertices, repeat a
	// vertex, or share an edge between more than two faces.
	ErrInvalidMesh = errors.New("mesh: invalid mesh")

	// ErrNonTriangleFace indicates a polygon that is not a triangle.
	ErrNonTriangleFace = errors.New("mesh: non triangle face")
)

// Face is a triangle given by three vertex ids.
type Face [3]int

// Mesh is an immutable triangle mesh with precomputed vertex adjacency.
// It is safe for concurrent readers.
type Mesh struct {
	vertices  []r3.Vec
	faces     []Face
	adjacency [][]int // vertex id -> sorted neighbor ids
	edges     int     // number of distinct undirected edges
	boundary  int     // edges used by exactly one face
}

// Stats is a snapshot of mesh size counters.
type Stats struct {
	Vertices      int
	Faces         int
	Edges         int
	BoundaryEdges int
	Isolated      int // vertices not referenced by any face
}

// edgeKey identifies an undirected edge by its ordered endpoints.
type edgeKey struct {
	lo, hi int
}

func makeEdgeKey(a, b int) edgeKey {
	if a > b {
		a, b = b, a
	}
	return edgeKey{lo: a, hi: b}
}
