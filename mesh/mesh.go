// SPDX-License-Identifier: MIT

package mesh

import (
	"fmt"
	"sort"

	"gonum.org/v1/gonum/spatial/r3"
)

// New builds a Mesh from vertex positions and triangle faces.
// The input slices are copied; later changes by the caller are not observed.
// Returns ErrInvalidMesh for out-of-range or repeated face indices and for
// edges shared by more than two faces.
// Complexity: O(V + F log d).
func New(vertices []r3.Vec, faces []Face) (*Mesh, error) {
	m := &Mesh{
		vertices: make([]r3.Vec, len(vertices)),
		faces:    make([]Face, len(faces)),
	}
	copy(m.vertices, vertices)
	copy(m.faces, faces)

	if err := m.build(); err != nil {
		return nil, err
	}
	return m, nil
}

// FromPolygons builds a Mesh from arbitrary polygons, as produced by
// polygon-soup readers. Every polygon must be a triangle, otherwise
// ErrNonTriangleFace is returned with the offending polygon index.
func FromPolygons(vertices []r3.Vec, polygons [][]int) (*Mesh, error) {
	faces := make([]Face, len(polygons))
	for i, p := range polygons {
		if len(p) != 3 {
			return nil, fmt.Errorf("%w: polygon %d has %d corners", ErrNonTriangleFace, i, len(p))
		}
		faces[i] = Face{p[0], p[1], p[2]}
	}
	return New(vertices, faces)
}

// build validates faces and fills adjacency and edge counters.
func (m *Mesh) build() error {
	n := len(m.vertices)
	uses := make(map[edgeKey]int, 3*len(m.faces)/2+1)
	nbrs := make([][]int, n)

	for fi, f := range m.faces {
		for _, v := range f {
			if v < 0 || v >= n {
				return fmt.Errorf("%w: face %d references vertex %d (have %d)", ErrInvalidMesh, fi, v, n)
			}
		}
		if f[0] == f[1] || f[1] == f[2] || f[2] == f[0] {
			return fmt.Errorf("%w: face %d repeats a vertex %v", ErrInvalidMesh, fi, f)
		}
		for k := 0; k < 3; k++ {
			a, b := f[k], f[(k+1)%3]
			key := makeEdgeKey(a, b)
			uses[key]++
			if uses[key] > 2 {
				return fmt.Errorf("%w: edge (%d,%d) is shared by more than two faces", ErrInvalidMesh, key.lo, key.hi)
			}
			if uses[key] == 1 {
				nbrs[a] = append(nbrs[a], b)
				nbrs[b] = append(nbrs[b], a)
			}
		}
	}

	for _, c := range uses {
		if c == 1 {
			m.boundary++
		}
	}
	m.edges = len(uses)

	// each edge was appended once per endpoint, so lists are already unique
	for v := range nbrs {
		sort.Ints(nbrs[v])
	}
	m.adjacency = nbrs

	return nil
}

// NumVertices returns the number of vertices.
func (m *Mesh) NumVertices() int {
	return len(m.vertices)
}

// NumFaces returns the number of triangles.
func (m *Mesh) NumFaces() int {
	return len(m.faces)
}

// Position returns the coordinates of vertex v.
// It panics if v is out of range, like a slice index.
func (m *Mesh) Position(v int) r3.Vec {
	return m.vertices[v]
}

// Face returns the i-th triangle.
func (m *Mesh) Face(i int) Face {
	return m.faces[i]
}

// Neighbors returns the ids of the vertices sharing an edge with v, in
// increasing order. The returned slice must not be modified.
func (m *Mesh) Neighbors(v int) []int {
	return m.adjacency[v]
}

// Stats reports vertex, face and edge counts.
// Complexity: O(V).
func (m *Mesh) Stats() Stats {
	s := Stats{
		Vertices:      len(m.vertices),
		Faces:         len(m.faces),
		Edges:         m.edges,
		BoundaryEdges: m.boundary,
	}
	for _, nb := range m.adjacency {
		if len(nb) == 0 {
			s.Isolated++
		}
	}
	return s
}
