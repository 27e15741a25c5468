// SPDX-License-Identifier: MIT

// Package mesh provides an index-based triangle surface mesh: vertex
// positions, triangular faces, and the symmetric vertex adjacency induced by
// face edges.
//
// What:
//
//   - Mesh stores vertices as gonum r3.Vec positions addressed by a dense
//     integer id in [0, NumVertices()).
//   - Faces are index triples; polygon input with more or fewer than three
//     corners is rejected with ErrNonTriangleFace.
//   - Neighbors(v) returns the sorted, deduplicated ids of every vertex that
//     shares an edge with v. Adjacency is symmetric by construction.
//
// Why:
//
//   - Algorithms keep their bookkeeping (labels, visited flags) in side
//     arrays indexed by vertex id instead of on the mesh itself, so the mesh
//     stays immutable once built and can be shared by concurrent readers.
//
// Validation (New / FromPolygons):
//
//   - ErrNonTriangleFace: a polygon does not have exactly three corners.
//   - ErrInvalidMesh:     a face index is out of range, a face repeats a
//     vertex, or an edge is shared by more than two faces.
//
// Complexity:
//
//   - Construction: O(V + F log d) time, O(V + F) memory (d = max degree).
//   - Neighbors:    O(1).
package mesh
