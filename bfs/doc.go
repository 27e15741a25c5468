// Package bfs provides breadth-first search over any graph that exposes a
// dense vertex id range and per-vertex neighbor lists, such as *mesh.Mesh.
//
// What
//
//   - Explore vertices in non-decreasing distance (edge count) from a start vertex.
//   - Returns a BFSResult containing:
//   - Order: visit sequence
//   - Depth: map from vertex → distance (edges) from start
//   - Parent: map from vertex → its predecessor in the BFS tree
//   - Supports functional hooks at three stages:
//   - OnEnqueue (before a vertex is enqueued)
//   - OnDequeue (immediately before visiting)
//   - OnVisit   (when visiting; may abort with an error)
//   - Allows filtering of individual neighbor edges via WithFilterNeighbor.
//   - Honors MaxDepth limit (d>0) or explicit “no limit” (d==0).
//   - Accepts a caller-owned visited set via WithVisited, so a sequence of
//     runs can flood-fill a whole graph exactly once.
//   - WithOrderOnly skips the Depth and Parent maps when only Order is needed.
//
// Why
//
//   - Discover reachable subgraphs and connected components in O(V + E).
//   - A label-equality FilterNeighbor turns BFS into a region grower:
//     the visit order of one run is one same-label component.
//
// Determinism
//
//	Neighbors are enqueued in the order Neighborer.Neighbors returns them;
//	mesh.Mesh returns them sorted by id, so the visit sequence is reproducible.
//
// Complexity (V = |Vertices|, E = |Edges|)
//
//   - Time:   O(V + E)   (each vertex and edge seen at most once)
//   - Memory: O(V)       for the visited set, plus O(k) for the k vertices
//     reached (queue, Depth, Parent). With a shared visited set only O(k).
//     WithOrderOnly drops the two maps.
//
// Usage
//
//		// Basic BFS with no options:
//		result, err := bfs.BFS(m, 0)
//
//		// Flood-fill one label region with a shared visited set:
//		visited := make([]bool, m.NumVertices())
//		result, err := bfs.BFS(
//		    m, seed,
//		    bfs.WithOrderOnly(),
//		    bfs.WithVisited(visited),
//		    bfs.WithFilterNeighbor(func(_, nbr int) bool { return labels[nbr] == labels[seed] }),
//		)
//
// Errors
//
//   - ErrGraphNil             if the graph is nil.
//   - ErrStartVertexNotFound  if the start id is out of range.
//   - ErrOptionViolation      if invalid Option (negative MaxDepth, bad visited set).
//   - ErrNoTree               from PathTo after a WithOrderOnly run.
//   - Wrapped user-supplied hook errors from OnVisit.
//   - ctx.Err() when the context is cancelled.
package bfs
