// SPDX-License-Identifier: MIT

package segclean

import (
	"fmt"

	"github.com/orthotools/segkit/bfs"
)

// Extract partitions the vertices of g into label-connected components.
// labels[v] is the label of vertex v and must have one entry per vertex.
//
// Vertices are scanned in increasing id order; each unvisited vertex seeds a
// BFS that only follows neighbors carrying the seed's label. The visited set
// lives for the duration of the call and is shared by all of its BFS runs.
//
// A mesh without vertices yields an empty slice and ErrNoComponents.
// Complexity: O(V + E).
func Extract(g bfs.Neighborer, labels []int, opts ...Option) ([]Component, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}
	n := g.NumVertices()
	if len(labels) != n {
		return nil, fmt.Errorf("%w: %d labels for %d vertices", ErrLabelCount, len(labels), n)
	}

	visited := make([]bool, n)
	comps := []Component{}
	for v := 0; v < n; v++ {
		if visited[v] {
			continue
		}
		seed := labels[v]
		res, err := bfs.BFS(g, v,
			bfs.WithContext(o.Ctx),
			bfs.WithOrderOnly(),
			bfs.WithVisited(visited),
			bfs.WithFilterNeighbor(func(_, nbr int) bool { return labels[nbr] == seed }),
		)
		if err != nil {
			return nil, fmt.Errorf("segclean: flood fill from vertex %d: %w", v, err)
		}
		comps = append(comps, Component{Label: seed, Vertices: res.Order})
	}

	if len(comps) == 0 {
		return comps, ErrNoComponents
	}
	o.OnExtract(comps)
	return comps, nil
}
