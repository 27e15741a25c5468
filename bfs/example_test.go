package bfs_test

import (
	"fmt"

	"github.com/orthotools/segkit/bfs"
	"github.com/orthotools/segkit/mesh"
)

// ExampleBFS_gridMesh demonstrates BFS layering on a 3×3 triangulated grid.
// Vertex ids are row-major; the (x,y)-(x+1,y+1) diagonals make 4 reachable in one hop from 0.
func ExampleBFS_gridMesh() {
	m, err := mesh.Grid(3, 3, 1)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	res, err := bfs.BFS(m, 0)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println(res.Order)
	fmt.Println("depth of 8:", res.Depth[8])
	// Output:
	// [0 1 3 4 2 5 6 7 8]
	// depth of 8: 2
}
