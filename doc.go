// Package segkit cleans per-vertex tooth/gum labels on intraoral scan meshes
// and compares gumline curves.
//
// What is inside:
//
//	mesh/       triangle mesh arena: positions, faces, vertex adjacency, validation
//	bfs/        index-based breadth-first search with hooks and a shared visited set
//	segclean/   label-connected components, size caps, nearest-label relabeling
//	curve/      closed polylines, R-tree segment index, length-weighted distance
//	meshio/     OBJ meshes, JSON/text label files, gumline files
//
// Tools:
//
//	cmd/segclean         remove small label islands from a labeled scan
//	cmd/gumlinecompare   distance between a source and a target gumline
//
// Quick example:
//
//	    1 1 2 2 2        1 1 2 2 2
//	    1 1 2 1 2   →    1 1 2 2 2
//	    1 1 2 2 2        1 1 2 2 2
//
// the lone 1 inside the 2 region is a component below its label's cap and
// takes the label of its nearest differently-labeled neighbor.
//
//	go install github.com/orthotools/segkit/cmd/...@latest
package segkit
