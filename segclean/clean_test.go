// SPDX-License-Identifier: MIT

package segclean_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/orthotools/segkit/mesh"
	"github.com/orthotools/segkit/segclean"
)

const (
	labelA = 11
	labelB = 21
)

// CleanSuite groups the relabeling scenarios.
type CleanSuite struct {
	suite.Suite
}

func TestCleanSuite(t *testing.T) {
	suite.Run(t, new(CleanSuite))
}

// blobGrid returns a 12×12 grid labeled B with a 50-vertex A block
// (x 0..4, y 0..9) and a 3-vertex A island at (8,8), (9,8), (8,9).
func (s *CleanSuite) blobGrid() (*mesh.Mesh, []int, []int) {
	const cols = 12
	m, err := mesh.Grid(cols, cols, 1)
	s.Require().NoError(err)

	labels := make([]int, m.NumVertices())
	for y := 0; y < cols; y++ {
		for x := 0; x < cols; x++ {
			labels[mesh.GridID(x, y, cols)] = labelB
			if x <= 4 && y <= 9 {
				labels[mesh.GridID(x, y, cols)] = labelA
			}
		}
	}
	island := []int{mesh.GridID(8, 8, cols), mesh.GridID(9, 8, cols), mesh.GridID(8, 9, cols)}
	for _, v := range island {
		labels[v] = labelA
	}
	return m, labels, island
}

// TestIslandAbsorbed checks that a small island takes its surrounding label
// while the large block of the same label is untouched.
func (s *CleanSuite) TestIslandAbsorbed() {
	m, labels, island := s.blobGrid()
	before := append([]int(nil), labels...)

	comps, err := segclean.Extract(m, labels)
	s.Require().NoError(err)
	s.Require().Len(comps, 3)

	cleaned, err := segclean.Clean(m, labels, comps, 10)
	s.Require().NoError(err)
	s.Equal(1, cleaned)

	for _, v := range island {
		s.Equal(labelB, labels[v], "island vertex %d", v)
	}
	inIsland := map[int]bool{}
	for _, v := range island {
		inIsland[v] = true
	}
	for v := range labels {
		if !inIsland[v] {
			s.Equal(before[v], labels[v], "vertex %d changed", v)
		}
	}
}

// TestIdempotent runs a second pass and expects nothing left to clean.
func (s *CleanSuite) TestIdempotent() {
	m, labels, _ := s.blobGrid()

	_, err := segclean.Run(m, labels, 10)
	s.Require().NoError(err)
	after := append([]int(nil), labels...)

	comps, err := segclean.Extract(m, labels)
	s.Require().NoError(err)
	s.Len(comps, 2)

	cleaned, err := segclean.Clean(m, labels, comps, 10)
	s.Require().NoError(err)
	s.Zero(cleaned)
	s.Equal(after, labels)
}

// TestSplitAcrossLabels checks per-vertex relabeling: an island lying between
// two regions is divided between them.
//
//	10×3 grid, columns: 1 1 1 2 2 2 3 3 3 3
//	island of label 3 at (2,1) and (3,1)
func (s *CleanSuite) TestSplitAcrossLabels() {
	const cols = 10
	m, err := mesh.Grid(cols, 3, 1)
	s.Require().NoError(err)

	labels := make([]int, m.NumVertices())
	for y := 0; y < 3; y++ {
		for x := 0; x < cols; x++ {
			switch {
			case x < 3:
				labels[mesh.GridID(x, y, cols)] = 1
			case x < 6:
				labels[mesh.GridID(x, y, cols)] = 2
			default:
				labels[mesh.GridID(x, y, cols)] = 3
			}
		}
	}
	left, right := mesh.GridID(2, 1, cols), mesh.GridID(3, 1, cols)
	labels[left], labels[right] = 3, 3

	var events []segclean.CleanEvent
	rep, err := segclean.Run(m, labels, 5, segclean.WithOnClean(func(ev segclean.CleanEvent) {
		events = append(events, ev)
	}))
	s.Require().NoError(err)

	s.Equal(1, labels[left])
	s.Equal(2, labels[right])
	s.Equal(1, rep.Cleaned)
	s.Equal(2, rep.Relabeled)
	s.Require().Len(events, 1)
	s.Equal(3, events[0].Component.Label)
	s.Equal(5, events[0].Cap)
	s.Equal(2, events[0].Relabeled)
	s.False(events[0].Skipped())
}

// TestSnapshotLabels uses two neighboring single-vertex islands whose nearest
// neighbor is each other. Both read the labels as they were before cleaning,
// so they swap.
func (s *CleanSuite) TestSnapshotLabels() {
	vertices := []r3.Vec{
		{X: 0, Y: 0}, {X: 0.1, Y: 0}, // islands
		{X: 0, Y: 5}, {X: 0.1, Y: 5}, // label 1 strip
		{X: 10, Y: 0}, {X: 11, Y: 0}, {X: 10, Y: 1}, // label 2 body
		{X: 20, Y: 0}, {X: 21, Y: 0}, {X: 20, Y: 1}, // label 3 body
	}
	faces := []mesh.Face{{0, 1, 2}, {1, 3, 2}, {4, 5, 6}, {7, 8, 9}}
	m, err := mesh.New(vertices, faces)
	s.Require().NoError(err)

	labels := []int{2, 3, 1, 1, 2, 2, 2, 3, 3, 3}
	rep, err := segclean.Run(m, labels, 10)
	s.Require().NoError(err)

	s.Equal(2, rep.Cleaned)
	s.Equal(3, labels[0])
	s.Equal(2, labels[1])
	s.Equal([]int{1, 1, 2, 2, 2, 3, 3, 3}, labels[2:])
}

// TestSkippedIsland checks that a small component with no differently-labeled
// neighbor counts as cleaned but keeps its label.
func (s *CleanSuite) TestSkippedIsland() {
	vertices := []r3.Vec{
		{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1}, {X: 2, Y: 0}, {X: 2, Y: 1},
		{X: 9, Y: 9}, {X: 10, Y: 9}, {X: 9, Y: 10},
	}
	faces := []mesh.Face{{0, 1, 2}, {0, 2, 3}, {1, 4, 5}, {1, 5, 2}, {6, 7, 8}}
	m, err := mesh.New(vertices, faces)
	s.Require().NoError(err)

	labels := make([]int, len(vertices))
	rep, err := segclean.Run(m, labels, 5)
	s.Require().NoError(err)

	s.Equal(2, rep.Components)
	s.Equal(1, rep.Labels)
	s.Equal(1, rep.Cleaned)
	s.Equal(1, rep.Skipped)
	s.Zero(rep.Relabeled)
	s.InDelta(4.5, rep.MeanSize, 1e-12)
	s.Equal(make([]int, len(vertices)), labels)
}

// TestSingleLabel leaves a uniformly labeled mesh alone.
func (s *CleanSuite) TestSingleLabel() {
	m, err := mesh.Grid(5, 5, 1)
	s.Require().NoError(err)
	labels := make([]int, m.NumVertices())

	rep, err := segclean.Run(m, labels, 1000)
	s.Require().NoError(err)
	s.Equal(1, rep.Components)
	s.Zero(rep.Cleaned)
}

// TestInvalidComponent rejects components that reference unknown vertices.
func (s *CleanSuite) TestInvalidComponent() {
	m, err := mesh.Grid(2, 2, 1)
	s.Require().NoError(err)
	labels := []int{0, 0, 0, 0}
	comps := []segclean.Component{{Label: 0, Vertices: []int{0, 1, 7}}}

	_, err = segclean.Clean(m, labels, comps, 10)
	s.ErrorIs(err, segclean.ErrInvalidComponent)

	_, err = segclean.Clean(m, labels[:2], comps, 10)
	s.ErrorIs(err, segclean.ErrLabelCount)

	_, err = segclean.Clean(nil, labels, comps, 10)
	s.ErrorIs(err, segclean.ErrGraphNil)
}

// TestSurroundingsDistinct checks de-duplication and first-seen order.
func TestSurroundingsDistinct(t *testing.T) {
	m, err := mesh.Grid(3, 3, 1)
	require.NoError(t, err)
	labels := make([]int, m.NumVertices())
	center := mesh.GridID(1, 1, 3)
	right := mesh.GridID(2, 1, 3)
	labels[center], labels[right] = 1, 1

	c := segclean.Component{Label: 1, Vertices: []int{center, right}}
	around := segclean.Surroundings(m, labels, c)

	seen := map[int]bool{}
	for _, v := range around {
		require.False(t, seen[v], "duplicate %d", v)
		seen[v] = true
		require.NotEqual(t, 1, labels[v])
	}
	// ring of center minus right, then 2 from right
	require.ElementsMatch(t, []int{0, 1, 3, 7, 8, 2}, around)
	require.Equal(t, m.Neighbors(center)[0], around[0])
}
