// SPDX-License-Identifier: MIT

package curve

import (
	"math"

	"github.com/dhconnelly/rtreego"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/spatial/r3"
)

// R-tree node fan-out.
const (
	minChildren = 25
	maxChildren = 50
)

// Hit is the answer to a closest-point query.
type Hit struct {
	Point    r3.Vec  // closest point on the curve
	Segment  int     // index of the segment holding Point
	Distance float64 // Euclidean distance from the query to Point
}

// Index is a read-only R-tree over the segments of one closed curve.
// It is safe for concurrent queries.
type Index struct {
	segs []Segment
	tree *rtreego.Rtree
	pad  float64
}

// entry adapts one segment to rtreego.Spatial.
type entry struct {
	idx int
	bb  rtreego.Rect
}

func (e *entry) Bounds() rtreego.Rect { return e.bb }

// NewIndex builds the segment index of the closed curve through points.
// Returns ErrInvalidCurve for fewer than two points or a non-finite point.
func NewIndex(points []r3.Vec) (*Index, error) {
	segs, err := Segments(points)
	if err != nil {
		return nil, err
	}

	// rtreego intersection is strict, so flat boxes are padded.
	scale := 1.0
	for _, p := range points {
		scale = math.Max(scale, math.Max(math.Abs(p.X), math.Max(math.Abs(p.Y), math.Abs(p.Z))))
	}
	ix := &Index{segs: segs, pad: 1e-9 * scale}

	objs := make([]rtreego.Spatial, len(segs))
	for i, s := range segs {
		bb, err := ix.box(r3.Vec{
			X: math.Min(s.Start.X, s.End.X),
			Y: math.Min(s.Start.Y, s.End.Y),
			Z: math.Min(s.Start.Z, s.End.Z),
		}, r3.Vec{
			X: math.Max(s.Start.X, s.End.X),
			Y: math.Max(s.Start.Y, s.End.Y),
			Z: math.Max(s.Start.Z, s.End.Z),
		}, ix.pad)
		if err != nil {
			return nil, err
		}
		objs[i] = &entry{idx: i, bb: bb}
	}
	ix.tree = rtreego.NewTree(3, minChildren, maxChildren, objs...)
	return ix, nil
}

func (ix *Index) box(lo, hi r3.Vec, pad float64) (rtreego.Rect, error) {
	return rtreego.NewRectFromPoints(
		rtreego.Point{lo.X - pad, lo.Y - pad, lo.Z - pad},
		rtreego.Point{hi.X + pad, hi.Y + pad, hi.Z + pad},
	)
}

// Len returns the number of indexed segments.
func (ix *Index) Len() int {
	return len(ix.segs)
}

// Length returns the total length of the indexed curve.
func (ix *Index) Length() float64 {
	return floats.Sum(lengths(ix.segs))
}

// Segment returns indexed segment i.
func (ix *Index) Segment(i int) Segment {
	return ix.segs[i]
}

// Points returns the curve points in order, as passed to NewIndex.
func (ix *Index) Points() []r3.Vec {
	pts := make([]r3.Vec, len(ix.segs))
	for i, s := range ix.segs {
		pts[i] = s.Start
	}
	return pts
}

// ClosestPoint returns the point on the curve nearest to q.
func (ix *Index) ClosestPoint(q r3.Vec) r3.Vec {
	return ix.Nearest(q).Point
}

// Nearest returns the exact closest point on the curve to q. Among equally
// near segments the one with the lowest index wins.
//
// The R-tree nearest neighbor ranks boxes, not segments, so its answer only
// bounds the true distance r. Every segment within r of q has a box meeting
// the cube of half-size r around q; those are searched exhaustively.
func (ix *Index) Nearest(q r3.Vec) Hit {
	qp := rtreego.Point{q.X, q.Y, q.Z}
	first := ix.tree.NearestNeighbor(qp).(*entry)
	best := ix.hit(first.idx, q)

	r := best.Distance*(1+1e-9) + 2*ix.pad
	cube, err := ix.box(q, q, r)
	if err != nil {
		return best
	}
	for _, obj := range ix.tree.SearchIntersect(cube) {
		i := obj.(*entry).idx
		h := ix.hit(i, q)
		if h.Distance < best.Distance || (h.Distance == best.Distance && i < best.Segment) {
			best = h
		}
	}
	return best
}

func (ix *Index) hit(i int, q r3.Vec) Hit {
	p := ix.Segment(i).ClosestPoint(q)
	return Hit{Point: p, Segment: i, Distance: r3.Norm(r3.Sub(q, p))}
}
