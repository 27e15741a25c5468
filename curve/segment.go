// SPDX-License-Identifier: MIT

package curve

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/spatial/r3"
)

// Segment is the straight piece of a curve between two consecutive points.
type Segment struct {
	Start, End r3.Vec
}

// Length returns the Euclidean length of s.
func (s Segment) Length() float64 {
	return r3.Norm(r3.Sub(s.End, s.Start))
}

// ClosestPoint returns the point of s nearest to p. Endpoints are returned
// exactly when the projection falls on or beyond them.
func (s Segment) ClosestPoint(p r3.Vec) r3.Vec {
	d := r3.Sub(s.End, s.Start)
	l2 := r3.Norm2(d)
	if l2 == 0 {
		return s.Start
	}
	t := r3.Dot(r3.Sub(p, s.Start), d) / l2
	switch {
	case t <= 0:
		return s.Start
	case t >= 1:
		return s.End
	}
	return r3.Add(s.Start, r3.Scale(t, d))
}

// Segments connects consecutive points cyclically. Segment i runs from
// points[i] to points[(i+1)%len(points)].
// Returns ErrInvalidCurve for fewer than two points or a non-finite
// coordinate.
func Segments(points []r3.Vec) ([]Segment, error) {
	n := len(points)
	if n < 2 {
		return nil, fmt.Errorf("%w: at least two points required, got %d", ErrInvalidCurve, n)
	}
	for i, p := range points {
		if !finite(p) {
			return nil, fmt.Errorf("%w: point %d has a non-finite coordinate", ErrInvalidCurve, i)
		}
	}
	segs := make([]Segment, n)
	for i := range points {
		segs[i] = Segment{Start: points[i], End: points[(i+1)%n]}
	}
	return segs, nil
}

// Length returns the total length of the closed curve through points.
func Length(points []r3.Vec) (float64, error) {
	segs, err := Segments(points)
	if err != nil {
		return 0, err
	}
	return floats.Sum(lengths(segs)), nil
}

func finite(p r3.Vec) bool {
	for _, c := range [...]float64{p.X, p.Y, p.Z} {
		if math.IsNaN(c) || math.IsInf(c, 0) {
			return false
		}
	}
	return true
}

func lengths(segs []Segment) []float64 {
	out := make([]float64, len(segs))
	for i, s := range segs {
		out[i] = s.Length()
	}
	return out
}
