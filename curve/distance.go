// SPDX-License-Identifier: MIT

package curve

import (
	"fmt"
	"sync"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/spatial/r3"
)

// Distance returns the length-weighted mean gap from source to target.
//
// For every source segment i with successor next = (i+1) mod N, the shared
// vertex next.Start is matched to its closest point on target, and the gap d
// contributes 0.5·d·(len(i)+len(next)). The sum is divided by the total
// source length.
//
// Returns ErrInvalidCurve when either curve has fewer than two points or a
// non-finite coordinate, and ErrDegenerateCurve when either has zero total
// length. The result is never NaN.
func Distance(source, target []r3.Vec, opts ...Option) (float64, error) {
	o, err := buildOptions(opts)
	if err != nil {
		return 0, err
	}
	src, err := Segments(source)
	if err != nil {
		return 0, fmt.Errorf("source: %w", err)
	}
	ix, err := NewIndex(target)
	if err != nil {
		return 0, fmt.Errorf("target: %w", err)
	}
	return distance(src, ix, o.Workers)
}

// DistanceTo is Distance against a prebuilt target index, for comparing many
// sources with one target. A nil target fails with ErrNilIndex.
func DistanceTo(source []r3.Vec, target *Index, opts ...Option) (float64, error) {
	if target == nil {
		return 0, ErrNilIndex
	}
	o, err := buildOptions(opts)
	if err != nil {
		return 0, err
	}
	src, err := Segments(source)
	if err != nil {
		return 0, fmt.Errorf("source: %w", err)
	}
	return distance(src, target, o.Workers)
}

func distance(src []Segment, target *Index, workers int) (float64, error) {
	if target.Length() == 0 {
		return 0, fmt.Errorf("target: %w", ErrDegenerateCurve)
	}
	lens := lengths(src)
	total := floats.Sum(lens)
	if total == 0 {
		return 0, fmt.Errorf("source: %w", ErrDegenerateCurve)
	}

	n := len(src)
	weights := make([]float64, n)
	for i := range src {
		weights[i] = 0.5 * (lens[i] + lens[(i+1)%n])
	}
	gaps := make([]float64, n)
	query := func(i int) {
		gaps[i] = target.Nearest(src[(i+1)%n].Start).Distance
	}

	workers = min(workers, n)
	if workers <= 1 {
		for i := range src {
			query(i)
		}
	} else {
		var wg sync.WaitGroup
		chunk := (n + workers - 1) / workers
		for lo := 0; lo < n; lo += chunk {
			hi := min(lo+chunk, n)
			wg.Add(1)
			go func(lo, hi int) {
				defer wg.Done()
				for i := lo; i < hi; i++ {
					query(i)
				}
			}(lo, hi)
		}
		wg.Wait()
	}

	return floats.Dot(gaps, weights) / total, nil
}

// Compare returns the distances in both directions and their mean.
func Compare(a, b []r3.Vec, opts ...Option) (Comparison, error) {
	ix, err := NewIndex(b)
	if err != nil {
		return Comparison{}, fmt.Errorf("target: %w", err)
	}
	return CompareTo(a, ix, opts...)
}

// CompareTo is Compare against a prebuilt index of b. Only the index of a is
// built per call.
func CompareTo(a []r3.Vec, b *Index, opts ...Option) (Comparison, error) {
	if b == nil {
		return Comparison{}, ErrNilIndex
	}
	fwd, err := DistanceTo(a, b, opts...)
	if err != nil {
		return Comparison{}, err
	}
	ia, err := NewIndex(a)
	if err != nil {
		return Comparison{}, fmt.Errorf("source: %w", err)
	}
	bwd, err := DistanceTo(b.Points(), ia, opts...)
	if err != nil {
		return Comparison{}, err
	}
	return Comparison{Forward: fwd, Backward: bwd, Mean: 0.5 * (fwd + bwd)}, nil
}

// Project returns, for every point, its closest point on the indexed curve.
func Project(points []r3.Vec, target *Index) ([]r3.Vec, error) {
	if target == nil {
		return nil, ErrNilIndex
	}
	out := make([]r3.Vec, len(points))
	for i, p := range points {
		out[i] = target.ClosestPoint(p)
	}
	return out, nil
}
