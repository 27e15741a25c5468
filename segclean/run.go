// SPDX-License-Identifier: MIT

package segclean

import (
	"gonum.org/v1/gonum/stat"
)

// Report summarizes one Run.
type Report struct {
	Components int     // connected components found
	Labels     int     // distinct labels
	Cleaned    int     // components below their cap
	Skipped    int     // small components with no differently-labeled neighbor
	Relabeled  int     // vertices whose label changed
	MeanSize   float64 // mean component size before cleaning
}

// Run extracts the label components of g and cleans the small ones in
// place. It fails with ErrNoComponents on a mesh without vertices.
func Run(g Surface, labels []int, threshold int, opts ...Option) (Report, error) {
	if g == nil {
		return Report{}, ErrGraphNil
	}
	comps, err := Extract(g, labels, opts...)
	if err != nil {
		return Report{}, err
	}

	c, err := newCleaner(g, labels, opts)
	if err != nil {
		return Report{}, err
	}
	if err := c.run(comps, threshold); err != nil {
		return Report{}, err
	}

	sizes := make([]float64, len(comps))
	distinct := make(map[int]struct{})
	for i, comp := range comps {
		sizes[i] = float64(comp.Size())
		distinct[comp.Label] = struct{}{}
	}

	return Report{
		Components: len(comps),
		Labels:     len(distinct),
		Cleaned:    c.cleaned,
		Skipped:    c.skipped,
		Relabeled:  c.relabeled,
		MeanSize:   stat.Mean(sizes, nil),
	}, nil
}
