// SPDX-License-Identifier: MIT

package segclean

import (
	"fmt"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/orthotools/segkit/bfs"
)

// Surroundings returns the vertices adjacent to c whose label differs from
// c.Label, without duplicates, in first-seen order.
func Surroundings(g bfs.Neighborer, labels []int, c Component) []int {
	var out []int
	seen := make(map[int]struct{})
	for _, v := range c.Vertices {
		for _, nbr := range g.Neighbors(v) {
			if labels[nbr] == c.Label {
				continue
			}
			if _, dup := seen[nbr]; dup {
				continue
			}
			seen[nbr] = struct{}{}
			out = append(out, nbr)
		}
	}
	return out
}

// Clean relabels every small component of comps in place and returns the
// number of components that were below their label's cap, whether or not a
// surrounding set was found for them.
//
// comps must come from Extract on the same g and labels. Each vertex of a
// small component independently takes the label of its nearest surrounding
// vertex, so one component may be split across several labels.
func Clean(g Surface, labels []int, comps []Component, threshold int, opts ...Option) (int, error) {
	c, err := newCleaner(g, labels, opts)
	if err != nil {
		return 0, err
	}
	if err := c.run(comps, threshold); err != nil {
		return 0, err
	}
	return c.cleaned, nil
}

// cleaner carries the state of one cleaning pass.
type cleaner struct {
	g        Surface
	labels   []int // written
	snapshot []int // read
	opts     Options

	cleaned   int
	skipped   int
	relabeled int
}

func newCleaner(g Surface, labels []int, opts []Option) (*cleaner, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}
	if n := g.NumVertices(); len(labels) != n {
		return nil, fmt.Errorf("%w: %d labels for %d vertices", ErrLabelCount, len(labels), n)
	}
	snapshot := make([]int, len(labels))
	copy(snapshot, labels)

	return &cleaner{g: g, labels: labels, snapshot: snapshot, opts: o}, nil
}

func (c *cleaner) run(comps []Component, threshold int) error {
	n := c.g.NumVertices()
	for i, comp := range comps {
		for _, v := range comp.Vertices {
			if v < 0 || v >= n {
				return fmt.Errorf("%w: component %d vertex %d (have %d)", ErrInvalidComponent, i, v, n)
			}
		}
	}

	caps := Caps(comps, threshold)
	for _, comp := range comps {
		if !IsSmall(comp, caps) {
			continue
		}
		c.cleaned++
		ev := c.relabel(comp)
		ev.Cap = caps[comp.Label]
		if ev.Skipped() {
			c.skipped++
		}
		c.relabeled += ev.Relabeled
		c.opts.OnClean(ev)
	}
	return nil
}

// relabel moves every vertex of comp to the label of its nearest
// surrounding vertex.
func (c *cleaner) relabel(comp Component) CleanEvent {
	around := Surroundings(c.g, c.snapshot, comp)
	ev := CleanEvent{Component: comp, Surroundings: len(around)}
	if len(around) == 0 {
		return ev
	}

	for _, v := range comp.Vertices {
		p := c.g.Position(v)
		best := around[0]
		bestD := r3.Norm2(r3.Sub(p, c.g.Position(best)))
		for _, u := range around[1:] {
			if d := r3.Norm2(r3.Sub(p, c.g.Position(u))); d < bestD {
				best, bestD = u, d
			}
		}
		if nl := c.snapshot[best]; nl != c.labels[v] {
			c.labels[v] = nl
			ev.Relabeled++
		}
	}
	return ev
}
