// SPDX-License-Identifier: MIT

package segclean

import (
	"context"
	"errors"
	"fmt"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/orthotools/segkit/bfs"
)

// Sentinel errors for component extraction and cleaning.
var (
	// ErrGraphNil indicates a nil mesh.
	ErrGraphNil = errors.New("segclean: mesh is nil")

	// ErrLabelCount indicates that the label array does not cover every vertex.
	ErrLabelCount = errors.New("segclean: label count does not match vertex count")

	// ErrNoComponents indicates that no connected component was found.
	ErrNoComponents = errors.New("segclean: no connected components found")

	// ErrInvalidComponent indicates a component vertex outside the mesh.
	ErrInvalidComponent = errors.New("segclean: component references unknown vertex")

	// ErrOptionViolation indicates an invalid Option.
	ErrOptionViolation = errors.New("segclean: invalid option supplied")
)

// Surface is the mesh view Clean needs: adjacency plus vertex positions.
// *mesh.Mesh satisfies it.
type Surface interface {
	bfs.Neighborer
	Position(v int) r3.Vec
}

// Component is a maximal set of vertices connected through same-label
// adjacency. Vertices are listed in BFS order from the seed vertex.
type Component struct {
	Label    int
	Vertices []int
}

// Size returns the number of vertices in the component.
func (c Component) Size() int {
	return len(c.Vertices)
}

// Seed returns the vertex the component was grown from.
func (c Component) Seed() int {
	return c.Vertices[0]
}

// CleanEvent describes one small component handled by Clean.
type CleanEvent struct {
	Component    Component
	Cap          int // cap of the component's label
	Surroundings int // distinct differently-labeled neighbors
	Relabeled    int // vertices whose label changed
}

// Skipped reports whether the component had no differently-labeled neighbor.
func (e CleanEvent) Skipped() bool {
	return e.Surroundings == 0
}

// Option configures Extract, Clean and Run.
type Option func(*Options)

// Options holds the tunables shared by the package entry points.
type Options struct {
	// Ctx allows cancellation of the flood fill.
	Ctx context.Context

	// OnExtract is called once by Extract with the components it found.
	OnExtract func(comps []Component)

	// OnClean is called once per small component after it has been handled.
	OnClean func(ev CleanEvent)

	err error
}

// DefaultOptions returns Options with a background context and no-op hooks.
func DefaultOptions() Options {
	return Options{
		Ctx:       context.Background(),
		OnExtract: func([]Component) {},
		OnClean:   func(CleanEvent) {},
	}
}

// WithContext sets the context checked during extraction.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx == nil {
			o.err = fmt.Errorf("%w: nil context", ErrOptionViolation)
			return
		}
		o.Ctx = ctx
	}
}

// WithOnExtract registers a callback invoked once extraction succeeds.
func WithOnExtract(fn func(comps []Component)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnExtract = fn
		}
	}
}

// WithOnClean registers a callback invoked for every small component.
func WithOnClean(fn func(ev CleanEvent)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnClean = fn
		}
	}
}

func buildOptions(opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o, o.err
}
