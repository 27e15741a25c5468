// SPDX-License-Identifier: MIT

package curve

import (
	"errors"
	"fmt"
)

// Sentinel errors for curve construction and comparison.
var (
	// ErrInvalidCurve indicates a curve with fewer than two points or a
	// NaN/Inf coordinate.
	ErrInvalidCurve = errors.New("curve: invalid curve")

	// ErrNilIndex indicates a nil *Index passed where a target is required.
	ErrNilIndex = errors.New("curve: index is nil")

	// ErrDegenerateCurve indicates a curve of zero total length.
	ErrDegenerateCurve = errors.New("curve: total length is zero")

	// ErrOptionViolation indicates an invalid Option.
	ErrOptionViolation = errors.New("curve: invalid option supplied")
)

// Comparison holds both directed distances between two curves.
type Comparison struct {
	Forward  float64 // Distance(a, b)
	Backward float64 // Distance(b, a)
	Mean     float64
}

// Option configures Distance and Compare.
type Option func(*Options)

// Options holds the distance computation tunables.
type Options struct {
	// Workers is the number of goroutines issuing closest-point queries.
	Workers int

	err error
}

// DefaultOptions returns single-worker Options.
func DefaultOptions() Options {
	return Options{Workers: 1}
}

// WithWorkers sets the number of query goroutines. n must be at least 1.
func WithWorkers(n int) Option {
	return func(o *Options) {
		if n < 1 {
			o.err = fmt.Errorf("%w: workers %d", ErrOptionViolation, n)
			return
		}
		o.Workers = n
	}
}

func buildOptions(opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o, o.err
}
