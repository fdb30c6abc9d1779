package index

import "github.com/viant/ripley/point"

// Index defines a spatial index over a fixed point set.
type Index interface {
	// Build constructs the index from the given points. Points are copied;
	// the caller may reuse the slice.
	Build(points []point.Point) error

	// CountWithin returns the exact number of indexed points whose Euclidean
	// distance to center is at most r.
	CountWithin(center point.Point, r float64) int

	// Len returns the number of indexed points.
	Len() int
}
