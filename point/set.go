package point

import "math"

// PointSet is an immutable ordered sequence of points.
type PointSet struct {
	points []Point
}

// NewPointSet copies points into a new PointSet.
func NewPointSet(points []Point) PointSet {
	return PointSet{points: append([]Point(nil), points...)}
}

// Len returns the number of points.
func (s PointSet) Len() int { return len(s.points) }

// At returns the i-th point.
func (s PointSet) At(i int) Point { return s.points[i] }

// Points returns a copy of the points.
func (s PointSet) Points() []Point {
	return append([]Point(nil), s.points...)
}

// CountWithin is the brute-force closed-ball count over the set.
func (s PointSet) CountWithin(center Point, r float64) int {
	return CountWithin(s.points, center, r)
}

// Bounds returns the smallest corners enclosing every point. It returns
// false for an empty set.
func (s PointSet) Bounds() (Point, Point, bool) {
	if len(s.points) == 0 {
		return Point{}, Point{}, false
	}
	lo := Point{X: math.Inf(1), Y: math.Inf(1)}
	hi := Point{X: math.Inf(-1), Y: math.Inf(-1)}
	for _, p := range s.points {
		lo.X = math.Min(lo.X, p.X)
		lo.Y = math.Min(lo.Y, p.Y)
		hi.X = math.Max(hi.X, p.X)
		hi.Y = math.Max(hi.Y, p.Y)
	}
	return lo, hi, true
}
