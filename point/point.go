package point

import "math"

// Point is a 2D coordinate.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// New creates a Point.
func New(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Dist2 returns the squared Euclidean distance to q. The conversions keep
// the compiler from fusing the expression into an FMA, so the result is the
// same on every architecture.
func (p Point) Dist2(q Point) float64 {
	dx := p.X - q.X
	dy := p.Y - q.Y
	return float64(dx*dx) + float64(dy*dy)
}

// Distance returns the Euclidean distance to q.
func (p Point) Distance(q Point) float64 {
	return math.Sqrt(p.Dist2(q))
}

// Within reports whether p lies in the closed ball of radius r around c.
// All indexes in this module decide membership with this predicate. The
// ball is empty for negative or NaN r.
func (p Point) Within(c Point, r float64) bool {
	if !(r >= 0) {
		return false
	}
	return p.Dist2(c) <= float64(r*r)
}

// IsFinite reports whether both coordinates are finite.
func (p Point) IsFinite() bool {
	return !math.IsNaN(p.X) && !math.IsInf(p.X, 0) && !math.IsNaN(p.Y) && !math.IsInf(p.Y, 0)
}

// CountWithin counts points in the closed ball of radius r around center by
// scanning every point.
func CountWithin(points []Point, center Point, r float64) int {
	count := 0
	for _, p := range points {
		if p.Within(center, r) {
			count++
		}
	}
	return count
}
