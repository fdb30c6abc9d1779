package point

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidRegion is returned for regions without a positive finite area.
var ErrInvalidRegion = errors.New("point: invalid region")

// Region is an axis-aligned rectangle given by its center and extents.
type Region struct {
	Center Point   `json:"center"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// NewRegion creates a Region centered at the origin.
func NewRegion(width, height float64) Region {
	return Region{Width: width, Height: height}
}

// Area returns Width*Height.
func (r Region) Area() float64 {
	return r.Width * r.Height
}

// Min returns the lower-left corner.
func (r Region) Min() Point {
	return Point{X: r.Center.X - r.Width/2, Y: r.Center.Y - r.Height/2}
}

// Max returns the upper-right corner.
func (r Region) Max() Point {
	return Point{X: r.Center.X + r.Width/2, Y: r.Center.Y + r.Height/2}
}

// Contains reports whether p lies inside the region, borders included.
func (r Region) Contains(p Point) bool {
	lo, hi := r.Min(), r.Max()
	return p.X >= lo.X && p.X <= hi.X && p.Y >= lo.Y && p.Y <= hi.Y
}

// Validate checks that the region has finite, strictly positive extents.
func (r Region) Validate() error {
	if !r.Center.IsFinite() {
		return fmt.Errorf("%w: non-finite center %v", ErrInvalidRegion, r.Center)
	}
	if !(r.Width > 0) || !(r.Height > 0) || math.IsInf(r.Width, 0) || math.IsInf(r.Height, 0) {
		return fmt.Errorf("%w: extents %vx%v", ErrInvalidRegion, r.Width, r.Height)
	}
	if area := r.Area(); !(area > 0) || math.IsInf(area, 0) {
		return fmt.Errorf("%w: area %v", ErrInvalidRegion, area)
	}
	return nil
}
