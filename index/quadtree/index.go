package quadtree

import (
	"fmt"
	"math"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/quadtree"
	"github.com/viant/ripley/point"
)

// Index is a quadtree over the padded bounds of its points.
type Index struct {
	tree *quadtree.Quadtree
	n    int
}

type entry struct {
	p point.Point
}

func (e entry) Point() orb.Point { return orb.Point{e.p.X, e.p.Y} }

// Build inserts every point into a quadtree sized to the point bounds.
func (i *Index) Build(points []point.Point) error {
	i.n = 0
	i.tree = nil
	set := point.NewPointSet(points)
	lo, hi, ok := set.Bounds()
	if !ok {
		return nil
	}
	bound := orb.Bound{Min: orb.Point{lo.X, lo.Y}, Max: orb.Point{hi.X, hi.Y}}
	bound = bound.Pad(1 + math.Max(bound.Max[0]-bound.Min[0], bound.Max[1]-bound.Min[1]))
	tree := quadtree.New(bound)
	for j, p := range points {
		if !p.IsFinite() {
			return fmt.Errorf("quadtree: non-finite point %v at %d", p, j)
		}
		if err := tree.Add(entry{p: p}); err != nil {
			return fmt.Errorf("quadtree: add %v: %w", p, err)
		}
	}
	i.tree = tree
	i.n = len(points)
	return nil
}

// CountWithin collects points in the circle's padded bounding box and
// applies the closed-ball test.
func (i *Index) CountWithin(center point.Point, r float64) int {
	if i.tree == nil || !(r >= 0) {
		return 0
	}
	pad := r + 1e-9*(1+r+math.Abs(center.X)+math.Abs(center.Y))
	bb := orb.Point{center.X, center.Y}.Bound().Pad(pad)
	count := 0
	for _, c := range i.tree.InBound(nil, bb) {
		if c.(entry).p.Within(center, r) {
			count++
		}
	}
	return count
}

// Len returns the number of indexed points.
func (i *Index) Len() int { return i.n }
