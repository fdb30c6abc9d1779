package rtree

import (
	"fmt"

	"github.com/dhconnelly/rtreego"
	"github.com/viant/ripley/point"
)

const (
	minChildren = 25
	maxChildren = 50
	// tolerance is the half-size of the rectangle each point is stored as.
	tolerance = 1e-9
)

// Index is an R-tree over 2D points.
type Index struct {
	tree        *rtreego.Rtree
	minChildren int
	maxChildren int
}

// New creates an Index with the default branching factors.
func New() *Index {
	return &Index{minChildren: minChildren, maxChildren: maxChildren}
}

type entry struct {
	p point.Point
}

func (e *entry) Bounds() rtreego.Rect {
	return rtreego.Point{e.p.X, e.p.Y}.ToRect(tolerance)
}

// Build bulk-loads the tree.
func (i *Index) Build(points []point.Point) error {
	if i.minChildren <= 0 || i.maxChildren < 2*i.minChildren {
		i.minChildren, i.maxChildren = minChildren, maxChildren
	}
	objs := make([]rtreego.Spatial, len(points))
	for j, p := range points {
		if !p.IsFinite() {
			return fmt.Errorf("rtree: non-finite point %v at %d", p, j)
		}
		objs[j] = &entry{p: p}
	}
	i.tree = rtreego.NewTree(2, i.minChildren, i.maxChildren, objs...)
	return nil
}

// CountWithin searches the circle's bounding box, then applies the
// closed-ball test to each candidate.
func (i *Index) CountWithin(center point.Point, r float64) int {
	if i.tree == nil || i.tree.Size() == 0 || !(r >= 0) {
		return 0
	}
	pad := r + tolerance + 1e-9*(1+r+abs(center.X)+abs(center.Y))
	bb, err := rtreego.NewRect(rtreego.Point{center.X - pad, center.Y - pad}, []float64{2 * pad, 2 * pad})
	if err != nil {
		return 0
	}
	count := 0
	for _, s := range i.tree.SearchIntersect(bb) {
		if s.(*entry).p.Within(center, r) {
			count++
		}
	}
	return count
}

// Len returns the number of indexed points.
func (i *Index) Len() int {
	if i.tree == nil {
		return 0
	}
	return i.tree.Size()
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
