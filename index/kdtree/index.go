package kdtree

import (
	"github.com/viant/ripley/point"
	gonumkd "gonum.org/v1/gonum/spatial/kdtree"
)

// pruneSlack widens the pruning bound so plane distances rounded differently
// from point.Dist2 never discard a boundary point.
const pruneSlack = 1e-9

// Index wraps a gonum k-d tree over 2D points.
type Index struct {
	tree *gonumkd.Tree
	n    int
}

// Build constructs a bounded k-d tree. The input slice is not reordered.
func (i *Index) Build(points []point.Point) error {
	i.n = len(points)
	if len(points) == 0 {
		i.tree = nil
		return nil
	}
	pts := make(gonumkd.Points, len(points))
	for j, p := range points {
		pts[j] = gonumkd.Point{p.X, p.Y}
	}
	i.tree = gonumkd.New(pts, true)
	return nil
}

// CountWithin counts tree points within r of center.
func (i *Index) CountWithin(center point.Point, r float64) int {
	if i.tree == nil || !(r >= 0) {
		return 0
	}
	k := &counter{center: center, r: r, bound: r*r*(1+pruneSlack) + pruneSlack}
	i.tree.NearestSet(k, gonumkd.Point{center.X, center.Y})
	return k.count
}

// Len returns the number of indexed points.
func (i *Index) Len() int { return i.n }

// counter is a kdtree.Keeper that retains nothing: it counts visited points
// passing the closed-ball test and reports a fixed bound for pruning.
type counter struct {
	center point.Point
	r      float64
	bound  float64
	count  int
}

func (c *counter) Keep(cd gonumkd.ComparableDist) {
	p, ok := cd.Comparable.(gonumkd.Point)
	if !ok || len(p) < 2 {
		return
	}
	if point.New(p[0], p[1]).Within(c.center, c.r) {
		c.count++
	}
}

func (c *counter) Max() gonumkd.ComparableDist {
	return gonumkd.ComparableDist{Dist: c.bound}
}

func (c *counter) Len() int           { return 0 }
func (c *counter) Less(i, j int) bool { return false }
func (c *counter) Swap(i, j int)      {}
func (c *counter) Push(x interface{}) {}
func (c *counter) Pop() interface{}   { return nil }
