package vptree

import (
	"sort"

	"github.com/viant/ripley/point"
)

// pruneSlack absorbs rounding in the sqrt distances used for pruning; the
// closed-ball test itself is exact.
const pruneSlack = 1e-9

// Index implements radius counting using a VP-tree to prune search.
type Index struct {
	points []point.Point
	root   *node
}

type node struct {
	idx   int // index into points
	thr   float64
	left  *node
	right *node
}

// Build constructs the VP-tree.
func (i *Index) Build(points []point.Point) error {
	i.points = append([]point.Point(nil), points...)
	if len(points) == 0 {
		i.root = nil
		return nil
	}
	idxs := make([]int, len(points))
	for k := range idxs {
		idxs[k] = k
	}
	i.root = i.buildVP(idxs)
	return nil
}

func (i *Index) buildVP(idxs []int) *node {
	if len(idxs) == 0 {
		return nil
	}
	// pick last as vantage point to avoid extra randomness
	vp := idxs[len(idxs)-1]
	idxs = idxs[:len(idxs)-1]
	if len(idxs) == 0 {
		return &node{idx: vp}
	}
	dists := make([]float64, len(idxs))
	for k, j := range idxs {
		dists[k] = i.points[vp].Distance(i.points[j])
	}
	mid := len(dists) / 2
	order := make([]int, len(idxs))
	for k := range order {
		order[k] = k
	}
	sort.Slice(order, func(a, b int) bool { return dists[order[a]] < dists[order[b]] })
	thr := dists[order[mid]]
	leftIdxs := make([]int, 0, mid+1)
	rightIdxs := make([]int, 0, len(idxs)-(mid+1))
	for rank, k := range order {
		if rank <= mid {
			leftIdxs = append(leftIdxs, idxs[k])
		} else {
			rightIdxs = append(rightIdxs, idxs[k])
		}
	}
	return &node{
		idx:   vp,
		thr:   thr,
		left:  i.buildVP(leftIdxs),
		right: i.buildVP(rightIdxs),
	}
}

// CountWithin counts points within r of center. Left subtrees hold points
// at most thr from the vantage point, right subtrees at least thr.
func (i *Index) CountWithin(center point.Point, r float64) int {
	if i.root == nil || !(r >= 0) {
		return 0
	}
	count := 0
	var search func(n *node)
	search = func(n *node) {
		if n == nil {
			return
		}
		vp := i.points[n.idx]
		if vp.Within(center, r) {
			count++
		}
		d := vp.Distance(center)
		slack := pruneSlack * (1 + d + r)
		if d-r <= n.thr+slack {
			search(n.left)
		}
		if d+r >= n.thr-slack {
			search(n.right)
		}
	}
	search(i.root)
	return count
}

// Len returns the number of indexed points.
func (i *Index) Len() int { return len(i.points) }
