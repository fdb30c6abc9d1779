package index

import (
	"fmt"
	"strings"

	"github.com/viant/ripley/index/bruteforce"
	"github.com/viant/ripley/index/kdtree"
	"github.com/viant/ripley/index/quadtree"
	"github.com/viant/ripley/index/rtree"
	"github.com/viant/ripley/index/vptree"
	"github.com/viant/ripley/point"
)

// Kind names an index implementation.
type Kind string

const (
	KindAuto     Kind = "auto"
	KindBrute    Kind = "brute"
	KindKDTree   Kind = "kdtree"
	KindVPTree   Kind = "vptree"
	KindRTree    Kind = "rtree"
	KindQuadtree Kind = "quadtree"
)

// AutoTreeMinPoints is the point count from which auto selects a k-d tree.
const AutoTreeMinPoints = 32

// Kinds lists every concrete kind.
func Kinds() []Kind {
	return []Kind{KindBrute, KindKDTree, KindVPTree, KindRTree, KindQuadtree}
}

// ParseKind parses a kind name, accepting a few aliases.
func ParseKind(name string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "auto":
		return KindAuto, nil
	case "brute", "bruteforce", "scan":
		return KindBrute, nil
	case "kdtree", "kd", "kd-tree":
		return KindKDTree, nil
	case "vptree", "vp", "cover":
		return KindVPTree, nil
	case "rtree", "r-tree":
		return KindRTree, nil
	case "quadtree", "quad":
		return KindQuadtree, nil
	}
	return "", fmt.Errorf("index: unknown kind %q", name)
}

// Resolve maps auto to a concrete kind for n points.
func (k Kind) Resolve(n int) Kind {
	if k != KindAuto && k != "" {
		return k
	}
	if n >= AutoTreeMinPoints {
		return KindKDTree
	}
	return KindBrute
}

// New returns an empty index of the given kind. Auto must be resolved first.
func New(kind Kind) (Index, error) {
	switch kind {
	case KindBrute:
		return &bruteforce.Index{}, nil
	case KindKDTree:
		return &kdtree.Index{}, nil
	case KindVPTree:
		return &vptree.Index{}, nil
	case KindRTree:
		return rtree.New(), nil
	case KindQuadtree:
		return &quadtree.Index{}, nil
	}
	return nil, fmt.Errorf("index: unsupported kind %q", kind)
}

// Build creates an index of kind (auto resolved against len(points)) and
// loads points into it.
func Build(kind Kind, points []point.Point) (Index, Kind, error) {
	kind = kind.Resolve(len(points))
	idx, err := New(kind)
	if err != nil {
		return nil, kind, err
	}
	if err := idx.Build(points); err != nil {
		return nil, kind, err
	}
	return idx, kind, nil
}
