// Package index defines a minimal abstraction for planar spatial indexes
// that answer exact closed-ball counting queries over a fixed point set.
// Implementations in this module include a brute-force baseline, a k-d tree,
// a vantage-point tree, an R-tree and a quadtree. Each one only prunes; the
// final membership test is always point.Point.Within, so every kind returns
// the same count as a linear scan.
package index
