// Package kdtree provides a spatial index backed by the gonum k-d tree.
// Radius counts use a distance keeper bounded by the squared radius, which
// matches the closed-ball predicate exactly.
package kdtree
