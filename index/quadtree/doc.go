// Package quadtree provides a spatial index backed by the orb quadtree.
package quadtree
