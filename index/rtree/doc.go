// Package rtree provides a spatial index backed by github.com/dhconnelly/rtreego.
// Points are stored as small tolerance rectangles; radius counts search the
// circle's bounding box and filter candidates with the closed-ball test.
package rtree
