// Package point defines the planar value types shared by this module:
//   - Point and the closed-ball predicate used by every spatial index
//   - Region, the rectangular sampling domain
//   - PointSet, an immutable ordered point sequence
//   - uniform sampling
package point
