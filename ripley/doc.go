// Package ripley implements an empirical Ripley's K-function estimator
// measured from a fixed query center over an immutable point field.
//
// An Estimator owns the point set and a spatial index built once at
// construction. K(r) scales the exact closed-ball neighbour count by the
// density normalization lambda = area / N², and Ref(r) is the closed-form
// reference curve 1.5·lambda·π·r². Both are pure functions of r, so a driver
// may pull values for any radius sequence in any order, from any number of
// goroutines.
//
// The N² in lambda reproduces the scene this package was built for; the
// conventional point-process density uses N.
package ripley
