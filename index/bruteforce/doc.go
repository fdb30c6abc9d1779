// Package bruteforce provides a simple spatial index that answers radius
// counts by scanning all points. Its compact binary format is the point
// BLOB the scene store persists.
package bruteforce
