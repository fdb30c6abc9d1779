// Package vptree provides a vantage-point tree for Euclidean radius counts.
package vptree
