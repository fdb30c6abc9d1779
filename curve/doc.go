// Package curve turns an estimator into plot samples on demand. A driver
// picks a radius sequence, either evenly spaced or eased over a timeline,
// and pulls K and Ref for each radius; nothing here pushes updates.
package curve
