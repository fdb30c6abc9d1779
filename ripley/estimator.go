package ripley

import (
	"math"
	"strconv"

	"github.com/golang/glog"
	"github.com/viant/ripley/index"
	"github.com/viant/ripley/point"
)

// Domain is the radius interval [Min, Max] a driver sweeps.
type Domain struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// Validate checks 0 <= Min < Max with both finite.
func (d Domain) Validate() error {
	if math.IsNaN(d.Min) || math.IsNaN(d.Max) || math.IsInf(d.Min, 0) || math.IsInf(d.Max, 0) {
		return invalid("domain", "non-finite bound", nil)
	}
	if d.Min < 0 || d.Min >= d.Max {
		return invalid("domain", "want 0 <= min < max", nil)
	}
	return nil
}

// Estimator evaluates K(r) and Ref(r) for a fixed point set and query
// center. It is immutable after New.
type Estimator struct {
	points point.PointSet
	region point.Region
	center point.Point
	index  index.Index
	kind   index.Kind
	lambda float64
	domain Domain
	policy RadiusPolicy
}

// New validates the inputs, builds the spatial index and computes
// lambda = region.Area() / N².
func New(points point.PointSet, region point.Region, center point.Point, opts ...Option) (*Estimator, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	n := points.Len()
	if n == 0 {
		return nil, invalid("point set", "empty", nil)
	}
	if err := region.Validate(); err != nil {
		return nil, invalid("region", "invalid", err)
	}
	if !center.IsFinite() {
		return nil, invalid("center", "non-finite coordinate", nil)
	}
	if err := o.domain.Validate(); err != nil {
		return nil, err
	}
	pts := points.Points()
	for i, p := range pts {
		if !p.IsFinite() {
			return nil, invalid("point set", "non-finite point at "+strconv.Itoa(i), nil)
		}
	}
	idx, kind, err := index.Build(o.kind, pts)
	if err != nil {
		return nil, invalid("index", string(o.kind), err)
	}
	lambda := region.Area() / (float64(n) * float64(n))
	glog.V(1).Infof("ripley: built %s index over %d points, lambda=%g", kind, n, lambda)
	return &Estimator{
		points: points,
		region: region,
		center: center,
		index:  idx,
		kind:   kind,
		lambda: lambda,
		domain: o.domain,
		policy: o.policy,
	}, nil
}

// radius applies the negative radius policy.
func (e *Estimator) radius(r float64) (float64, error) {
	if r >= 0 {
		return r, nil
	}
	if e.policy == Reject {
		return 0, invalid("radius", "negative or NaN", nil)
	}
	return 0, nil
}

// Count returns the number of points within r of the center, boundary
// included.
func (e *Estimator) Count(r float64) int {
	r, err := e.radius(r)
	if err != nil {
		return 0
	}
	count := e.index.CountWithin(e.center, r)
	if glog.V(3) {
		glog.Infof("ripley: count(%g)=%d", r, count)
	}
	return count
}

// QueryIndex counts points within r of an arbitrary center.
func (e *Estimator) QueryIndex(center point.Point, r float64) int {
	r, err := e.radius(r)
	if err != nil {
		return 0
	}
	return e.index.CountWithin(center, r)
}

// K returns lambda * Count(r).
func (e *Estimator) K(r float64) float64 {
	return e.lambda * float64(e.Count(r))
}

// KChecked is K with the negative radius policy surfaced as an error.
func (e *Estimator) KChecked(r float64) (float64, error) {
	if _, err := e.radius(r); err != nil {
		return 0, err
	}
	return e.K(r), nil
}

// Ref returns 1.5 * lambda * pi * r².
func (e *Estimator) Ref(r float64) float64 {
	r, err := e.radius(r)
	if err != nil {
		return 0
	}
	return 1.5 * e.lambda * math.Pi * (r * r)
}

// RefChecked is Ref with the negative radius policy surfaced as an error.
func (e *Estimator) RefChecked(r float64) (float64, error) {
	if _, err := e.radius(r); err != nil {
		return 0, err
	}
	return e.Ref(r), nil
}

// Lambda returns the density normalization.
func (e *Estimator) Lambda() float64 { return e.lambda }

// Len returns the number of points.
func (e *Estimator) Len() int { return e.points.Len() }

// Points returns the point set.
func (e *Estimator) Points() point.PointSet { return e.points }

// Center returns the query center.
func (e *Estimator) Center() point.Point { return e.center }

// Region returns the sampling region.
func (e *Estimator) Region() point.Region { return e.region }

// Domain returns the radius domain.
func (e *Estimator) Domain() Domain { return e.domain }

// IndexKind returns the resolved index kind.
func (e *Estimator) IndexKind() index.Kind { return e.kind }

// Policy returns the negative radius policy.
func (e *Estimator) Policy() RadiusPolicy { return e.policy }
