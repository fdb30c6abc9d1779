package ripley

import "github.com/viant/ripley/point"

// Scenario describes a random scene: N uniform points in Region, queried
// from Center.
type Scenario struct {
	Region point.Region `json:"region"`
	Center point.Point  `json:"center"`
	N      int          `json:"n"`
	Seed   uint64       `json:"seed"`
}

// ReferenceScenario returns the 6.8x5 region centered at the origin with 60
// points, queried from the origin.
func ReferenceScenario(seed uint64) Scenario {
	return Scenario{
		Region: point.NewRegion(6.8, 5),
		N:      DefaultPointCount,
		Seed:   seed,
	}
}

// Points samples the scenario's point set.
func (s Scenario) Points() (point.PointSet, error) {
	points, err := point.Sample(s.N, s.Region, point.NewSource(s.Seed))
	if err != nil {
		return point.PointSet{}, invalid("scenario", "sampling failed", err)
	}
	return points, nil
}

// Build samples the points and constructs an Estimator.
func (s Scenario) Build(opts ...Option) (*Estimator, error) {
	points, err := s.Points()
	if err != nil {
		return nil, err
	}
	return New(points, s.Region, s.Center, opts...)
}
