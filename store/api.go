package store

import (
	"context"
	"errors"
	"time"

	"github.com/viant/ripley/curve"
	"github.com/viant/ripley/point"
	"github.com/viant/ripley/ripley"
)

// ErrNotFound is returned when a scene id is unknown.
var ErrNotFound = errors.New("store: scene not found")

// Scene is a persisted point field with everything needed to rebuild its
// estimator.
type Scene struct {
	// ID is assigned on save when empty.
	ID        string
	CreatedAt time.Time
	Region    point.Region
	Center    point.Point
	Domain    ripley.Domain
	// Seed records how Points were sampled; zero when they were supplied.
	Seed   uint64
	Points point.PointSet
}

// NewScene samples a scenario into a Scene.
func NewScene(s ripley.Scenario, domain ripley.Domain) (*Scene, error) {
	points, err := s.Points()
	if err != nil {
		return nil, err
	}
	return &Scene{Region: s.Region, Center: s.Center, Domain: domain, Seed: s.Seed, Points: points}, nil
}

// Estimator rebuilds the scene's estimator.
func (s *Scene) Estimator(opts ...ripley.Option) (*ripley.Estimator, error) {
	opts = append([]ripley.Option{ripley.WithDomain(s.Domain.Min, s.Domain.Max)}, opts...)
	return ripley.New(s.Points, s.Region, s.Center, opts...)
}

// Store defines scene persistence.
type Store interface {
	// SaveScene inserts the scene and returns its id.
	SaveScene(ctx context.Context, scene *Scene) (string, error)

	// LoadScene returns the scene with the given id or ErrNotFound.
	LoadScene(ctx context.Context, id string) (*Scene, error)

	// SaveSamples replaces the sampled curve of a scene.
	SaveSamples(ctx context.Context, id string, samples []curve.Sample) error

	// Samples returns the sampled curve of a scene in sweep order.
	Samples(ctx context.Context, id string) ([]curve.Sample, error)

	// CountWithin recounts the scene's points within r of center in SQL.
	CountWithin(ctx context.Context, id string, center point.Point, r float64) (int, error)

	// DeleteScene removes a scene with its points and samples.
	DeleteScene(ctx context.Context, id string) error
}
