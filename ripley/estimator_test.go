package ripley

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/ripley/index"
	"github.com/viant/ripley/point"
)

func syntheticEstimator(t *testing.T, opts ...Option) *Estimator {
	t.Helper()
	points := point.NewPointSet([]point.Point{{0, 0}, {1, 0}, {0, 1}, {2, 2}})
	est, err := New(points, point.NewRegion(6, 6.8), point.New(0, 0), opts...)
	require.NoError(t, err)
	return est
}

func TestEstimator_Synthetic(t *testing.T) {
	for _, kind := range append(index.Kinds(), index.KindAuto) {
		t.Run(string(kind), func(t *testing.T) {
			est := syntheticEstimator(t, WithIndex(kind))
			lambda := est.Region().Area() / 16
			assert.Equal(t, lambda, est.Lambda())
			assert.InDelta(t, 2.55, est.Lambda(), 1e-12)
			assert.Equal(t, lambda*1, est.K(0.5))
			assert.Equal(t, lambda*3, est.K(1.5))
			assert.Equal(t, lambda*4, est.K(3.0))
			assert.Equal(t, lambda*1, est.K(0), "center coincides with a point")
		})
	}
}

func TestEstimator_KZeroWithoutCoincidentPoint(t *testing.T) {
	points := point.NewPointSet([]point.Point{{1, 0}, {0, 1}})
	est, err := New(points, point.NewRegion(1, 1), point.New(0, 0))
	require.NoError(t, err)
	assert.Equal(t, 0.0, est.K(0))
	assert.Equal(t, 0, est.Count(0))
}

func TestEstimator_Ref(t *testing.T) {
	est := syntheticEstimator(t)
	lambda := est.Lambda()
	for _, r := range []float64{0, 0.4, 1, 2.25, 10} {
		assert.Equal(t, 1.5*lambda*math.Pi*(r*r), est.Ref(r), "r=%v", r)
	}
}

func TestEstimator_InvalidInput(t *testing.T) {
	testCases := []struct {
		description string
		points      point.PointSet
		region      point.Region
		center      point.Point
		opts        []Option
	}{
		{description: "empty point set", points: point.NewPointSet(nil), region: point.NewRegion(1, 1)},
		{description: "zero area", points: point.NewPointSet([]point.Point{{0, 0}}), region: point.NewRegion(0, 1)},
		{description: "negative area", points: point.NewPointSet([]point.Point{{0, 0}}), region: point.NewRegion(-2, 1)},
		{description: "nan center", points: point.NewPointSet([]point.Point{{0, 0}}), region: point.NewRegion(1, 1), center: point.New(math.NaN(), 0)},
		{description: "nan point", points: point.NewPointSet([]point.Point{{math.NaN(), 0}}), region: point.NewRegion(1, 1)},
		{description: "bad domain", points: point.NewPointSet([]point.Point{{0, 0}}), region: point.NewRegion(1, 1), opts: []Option{WithDomain(2, 1)}},
		{description: "unknown index", points: point.NewPointSet([]point.Point{{0, 0}}), region: point.NewRegion(1, 1), opts: []Option{WithIndex("hnsw")}},
	}
	for _, tc := range testCases {
		t.Run(tc.description, func(t *testing.T) {
			est, err := New(tc.points, tc.region, tc.center, tc.opts...)
			require.Error(t, err)
			assert.Nil(t, est)
			assert.ErrorIs(t, err, ErrInvalidInput)
			var target *InvalidInputError
			assert.True(t, errors.As(err, &target))
		})
	}
}

func TestEstimator_InvalidRegionReason(t *testing.T) {
	points := point.NewPointSet([]point.Point{{0, 0}})
	region := point.Region{Center: point.New(math.Inf(1), 0), Width: 1, Height: 1}
	_, err := New(points, region, point.New(0, 0))
	require.Error(t, err)
	assert.ErrorIs(t, err, point.ErrInvalidRegion)
	assert.Contains(t, err.Error(), "non-finite center")
	assert.NotContains(t, err.Error(), "area")
}

func TestEstimator_NegativeRadius(t *testing.T) {
	clamp := syntheticEstimator(t)
	assert.Equal(t, clamp.K(0), clamp.K(-1))
	assert.Equal(t, clamp.K(0), clamp.K(math.NaN()))
	assert.Equal(t, 0.0, clamp.Ref(-1))
	k, err := clamp.KChecked(-1)
	require.NoError(t, err)
	assert.Equal(t, clamp.K(0), k)

	reject := syntheticEstimator(t, WithNegativeRadius(Reject))
	assert.Equal(t, 0.0, reject.K(-1))
	assert.Equal(t, 0.0, reject.Ref(-1))
	_, err = reject.KChecked(-1)
	assert.ErrorIs(t, err, ErrInvalidInput)
	_, err = reject.RefChecked(math.NaN())
	assert.ErrorIs(t, err, ErrInvalidInput)
	k, err = reject.KChecked(1.5)
	require.NoError(t, err)
	assert.Equal(t, reject.Lambda()*3, k)
}

func TestEstimator_MonotoneAndIdempotent(t *testing.T) {
	est, err := ReferenceScenario(42).Build()
	require.NoError(t, err)
	prev := est.K(0)
	for step := 1; step <= 400; step++ {
		r := float64(step) * 0.01
		k := est.K(r)
		assert.LessOrEqual(t, prev, k, "r=%v", r)
		assert.Equal(t, math.Float64bits(k), math.Float64bits(est.K(r)), "r=%v", r)
		prev = k
	}
	assert.Equal(t, est.Lambda()*float64(est.Len()), est.K(100))
}

// TestEstimator_ReferenceScenario cross-checks every index kind against a
// brute-force recount on the 60 point scene for 20 radii in the domain.
func TestEstimator_ReferenceScenario(t *testing.T) {
	scenario := ReferenceScenario(2024)
	points, err := scenario.Points()
	require.NoError(t, err)
	require.Equal(t, 60, points.Len())
	for _, p := range points.Points() {
		require.True(t, scenario.Region.Contains(p))
	}

	for _, kind := range index.Kinds() {
		t.Run(string(kind), func(t *testing.T) {
			est, err := New(points, scenario.Region, scenario.Center, WithIndex(kind))
			require.NoError(t, err)
			assert.Equal(t, kind, est.IndexKind())
			assert.Equal(t, 34/3600.0, est.Lambda())
			for i := 0; i < 20; i++ {
				r := DefaultMinRadius + float64(i)*(DefaultMaxRadius-DefaultMinRadius)/19
				want := est.Lambda() * float64(points.CountWithin(scenario.Center, r))
				assert.Equal(t, want, est.K(r), "r=%v", r)
			}
		})
	}
}

func TestEstimator_QueryIndex(t *testing.T) {
	est := syntheticEstimator(t)
	assert.Equal(t, 3, est.QueryIndex(point.New(2, 2), 2.5))
	assert.Equal(t, 1, est.QueryIndex(point.New(2, 2), 2))
}

func TestEstimator_Axes(t *testing.T) {
	est := syntheticEstimator(t)
	axes := est.Axes()
	assert.Equal(t, DefaultMinRadius, axes.XMin)
	assert.Equal(t, DefaultMaxRadius, axes.XMax)
	assert.Equal(t, DefaultMaxRadius/10, axes.XStep)
	assert.Equal(t, 0.0, axes.YMin)
	assert.Equal(t, est.K(DefaultMaxRadius), axes.YMax)
	assert.Equal(t, axes.YMax/10, axes.YStep)
}
