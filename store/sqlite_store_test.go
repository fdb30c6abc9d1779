package store

import (
	"context"
	"database/sql"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/ripley/curve"
	"github.com/viant/ripley/engine"
	"github.com/viant/ripley/point"
	"github.com/viant/ripley/ripley"
)

func newStore(t *testing.T) (*SQLiteStore, *sql.DB) {
	t.Helper()
	db, err := engine.Open(":memory:")
	require.NoError(t, err)
	// keep a single connection; each :memory: connection is its own database
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })
	s, err := NewSQLiteStore(context.Background(), db)
	require.NoError(t, err)
	return s, db
}

func TestNewSQLiteStore_NilDB(t *testing.T) {
	_, err := NewSQLiteStore(context.Background(), nil)
	assert.Error(t, err)
}

func TestSQLiteStore_SceneRoundTrip(t *testing.T) {
	s, _ := newStore(t)
	ctx := context.Background()

	scenario := ripley.ReferenceScenario(math.MaxUint64 - 5)
	scene, err := NewScene(scenario, ripley.Domain{Min: ripley.DefaultMinRadius, Max: ripley.DefaultMaxRadius})
	require.NoError(t, err)

	id, err := s.SaveScene(ctx, scene)
	require.NoError(t, err)
	require.NotEmpty(t, id)
	assert.Equal(t, id, scene.ID)

	loaded, err := s.LoadScene(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, scene.Points.Points(), loaded.Points.Points())
	assert.Equal(t, scene.Region, loaded.Region)
	assert.Equal(t, scene.Center, loaded.Center)
	assert.Equal(t, scene.Domain, loaded.Domain)
	assert.Equal(t, scene.Seed, loaded.Seed)
	assert.Equal(t, scene.CreatedAt.UnixMilli(), loaded.CreatedAt.UnixMilli())

	orig, err := scene.Estimator()
	require.NoError(t, err)
	rebuilt, err := loaded.Estimator()
	require.NoError(t, err)
	for _, r := range []float64{0.4, 1, 1.7, 2.25} {
		assert.Equal(t, math.Float64bits(orig.K(r)), math.Float64bits(rebuilt.K(r)), "r=%v", r)
	}

	_, err = s.LoadScene(ctx, "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSQLiteStore_SaveSceneValidation(t *testing.T) {
	s, _ := newStore(t)
	_, err := s.SaveScene(context.Background(), nil)
	assert.Error(t, err)
	_, err = s.SaveScene(context.Background(), &Scene{Region: point.NewRegion(1, 1)})
	assert.Error(t, err)
}

func TestSQLiteStore_Samples(t *testing.T) {
	s, _ := newStore(t)
	ctx := context.Background()

	est, err := ripley.ReferenceScenario(11).Build()
	require.NoError(t, err)
	id, err := SaveEstimator(ctx, s, est, 11)
	require.NoError(t, err)

	radii, err := curve.Radii(est.Domain(), 25, curve.Smootherstep)
	require.NoError(t, err)
	samples := curve.SampleCurve(est, radii)
	require.NoError(t, s.SaveSamples(ctx, id, samples))

	loaded, err := s.Samples(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, samples, loaded)

	// saving again replaces rather than appends
	require.NoError(t, s.SaveSamples(ctx, id, samples[:3]))
	loaded, err = s.Samples(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, samples[:3], loaded)

	assert.ErrorIs(t, s.SaveSamples(ctx, "missing", samples), ErrNotFound)
	_, err = s.Samples(ctx, "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSQLiteStore_CountWithin(t *testing.T) {
	s, _ := newStore(t)
	ctx := context.Background()

	est, err := ripley.ReferenceScenario(99).Build()
	require.NoError(t, err)
	id, err := SaveEstimator(ctx, s, est, 99)
	require.NoError(t, err)

	for _, r := range []float64{0, 0.4, 0.9, 1.5, 2.25, 10} {
		count, err := s.CountWithin(ctx, id, est.Center(), r)
		require.NoError(t, err)
		assert.Equal(t, est.Count(r), count, "r=%v", r)
	}

	synthetic := &Scene{
		Region: point.NewRegion(6, 6.8),
		Domain: ripley.Domain{Min: 0.4, Max: 2.25},
		Points: point.NewPointSet([]point.Point{{0, 0}, {1, 0}, {0, 1}, {2, 2}}),
	}
	sid, err := s.SaveScene(ctx, synthetic)
	require.NoError(t, err)
	count, err := s.CountWithin(ctx, sid, point.New(0, 0), 1)
	require.NoError(t, err)
	assert.Equal(t, 3, count)
}

func TestSQLiteStore_DeleteScene(t *testing.T) {
	s, db := newStore(t)
	ctx := context.Background()

	est, err := ripley.ReferenceScenario(5).Build()
	require.NoError(t, err)
	id, err := SaveEstimator(ctx, s, est, 5)
	require.NoError(t, err)
	require.NoError(t, s.SaveSamples(ctx, id, []curve.Sample{{R: 1, K: 2, Ref: 3}}))

	require.NoError(t, s.DeleteScene(ctx, id))
	_, err = s.LoadScene(ctx, id)
	assert.ErrorIs(t, err, ErrNotFound)

	var left int
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM scene_points WHERE scene_id = ?`, id).Scan(&left))
	assert.Equal(t, 0, left)
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM samples WHERE scene_id = ?`, id).Scan(&left))
	assert.Equal(t, 0, left)

	assert.Error(t, s.DeleteScene(ctx, ""))
}

func TestSQLiteStore_SaveSceneFailureKeepsScene(t *testing.T) {
	s, db := newStore(t)
	ctx := context.Background()

	_, err := db.Exec(`DROP TABLE scene_points`)
	require.NoError(t, err)

	scene, err := NewScene(ripley.ReferenceScenario(2), ripley.Domain{Min: 0.4, Max: 2.25})
	require.NoError(t, err)
	_, err = s.SaveScene(ctx, scene)
	require.Error(t, err)
	assert.Empty(t, scene.ID)
	assert.True(t, scene.CreatedAt.IsZero())

	var n int
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM scenes`).Scan(&n))
	assert.Equal(t, 0, n)
}

func TestSQLiteStore_LoadSceneCorruptBlob(t *testing.T) {
	s, db := newStore(t)
	ctx := context.Background()

	est, err := ripley.ReferenceScenario(8).Build()
	require.NoError(t, err)
	id, err := SaveEstimator(ctx, s, est, 8)
	require.NoError(t, err)

	var blob []byte
	require.NoError(t, db.QueryRow(`SELECT points FROM scenes WHERE id = ?`, id).Scan(&blob))
	assert.Len(t, blob, 4+16*est.Len())

	_, err = db.Exec(`UPDATE scenes SET points = ? WHERE id = ?`, blob[:len(blob)-16], id)
	require.NoError(t, err)
	_, err = s.LoadScene(ctx, id)
	assert.Error(t, err)

	_, err = db.Exec(`UPDATE scenes SET n = n + 1, points = ? WHERE id = ?`, blob, id)
	require.NoError(t, err)
	_, err = s.LoadScene(ctx, id)
	assert.Error(t, err)
}
