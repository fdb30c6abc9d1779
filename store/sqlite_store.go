package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/golang/glog"
	"github.com/google/uuid"
	"github.com/viant/ripley/curve"
	"github.com/viant/ripley/index/bruteforce"
	"github.com/viant/ripley/point"
	"github.com/viant/ripley/ripley"
)

// SQLiteStore implements Store on a SQLite database. Points are kept twice:
// as a BLOB in the bruteforce index format on the scene row for exact
// reloads, and as scene_points rows so SQL can recount them with
// ripley_within.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore creates a new SQLite-backed Store. It ensures the schema
// exists in the provided database. The db should come from engine.Open so
// the ripley_* functions are registered.
func NewSQLiteStore(ctx context.Context, db *sql.DB) (*SQLiteStore, error) {
	if db == nil {
		return nil, fmt.Errorf("store: db is nil")
	}
	if err := EnsureSchema(ctx, db); err != nil {
		return nil, err
	}
	return &SQLiteStore{db: db}, nil
}

// SaveScene inserts the scene and its points in one transaction.
func (s *SQLiteStore) SaveScene(ctx context.Context, scene *Scene) (string, error) {
	if scene == nil {
		return "", fmt.Errorf("store: scene is nil")
	}
	if scene.Points.Len() == 0 {
		return "", fmt.Errorf("store: scene has no points")
	}
	id := scene.ID
	if id == "" {
		id = uuid.NewString()
	}
	createdAt := scene.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	}
	points := scene.Points.Points()
	var field bruteforce.Index
	if err := field.Build(points); err != nil {
		return "", err
	}
	blob, err := field.MarshalBinary()
	if err != nil {
		return "", err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return "", err
	}
	defer func() { _ = tx.Rollback() }()

	_, err = tx.ExecContext(ctx, `INSERT INTO scenes(id, created_at, n, region_cx, region_cy, width, height,
    center_x, center_y, r_min, r_max, seed, points) VALUES(?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		id, createdAt.UnixMilli(), len(points),
		scene.Region.Center.X, scene.Region.Center.Y, scene.Region.Width, scene.Region.Height,
		scene.Center.X, scene.Center.Y, scene.Domain.Min, scene.Domain.Max,
		int64(scene.Seed), blob)
	if err != nil {
		return "", err
	}

	stmt, err := tx.PrepareContext(ctx, `INSERT INTO scene_points(scene_id, seq, x, y) VALUES(?, ?, ?, ?)`)
	if err != nil {
		return "", err
	}
	defer stmt.Close()
	for i, p := range points {
		if _, err := stmt.ExecContext(ctx, id, i, p.X, p.Y); err != nil {
			return "", err
		}
	}
	if err := tx.Commit(); err != nil {
		return "", err
	}
	scene.ID, scene.CreatedAt = id, createdAt
	glog.V(1).Infof("store: saved scene %s with %d points", id, len(points))
	return id, nil
}

// LoadScene reads a scene row and decodes its point BLOB.
func (s *SQLiteStore) LoadScene(ctx context.Context, id string) (*Scene, error) {
	row := s.db.QueryRowContext(ctx, `SELECT created_at, n, region_cx, region_cy, width, height,
    center_x, center_y, r_min, r_max, seed, points FROM scenes WHERE id = ?`, id)
	var (
		createdAt int64
		n         int
		seed      int64
		blob      []byte
		scene     = &Scene{ID: id}
	)
	err := row.Scan(&createdAt, &n,
		&scene.Region.Center.X, &scene.Region.Center.Y, &scene.Region.Width, &scene.Region.Height,
		&scene.Center.X, &scene.Center.Y, &scene.Domain.Min, &scene.Domain.Max, &seed, &blob)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	if err != nil {
		return nil, err
	}
	var field bruteforce.Index
	if err := field.UnmarshalBinary(blob); err != nil {
		return nil, fmt.Errorf("store: scene %s: %w", id, err)
	}
	if field.Len() != n {
		return nil, fmt.Errorf("store: scene %s has %d points, row says %d", id, field.Len(), n)
	}
	scene.CreatedAt = time.UnixMilli(createdAt).UTC()
	scene.Seed = uint64(seed)
	scene.Points = point.NewPointSet(field.Points())
	return scene, nil
}

// SaveSamples replaces the scene's samples.
func (s *SQLiteStore) SaveSamples(ctx context.Context, id string, samples []curve.Sample) error {
	if err := s.exists(ctx, id); err != nil {
		return err
	}
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `DELETE FROM samples WHERE scene_id = ?`, id); err != nil {
		return err
	}
	stmt, err := tx.PrepareContext(ctx, `INSERT INTO samples(scene_id, seq, r, k, ref) VALUES(?, ?, ?, ?, ?)`)
	if err != nil {
		return err
	}
	defer stmt.Close()
	for i, sample := range samples {
		if _, err := stmt.ExecContext(ctx, id, i, sample.R, sample.K, sample.Ref); err != nil {
			return err
		}
	}
	return tx.Commit()
}

// Samples returns the scene's samples ordered by sweep position.
func (s *SQLiteStore) Samples(ctx context.Context, id string) ([]curve.Sample, error) {
	if err := s.exists(ctx, id); err != nil {
		return nil, err
	}
	rows, err := s.db.QueryContext(ctx, `SELECT r, k, ref FROM samples WHERE scene_id = ? ORDER BY seq`, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []curve.Sample
	for rows.Next() {
		var sample curve.Sample
		if err := rows.Scan(&sample.R, &sample.K, &sample.Ref); err != nil {
			return nil, err
		}
		out = append(out, sample)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// CountWithin counts scene_points rows passing ripley_within.
func (s *SQLiteStore) CountWithin(ctx context.Context, id string, center point.Point, r float64) (int, error) {
	if err := s.exists(ctx, id); err != nil {
		return 0, err
	}
	var count int
	err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM scene_points
    WHERE scene_id = ? AND ripley_within(x, y, ?, ?, ?) = 1`, id, center.X, center.Y, r).Scan(&count)
	return count, err
}

// DeleteScene removes the scene, its points and its samples.
func (s *SQLiteStore) DeleteScene(ctx context.Context, id string) error {
	if id == "" {
		return fmt.Errorf("store: DeleteScene called with empty id")
	}
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()
	for _, stmt := range []string{
		`DELETE FROM samples WHERE scene_id = ?`,
		`DELETE FROM scene_points WHERE scene_id = ?`,
		`DELETE FROM scenes WHERE id = ?`,
	} {
		if _, err := tx.ExecContext(ctx, stmt, id); err != nil {
			return err
		}
	}
	return tx.Commit()
}

func (s *SQLiteStore) exists(ctx context.Context, id string) error {
	var one int
	err := s.db.QueryRowContext(ctx, `SELECT 1 FROM scenes WHERE id = ?`, id).Scan(&one)
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	return err
}

// Ensure SQLiteStore satisfies the Store interface.
var _ Store = (*SQLiteStore)(nil)

// SaveEstimator persists an estimator's field as a new scene.
func SaveEstimator(ctx context.Context, s Store, est *ripley.Estimator, seed uint64) (string, error) {
	return s.SaveScene(ctx, &Scene{
		Region: est.Region(),
		Center: est.Center(),
		Domain: est.Domain(),
		Seed:   seed,
		Points: est.Points(),
	})
}
