package store

import (
	"context"
	"database/sql"
)

const schema = `
CREATE TABLE IF NOT EXISTS scenes (
    id         TEXT PRIMARY KEY,
    created_at INTEGER NOT NULL,
    n          INTEGER NOT NULL,
    region_cx  REAL NOT NULL,
    region_cy  REAL NOT NULL,
    width      REAL NOT NULL,
    height     REAL NOT NULL,
    center_x   REAL NOT NULL,
    center_y   REAL NOT NULL,
    r_min      REAL NOT NULL,
    r_max      REAL NOT NULL,
    seed       INTEGER,
    points     BLOB
);
CREATE TABLE IF NOT EXISTS scene_points (
    scene_id TEXT NOT NULL,
    seq      INTEGER NOT NULL,
    x        REAL NOT NULL,
    y        REAL NOT NULL,
    PRIMARY KEY(scene_id, seq)
);
CREATE TABLE IF NOT EXISTS samples (
    scene_id TEXT NOT NULL,
    seq      INTEGER NOT NULL,
    r        REAL NOT NULL,
    k        REAL NOT NULL,
    ref      REAL NOT NULL,
    PRIMARY KEY(scene_id, seq)
);
`

// EnsureSchema creates the scene tables in the provided database if they do
// not already exist.
func EnsureSchema(ctx context.Context, db *sql.DB) error {
	_, err := db.ExecContext(ctx, schema)
	return err
}
