// Package store persists scenes (point fields with their region, query
// center and radius domain) and sampled curves in SQLite, so a driver can
// replay bit-identical curves later. It includes:
//   - Scene model and Store interface
//   - SQLiteStore backed by modernc.org/sqlite
//   - Schema helpers for the scenes, scene_points and samples tables
package store
