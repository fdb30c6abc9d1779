package engine

import (
	"database/sql"

	_ "modernc.org/sqlite" // register pure-Go SQLite driver
)

// Open opens a SQLite database using the modernc.org/sqlite driver. The
// ripley_* scalar functions are registered first so every connection of the
// returned pool can use them.
//
// For file-based databases, pass a path like "./scenes.sqlite". For in-memory
// databases, pass ":memory:"; each pooled connection then sees its own
// database, so callers usually pin the pool with SetMaxOpenConns(1).
func Open(dsn string) (*sql.DB, error) {
	if err := RegisterFunctions(nil); err != nil {
		return nil, err
	}
	return sql.Open("sqlite", dsn)
}
