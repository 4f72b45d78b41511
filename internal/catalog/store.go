package catalog

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	_ "modernc.org/sqlite"
)

// ErrNotFound is returned when a referenced album or track id does not
// exist in the catalog.
var ErrNotFound = errors.New("catalog: not found")

// ErrEmptyUpdate is returned when a partial update carries no fields.
var ErrEmptyUpdate = errors.New("catalog: no fields to update")

// Store owns persistence for artists, albums and tracks and keeps the
// albums_fts full-text index synchronized with the primary tables on
// every mutation. It is safe for concurrent use because the underlying
// *sql.DB is concurrency-safe; concurrent writes to the same row race
// with last-commit-wins semantics.
type Store struct {
	conn   *sql.DB
	logger *logrus.Logger
}

// Open opens (or creates) a SQLite database at the provided path and
// applies lightweight performance-oriented pragmas (WAL, foreign keys,
// busy timeout). Caller should Close() it when finished and call
// EnsureSchema before first use.
func Open(dbPath string, maxConns int, logger *logrus.Logger) (*Store, error) {
	if logger == nil {
		logger = logrus.New()
	}
	if maxConns < 1 {
		maxConns = 5
	}

	conn, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// SQLite works better with fewer connections
	conn.SetMaxOpenConns(maxConns)
	conn.SetMaxIdleConns(2)
	conn.SetConnMaxLifetime(15 * time.Minute)

	pragmas := []string{
		"PRAGMA journal_mode=WAL;",
		"PRAGMA synchronous=NORMAL;",
		"PRAGMA foreign_keys=ON;",
		"PRAGMA busy_timeout=5000;",
		"PRAGMA temp_store=memory;",
	}

	for _, pragma := range pragmas {
		if _, err := conn.Exec(pragma); err != nil {
			logger.WithError(err).WithField("pragma", pragma).Warn("Failed to set pragma")
		}
	}

	store := &Store{
		conn:   conn,
		logger: logger,
	}

	logger.WithField("db_path", dbPath).Info("Database opened")
	return store, nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	if s.conn != nil {
		return s.conn.Close()
	}
	return nil
}

// rebuildIndex re-derives the albums_fts index from the current albums
// rows. Rebuild is full, not incremental: every mutation touching album
// title/artist/genre/label re-runs it, trading write latency for
// correctness simplicity at expected catalog sizes.
func rebuildIndex(tx *sql.Tx) error {
	if _, err := tx.Exec(`INSERT INTO albums_fts(albums_fts) VALUES ('rebuild')`); err != nil {
		return fmt.Errorf("failed to rebuild search index: %w", err)
	}
	return nil
}
