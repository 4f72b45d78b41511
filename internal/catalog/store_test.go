package catalog

import (
	"math/rand"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
)

// newTestStore opens a fresh store in a temp dir with the schema
// applied. Closed automatically at test cleanup.
func newTestStore(t *testing.T) *Store {
	t.Helper()

	logger := logrus.New()
	logger.SetLevel(logrus.ErrorLevel) // Reduce noise in tests

	dbPath := filepath.Join(t.TempDir(), "catalog.db")
	store, err := Open(dbPath, 5, logger)
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	require.NoError(t, store.EnsureSchema())
	return store
}

// seededStore returns a store populated with the demo catalog using the
// fixed seed.
func seededStore(t *testing.T) *Store {
	t.Helper()

	store := newTestStore(t)
	seeded, err := store.SeedIfEmpty(rand.New(rand.NewSource(42)))
	require.NoError(t, err)
	require.Equal(t, len(demoAlbums), seeded)
	return store
}

func TestEnsureSchemaIdempotent(t *testing.T) {
	store := newTestStore(t)

	// Safe to call on every start regardless of prior state
	require.NoError(t, store.EnsureSchema())
	require.NoError(t, store.EnsureSchema())

	var count int
	err := store.conn.QueryRow("SELECT COUNT(*) FROM albums").Scan(&count)
	require.NoError(t, err)
	require.Equal(t, 0, count)
}
