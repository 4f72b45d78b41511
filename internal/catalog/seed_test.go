package catalog

import (
	"math/rand"
	"testing"

	"fermata/pkg/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeedIfEmpty(t *testing.T) {
	store := seededStore(t)

	var albums, tracks, artists int
	require.NoError(t, store.conn.QueryRow("SELECT COUNT(*) FROM albums").Scan(&albums))
	require.NoError(t, store.conn.QueryRow("SELECT COUNT(*) FROM tracks").Scan(&tracks))
	require.NoError(t, store.conn.QueryRow("SELECT COUNT(*) FROM artists").Scan(&artists))

	assert.Equal(t, len(demoAlbums), albums)

	wantTracks := 0
	for _, a := range demoAlbums {
		wantTracks += a.Tracks
	}
	assert.Equal(t, wantTracks, tracks)

	// Daft Punk has three albums in the seed list; Radiohead, Miles
	// Davis and Glenn Gould two each. Artists are upserted by name, so
	// five album rows share an existing artist.
	assert.Equal(t, len(demoAlbums)-5, artists)
}

func TestSeedSecondCallIsNoOp(t *testing.T) {
	store := seededStore(t)

	before, err := store.Stats()
	require.NoError(t, err)

	seeded, err := store.SeedIfEmpty(rand.New(rand.NewSource(42)))
	require.NoError(t, err)
	assert.Zero(t, seeded)

	after, err := store.Stats()
	require.NoError(t, err)
	assert.Equal(t, before, after)
}

func TestSeedDeterministic(t *testing.T) {
	a := seededStore(t)
	b := seededStore(t)

	durations := func(s *Store) []int {
		rows, err := s.conn.Query("SELECT duration FROM tracks ORDER BY id")
		require.NoError(t, err)
		defer rows.Close()
		var out []int
		for rows.Next() {
			var d int
			require.NoError(t, rows.Scan(&d))
			out = append(out, d)
		}
		require.NoError(t, rows.Err())
		return out
	}

	assert.Equal(t, durations(a), durations(b))
}

func TestSeedAlbumAggregates(t *testing.T) {
	store := seededStore(t)

	rows, err := store.conn.Query(`
		SELECT a.id, a.track_count, a.duration,
		       COUNT(t.id), COALESCE(SUM(t.duration), 0)
		FROM albums a JOIN tracks t ON t.album_id = a.id
		GROUP BY a.id`)
	require.NoError(t, err)
	defer rows.Close()

	checked := 0
	for rows.Next() {
		var id, trackCount, duration, gotCount, gotSum int
		require.NoError(t, rows.Scan(&id, &trackCount, &duration, &gotCount, &gotSum))
		assert.Equal(t, trackCount, gotCount, "album %d track_count", id)
		assert.Equal(t, duration, gotSum, "album %d duration", id)
		checked++
	}
	require.NoError(t, rows.Err())
	assert.Equal(t, len(demoAlbums), checked)
}

func TestSeedTrackDurationsInRange(t *testing.T) {
	store := seededStore(t)

	var min, max int
	require.NoError(t, store.conn.QueryRow(
		"SELECT MIN(duration), MAX(duration) FROM tracks").Scan(&min, &max))
	assert.GreaterOrEqual(t, min, 120)
	assert.LessOrEqual(t, max, 510)
}

func TestSortName(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"The Beatles", "Beatles"},
		{"A Tribe Called Quest", "Tribe Called Quest"},
		{"Miles Davis", "Miles Davis"},
		{"Them", "Them"},
		{"Average White Band", "Average White Band"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, sortName(tt.name), tt.name)
	}
}

func TestTrackTitlesCycling(t *testing.T) {
	// Classical has 10 templates; a 48 track album cycles through them
	titles := trackTitles("Classical", 48)
	require.Len(t, titles, 48)
	assert.Equal(t, titles[0], titles[10])
	assert.Equal(t, "Allegro", titles[0])

	// Unknown genre falls back to the default template list
	fallback := trackTitles("Shoegaze", 3)
	assert.Equal(t, []string{"Opening", "Main Theme", "Interlude"}, fallback)
}

// End-to-end over the fixed demo catalog: search, edit, re-query.
func TestSeededCatalogScenario(t *testing.T) {
	store := seededStore(t)

	page, err := store.ListAlbums(models.AlbumQuery{Term: "Abbey Road", Limit: 50})
	require.NoError(t, err)
	require.Len(t, page.Items, 1)

	album := page.Items[0]
	assert.Equal(t, "Abbey Road", album.Title)
	assert.Equal(t, "The Beatles", album.Artist)
	assert.Equal(t, 1969, album.Year)

	year := 1970
	updated, err := store.UpdateAlbum(album.ID, models.AlbumUpdate{Year: &year})
	require.NoError(t, err)
	assert.Equal(t, 1970, updated.Year)
	assert.Equal(t, "Abbey Road", updated.Title)
	assert.Equal(t, "The Beatles", updated.Artist)

	rock, err := store.ListAlbums(models.AlbumQuery{Genre: "Rock", Sort: "oldest", Limit: 50})
	require.NoError(t, err)
	require.NotEmpty(t, rock.Items)

	lastYear := 0
	sawUpdate := false
	for _, a := range rock.Items {
		assert.Equal(t, "Rock", a.Genre)
		assert.GreaterOrEqual(t, a.Year, lastYear)
		lastYear = a.Year
		if a.ID == album.ID {
			sawUpdate = true
			assert.Equal(t, 1970, a.Year)
		}
	}
	assert.True(t, sawUpdate, "updated album should appear in Rock listing")
}
