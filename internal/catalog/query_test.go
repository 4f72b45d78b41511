package catalog

import (
	"testing"

	"fermata/pkg/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListAlbumsDefaults(t *testing.T) {
	store := seededStore(t)

	page, err := store.ListAlbums(models.AlbumQuery{Limit: 50})
	require.NoError(t, err)

	assert.Equal(t, len(demoAlbums), page.Total)
	assert.Len(t, page.Items, 50)
	assert.Equal(t, 50, page.Limit)
	assert.Equal(t, 0, page.Offset)

	// Unrecognized sort falls back to newest-year-first
	lastYear := page.Items[0].Year
	for _, a := range page.Items {
		assert.LessOrEqual(t, a.Year, lastYear)
		lastYear = a.Year
	}
}

func TestListAlbumsExactFilters(t *testing.T) {
	store := seededStore(t)

	tests := []struct {
		name  string
		query models.AlbumQuery
		check func(t *testing.T, a models.Album)
		total int
	}{
		{
			name:  "genre",
			query: models.AlbumQuery{Genre: "Jazz", Limit: 50},
			check: func(t *testing.T, a models.Album) { assert.Equal(t, "Jazz", a.Genre) },
			total: 4,
		},
		{
			name:  "artist",
			query: models.AlbumQuery{Artist: "Daft Punk", Limit: 50},
			check: func(t *testing.T, a models.Album) { assert.Equal(t, "Daft Punk", a.Artist) },
			total: 3,
		},
		{
			name:  "format",
			query: models.AlbumQuery{Format: "MP3", Limit: 50},
			check: func(t *testing.T, a models.Album) { assert.Equal(t, "MP3", a.Format) },
			total: 21,
		},
		{
			name:  "combined",
			query: models.AlbumQuery{Genre: "Hip-Hop", Format: "FLAC", Limit: 50},
			check: func(t *testing.T, a models.Album) {
				assert.Equal(t, "Hip-Hop", a.Genre)
				assert.Equal(t, "FLAC", a.Format)
			},
			total: 3,
		},
		{
			// Exact string equality, not partial match
			name:  "case sensitive no match",
			query: models.AlbumQuery{Genre: "jazz", Limit: 50},
			total: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page, err := store.ListAlbums(tt.query)
			require.NoError(t, err)
			assert.Equal(t, tt.total, page.Total)
			assert.Len(t, page.Items, tt.total)
			if tt.check != nil {
				for _, a := range page.Items {
					tt.check(t, a)
				}
			}
		})
	}
}

func TestListAlbumsSortOrders(t *testing.T) {
	store := seededStore(t)

	t.Run("oldest", func(t *testing.T) {
		page, err := store.ListAlbums(models.AlbumQuery{Sort: "oldest", Limit: 200})
		require.NoError(t, err)
		for i := 1; i < len(page.Items); i++ {
			prev, cur := page.Items[i-1], page.Items[i]
			if prev.Year == cur.Year {
				assert.LessOrEqual(t, prev.Title, cur.Title)
			} else {
				assert.Less(t, prev.Year, cur.Year)
			}
		}
	})

	t.Run("title", func(t *testing.T) {
		page, err := store.ListAlbums(models.AlbumQuery{Sort: "title", Limit: 200})
		require.NoError(t, err)
		for i := 1; i < len(page.Items); i++ {
			assert.LessOrEqual(t, page.Items[i-1].Title, page.Items[i].Title)
		}
	})

	t.Run("artist ties newest first", func(t *testing.T) {
		page, err := store.ListAlbums(models.AlbumQuery{Artist: "Daft Punk", Sort: "artist", Limit: 50})
		require.NoError(t, err)
		require.Len(t, page.Items, 3)
		assert.Equal(t, []int{2013, 2001, 1997},
			[]int{page.Items[0].Year, page.Items[1].Year, page.Items[2].Year})
	})
}

func TestListAlbumsSearchShortCircuit(t *testing.T) {
	store := seededStore(t)

	// Zero index matches short-circuit before any equality filter runs
	page, err := store.ListAlbums(models.AlbumQuery{Term: "zyzzyva", Genre: "Rock", Limit: 50})
	require.NoError(t, err)
	assert.Empty(t, page.Items)
	assert.Zero(t, page.Total)
}

func TestListAlbumsSearchWithFilters(t *testing.T) {
	store := seededStore(t)

	// "Columbia" matches many labels; the genre filter narrows the
	// candidate set from the index
	page, err := store.ListAlbums(models.AlbumQuery{Term: "Columbia", Genre: "Jazz", Limit: 50})
	require.NoError(t, err)
	require.NotEmpty(t, page.Items)
	for _, a := range page.Items {
		assert.Equal(t, "Jazz", a.Genre)
		assert.Equal(t, "Columbia", a.Label)
	}
}

func TestListAlbumsPaginationTotalInvariant(t *testing.T) {
	store := seededStore(t)

	query := models.AlbumQuery{Genre: "Hip-Hop", Sort: "title", Limit: 3}
	first, err := store.ListAlbums(query)
	require.NoError(t, err)
	require.NotZero(t, first.Total)

	// total equals the count of items obtainable by walking all pages
	seen := 0
	for offset := 0; ; offset += query.Limit {
		query.Offset = offset
		page, err := store.ListAlbums(query)
		require.NoError(t, err)
		assert.Equal(t, first.Total, page.Total)
		if len(page.Items) == 0 {
			break
		}
		seen += len(page.Items)
	}
	assert.Equal(t, first.Total, seen)
}

func TestListAlbumsLimitClamped(t *testing.T) {
	store := seededStore(t)

	page, err := store.ListAlbums(models.AlbumQuery{Limit: 100000})
	require.NoError(t, err)
	assert.Equal(t, 200, page.Limit)

	page, err = store.ListAlbums(models.AlbumQuery{Limit: -3, Offset: -10})
	require.NoError(t, err)
	assert.Equal(t, 1, page.Limit)
	assert.Equal(t, 0, page.Offset)
	assert.Len(t, page.Items, 1)
}

func TestListTracks(t *testing.T) {
	store := seededStore(t)

	t.Run("no term pages all tracks", func(t *testing.T) {
		page, err := store.ListTracks("", 10, 0)
		require.NoError(t, err)
		assert.Len(t, page.Items, 10)

		wantTotal := 0
		for _, a := range demoAlbums {
			wantTotal += a.Tracks
		}
		assert.Equal(t, wantTotal, page.Total)

		for _, tr := range page.Items {
			assert.NotEmpty(t, tr.AlbumTitle)
			assert.NotEmpty(t, tr.Genre)
		}
	})

	t.Run("term matches title case-insensitively", func(t *testing.T) {
		page, err := store.ListTracks("blue note", 50, 0)
		require.NoError(t, err)
		require.NotEmpty(t, page.Items)
		for _, tr := range page.Items {
			assert.Equal(t, "Blue Note", tr.Title)
		}
	})

	t.Run("term matches artist substring", func(t *testing.T) {
		page, err := store.ListTracks("Coltrane", 50, 0)
		require.NoError(t, err)
		require.NotEmpty(t, page.Items)
		for _, tr := range page.Items {
			assert.Equal(t, "John Coltrane", tr.Artist)
			assert.Equal(t, "A Love Supreme", tr.AlbumTitle)
		}
	})

	t.Run("no matches", func(t *testing.T) {
		page, err := store.ListTracks("zyzzyva", 50, 0)
		require.NoError(t, err)
		assert.Empty(t, page.Items)
		assert.Zero(t, page.Total)
	})
}
