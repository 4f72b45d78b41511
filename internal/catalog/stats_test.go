package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStats(t *testing.T) {
	store := seededStore(t)

	stats, err := store.Stats()
	require.NoError(t, err)

	assert.Equal(t, len(demoAlbums), stats.TotalAlbums)
	assert.Equal(t, len(demoAlbums)-5, stats.TotalArtists)

	wantTracks := 0
	for _, a := range demoAlbums {
		wantTracks += a.Tracks
	}
	assert.Equal(t, wantTracks, stats.TotalTracks)

	assert.Positive(t, stats.TotalDurationSecs)
	assert.Equal(t, formatDuration(stats.TotalDurationSecs), stats.TotalDurationFmt)
	assert.Positive(t, stats.Genres)

	require.Len(t, stats.Formats, 2)
	assert.Equal(t, "FLAC", stats.Formats[0].Format)
	assert.Equal(t, 35, stats.Formats[0].Count)
	assert.Equal(t, "MP3", stats.Formats[1].Format)
	assert.Equal(t, 21, stats.Formats[1].Count)
}

func TestStatsEmptyCatalog(t *testing.T) {
	store := newTestStore(t)

	stats, err := store.Stats()
	require.NoError(t, err)
	assert.Zero(t, stats.TotalAlbums)
	assert.Zero(t, stats.TotalTracks)
	assert.Zero(t, stats.TotalDurationSecs)
	assert.Equal(t, "0:00", stats.TotalDurationFmt)
	assert.Empty(t, stats.Formats)
}

func TestListGenres(t *testing.T) {
	store := seededStore(t)

	genres, err := store.ListGenres()
	require.NoError(t, err)
	require.NotEmpty(t, genres)

	// Ordered by descending count
	for i := 1; i < len(genres); i++ {
		assert.GreaterOrEqual(t, genres[i-1].Count, genres[i].Count)
	}

	counts := map[string]int{}
	for _, g := range genres {
		counts[g.Genre] = g.Count
	}
	assert.Equal(t, 6, counts["Rock"])
	assert.Equal(t, 7, counts["Hip-Hop"])
	assert.Equal(t, 4, counts["Jazz"])
}

func TestListArtists(t *testing.T) {
	store := seededStore(t)

	artists, err := store.ListArtists()
	require.NoError(t, err)
	require.NotEmpty(t, artists)

	// Album count desc, ties by name asc
	assert.Equal(t, "Daft Punk", artists[0].Name)
	assert.Equal(t, 3, artists[0].AlbumCount)
	for i := 1; i < len(artists); i++ {
		prev, cur := artists[i-1], artists[i]
		if prev.AlbumCount == cur.AlbumCount {
			assert.LessOrEqual(t, prev.Name, cur.Name)
		} else {
			assert.Greater(t, prev.AlbumCount, cur.AlbumCount)
		}
	}
}

func TestListFormats(t *testing.T) {
	store := seededStore(t)

	formats, err := store.ListFormats()
	require.NoError(t, err)
	require.Len(t, formats, 2)
	assert.Equal(t, "FLAC", formats[0].Format)
	assert.Equal(t, "MP3", formats[1].Format)
}

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		seconds int
		want    string
	}{
		{0, "0:00"},
		{59, "0:59"},
		{60, "1:00"},
		{185, "3:05"},
		{3599, "59:59"},
		{3600, "1:00:00"},
		{3725, "1:02:05"},
		{86400, "24:00:00"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, formatDuration(tt.seconds), "seconds=%d", tt.seconds)
	}
}
