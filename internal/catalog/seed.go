package catalog

import (
	"fmt"
	"math/rand"
	"strings"
)

// SeedIfEmpty populates the catalog from the curated demo list when no
// album exists yet. The whole seed runs in one transaction, finishing
// with a full search index rebuild. All randomness (track durations)
// comes from the passed rng, so seeding an empty store with the same
// source is byte-for-byte reproducible. Returns the number of albums
// inserted; a non-empty store is a no-op.
func (s *Store) SeedIfEmpty(rng *rand.Rand) (int, error) {
	var count int
	if err := s.conn.QueryRow("SELECT COUNT(*) FROM albums").Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count albums: %w", err)
	}
	if count > 0 {
		s.logger.WithField("albums", count).Debug("Catalog not empty, skipping demo seed")
		return 0, nil
	}

	tx, err := s.conn.Begin()
	if err != nil {
		return 0, fmt.Errorf("failed to begin seed transaction: %w", err)
	}
	defer tx.Rollback()

	for _, album := range demoAlbums {
		// Upsert artist by unique display name
		if _, err := tx.Exec(
			"INSERT OR IGNORE INTO artists (name, sort) VALUES (?, ?)",
			album.Artist, sortName(album.Artist),
		); err != nil {
			return 0, fmt.Errorf("failed to insert artist %q: %w", album.Artist, err)
		}

		var artistID int
		if err := tx.QueryRow(
			"SELECT id FROM artists WHERE name = ?", album.Artist,
		).Scan(&artistID); err != nil {
			return 0, fmt.Errorf("failed to look up artist %q: %w", album.Artist, err)
		}

		titles := trackTitles(album.Genre, album.Tracks)
		durations := make([]int, album.Tracks)
		total := 0
		for i := range durations {
			durations[i] = trackDuration(rng)
			total += durations[i]
		}

		result, err := tx.Exec(
			`INSERT INTO albums
			 (title, artist_id, artist, year, genre, label, format, bitrate, track_count, duration)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			album.Title, artistID, album.Artist, album.Year,
			album.Genre, album.Label, album.Format,
			album.Bitrate, album.Tracks, total,
		)
		if err != nil {
			return 0, fmt.Errorf("failed to insert album %q: %w", album.Title, err)
		}
		albumID, err := result.LastInsertId()
		if err != nil {
			return 0, fmt.Errorf("failed to get album id for %q: %w", album.Title, err)
		}

		for i, title := range titles {
			num := i + 1
			path := fmt.Sprintf("/music/%s/%s/%02d - %s.%s",
				album.Artist, album.Title, num, title, strings.ToLower(album.Format))
			if _, err := tx.Exec(
				`INSERT INTO tracks
				 (album_id, title, artist, track_num, disc_num, duration, format, bitrate, path)
				 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
				albumID, title, album.Artist, num, 1, durations[i],
				album.Format, album.Bitrate, path,
			); err != nil {
				return 0, fmt.Errorf("failed to insert track %q: %w", title, err)
			}
		}
	}

	// Index must never be queried against data it was never rebuilt for
	if err := rebuildIndex(tx); err != nil {
		return 0, err
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit seed transaction: %w", err)
	}

	s.logger.WithField("albums", len(demoAlbums)).Info("Seeded demo catalog")
	return len(demoAlbums), nil
}

// sortName derives an artist sort key by stripping a leading "The " or
// "A " article token from the display name.
func sortName(name string) string {
	for _, article := range []string{"The ", "A "} {
		if strings.HasPrefix(name, article) {
			return strings.TrimPrefix(name, article)
		}
	}
	return name
}

// trackTitles returns count titles for an album of the given genre,
// cycling through the template list when the album has more tracks than
// templates.
func trackTitles(genre string, count int) []string {
	templates, ok := trackTemplates[genre]
	if !ok {
		templates = trackTemplates["default"]
	}
	titles := make([]string, count)
	for i := 0; i < count; i++ {
		titles[i] = templates[i%len(templates)]
	}
	return titles
}

// trackDuration draws a duration uniformly in [120, 510] seconds
// (2:00 – 8:30).
func trackDuration(rng *rand.Rand) int {
	return 120 + rng.Intn(391)
}
