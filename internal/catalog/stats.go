package catalog

import (
	"fmt"

	"fermata/pkg/models"
)

// Stats derives summary counts, total duration and the format
// distribution from the catalog. Pure read, no mutation.
func (s *Store) Stats() (*models.Stats, error) {
	stats := &models.Stats{Formats: []models.FormatCount{}}

	counts := []struct {
		query string
		dest  *int
	}{
		{"SELECT COUNT(*) FROM albums", &stats.TotalAlbums},
		{"SELECT COUNT(*) FROM tracks", &stats.TotalTracks},
		{"SELECT COUNT(*) FROM artists", &stats.TotalArtists},
		{"SELECT COALESCE(SUM(duration), 0) FROM albums", &stats.TotalDurationSecs},
		{"SELECT COUNT(DISTINCT genre) FROM albums", &stats.Genres},
	}
	for _, c := range counts {
		if err := s.conn.QueryRow(c.query).Scan(c.dest); err != nil {
			return nil, fmt.Errorf("failed to aggregate stats: %w", err)
		}
	}
	stats.TotalDurationFmt = formatDuration(stats.TotalDurationSecs)

	rows, err := s.conn.Query(
		"SELECT format, COUNT(*) as cnt FROM albums GROUP BY format ORDER BY cnt DESC")
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate formats: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var fc models.FormatCount
		if err := rows.Scan(&fc.Format, &fc.Count); err != nil {
			return nil, fmt.Errorf("failed to scan format count: %w", err)
		}
		stats.Formats = append(stats.Formats, fc)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate format counts: %w", err)
	}
	return stats, nil
}

// ListGenres returns genre facets ordered by descending album count.
func (s *Store) ListGenres() ([]models.GenreCount, error) {
	rows, err := s.conn.Query(
		"SELECT genre, COUNT(*) as count FROM albums GROUP BY genre ORDER BY count DESC")
	if err != nil {
		return nil, fmt.Errorf("failed to list genres: %w", err)
	}
	defer rows.Close()

	genres := []models.GenreCount{}
	for rows.Next() {
		var gc models.GenreCount
		if err := rows.Scan(&gc.Genre, &gc.Count); err != nil {
			return nil, fmt.Errorf("failed to scan genre count: %w", err)
		}
		genres = append(genres, gc)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate genre counts: %w", err)
	}
	return genres, nil
}

// ListArtists returns artist facets ordered by descending album count,
// ties broken by name ascending.
func (s *Store) ListArtists() ([]models.ArtistCount, error) {
	rows, err := s.conn.Query(`
		SELECT a.id, a.name, COUNT(al.id) as album_count
		FROM artists a JOIN albums al ON a.id = al.artist_id
		GROUP BY a.id ORDER BY album_count DESC, a.name ASC`)
	if err != nil {
		return nil, fmt.Errorf("failed to list artists: %w", err)
	}
	defer rows.Close()

	artists := []models.ArtistCount{}
	for rows.Next() {
		var ac models.ArtistCount
		if err := rows.Scan(&ac.ID, &ac.Name, &ac.AlbumCount); err != nil {
			return nil, fmt.Errorf("failed to scan artist count: %w", err)
		}
		artists = append(artists, ac)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate artist counts: %w", err)
	}
	return artists, nil
}

// ListFormats returns format facets ordered by descending album count.
func (s *Store) ListFormats() ([]models.FormatCount, error) {
	rows, err := s.conn.Query(
		"SELECT format, COUNT(*) as count FROM albums GROUP BY format ORDER BY count DESC")
	if err != nil {
		return nil, fmt.Errorf("failed to list formats: %w", err)
	}
	defer rows.Close()

	formats := []models.FormatCount{}
	for rows.Next() {
		var fc models.FormatCount
		if err := rows.Scan(&fc.Format, &fc.Count); err != nil {
			return nil, fmt.Errorf("failed to scan format count: %w", err)
		}
		formats = append(formats, fc)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate format counts: %w", err)
	}
	return formats, nil
}

// formatDuration renders seconds as h:mm:ss, or m:ss under an hour.
func formatDuration(seconds int) string {
	h := seconds / 3600
	m := (seconds % 3600) / 60
	s := seconds % 60
	if h > 0 {
		return fmt.Sprintf("%d:%02d:%02d", h, m, s)
	}
	return fmt.Sprintf("%d:%02d", m, s)
}
