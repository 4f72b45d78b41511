package catalog

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"fermata/pkg/models"
)

// ListTracks returns a page of tracks joined with their owning album's
// title and genre. A non-empty term is a case-insensitive substring
// match against track title or track artist (not the full-text index).
// Total counts all matches before pagination.
func (s *Store) ListTracks(term string, limit, offset int) (*models.TrackPage, error) {
	limit = clampLimit(limit)
	if offset < 0 {
		offset = 0
	}

	where := ""
	args := []any{}
	if term != "" {
		where = "WHERE t.title LIKE ? OR t.artist LIKE ?"
		pattern := "%" + term + "%"
		args = append(args, pattern, pattern)
	}

	var total int
	if err := s.conn.QueryRow(
		"SELECT COUNT(*) FROM tracks t "+where, args...,
	).Scan(&total); err != nil {
		return nil, fmt.Errorf("failed to count tracks: %w", err)
	}

	query := fmt.Sprintf(`
		SELECT t.id, t.album_id, t.title, t.artist, t.track_num, t.disc_num,
		       t.duration, t.format, t.bitrate, t.path, a.title, a.genre
		FROM tracks t JOIN albums a ON t.album_id = a.id
		%s
		ORDER BY t.artist, t.title
		LIMIT ? OFFSET ?`, where)
	rows, err := s.conn.Query(query, append(args, limit, offset)...)
	if err != nil {
		return nil, fmt.Errorf("failed to list tracks: %w", err)
	}
	defer rows.Close()

	page := &models.TrackPage{
		Items:  []models.TrackWithAlbum{},
		Total:  total,
		Limit:  limit,
		Offset: offset,
	}
	for rows.Next() {
		var t models.TrackWithAlbum
		if err := rows.Scan(&t.ID, &t.AlbumID, &t.Title, &t.Artist, &t.TrackNum,
			&t.DiscNum, &t.Duration, &t.Format, &t.Bitrate, &t.Path,
			&t.AlbumTitle, &t.Genre); err != nil {
			return nil, fmt.Errorf("failed to scan track: %w", err)
		}
		page.Items = append(page.Items, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate tracks: %w", err)
	}
	return page, nil
}

// UpdateTrack applies only the provided fields to a track and returns
// the updated record. It deliberately never recomputes the owning
// album's track_count or duration aggregates: those are set once at
// creation time, and callers must not assume aggregate consistency
// after a track-level edit. Returns ErrNotFound / ErrEmptyUpdate under
// the same contract as UpdateAlbum.
func (s *Store) UpdateTrack(id int, upd models.TrackUpdate) (*models.Track, error) {
	set := make([]string, 0, 3)
	args := make([]any, 0, 4)
	if upd.Title != nil {
		set = append(set, "title = ?")
		args = append(args, *upd.Title)
	}
	if upd.TrackNum != nil {
		set = append(set, "track_num = ?")
		args = append(args, *upd.TrackNum)
	}
	if upd.DiscNum != nil {
		set = append(set, "disc_num = ?")
		args = append(args, *upd.DiscNum)
	}
	if len(set) == 0 {
		return nil, ErrEmptyUpdate
	}
	args = append(args, id)

	tx, err := s.conn.Begin()
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var exists int
	if err := tx.QueryRow("SELECT id FROM tracks WHERE id = ?", id).Scan(&exists); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to check track %d: %w", id, err)
	}

	query := "UPDATE tracks SET " + strings.Join(set, ", ") + " WHERE id = ?"
	if _, err := tx.Exec(query, args...); err != nil {
		return nil, fmt.Errorf("failed to update track %d: %w", id, err)
	}

	track, err := scanTrack(tx.QueryRow("SELECT "+trackColumns+" FROM tracks WHERE id = ?", id))
	if err != nil {
		return nil, fmt.Errorf("failed to reread track %d: %w", id, err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit track update: %w", err)
	}

	s.logger.WithField("track_id", id).Debug("Updated track")
	return track, nil
}
