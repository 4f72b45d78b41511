package catalog

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"fermata/pkg/models"
)

const albumColumns = "id, title, artist_id, artist, year, genre, label, format, bitrate, track_count, duration, added"

const trackColumns = "id, album_id, title, artist, track_num, disc_num, duration, format, bitrate, path"

type rowScanner interface {
	Scan(dest ...any) error
}

func scanAlbum(row rowScanner) (*models.Album, error) {
	var a models.Album
	err := row.Scan(&a.ID, &a.Title, &a.ArtistID, &a.Artist, &a.Year, &a.Genre,
		&a.Label, &a.Format, &a.Bitrate, &a.TrackCount, &a.Duration, &a.Added)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func scanTrack(row rowScanner) (*models.Track, error) {
	var t models.Track
	err := row.Scan(&t.ID, &t.AlbumID, &t.Title, &t.Artist, &t.TrackNum,
		&t.DiscNum, &t.Duration, &t.Format, &t.Bitrate, &t.Path)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// GetAlbum returns the full album record with its track list ordered by
// disc number then track number. Returns ErrNotFound for an unknown id.
func (s *Store) GetAlbum(id int) (*models.AlbumDetail, error) {
	row := s.conn.QueryRow("SELECT "+albumColumns+" FROM albums WHERE id = ?", id)
	album, err := scanAlbum(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get album %d: %w", id, err)
	}

	rows, err := s.conn.Query(
		"SELECT "+trackColumns+" FROM tracks WHERE album_id = ? ORDER BY disc_num, track_num", id)
	if err != nil {
		return nil, fmt.Errorf("failed to get tracks for album %d: %w", id, err)
	}
	defer rows.Close()

	detail := &models.AlbumDetail{Album: *album, Tracks: []models.Track{}}
	for rows.Next() {
		track, err := scanTrack(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan track: %w", err)
		}
		detail.Tracks = append(detail.Tracks, *track)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate tracks: %w", err)
	}
	return detail, nil
}

// UpdateAlbum applies only the provided fields to an album, rebuilds the
// search index within the same transaction, and returns the updated
// record. A reader immediately after a successful return sees consistent
// search results. Returns ErrNotFound for an unknown id and
// ErrEmptyUpdate when no field is set.
func (s *Store) UpdateAlbum(id int, upd models.AlbumUpdate) (*models.Album, error) {
	set := make([]string, 0, 5)
	args := make([]any, 0, 6)
	if upd.Title != nil {
		set = append(set, "title = ?")
		args = append(args, *upd.Title)
	}
	if upd.Artist != nil {
		set = append(set, "artist = ?")
		args = append(args, *upd.Artist)
	}
	if upd.Year != nil {
		set = append(set, "year = ?")
		args = append(args, *upd.Year)
	}
	if upd.Genre != nil {
		set = append(set, "genre = ?")
		args = append(args, *upd.Genre)
	}
	if upd.Label != nil {
		set = append(set, "label = ?")
		args = append(args, *upd.Label)
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
	if err := tx.QueryRow("SELECT id FROM albums WHERE id = ?", id).Scan(&exists); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to check album %d: %w", id, err)
	}

	query := "UPDATE albums SET " + strings.Join(set, ", ") + " WHERE id = ?"
	if _, err := tx.Exec(query, args...); err != nil {
		return nil, fmt.Errorf("failed to update album %d: %w", id, err)
	}

	if err := rebuildIndex(tx); err != nil {
		return nil, err
	}

	album, err := scanAlbum(tx.QueryRow("SELECT "+albumColumns+" FROM albums WHERE id = ?", id))
	if err != nil {
		return nil, fmt.Errorf("failed to reread album %d: %w", id, err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit album update: %w", err)
	}

	s.logger.WithField("album_id", id).Debug("Updated album")
	return album, nil
}

// DeleteAlbum removes the album's tracks, then the album itself, then
// rebuilds the search index, all in one transaction. Deleting a
// nonexistent id is tolerated, not an error.
func (s *Store) DeleteAlbum(id int) error {
	tx, err := s.conn.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM tracks WHERE album_id = ?", id); err != nil {
		return fmt.Errorf("failed to delete tracks for album %d: %w", id, err)
	}
	if _, err := tx.Exec("DELETE FROM albums WHERE id = ?", id); err != nil {
		return fmt.Errorf("failed to delete album %d: %w", id, err)
	}

	if err := rebuildIndex(tx); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit album delete: %w", err)
	}

	s.logger.WithField("album_id", id).Info("Deleted album")
	return nil
}
