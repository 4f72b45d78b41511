package catalog

import (
	"fmt"
	"strings"

	"fermata/pkg/models"
)

// ftsCandidateCap bounds how many album ids a free-text term can pull
// from the search index before the equality filters apply.
const ftsCandidateCap = 200

// sortOrder maps a query sort key to a fixed ORDER BY clause. Unknown
// keys fall back to newest-year-first.
var sortOrder = map[string]string{
	"newest": "year DESC, title ASC",
	"oldest": "year ASC, title ASC",
	"title":  "title ASC",
	"artist": "artist ASC, year DESC",
}

func clampLimit(limit int) int {
	if limit < 1 {
		return 1
	}
	if limit > 200 {
		return 200
	}
	return limit
}

// ListAlbums translates a structured query request into a page of
// albums. A free-text term restricts the candidate set through the
// albums_fts index first (short-circuiting to an empty page on zero
// matches); genre/artist/format are ANDed exact-match predicates on the
// denormalized columns. Total counts matches before pagination.
func (s *Store) ListAlbums(q models.AlbumQuery) (*models.AlbumPage, error) {
	limit := clampLimit(q.Limit)
	offset := q.Offset
	if offset < 0 {
		offset = 0
	}

	conditions := []string{}
	args := []any{}

	if q.Term != "" {
		ids, err := s.searchAlbumIDs(q.Term)
		if err != nil {
			return nil, err
		}
		if len(ids) == 0 {
			return &models.AlbumPage{
				Items:  []models.Album{},
				Total:  0,
				Limit:  limit,
				Offset: offset,
			}, nil
		}
		placeholders := strings.TrimSuffix(strings.Repeat("?,", len(ids)), ",")
		conditions = append(conditions, "id IN ("+placeholders+")")
		for _, id := range ids {
			args = append(args, id)
		}
	}

	if q.Genre != "" {
		conditions = append(conditions, "genre = ?")
		args = append(args, q.Genre)
	}
	if q.Artist != "" {
		conditions = append(conditions, "artist = ?")
		args = append(args, q.Artist)
	}
	if q.Format != "" {
		conditions = append(conditions, "format = ?")
		args = append(args, q.Format)
	}

	where := ""
	if len(conditions) > 0 {
		where = "WHERE " + strings.Join(conditions, " AND ")
	}

	order, ok := sortOrder[q.Sort]
	if !ok {
		order = sortOrder["newest"]
	}

	var total int
	if err := s.conn.QueryRow(
		"SELECT COUNT(*) FROM albums "+where, args...,
	).Scan(&total); err != nil {
		return nil, fmt.Errorf("failed to count albums: %w", err)
	}

	query := fmt.Sprintf("SELECT %s FROM albums %s ORDER BY %s LIMIT ? OFFSET ?",
		albumColumns, where, order)
	rows, err := s.conn.Query(query, append(args, limit, offset)...)
	if err != nil {
		return nil, fmt.Errorf("failed to list albums: %w", err)
	}
	defer rows.Close()

	page := &models.AlbumPage{
		Items:  []models.Album{},
		Total:  total,
		Limit:  limit,
		Offset: offset,
	}
	for rows.Next() {
		album, err := scanAlbum(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan album: %w", err)
		}
		page.Items = append(page.Items, *album)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate albums: %w", err)
	}
	return page, nil
}

// searchAlbumIDs runs a full-text MATCH over title/artist/genre/label,
// capped at ftsCandidateCap matching album ids. The term is passed to
// MATCH verbatim, so FTS5 query syntax in it (unbalanced quotes, bare
// operators) comes back as an error rather than zero matches.
func (s *Store) searchAlbumIDs(term string) ([]int, error) {
	rows, err := s.conn.Query(
		"SELECT rowid FROM albums_fts WHERE albums_fts MATCH ? LIMIT ?",
		term, ftsCandidateCap,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to search albums for %q: %w", term, err)
	}
	defer rows.Close()

	var ids []int
	for rows.Next() {
		var id int
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan search hit: %w", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate search hits: %w", err)
	}
	return ids, nil
}
