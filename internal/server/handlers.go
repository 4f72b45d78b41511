package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"path/filepath"
	"strconv"
	"strings"

	"fermata/internal/catalog"
	"fermata/pkg/models"
)

// handleHome serves the main SPA / index file from the configured static dir.
func (s *CatalogServer) handleHome(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	http.ServeFile(w, r, filepath.Join(s.config.Server.StaticDir, "index.html"))
}

// handleHealthCheck responds with a minimal liveness payload.
func (s *CatalogServer) handleHealthCheck(w http.ResponseWriter, r *http.Request) {
	s.respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleStats returns catalog summary counts and the format breakdown.
func (s *CatalogServer) handleStats(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		s.respondWithError(w, r, http.StatusMethodNotAllowed, "Method not allowed", nil)
		return
	}
	stats, err := s.store.Stats()
	if err != nil {
		s.respondWithError(w, r, http.StatusInternalServerError, "Error aggregating stats", err)
		return
	}
	s.respondJSON(w, http.StatusOK, stats)
}

// handleListAlbums serves the filter/sort/paginate album listing.
func (s *CatalogServer) handleListAlbums(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		s.respondWithError(w, r, http.StatusMethodNotAllowed, "Method not allowed", nil)
		return
	}

	limit, err := queryInt(r, "limit", 50, 1, 200)
	if err != nil {
		s.respondWithError(w, r, http.StatusBadRequest, err.Error(), nil)
		return
	}
	offset, err := queryInt(r, "offset", 0, 0, -1)
	if err != nil {
		s.respondWithError(w, r, http.StatusBadRequest, err.Error(), nil)
		return
	}

	page, err := s.store.ListAlbums(models.AlbumQuery{
		Term:   r.URL.Query().Get("q"),
		Genre:  r.URL.Query().Get("genre"),
		Artist: r.URL.Query().Get("artist"),
		Format: r.URL.Query().Get("format"),
		Sort:   r.URL.Query().Get("sort"),
		Limit:  limit,
		Offset: offset,
	})
	if err != nil {
		s.respondWithError(w, r, http.StatusInternalServerError, "Error listing albums", err)
		return
	}
	s.respondJSON(w, http.StatusOK, page)
}

// handleAlbumByID dispatches GET/PATCH/DELETE for a single album.
func (s *CatalogServer) handleAlbumByID(w http.ResponseWriter, r *http.Request) {
	id, ok := s.pathID(w, r, "/api/albums/")
	if !ok {
		return
	}

	switch r.Method {
	case http.MethodGet:
		album, err := s.store.GetAlbum(id)
		if err != nil {
			if errors.Is(err, catalog.ErrNotFound) {
				s.respondWithError(w, r, http.StatusNotFound, "Album not found", nil)
				return
			}
			s.respondWithError(w, r, http.StatusInternalServerError, "Error retrieving album", err)
			return
		}
		s.respondJSON(w, http.StatusOK, album)

	case http.MethodPatch:
		var upd models.AlbumUpdate
		if err := json.NewDecoder(r.Body).Decode(&upd); err != nil {
			s.respondWithError(w, r, http.StatusBadRequest, "Invalid request body", err)
			return
		}
		album, err := s.store.UpdateAlbum(id, upd)
		if err != nil {
			s.respondUpdateError(w, r, "Album", err)
			return
		}
		s.respondJSON(w, http.StatusOK, album)

	case http.MethodDelete:
		if err := s.store.DeleteAlbum(id); err != nil {
			s.respondWithError(w, r, http.StatusInternalServerError, "Error deleting album", err)
			return
		}
		s.respondJSON(w, http.StatusOK, map[string]int{"deleted": id})

	default:
		s.respondWithError(w, r, http.StatusMethodNotAllowed, "Method not allowed", nil)
	}
}

// handleListTracks serves the flat track listing with album context.
func (s *CatalogServer) handleListTracks(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		s.respondWithError(w, r, http.StatusMethodNotAllowed, "Method not allowed", nil)
		return
	}

	limit, err := queryInt(r, "limit", 50, 1, 200)
	if err != nil {
		s.respondWithError(w, r, http.StatusBadRequest, err.Error(), nil)
		return
	}
	offset, err := queryInt(r, "offset", 0, 0, -1)
	if err != nil {
		s.respondWithError(w, r, http.StatusBadRequest, err.Error(), nil)
		return
	}

	page, err := s.store.ListTracks(r.URL.Query().Get("q"), limit, offset)
	if err != nil {
		s.respondWithError(w, r, http.StatusInternalServerError, "Error listing tracks", err)
		return
	}
	s.respondJSON(w, http.StatusOK, page)
}

// handleTrackByID handles PATCH of a single track.
func (s *CatalogServer) handleTrackByID(w http.ResponseWriter, r *http.Request) {
	id, ok := s.pathID(w, r, "/api/tracks/")
	if !ok {
		return
	}
	if r.Method != http.MethodPatch {
		s.respondWithError(w, r, http.StatusMethodNotAllowed, "Method not allowed", nil)
		return
	}

	var upd models.TrackUpdate
	if err := json.NewDecoder(r.Body).Decode(&upd); err != nil {
		s.respondWithError(w, r, http.StatusBadRequest, "Invalid request body", err)
		return
	}
	track, err := s.store.UpdateTrack(id, upd)
	if err != nil {
		s.respondUpdateError(w, r, "Track", err)
		return
	}
	s.respondJSON(w, http.StatusOK, track)
}

func (s *CatalogServer) handleListGenres(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		s.respondWithError(w, r, http.StatusMethodNotAllowed, "Method not allowed", nil)
		return
	}
	genres, err := s.store.ListGenres()
	if err != nil {
		s.respondWithError(w, r, http.StatusInternalServerError, "Error listing genres", err)
		return
	}
	s.respondJSON(w, http.StatusOK, genres)
}

func (s *CatalogServer) handleListArtists(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		s.respondWithError(w, r, http.StatusMethodNotAllowed, "Method not allowed", nil)
		return
	}
	artists, err := s.store.ListArtists()
	if err != nil {
		s.respondWithError(w, r, http.StatusInternalServerError, "Error listing artists", err)
		return
	}
	s.respondJSON(w, http.StatusOK, artists)
}

func (s *CatalogServer) handleListFormats(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		s.respondWithError(w, r, http.StatusMethodNotAllowed, "Method not allowed", nil)
		return
	}
	formats, err := s.store.ListFormats()
	if err != nil {
		s.respondWithError(w, r, http.StatusInternalServerError, "Error listing formats", err)
		return
	}
	s.respondJSON(w, http.StatusOK, formats)
}

// pathID extracts and validates the numeric id segment after prefix.
func (s *CatalogServer) pathID(w http.ResponseWriter, r *http.Request, prefix string) (int, bool) {
	idStr := strings.TrimPrefix(r.URL.Path, prefix)
	if idStr == "" || strings.Contains(idStr, "/") {
		s.respondWithError(w, r, http.StatusBadRequest, "Invalid id", nil)
		return 0, false
	}
	id, err := strconv.Atoi(idStr)
	if err != nil || id <= 0 {
		s.respondWithError(w, r, http.StatusBadRequest, "Id must be a positive integer", nil)
		return 0, false
	}
	return id, true
}

// respondUpdateError maps store update errors onto client statuses.
func (s *CatalogServer) respondUpdateError(w http.ResponseWriter, r *http.Request, entity string, err error) {
	switch {
	case errors.Is(err, catalog.ErrNotFound):
		s.respondWithError(w, r, http.StatusNotFound, entity+" not found", nil)
	case errors.Is(err, catalog.ErrEmptyUpdate):
		s.respondWithError(w, r, http.StatusBadRequest, "No fields to update", nil)
	default:
		s.respondWithError(w, r, http.StatusInternalServerError, "Error updating "+strings.ToLower(entity), err)
	}
}
