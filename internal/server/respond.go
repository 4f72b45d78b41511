package server

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/sirupsen/logrus"
)

// respondJSON writes v as a JSON response with the given status.
func (s *CatalogServer) respondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.WithError(err).Error("Failed to encode JSON response")
	}
}

// respondWithError sends a structured error response and logs it.
func (s *CatalogServer) respondWithError(w http.ResponseWriter, r *http.Request, statusCode int, message string, err error) {
	logEntry := s.logger.WithFields(logrus.Fields{
		"method":      r.Method,
		"path":        r.URL.Path,
		"status_code": statusCode,
		"message":     message,
	})
	if err != nil {
		logEntry = logEntry.WithError(err)
	}

	if statusCode >= 500 {
		logEntry.Error("Server error")
	} else {
		logEntry.Warn("Client error")
	}

	s.respondJSON(w, statusCode, map[string]any{
		"error": message,
		"code":  statusCode,
	})
}

// queryInt parses an integer query parameter with declared bounds. A
// missing parameter yields def; max < 0 means unbounded above.
func queryInt(r *http.Request, name string, def, min, max int) (int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return def, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer", name)
	}
	if v < min || (max >= 0 && v > max) {
		if max >= 0 {
			return 0, fmt.Errorf("%s must be between %d and %d", name, min, max)
		}
		return 0, fmt.Errorf("%s must be at least %d", name, min)
	}
	return v, nil
}
