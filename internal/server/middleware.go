package server

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// responseWriter wraps http.ResponseWriter to capture status code & size.
type responseWriter struct {
	http.ResponseWriter
	statusCode int
	size       int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

func (rw *responseWriter) Write(data []byte) (int, error) {
	size, err := rw.ResponseWriter.Write(data)
	rw.size += size
	return size, err
}

// requestLoggingMiddleware tags each request with a generated id and
// logs it (if enabled) with latency, status and size.
func (s *CatalogServer) requestLoggingMiddleware(next http.Handler) http.Handler {
	if !s.config.Logging.RequestLogging {
		return next
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		requestID := uuid.New().String()
		w.Header().Set("X-Request-ID", requestID)

		rw := &responseWriter{
			ResponseWriter: w,
			statusCode:     200,
		}

		next.ServeHTTP(rw, r)

		if !shouldLogRequest(r.URL.Path) {
			return
		}
		s.logger.WithFields(logrus.Fields{
			"request_id": requestID,
			"method":     r.Method,
			"path":       r.URL.Path,
			"remote":     r.RemoteAddr,
			"status":     rw.statusCode,
			"size":       rw.size,
			"duration":   time.Since(start).Round(time.Millisecond).String(),
		}).Info("Request")
	})
}

// corsMiddleware injects CORS headers if enabled in configuration.
func (s *CatalogServer) corsMiddleware(next http.Handler) http.Handler {
	if !s.config.Server.EnableCORS {
		return next
	}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, PATCH, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// shouldLogRequest filters noisy paths from request logging output.
func shouldLogRequest(path string) bool {
	skipPaths := []string{
		"/static/",
		"/favicon.ico",
		"/health",
	}
	for _, skipPath := range skipPaths {
		if len(path) >= len(skipPath) && path[:len(skipPath)] == skipPath {
			return false
		}
	}
	return true
}

// panicRecoveryMiddleware intercepts panics returning HTTP 500 without
// crashing the process.
func (s *CatalogServer) panicRecoveryMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if err := recover(); err != nil {
				s.logger.WithFields(logrus.Fields{
					"method": r.Method,
					"path":   r.URL.Path,
					"panic":  err,
				}).Error("Recovered from panic in handler")
				http.Error(w, "Internal server error", http.StatusInternalServerError)
			}
		}()
		next.ServeHTTP(w, r)
	})
}
