package server

import (
	"context"
	"net/http"
	"path/filepath"
	"time"

	"fermata/internal/catalog"
	"fermata/internal/config"
	"fermata/internal/tunnel"

	"github.com/fsnotify/fsnotify"
	"github.com/sirupsen/logrus"
)

// CatalogServer exposes the catalog store over a thin HTTP API plus
// static file serving for the web UI.
type CatalogServer struct {
	store   *catalog.Store
	config  *config.Config
	logger  *logrus.Logger
	mux     *http.ServeMux
	httpSrv *http.Server
	watcher *fsnotify.Watcher
	tunnel  *tunnel.Service
}

// New creates a catalog server and registers all routes.
func New(cfg *config.Config, store *catalog.Store, logger *logrus.Logger) *CatalogServer {
	if logger == nil {
		logger = logrus.New()
	}
	s := &CatalogServer{
		store:  store,
		config: cfg,
		logger: logger,
		mux:    http.NewServeMux(),
	}
	s.setupRoutes()
	return s
}

func (s *CatalogServer) setupRoutes() {
	s.mux.HandleFunc("/", s.handleHome)
	s.mux.Handle("/static/", http.StripPrefix("/static/",
		http.FileServer(http.Dir(s.config.Server.StaticDir))))
	s.mux.HandleFunc("/health", s.handleHealthCheck)

	s.mux.HandleFunc("/api/stats", s.handleStats)
	s.mux.HandleFunc("/api/albums", s.handleListAlbums)
	s.mux.HandleFunc("/api/albums/", s.handleAlbumByID)
	s.mux.HandleFunc("/api/tracks", s.handleListTracks)
	s.mux.HandleFunc("/api/tracks/", s.handleTrackByID)
	s.mux.HandleFunc("/api/genres", s.handleListGenres)
	s.mux.HandleFunc("/api/artists", s.handleListArtists)
	s.mux.HandleFunc("/api/formats", s.handleListFormats)
}

// Handler returns the full middleware chain around the route mux.
func (s *CatalogServer) Handler() http.Handler {
	var h http.Handler = s.mux
	h = s.corsMiddleware(h)
	h = s.requestLoggingMiddleware(h)
	h = s.panicRecoveryMiddleware(h)
	return h
}

// Start begins serving and blocks until the listener fails or Shutdown
// is called. The optional ngrok tunnel is brought up first if enabled.
func (s *CatalogServer) Start() error {
	localAddress := "http://" + s.config.GetAddress()

	svc, err := tunnel.NewService(&s.config.Tunnel, s.logger)
	if err != nil {
		s.logger.WithError(err).Warn("Tunnel not available")
	} else if svc != nil {
		s.tunnel = svc
		if err := svc.Start(context.Background(), localAddress); err != nil {
			s.logger.WithError(err).Warn("Could not start tunnel")
		}
	}

	s.httpSrv = &http.Server{
		Addr:        s.config.GetAddress(),
		Handler:     s.Handler(),
		ReadTimeout: time.Duration(s.config.Server.ReadTimeout) * time.Second,
	}

	s.logger.WithField("address", localAddress).Info("Catalog server listening")
	if err := s.httpSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Shutdown stops the HTTP listener, tunnel and config watcher.
func (s *CatalogServer) Shutdown(ctx context.Context) error {
	if s.watcher != nil {
		s.watcher.Close()
	}
	if s.tunnel != nil {
		if err := s.tunnel.Stop(); err != nil {
			s.logger.WithError(err).Warn("Failed to stop tunnel")
		}
	}
	if s.httpSrv != nil {
		return s.httpSrv.Shutdown(ctx)
	}
	return nil
}

// WatchConfig monitors the config file and re-applies the logging
// section when it changes. Parse failures are logged and ignored.
func (s *CatalogServer) WatchConfig(configPath string) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	s.watcher = watcher

	go s.watchConfig(configPath)

	// Watch the directory: editors replace the file on save, which
	// drops a watch registered on the file itself.
	if err := watcher.Add(filepath.Dir(configPath)); err != nil {
		return err
	}

	s.logger.WithField("config_path", configPath).Info("Config watcher started")
	return nil
}

func (s *CatalogServer) watchConfig(configPath string) {
	target := filepath.Base(configPath)

	for {
		select {
		case event, ok := <-s.watcher.Events:
			if !ok {
				return
			}
			if filepath.Base(event.Name) != target {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			cfg, err := config.LoadConfig(configPath)
			if err != nil {
				s.logger.WithError(err).Warn("Ignoring config change: reload failed")
				continue
			}
			if err := cfg.Logging.Apply(s.logger); err != nil {
				s.logger.WithError(err).Warn("Ignoring config change: bad logging section")
				continue
			}
			s.config.Logging = cfg.Logging
			s.logger.WithField("level", cfg.Logging.Level).Info("Applied logging config change")

		case err, ok := <-s.watcher.Errors:
			if !ok {
				return
			}
			s.logger.WithError(err).Error("Config watcher error")
		}
	}
}
