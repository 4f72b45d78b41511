package tunnel

import (
	"context"
	"fmt"
	"os"

	"fermata/internal/config"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"golang.ngrok.com/ngrok/v2"
)

// Service exposes the local catalog UI through an ngrok tunnel so the
// library can be reached away from home. Disabled by default.
type Service struct {
	config *config.TunnelConfig
	logger *logrus.Logger
	agent  ngrok.Agent
	tunnel ngrok.EndpointForwarder
}

// NewService creates a tunnel service, or (nil, nil) when disabled. The
// auth token comes from config or the NGROK_AUTHTOKEN environment
// variable, optionally loaded from a .env file.
func NewService(cfg *config.TunnelConfig, logger *logrus.Logger) (*Service, error) {
	if !cfg.Enabled {
		return nil, nil
	}

	if _, err := os.Stat(".env"); err == nil {
		if err := godotenv.Load(".env"); err != nil {
			logger.WithError(err).Warn("Could not load .env file")
		}
	}

	authToken := cfg.AuthToken
	if authToken == "" {
		authToken = os.Getenv("NGROK_AUTHTOKEN")
	}
	if authToken == "" {
		return nil, fmt.Errorf("ngrok auth token not found: set NGROK_AUTHTOKEN in .env or config")
	}

	agent, err := ngrok.NewAgent(ngrok.WithAuthtoken(authToken))
	if err != nil {
		return nil, fmt.Errorf("failed to create ngrok agent: %w", err)
	}

	return &Service{
		config: cfg,
		logger: logger,
		agent:  agent,
	}, nil
}

// Start forwards the public endpoint to the local address.
func (s *Service) Start(ctx context.Context, localAddress string) error {
	if s == nil {
		return nil
	}

	var endpointOpts []ngrok.EndpointOption
	if s.config.Domain != "" {
		endpointOpts = append(endpointOpts, ngrok.WithURL(s.config.Domain))
	}

	tunnel, err := s.agent.Forward(ctx, ngrok.WithUpstream(localAddress), endpointOpts...)
	if err != nil {
		return fmt.Errorf("failed to create ngrok tunnel: %w", err)
	}
	s.tunnel = tunnel

	s.logger.WithFields(logrus.Fields{
		"public_url": tunnel.URL().String(),
		"upstream":   localAddress,
	}).Info("Tunnel active")
	return nil
}

// PublicURL returns the public URL of the tunnel, or "" when inactive.
func (s *Service) PublicURL() string {
	if s == nil || s.tunnel == nil {
		return ""
	}
	return s.tunnel.URL().String()
}

// Stop closes the tunnel.
func (s *Service) Stop() error {
	if s == nil || s.tunnel == nil {
		return nil
	}
	s.logger.Info("Stopping tunnel")
	return s.tunnel.Close()
}
