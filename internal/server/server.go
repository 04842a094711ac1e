package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/yigit/coursefinder/internal/app/repositories"
	"github.com/yigit/coursefinder/internal/bootstrap"
	"github.com/yigit/coursefinder/internal/config"
	"github.com/yigit/coursefinder/internal/pkg/helpers"
)

// Server holds the state for the HTTP server.
type Server struct {
	config *config.Config
	router *gin.Engine
	store  *repositories.CatalogStore
	logger zerolog.Logger
	http   *http.Server
}

// NewServer loads config and data, then builds the router. It fails when the
// course data cannot be loaded.
func NewServer(configPath string, debug bool) (*Server, error) {
	cfg, lgr, err := bootstrap.LoadConfigAndSetupLogger(configPath, debug)
	if err != nil {
		return nil, fmt.Errorf("failed to load config or setup logger: %w", err)
	}

	repos, err := bootstrap.SetupCatalog(cfg, lgr)
	if err != nil {
		return nil, fmt.Errorf("failed to load course data: %w", err)
	}

	deps := bootstrap.BuildDependencies(repos, lgr)

	router, err := bootstrap.SetupRouter(cfg, deps, lgr)
	if err != nil {
		return nil, fmt.Errorf("failed to setup router: %w", err)
	}

	return &Server{
		config: cfg,
		router: router,
		store:  repos.CatalogStore,
		logger: lgr,
	}, nil
}

// Run starts the HTTP server and blocks until SIGINT/SIGTERM.
// SIGHUP reloads the course data in place.
func (s *Server) Run() error {
	s.logger.Info().Str("port", s.config.Server.Port).Msg("Starting server...")

	s.http = &http.Server{
		Addr:         ":" + s.config.Server.Port,
		Handler:      s.router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	serverErrors := make(chan error, 1)
	go func() {
		s.logger.Info().Str("addr", s.http.Addr).Msg("HTTP server listening")
		serverErrors <- s.http.ListenAndServe()
	}()

	osSignals := make(chan os.Signal, 1)
	signal.Notify(osSignals, syscall.SIGINT, syscall.SIGTERM, syscall.SIGHUP)
	defer signal.Stop(osSignals)

	for {
		select {
		case err := <-serverErrors:
			if !errors.Is(err, http.ErrServerClosed) {
				return fmt.Errorf("error starting server: %w", err)
			}
			return nil
		case sig := <-osSignals:
			if sig == syscall.SIGHUP {
				s.reload()
				continue
			}
			s.logger.Info().Str("signal", sig.String()).Msg("Received OS signal, initiating shutdown...")
			return s.Shutdown(context.Background())
		}
	}
}

// reload swaps in freshly loaded course data; the old data stays on failure
func (s *Server) reload() {
	s.logger.Info().Msg("Reloading course data...")
	if err := s.store.Reload(); err != nil {
		s.logger.Error().Err(err).Msg("Reload failed, keeping previous course data")
		return
	}
	s.logger.Info().Msg("Course data reloaded.")
}

// Shutdown gracefully stops the server.
func (s *Server) Shutdown(ctx context.Context) error {
	timeout := helpers.ParseDuration(s.config.Server.ShutdownTimeout, 10*time.Second)
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	if s.http != nil {
		s.logger.Info().Msg("Shutting down HTTP server...")
		if err := s.http.Shutdown(ctx); err != nil {
			s.logger.Error().Err(err).Msg("HTTP server shutdown error")
			return errors.New("server shutdown completed with errors")
		}
		s.logger.Info().Msg("HTTP server gracefully stopped.")
	}

	s.logger.Info().Msg("Server shutdown process complete.")
	return nil
}
