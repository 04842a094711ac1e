package repositories

import (
	"fmt"
	"sync/atomic"

	"github.com/rs/zerolog"
	"github.com/yigit/coursefinder/internal/pkg/apperrors"
)

// CatalogStore owns the current catalog snapshot.
// Readers always see either the previous or the next complete catalog.
type CatalogStore struct {
	source  CatalogSource
	current atomic.Pointer[Catalog]
	logger  zerolog.Logger
}

// NewCatalogStore creates an empty store; call Reload before serving
func NewCatalogStore(source CatalogSource, logger zerolog.Logger) *CatalogStore {
	return &CatalogStore{
		source: source,
		logger: logger,
	}
}

// Reload builds a new catalog and swaps it in.
// On failure the previous catalog, if any, stays in place.
func (s *CatalogStore) Reload() error {
	catalog, err := s.source.Load()
	if err != nil {
		s.logger.Error().Err(err).Msg("Failed to load course data")
		return fmt.Errorf("failed to load catalog: %w", err)
	}
	s.current.Store(catalog)
	return nil
}

// Current returns the active catalog or apperrors.ErrCatalogNotReady
func (s *CatalogStore) Current() (*Catalog, error) {
	catalog := s.current.Load()
	if catalog == nil {
		return nil, apperrors.ErrCatalogNotReady
	}
	return catalog, nil
}
