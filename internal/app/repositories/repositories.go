package repositories

import (
	"github.com/rs/zerolog"
)

// Repositories holds all the repository instances
type Repositories struct {
	CatalogStore *CatalogStore
}

// NewRepositories wires the CSV loader into a catalog store.
// The store is empty until CatalogStore.Reload succeeds.
func NewRepositories(coursesPath, requirementsPath, defaultType string, lgr zerolog.Logger) *Repositories {
	loader := NewCSVCatalogLoader(coursesPath, requirementsPath, defaultType, lgr)
	return &Repositories{
		CatalogStore: NewCatalogStore(loader, lgr),
	}
}
