package store

import (
	"context"

	"github.com/hearthkeep/hearthkeep-api/internal/domain"
)

// CatalogStore defines the interface for the stored template catalog.
type CatalogStore interface {
	// ListTemplates returns every template in the stored catalog. An empty
	// catalog is not an error; generation falls back to the built-in
	// templates.
	ListTemplates(ctx context.Context) ([]domain.TaskTemplate, error)
}
