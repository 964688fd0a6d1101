package catalog

import (
	"context"
	"fmt"
	"os"

	"github.com/hearthkeep/hearthkeep-api/internal/domain"
	"github.com/hearthkeep/hearthkeep-api/internal/platform/logger"
	"github.com/hearthkeep/hearthkeep-api/internal/store"
)

// Source names reported in generation diagnostics.
const (
	SourceNameDB      = "db"
	SourceNameCSV     = "csv"
	SourceNameBuiltin = "memory"
)

// StoreSource serves the catalog persisted in the database.
type StoreSource struct {
	store store.CatalogStore
}

// NewStoreSource creates a catalog source backed by a CatalogStore.
func NewStoreSource(s store.CatalogStore) *StoreSource {
	return &StoreSource{store: s}
}

// Name identifies the source in diagnostics.
func (s *StoreSource) Name() string { return SourceNameDB }

// ListTemplates returns the stored catalog.
func (s *StoreSource) ListTemplates(ctx context.Context) ([]domain.TaskTemplate, error) {
	return s.store.ListTemplates(ctx)
}

// FileSource serves a catalog from a CSV file on disk. The file is re-read on
// every call, so edits take effect without a restart. A missing file yields
// an empty catalog, letting generation fall through to the next source.
type FileSource struct {
	path string
}

// NewFileSource creates a catalog source reading the CSV file at path.
func NewFileSource(path string) *FileSource {
	return &FileSource{path: path}
}

// Name identifies the source in diagnostics.
func (s *FileSource) Name() string { return SourceNameCSV }

// ListTemplates parses the CSV file. Rows that fail validation are dropped
// and logged; the valid remainder is returned.
func (s *FileSource) ListTemplates(ctx context.Context) ([]domain.TaskTemplate, error) {
	log := logger.FromContext(ctx)

	if s.path == "" {
		return nil, nil
	}
	f, err := os.Open(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to open catalog file: %w", err)
	}
	defer f.Close()

	_, rows, err := ReadCSV(f)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file %s: %w", s.path, err)
	}

	templates, rowErrs := TemplatesFromRows(rows)
	for _, re := range rowErrs {
		log.Warn("dropping invalid catalog row",
			"path", s.path,
			"line", re.Line,
			"error", re.Err)
	}
	return templates, nil
}

// BuiltinSource serves the compiled-in template catalog. It is the last
// fallback and always has templates.
type BuiltinSource struct{}

// NewBuiltinSource creates a catalog source over the built-in templates.
func NewBuiltinSource() *BuiltinSource {
	return &BuiltinSource{}
}

// Name identifies the source in diagnostics.
func (s *BuiltinSource) Name() string { return SourceNameBuiltin }

// ListTemplates returns a fresh copy of the built-in catalog.
func (s *BuiltinSource) ListTemplates(_ context.Context) ([]domain.TaskTemplate, error) {
	return BuiltinTemplates(), nil
}
