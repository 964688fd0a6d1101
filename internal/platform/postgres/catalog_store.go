package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/hearthkeep/hearthkeep-api/internal/domain"
	"github.com/hearthkeep/hearthkeep-api/internal/platform/logger"
	"github.com/hearthkeep/hearthkeep-api/internal/store"
)

// PostgresCatalogStore implements the store.CatalogStore interface using
// PostgreSQL.
type PostgresCatalogStore struct {
	db store.DBTX
}

// NewPostgresCatalogStore creates a new PostgresCatalogStore.
func NewPostgresCatalogStore(db store.DBTX) *PostgresCatalogStore {
	return &PostgresCatalogStore{db: db}
}

// ListTemplates returns every template in the stored catalog in insertion
// order. An empty catalog returns an empty slice, not an error.
func (s *PostgresCatalogStore) ListTemplates(
	ctx context.Context,
) ([]domain.TaskTemplate, error) {
	log := logger.FromContext(ctx)

	query := `
		SELECT task_key, title, description, category, priority,
		       frequency_days, feature_requirements, seasonal,
		       seasonal_anchor_type, season_code, season_anchor_month,
		       season_anchor_day, overlap_group, variant_rank,
		       safety_critical, start_offset_days, estimated_minutes, notes
		FROM task_templates
		ORDER BY id
	`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, MapError(err)
	}
	defer rows.Close()

	var templates []domain.TaskTemplate
	for rows.Next() {
		t, err := scanTemplate(rows)
		if err != nil {
			log.Error("failed to scan task template row", "error", err)
			return nil, fmt.Errorf("failed to scan template: %w", err)
		}
		templates = append(templates, t)
	}
	if err := rows.Err(); err != nil {
		return nil, MapError(err)
	}
	return templates, nil
}

func scanTemplate(rows *sql.Rows) (domain.TaskTemplate, error) {
	var t domain.TaskTemplate
	var (
		key, description, category, priority   sql.NullString
		requirements, anchorType, season       sql.NullString
		overlapGroup, notes                    sql.NullString
		frequency, anchorMonth, anchorDay      sql.NullInt32
		variantRank, startOffset, estimatedMin sql.NullInt32
		seasonal, safetyCritical               sql.NullBool
	)

	err := rows.Scan(
		&key, &t.Title, &description, &category, &priority,
		&frequency, &requirements, &seasonal,
		&anchorType, &season, &anchorMonth,
		&anchorDay, &overlapGroup, &variantRank,
		&safetyCritical, &startOffset, &estimatedMin, &notes,
	)
	if err != nil {
		return domain.TaskTemplate{}, err
	}

	t.Key = key.String
	t.Description = description.String
	t.Category = category.String
	t.Priority = domain.ParsePriority(priority.String)
	t.FrequencyDays = int(frequency.Int32)
	t.FeatureRequirements = requirements.String
	t.SeasonalAnchorType = domain.AnchorType(anchorType.String)
	t.SeasonCode = domain.Season(season.String)
	t.AnchorMonth = int(anchorMonth.Int32)
	t.AnchorDay = int(anchorDay.Int32)
	t.OverlapGroup = overlapGroup.String
	t.VariantRank = int(variantRank.Int32)
	t.EstimatedMinutes = int(estimatedMin.Int32)
	t.Notes = notes.String

	if seasonal.Valid {
		v := seasonal.Bool
		t.Seasonal = &v
	}
	if safetyCritical.Valid {
		v := safetyCritical.Bool
		t.SafetyCritical = &v
	}
	if startOffset.Valid {
		v := int(startOffset.Int32)
		t.StartOffsetDays = &v
	}
	return t, nil
}
