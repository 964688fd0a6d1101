package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/hearthkeep/hearthkeep-api/internal/domain"
	"github.com/hearthkeep/hearthkeep-api/internal/platform/logger"
	"github.com/hearthkeep/hearthkeep-api/internal/store"
)

// PostgresProfileStore implements the store.ProfileStore interface using
// PostgreSQL. Profile attributes live on the households table, feature flags
// on home_features.
type PostgresProfileStore struct {
	db store.DBTX
}

// NewPostgresProfileStore creates a new PostgresProfileStore.
func NewPostgresProfileStore(db store.DBTX) *PostgresProfileStore {
	return &PostgresProfileStore{db: db}
}

// GetProfile retrieves a household's persona, weekly time budget, and
// onboarding timestamp. Returns store.ErrProfileNotFound if the household
// row does not exist.
func (s *PostgresProfileStore) GetProfile(
	ctx context.Context,
	householdID uuid.UUID,
) (*store.HouseholdProfile, error) {
	query := `
		SELECT persona, weekly_budget_minutes, onboarding_started_at
		FROM households
		WHERE id = $1
	`

	profile := &store.HouseholdProfile{HouseholdID: householdID}
	var persona sql.NullString
	var budget sql.NullInt32

	err := s.db.QueryRowContext(ctx, query, householdID).Scan(
		&persona,
		&budget,
		&profile.OnboardingStartedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, store.ErrProfileNotFound
		}
		return nil, MapError(err)
	}

	profile.Persona = persona.String
	if budget.Valid {
		minutes := int(budget.Int32)
		profile.WeeklyBudgetMinutes = &minutes
	}
	return profile, nil
}

// GetFeatures retrieves the household's home feature flags and the
// three-valued carpet answer. A household with no feature row gets an empty
// feature set, not an error.
func (s *PostgresProfileStore) GetFeatures(
	ctx context.Context,
	householdID uuid.UUID,
) (domain.FeatureSet, error) {
	log := logger.FromContext(ctx)

	query := `
		SELECT flags, has_carpet
		FROM home_features
		WHERE household_id = $1
	`

	var rawFlags []byte
	var carpet sql.NullString

	err := s.db.QueryRowContext(ctx, query, householdID).Scan(&rawFlags, &carpet)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.FeatureSet{}, nil
		}
		return domain.FeatureSet{}, MapError(err)
	}

	fs := domain.FeatureSet{Carpet: domain.CarpetCoverage(carpet.String)}
	if len(rawFlags) > 0 {
		if err := json.Unmarshal(rawFlags, &fs.Flags); err != nil {
			log.Error("failed to decode home feature flags",
				"household_id", householdID,
				"error", err)
			return domain.FeatureSet{}, fmt.Errorf("failed to decode feature flags: %w", err)
		}
	}
	return fs, nil
}
