package store

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/hearthkeep/hearthkeep-api/internal/domain"
)

// HouseholdProfile carries the per-household attributes the ramp scheduler
// consults: the declared persona, an optional weekly time budget, and when
// onboarding began.
type HouseholdProfile struct {
	HouseholdID         uuid.UUID
	Persona             string
	WeeklyBudgetMinutes *int
	OnboardingStartedAt *time.Time
}

// ProfileStore defines the interface for household profile persistence.
type ProfileStore interface {
	// GetProfile retrieves a household's persona, time budget, and
	// onboarding timestamp.
	// Returns ErrProfileNotFound if no profile row exists.
	GetProfile(ctx context.Context, householdID uuid.UUID) (*HouseholdProfile, error)

	// GetFeatures retrieves the household's home feature flags and the
	// three-valued carpet answer. A household with no feature row gets an
	// empty feature set, not an error: templates with requirements simply
	// will not match.
	GetFeatures(ctx context.Context, householdID uuid.UUID) (domain.FeatureSet, error)
}
