package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// ResolvedTask validation errors.
var (
	// ErrResolvedTaskHouseholdEmpty is returned when a resolved task has no
	// household ID.
	ErrResolvedTaskHouseholdEmpty = errors.New("resolved task household ID cannot be empty")

	// ErrResolvedTaskTitleEmpty is returned when a resolved task has no title.
	ErrResolvedTaskTitleEmpty = errors.New("resolved task title cannot be empty")

	// ErrResolvedTaskFrequencyInvalid is returned when a resolved task's
	// frequency is below one day. Frequencies must already be resolved by the
	// time a task record exists.
	ErrResolvedTaskFrequencyInvalid = errors.New("resolved task frequency must be at least 1 day")
)

// ResolvedTask is one concrete task produced by a generation run: a
// surviving template with its computed due date, activation offset, and
// enriched defaults. Its identity is derived from the template, not
// independently owned; the ID exists so the persistence collaborator can
// address individual rows.
type ResolvedTask struct {
	ID          uuid.UUID `json:"id"`
	HouseholdID uuid.UUID `json:"household_id"`

	// TemplateKey is the catalog key of the originating template, if the
	// catalog assigned one.
	TemplateKey string `json:"template_key,omitempty"`

	Title       string   `json:"title"`
	Description string   `json:"description,omitempty"`
	Category    string   `json:"category,omitempty"`
	Priority    Priority `json:"priority,omitempty"`

	// FrequencyDays is always at least 1 on a resolved task.
	FrequencyDays int `json:"frequency_days"`

	// NextDueDate is the computed due date; always on or after the
	// generation date except when a seasonal anchor legitimately lands on it.
	NextDueDate time.Time `json:"next_due_date"`

	// StartOffsetDays is the activation offset in days from generation.
	// Nil means the task activates with no deferral.
	StartOffsetDays *int `json:"start_offset_days,omitempty"`

	Seasonal           bool       `json:"seasonal"`
	SeasonalAnchorType AnchorType `json:"seasonal_anchor_type,omitempty"`
	SeasonCode         Season     `json:"season_code,omitempty"`
	AnchorMonth        int        `json:"season_anchor_month,omitempty"`
	AnchorDay          int        `json:"season_anchor_day,omitempty"`

	OverlapGroup string `json:"overlap_group,omitempty"`
	VariantRank  int    `json:"variant_rank,omitempty"`

	SafetyCritical   bool `json:"safety_critical"`
	EstimatedMinutes int  `json:"estimated_minutes,omitempty"`

	// SeededFromOnboarding marks tasks produced by catalog generation, as
	// opposed to tasks a user created by hand.
	SeededFromOnboarding bool `json:"seeded_from_onboarding"`
}

// Validate checks if the ResolvedTask has valid data.
// Returns an error if any field fails validation.
func (t *ResolvedTask) Validate() error {
	if t.HouseholdID == uuid.Nil {
		return ErrResolvedTaskHouseholdEmpty
	}
	if t.Title == "" {
		return ErrResolvedTaskTitleEmpty
	}
	if t.FrequencyDays < 1 {
		return ErrResolvedTaskFrequencyInvalid
	}
	return nil
}

// StartOffset returns the activation offset, treating nil as zero.
func (t *ResolvedTask) StartOffset() int {
	if t.StartOffsetDays == nil {
		return 0
	}
	return *t.StartOffsetDays
}

// HasStartOffset reports whether an activation offset has been assigned,
// either by the catalog or by the ramp scheduler.
func (t *ResolvedTask) HasStartOffset() bool {
	return t.StartOffsetDays != nil
}
