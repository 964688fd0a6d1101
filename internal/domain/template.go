package domain

import (
	"errors"
	"strings"
)

// Template-specific validation errors.
var (
	// ErrTemplateTitleEmpty is returned when a template has no title.
	ErrTemplateTitleEmpty = errors.New("template title cannot be empty")

	// ErrTemplateFrequencyInvalid is returned when a non-seasonal template
	// declares a frequency below one day.
	ErrTemplateFrequencyInvalid = errors.New("template frequency must be at least 1 day")

	// ErrTemplateRankInvalid is returned when an overlap variant rank is not
	// a positive integer.
	ErrTemplateRankInvalid = errors.New("template variant rank must be positive")
)

// Priority is a coarse task priority. The empty value means no priority was
// assigned, which is a legitimate final state.
type Priority string

// Possible priority values.
const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// ParsePriority normalizes catalog priority text. Values outside the fixed
// vocabulary collapse to the empty priority rather than erroring, since
// imports routinely carry stray text in optional columns.
func ParsePriority(s string) Priority {
	switch Priority(strings.ToLower(strings.TrimSpace(s))) {
	case PriorityLow:
		return PriorityLow
	case PriorityMedium:
		return PriorityMedium
	case PriorityHigh:
		return PriorityHigh
	default:
		return ""
	}
}

// AnchorType selects how a seasonal template anchors its recurrence.
type AnchorType string

// Possible seasonal anchor types.
const (
	AnchorFixedDate   AnchorType = "fixed_date"
	AnchorSeasonStart AnchorType = "season_start"
)

// Season names a meteorological season used by season_start anchors.
type Season string

// Possible season codes.
const (
	SeasonWinter Season = "winter"
	SeasonSpring Season = "spring"
	SeasonSummer Season = "summer"
	SeasonAutumn Season = "autumn"
)

// TaskTemplate is one catalog entry: a blueprint for a recurring maintenance
// task, possibly conditioned on household features. Templates are immutable
// for the duration of a generation run; optional fields use pointers so the
// enricher can distinguish "unset by the catalog" from an explicit value.
type TaskTemplate struct {
	// Key is an optional stable identifier, unique within a catalog.
	Key string

	Title       string
	Description string
	Category    string
	Priority    Priority

	// FrequencyDays is the base repeat interval. Zero means the catalog left
	// it blank; generation resolves it to 30 (non-seasonal) or 365 (seasonal).
	FrequencyDays int

	// FeatureRequirements is the raw requirement expression, parsed by
	// ParseRequirements during matching.
	FeatureRequirements string

	// Seasonal is nil when the catalog left the flag blank; the enricher may
	// then infer it from season metadata or title keywords.
	Seasonal           *bool
	SeasonalAnchorType AnchorType
	SeasonCode         Season
	AnchorMonth        int
	AnchorDay          int

	// OverlapGroup groups interchangeable template variants; only the
	// lowest-ranked variant in a group is instantiated. Empty means
	// ungrouped.
	OverlapGroup string
	// VariantRank orders variants within an overlap group; lower wins.
	// Zero means the catalog did not rank this variant (treated as lowest
	// priority during overlap resolution).
	VariantRank int

	// SafetyCritical is nil when the catalog left it blank; the enricher
	// infers it from title keywords.
	SafetyCritical *bool

	// StartOffsetDays is a manual activation offset override. Nil means no
	// override; the ramp scheduler may assign one.
	StartOffsetDays *int

	// EstimatedMinutes is an explicit duration estimate. Zero or negative
	// means unset; the enricher derives one.
	EstimatedMinutes int

	Notes string
}

// Validate checks the structural constraints a catalog entry must satisfy.
func (t *TaskTemplate) Validate() error {
	if strings.TrimSpace(t.Title) == "" {
		return ErrTemplateTitleEmpty
	}
	if t.FrequencyDays < 0 {
		return ErrTemplateFrequencyInvalid
	}
	if t.VariantRank < 0 {
		return ErrTemplateRankInvalid
	}
	return nil
}

// IsSeasonal reports the seasonal flag, treating an unset flag as false.
func (t *TaskTemplate) IsSeasonal() bool {
	return t.Seasonal != nil && *t.Seasonal
}

// IsSafetyCritical reports the safety flag, treating an unset flag as false.
func (t *TaskTemplate) IsSafetyCritical() bool {
	return t.SafetyCritical != nil && *t.SafetyCritical
}

// ResolvedFrequencyDays returns the template's repeat interval with catalog
// blanks resolved: 30 days for non-seasonal templates, 365 for seasonal
// ones, never below one day.
func (t *TaskTemplate) ResolvedFrequencyDays() int {
	def := 30
	if t.IsSeasonal() {
		def = 365
	}
	if t.FrequencyDays < 1 {
		return def
	}
	return t.FrequencyDays
}
