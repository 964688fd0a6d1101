package schedule

import "strings"

// Personas tune how aggressively the onboarding ramp activates tasks.
const (
	// PersonaBuyer is a household that just bought the home; gentlest ramp.
	PersonaBuyer = "buyer"
	// PersonaCatchingUp has deferred maintenance to work through.
	PersonaCatchingUp = "catching_up"
	// PersonaOnTop is already on top of maintenance; steepest ramp.
	PersonaOnTop = "on_top"
)

// Params defines all configurable parameters for the onboarding ramp.
type Params struct {
	// Enabled turns the ramp off entirely when false.
	Enabled bool

	// NearTermDays is the window within which a seasonal task's natural due
	// date counts as near-term and keeps the task immediate.
	NearTermDays int

	// InitialCap is the total number of tasks allowed active on day 0,
	// including safety-critical and near-term seasonal tasks.
	InitialCap int

	// StaggerWeeks is how many weeks deferred tasks are spread across.
	StaggerWeeks int

	// PerDayCap is how many immediate tasks are placed per calendar day
	// during the first week.
	PerDayCap int

	// OnboardingWindowDays is how long after onboarding starts a
	// regeneration still gets the ramp applied.
	OnboardingWindowDays int
}

// ParamsConfig allows overriding the default parameters when creating a new
// Params instance. Zero values keep the defaults.
type ParamsConfig struct {
	NearTermDays         int
	InitialCap           int
	StaggerWeeks         int
	PerDayCap            int
	OnboardingWindowDays int
}

// NewDefaultParams creates a new Params instance with default values.
func NewDefaultParams() *Params {
	return &Params{
		Enabled:              true,
		NearTermDays:         21,
		InitialCap:           5,
		StaggerWeeks:         12,
		PerDayCap:            3,
		OnboardingWindowDays: 14,
	}
}

// NewParams creates a new Params instance with custom configuration.
func NewParams(config ParamsConfig) *Params {
	params := NewDefaultParams()
	if config.NearTermDays > 0 {
		params.NearTermDays = config.NearTermDays
	}
	if config.InitialCap > 0 {
		params.InitialCap = config.InitialCap
	}
	if config.StaggerWeeks > 0 {
		params.StaggerWeeks = config.StaggerWeeks
	}
	if config.PerDayCap > 0 {
		params.PerDayCap = config.PerDayCap
	}
	if config.OnboardingWindowDays > 0 {
		params.OnboardingWindowDays = config.OnboardingWindowDays
	}
	return params
}

// Profile carries the per-household inputs the ramp consults: the declared
// persona and an optional weekly time budget. Both come from an external
// profile collaborator.
type Profile struct {
	Persona             string
	WeeklyBudgetMinutes *int
}

// personaCaps overrides caps per persona. Personas that keep on top of
// maintenance get larger caps and shorter stagger windows.
var personaCaps = map[string]ParamsConfig{
	PersonaBuyer:      {InitialCap: 4, PerDayCap: 2, StaggerWeeks: 12, NearTermDays: 21},
	PersonaCatchingUp: {InitialCap: 6, PerDayCap: 3, StaggerWeeks: 10, NearTermDays: 21},
	PersonaOnTop:      {InitialCap: 8, PerDayCap: 3, StaggerWeeks: 8, NearTermDays: 21},
}

// ForProfile returns a copy of the params adjusted for the household's
// persona and weekly time budget. A small budget (<= 30 min/week) tightens
// the caps and lengthens the stagger; a large budget (>= 120 min/week)
// loosens them.
func (p *Params) ForProfile(profile Profile) *Params {
	adjusted := *p

	persona := strings.ToLower(strings.TrimSpace(profile.Persona))
	if cfg, ok := personaCaps[persona]; ok {
		adjusted.InitialCap = cfg.InitialCap
		adjusted.PerDayCap = cfg.PerDayCap
		adjusted.StaggerWeeks = cfg.StaggerWeeks
		adjusted.NearTermDays = cfg.NearTermDays
	}

	if profile.WeeklyBudgetMinutes != nil {
		switch b := *profile.WeeklyBudgetMinutes; {
		case b <= 30:
			adjusted.InitialCap = maxInt(3, adjusted.InitialCap-1)
			adjusted.StaggerWeeks = maxInt(adjusted.StaggerWeeks, 12)
			adjusted.PerDayCap = 2
		case b >= 120:
			adjusted.InitialCap = minInt(10, adjusted.InitialCap+1)
			adjusted.PerDayCap = minInt(4, adjusted.PerDayCap+1)
		}
	}
	return &adjusted
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
