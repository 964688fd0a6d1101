package schedule

import (
	"errors"
	"time"

	"github.com/hearthkeep/hearthkeep-api/internal/domain"
)

// Common errors
var (
	ErrNilParams = errors.New("ramp params cannot be nil")
)

// Service defines the interface for the scheduling calculations the
// generation orchestrator composes: recurrence, overlap resolution, default
// enrichment, and the onboarding ramp. All methods are pure; the caller
// supplies today's date so runs are deterministic.
type Service interface {
	// NextDueDate computes a template's next due date relative to today.
	NextDueDate(t domain.TaskTemplate, today time.Time) time.Time

	// TaskDueDate computes a resolved task's due date from its settled
	// scheduling fields, including any ramp-assigned start offset.
	TaskDueDate(t domain.ResolvedTask, today time.Time) time.Time

	// ResolveOverlaps keeps only the top-ranked variant per overlap group.
	ResolveOverlaps(templates []domain.TaskTemplate) []domain.TaskTemplate

	// EnrichDefaults fills metadata the catalog left blank.
	EnrichDefaults(templates []domain.TaskTemplate) []domain.TaskTemplate

	// ApplyRamp spreads tasks over time for a household in ramp mode.
	ApplyRamp(
		tasks []domain.ResolvedTask,
		today time.Time,
		profile Profile,
		firstGeneration bool,
	) []domain.ResolvedTask
}

// defaultService is the standard implementation of the Service interface.
type defaultService struct {
	params *Params
}

// NewDefaultService creates a scheduling service with default ramp
// parameters.
func NewDefaultService() Service {
	return &defaultService{params: NewDefaultParams()}
}

// NewServiceWithParams creates a scheduling service with custom ramp
// parameters.
func NewServiceWithParams(params *Params) (Service, error) {
	if params == nil {
		return nil, ErrNilParams
	}
	return &defaultService{params: params}, nil
}

func (s *defaultService) NextDueDate(t domain.TaskTemplate, today time.Time) time.Time {
	return NextDueDate(t, today)
}

func (s *defaultService) TaskDueDate(t domain.ResolvedTask, today time.Time) time.Time {
	return TaskDueDate(t, today)
}

func (s *defaultService) ResolveOverlaps(templates []domain.TaskTemplate) []domain.TaskTemplate {
	return ResolveOverlaps(templates)
}

func (s *defaultService) EnrichDefaults(templates []domain.TaskTemplate) []domain.TaskTemplate {
	return EnrichDefaults(templates)
}

func (s *defaultService) ApplyRamp(
	tasks []domain.ResolvedTask,
	today time.Time,
	profile Profile,
	firstGeneration bool,
) []domain.ResolvedTask {
	return ApplyRamp(tasks, today, s.params.ForProfile(profile), firstGeneration)
}
