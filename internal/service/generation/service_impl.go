package generation

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/hearthkeep/hearthkeep-api/internal/domain"
	"github.com/hearthkeep/hearthkeep-api/internal/domain/schedule"
	"github.com/hearthkeep/hearthkeep-api/internal/events"
	"github.com/hearthkeep/hearthkeep-api/internal/platform/logger"
	"github.com/hearthkeep/hearthkeep-api/internal/store"
)

// generationService is the standard implementation of GenerationService.
type generationService struct {
	db        *sql.DB
	tasks     store.TaskStore
	profiles  store.ProfileStore
	sources   []CatalogSource
	scheduler schedule.Service
	emitter   events.EventEmitter
	logger    *slog.Logger

	// onboardingWindow is how long after onboarding begins a regeneration
	// still runs in ramp mode.
	onboardingWindow time.Duration

	// now is injectable for deterministic tests.
	now func() time.Time

	locks *householdLocks
}

// Config collects the dependencies of NewGenerationService.
type Config struct {
	DB        *sql.DB
	Tasks     store.TaskStore
	Profiles  store.ProfileStore
	Sources   []CatalogSource
	Scheduler schedule.Service
	Logger    *slog.Logger

	// Events receives a notification after each persisted run. Optional;
	// nil disables emission.
	Events events.EventEmitter

	// OnboardingWindowDays defaults to 14 when zero.
	OnboardingWindowDays int
}

// NewGenerationService creates a GenerationService.
func NewGenerationService(cfg Config) (GenerationService, error) {
	if cfg.Scheduler == nil {
		return nil, ErrNilScheduler
	}
	windowDays := cfg.OnboardingWindowDays
	if windowDays <= 0 {
		windowDays = 14
	}
	log := cfg.Logger
	if log == nil {
		log = slog.Default()
	}
	return &generationService{
		db:               cfg.DB,
		tasks:            cfg.Tasks,
		profiles:         cfg.Profiles,
		sources:          cfg.Sources,
		scheduler:        cfg.Scheduler,
		emitter:          cfg.Events,
		logger:           log,
		onboardingWindow: time.Duration(windowDays) * 24 * time.Hour,
		now:              time.Now,
		locks:            newHouseholdLocks(),
	}, nil
}

// Generate implements the pure generation pipeline. See GenerationService.
func (s *generationService) Generate(ctx context.Context, req Request) (*Result, error) {
	if req.HouseholdID == uuid.Nil {
		return nil, ErrNoHousehold
	}
	log := logger.FromContext(ctx).With("household_id", req.HouseholdID)

	diag := Diagnostics{
		Considered: len(req.Catalog),
		Source:     req.Source,
	}
	if diag.Source == "" {
		diag.Source = SourceNone
	}

	// Requirement parsing + feature matching. A template whose requirement
	// expression has any parse error is excluded outright, so ambiguous
	// catalog rows never silently activate.
	matched := make([]domain.TaskTemplate, 0, len(req.Catalog))
	for _, t := range req.Catalog {
		if err := t.Validate(); err != nil {
			diag.Dropped++
			log.Warn("dropping invalid catalog template",
				"template_key", t.Key,
				"title", t.Title,
				"error", err)
			continue
		}
		reqs, parseErrs := domain.ParseRequirements(t.FeatureRequirements)
		if len(parseErrs) > 0 {
			diag.Dropped++
			log.Warn("dropping template with unparseable requirements",
				"template_key", t.Key,
				"title", t.Title,
				"errors", errors.Join(parseErrs...))
			continue
		}
		if !reqs.MatchedBy(req.Features) {
			continue
		}
		matched = append(matched, t)
	}
	diag.Matched = len(matched)

	survivors := s.scheduler.ResolveOverlaps(matched)
	enriched := s.scheduler.EnrichDefaults(survivors)

	// During ramp mode the catalog's own start offsets are cleared so the
	// ramp drives all staggering.
	if req.RampActive {
		for i := range enriched {
			enriched[i].StartOffsetDays = nil
		}
	}

	tasks := make([]domain.ResolvedTask, 0, len(enriched))
	for _, t := range enriched {
		tasks = append(tasks, s.resolveTask(req.HouseholdID, t))
	}

	if req.RampActive {
		tasks = s.scheduler.ApplyRamp(tasks, req.Today, req.Profile, req.FirstGeneration)
	}

	// Due dates come from the settled schedule, after the ramp has assigned
	// start offsets: an immediate task is due on its placement day, a
	// deferred one on its offset day.
	for i := range tasks {
		tasks[i].NextDueDate = s.scheduler.TaskDueDate(tasks[i], req.Today)
	}

	return &Result{Tasks: tasks, Diagnostics: diag}, nil
}

// resolveTask builds the output record for one surviving template. The due
// date is filled in later, once the ramp has settled start offsets.
func (s *generationService) resolveTask(
	householdID uuid.UUID,
	t domain.TaskTemplate,
) domain.ResolvedTask {
	return domain.ResolvedTask{
		ID:                   uuid.New(),
		HouseholdID:          householdID,
		TemplateKey:          t.Key,
		Title:                t.Title,
		Description:          t.Description,
		Category:             t.Category,
		Priority:             t.Priority,
		FrequencyDays:        t.ResolvedFrequencyDays(),
		StartOffsetDays:      t.StartOffsetDays,
		Seasonal:             t.IsSeasonal(),
		SeasonalAnchorType:   t.SeasonalAnchorType,
		SeasonCode:           t.SeasonCode,
		AnchorMonth:          t.AnchorMonth,
		AnchorDay:            t.AnchorDay,
		OverlapGroup:         t.OverlapGroup,
		VariantRank:          t.VariantRank,
		SafetyCritical:       t.IsSafetyCritical(),
		EstimatedMinutes:     t.EstimatedMinutes,
		SeededFromOnboarding: true,
	}
}

// GenerateForHousehold implements the full orchestration. See
// GenerationService.
func (s *generationService) GenerateForHousehold(
	ctx context.Context,
	householdID uuid.UUID,
) (*Result, error) {
	if householdID == uuid.Nil {
		return nil, ErrNoHousehold
	}
	release := s.locks.acquire(householdID)
	defer release()

	log := s.logger.With("household_id", householdID)
	ctx = logger.WithLogger(ctx, log)
	today := s.now().UTC()

	features, err := s.profiles.GetFeatures(ctx, householdID)
	if err != nil {
		return nil, fmt.Errorf("failed to load household features: %w", err)
	}

	profile, rampFromProfile, err := s.loadProfile(ctx, householdID, today)
	if err != nil {
		return nil, err
	}

	hasAny, err := s.tasks.HasAny(ctx, householdID)
	if err != nil {
		return nil, fmt.Errorf("failed to inspect existing tasks: %w", err)
	}
	firstGeneration := !hasAny
	rampActive := firstGeneration || rampFromProfile

	templates, source, err := s.loadCatalog(ctx)
	if err != nil {
		return nil, err
	}
	if len(templates) == 0 {
		// Nothing usable to generate from. Zero tasks is a legitimate,
		// representable result, never a crash.
		log.Warn("no catalog templates available, generating zero tasks")
		return &Result{Diagnostics: Diagnostics{Source: SourceNone}}, nil
	}

	result, err := s.Generate(ctx, Request{
		HouseholdID:     householdID,
		Catalog:         templates,
		Features:        features,
		Today:           today,
		FirstGeneration: firstGeneration,
		RampActive:      rampActive,
		Profile:         profile,
		Source:          source,
	})
	if err != nil {
		return nil, err
	}

	if err := s.persist(ctx, householdID, today, result); err != nil {
		return nil, err
	}
	s.emitGenerated(ctx, householdID, result)

	log.Info("generation completed",
		"considered", result.Diagnostics.Considered,
		"matched", result.Diagnostics.Matched,
		"dropped", result.Diagnostics.Dropped,
		"inserted", result.Diagnostics.Inserted,
		"source", result.Diagnostics.Source,
		"first_generation", firstGeneration,
		"ramp_active", rampActive)
	return result, nil
}

// emitGenerated publishes a tasks.generated event for the completed run.
// Emission is best effort; the tasks are already committed, so a failing
// handler is logged and the run still succeeds.
func (s *generationService) emitGenerated(ctx context.Context, householdID uuid.UUID, result *Result) {
	if s.emitter == nil {
		return
	}
	event, err := events.NewEvent(events.EventTypeTasksGenerated, events.TasksGeneratedPayload{
		HouseholdID: householdID,
		Inserted:    result.Diagnostics.Inserted,
		Source:      result.Diagnostics.Source,
	})
	if err != nil {
		logger.FromContext(ctx).Warn("failed to build generation event", "error", err)
		return
	}
	if err := s.emitter.EmitEvent(ctx, event); err != nil {
		logger.FromContext(ctx).Warn("failed to emit generation event", "error", err)
	}
}

// loadProfile fetches persona/budget and decides whether the onboarding
// recency window keeps the ramp active. A household with no profile row, or
// no onboarding timestamp yet, is treated as still onboarding.
func (s *generationService) loadProfile(
	ctx context.Context,
	householdID uuid.UUID,
	today time.Time,
) (schedule.Profile, bool, error) {
	hp, err := s.profiles.GetProfile(ctx, householdID)
	if err != nil {
		if errors.Is(err, store.ErrProfileNotFound) {
			return schedule.Profile{}, true, nil
		}
		return schedule.Profile{}, false, fmt.Errorf("failed to load household profile: %w", err)
	}
	profile := schedule.Profile{
		Persona:             hp.Persona,
		WeeklyBudgetMinutes: hp.WeeklyBudgetMinutes,
	}
	if hp.OnboardingStartedAt == nil {
		return profile, true, nil
	}
	return profile, today.Sub(*hp.OnboardingStartedAt) <= s.onboardingWindow, nil
}

// loadCatalog consults the catalog sources in priority order and returns
// the first non-empty template set with its source name.
func (s *generationService) loadCatalog(ctx context.Context) ([]domain.TaskTemplate, string, error) {
	for _, src := range s.sources {
		templates, err := src.ListTemplates(ctx)
		if err != nil {
			return nil, "", fmt.Errorf("failed to load %s catalog: %w", src.Name(), err)
		}
		if len(templates) > 0 {
			return templates, src.Name(), nil
		}
	}
	return nil, SourceNone, nil
}

// persist atomically replaces the household's upcoming active tasks with
// the generated set. Completed, archived, and overdue tasks are untouched.
func (s *generationService) persist(
	ctx context.Context,
	householdID uuid.UUID,
	today time.Time,
	result *Result,
) error {
	if s.db == nil || s.tasks == nil {
		return nil
	}
	records := make([]*domain.ResolvedTask, 0, len(result.Tasks))
	for i := range result.Tasks {
		records = append(records, &result.Tasks[i])
	}
	replace := func() error {
		return store.RunInTransaction(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
			txTasks := s.tasks.WithTxTaskStore(tx)
			if _, err := txTasks.DeleteUpcoming(ctx, householdID, today); err != nil {
				return err
			}
			if len(records) == 0 {
				return nil
			}
			return txTasks.CreateMultiple(ctx, records)
		})
	}
	err := replace()
	if errors.Is(err, store.ErrUnsupportedColumn) {
		// The deployed schema lacks the optional template-key column. The
		// store has downgraded its capability flag, so a single retry emits
		// the reduced field set.
		logger.FromContext(ctx).Warn("retrying persistence without the template key column")
		err = replace()
	}
	if err != nil {
		return fmt.Errorf("failed to persist generated tasks: %w", err)
	}
	result.Diagnostics.Inserted = len(records)
	return nil
}
