package generation

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/hearthkeep/hearthkeep-api/internal/domain"
	"github.com/hearthkeep/hearthkeep-api/internal/domain/schedule"
)

// Catalog source names reported in diagnostics.
const (
	// SourceDB is the stored template table.
	SourceDB = "db"
	// SourceCSV is a static CSV catalog file.
	SourceCSV = "csv"
	// SourceMemory is the built-in fallback catalog.
	SourceMemory = "memory"
	// SourceNone means no catalog source had any templates; the run
	// produced zero tasks. Distinguishable from a run that matched nothing.
	SourceNone = "none"
)

// Common error types for the generation service.
var (
	// ErrNilScheduler indicates the service was constructed without a
	// scheduling service.
	ErrNilScheduler = errors.New("scheduling service cannot be nil")

	// ErrNoHousehold indicates a generate request without a household ID.
	ErrNoHousehold = errors.New("household ID cannot be empty")
)

// CatalogSource supplies templates from one catalog location. Sources are
// consulted in priority order; the first source with any templates wins and
// its name is reported in diagnostics.
type CatalogSource interface {
	// Name identifies the source in diagnostics (e.g. "db", "csv", "memory").
	Name() string

	// ListTemplates returns the source's templates. An empty result is not
	// an error; the next source is consulted.
	ListTemplates(ctx context.Context) ([]domain.TaskTemplate, error)
}

// Request carries everything one generation run needs. All inputs are
// supplied by the caller, so Generate is deterministic: the same request
// always produces the same tasks up to freshly minted task IDs.
type Request struct {
	HouseholdID uuid.UUID

	// Catalog is the template catalog to generate from.
	Catalog []domain.TaskTemplate

	// Features is the household's feature profile used for matching.
	Features domain.FeatureSet

	// Today anchors all recurrence computation.
	Today time.Time

	// FirstGeneration is true when the household has never had tasks
	// generated; it enables the long-interval deferral rules.
	FirstGeneration bool

	// RampActive is true when the onboarding ramp should run: on a first
	// generation, or within the onboarding recency window.
	RampActive bool

	// Profile tunes the ramp per persona and weekly time budget.
	Profile schedule.Profile

	// Source names the catalog origin for diagnostics.
	Source string
}

// Diagnostics summarizes a generation run for observability. The counters
// are informative, not part of the core contract.
type Diagnostics struct {
	// Considered is how many catalog templates the run examined.
	Considered int `json:"considered"`
	// Matched is how many templates survived requirement matching.
	Matched int `json:"matched"`
	// Dropped counts templates discarded for row-level problems (malformed
	// requirements, invalid structure). Dropped rows never abort the run.
	Dropped int `json:"dropped"`
	// Inserted is how many tasks were persisted (zero for a pure Generate
	// call, which does not persist).
	Inserted int `json:"inserted"`
	// Source names the catalog the run used: db, csv, memory, or none.
	Source string `json:"source"`
}

// Result is the outcome of a generation run: the resolved tasks ready for
// bulk insertion, plus diagnostics. A zero-task result with Source "none"
// means no usable catalog existed; that outcome is always representable and
// never an error.
type Result struct {
	Tasks       []domain.ResolvedTask `json:"tasks"`
	Diagnostics Diagnostics           `json:"diagnostics"`
}

// GenerationService regenerates the concrete task set for a household from
// the template catalog and the household's feature profile.
type GenerationService interface {
	// Generate runs the pure generation pipeline on caller-supplied inputs:
	// requirement matching, overlap resolution, default enrichment,
	// recurrence, and the onboarding ramp. It performs no I/O and does not
	// persist anything; Diagnostics.Inserted is always zero.
	//
	// A template row that fails to parse is dropped and counted, never
	// fatal. The worst outcome is an empty task list.
	Generate(ctx context.Context, req Request) (*Result, error)

	// GenerateForHousehold loads the household's features, profile, and the
	// best available catalog, decides first-generation and ramp status from
	// the existing-task snapshot, runs Generate, and atomically replaces the
	// household's upcoming active tasks with the result. Completed and
	// overdue tasks survive.
	//
	// Runs for the same household are serialized: two concurrent calls
	// cannot both observe an empty task list and apply the first-generation
	// ramp twice. Different households proceed independently.
	GenerateForHousehold(ctx context.Context, householdID uuid.UUID) (*Result, error)
}
