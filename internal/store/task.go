package store

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"

	"github.com/hearthkeep/hearthkeep-api/internal/domain"
)

// TaskStore defines the interface for resolved-task persistence.
//
// Regeneration safety contract: a generation run replaces only upcoming or
// undated active tasks. Completed tasks, archived tasks, and overdue tasks
// the user has not touched must survive a regeneration; DeleteUpcoming
// encodes that rule so callers cannot get it wrong.
type TaskStore interface {
	// HasAny reports whether the household has ever had tasks generated or
	// created. Used to detect a household's first generation.
	HasAny(ctx context.Context, householdID uuid.UUID) (bool, error)

	// CountForHousehold returns the current number of task rows for the
	// household, used for insert diagnostics.
	CountForHousehold(ctx context.Context, householdID uuid.UUID) (int, error)

	// DeleteUpcoming removes the household's active, non-archived,
	// uncompleted tasks that are due on or after the given date, plus any
	// undated active tasks. It returns how many rows were removed.
	DeleteUpcoming(ctx context.Context, householdID uuid.UUID, from time.Time) (int64, error)

	// CreateMultiple saves the resolved tasks in batches.
	//
	// IMPORTANT: run this within a transaction together with DeleteUpcoming
	// (use WithTxTaskStore and store.RunInTransaction) so a regeneration is
	// atomic per household: either the upcoming tasks are replaced in full
	// or not at all.
	//
	// Implementations tolerate schema drift on optional columns: when the
	// deployed schema lacks the task_key column, the insert is retried with
	// the reduced field set rather than failing the run.
	CreateMultiple(ctx context.Context, tasks []*domain.ResolvedTask) error

	// WithTxTaskStore returns a new TaskStore instance that uses the
	// provided transaction. The transaction is created and managed by the
	// caller, typically via store.RunInTransaction.
	WithTxTaskStore(tx *sql.Tx) TaskStore
}
