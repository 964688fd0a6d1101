package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"github.com/hearthkeep/hearthkeep-api/internal/domain"
	"github.com/hearthkeep/hearthkeep-api/internal/platform/logger"
	"github.com/hearthkeep/hearthkeep-api/internal/store"
)

// insertBatchSize caps how many tasks one INSERT carries, keeping statements
// under parameter limits.
const insertBatchSize = 50

// PostgresTaskStore implements the store.TaskStore interface using PostgreSQL.
type PostgresTaskStore struct {
	db store.DBTX

	// taskKeySupported tracks whether the deployed tasks table has the
	// optional task_key column. It is shared across transactional copies of
	// the store, so one failed insert downgrades all subsequent ones instead
	// of failing every batch. Deployments can disable it up front via
	// configuration.
	taskKeySupported *atomic.Bool
}

// NewPostgresTaskStore creates a new PostgresTaskStore. taskKeySupported
// declares whether the deployed schema has the optional task_key column.
func NewPostgresTaskStore(db store.DBTX, taskKeySupported bool) *PostgresTaskStore {
	flag := &atomic.Bool{}
	flag.Store(taskKeySupported)
	return &PostgresTaskStore{db: db, taskKeySupported: flag}
}

// WithTxTaskStore returns a copy of the store bound to the transaction.
// The capability flag is shared with the parent store.
func (s *PostgresTaskStore) WithTxTaskStore(tx *sql.Tx) store.TaskStore {
	return &PostgresTaskStore{db: tx, taskKeySupported: s.taskKeySupported}
}

// HasAny reports whether any task row exists for the household, including
// completed and archived ones.
func (s *PostgresTaskStore) HasAny(ctx context.Context, householdID uuid.UUID) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM tasks WHERE household_id = $1)`

	var exists bool
	if err := s.db.QueryRowContext(ctx, query, householdID).Scan(&exists); err != nil {
		return false, MapError(err)
	}
	return exists, nil
}

// CountForHousehold returns the number of task rows for the household.
func (s *PostgresTaskStore) CountForHousehold(
	ctx context.Context,
	householdID uuid.UUID,
) (int, error) {
	query := `SELECT COUNT(*) FROM tasks WHERE household_id = $1`

	var count int
	if err := s.db.QueryRowContext(ctx, query, householdID).Scan(&count); err != nil {
		return 0, MapError(err)
	}
	return count, nil
}

// DeleteUpcoming removes the household's active, non-archived, uncompleted
// tasks due on or after the given date, plus undated active tasks. Completed
// and overdue tasks survive a regeneration.
func (s *PostgresTaskStore) DeleteUpcoming(
	ctx context.Context,
	householdID uuid.UUID,
	from time.Time,
) (int64, error) {
	log := logger.FromContext(ctx)

	query := `
		DELETE FROM tasks
		WHERE household_id = $1
		  AND archived = FALSE
		  AND is_completed = FALSE
		  AND (next_due_date >= $2 OR next_due_date IS NULL)
	`

	result, err := s.db.ExecContext(ctx, query, householdID, from)
	if err != nil {
		log.Error("failed to delete upcoming tasks",
			"household_id", householdID,
			"error", err)
		return 0, MapError(err)
	}
	deleted, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to get rows affected: %w", err)
	}
	return deleted, nil
}

// CreateMultiple saves the resolved tasks in batches. When the deployed
// schema turns out to lack the task_key column, the capability flag is
// downgraded and store.ErrUnsupportedColumn returned; callers retry the
// transaction and the next attempt emits the reduced field set.
func (s *PostgresTaskStore) CreateMultiple(
	ctx context.Context,
	tasks []*domain.ResolvedTask,
) error {
	log := logger.FromContext(ctx)

	for _, t := range tasks {
		if err := t.Validate(); err != nil {
			return fmt.Errorf("%w: %v", store.ErrInvalidEntity, err)
		}
	}

	includeTaskKey := s.taskKeySupported.Load()
	for start := 0; start < len(tasks); start += insertBatchSize {
		end := start + insertBatchSize
		if end > len(tasks) {
			end = len(tasks)
		}
		if err := s.insertBatch(ctx, tasks[start:end], includeTaskKey); err != nil {
			if includeTaskKey && IsUndefinedColumn(err) {
				s.taskKeySupported.Store(false)
				log.Warn("tasks table has no task_key column, disabling it for future inserts",
					"error", err)
			}
			log.Error("failed to insert task batch",
				"batch_start", start,
				"batch_size", end-start,
				"error", err)
			return err
		}
	}
	return nil
}

func (s *PostgresTaskStore) insertBatch(
	ctx context.Context,
	tasks []*domain.ResolvedTask,
	includeTaskKey bool,
) error {
	columns := []string{
		"id", "household_id", "title", "description", "category", "priority",
		"frequency_days", "next_due_date", "start_offset_days", "seasonal",
		"seasonal_anchor_type", "season_code", "season_anchor_month",
		"season_anchor_day", "overlap_group", "variant_rank",
		"safety_critical", "estimated_minutes", "seeded_from_onboarding",
		"created_at", "updated_at",
	}
	if includeTaskKey {
		columns = append(columns, "task_key")
	}

	now := time.Now().UTC()
	args := make([]any, 0, len(tasks)*len(columns))
	placeholders := ""
	for i, t := range tasks {
		if i > 0 {
			placeholders += ", "
		}
		placeholders += "("
		for j := range columns {
			if j > 0 {
				placeholders += ", "
			}
			placeholders += fmt.Sprintf("$%d", i*len(columns)+j+1)
		}
		placeholders += ")"

		args = append(args,
			t.ID,
			t.HouseholdID,
			t.Title,
			nullString(t.Description),
			nullString(t.Category),
			nullString(string(t.Priority)),
			t.FrequencyDays,
			t.NextDueDate,
			nullInt(t.StartOffsetDays),
			t.Seasonal,
			nullString(string(t.SeasonalAnchorType)),
			nullString(string(t.SeasonCode)),
			nullPositive(t.AnchorMonth),
			nullPositive(t.AnchorDay),
			nullString(t.OverlapGroup),
			nullPositive(t.VariantRank),
			t.SafetyCritical,
			nullPositive(t.EstimatedMinutes),
			t.SeededFromOnboarding,
			now,
			now,
		)
		if includeTaskKey {
			args = append(args, nullString(t.TemplateKey))
		}
	}

	query := "INSERT INTO tasks (" + joinColumns(columns) + ") VALUES " + placeholders

	if _, err := s.db.ExecContext(ctx, query, args...); err != nil {
		return MapError(err)
	}
	return nil
}

func joinColumns(cols []string) string {
	out := ""
	for i, c := range cols {
		if i > 0 {
			out += ", "
		}
		out += c
	}
	return out
}

// nullString maps empty text to SQL NULL.
func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

// nullInt maps a nil pointer to SQL NULL.
func nullInt(n *int) sql.NullInt32 {
	if n == nil {
		return sql.NullInt32{}
	}
	return sql.NullInt32{Int32: int32(*n), Valid: true}
}

// nullPositive maps non-positive values (this schema's "unset") to SQL NULL.
func nullPositive(n int) sql.NullInt32 {
	if n < 1 {
		return sql.NullInt32{}
	}
	return sql.NullInt32{Int32: int32(n), Valid: true}
}
