package events

import (
	"context"
	"log/slog"
)

// AuditLogHandler records every event it receives in the structured log.
// It is the baseline handler registered at startup so generation runs leave
// an audit trail even when no other handler is interested.
type AuditLogHandler struct {
	logger *slog.Logger
}

// NewAuditLogHandler creates a handler that writes events to the given logger.
func NewAuditLogHandler(logger *slog.Logger) *AuditLogHandler {
	return &AuditLogHandler{
		logger: logger.With("component", "audit_log_handler"),
	}
}

// HandleEvent implements the EventHandler interface. It never fails; an
// event that cannot be decoded is still logged with its raw payload.
func (h *AuditLogHandler) HandleEvent(ctx context.Context, event *Event) error {
	switch event.Type {
	case EventTypeTasksGenerated:
		var payload TasksGeneratedPayload
		if err := event.UnmarshalPayload(&payload); err != nil {
			h.logger.Warn("failed to decode event payload",
				"event_id", event.ID,
				"event_type", event.Type,
				"error", err)
			break
		}
		h.logger.InfoContext(ctx, "tasks generated",
			"event_id", event.ID,
			"household_id", payload.HouseholdID,
			"inserted", payload.Inserted,
			"source", payload.Source)
		return nil
	}

	h.logger.InfoContext(ctx, "event received",
		"event_id", event.ID,
		"event_type", event.Type)
	return nil
}
