package api

import (
	"time"

	"github.com/hearthkeep/hearthkeep-api/internal/domain"
	"github.com/hearthkeep/hearthkeep-api/internal/service/generation"
)

// TaskResponse represents one generated task in API responses.
type TaskResponse struct {
	ID               string `json:"id"`
	HouseholdID      string `json:"household_id"`
	TemplateKey      string `json:"template_key,omitempty"`
	Title            string `json:"title"`
	Description      string `json:"description,omitempty"`
	Category         string `json:"category,omitempty"`
	Priority         string `json:"priority,omitempty"`
	FrequencyDays    int    `json:"frequency_days"`
	NextDueDate      string `json:"next_due_date"`
	StartOffsetDays  *int   `json:"start_offset_days,omitempty"`
	Seasonal         bool   `json:"seasonal"`
	SeasonCode       string `json:"season_code,omitempty"`
	SafetyCritical   bool   `json:"safety_critical"`
	EstimatedMinutes int    `json:"estimated_minutes,omitempty"`
}

// DiagnosticsResponse summarizes a generation run for API clients.
type DiagnosticsResponse struct {
	Considered int    `json:"considered"`
	Matched    int    `json:"matched"`
	Dropped    int    `json:"dropped"`
	Inserted   int    `json:"inserted"`
	Source     string `json:"source"`
}

// GenerateResponse represents the response body for a generation request.
type GenerateResponse struct {
	Tasks       []TaskResponse      `json:"tasks"`
	Diagnostics DiagnosticsResponse `json:"diagnostics"`
}

// generateResultToResponse converts a generation.Result to the API
// representation. Dates are rendered as calendar days, not timestamps.
func generateResultToResponse(result *generation.Result) GenerateResponse {
	tasks := make([]TaskResponse, 0, len(result.Tasks))
	for i := range result.Tasks {
		tasks = append(tasks, taskToResponse(&result.Tasks[i]))
	}
	return GenerateResponse{
		Tasks: tasks,
		Diagnostics: DiagnosticsResponse{
			Considered: result.Diagnostics.Considered,
			Matched:    result.Diagnostics.Matched,
			Dropped:    result.Diagnostics.Dropped,
			Inserted:   result.Diagnostics.Inserted,
			Source:     result.Diagnostics.Source,
		},
	}
}

func taskToResponse(t *domain.ResolvedTask) TaskResponse {
	return TaskResponse{
		ID:               t.ID.String(),
		HouseholdID:      t.HouseholdID.String(),
		TemplateKey:      t.TemplateKey,
		Title:            t.Title,
		Description:      t.Description,
		Category:         t.Category,
		Priority:         string(t.Priority),
		FrequencyDays:    t.FrequencyDays,
		NextDueDate:      t.NextDueDate.Format(time.DateOnly),
		StartOffsetDays:  t.StartOffsetDays,
		Seasonal:         t.Seasonal,
		SeasonCode:       string(t.SeasonCode),
		SafetyCritical:   t.SafetyCritical,
		EstimatedMinutes: t.EstimatedMinutes,
	}
}
