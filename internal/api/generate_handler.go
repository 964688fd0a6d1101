package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/hearthkeep/hearthkeep-api/internal/api/shared"
	"github.com/hearthkeep/hearthkeep-api/internal/service/generation"
)

// GenerateHandler handles task generation HTTP requests.
type GenerateHandler struct {
	generationService generation.GenerationService
}

// NewGenerateHandler creates a new GenerateHandler.
func NewGenerateHandler(generationService generation.GenerationService) *GenerateHandler {
	return &GenerateHandler{
		generationService: generationService,
	}
}

// GenerateTasks handles POST /api/households/{householdID}/generate requests.
// It regenerates the household's upcoming task set from the best available
// catalog and returns the persisted tasks plus run diagnostics. Regeneration
// is idempotent; repeating the call replaces the upcoming set rather than
// duplicating it.
func (h *GenerateHandler) GenerateTasks(w http.ResponseWriter, r *http.Request) {
	householdID, err := uuid.Parse(chi.URLParam(r, "householdID"))
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid household ID")
		return
	}

	result, err := h.generationService.GenerateForHousehold(r.Context(), householdID)
	if err != nil {
		shared.RespondWithErrorAndLog(
			w, r,
			MapErrorToStatusCode(err),
			GetSafeErrorMessage(err),
			err,
		)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, generateResultToResponse(result))
}
