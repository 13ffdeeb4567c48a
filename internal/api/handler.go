package api

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	app_errors "genie-relay/backend/internal/errors"
	"genie-relay/backend/internal/interfaces"
	"genie-relay/backend/internal/model"
)

// GenieHandler serves the Genie chat endpoints.
type GenieHandler struct {
	service interfaces.GenieService
}

func NewGenieHandler(svc interfaces.GenieService) *GenieHandler {
	return &GenieHandler{service: svc}
}

// SendMessage godoc
// @Summary      Send a message to Genie
// @Description  Starts a new conversation, or continues one when conversation_id is set, and waits for Genie's answer.
// @Tags         Genie
// @Accept       json
// @Produce      json
// @Param        message  body      model.ChatRequest  true  "Chat message"
// @Success      200      {object}  model.ChatResponse
// @Failure      400      {object}  ErrorResponse
// @Failure      500      {object}  ErrorResponse
// @Router       /genie/send-message [post]
func (h *GenieHandler) SendMessage(w http.ResponseWriter, r *http.Request) {
	var req model.ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, fmt.Errorf("%w: invalid request body", app_errors.ErrValidation))
		return
	}
	if err := validateRequest(&req); err != nil {
		respondWithError(w, err)
		return
	}

	resp, err := h.service.SendMessage(r.Context(), &req)
	if err != nil {
		respondWithError(w, err)
		return
	}

	slog.Info("Genie reply ready", "conversation_id", resp.ConversationID, "message_id", resp.MessageID, "status", resp.Status)
	respondWithJSON(w, http.StatusOK, resp)
}

// Health godoc
// @Summary      Genie configuration probe
// @Description  Checks credentials and whether the configured Genie space is reachable. Always answers 200.
// @Tags         Genie
// @Produce      json
// @Success      200  {object}  model.HealthStatus
// @Router       /genie/health [get]
func (h *GenieHandler) Health(w http.ResponseWriter, r *http.Request) {
	respondWithJSON(w, http.StatusOK, h.service.Health(r.Context()))
}
