package api

import (
	"net/http"
	"strings"

	"github.com/nijaru/podsum/errors"
	"github.com/nijaru/podsum/services/summarizer"
	"github.com/nijaru/podsum/validation"
	"github.com/sirupsen/logrus"
)

// APIKeyHeader optionally carries a per-request credential override.
// It is threaded through the call explicitly and never stored in
// process state, so concurrent requests cannot observe each other's
// credential.
const APIKeyHeader = "X-OpenRouter-Api-Key"

type AgentHandler struct {
	service   summarizer.Service
	validator *validation.Validator
	logger    *logrus.Logger
}

type commandRequest struct {
	Command string `json:"command"`
	Context string `json:"context,omitempty"`
	UserID  string `json:"user_id,omitempty"`
}

func NewAgentHandler(service summarizer.Service, validator *validation.Validator) *AgentHandler {
	return &AgentHandler{
		service:   service,
		validator: validator,
		logger:    logrus.StandardLogger(),
	}
}

// HandleCommand handles POST /
func (h *AgentHandler) HandleCommand(w http.ResponseWriter, r *http.Request) {
	const op = "AgentHandler.HandleCommand"
	logger := h.logger.WithContext(r.Context())

	if err := h.validator.ValidateRequest(r, validation.RequestValidationOpts{
		MaxContentLength: 1024 * 1024, // 1MB
		AllowedMethods:   []string{http.MethodPost},
		RequireJSON:      true,
	}); err != nil {
		respondError(w, r, err)
		return
	}

	var req commandRequest
	if err := readJSON(r, &req); err != nil {
		respondError(w, r, err)
		return
	}

	command := strings.TrimSpace(req.Command)
	if err := h.validator.ValidateCommand(command); err != nil {
		respondError(w, r, err)
		return
	}

	url, ok := ExtractURL(command)
	if !ok {
		respondError(w, r, errors.InvalidInput(
			op, nil, "No YouTube URL found in command. Please provide a YouTube URL.",
		))
		return
	}

	opts := summarizer.Options{APIKey: r.Header.Get(APIKeyHeader)}

	result, err := h.service.Summarize(r.Context(), url, opts)
	if err != nil {
		logger.WithError(err).Error("Failed to summarize")
		respondError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, Response{Success: true, Result: result})
}
