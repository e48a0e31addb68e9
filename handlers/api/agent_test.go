package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/nijaru/podsum/config"
	"github.com/nijaru/podsum/errors"
	"github.com/nijaru/podsum/services/summarizer"
	"github.com/nijaru/podsum/validation"
)

type stubService struct {
	result    string
	err       error
	lastInput string
	lastOpts  summarizer.Options
}

func (s *stubService) Summarize(
	ctx context.Context, input string, opts summarizer.Options,
) (string, error) {
	s.lastInput = input
	s.lastOpts = opts
	return s.result, s.err
}

func testServer(svc summarizer.Service) *Server {
	cfg := &config.Config{
		ServerPort:     "8000",
		Version:        "1.0.0",
		RequestTimeout: 0,
	}
	return &Server{
		agent:  NewAgentHandler(svc, validation.NewValidator()),
		config: cfg,
	}
}

func postCommand(t *testing.T, handler http.HandlerFunc, body string, headers map[string]string) (*httptest.ResponseRecorder, Response) {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	rec := httptest.NewRecorder()
	handler(rec, req)

	var resp Response
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	return rec, resp
}

func TestHandleCommandSuccess(t *testing.T) {
	svc := &stubService{result: "the summary"}
	server := testServer(svc)

	rec, resp := postCommand(t, server.agent.HandleCommand,
		`{"command":"summarize https://www.youtube.com/watch?v=dQw4w9WgXcQ"}`, nil)

	if rec.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", rec.Code)
	}
	if !resp.Success {
		t.Error("expected success")
	}
	if resp.Result != "the summary" {
		t.Errorf("unexpected result: %q", resp.Result)
	}
	if svc.lastInput != "https://www.youtube.com/watch?v=dQw4w9WgXcQ" {
		t.Errorf("unexpected input passed to service: %q", svc.lastInput)
	}
}

func TestHandleCommandAPIKeyOverride(t *testing.T) {
	svc := &stubService{result: "ok"}
	server := testServer(svc)

	postCommand(t, server.agent.HandleCommand,
		`{"command":"dQw4w9WgXcQ"}`,
		map[string]string{APIKeyHeader: "sk-override"})

	if svc.lastOpts.APIKey != "sk-override" {
		t.Errorf("expected API key override to be threaded, got %q", svc.lastOpts.APIKey)
	}
}

func TestHandleCommandMissingCommand(t *testing.T) {
	server := testServer(&stubService{})

	rec, resp := postCommand(t, server.agent.HandleCommand, `{"command":""}`, nil)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", rec.Code)
	}
	if resp.Success {
		t.Error("expected failure")
	}
	if resp.Error == "" {
		t.Error("expected an error message")
	}
}

func TestHandleCommandNoURL(t *testing.T) {
	server := testServer(&stubService{})

	rec, resp := postCommand(t, server.agent.HandleCommand,
		`{"command":"summarize my favorite podcast"}`, nil)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", rec.Code)
	}
	if !strings.Contains(resp.Error, "No YouTube URL found") {
		t.Errorf("unexpected error message: %q", resp.Error)
	}
}

func TestHandleCommandServiceFailure(t *testing.T) {
	svc := &stubService{
		err: errors.NotFound("op", nil, "Could not fetch transcript for this video"),
	}
	server := testServer(svc)

	rec, resp := postCommand(t, server.agent.HandleCommand, `{"command":"dQw4w9WgXcQ"}`, nil)

	if rec.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", rec.Code)
	}
	if resp.Success {
		t.Error("expected failure")
	}
	if resp.Error != "Could not fetch transcript for this video" {
		t.Errorf("unexpected error message: %q", resp.Error)
	}
}

func TestHandleCommandInvalidJSON(t *testing.T) {
	server := testServer(&stubService{})

	rec, _ := postCommand(t, server.agent.HandleCommand, `{not json`, nil)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", rec.Code)
	}
}

func TestHandleHealth(t *testing.T) {
	server := testServer(&stubService{})

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	server.handleHealth(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var payload map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &payload); err != nil {
		t.Fatalf("failed to decode health payload: %v", err)
	}
	if payload["status"] != "healthy" {
		t.Errorf("expected status healthy, got %v", payload["status"])
	}
	if payload["agent"] != "podsum" {
		t.Errorf("expected agent podsum, got %v", payload["agent"])
	}
	if payload["version"] != "1.0.0" {
		t.Errorf("expected version 1.0.0, got %v", payload["version"])
	}
}
