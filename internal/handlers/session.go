package handlers

import (
	"context"

	"github.com/serroba/campaign-links/internal/session"
	"github.com/serroba/campaign-links/internal/tracking"
	"go.uber.org/zap"
)

// SessionHandler exposes the form and generate/shorten flow.
type SessionHandler struct {
	session *session.Controller
	logger  *zap.Logger
}

// NewSessionHandler creates a new session handler.
func NewSessionHandler(ctrl *session.Controller, logger *zap.Logger) *SessionHandler {
	return &SessionHandler{session: ctrl, logger: logger}
}

func (h *SessionHandler) view() *SessionResponse {
	return &SessionResponse{Body: h.session.View()}
}

func (h *SessionHandler) Get(_ context.Context, _ *struct{}) (*SessionResponse, error) {
	return h.view(), nil
}

func (h *SessionHandler) SetForm(_ context.Context, req *SetFormRequest) (*SessionResponse, error) {
	h.session.SetForm(req.Body)

	return h.view(), nil
}

func (h *SessionHandler) SetField(_ context.Context, req *SetFieldRequest) (*SessionResponse, error) {
	if err := h.session.SetField(req.Body.Field, req.Body.Value); err != nil {
		return nil, toHTTPError(h.logger, err)
	}

	return h.view(), nil
}

func (h *SessionHandler) ApplyPreset(_ context.Context, req *ApplyPresetRequest) (*SessionResponse, error) {
	if _, err := h.session.ApplyPreset(req.Body.Name); err != nil {
		return nil, toHTTPError(h.logger, err)
	}

	return h.view(), nil
}

// Generate validates the form and appends a tracking URL to history.
func (h *SessionHandler) Generate(ctx context.Context, _ *struct{}) (*LinkResponse, error) {
	link, err := h.session.Generate(ctx)
	if err != nil {
		return nil, toHTTPError(h.logger, err)
	}

	return &LinkResponse{Body: *link}, nil
}

// Shorten creates a short link for the link produced by the last Generate.
func (h *SessionHandler) Shorten(ctx context.Context, _ *struct{}) (*LinkResponse, error) {
	link, err := h.session.ShortenCurrent(ctx)
	if err != nil {
		return nil, toHTTPError(h.logger, err)
	}

	return &LinkResponse{Body: *link}, nil
}

func (h *SessionHandler) Clear(_ context.Context, _ *struct{}) (*SessionResponse, error) {
	h.session.Clear()

	return h.view(), nil
}

func (h *SessionHandler) MarkCopied(_ context.Context, _ *struct{}) (*SessionResponse, error) {
	h.session.MarkCopied()

	return h.view(), nil
}

func (h *SessionHandler) ListPresets(_ context.Context, _ *struct{}) (*PresetsResponse, error) {
	resp := &PresetsResponse{}
	resp.Body.Presets = tracking.Presets

	return resp, nil
}
