package handlers

import (
	"context"

	"github.com/serroba/campaign-links/internal/session"
	"go.uber.org/zap"
)

// SettingsHandler exposes the provider configuration. API keys are always masked on output.
type SettingsHandler struct {
	session *session.Controller
	logger  *zap.Logger
}

// NewSettingsHandler creates a new settings handler.
func NewSettingsHandler(ctrl *session.Controller, logger *zap.Logger) *SettingsHandler {
	return &SettingsHandler{session: ctrl, logger: logger}
}

func (h *SettingsHandler) settings() *SettingsResponse {
	resp := &SettingsResponse{}
	resp.Body.Active = h.session.ProviderConfig().Masked()
	resp.Body.Draft = h.session.DraftSettings().Masked()

	return resp
}

func (h *SettingsHandler) Get(_ context.Context, _ *struct{}) (*SettingsResponse, error) {
	return h.settings(), nil
}

func (h *SettingsHandler) EditDraft(_ context.Context, req *EditSettingsRequest) (*SettingsResponse, error) {
	h.session.EditSettings(req.Body)

	return h.settings(), nil
}

func (h *SettingsHandler) DiscardDraft(_ context.Context, _ *struct{}) (*SettingsResponse, error) {
	h.session.DiscardDraft()

	return h.settings(), nil
}

func (h *SettingsHandler) Save(ctx context.Context, _ *struct{}) (*SettingsResponse, error) {
	if _, err := h.session.SaveSettings(ctx); err != nil {
		return nil, toHTTPError(h.logger, err)
	}

	return h.settings(), nil
}

func (h *SettingsHandler) TestCredential(ctx context.Context, req *TestCredentialRequest) (*TestCredentialResponse, error) {
	msg, err := h.session.TestCredential(ctx, req.Body.APIKey)
	if err != nil {
		return nil, toHTTPError(h.logger, err)
	}

	resp := &TestCredentialResponse{}
	resp.Body.Message = msg

	return resp, nil
}
