package handlers

import (
	"context"
	"mime"

	"github.com/serroba/campaign-links/internal/session"
	"go.uber.org/zap"
)

// LinkHandler exposes the link history.
type LinkHandler struct {
	session *session.Controller
	limit   int
	logger  *zap.Logger
}

// NewLinkHandler creates a new history handler. limit is reported to clients.
func NewLinkHandler(ctrl *session.Controller, limit int, logger *zap.Logger) *LinkHandler {
	return &LinkHandler{session: ctrl, limit: limit, logger: logger}
}

func (h *LinkHandler) List(_ context.Context, _ *struct{}) (*LinksResponse, error) {
	resp := &LinksResponse{}
	resp.Body.Links = h.session.History()
	resp.Body.Limit = h.limit

	return resp, nil
}

func (h *LinkHandler) Shorten(ctx context.Context, req *LinkIDRequest) (*LinkResponse, error) {
	link, err := h.session.ShortenLink(ctx, req.ID)
	if err != nil {
		return nil, toHTTPError(h.logger, err)
	}

	return &LinkResponse{Body: *link}, nil
}

func (h *LinkHandler) Delete(ctx context.Context, req *LinkIDRequest) (*struct{}, error) {
	found, err := h.session.Delete(ctx, req.ID)
	if err != nil {
		return nil, toHTTPError(h.logger, err)
	}

	if !found {
		return nil, toHTTPError(h.logger, session.ErrLinkNotFound)
	}

	return &struct{}{}, nil
}

// Export downloads the history as CSV.
func (h *LinkHandler) Export(_ context.Context, _ *struct{}) (*ExportResponse, error) {
	data, name := h.session.Export()

	return &ExportResponse{
		ContentType:        "text/csv; charset=utf-8",
		ContentDisposition: mime.FormatMediaType("attachment", map[string]string{"filename": name}),
		Body:               data,
	}, nil
}
