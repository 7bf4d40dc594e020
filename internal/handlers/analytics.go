package handlers

import (
	"context"

	"github.com/serroba/campaign-links/internal/analytics/store"
	"go.uber.org/zap"
)

// CampaignStats reads aggregated campaign counters.
type CampaignStats interface {
	Load(ctx context.Context) error
	Campaigns() []store.CampaignStats
}

// AnalyticsHandler exposes campaign counters built from link events.
type AnalyticsHandler struct {
	stats  CampaignStats
	logger *zap.Logger
}

// NewAnalyticsHandler creates a new analytics handler.
func NewAnalyticsHandler(stats CampaignStats, logger *zap.Logger) *AnalyticsHandler {
	return &AnalyticsHandler{stats: stats, logger: logger}
}

// Campaigns reloads the persisted counters so totals written by a separate consumer process are visible.
func (h *AnalyticsHandler) Campaigns(ctx context.Context, _ *struct{}) (*CampaignStatsResponse, error) {
	if err := h.stats.Load(ctx); err != nil {
		return nil, toHTTPError(h.logger, err)
	}

	resp := &CampaignStatsResponse{}
	resp.Body.Campaigns = h.stats.Campaigns()

	return resp, nil
}
