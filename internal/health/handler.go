package health

import (
	"context"

	"github.com/danielgtaylor/huma/v2"
	"github.com/redis/go-redis/v9"
)

// Checker defines the interface for checking service health.
type Checker interface {
	Ping(ctx context.Context) error
}

// CheckerFunc adapts a function to Checker.
type CheckerFunc func(ctx context.Context) error

func (f CheckerFunc) Ping(ctx context.Context) error {
	return f(ctx)
}

// RedisChecker adapts redis.Client to Checker interface.
type RedisChecker struct {
	client redis.UniversalClient
}

// NewRedisChecker creates a new Redis health checker.
func NewRedisChecker(client redis.UniversalClient) *RedisChecker {
	return &RedisChecker{client: client}
}

// Ping checks Redis connectivity.
func (r *RedisChecker) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}

// Handler reports the health of named dependencies.
type Handler struct {
	checks map[string]Checker
}

// NewHandler creates a new health handler. Keys name the dependency in the response.
func NewHandler(checks map[string]Checker) *Handler {
	return &Handler{checks: checks}
}

// Response is the response for health check endpoint.
type Response struct {
	Body struct {
		Status string            `doc:"ok or degraded"           example:"ok" json:"status"`
		Checks map[string]string `doc:"healthy or unhealthy per dependency" json:"checks"`
	}
}

// Check pings every dependency. Any failure degrades the overall status.
func (h *Handler) Check(ctx context.Context, _ *struct{}) (*Response, error) {
	resp := &Response{}
	resp.Body.Status = "ok"
	resp.Body.Checks = make(map[string]string, len(h.checks))

	for name, checker := range h.checks {
		if err := checker.Ping(ctx); err != nil {
			resp.Body.Checks[name] = "unhealthy"
			resp.Body.Status = "degraded"
		} else {
			resp.Body.Checks[name] = "healthy"
		}
	}

	return resp, nil
}

// RegisterRoutes registers health check routes.
func RegisterRoutes(api huma.API, h *Handler) {
	huma.Get(api, "/health", h.Check)
}
