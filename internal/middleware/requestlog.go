package middleware

import (
	"context"
	"net"
	"strings"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// HeaderRequestID carries the request id in both directions.
const HeaderRequestID = "X-Request-ID"

type requestMetaKey struct{}

// RequestMeta holds per-request metadata for logging.
type RequestMeta struct {
	ID        string
	ClientIP  string
	UserAgent string
}

// ContextWithRequestMeta adds request metadata to context.
func ContextWithRequestMeta(ctx context.Context, meta RequestMeta) context.Context {
	return context.WithValue(ctx, requestMetaKey{}, meta)
}

// RequestMetaFromContext extracts request metadata from context.
func RequestMetaFromContext(ctx context.Context) RequestMeta {
	if v, ok := ctx.Value(requestMetaKey{}).(RequestMeta); ok {
		return v
	}

	return RequestMeta{}
}

// RequestLogger assigns a request id, stores request metadata in the context
// and logs one line per request once the handler returns.
func RequestLogger(logger *zap.Logger) func(ctx huma.Context, next func(huma.Context)) {
	return func(ctx huma.Context, next func(huma.Context)) {
		id := ctx.Header(HeaderRequestID)
		if id == "" {
			id = uuid.NewString()
		}

		meta := RequestMeta{
			ID:        id,
			ClientIP:  extractClientIP(ctx),
			UserAgent: ctx.Header("User-Agent"),
		}

		ctx.SetHeader(HeaderRequestID, id)
		ctx = huma.WithContext(ctx, ContextWithRequestMeta(ctx.Context(), meta))

		start := time.Now()

		next(ctx)

		logger.Info("request",
			zap.String("requestId", id),
			zap.String("method", ctx.Method()),
			zap.String("path", ctx.URL().Path),
			zap.Int("status", ctx.Status()),
			zap.Duration("duration", time.Since(start)),
			zap.String("clientIp", meta.ClientIP),
		)
	}
}

func extractClientIP(ctx huma.Context) string {
	if xff := ctx.Header("X-Forwarded-For"); xff != "" {
		if idx := strings.Index(xff, ","); idx != -1 {
			return strings.TrimSpace(xff[:idx])
		}

		return strings.TrimSpace(xff)
	}

	if xri := ctx.Header("X-Real-IP"); xri != "" {
		return xri
	}

	addr := ctx.RemoteAddr()
	if host, _, err := net.SplitHostPort(addr); err == nil {
		return host
	}

	return addr
}
