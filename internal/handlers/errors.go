package handlers

import (
	"github.com/cockroachdb/errors"
	"github.com/danielgtaylor/huma/v2"
	"github.com/serroba/campaign-links/internal/session"
	"github.com/serroba/campaign-links/internal/shortlink"
	"github.com/serroba/campaign-links/internal/tracking"
	"go.uber.org/zap"
)

// toHTTPError maps domain errors to huma status errors.
func toHTTPError(logger *zap.Logger, err error) error {
	var (
		validation *tracking.ValidationError
		provider   *shortlink.ProviderError
		network    *shortlink.NetworkError
	)

	switch {
	case errors.As(err, &validation):
		details := make([]error, 0, len(validation.Fields))
		for _, field := range validation.Fields.Fields() {
			details = append(details, &huma.ErrorDetail{
				Location: "form." + string(field),
				Message:  validation.Fields[field],
			})
		}

		return huma.Error422UnprocessableEntity("validation failed", details...)
	case errors.Is(err, shortlink.ErrMissingCredential):
		msg := err.Error()
		if hint := errors.FlattenHints(err); hint != "" {
			msg += ": " + hint
		}

		return huma.Error400BadRequest(msg)
	case errors.Is(err, session.ErrUnknownPreset), errors.Is(err, session.ErrUnknownField):
		return huma.Error400BadRequest(err.Error())
	case errors.Is(err, session.ErrLinkNotFound):
		return huma.Error404NotFound(err.Error())
	case errors.Is(err, session.ErrNoCurrentLink):
		return huma.Error409Conflict("generate a tracking url first")
	case errors.As(err, &provider):
		return huma.Error502BadGateway(provider.Message)
	case errors.As(err, &network):
		return huma.Error504GatewayTimeout("short-link provider unreachable")
	default:
		logger.Error("unhandled error", zap.Error(err))

		return huma.Error500InternalServerError("internal error")
	}
}
