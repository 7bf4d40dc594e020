package container

import (
	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	_ "github.com/danielgtaylor/huma/v2/formats/cbor" // CBOR format support for huma
	"github.com/go-chi/chi/v5"
	"github.com/samber/do"
	analyticsstore "github.com/serroba/campaign-links/internal/analytics/store"
	"github.com/serroba/campaign-links/internal/handlers"
	"github.com/serroba/campaign-links/internal/health"
	"github.com/serroba/campaign-links/internal/history"
	"github.com/serroba/campaign-links/internal/messaging"
	"github.com/serroba/campaign-links/internal/middleware"
	"github.com/serroba/campaign-links/internal/session"
	"github.com/serroba/campaign-links/internal/snapshot"
	"go.uber.org/zap"
)

// HTTPPackage provides the chi router and the huma API with every route registered.
func HTTPPackage(i *do.Injector) {
	do.Provide(i, func(_ *do.Injector) (*chi.Mux, error) {
		return chi.NewMux(), nil
	})

	do.Provide(i, func(i *do.Injector) (huma.API, error) {
		router := do.MustInvoke[*chi.Mux](i)
		opts := do.MustInvoke[*Options](i)
		hist := do.MustInvoke[*history.Store](i)
		logger := do.MustInvoke[*zap.Logger](i)
		ctrl := do.MustInvoke[*session.Controller](i)

		api := humachi.New(router, huma.DefaultConfig("Campaign Links", "1.0.0"))
		api.UseMiddleware(middleware.RequestLogger(logger))

		handlers.RegisterRoutes(api, handlers.Handlers{
			Session:   handlers.NewSessionHandler(ctrl, logger),
			Links:     handlers.NewLinkHandler(ctrl, hist.Limit(), logger),
			Settings:  handlers.NewSettingsHandler(ctrl, logger),
			Analytics: handlers.NewAnalyticsHandler(do.MustInvoke[*analyticsstore.Stats](i), logger),
		})

		health.RegisterRoutes(api, health.NewHandler(healthChecks(i, opts)))

		return api, nil
	})
}

func healthChecks(i *do.Injector, opts *Options) map[string]health.Checker {
	checks := make(map[string]health.Checker)

	if checker, ok := do.MustInvoke[snapshot.Store](i).(health.Checker); ok {
		checks["storage"] = checker
	}

	if opts.Events == messaging.BackendRedis {
		checks["events"] = health.NewRedisChecker(do.MustInvoke[*RedisClient](i).Client)
	}

	return checks
}
