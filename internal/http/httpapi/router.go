// Package httpapi assembles the chi router and the middleware chain.
package httpapi

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"contentforge/internal/http/handlers"
	"contentforge/internal/infra"
	"contentforge/internal/middleware"
)

func NewRouter(app *handlers.App, cfg *infra.Config, lookup middleware.CountryLookup) http.Handler {
	r := chi.NewRouter()

	r.Use(
		chimw.RealIP,
		chimw.Recoverer,
		middleware.RequestID,
		middleware.Logger(app.Logger),
		middleware.CORS(cfg.AllowedOrigins),
		middleware.RateLimit(cfg.RateLimitPerMin, time.Minute),
		middleware.I18N(cfg.DefaultLocale, lookup),
	)

	r.Get("/v1/healthz", app.Health)

	r.Route("/v1/brands", func(r chi.Router) {
		r.Post("/", app.CreateBrand)
		r.Get("/", app.ListBrands)
		r.Get("/{id}", app.GetBrand)
	})

	r.Route("/v1/personas", func(r chi.Router) {
		r.Post("/", app.CreatePersona)
		r.Get("/", app.ListPersonas)
		r.Get("/{id}", app.GetPersona)
	})

	r.Route("/v1/plans", func(r chi.Router) {
		r.Post("/", app.CreatePlan)
		r.Get("/", app.ListPlans)
		r.Get("/{id}", app.GetPlan)
	})

	r.Route("/v1/jobs", func(r chi.Router) {
		r.Post("/generate", app.GenerateJob)
		r.Get("/{id}", app.GetJob)
		r.Get("/{id}/artifact", app.GetJobArtifact)
	})

	r.Route("/v1/capabilities", func(r chi.Router) {
		r.Get("/", app.ListCapabilities)
		r.Post("/invalidate", app.InvalidateCapabilities)
	})

	r.Route("/v1/policy", func(r chi.Router) {
		r.Get("/profiles", app.ListPolicyProfiles)
		r.Post("/profiles/invalidate", app.InvalidatePolicyProfiles)
		r.Post("/evaluate", app.EvaluatePolicy)
	})

	r.Route("/v1/products", func(r chi.Router) {
		r.Post("/export", app.CreateExport)
		r.Get("/templates", app.ListTemplates)
		r.Post("/templates/invalidate", app.InvalidateTemplates)
		r.Get("/{id}", app.GetExport)
		r.Get("/{id}/download", app.DownloadExport)
	})

	r.Get("/v1/universes/{id}/packet", app.GetCanonPacket)

	return r
}
