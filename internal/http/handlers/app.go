// Package handlers holds the HTTP surface. Each handler decodes a request,
// calls one service, and maps domain errors onto status codes.
package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rs/zerolog"

	"contentforge/internal/canon"
	"contentforge/internal/capability"
	"contentforge/internal/domain"
	"contentforge/internal/export"
	"contentforge/internal/pipeline"
	"contentforge/internal/policy"
	"contentforge/internal/storage"
)

type App struct {
	Brands    domain.BrandRepository
	Personas  domain.PersonaRepository
	Plans     domain.PlanRepository
	Jobs      domain.JobRepository
	Exports   domain.ExportRepository
	Providers *capability.Registry
	Profiles  *policy.ProfileRegistry
	Templates *export.TemplateRegistry
	Canon     *canon.Builder
	Pipeline  *pipeline.Service
	Assembler *export.Assembler
	Artifacts *storage.FileStore
	Bundles   *storage.FileStore
	Logger    zerolog.Logger
}

func (a *App) json(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func (a *App) error(w http.ResponseWriter, code int, slug, message string) {
	a.json(w, code, map[string]any{"error": map[string]string{"code": slug, "message": message}})
}

// domainError maps service errors onto HTTP status codes. A blocked publish is
// a client-resolvable conflict, not a system failure.
func (a *App) domainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		a.error(w, http.StatusNotFound, "not_found", err.Error())
	case errors.Is(err, domain.ErrInvalidRequest):
		a.error(w, http.StatusBadRequest, "bad_request", err.Error())
	case errors.Is(err, domain.ErrNoProviderAvailable):
		a.error(w, http.StatusUnprocessableEntity, "no_provider", err.Error())
	case errors.Is(err, domain.ErrPublishBlocked):
		a.error(w, http.StatusConflict, "publish_blocked", "content needs manual review before publish")
	default:
		a.Logger.Error().Err(err).Msg("request failed")
		a.error(w, http.StatusInternalServerError, "internal", "internal error")
	}
}

func (a *App) decode(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", "invalid payload")
		return false
	}
	return true
}
