package handlers

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"contentforge/internal/domain"
)

type personaRequest struct {
	BrandID    string        `json:"brandId"`
	Name       string        `json:"name"`
	StyleGuide string        `json:"styleGuide"`
	DoDont     domain.DoDont `json:"doDont"`
	Examples   []string      `json:"examples"`
}

type personaResponse struct {
	ID         string        `json:"id"`
	BrandID    string        `json:"brandId"`
	Name       string        `json:"name"`
	StyleGuide string        `json:"styleGuide,omitempty"`
	DoDont     domain.DoDont `json:"doDont"`
	Examples   []string      `json:"examples,omitempty"`
	CreatedAt  time.Time     `json:"createdAt"`
}

func toPersonaResponse(p *domain.Persona) personaResponse {
	return personaResponse{
		ID:         p.ID,
		BrandID:    p.BrandID,
		Name:       p.Name,
		StyleGuide: p.StyleGuide,
		DoDont:     p.DoDont,
		Examples:   p.Examples,
		CreatedAt:  p.CreatedAt,
	}
}

func (a *App) CreatePersona(w http.ResponseWriter, r *http.Request) {
	var req personaRequest
	if !a.decode(w, r, &req) {
		return
	}
	if req.BrandID == "" || req.Name == "" {
		a.error(w, http.StatusBadRequest, "bad_request", "brandId and name are required")
		return
	}
	if _, err := a.Brands.GetByID(r.Context(), req.BrandID); err != nil {
		a.domainError(w, err)
		return
	}
	persona := &domain.Persona{
		ID:         uuid.NewString(),
		BrandID:    req.BrandID,
		Name:       req.Name,
		StyleGuide: req.StyleGuide,
		DoDont:     req.DoDont,
		Examples:   req.Examples,
		CreatedAt:  time.Now().UTC(),
	}
	if err := a.Personas.Create(r.Context(), persona); err != nil {
		a.domainError(w, err)
		return
	}
	a.json(w, http.StatusCreated, toPersonaResponse(persona))
}

func (a *App) ListPersonas(w http.ResponseWriter, r *http.Request) {
	personas, err := a.Personas.List(r.Context())
	if err != nil {
		a.domainError(w, err)
		return
	}
	items := make([]personaResponse, 0, len(personas))
	for i := range personas {
		items = append(items, toPersonaResponse(&personas[i]))
	}
	a.json(w, http.StatusOK, map[string]any{"items": items})
}

func (a *App) GetPersona(w http.ResponseWriter, r *http.Request) {
	persona, err := a.Personas.GetByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		a.domainError(w, err)
		return
	}
	a.json(w, http.StatusOK, toPersonaResponse(persona))
}
