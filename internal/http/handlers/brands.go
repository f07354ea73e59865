package handlers

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"contentforge/internal/domain"
)

type brandRequest struct {
	Name             string   `json:"name"`
	VoiceTone        string   `json:"voiceTone"`
	ProhibitedTopics string   `json:"prohibitedTopics"`
	TargetAudience   string   `json:"targetAudience"`
	Channels         []string `json:"channels"`
}

type brandResponse struct {
	ID               string    `json:"id"`
	Name             string    `json:"name"`
	VoiceTone        string    `json:"voiceTone,omitempty"`
	ProhibitedTopics string    `json:"prohibitedTopics,omitempty"`
	TargetAudience   string    `json:"targetAudience,omitempty"`
	Channels         []string  `json:"channels,omitempty"`
	CreatedAt        time.Time `json:"createdAt"`
}

func toBrandResponse(b *domain.Brand) brandResponse {
	return brandResponse{
		ID:               b.ID,
		Name:             b.Name,
		VoiceTone:        b.VoiceTone,
		ProhibitedTopics: b.ProhibitedTopics,
		TargetAudience:   b.TargetAudience,
		Channels:         b.Channels,
		CreatedAt:        b.CreatedAt,
	}
}

func (a *App) CreateBrand(w http.ResponseWriter, r *http.Request) {
	var req brandRequest
	if !a.decode(w, r, &req) {
		return
	}
	if req.Name == "" {
		a.error(w, http.StatusBadRequest, "bad_request", "name is required")
		return
	}
	brand := &domain.Brand{
		ID:               uuid.NewString(),
		Name:             req.Name,
		VoiceTone:        req.VoiceTone,
		ProhibitedTopics: req.ProhibitedTopics,
		TargetAudience:   req.TargetAudience,
		Channels:         req.Channels,
		CreatedAt:        time.Now().UTC(),
	}
	if err := a.Brands.Create(r.Context(), brand); err != nil {
		a.domainError(w, err)
		return
	}
	a.json(w, http.StatusCreated, toBrandResponse(brand))
}

func (a *App) ListBrands(w http.ResponseWriter, r *http.Request) {
	brands, err := a.Brands.List(r.Context())
	if err != nil {
		a.domainError(w, err)
		return
	}
	items := make([]brandResponse, 0, len(brands))
	for i := range brands {
		items = append(items, toBrandResponse(&brands[i]))
	}
	a.json(w, http.StatusOK, map[string]any{"items": items})
}

func (a *App) GetBrand(w http.ResponseWriter, r *http.Request) {
	brand, err := a.Brands.GetByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		a.domainError(w, err)
		return
	}
	a.json(w, http.StatusOK, toBrandResponse(brand))
}
