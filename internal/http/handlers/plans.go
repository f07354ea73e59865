package handlers

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"contentforge/internal/domain"
)

type planRequest struct {
	BrandID           string    `json:"brandId"`
	SeriesID          string    `json:"seriesId"`
	ScheduledAt       time.Time `json:"scheduledAt"`
	Channel           string    `json:"channel"`
	Objective         string    `json:"objective"`
	CTA               string    `json:"cta"`
	AssetRequirements string    `json:"assetRequirements"`
}

type planResponse struct {
	ID                string    `json:"id"`
	BrandID           string    `json:"brandId"`
	SeriesID          string    `json:"seriesId,omitempty"`
	ScheduledAt       time.Time `json:"scheduledAt"`
	Channel           string    `json:"channel"`
	Objective         string    `json:"objective"`
	CTA               string    `json:"cta,omitempty"`
	AssetRequirements string    `json:"assetRequirements,omitempty"`
	CreatedAt         time.Time `json:"createdAt"`
}

func toPlanResponse(p *domain.Plan) planResponse {
	return planResponse{
		ID:                p.ID,
		BrandID:           p.BrandID,
		SeriesID:          p.SeriesID,
		ScheduledAt:       p.ScheduledAt,
		Channel:           p.Channel,
		Objective:         p.Objective,
		CTA:               p.CTA,
		AssetRequirements: p.AssetRequirements,
		CreatedAt:         p.CreatedAt,
	}
}

func (a *App) CreatePlan(w http.ResponseWriter, r *http.Request) {
	var req planRequest
	if !a.decode(w, r, &req) {
		return
	}
	if req.BrandID == "" || req.Channel == "" || req.Objective == "" {
		a.error(w, http.StatusBadRequest, "bad_request", "brandId, channel and objective are required")
		return
	}
	if req.ScheduledAt.IsZero() {
		a.error(w, http.StatusBadRequest, "bad_request", "scheduledAt is required")
		return
	}
	if _, err := a.Brands.GetByID(r.Context(), req.BrandID); err != nil {
		a.domainError(w, err)
		return
	}
	plan := &domain.Plan{
		ID:                uuid.NewString(),
		BrandID:           req.BrandID,
		SeriesID:          req.SeriesID,
		ScheduledAt:       req.ScheduledAt.UTC(),
		Channel:           req.Channel,
		Objective:         req.Objective,
		CTA:               req.CTA,
		AssetRequirements: req.AssetRequirements,
		CreatedAt:         time.Now().UTC(),
	}
	if err := a.Plans.Create(r.Context(), plan); err != nil {
		a.domainError(w, err)
		return
	}
	a.json(w, http.StatusCreated, toPlanResponse(plan))
}

func (a *App) ListPlans(w http.ResponseWriter, r *http.Request) {
	filter := domain.PlanFilter{Channel: r.URL.Query().Get("channel")}
	if v := r.URL.Query().Get("from"); v != "" {
		t, err := time.Parse(time.RFC3339, v)
		if err != nil {
			a.error(w, http.StatusBadRequest, "bad_request", "from must be RFC3339")
			return
		}
		filter.From = &t
	}
	if v := r.URL.Query().Get("to"); v != "" {
		t, err := time.Parse(time.RFC3339, v)
		if err != nil {
			a.error(w, http.StatusBadRequest, "bad_request", "to must be RFC3339")
			return
		}
		filter.To = &t
	}
	plans, err := a.Plans.List(r.Context(), filter)
	if err != nil {
		a.domainError(w, err)
		return
	}
	items := make([]planResponse, 0, len(plans))
	for i := range plans {
		items = append(items, toPlanResponse(&plans[i]))
	}
	a.json(w, http.StatusOK, map[string]any{"items": items})
}

func (a *App) GetPlan(w http.ResponseWriter, r *http.Request) {
	plan, err := a.Plans.GetByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		a.domainError(w, err)
		return
	}
	a.json(w, http.StatusOK, toPlanResponse(plan))
}
