package handlers

import (
	"net/http"

	"contentforge/internal/domain"
)

type providerResponse struct {
	ID          string              `json:"id"`
	Kind        domain.ProviderKind `json:"kind"`
	Name        string              `json:"name"`
	Version     string              `json:"version"`
	Supports    []string            `json:"supports,omitempty"`
	CostTier    domain.CostTier     `json:"costTier"`
	QualityTier domain.QualityTier  `json:"qualityTier"`
	SpeedTier   domain.SpeedTier    `json:"speedTier"`
	Regions     []string            `json:"regions,omitempty"`
	Languages   []string            `json:"languages,omitempty"`
	PolicyTags  []string            `json:"policyTags,omitempty"`
	IsDefault   bool                `json:"isDefault"`
}

func toProviderResponse(p domain.CapabilityProvider) providerResponse {
	return providerResponse{
		ID:          p.ID,
		Kind:        p.Kind,
		Name:        p.Name,
		Version:     p.Version,
		Supports:    p.Supports,
		CostTier:    p.CostTier,
		QualityTier: p.QualityTier,
		SpeedTier:   p.SpeedTier,
		Regions:     p.Regions,
		Languages:   p.Languages,
		PolicyTags:  p.PolicyTags,
		IsDefault:   p.IsDefault,
	}
}

// ListCapabilities returns the registry view, optionally narrowed by kind.
func (a *App) ListCapabilities(w http.ResponseWriter, r *http.Request) {
	var (
		providers []domain.CapabilityProvider
		err       error
	)
	if kind := r.URL.Query().Get("kind"); kind != "" {
		providers, err = a.Providers.GetByKind(r.Context(), domain.ProviderKind(kind))
	} else {
		providers, err = a.Providers.Load(r.Context())
	}
	if err != nil {
		a.domainError(w, err)
		return
	}
	items := make([]providerResponse, 0, len(providers))
	for _, p := range providers {
		items = append(items, toProviderResponse(p))
	}
	a.json(w, http.StatusOK, map[string]any{"items": items})
}

// InvalidateCapabilities drops the registry cache so the next read hits the
// database.
func (a *App) InvalidateCapabilities(w http.ResponseWriter, r *http.Request) {
	a.Providers.Invalidate()
	a.json(w, http.StatusOK, map[string]string{"status": "invalidated"})
}
