package handlers

import (
	"net/http"
	"time"

	"contentforge/internal/advisory"
	"contentforge/internal/domain"
	"contentforge/internal/policy"
)

type policyProfileResponse struct {
	ID        string         `json:"id"`
	Platform  string         `json:"platform"`
	Name      string         `json:"name"`
	Rules     map[string]any `json:"rules,omitempty"`
	IsActive  bool           `json:"isActive"`
	CreatedAt time.Time      `json:"createdAt"`
}

func (a *App) ListPolicyProfiles(w http.ResponseWriter, r *http.Request) {
	profiles, err := a.Profiles.Load(r.Context())
	if err != nil {
		a.domainError(w, err)
		return
	}
	items := make([]policyProfileResponse, 0, len(profiles))
	for _, p := range profiles {
		items = append(items, policyProfileResponse{
			ID:        p.ID,
			Platform:  p.Platform,
			Name:      p.Name,
			Rules:     p.Rules,
			IsActive:  p.IsActive,
			CreatedAt: p.CreatedAt,
		})
	}
	a.json(w, http.StatusOK, map[string]any{"items": items})
}

func (a *App) InvalidatePolicyProfiles(w http.ResponseWriter, r *http.Request) {
	a.Profiles.Invalidate()
	a.json(w, http.StatusOK, map[string]string{"status": "invalidated"})
}

type policyEvaluateRequest struct {
	Kind       domain.ProviderKind `json:"kind"`
	Platforms  []domain.Platform   `json:"platforms"`
	Topic      string              `json:"topic"`
	Objective  string              `json:"objective"`
	PolicyTags []string            `json:"policyTags"`
}

// EvaluatePolicy previews the deterministic policy trace for a topic without
// creating a job. The advisory pass runs first so ambiguity warnings feed the
// score the same way they do in the pipeline.
func (a *App) EvaluatePolicy(w http.ResponseWriter, r *http.Request) {
	var req policyEvaluateRequest
	if !a.decode(w, r, &req) {
		return
	}
	if req.Topic == "" {
		a.error(w, http.StatusBadRequest, "bad_request", "topic is required")
		return
	}
	if req.Kind == "" {
		req.Kind = domain.ProviderKindText
	}
	if len(req.Platforms) == 0 {
		req.Platforms = []domain.Platform{domain.PlatformFacebook}
	}
	adv := advisory.Analyze(advisory.Input{
		Topic:     req.Topic,
		Objective: req.Objective,
		Platforms: req.Platforms,
	})
	result := policy.Evaluate(domain.PolicyInput{
		Kind:               req.Kind,
		Platforms:          req.Platforms,
		Topic:              req.Topic,
		ProviderPolicyTags: req.PolicyTags,
		Advisory:           &adv,
	})
	a.json(w, http.StatusOK, result)
}
