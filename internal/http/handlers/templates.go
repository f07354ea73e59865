package handlers

import (
	"net/http"
	"time"
)

type templateResponse struct {
	ID        string         `json:"id"`
	Key       string         `json:"key"`
	Name      string         `json:"name"`
	Schema    map[string]any `json:"schema,omitempty"`
	IsActive  bool           `json:"isActive"`
	CreatedAt time.Time      `json:"createdAt"`
}

func (a *App) ListTemplates(w http.ResponseWriter, r *http.Request) {
	templates, err := a.Templates.Load(r.Context())
	if err != nil {
		a.domainError(w, err)
		return
	}
	items := make([]templateResponse, 0, len(templates))
	for _, t := range templates {
		items = append(items, templateResponse{
			ID:        t.ID,
			Key:       t.Key,
			Name:      t.Name,
			Schema:    t.Schema,
			IsActive:  t.IsActive,
			CreatedAt: t.CreatedAt,
		})
	}
	a.json(w, http.StatusOK, map[string]any{"items": items})
}

func (a *App) InvalidateTemplates(w http.ResponseWriter, r *http.Request) {
	a.Templates.Invalidate()
	a.json(w, http.StatusOK, map[string]string{"status": "invalidated"})
}
