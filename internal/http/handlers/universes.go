package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// GetCanonPacket returns the snapshot the pipeline would attach for this
// universe. fromSeriesId narrows crossover rules to one originating series.
func (a *App) GetCanonPacket(w http.ResponseWriter, r *http.Request) {
	packet, err := a.Canon.Build(r.Context(), chi.URLParam(r, "id"), r.URL.Query().Get("fromSeriesId"))
	if err != nil {
		a.domainError(w, err)
		return
	}
	a.json(w, http.StatusOK, packet)
}
