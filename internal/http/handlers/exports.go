package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"contentforge/internal/domain"
	"contentforge/pkg/zip"
)

type exportRequest struct {
	JobID       string            `json:"jobId"`
	TemplateKey string            `json:"templateKey"`
	Mode        domain.ExportMode `json:"mode"`
}

type exportResponse struct {
	ID          string                 `json:"id"`
	JobID       string                 `json:"jobId"`
	TemplateKey string                 `json:"templateKey"`
	Mode        domain.ExportMode      `json:"mode"`
	Status      domain.ExportStatus    `json:"status"`
	ExportPath  string                 `json:"exportPath,omitempty"`
	Manifest    *domain.ExportManifest `json:"manifest,omitempty"`
	CreatedAt   time.Time              `json:"createdAt"`
	UpdatedAt   time.Time              `json:"updatedAt"`
}

func toExportResponse(rec *domain.ProductExport, manifest *domain.ExportManifest) exportResponse {
	return exportResponse{
		ID:          rec.ID,
		JobID:       rec.JobID,
		TemplateKey: rec.TemplateKey,
		Mode:        rec.Mode,
		Status:      rec.Status,
		ExportPath:  rec.ExportPath,
		Manifest:    manifest,
		CreatedAt:   rec.CreatedAt,
		UpdatedAt:   rec.UpdatedAt,
	}
}

// CreateExport assembles a product bundle for a succeeded job. Re-exporting
// the same job, template and mode rewrites the same record and bytes.
func (a *App) CreateExport(w http.ResponseWriter, r *http.Request) {
	var req exportRequest
	if !a.decode(w, r, &req) {
		return
	}
	if req.JobID == "" || req.TemplateKey == "" {
		a.error(w, http.StatusBadRequest, "bad_request", "jobId and templateKey are required")
		return
	}
	if req.Mode == "" {
		req.Mode = domain.ExportModeDraft
	}
	res, err := a.Assembler.Export(r.Context(), req.JobID, req.TemplateKey, req.Mode)
	if err != nil {
		a.domainError(w, err)
		return
	}
	a.json(w, http.StatusCreated, toExportResponse(res.Export, res.Manifest))
}

func (a *App) GetExport(w http.ResponseWriter, r *http.Request) {
	rec, err := a.Exports.GetByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		a.domainError(w, err)
		return
	}
	var manifest *domain.ExportManifest
	if len(rec.ManifestJSON) > 0 {
		manifest = &domain.ExportManifest{}
		if err := json.Unmarshal(rec.ManifestJSON, manifest); err != nil {
			a.domainError(w, err)
			return
		}
	}
	a.json(w, http.StatusOK, toExportResponse(rec, manifest))
}

// DownloadExport streams the bundle directory as a zip archive.
func (a *App) DownloadExport(w http.ResponseWriter, r *http.Request) {
	rec, err := a.Exports.GetByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		a.domainError(w, err)
		return
	}
	if rec.Status != domain.ExportStatusCompleted || rec.ExportPath == "" {
		a.error(w, http.StatusConflict, "not_ready", "export has no bundle yet")
		return
	}
	root, err := a.Bundles.AbsolutePath(rec.ExportPath)
	if err != nil {
		a.domainError(w, err)
		return
	}
	archive, err := zip.ArchiveDir(root)
	if err != nil {
		a.domainError(w, err)
		return
	}
	w.Header().Set("Content-Type", "application/zip")
	w.Header().Set("Content-Disposition", `attachment; filename="product-`+rec.ID+`.zip"`)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(archive)
}
