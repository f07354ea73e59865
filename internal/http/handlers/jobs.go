package handlers

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"contentforge/internal/domain"
	"contentforge/internal/middleware"
)

type jobResponse struct {
	ID             string                                        `json:"id"`
	PlanID         string                                        `json:"planId,omitempty"`
	BrandID        string                                        `json:"brandId"`
	Status         domain.JobStatus                              `json:"status"`
	Request        domain.GenerateJobRequest                     `json:"request"`
	Advisory       *domain.AdvisoryResult                        `json:"advisory,omitempty"`
	Selections     map[domain.ProviderKind]domain.SelectorResult `json:"selections,omitempty"`
	ProviderTraces map[domain.ProviderKind]domain.ProviderTrace  `json:"providerTraces,omitempty"`
	Outputs        *domain.GeneratedBundle                       `json:"outputs,omitempty"`
	Policy         *domain.PolicyEvaluationResult                `json:"policy,omitempty"`
	Canon          *domain.CanonPacket                           `json:"canon,omitempty"`
	Logs           []domain.JobLogEntry                          `json:"logs"`
	ErrorMessage   string                                        `json:"errorMessage,omitempty"`
	ArtifactPath   string                                        `json:"artifactPath,omitempty"`
	CreatedAt      time.Time                                     `json:"createdAt"`
	UpdatedAt      time.Time                                     `json:"updatedAt"`
}

func toJobResponse(job *domain.Job) jobResponse {
	resp := jobResponse{
		ID:             job.ID,
		PlanID:         job.PlanID,
		BrandID:        job.BrandID,
		Status:         job.Status,
		Request:        job.Request,
		Advisory:       job.Advisory,
		Selections:     job.Selections,
		ProviderTraces: job.ProviderTraces,
		Outputs:        job.Outputs,
		Policy:         job.Policy,
		Canon:          job.Canon,
		Logs:           job.Logs,
		ErrorMessage:   job.ErrorMessage,
		CreatedAt:      job.CreatedAt,
		UpdatedAt:      job.UpdatedAt,
	}
	if job.Status == domain.JobStatusSucceeded {
		resp.ArtifactPath = "jobs/" + job.ID + ".json"
	}
	return resp
}

// GenerateJob runs the full pipeline synchronously and returns the persisted
// job. An explicit X-Locale header fills a missing output language; otherwise
// the advisory's inferred language applies downstream.
func (a *App) GenerateJob(w http.ResponseWriter, r *http.Request) {
	var req domain.GenerateJobRequest
	if !a.decode(w, r, &req) {
		return
	}
	if req.Options.Language == "" && r.Header.Get("X-Locale") != "" {
		req.Options.Language = middleware.LocaleFromContext(r.Context())
	}
	job, err := a.Pipeline.Run(r.Context(), req)
	if err != nil {
		a.domainError(w, err)
		return
	}
	a.json(w, http.StatusCreated, toJobResponse(job))
}

func (a *App) GetJob(w http.ResponseWriter, r *http.Request) {
	job, err := a.Jobs.GetByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		a.domainError(w, err)
		return
	}
	a.json(w, http.StatusOK, toJobResponse(job))
}

// GetJobArtifact streams the JSON snapshot written after a successful run.
func (a *App) GetJobArtifact(w http.ResponseWriter, r *http.Request) {
	job, err := a.Jobs.GetByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		a.domainError(w, err)
		return
	}
	if job.Status != domain.JobStatusSucceeded {
		a.error(w, http.StatusConflict, "not_ready", "job has no artifact")
		return
	}
	data, err := a.Artifacts.Read(r.Context(), "jobs/"+job.ID+".json")
	if err != nil {
		a.domainError(w, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}
