// Package pipeline runs the synchronous generation flow: advisory, provider
// selection per asset kind, deterministic generation, policy evaluation, canon
// attachment, persistence. A stage failure marks the job failed and surfaces
// the error; nothing is retried.
package pipeline

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"contentforge/internal/advisory"
	"contentforge/internal/canon"
	"contentforge/internal/capability"
	"contentforge/internal/domain"
	"contentforge/internal/generator"
	"contentforge/internal/policy"
	"contentforge/internal/storage"
)

// Service wires the pipeline stages to their collaborators.
type Service struct {
	brands    domain.BrandRepository
	personas  domain.PersonaRepository
	plans     domain.PlanRepository
	jobs      domain.JobRepository
	registry  *capability.Registry
	selector  *capability.Selector
	canon     *canon.Builder
	artifacts *storage.FileStore
	logger    zerolog.Logger
}

func NewService(
	brands domain.BrandRepository,
	personas domain.PersonaRepository,
	plans domain.PlanRepository,
	jobs domain.JobRepository,
	registry *capability.Registry,
	selector *capability.Selector,
	canonBuilder *canon.Builder,
	artifacts *storage.FileStore,
	logger zerolog.Logger,
) *Service {
	return &Service{
		brands:    brands,
		personas:  personas,
		plans:     plans,
		jobs:      jobs,
		registry:  registry,
		selector:  selector,
		canon:     canonBuilder,
		artifacts: artifacts,
		logger:    logger,
	}
}

// jobArtifact is the on-disk snapshot written after a successful run.
type jobArtifact struct {
	JobID      string                                        `json:"jobId"`
	PlanID     string                                        `json:"planId,omitempty"`
	BrandID    string                                        `json:"brandId"`
	Advisory   *domain.AdvisoryResult                        `json:"advisory"`
	Selections map[domain.ProviderKind]domain.SelectorResult `json:"selections"`
	Traces     map[domain.ProviderKind]domain.ProviderTrace  `json:"providerTraces"`
	Outputs    *domain.GeneratedBundle                       `json:"outputs"`
	Policy     *domain.PolicyEvaluationResult                `json:"policy"`
}

// Run executes one generation request to completion. The returned job is
// already persisted; on error it is persisted as failed when a record was
// created before the failing stage.
func (s *Service) Run(ctx context.Context, req domain.GenerateJobRequest) (*domain.Job, error) {
	plan, brand, persona, err := s.resolveContext(ctx, &req)
	if err != nil {
		return nil, err
	}
	if req.Topic == "" {
		return nil, fmt.Errorf("%w: topic is required", domain.ErrInvalidRequest)
	}
	if req.Objective == "" {
		return nil, fmt.Errorf("%w: objective is required", domain.ErrInvalidRequest)
	}
	if len(req.Kinds) == 0 {
		req.Kinds = []domain.ProviderKind{domain.ProviderKindText}
	}

	now := time.Now().UTC()
	job := &domain.Job{
		ID:        uuid.NewString(),
		PlanID:    req.PlanID,
		BrandID:   brand.ID,
		Status:    domain.JobStatusQueued,
		Request:   req,
		Logs:      []domain.JobLogEntry{{At: now, Msg: "Queued"}},
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.jobs.Create(ctx, job); err != nil {
		return nil, fmt.Errorf("create job: %w", err)
	}

	logger := s.logger.With().Str("job_id", job.ID).Str("brand_id", brand.ID).Logger()

	adv := advisory.Analyze(advisory.Input{
		BrandName:   brand.Name,
		VoiceTone:   brand.VoiceTone,
		Topic:       req.Topic,
		Objective:   req.Objective,
		PersonaName: personaName(persona),
		Platforms:   req.Platforms,
	})
	job.Advisory = &adv

	language := req.Options.Language
	if language == "" {
		language = adv.Normalized.Language
	}
	optimize := req.Options.Optimize
	if optimize == "" {
		optimize = domain.ObjectiveQuality
	}

	genInput := domain.GenerateInput{
		BrandName:        brand.Name,
		VoiceTone:        brand.VoiceTone,
		ProhibitedTopics: brand.ProhibitedTopics,
		TargetAudience:   brand.TargetAudience,
		Topic:            req.Topic,
		Objective:        req.Objective,
		CTA:              req.CTA,
		Platforms:        req.Platforms,
		Language:         language,
		Seed:             req.Options.Seed,
		PersonaName:      personaName(persona),
		Music:            req.Options.Music,
	}

	job.Selections = make(map[domain.ProviderKind]domain.SelectorResult, len(req.Kinds))
	job.ProviderTraces = make(map[domain.ProviderKind]domain.ProviderTrace, len(req.Kinds))
	providers := make(map[domain.ProviderKind]*domain.CapabilityProvider, len(req.Kinds))
	outputs := &domain.GeneratedBundle{}

	for _, kind := range req.Kinds {
		selection, err := s.selector.Select(ctx, domain.SelectorInput{
			Kind:      kind,
			Objective: optimize,
			Language:  language,
			Policy:    req.Options.Policy,
			Advisory:  &adv,
		})
		if err != nil {
			return s.fail(ctx, logger, job, err)
		}
		job.Selections[kind] = selection

		provider, err := s.registry.GetByID(ctx, selection.ProviderID)
		if err != nil {
			return s.fail(ctx, logger, job, err)
		}
		providers[kind] = provider

		started := time.Now()
		bundle, err := generator.Run(kind, genInput)
		if err != nil {
			return s.fail(ctx, logger, job, err)
		}
		generator.Merge(outputs, bundle)

		job.ProviderTraces[kind] = domain.ProviderTrace{
			ProviderID:      provider.ID,
			ProviderName:    provider.Name,
			ExecutionTimeMs: time.Since(started).Milliseconds(),
			Metadata: map[string]string{
				"kind":    string(kind),
				"version": provider.Version,
			},
		}
	}

	policyKind := policyKindFor(req.Kinds)
	evaluation := policy.Evaluate(domain.PolicyInput{
		Kind:               policyKind,
		Platforms:          req.Platforms,
		Topic:              req.Topic,
		Outputs:            outputs,
		ProviderPolicyTags: providerTags(providers[policyKind]),
		Advisory:           &adv,
	})
	job.Policy = &evaluation

	if req.UniverseID != "" {
		packet, err := s.canon.Build(ctx, req.UniverseID, seriesID(plan))
		if err != nil {
			return s.fail(ctx, logger, job, err)
		}
		job.Canon = packet
		outputs.Meta.Canon = canon.Summary(packet)
	}

	job.Outputs = outputs
	job.Status = domain.JobStatusSucceeded
	job.UpdatedAt = time.Now().UTC()
	job.Logs = append(job.Logs, domain.JobLogEntry{At: job.UpdatedAt, Msg: "Generated deterministically"})

	artifactKey, err := s.writeArtifact(ctx, job)
	if err != nil {
		return s.fail(ctx, logger, job, err)
	}
	job.Logs = append(job.Logs, domain.JobLogEntry{At: time.Now().UTC(), Msg: "Artifact written: " + artifactKey})

	if err := s.jobs.Update(ctx, job); err != nil {
		return nil, fmt.Errorf("persist job %s: %w", job.ID, err)
	}

	logger.Info().
		Str("status", string(job.Status)).
		Str("tier", string(evaluation.Overall.Tier)).
		Bool("gate_required", evaluation.Overall.OnAirGateRequired).
		Msg("job completed")
	return job, nil
}

// resolveContext loads the plan, brand, and persona the request references,
// defaulting request fields from the plan when present.
func (s *Service) resolveContext(ctx context.Context, req *domain.GenerateJobRequest) (*domain.Plan, *domain.Brand, *domain.Persona, error) {
	var plan *domain.Plan
	if req.PlanID != "" {
		p, err := s.plans.GetByID(ctx, req.PlanID)
		if err != nil {
			return nil, nil, nil, fmt.Errorf("load plan %s: %w", req.PlanID, err)
		}
		plan = p
		if req.BrandID == "" {
			req.BrandID = plan.BrandID
		}
		if req.Objective == "" {
			req.Objective = plan.Objective
		}
		if req.CTA == "" {
			req.CTA = plan.CTA
		}
	}
	if req.BrandID == "" {
		return nil, nil, nil, fmt.Errorf("%w: brandId is required", domain.ErrInvalidRequest)
	}
	brand, err := s.brands.GetByID(ctx, req.BrandID)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("load brand %s: %w", req.BrandID, err)
	}

	var persona *domain.Persona
	if req.PersonaID != "" {
		persona, err = s.personas.GetByID(ctx, req.PersonaID)
		if err != nil {
			return nil, nil, nil, fmt.Errorf("load persona %s: %w", req.PersonaID, err)
		}
	}
	return plan, brand, persona, nil
}

func (s *Service) writeArtifact(ctx context.Context, job *domain.Job) (string, error) {
	snapshot := jobArtifact{
		JobID:      job.ID,
		PlanID:     job.PlanID,
		BrandID:    job.BrandID,
		Advisory:   job.Advisory,
		Selections: job.Selections,
		Traces:     job.ProviderTraces,
		Outputs:    job.Outputs,
		Policy:     job.Policy,
	}
	raw, err := json.MarshalIndent(snapshot, "", "  ")
	if err != nil {
		return "", fmt.Errorf("encode artifact for job %s: %w", job.ID, err)
	}
	key, _, err := s.artifacts.Write(ctx, "jobs/"+job.ID+".json", raw)
	if err != nil {
		return "", fmt.Errorf("write artifact for job %s: %w", job.ID, err)
	}
	return key, nil
}

// fail persists the failed state and returns the stage error. A failing
// persist is logged, not returned: the stage error is the one the caller acts
// on.
func (s *Service) fail(ctx context.Context, logger zerolog.Logger, job *domain.Job, stageErr error) (*domain.Job, error) {
	job.Status = domain.JobStatusFailed
	job.ErrorMessage = stageErr.Error()
	job.UpdatedAt = time.Now().UTC()
	job.Logs = append(job.Logs, domain.JobLogEntry{At: job.UpdatedAt, Msg: "Failed: " + stageErr.Error()})
	if err := s.jobs.Update(ctx, job); err != nil {
		logger.Error().Err(err).Msg("persist failed job state")
	}
	logger.Error().Err(stageErr).Msg("pipeline stage failed")
	return nil, stageErr
}

// policyKindFor picks the kind policy evaluation runs under: music dominates
// when requested because it carries the extra copyright pattern set.
func policyKindFor(kinds []domain.ProviderKind) domain.ProviderKind {
	for _, kind := range kinds {
		if kind == domain.ProviderKindMusic {
			return kind
		}
	}
	return kinds[0]
}

func personaName(p *domain.Persona) string {
	if p == nil {
		return ""
	}
	return p.Name
}

func seriesID(plan *domain.Plan) string {
	if plan == nil {
		return ""
	}
	return plan.SeriesID
}

func providerTags(p *domain.CapabilityProvider) []string {
	if p == nil {
		return nil
	}
	return p.PolicyTags
}
