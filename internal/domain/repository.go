package domain

import "context"

// BrandRepository defines persistence for brands.
type BrandRepository interface {
	Create(ctx context.Context, brand *Brand) error
	GetByID(ctx context.Context, id string) (*Brand, error)
	List(ctx context.Context) ([]Brand, error)
}

// PersonaRepository defines persistence for personas.
type PersonaRepository interface {
	Create(ctx context.Context, persona *Persona) error
	GetByID(ctx context.Context, id string) (*Persona, error)
	List(ctx context.Context) ([]Persona, error)
}

// PlanRepository defines persistence for content plans.
type PlanRepository interface {
	Create(ctx context.Context, plan *Plan) error
	GetByID(ctx context.Context, id string) (*Plan, error)
	List(ctx context.Context, filter PlanFilter) ([]Plan, error)
}

// ProviderRepository is the backing store the capability registry loads from.
type ProviderRepository interface {
	List(ctx context.Context) ([]CapabilityProvider, error)
	Create(ctx context.Context, provider *CapabilityProvider) error
}

// PolicyProfileRepository is the backing store for policy profiles.
type PolicyProfileRepository interface {
	ListActive(ctx context.Context) ([]PolicyProfile, error)
	Create(ctx context.Context, profile *PolicyProfile) error
}

// TemplateRepository is the backing store for product templates.
type TemplateRepository interface {
	ListActive(ctx context.Context) ([]ProductTemplate, error)
	Create(ctx context.Context, template *ProductTemplate) error
}

// JobRepository defines persistence for job records. Update overwrites the
// mutable portion of a job (status, traces, outputs, logs, error message).
type JobRepository interface {
	Create(ctx context.Context, job *Job) error
	Update(ctx context.Context, job *Job) error
	GetByID(ctx context.Context, id string) (*Job, error)
}

// ExportRepository defines persistence for product export records.
type ExportRepository interface {
	Create(ctx context.Context, export *ProductExport) error
	Update(ctx context.Context, export *ProductExport) error
	GetByID(ctx context.Context, id string) (*ProductExport, error)
	// FindByJobTemplateMode locates an earlier export of the same job with the
	// same template and mode, so re-exports stay idempotent.
	FindByJobTemplateMode(ctx context.Context, jobID, templateKey string, mode ExportMode) (*ProductExport, error)
}

// UniverseRepository reads canon data for packet building.
type UniverseRepository interface {
	GetUniverse(ctx context.Context, id string) (*Universe, error)
	ListCharacters(ctx context.Context, universeID string, limit int) ([]Character, error)
	ListEvents(ctx context.Context, universeID string) ([]CanonEvent, error)
	ListCrossovers(ctx context.Context, universeID, fromSeriesID string) ([]CrossoverRule, error)
}
