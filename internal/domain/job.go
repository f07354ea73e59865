package domain

import "time"

// JobStatus enumerates job lifecycle states. The pipeline is synchronous, so
// a job moves queued -> succeeded or queued -> failed within one request;
// after that the record is immutable except for export linkage.
type JobStatus string

const (
	JobStatusQueued    JobStatus = "queued"
	JobStatusSucceeded JobStatus = "succeeded"
	JobStatusFailed    JobStatus = "failed"
)

// GenerateOptions tunes one generation request.
type GenerateOptions struct {
	Language string        `json:"language,omitempty"` // th | en
	Seed     string        `json:"deterministicSeed,omitempty"`
	Optimize Objective     `json:"objective,omitempty"` // quality | cost | speed
	Policy   string        `json:"policy,omitempty"`
	Music    *MusicOptions `json:"music,omitempty"`
}

// GenerateJobRequest is the typed request body driving one pipeline run.
type GenerateJobRequest struct {
	PlanID     string          `json:"planId,omitempty"`
	BrandID    string          `json:"brandId,omitempty"`
	PersonaID  string          `json:"personaId,omitempty"`
	UniverseID string          `json:"universeId,omitempty"`
	Topic      string          `json:"topic"`
	Objective  string          `json:"objective"`
	CTA        string          `json:"cta,omitempty"`
	Platforms  []Platform      `json:"platforms"`
	Kinds      []ProviderKind  `json:"kinds"`
	Options    GenerateOptions `json:"options"`
}

// JobLogEntry is one line of a job's audit trail.
type JobLogEntry struct {
	At  time.Time `json:"at"`
	Msg string    `json:"msg"`
}

// Job aggregates one request's advisory, selector traces, generated outputs,
// and policy result.
type Job struct {
	ID             string
	PlanID         string
	BrandID        string
	Status         JobStatus
	Request        GenerateJobRequest
	Advisory       *AdvisoryResult
	Selections     map[ProviderKind]SelectorResult
	ProviderTraces map[ProviderKind]ProviderTrace
	Outputs        *GeneratedBundle
	Policy         *PolicyEvaluationResult
	Canon          *CanonPacket
	Logs           []JobLogEntry
	ErrorMessage   string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// GateRequired reports whether the job's policy trace demands manual review
// before publish-mode export.
func (j *Job) GateRequired() bool {
	return j != nil && j.Policy != nil && j.Policy.Overall.OnAirGateRequired
}
