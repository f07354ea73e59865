package domain

import "time"

// RiskTier is the coarse bucket summarizing an overall policy score.
type RiskTier string

const (
	RiskTierLow     RiskTier = "low"
	RiskTierMedium  RiskTier = "medium"
	RiskTierHigh    RiskTier = "high"
	RiskTierUnknown RiskTier = "unknown"
)

// PolicyInput is the context a policy evaluation runs over.
type PolicyInput struct {
	Kind               ProviderKind
	Platforms          []Platform
	Topic              string
	Outputs            *GeneratedBundle
	ProviderPolicyTags []string
	Advisory           *AdvisoryResult
}

// PlatformPolicyResult is the per-platform slice of a policy evaluation.
type PlatformPolicyResult struct {
	RiskScore     int      `json:"riskScore"`
	Warnings      []string `json:"warnings"`
	RequiredEdits []string `json:"requiredEdits"`
}

// PolicyOverall summarizes risk across all platforms. OnAirGateRequired holds
// exactly when Tier is high or any platform's score reaches 80.
type PolicyOverall struct {
	RiskScore         int      `json:"riskScore"`
	Tier              RiskTier `json:"tier"`
	OnAirGateRequired bool     `json:"onAirGateRequired"`
}

// PolicyEvaluationResult is the full, deterministic policy trace for a job.
type PolicyEvaluationResult struct {
	Platform map[Platform]PlatformPolicyResult `json:"platform"`
	Overall  PolicyOverall                     `json:"overall"`
	Notes    []string                          `json:"notes"`
}

// PolicyProfile is a persisted per-platform policy configuration. Rules are
// stored as a JSON column and decoded at the repository boundary.
type PolicyProfile struct {
	ID        string
	Platform  string
	Name      string
	Rules     map[string]any
	IsActive  bool
	CreatedAt time.Time
}
