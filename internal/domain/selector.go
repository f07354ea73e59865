package domain

// SelectorInput describes one provider-selection request. It is constructed
// per call and never persisted.
type SelectorInput struct {
	Kind      ProviderKind
	Objective Objective
	Language  string
	Policy    string
	Advisory  *AdvisoryResult
}

// ScoreBreakdown holds the independent components of a selection score.
type ScoreBreakdown struct {
	ObjectiveScore int `json:"objectiveScore"`
	LanguageScore  int `json:"languageScore"`
	PolicyScore    int `json:"policyScore"`
}

// SelectorResult records which provider won and why. Score is derived, never
// set independently: it always equals ObjectiveScore*3 + LanguageScore*2 +
// PolicyScore for the chosen provider.
type SelectorResult struct {
	ProviderID string         `json:"providerId"`
	Score      int            `json:"score"`
	Breakdown  ScoreBreakdown `json:"breakdown"`
	Reason     string         `json:"reason"`
}

// ProviderTrace records a provider execution for auditing and export manifests.
type ProviderTrace struct {
	ProviderID      string            `json:"providerId"`
	ProviderName    string            `json:"providerName"`
	ExecutionTimeMs int64             `json:"executionTimeMs"`
	Metadata        map[string]string `json:"metadata,omitempty"`
}
