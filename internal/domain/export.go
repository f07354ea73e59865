package domain

import "time"

// ProductTemplate describes one exportable product layout, keyed by Key.
type ProductTemplate struct {
	ID        string
	Key       string
	Name      string
	Schema    map[string]any
	IsActive  bool
	CreatedAt time.Time
}

// ExportMode selects draft or publish semantics for an export.
type ExportMode string

const (
	ExportModeDraft   ExportMode = "draft"
	ExportModePublish ExportMode = "publish"
)

// ExportStatus tracks an export record's progress.
type ExportStatus string

const (
	ExportStatusCreated   ExportStatus = "created"
	ExportStatusCompleted ExportStatus = "completed"
)

// ManifestFile pairs a relative artifact path with the sha256 of the exact
// bytes written, so a bundle can be verified offline.
type ManifestFile struct {
	Path string `json:"path"`
	Hash string `json:"hash"`
}

// PolicySummary is the manifest's condensed policy trace.
type PolicySummary struct {
	Tier         RiskTier `json:"tier"`
	GateRequired bool     `json:"gateRequired"`
	Warnings     []string `json:"warnings"`
}

// CanonSummary is the manifest's condensed canon snapshot.
type CanonSummary struct {
	Universe   string   `json:"universe"`
	Characters []string `json:"characters"`
}

// ExportManifest is the content-addressed hand-off record written at the root
// of an export bundle. Serialization sorts object keys recursively before
// hashing so identical content yields byte-identical manifests.
type ExportManifest struct {
	ProductID      string                         `json:"productId"`
	JobID          string                         `json:"jobId"`
	TemplateKey    string                         `json:"templateKey"`
	Mode           ExportMode                     `json:"mode"`
	ProviderTraces map[ProviderKind]ProviderTrace `json:"providerTraces"`
	PolicySummary  PolicySummary                  `json:"policySummary"`
	CanonSummary   *CanonSummary                  `json:"canonSummary"`
	Files          []ManifestFile                 `json:"files"`
}

// ProductExport is the persisted record of one export run.
type ProductExport struct {
	ID           string
	JobID        string
	TemplateKey  string
	Mode         ExportMode
	Status       ExportStatus
	ExportPath   string
	ManifestJSON []byte
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
