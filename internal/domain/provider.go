package domain

// ProviderKind enumerates the asset kinds a capability provider can produce.
type ProviderKind string

const (
	ProviderKindText  ProviderKind = "text"
	ProviderKindImage ProviderKind = "image"
	ProviderKindVideo ProviderKind = "video"
	ProviderKindMusic ProviderKind = "music"
)

// CostTier buckets a provider by price.
type CostTier string

const (
	CostTierCheap    CostTier = "cheap"
	CostTierStandard CostTier = "standard"
	CostTierPremium  CostTier = "premium"
)

// QualityTier buckets a provider by output quality.
type QualityTier string

const (
	QualityTierFast     QualityTier = "fast"
	QualityTierStandard QualityTier = "standard"
	QualityTierHQ       QualityTier = "hq"
)

// SpeedTier buckets a provider by latency.
type SpeedTier string

const (
	SpeedTierFast     SpeedTier = "fast"
	SpeedTierStandard SpeedTier = "standard"
	SpeedTierSlow     SpeedTier = "slow"
)

// Objective is the caller's optimization preference for provider selection.
type Objective string

const (
	ObjectiveQuality Objective = "quality"
	ObjectiveCost    Objective = "cost"
	ObjectiveSpeed   Objective = "speed"
)

// CapabilityProvider is a registered content-generation backend. Records are
// immutable for the lifetime of the registry cache; the cache is invalidated
// explicitly, never by age.
type CapabilityProvider struct {
	ID          string
	Kind        ProviderKind
	Name        string
	Version     string
	Supports    []string
	CostTier    CostTier
	QualityTier QualityTier
	SpeedTier   SpeedTier
	Regions     []string
	Languages   []string
	PolicyTags  []string
	IsDefault   bool
}

// HasPolicyTag reports whether the provider carries the given policy tag.
func (p CapabilityProvider) HasPolicyTag(tag string) bool {
	for _, t := range p.PolicyTags {
		if t == tag {
			return true
		}
	}
	return false
}

// SupportsLanguage reports whether the provider explicitly lists the language.
func (p CapabilityProvider) SupportsLanguage(lang string) bool {
	for _, l := range p.Languages {
		if l == lang {
			return true
		}
	}
	return false
}
