package capability

import (
	"context"
	"fmt"

	"contentforge/internal/domain"
)

// Tier score tables, one per objective. Unknown tiers score 0.
var (
	qualityScores = map[domain.QualityTier]int{
		domain.QualityTierHQ:       3,
		domain.QualityTierStandard: 2,
		domain.QualityTierFast:     1,
	}
	costScores = map[domain.CostTier]int{
		domain.CostTierCheap:    3,
		domain.CostTierStandard: 2,
		domain.CostTierPremium:  1,
	}
	speedScores = map[domain.SpeedTier]int{
		domain.SpeedTierFast:     3,
		domain.SpeedTierStandard: 2,
		domain.SpeedTierSlow:     1,
	}
)

// Selector scores registered providers and picks one per request.
type Selector struct {
	registry *Registry
}

// NewSelector creates a selector over the given registry.
func NewSelector(registry *Registry) *Selector {
	return &Selector{registry: registry}
}

// Select scores every provider of the requested kind and returns the best.
// Ties break on registry enumeration order: the first provider reaching the
// maximum wins, which keeps repeated selections stable for identical registry
// contents. When no provider of the kind is registered, the kind's default is
// used with a zero score; with no default either, ErrNoProviderAvailable.
func (s *Selector) Select(ctx context.Context, input domain.SelectorInput) (domain.SelectorResult, error) {
	providers, err := s.registry.GetByKind(ctx, input.Kind)
	if err != nil {
		return domain.SelectorResult{}, err
	}

	if len(providers) == 0 {
		fallback, err := s.registry.GetDefault(ctx, input.Kind)
		if err != nil {
			return domain.SelectorResult{}, err
		}
		if fallback == nil {
			return domain.SelectorResult{}, fmt.Errorf("%w for kind: %s", domain.ErrNoProviderAvailable, input.Kind)
		}
		return domain.SelectorResult{
			ProviderID: fallback.ID,
			Reason:     "No providers available, using default",
		}, nil
	}

	best := -1
	var winner domain.CapabilityProvider
	var winning domain.ScoreBreakdown
	for _, p := range providers {
		breakdown := scoreProvider(p, input)
		total := totalScore(breakdown)
		if total > best {
			best = total
			winner = p
			winning = breakdown
		}
	}

	reason := fmt.Sprintf("Selected %s (%s): objective=%d language=%d policy=%d total=%d",
		winner.Name, winner.Kind,
		winning.ObjectiveScore, winning.LanguageScore, winning.PolicyScore, best)

	return domain.SelectorResult{
		ProviderID: winner.ID,
		Score:      best,
		Breakdown:  winning,
		Reason:     reason,
	}, nil
}

func scoreProvider(p domain.CapabilityProvider, input domain.SelectorInput) domain.ScoreBreakdown {
	var b domain.ScoreBreakdown

	switch input.Objective {
	case domain.ObjectiveQuality:
		b.ObjectiveScore = qualityScores[p.QualityTier]
	case domain.ObjectiveCost:
		b.ObjectiveScore = costScores[p.CostTier]
	case domain.ObjectiveSpeed:
		b.ObjectiveScore = speedScores[p.SpeedTier]
	}

	if p.SupportsLanguage(input.Language) {
		b.LanguageScore = 2
	} else if len(p.Languages) == 0 {
		// No language restriction reads as universal.
		b.LanguageScore = 1
	}

	if input.Advisory.HasWarnings() {
		if p.HasPolicyTag("strict") {
			b.PolicyScore = 3
		} else if p.HasPolicyTag("safe") {
			b.PolicyScore = 1
		}
	} else if p.HasPolicyTag("safe") {
		b.PolicyScore = 2
	}

	return b
}

func totalScore(b domain.ScoreBreakdown) int {
	return b.ObjectiveScore*3 + b.LanguageScore*2 + b.PolicyScore
}
