// Package canon snapshots universe continuity for a job. The packet is a
// read-only capture: nothing here mutates canon.
package canon

import (
	"context"
	"fmt"

	"contentforge/internal/domain"
)

// Top characters attached per packet.
const characterLimit = 5

// Builder assembles canon packets from the universe store.
type Builder struct {
	source domain.UniverseRepository
}

func NewBuilder(source domain.UniverseRepository) *Builder {
	return &Builder{source: source}
}

// Build loads the universe snapshot: the universe itself, its first five
// characters by name, all events ordered by timeIndex then title, and the
// crossover rules, narrowed to fromSeriesID when one is given.
func (b *Builder) Build(ctx context.Context, universeID, fromSeriesID string) (*domain.CanonPacket, error) {
	universe, err := b.source.GetUniverse(ctx, universeID)
	if err != nil {
		return nil, fmt.Errorf("load universe %s: %w", universeID, err)
	}

	characters, err := b.source.ListCharacters(ctx, universeID, characterLimit)
	if err != nil {
		return nil, fmt.Errorf("load characters for %s: %w", universeID, err)
	}
	events, err := b.source.ListEvents(ctx, universeID)
	if err != nil {
		return nil, fmt.Errorf("load events for %s: %w", universeID, err)
	}
	crossovers, err := b.source.ListCrossovers(ctx, universeID, fromSeriesID)
	if err != nil {
		return nil, fmt.Errorf("load crossovers for %s: %w", universeID, err)
	}

	return &domain.CanonPacket{
		Universe:   *universe,
		Characters: characters,
		Events:     events,
		Crossovers: crossovers,
	}, nil
}

// Summary condenses a packet for manifests and job metadata.
func Summary(packet *domain.CanonPacket) *domain.CanonRef {
	if packet == nil {
		return nil
	}
	return &domain.CanonRef{
		UniverseID:     packet.Universe.ID,
		Snapshot:       true,
		CharacterCount: len(packet.Characters),
		EventCount:     len(packet.Events),
	}
}
