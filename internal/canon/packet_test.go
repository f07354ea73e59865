package canon

import (
	"context"
	"errors"
	"testing"

	"contentforge/internal/domain"
)

type fakeUniverseStore struct {
	universe   *domain.Universe
	characters []domain.Character
	events     []domain.CanonEvent
	crossovers []domain.CrossoverRule

	gotCharacterLimit int
	gotFromSeriesID   string
	err               error
}

func (f *fakeUniverseStore) GetUniverse(ctx context.Context, id string) (*domain.Universe, error) {
	if f.err != nil {
		return nil, f.err
	}
	if f.universe == nil || f.universe.ID != id {
		return nil, domain.ErrNotFound
	}
	return f.universe, nil
}

func (f *fakeUniverseStore) ListCharacters(ctx context.Context, universeID string, limit int) ([]domain.Character, error) {
	f.gotCharacterLimit = limit
	if limit < len(f.characters) {
		return f.characters[:limit], nil
	}
	return f.characters, nil
}

func (f *fakeUniverseStore) ListEvents(ctx context.Context, universeID string) ([]domain.CanonEvent, error) {
	return f.events, nil
}

func (f *fakeUniverseStore) ListCrossovers(ctx context.Context, universeID, fromSeriesID string) ([]domain.CrossoverRule, error) {
	f.gotFromSeriesID = fromSeriesID
	return f.crossovers, nil
}

func demoStore() *fakeUniverseStore {
	return &fakeUniverseStore{
		universe: &domain.Universe{ID: "u1", Name: "Demo Universe"},
		characters: []domain.Character{
			{ID: "c1", UniverseID: "u1", Name: "Aree"},
			{ID: "c2", UniverseID: "u1", Name: "Boon"},
			{ID: "c3", UniverseID: "u1", Name: "Chai"},
			{ID: "c4", UniverseID: "u1", Name: "Dara"},
			{ID: "c5", UniverseID: "u1", Name: "Ekk"},
			{ID: "c6", UniverseID: "u1", Name: "Fon"},
		},
		events: []domain.CanonEvent{
			{ID: "e1", UniverseID: "u1", Title: "Founding", TimeIndex: 0},
			{ID: "e2", UniverseID: "u1", Title: "The move", TimeIndex: 1},
		},
		crossovers: []domain.CrossoverRule{
			{ID: "x1", UniverseID: "u1", FromSeriesID: "s1", ToSeriesID: "s2"},
		},
	}
}

func TestBuildPacket(t *testing.T) {
	store := demoStore()
	packet, err := NewBuilder(store).Build(context.Background(), "u1", "s1")
	if err != nil {
		t.Fatalf("Build() error: %v", err)
	}

	if packet.Universe.ID != "u1" {
		t.Fatalf("universe = %+v", packet.Universe)
	}
	if store.gotCharacterLimit != 5 {
		t.Fatalf("character limit = %d, want 5", store.gotCharacterLimit)
	}
	if len(packet.Characters) != 5 {
		t.Fatalf("characters = %d, want capped at 5", len(packet.Characters))
	}
	if store.gotFromSeriesID != "s1" {
		t.Fatalf("fromSeriesID = %q, want s1", store.gotFromSeriesID)
	}
	if len(packet.Events) != 2 || len(packet.Crossovers) != 1 {
		t.Fatalf("events = %d, crossovers = %d", len(packet.Events), len(packet.Crossovers))
	}
}

func TestBuildUnknownUniverse(t *testing.T) {
	_, err := NewBuilder(demoStore()).Build(context.Background(), "missing", "")
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("Build() error = %v, want ErrNotFound", err)
	}
}

func TestSummary(t *testing.T) {
	store := demoStore()
	packet, err := NewBuilder(store).Build(context.Background(), "u1", "")
	if err != nil {
		t.Fatalf("Build() error: %v", err)
	}

	ref := Summary(packet)
	if ref.UniverseID != "u1" || !ref.Snapshot {
		t.Fatalf("ref = %+v", ref)
	}
	if ref.CharacterCount != 5 || ref.EventCount != 2 {
		t.Fatalf("counts = %+v", ref)
	}

	if Summary(nil) != nil {
		t.Fatal("nil packet must summarize to nil")
	}
}
