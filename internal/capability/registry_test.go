package capability

import (
	"context"
	"errors"
	"testing"

	"contentforge/internal/domain"
)

type fakeProviderStore struct {
	providers []domain.CapabilityProvider
	listCalls int
	err       error
}

func (f *fakeProviderStore) List(ctx context.Context) ([]domain.CapabilityProvider, error) {
	f.listCalls++
	if f.err != nil {
		return nil, f.err
	}
	return f.providers, nil
}

func (f *fakeProviderStore) Create(ctx context.Context, p *domain.CapabilityProvider) error {
	f.providers = append(f.providers, *p)
	return nil
}

func textProvider(id string, isDefault bool) domain.CapabilityProvider {
	return domain.CapabilityProvider{
		ID:        id,
		Kind:      domain.ProviderKindText,
		Name:      "provider-" + id,
		Version:   "1.0.0",
		IsDefault: isDefault,
	}
}

func TestRegistryLoadCachesUntilInvalidate(t *testing.T) {
	store := &fakeProviderStore{providers: []domain.CapabilityProvider{textProvider("a", true)}}
	reg := NewRegistry(store)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		if _, err := reg.Load(ctx); err != nil {
			t.Fatalf("Load() error: %v", err)
		}
	}
	if store.listCalls != 1 {
		t.Fatalf("store.List called %d times, want 1", store.listCalls)
	}

	reg.Invalidate()
	if _, err := reg.Load(ctx); err != nil {
		t.Fatalf("Load() after Invalidate error: %v", err)
	}
	if store.listCalls != 2 {
		t.Fatalf("store.List called %d times after invalidate, want 2", store.listCalls)
	}
}

func TestRegistryLoadErrorNotCached(t *testing.T) {
	store := &fakeProviderStore{err: errors.New("db down")}
	reg := NewRegistry(store)
	ctx := context.Background()

	if _, err := reg.Load(ctx); err == nil {
		t.Fatal("Load() expected error")
	}
	store.err = nil
	store.providers = []domain.CapabilityProvider{textProvider("a", false)}
	got, err := reg.Load(ctx)
	if err != nil {
		t.Fatalf("Load() after recovery error: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("Load() = %d providers, want 1", len(got))
	}
}

func TestRegistryGetByID(t *testing.T) {
	store := &fakeProviderStore{providers: []domain.CapabilityProvider{textProvider("a", false), textProvider("b", false)}}
	reg := NewRegistry(store)
	ctx := context.Background()

	p, err := reg.GetByID(ctx, "b")
	if err != nil {
		t.Fatalf("GetByID() error: %v", err)
	}
	if p.ID != "b" {
		t.Fatalf("GetByID() = %q, want b", p.ID)
	}

	if _, err := reg.GetByID(ctx, "missing"); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("GetByID(missing) error = %v, want ErrNotFound", err)
	}
}

func TestRegistryGetDefault(t *testing.T) {
	image := domain.CapabilityProvider{ID: "img-1", Kind: domain.ProviderKindImage, Name: "img"}
	store := &fakeProviderStore{providers: []domain.CapabilityProvider{
		textProvider("a", false),
		textProvider("b", true),
		image,
	}}
	reg := NewRegistry(store)
	ctx := context.Background()

	def, err := reg.GetDefault(ctx, domain.ProviderKindText)
	if err != nil {
		t.Fatalf("GetDefault() error: %v", err)
	}
	if def == nil || def.ID != "b" {
		t.Fatalf("GetDefault(text) = %+v, want provider b", def)
	}

	// No default flag falls back to the first of the kind.
	def, err = reg.GetDefault(ctx, domain.ProviderKindImage)
	if err != nil {
		t.Fatalf("GetDefault() error: %v", err)
	}
	if def == nil || def.ID != "img-1" {
		t.Fatalf("GetDefault(image) = %+v, want img-1", def)
	}

	def, err = reg.GetDefault(ctx, domain.ProviderKindMusic)
	if err != nil {
		t.Fatalf("GetDefault() error: %v", err)
	}
	if def != nil {
		t.Fatalf("GetDefault(music) = %+v, want nil", def)
	}
}

func TestRegistryGetByKindPreservesOrder(t *testing.T) {
	store := &fakeProviderStore{providers: []domain.CapabilityProvider{
		textProvider("first", false),
		{ID: "img", Kind: domain.ProviderKindImage},
		textProvider("second", false),
	}}
	reg := NewRegistry(store)

	got, err := reg.GetByKind(context.Background(), domain.ProviderKindText)
	if err != nil {
		t.Fatalf("GetByKind() error: %v", err)
	}
	if len(got) != 2 || got[0].ID != "first" || got[1].ID != "second" {
		t.Fatalf("GetByKind() order = %+v, want [first second]", got)
	}
}
