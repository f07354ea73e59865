// Package capability holds the provider registry and the selector that picks
// a provider for each requested asset kind.
package capability

import (
	"context"
	"fmt"
	"sync"

	"contentforge/internal/domain"
)

// Registry caches capability providers loaded from the backing store. The
// cache is filled on first Load and reused until Invalidate; concurrent
// reloads are idempotent (last writer wins).
type Registry struct {
	source domain.ProviderRepository

	mu     sync.Mutex
	cached []domain.CapabilityProvider
	loaded bool
}

// NewRegistry creates a registry backed by the given provider store.
func NewRegistry(source domain.ProviderRepository) *Registry {
	return &Registry{source: source}
}

// Load returns all registered providers, fetching from the store only when
// the cache is empty. The returned slice preserves store enumeration order,
// which downstream tie-breaking depends on.
func (r *Registry) Load(ctx context.Context) ([]domain.CapabilityProvider, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.loaded {
		return r.cached, nil
	}
	providers, err := r.source.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("load providers: %w", err)
	}
	r.cached = providers
	r.loaded = true
	return r.cached, nil
}

// GetByID returns the provider with the given id, or ErrNotFound.
func (r *Registry) GetByID(ctx context.Context, id string) (*domain.CapabilityProvider, error) {
	providers, err := r.Load(ctx)
	if err != nil {
		return nil, err
	}
	for i := range providers {
		if providers[i].ID == id {
			p := providers[i]
			return &p, nil
		}
	}
	return nil, fmt.Errorf("%w: provider %s", domain.ErrNotFound, id)
}

// GetByKind returns all providers of the given kind in enumeration order.
func (r *Registry) GetByKind(ctx context.Context, kind domain.ProviderKind) ([]domain.CapabilityProvider, error) {
	providers, err := r.Load(ctx)
	if err != nil {
		return nil, err
	}
	var out []domain.CapabilityProvider
	for _, p := range providers {
		if p.Kind == kind {
			out = append(out, p)
		}
	}
	return out, nil
}

// GetDefault returns the provider flagged as default for the kind, else the
// first provider of that kind, else nil.
func (r *Registry) GetDefault(ctx context.Context, kind domain.ProviderKind) (*domain.CapabilityProvider, error) {
	providers, err := r.Load(ctx)
	if err != nil {
		return nil, err
	}
	var first *domain.CapabilityProvider
	for i := range providers {
		if providers[i].Kind != kind {
			continue
		}
		if providers[i].IsDefault {
			p := providers[i]
			return &p, nil
		}
		if first == nil {
			p := providers[i]
			first = &p
		}
	}
	return first, nil
}

// Invalidate clears the cache; the next Load re-fetches from the store.
func (r *Registry) Invalidate() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.cached = nil
	r.loaded = false
}
