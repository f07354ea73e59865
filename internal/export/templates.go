package export

import (
	"context"
	"fmt"
	"sync"

	"contentforge/internal/domain"
)

// TemplateRegistry caches active product templates, keyed by templateKey.
// Load-once-then-reuse with explicit invalidation, like the capability
// registry.
type TemplateRegistry struct {
	source domain.TemplateRepository

	mu     sync.Mutex
	cached []domain.ProductTemplate
	loaded bool
}

func NewTemplateRegistry(source domain.TemplateRepository) *TemplateRegistry {
	return &TemplateRegistry{source: source}
}

// Load returns the active templates, hitting the store only on the first call
// after construction or invalidation. Errors are not cached.
func (r *TemplateRegistry) Load(ctx context.Context) ([]domain.ProductTemplate, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.loaded {
		return r.cached, nil
	}
	templates, err := r.source.ListActive(ctx)
	if err != nil {
		return nil, err
	}
	r.cached = templates
	r.loaded = true
	return r.cached, nil
}

// GetByKey returns the template for the key or ErrNotFound.
func (r *TemplateRegistry) GetByKey(ctx context.Context, key string) (*domain.ProductTemplate, error) {
	templates, err := r.Load(ctx)
	if err != nil {
		return nil, err
	}
	for i := range templates {
		if templates[i].Key == key {
			return &templates[i], nil
		}
	}
	return nil, fmt.Errorf("%w: template %s", domain.ErrNotFound, key)
}

func (r *TemplateRegistry) Invalidate() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.cached = nil
	r.loaded = false
}
