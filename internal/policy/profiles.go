package policy

import (
	"context"
	"sync"

	"contentforge/internal/domain"
)

// ProfileRegistry caches active policy profiles so repeated evaluations do not
// hit the store. Same contract as the capability registry: load once, serve
// from cache until Invalidate.
type ProfileRegistry struct {
	source domain.PolicyProfileRepository

	mu     sync.Mutex
	cached []domain.PolicyProfile
	loaded bool
}

func NewProfileRegistry(source domain.PolicyProfileRepository) *ProfileRegistry {
	return &ProfileRegistry{source: source}
}

// Load returns the active profiles, reading the store only on the first call
// after construction or invalidation. Errors are not cached.
func (r *ProfileRegistry) Load(ctx context.Context) ([]domain.PolicyProfile, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.loaded {
		return r.cached, nil
	}
	profiles, err := r.source.ListActive(ctx)
	if err != nil {
		return nil, err
	}
	r.cached = profiles
	r.loaded = true
	return r.cached, nil
}

// ForPlatform returns the profile for the platform, falling back to the
// "general" profile, or nil when neither exists.
func (r *ProfileRegistry) ForPlatform(ctx context.Context, platform domain.Platform) (*domain.PolicyProfile, error) {
	profiles, err := r.Load(ctx)
	if err != nil {
		return nil, err
	}
	var general *domain.PolicyProfile
	for i := range profiles {
		switch profiles[i].Platform {
		case string(platform):
			return &profiles[i], nil
		case "general":
			if general == nil {
				general = &profiles[i]
			}
		}
	}
	return general, nil
}

func (r *ProfileRegistry) Invalidate() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.cached = nil
	r.loaded = false
}
