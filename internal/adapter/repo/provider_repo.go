package repo

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"contentforge/internal/domain"
)

// ProviderRepositoryPG implements domain.ProviderRepository backed by
// PostgreSQL. Rows keep their insertion order via the position column; the
// selector's tie-break depends on List preserving it.
type ProviderRepositoryPG struct {
	pool *pgxpool.Pool
}

// NewProviderRepository creates a new ProviderRepositoryPG.
func NewProviderRepository(pool *pgxpool.Pool) *ProviderRepositoryPG {
	return &ProviderRepositoryPG{pool: pool}
}

func (r *ProviderRepositoryPG) List(ctx context.Context) ([]domain.CapabilityProvider, error) {
	rows, err := r.pool.Query(ctx, `
SELECT id, kind, name, version, supports_json, cost_tier, quality_tier, speed_tier,
       regions_json, languages_json, policy_tags_json, is_default
FROM capability_providers
ORDER BY position;
`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var providers []domain.CapabilityProvider
	for rows.Next() {
		provider, err := scanProvider(rows)
		if err != nil {
			return nil, err
		}
		providers = append(providers, *provider)
	}
	return providers, rows.Err()
}

func (r *ProviderRepositoryPG) Create(ctx context.Context, provider *domain.CapabilityProvider) error {
	supports, err := mustJSON(provider.Supports)
	if err != nil {
		return err
	}
	regions, err := mustJSON(provider.Regions)
	if err != nil {
		return err
	}
	languages, err := mustJSON(provider.Languages)
	if err != nil {
		return err
	}
	policyTags, err := mustJSON(provider.PolicyTags)
	if err != nil {
		return err
	}
	query := `
INSERT INTO capability_providers (id, kind, name, version, supports_json, cost_tier, quality_tier, speed_tier, regions_json, languages_json, policy_tags_json, is_default)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
ON CONFLICT (id) DO UPDATE
SET kind = EXCLUDED.kind,
    name = EXCLUDED.name,
    version = EXCLUDED.version,
    supports_json = EXCLUDED.supports_json,
    cost_tier = EXCLUDED.cost_tier,
    quality_tier = EXCLUDED.quality_tier,
    speed_tier = EXCLUDED.speed_tier,
    regions_json = EXCLUDED.regions_json,
    languages_json = EXCLUDED.languages_json,
    policy_tags_json = EXCLUDED.policy_tags_json,
    is_default = EXCLUDED.is_default;
`
	_, err = r.pool.Exec(ctx, query,
		provider.ID,
		provider.Kind,
		provider.Name,
		provider.Version,
		supports,
		provider.CostTier,
		provider.QualityTier,
		provider.SpeedTier,
		regions,
		languages,
		policyTags,
		provider.IsDefault,
	)
	return err
}

func scanProvider(row pgx.Row) (*domain.CapabilityProvider, error) {
	var p domain.CapabilityProvider
	var supports, regions, languages, policyTags []byte
	if err := row.Scan(&p.ID, &p.Kind, &p.Name, &p.Version, &supports, &p.CostTier, &p.QualityTier, &p.SpeedTier, &regions, &languages, &policyTags, &p.IsDefault); err != nil {
		return nil, err
	}
	if err := fromJSON(supports, &p.Supports); err != nil {
		return nil, err
	}
	if err := fromJSON(regions, &p.Regions); err != nil {
		return nil, err
	}
	if err := fromJSON(languages, &p.Languages); err != nil {
		return nil, err
	}
	if err := fromJSON(policyTags, &p.PolicyTags); err != nil {
		return nil, err
	}
	return &p, nil
}
