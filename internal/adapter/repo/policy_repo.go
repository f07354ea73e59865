package repo

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"contentforge/internal/domain"
)

// PolicyProfileRepositoryPG implements domain.PolicyProfileRepository backed
// by PostgreSQL.
type PolicyProfileRepositoryPG struct {
	pool *pgxpool.Pool
}

// NewPolicyProfileRepository creates a new PolicyProfileRepositoryPG.
func NewPolicyProfileRepository(pool *pgxpool.Pool) *PolicyProfileRepositoryPG {
	return &PolicyProfileRepositoryPG{pool: pool}
}

func (r *PolicyProfileRepositoryPG) ListActive(ctx context.Context) ([]domain.PolicyProfile, error) {
	rows, err := r.pool.Query(ctx, `
SELECT id, platform, name, rules_json, is_active, created_at
FROM policy_profiles
WHERE is_active
ORDER BY created_at DESC;
`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var profiles []domain.PolicyProfile
	for rows.Next() {
		var p domain.PolicyProfile
		var rules []byte
		if err := rows.Scan(&p.ID, &p.Platform, &p.Name, &rules, &p.IsActive, &p.CreatedAt); err != nil {
			return nil, err
		}
		if err := fromJSON(rules, &p.Rules); err != nil {
			return nil, err
		}
		profiles = append(profiles, p)
	}
	return profiles, rows.Err()
}

func (r *PolicyProfileRepositoryPG) Create(ctx context.Context, profile *domain.PolicyProfile) error {
	rules, err := mustJSON(profile.Rules)
	if err != nil {
		return err
	}
	query := `
INSERT INTO policy_profiles (id, platform, name, rules_json, is_active)
VALUES ($1, $2, $3, $4, $5)
RETURNING created_at;
`
	return r.pool.QueryRow(ctx, query,
		profile.ID,
		profile.Platform,
		profile.Name,
		rules,
		profile.IsActive,
	).Scan(&profile.CreatedAt)
}
