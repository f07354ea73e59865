package repo

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"contentforge/internal/domain"
)

// PlanRepositoryPG implements domain.PlanRepository backed by PostgreSQL.
type PlanRepositoryPG struct {
	pool *pgxpool.Pool
}

// NewPlanRepository creates a new PlanRepositoryPG.
func NewPlanRepository(pool *pgxpool.Pool) *PlanRepositoryPG {
	return &PlanRepositoryPG{pool: pool}
}

func (r *PlanRepositoryPG) Create(ctx context.Context, plan *domain.Plan) error {
	query := `
INSERT INTO plans (id, brand_id, series_id, scheduled_at, channel, objective, cta, asset_requirements)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
RETURNING created_at;
`
	return r.pool.QueryRow(ctx, query,
		plan.ID,
		plan.BrandID,
		plan.SeriesID,
		plan.ScheduledAt,
		plan.Channel,
		plan.Objective,
		plan.CTA,
		plan.AssetRequirements,
	).Scan(&plan.CreatedAt)
}

func (r *PlanRepositoryPG) GetByID(ctx context.Context, id string) (*domain.Plan, error) {
	row := r.pool.QueryRow(ctx, `SELECT id, brand_id, series_id, scheduled_at, channel, objective, cta, asset_requirements, created_at FROM plans WHERE id = $1`, id)
	return scanPlan(row)
}

// List returns plans ordered by schedule, optionally narrowed by channel and
// date window.
func (r *PlanRepositoryPG) List(ctx context.Context, filter domain.PlanFilter) ([]domain.Plan, error) {
	var conditions []string
	var args []any
	if filter.Channel != "" {
		args = append(args, filter.Channel)
		conditions = append(conditions, fmt.Sprintf("channel = $%d", len(args)))
	}
	if filter.From != nil {
		args = append(args, *filter.From)
		conditions = append(conditions, fmt.Sprintf("scheduled_at >= $%d", len(args)))
	}
	if filter.To != nil {
		args = append(args, *filter.To)
		conditions = append(conditions, fmt.Sprintf("scheduled_at <= $%d", len(args)))
	}

	query := `SELECT id, brand_id, series_id, scheduled_at, channel, objective, cta, asset_requirements, created_at FROM plans`
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY scheduled_at"

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var plans []domain.Plan
	for rows.Next() {
		plan, err := scanPlan(rows)
		if err != nil {
			return nil, err
		}
		plans = append(plans, *plan)
	}
	return plans, rows.Err()
}

func scanPlan(row pgx.Row) (*domain.Plan, error) {
	var p domain.Plan
	if err := row.Scan(&p.ID, &p.BrandID, &p.SeriesID, &p.ScheduledAt, &p.Channel, &p.Objective, &p.CTA, &p.AssetRequirements, &p.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &p, nil
}
