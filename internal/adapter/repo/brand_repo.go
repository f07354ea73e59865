package repo

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"contentforge/internal/domain"
)

// BrandRepositoryPG implements domain.BrandRepository backed by PostgreSQL.
type BrandRepositoryPG struct {
	pool *pgxpool.Pool
}

// NewBrandRepository creates a new BrandRepositoryPG.
func NewBrandRepository(pool *pgxpool.Pool) *BrandRepositoryPG {
	return &BrandRepositoryPG{pool: pool}
}

func (r *BrandRepositoryPG) Create(ctx context.Context, brand *domain.Brand) error {
	channels, err := mustJSON(brand.Channels)
	if err != nil {
		return err
	}
	query := `
INSERT INTO brands (id, name, voice_tone, prohibited_topics, target_audience, channels_json)
VALUES ($1, $2, $3, $4, $5, $6)
RETURNING created_at;
`
	return r.pool.QueryRow(ctx, query,
		brand.ID,
		brand.Name,
		brand.VoiceTone,
		brand.ProhibitedTopics,
		brand.TargetAudience,
		channels,
	).Scan(&brand.CreatedAt)
}

func (r *BrandRepositoryPG) GetByID(ctx context.Context, id string) (*domain.Brand, error) {
	row := r.pool.QueryRow(ctx, `SELECT id, name, voice_tone, prohibited_topics, target_audience, channels_json, created_at FROM brands WHERE id = $1`, id)
	return scanBrand(row)
}

func (r *BrandRepositoryPG) List(ctx context.Context) ([]domain.Brand, error) {
	rows, err := r.pool.Query(ctx, `SELECT id, name, voice_tone, prohibited_topics, target_audience, channels_json, created_at FROM brands ORDER BY created_at`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var brands []domain.Brand
	for rows.Next() {
		brand, err := scanBrand(rows)
		if err != nil {
			return nil, err
		}
		brands = append(brands, *brand)
	}
	return brands, rows.Err()
}

func scanBrand(row pgx.Row) (*domain.Brand, error) {
	var b domain.Brand
	var channels []byte
	if err := row.Scan(&b.ID, &b.Name, &b.VoiceTone, &b.ProhibitedTopics, &b.TargetAudience, &channels, &b.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	if err := fromJSON(channels, &b.Channels); err != nil {
		return nil, err
	}
	return &b, nil
}
