package repo

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"contentforge/internal/domain"
)

// TemplateRepositoryPG implements domain.TemplateRepository backed by
// PostgreSQL.
type TemplateRepositoryPG struct {
	pool *pgxpool.Pool
}

// NewTemplateRepository creates a new TemplateRepositoryPG.
func NewTemplateRepository(pool *pgxpool.Pool) *TemplateRepositoryPG {
	return &TemplateRepositoryPG{pool: pool}
}

func (r *TemplateRepositoryPG) ListActive(ctx context.Context) ([]domain.ProductTemplate, error) {
	rows, err := r.pool.Query(ctx, `
SELECT id, key, name, schema_json, is_active, created_at
FROM product_templates
WHERE is_active
ORDER BY created_at DESC;
`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var templates []domain.ProductTemplate
	for rows.Next() {
		var t domain.ProductTemplate
		var schema []byte
		if err := rows.Scan(&t.ID, &t.Key, &t.Name, &schema, &t.IsActive, &t.CreatedAt); err != nil {
			return nil, err
		}
		if err := fromJSON(schema, &t.Schema); err != nil {
			return nil, err
		}
		templates = append(templates, t)
	}
	return templates, rows.Err()
}

func (r *TemplateRepositoryPG) Create(ctx context.Context, template *domain.ProductTemplate) error {
	schema, err := mustJSON(template.Schema)
	if err != nil {
		return err
	}
	query := `
INSERT INTO product_templates (id, key, name, schema_json, is_active)
VALUES ($1, $2, $3, $4, $5)
ON CONFLICT (key) DO UPDATE
SET name = EXCLUDED.name,
    schema_json = EXCLUDED.schema_json,
    is_active = EXCLUDED.is_active
RETURNING created_at;
`
	return r.pool.QueryRow(ctx, query,
		template.ID,
		template.Key,
		template.Name,
		schema,
		template.IsActive,
	).Scan(&template.CreatedAt)
}
