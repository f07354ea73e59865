package repo

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"contentforge/internal/domain"
)

// ExportRepositoryPG implements domain.ExportRepository backed by PostgreSQL.
// The (job_id, template_key, mode) uniqueness constraint is what makes
// re-exports reuse their product id.
type ExportRepositoryPG struct {
	pool *pgxpool.Pool
}

// NewExportRepository creates a new ExportRepositoryPG.
func NewExportRepository(pool *pgxpool.Pool) *ExportRepositoryPG {
	return &ExportRepositoryPG{pool: pool}
}

func (r *ExportRepositoryPG) Create(ctx context.Context, export *domain.ProductExport) error {
	manifest := export.ManifestJSON
	if len(manifest) == 0 {
		manifest = []byte("{}")
	}
	query := `
INSERT INTO product_exports (id, job_id, template_key, mode, status, export_path, manifest_json, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
`
	_, err := r.pool.Exec(ctx, query,
		export.ID,
		export.JobID,
		export.TemplateKey,
		export.Mode,
		export.Status,
		export.ExportPath,
		manifest,
		export.CreatedAt,
		export.UpdatedAt,
	)
	return err
}

func (r *ExportRepositoryPG) Update(ctx context.Context, export *domain.ProductExport) error {
	query := `
UPDATE product_exports
SET status = $2,
    export_path = $3,
    manifest_json = $4,
    updated_at = $5
WHERE id = $1;
`
	tag, err := r.pool.Exec(ctx, query,
		export.ID,
		export.Status,
		export.ExportPath,
		export.ManifestJSON,
		export.UpdatedAt,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *ExportRepositoryPG) GetByID(ctx context.Context, id string) (*domain.ProductExport, error) {
	row := r.pool.QueryRow(ctx, `
SELECT id, job_id, template_key, mode, status, export_path, manifest_json, created_at, updated_at
FROM product_exports
WHERE id = $1;
`, id)
	return scanExport(row)
}

func (r *ExportRepositoryPG) FindByJobTemplateMode(ctx context.Context, jobID, templateKey string, mode domain.ExportMode) (*domain.ProductExport, error) {
	row := r.pool.QueryRow(ctx, `
SELECT id, job_id, template_key, mode, status, export_path, manifest_json, created_at, updated_at
FROM product_exports
WHERE job_id = $1 AND template_key = $2 AND mode = $3;
`, jobID, templateKey, mode)
	return scanExport(row)
}

func scanExport(row pgx.Row) (*domain.ProductExport, error) {
	var e domain.ProductExport
	err := row.Scan(&e.ID, &e.JobID, &e.TemplateKey, &e.Mode, &e.Status, &e.ExportPath, &e.ManifestJSON, &e.CreatedAt, &e.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &e, nil
}
