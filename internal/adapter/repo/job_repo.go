package repo

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"contentforge/internal/domain"
)

// JobRepositoryPG implements domain.JobRepository backed by PostgreSQL. The
// job aggregate's variable-shaped parts (request, advisory, traces, outputs,
// policy, canon, logs) each live in their own JSONB column.
type JobRepositoryPG struct {
	pool *pgxpool.Pool
}

// NewJobRepository creates a new JobRepositoryPG.
func NewJobRepository(pool *pgxpool.Pool) *JobRepositoryPG {
	return &JobRepositoryPG{pool: pool}
}

func (r *JobRepositoryPG) Create(ctx context.Context, job *domain.Job) error {
	request, err := mustJSON(job.Request)
	if err != nil {
		return err
	}
	logs, err := mustJSON(job.Logs)
	if err != nil {
		return err
	}
	query := `
INSERT INTO content_jobs (id, plan_id, brand_id, status, request_json, logs_json, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
`
	_, err = r.pool.Exec(ctx, query,
		job.ID,
		job.PlanID,
		job.BrandID,
		job.Status,
		request,
		logs,
		job.CreatedAt,
		job.UpdatedAt,
	)
	return err
}

func (r *JobRepositoryPG) Update(ctx context.Context, job *domain.Job) error {
	advisory, err := mustJSON(job.Advisory)
	if err != nil {
		return err
	}
	selections, err := mustJSON(job.Selections)
	if err != nil {
		return err
	}
	traces, err := mustJSON(job.ProviderTraces)
	if err != nil {
		return err
	}
	outputs, err := mustJSON(job.Outputs)
	if err != nil {
		return err
	}
	policy, err := mustJSON(job.Policy)
	if err != nil {
		return err
	}
	canonPacket, err := mustJSON(job.Canon)
	if err != nil {
		return err
	}
	logs, err := mustJSON(job.Logs)
	if err != nil {
		return err
	}
	query := `
UPDATE content_jobs
SET status = $2,
    advisory_json = $3,
    selections_json = $4,
    traces_json = $5,
    outputs_json = $6,
    policy_json = $7,
    canon_json = $8,
    logs_json = $9,
    error_message = $10,
    updated_at = $11
WHERE id = $1;
`
	tag, err := r.pool.Exec(ctx, query,
		job.ID,
		job.Status,
		advisory,
		selections,
		traces,
		outputs,
		policy,
		canonPacket,
		logs,
		job.ErrorMessage,
		job.UpdatedAt,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *JobRepositoryPG) GetByID(ctx context.Context, id string) (*domain.Job, error) {
	row := r.pool.QueryRow(ctx, `
SELECT id, plan_id, brand_id, status, request_json, advisory_json, selections_json,
       traces_json, outputs_json, policy_json, canon_json, logs_json, error_message,
       created_at, updated_at
FROM content_jobs
WHERE id = $1;
`, id)
	return scanJob(row)
}

func scanJob(row pgx.Row) (*domain.Job, error) {
	var j domain.Job
	var request, advisory, selections, traces, outputs, policy, canonPacket, logs []byte
	err := row.Scan(&j.ID, &j.PlanID, &j.BrandID, &j.Status, &request, &advisory, &selections,
		&traces, &outputs, &policy, &canonPacket, &logs, &j.ErrorMessage,
		&j.CreatedAt, &j.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	if err := fromJSON(request, &j.Request); err != nil {
		return nil, err
	}
	if err := fromJSON(advisory, &j.Advisory); err != nil {
		return nil, err
	}
	if err := fromJSON(selections, &j.Selections); err != nil {
		return nil, err
	}
	if err := fromJSON(traces, &j.ProviderTraces); err != nil {
		return nil, err
	}
	if err := fromJSON(outputs, &j.Outputs); err != nil {
		return nil, err
	}
	if err := fromJSON(policy, &j.Policy); err != nil {
		return nil, err
	}
	if err := fromJSON(canonPacket, &j.Canon); err != nil {
		return nil, err
	}
	if err := fromJSON(logs, &j.Logs); err != nil {
		return nil, err
	}
	return &j, nil
}
