package repo

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"contentforge/internal/domain"
)

// PersonaRepositoryPG implements domain.PersonaRepository backed by PostgreSQL.
type PersonaRepositoryPG struct {
	pool *pgxpool.Pool
}

// NewPersonaRepository creates a new PersonaRepositoryPG.
func NewPersonaRepository(pool *pgxpool.Pool) *PersonaRepositoryPG {
	return &PersonaRepositoryPG{pool: pool}
}

func (r *PersonaRepositoryPG) Create(ctx context.Context, persona *domain.Persona) error {
	doDont, err := mustJSON(persona.DoDont)
	if err != nil {
		return err
	}
	examples, err := mustJSON(persona.Examples)
	if err != nil {
		return err
	}
	query := `
INSERT INTO personas (id, brand_id, name, style_guide, do_dont_json, examples_json)
VALUES ($1, $2, $3, $4, $5, $6)
RETURNING created_at;
`
	return r.pool.QueryRow(ctx, query,
		persona.ID,
		persona.BrandID,
		persona.Name,
		persona.StyleGuide,
		doDont,
		examples,
	).Scan(&persona.CreatedAt)
}

func (r *PersonaRepositoryPG) GetByID(ctx context.Context, id string) (*domain.Persona, error) {
	row := r.pool.QueryRow(ctx, `SELECT id, brand_id, name, style_guide, do_dont_json, examples_json, created_at FROM personas WHERE id = $1`, id)
	return scanPersona(row)
}

func (r *PersonaRepositoryPG) List(ctx context.Context) ([]domain.Persona, error) {
	rows, err := r.pool.Query(ctx, `SELECT id, brand_id, name, style_guide, do_dont_json, examples_json, created_at FROM personas ORDER BY created_at`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var personas []domain.Persona
	for rows.Next() {
		persona, err := scanPersona(rows)
		if err != nil {
			return nil, err
		}
		personas = append(personas, *persona)
	}
	return personas, rows.Err()
}

func scanPersona(row pgx.Row) (*domain.Persona, error) {
	var p domain.Persona
	var doDont, examples []byte
	if err := row.Scan(&p.ID, &p.BrandID, &p.Name, &p.StyleGuide, &doDont, &examples, &p.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	if err := fromJSON(doDont, &p.DoDont); err != nil {
		return nil, err
	}
	if err := fromJSON(examples, &p.Examples); err != nil {
		return nil, err
	}
	return &p, nil
}
