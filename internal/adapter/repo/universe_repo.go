package repo

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"contentforge/internal/domain"
)

// UniverseRepositoryPG implements domain.UniverseRepository backed by
// PostgreSQL. Ordering contracts live in the SQL: characters by name, events
// by time_index then title.
type UniverseRepositoryPG struct {
	pool *pgxpool.Pool
}

// NewUniverseRepository creates a new UniverseRepositoryPG.
func NewUniverseRepository(pool *pgxpool.Pool) *UniverseRepositoryPG {
	return &UniverseRepositoryPG{pool: pool}
}

func (r *UniverseRepositoryPG) GetUniverse(ctx context.Context, id string) (*domain.Universe, error) {
	row := r.pool.QueryRow(ctx, `SELECT id, name, description, canon_json, created_at FROM universes WHERE id = $1`, id)
	var u domain.Universe
	var canonRules []byte
	if err := row.Scan(&u.ID, &u.Name, &u.Description, &canonRules, &u.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	if err := fromJSON(canonRules, &u.CanonRules); err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UniverseRepositoryPG) ListCharacters(ctx context.Context, universeID string, limit int) ([]domain.Character, error) {
	rows, err := r.pool.Query(ctx, `
SELECT id, universe_id, name, bio, traits_json
FROM characters
WHERE universe_id = $1
ORDER BY name
LIMIT $2;
`, universeID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var characters []domain.Character
	for rows.Next() {
		var c domain.Character
		var traits []byte
		if err := rows.Scan(&c.ID, &c.UniverseID, &c.Name, &c.Bio, &traits); err != nil {
			return nil, err
		}
		if err := fromJSON(traits, &c.Traits); err != nil {
			return nil, err
		}
		characters = append(characters, c)
	}
	return characters, rows.Err()
}

func (r *UniverseRepositoryPG) ListEvents(ctx context.Context, universeID string) ([]domain.CanonEvent, error) {
	rows, err := r.pool.Query(ctx, `
SELECT id, universe_id, title, summary, time_index
FROM canon_events
WHERE universe_id = $1
ORDER BY time_index, title;
`, universeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var events []domain.CanonEvent
	for rows.Next() {
		var e domain.CanonEvent
		if err := rows.Scan(&e.ID, &e.UniverseID, &e.Title, &e.Summary, &e.TimeIndex); err != nil {
			return nil, err
		}
		events = append(events, e)
	}
	return events, rows.Err()
}

func (r *UniverseRepositoryPG) ListCrossovers(ctx context.Context, universeID, fromSeriesID string) ([]domain.CrossoverRule, error) {
	query := `
SELECT id, universe_id, from_series_id, to_series_id, rule_json
FROM crossover_rules
WHERE universe_id = $1
`
	args := []any{universeID}
	if fromSeriesID != "" {
		query += " AND from_series_id = $2"
		args = append(args, fromSeriesID)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var rules []domain.CrossoverRule
	for rows.Next() {
		var c domain.CrossoverRule
		var rule []byte
		if err := rows.Scan(&c.ID, &c.UniverseID, &c.FromSeriesID, &c.ToSeriesID, &rule); err != nil {
			return nil, err
		}
		if err := fromJSON(rule, &c.Rule); err != nil {
			return nil, err
		}
		rules = append(rules, c)
	}
	return rules, rows.Err()
}

// Seeding helpers. These are not part of domain.UniverseRepository; the seeder
// uses the concrete type.

func (r *UniverseRepositoryPG) CreateUniverse(ctx context.Context, u *domain.Universe) error {
	canonRules, err := mustJSON(u.CanonRules)
	if err != nil {
		return err
	}
	return r.pool.QueryRow(ctx, `
INSERT INTO universes (id, name, description, canon_json)
VALUES ($1, $2, $3, $4)
RETURNING created_at;
`, u.ID, u.Name, u.Description, canonRules).Scan(&u.CreatedAt)
}

func (r *UniverseRepositoryPG) CreateCharacter(ctx context.Context, c *domain.Character) error {
	traits, err := mustJSON(c.Traits)
	if err != nil {
		return err
	}
	_, err = r.pool.Exec(ctx, `
INSERT INTO characters (id, universe_id, name, bio, traits_json)
VALUES ($1, $2, $3, $4, $5);
`, c.ID, c.UniverseID, c.Name, c.Bio, traits)
	return err
}

func (r *UniverseRepositoryPG) CreateEvent(ctx context.Context, e *domain.CanonEvent) error {
	_, err := r.pool.Exec(ctx, `
INSERT INTO canon_events (id, universe_id, title, summary, time_index)
VALUES ($1, $2, $3, $4, $5);
`, e.ID, e.UniverseID, e.Title, e.Summary, e.TimeIndex)
	return err
}

func (r *UniverseRepositoryPG) CreateCrossover(ctx context.Context, c *domain.CrossoverRule) error {
	rule, err := mustJSON(c.Rule)
	if err != nil {
		return err
	}
	_, err = r.pool.Exec(ctx, `
INSERT INTO crossover_rules (id, universe_id, from_series_id, to_series_id, rule_json)
VALUES ($1, $2, $3, $4, $5);
`, c.ID, c.UniverseID, c.FromSeriesID, c.ToSeriesID, rule)
	return err
}
