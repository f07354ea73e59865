package repo

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// schemaDDL is executed at startup. Statements are idempotent so a restart
// against an initialized database is a no-op.
const schemaDDL = `
CREATE TABLE IF NOT EXISTS brands (
    id UUID PRIMARY KEY,
    name TEXT NOT NULL,
    voice_tone TEXT NOT NULL DEFAULT '',
    prohibited_topics TEXT NOT NULL DEFAULT '',
    target_audience TEXT NOT NULL DEFAULT '',
    channels_json JSONB NOT NULL DEFAULT '[]',
    created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS personas (
    id UUID PRIMARY KEY,
    brand_id UUID NOT NULL REFERENCES brands(id),
    name TEXT NOT NULL,
    style_guide TEXT NOT NULL DEFAULT '',
    do_dont_json JSONB NOT NULL DEFAULT '{}',
    examples_json JSONB NOT NULL DEFAULT '[]',
    created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS plans (
    id UUID PRIMARY KEY,
    brand_id UUID NOT NULL REFERENCES brands(id),
    series_id TEXT NOT NULL DEFAULT '',
    scheduled_at TIMESTAMPTZ NOT NULL,
    channel TEXT NOT NULL DEFAULT '',
    objective TEXT NOT NULL DEFAULT '',
    cta TEXT NOT NULL DEFAULT '',
    asset_requirements TEXT NOT NULL DEFAULT '',
    created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS capability_providers (
    id TEXT PRIMARY KEY,
    kind TEXT NOT NULL,
    name TEXT NOT NULL,
    version TEXT NOT NULL DEFAULT '',
    supports_json JSONB NOT NULL DEFAULT '[]',
    cost_tier TEXT NOT NULL DEFAULT 'standard',
    quality_tier TEXT NOT NULL DEFAULT 'standard',
    speed_tier TEXT NOT NULL DEFAULT 'standard',
    regions_json JSONB NOT NULL DEFAULT '[]',
    languages_json JSONB NOT NULL DEFAULT '[]',
    policy_tags_json JSONB NOT NULL DEFAULT '[]',
    is_default BOOLEAN NOT NULL DEFAULT FALSE,
    position INTEGER GENERATED ALWAYS AS IDENTITY
);

CREATE TABLE IF NOT EXISTS policy_profiles (
    id UUID PRIMARY KEY,
    platform TEXT NOT NULL,
    name TEXT NOT NULL,
    rules_json JSONB NOT NULL DEFAULT '{}',
    is_active BOOLEAN NOT NULL DEFAULT TRUE,
    created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS product_templates (
    id UUID PRIMARY KEY,
    key TEXT NOT NULL UNIQUE,
    name TEXT NOT NULL,
    schema_json JSONB NOT NULL DEFAULT '{}',
    is_active BOOLEAN NOT NULL DEFAULT TRUE,
    created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS content_jobs (
    id UUID PRIMARY KEY,
    plan_id TEXT NOT NULL DEFAULT '',
    brand_id UUID NOT NULL,
    status TEXT NOT NULL,
    request_json JSONB NOT NULL DEFAULT '{}',
    advisory_json JSONB,
    selections_json JSONB,
    traces_json JSONB,
    outputs_json JSONB,
    policy_json JSONB,
    canon_json JSONB,
    logs_json JSONB NOT NULL DEFAULT '[]',
    error_message TEXT NOT NULL DEFAULT '',
    created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
    updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS product_exports (
    id UUID PRIMARY KEY,
    job_id UUID NOT NULL REFERENCES content_jobs(id),
    template_key TEXT NOT NULL,
    mode TEXT NOT NULL,
    status TEXT NOT NULL,
    export_path TEXT NOT NULL DEFAULT '',
    manifest_json JSONB NOT NULL DEFAULT '{}',
    created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
    updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
    UNIQUE (job_id, template_key, mode)
);

CREATE TABLE IF NOT EXISTS universes (
    id UUID PRIMARY KEY,
    name TEXT NOT NULL,
    description TEXT NOT NULL DEFAULT '',
    canon_json JSONB NOT NULL DEFAULT '{}',
    created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS characters (
    id UUID PRIMARY KEY,
    universe_id UUID NOT NULL REFERENCES universes(id),
    name TEXT NOT NULL,
    bio TEXT NOT NULL DEFAULT '',
    traits_json JSONB NOT NULL DEFAULT '{}'
);

CREATE TABLE IF NOT EXISTS canon_events (
    id UUID PRIMARY KEY,
    universe_id UUID NOT NULL REFERENCES universes(id),
    title TEXT NOT NULL,
    summary TEXT NOT NULL DEFAULT '',
    time_index INTEGER NOT NULL DEFAULT 0
);

CREATE TABLE IF NOT EXISTS crossover_rules (
    id UUID PRIMARY KEY,
    universe_id UUID NOT NULL REFERENCES universes(id),
    from_series_id TEXT NOT NULL,
    to_series_id TEXT NOT NULL,
    rule_json JSONB NOT NULL DEFAULT '{}'
);
`

// EnsureSchema creates all tables used by the repositories.
func EnsureSchema(ctx context.Context, pool *pgxpool.Pool) error {
	if _, err := pool.Exec(ctx, schemaDDL); err != nil {
		return fmt.Errorf("apply schema: %w", err)
	}
	return nil
}
