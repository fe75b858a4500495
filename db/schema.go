package db

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Schema is the full DDL for the platform. Applied by the integration harness
// and available to deployment tooling; production migrations run out of band.
const Schema = `
CREATE EXTENSION IF NOT EXISTS "pgcrypto";

CREATE TABLE IF NOT EXISTS users (
    id            UUID PRIMARY KEY DEFAULT gen_random_uuid(),
    email         TEXT NOT NULL,
    password_hash TEXT NOT NULL,
    name          TEXT NOT NULL,
    institution   TEXT NOT NULL DEFAULT '',
    role          TEXT NOT NULL DEFAULT 'user',
    research_area TEXT[] NOT NULL DEFAULT '{}',
    is_active     BOOLEAN NOT NULL DEFAULT TRUE,
    created_at    TIMESTAMPTZ NOT NULL DEFAULT now(),
    updated_at    TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE UNIQUE INDEX IF NOT EXISTS users_email_lower_idx ON users (LOWER(email));

CREATE TABLE IF NOT EXISTS species (
    id                  UUID PRIMARY KEY DEFAULT gen_random_uuid(),
    scientific_name     TEXT NOT NULL,
    common_name         TEXT NOT NULL DEFAULT '',
    genus               TEXT NOT NULL DEFAULT '',
    family              TEXT NOT NULL DEFAULT '',
    marine_zone         TEXT NOT NULL DEFAULT '',
    conservation_status TEXT NOT NULL DEFAULT '',
    description         TEXT NOT NULL DEFAULT '',
    last_updated        TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE INDEX IF NOT EXISTS species_last_updated_idx ON species (last_updated DESC);

CREATE TABLE IF NOT EXISTS genetic_sequences (
    id              UUID PRIMARY KEY DEFAULT gen_random_uuid(),
    organism        TEXT NOT NULL,
    gene            TEXT NOT NULL,
    sequence_type   TEXT NOT NULL DEFAULT '',
    sequence        TEXT NOT NULL DEFAULT '',
    description     TEXT NOT NULL DEFAULT '',
    submission_date TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE INDEX IF NOT EXISTS genetic_sequences_submission_date_idx
    ON genetic_sequences (submission_date DESC);
`

// ApplySchema runs the DDL against the given pool.
func ApplySchema(ctx context.Context, pool *pgxpool.Pool) error {
	if _, err := pool.Exec(ctx, Schema); err != nil {
		return fmt.Errorf("db: apply schema: %w", err)
	}
	return nil
}
