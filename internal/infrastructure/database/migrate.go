package database

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"
)

// schema is idempotent so it can run on every startup.
const schema = `
CREATE TABLE IF NOT EXISTS users (
	id            UUID PRIMARY KEY,
	first_name    TEXT NOT NULL,
	last_name     TEXT NOT NULL,
	email         TEXT NOT NULL UNIQUE,
	password_hash TEXT NOT NULL,
	created_at    TIMESTAMPTZ NOT NULL DEFAULT now(),
	updated_at    TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS blogs (
	id           UUID PRIMARY KEY,
	title        TEXT NOT NULL UNIQUE,
	description  TEXT NOT NULL DEFAULT '',
	author_id    UUID NOT NULL REFERENCES users(id),
	state        TEXT NOT NULL DEFAULT 'draft' CHECK (state IN ('draft', 'published')),
	read_count   INTEGER NOT NULL DEFAULT 0,
	reading_time TEXT NOT NULL DEFAULT '',
	tags         TEXT[] NOT NULL DEFAULT '{}',
	body         TEXT NOT NULL,
	created_at   TIMESTAMPTZ NOT NULL DEFAULT now(),
	updated_at   TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE INDEX IF NOT EXISTS idx_blogs_state ON blogs(state);
CREATE INDEX IF NOT EXISTS idx_blogs_author_id ON blogs(author_id);
`

// Migrate applies the schema. All statements are IF NOT EXISTS guarded.
func (db *PostgresDB) Migrate(ctx context.Context) error {
	if db.Pool == nil {
		return fmt.Errorf("database pool is not initialized")
	}

	if _, err := db.Pool.Exec(ctx, schema); err != nil {
		return fmt.Errorf("failed to apply schema: %w", err)
	}

	log.Info().Msg("database schema up to date")
	return nil
}
