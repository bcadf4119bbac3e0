package database

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// schema is applied at startup. Statements are idempotent so repeated
// boots are safe. The importance_levels foreign key is the authority
// for the valid importance range; the service layer only checks that
// the value is numeric.
var schema = []string{
	`CREATE TABLE IF NOT EXISTS importance_levels (
		id   SMALLINT PRIMARY KEY,
		name TEXT NOT NULL UNIQUE
	)`,
	`INSERT INTO importance_levels (id, name) VALUES
		(1, 'ordinary'),
		(2, 'important'),
		(3, 'critical')
	 ON CONFLICT (id) DO NOTHING`,
	`CREATE TABLE IF NOT EXISTS events (
		id          BIGSERIAL PRIMARY KEY,
		title       TEXT NOT NULL,
		description TEXT NOT NULL,
		date_time   TIMESTAMPTZ NOT NULL,
		importance  SMALLINT NOT NULL REFERENCES importance_levels (id),
		owner_id    BIGINT NOT NULL,
		created_at  TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE INDEX IF NOT EXISTS events_owner_date_idx
		ON events (owner_id, date_time, id)`,
}

// Migrate applies the schema statements in order.
func Migrate(ctx context.Context, pool *pgxpool.Pool) error {
	for _, stmt := range schema {
		if _, err := pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("apply schema: %w", err)
		}
	}
	return nil
}
