package postgres

import (
	"context"
	"fmt"
)

// Schema bootstrap runs at startup instead of a migration tool: the
// service owns exactly two tables and their shape is stable.
//
// authors(first, last) intentionally has no unique constraint; the
// get-or-create resolution in the app layer is best-effort by contract
// and duplicate names from concurrent inserts are accepted.
const schema = `
CREATE TABLE IF NOT EXISTS authors (
	id    BIGSERIAL PRIMARY KEY,
	first TEXT NOT NULL,
	last  TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS quotes (
	id        BIGSERIAL PRIMARY KEY,
	content   TEXT NOT NULL,
	author_id BIGINT NOT NULL REFERENCES authors(id),
	posted_at TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE INDEX IF NOT EXISTS idx_quotes_author_id ON quotes(author_id);
`

// EnsureSchema creates the authors and quotes tables if they do not exist.
func (db *DB) EnsureSchema(ctx context.Context) error {
	if _, err := db.pool.Exec(ctx, schema); err != nil {
		return fmt.Errorf("ensuring schema: %w", err)
	}

	return nil
}
