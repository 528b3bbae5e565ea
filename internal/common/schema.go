package common

import (
	"context"
	"fmt"
)

var schemas = map[string]string{
	dialectSQLite: `
		CREATE TABLE IF NOT EXISTS blogs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			title TEXT NOT NULL,
			body TEXT NOT NULL
		)`,
	dialectPostgres: `
		CREATE TABLE IF NOT EXISTS blogs (
			id BIGSERIAL PRIMARY KEY,
			title TEXT NOT NULL,
			body TEXT NOT NULL
		)`,
}

// EnsureSchema creates the blogs table if it is missing. It is safe to
// call on every start.
func (s *Store) EnsureSchema(ctx context.Context) error {
	schema, ok := schemas[s.dsn.Dialect]
	if !ok {
		return fmt.Errorf("no schema for dialect %q", s.dsn.Dialect)
	}

	if _, err := s.db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("could not create schema: %w", err)
	}

	return nil
}
