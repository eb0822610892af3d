package storage

import (
	"context"
	"database/sql"
	"fmt"
)

// Migrate creates the document table. State is stored as independently-keyed
// JSON documents, mirroring the browser-local-storage model the app grew out
// of: one row per logical key, no cross-key transaction.
func Migrate(ctx context.Context, db *sql.DB) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS documents (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL,
			updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);`,
	}

	for _, stmt := range stmts {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}
	return nil
}
