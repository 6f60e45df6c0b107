package database

import (
	"context"
	_ "embed"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
)

//go:embed schema.sql
var schemaSQL string

// schemaStatements splits the embedded schema into single statements.
func schemaStatements() []string {
	var stmts []string
	for _, part := range strings.Split(schemaSQL, ";") {
		if stmt := strings.TrimSpace(part); stmt != "" {
			stmts = append(stmts, stmt)
		}
	}
	return stmts
}

// EnsureSchema creates the content_objects table and its indexes if missing.
func (db *PostgresDB) EnsureSchema(ctx context.Context) error {
	return db.WithTransaction(ctx, func(tx pgx.Tx) error {
		for _, stmt := range schemaStatements() {
			if _, err := tx.Exec(ctx, stmt); err != nil {
				return fmt.Errorf("failed to apply schema: %w", err)
			}
		}
		return nil
	})
}
