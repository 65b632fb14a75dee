package db

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"
)

// Migrate runs all schema migrations.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			// Tolerate "duplicate column name" errors from ALTER TABLE
			// since the migration system re-runs all statements.
			if strings.Contains(err.Error(), "duplicate column name") {
				continue
			}
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	if err := migrateLocalStoreNamespaces(db); err != nil {
		return fmt.Errorf("migrating local_store namespace constraint: %w", err)
	}
	if err := migrateBackfillUpdatedAt(db); err != nil {
		return fmt.Errorf("backfilling updated_at values: %w", err)
	}
	return nil
}

// Namespaces accepted by the local_store CHECK constraint.
const (
	NamespaceCatalog = "catalog"
	NamespaceInvoice = "invoice"
	NamespacePrefs   = "prefs"
)

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS local_store (
		namespace TEXT NOT NULL
		          CHECK(namespace IN ('catalog','invoice','prefs')),
		key       TEXT NOT NULL,
		value     TEXT NOT NULL,
		PRIMARY KEY (namespace, key)
	)`,

	// Track write times so drafts can be listed most recent first.
	`ALTER TABLE local_store ADD COLUMN updated_at TEXT NOT NULL DEFAULT ''`,
	`CREATE INDEX IF NOT EXISTS idx_local_store_updated ON local_store(namespace, updated_at)`,
}

// migrateLocalStoreNamespaces rebuilds local_store when its CHECK constraint
// predates the prefs namespace. SQLite cannot alter a constraint in place.
func migrateLocalStoreNamespaces(db *sql.DB) error {
	ctx := context.Background()
	conn, err := db.Conn(ctx)
	if err != nil {
		return fmt.Errorf("acquiring db connection: %w", err)
	}
	defer conn.Close()

	var createSQL string
	if err := conn.QueryRowContext(ctx, `SELECT sql FROM sqlite_master WHERE type = 'table' AND name = 'local_store'`).Scan(&createSQL); err != nil {
		return fmt.Errorf("loading local_store schema: %w", err)
	}
	if strings.Contains(strings.ToLower(createSQL), "'prefs'") {
		return nil
	}

	tx, err := conn.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("starting migration transaction: %w", err)
	}
	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback()
		}
	}()

	if _, err := tx.ExecContext(ctx, `DROP TABLE IF EXISTS local_store_new`); err != nil {
		return fmt.Errorf("dropping stale local_store_new: %w", err)
	}

	if _, err := tx.ExecContext(ctx, `CREATE TABLE local_store_new (
		namespace  TEXT NOT NULL
		           CHECK(namespace IN ('catalog','invoice','prefs')),
		key        TEXT NOT NULL,
		value      TEXT NOT NULL,
		updated_at TEXT NOT NULL DEFAULT '',
		PRIMARY KEY (namespace, key)
	)`); err != nil {
		return fmt.Errorf("creating local_store_new: %w", err)
	}

	if _, err := tx.ExecContext(ctx, `INSERT INTO local_store_new (namespace, key, value, updated_at)
		SELECT namespace, key, value, updated_at FROM local_store`); err != nil {
		return fmt.Errorf("copying local_store data: %w", err)
	}

	if _, err := tx.ExecContext(ctx, `DROP TABLE local_store`); err != nil {
		return fmt.Errorf("dropping old local_store: %w", err)
	}

	if _, err := tx.ExecContext(ctx, `ALTER TABLE local_store_new RENAME TO local_store`); err != nil {
		return fmt.Errorf("renaming local_store_new: %w", err)
	}

	if _, err := tx.ExecContext(ctx, `CREATE INDEX IF NOT EXISTS idx_local_store_updated ON local_store(namespace, updated_at)`); err != nil {
		return fmt.Errorf("recreating idx_local_store_updated: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing local_store migration: %w", err)
	}
	committed = true

	return nil
}

// migrateBackfillUpdatedAt stamps rows written before updated_at existed.
// Idempotent: only rows with an empty updated_at are touched.
func migrateBackfillUpdatedAt(db *sql.DB) error {
	now := time.Now().UTC().Format(time.RFC3339)
	if _, err := db.ExecContext(context.Background(),
		`UPDATE local_store SET updated_at = ? WHERE updated_at = ''`, now); err != nil {
		return fmt.Errorf("updating local_store: %w", err)
	}
	return nil
}
