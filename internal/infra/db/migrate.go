package db

import (
	"context"
	"database/sql"
	"fmt"
)

// schema is applied in order by MigrateUp. Every statement is idempotent.
var schema = []string{
	`CREATE TABLE IF NOT EXISTS articles (
    id          BIGSERIAL PRIMARY KEY,
    title       TEXT NOT NULL,
    description TEXT NOT NULL DEFAULT '',
    content     TEXT NOT NULL DEFAULT ''
)`,
	`CREATE TABLE IF NOT EXISTS products (
    id          BIGSERIAL PRIMARY KEY,
    name        TEXT NOT NULL,
    description TEXT NOT NULL DEFAULT '',
    article_id  BIGINT REFERENCES articles(id) ON DELETE SET NULL
)`,
	// products of an article
	`CREATE INDEX IF NOT EXISTS idx_products_article_id ON products(article_id)`,
	// duplicate checks compare trimmed, lowercased natural keys
	`DROP INDEX IF EXISTS idx_articles_title_key`,
	`DROP INDEX IF EXISTS idx_products_name_key`,
	`CREATE INDEX IF NOT EXISTS idx_articles_title_norm ON articles(LOWER(BTRIM(title, E' \t\n\r\x0B\f\u0085\u00A0')))`,
	`CREATE INDEX IF NOT EXISTS idx_products_name_norm ON products(LOWER(BTRIM(name, E' \t\n\r\x0B\f\u0085\u00A0')))`,
}

// MigrateUp creates the catalog tables and indexes.
func MigrateUp(ctx context.Context, db *sql.DB) error {
	for i, stmt := range schema {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("migrate step %d: %w", i+1, err)
		}
	}
	return nil
}

// MigrateDown drops the catalog tables.
func MigrateDown(ctx context.Context, db *sql.DB) error {
	for _, stmt := range []string{
		`DROP TABLE IF EXISTS products`,
		`DROP TABLE IF EXISTS articles`,
	} {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("migrate down: %w", err)
		}
	}
	return nil
}
