package db

import (
	"context"
	"database/sql"
	_ "embed"
	"fmt"
	"log/slog"

	"gopkg.in/yaml.v3"
)

//go:embed seeds/catalog.yaml
var catalogYAML []byte

// Catalog is the seed data layout of seeds/catalog.yaml.
type Catalog struct {
	Articles []SeedArticle `yaml:"articles"`
	// Products are inserted without an article.
	Products []SeedProduct `yaml:"products"`
}

type SeedArticle struct {
	Title       string        `yaml:"title"`
	Description string        `yaml:"description"`
	Content     string        `yaml:"content"`
	Products    []SeedProduct `yaml:"products"`
}

type SeedProduct struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
}

// LoadCatalog parses a seed catalog document.
func LoadCatalog(data []byte) (*Catalog, error) {
	var c Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("parse seed catalog: %w", err)
	}
	return &c, nil
}

// DefaultCatalog returns the embedded seed catalog.
func DefaultCatalog() (*Catalog, error) {
	return LoadCatalog(catalogYAML)
}

// Seed inserts c in one transaction when the products table is empty.
// It reports whether anything was inserted.
func Seed(ctx context.Context, db *sql.DB, c *Catalog) (bool, error) {
	var present bool
	if err := db.QueryRowContext(ctx, `SELECT EXISTS (SELECT 1 FROM products)`).Scan(&present); err != nil {
		return false, fmt.Errorf("seed: check products: %w", err)
	}
	if present {
		return false, nil
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return false, fmt.Errorf("seed: begin: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	const insertArticle = `INSERT INTO articles (title, description, content) VALUES ($1, $2, $3) RETURNING id`
	const insertProduct = `INSERT INTO products (name, description, article_id) VALUES ($1, $2, $3)`

	for _, a := range c.Articles {
		var id int64
		if err := tx.QueryRowContext(ctx, insertArticle, a.Title, a.Description, a.Content).Scan(&id); err != nil {
			return false, fmt.Errorf("seed: article %q: %w", a.Title, err)
		}
		for _, p := range a.Products {
			if _, err := tx.ExecContext(ctx, insertProduct, p.Name, p.Description, id); err != nil {
				return false, fmt.Errorf("seed: product %q: %w", p.Name, err)
			}
		}
	}
	for _, p := range c.Products {
		if _, err := tx.ExecContext(ctx, insertProduct, p.Name, p.Description, nil); err != nil {
			return false, fmt.Errorf("seed: product %q: %w", p.Name, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return false, fmt.Errorf("seed: commit: %w", err)
	}

	slog.Info("seed catalog inserted",
		slog.Int("articles", len(c.Articles)),
		slog.Int("unlinked_products", len(c.Products)))
	return true, nil
}
