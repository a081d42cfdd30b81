package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"catalog-api/internal/domain/entity"
	"catalog-api/internal/repository"
)

type ProductRepo struct {
	db DBTX
}

func NewProductRepo(db DBTX) repository.ProductRepository {
	return &ProductRepo{db: db}
}

func scanProduct(rows *sql.Rows) (*entity.Product, error) {
	var (
		p         entity.Product
		articleID sql.NullInt64
	)
	if err := rows.Scan(&p.ID, &p.Name, &p.Description, &articleID); err != nil {
		return nil, err
	}
	if articleID.Valid {
		id := articleID.Int64
		p.ArticleID = &id
	}
	return &p, nil
}

// List retrieves a page of products ordered by id.
func (repo *ProductRepo) List(ctx context.Context, offset, limit int) ([]*entity.Product, error) {
	const query = `
SELECT id, name, description, article_id
FROM products
ORDER BY id ASC
LIMIT $1 OFFSET $2`
	rows, err := repo.db.QueryContext(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("List: %w", err)
	}
	defer func() { _ = rows.Close() }()

	products := make([]*entity.Product, 0, limit)
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("List: Scan: %w", err)
		}
		products = append(products, p)
	}
	return products, rows.Err()
}

func (repo *ProductRepo) Count(ctx context.Context) (int64, error) {
	const query = `SELECT COUNT(*) FROM products`
	var count int64
	_, err := queryOne(ctx, repo.db, query, nil, func(rows *sql.Rows) error {
		return rows.Scan(&count)
	})
	if err != nil {
		return 0, fmt.Errorf("Count: %w", err)
	}
	return count, nil
}

func (repo *ProductRepo) Get(ctx context.Context, id int64) (*entity.Product, error) {
	const query = `
SELECT id, name, description, article_id
FROM products
WHERE id = $1
LIMIT 1`
	return repo.getOne(ctx, "Get", query, id)
}

// GetByName finds a product whose trimmed, lowercased name equals the normalized input.
// BTRIM strips the same whitespace set as strings.TrimSpace so both sides agree.
func (repo *ProductRepo) GetByName(ctx context.Context, name string) (*entity.Product, error) {
	const query = `
SELECT id, name, description, article_id
FROM products
WHERE LOWER(BTRIM(name, E' \t\n\r\x0B\f\u0085\u00A0')) = $1
ORDER BY id ASC
LIMIT 1`
	return repo.getOne(ctx, "GetByName", query, entity.NormalizeNaturalKey(name))
}

func (repo *ProductRepo) getOne(ctx context.Context, op, query string, arg interface{}) (*entity.Product, error) {
	var product *entity.Product
	found, err := queryOne(ctx, repo.db, query, []interface{}{arg}, func(rows *sql.Rows) error {
		p, err := scanProduct(rows)
		product = p
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if !found {
		return nil, nil
	}
	return product, nil
}

func (repo *ProductRepo) Create(ctx context.Context, product *entity.Product) error {
	const query = `
INSERT INTO products (name, description, article_id)
VALUES ($1, $2, $3)
RETURNING id`
	found, err := queryOne(ctx, repo.db, query,
		[]interface{}{product.Name, product.Description, nullableID(product.ArticleID)},
		func(rows *sql.Rows) error { return rows.Scan(&product.ID) })
	if err != nil {
		return classify("Create", err)
	}
	if !found {
		return fmt.Errorf("Create: no id returned: %w", entity.ErrPersistenceFailure)
	}
	return nil
}

// Update replaces name and description. article_id is left as created.
func (repo *ProductRepo) Update(ctx context.Context, product *entity.Product) error {
	const query = `
UPDATE products SET
       name        = $1,
       description = $2
WHERE id = $3`
	res, err := repo.db.ExecContext(ctx, query, product.Name, product.Description, product.ID)
	if err != nil {
		return classify("Update", err)
	}
	return requireAffected("Update", res)
}

func (repo *ProductRepo) Delete(ctx context.Context, id int64) error {
	const query = `DELETE FROM products WHERE id = $1`
	res, err := repo.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("Delete: %w", err)
	}
	return requireAffected("Delete", res)
}

func (repo *ProductRepo) Exists(ctx context.Context, id int64) (bool, error) {
	const query = `SELECT EXISTS (SELECT 1 FROM products WHERE id = $1)`
	var exists bool
	_, err := queryOne(ctx, repo.db, query, []interface{}{id}, func(rows *sql.Rows) error {
		return rows.Scan(&exists)
	})
	if err != nil {
		return false, fmt.Errorf("Exists: %w", err)
	}
	return exists, nil
}

func nullableID(id *int64) sql.NullInt64 {
	if id == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: *id, Valid: true}
}
