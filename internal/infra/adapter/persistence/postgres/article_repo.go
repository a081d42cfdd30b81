package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"catalog-api/internal/domain/entity"
	"catalog-api/internal/repository"
)

type ArticleRepo struct {
	db DBTX
}

func NewArticleRepo(db DBTX) repository.ArticleRepository {
	return &ArticleRepo{db: db}
}

func scanArticle(rows *sql.Rows) (*entity.Article, error) {
	var a entity.Article
	if err := rows.Scan(&a.ID, &a.Title, &a.Description, &a.Content); err != nil {
		return nil, err
	}
	return &a, nil
}

// List retrieves a page of articles ordered by id.
func (repo *ArticleRepo) List(ctx context.Context, offset, limit int) ([]*entity.Article, error) {
	const query = `
SELECT id, title, description, content
FROM articles
ORDER BY id ASC
LIMIT $1 OFFSET $2`
	rows, err := repo.db.QueryContext(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("List: %w", err)
	}
	defer func() { _ = rows.Close() }()

	articles := make([]*entity.Article, 0, limit)
	for rows.Next() {
		a, err := scanArticle(rows)
		if err != nil {
			return nil, fmt.Errorf("List: Scan: %w", err)
		}
		articles = append(articles, a)
	}
	return articles, rows.Err()
}

func (repo *ArticleRepo) Count(ctx context.Context) (int64, error) {
	const query = `SELECT COUNT(*) FROM articles`
	var count int64
	_, err := queryOne(ctx, repo.db, query, nil, func(rows *sql.Rows) error {
		return rows.Scan(&count)
	})
	if err != nil {
		return 0, fmt.Errorf("Count: %w", err)
	}
	return count, nil
}

func (repo *ArticleRepo) Get(ctx context.Context, id int64) (*entity.Article, error) {
	const query = `
SELECT id, title, description, content
FROM articles
WHERE id = $1
LIMIT 1`
	return repo.getOne(ctx, "Get", query, id)
}

// GetByTitle finds an article whose trimmed, lowercased title equals the normalized input.
// BTRIM strips the same whitespace set as strings.TrimSpace so both sides agree.
func (repo *ArticleRepo) GetByTitle(ctx context.Context, title string) (*entity.Article, error) {
	const query = `
SELECT id, title, description, content
FROM articles
WHERE LOWER(BTRIM(title, E' \t\n\r\x0B\f\u0085\u00A0')) = $1
ORDER BY id ASC
LIMIT 1`
	return repo.getOne(ctx, "GetByTitle", query, entity.NormalizeNaturalKey(title))
}

func (repo *ArticleRepo) getOne(ctx context.Context, op, query string, arg interface{}) (*entity.Article, error) {
	var article *entity.Article
	found, err := queryOne(ctx, repo.db, query, []interface{}{arg}, func(rows *sql.Rows) error {
		a, err := scanArticle(rows)
		article = a
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if !found {
		return nil, nil
	}
	return article, nil
}

func (repo *ArticleRepo) Create(ctx context.Context, article *entity.Article) error {
	const query = `
INSERT INTO articles (title, description, content)
VALUES ($1, $2, $3)
RETURNING id`
	found, err := queryOne(ctx, repo.db, query,
		[]interface{}{article.Title, article.Description, article.Content},
		func(rows *sql.Rows) error { return rows.Scan(&article.ID) })
	if err != nil {
		return classify("Create", err)
	}
	if !found {
		return fmt.Errorf("Create: no id returned: %w", entity.ErrPersistenceFailure)
	}
	return nil
}

func (repo *ArticleRepo) Update(ctx context.Context, article *entity.Article) error {
	const query = `
UPDATE articles SET
       title       = $1,
       description = $2,
       content     = $3
WHERE id = $4`
	res, err := repo.db.ExecContext(ctx, query,
		article.Title, article.Description, article.Content, article.ID,
	)
	if err != nil {
		return classify("Update", err)
	}
	return requireAffected("Update", res)
}

// Delete removes the article. Products that referenced it keep existing with a NULL
// article_id (ON DELETE SET NULL).
func (repo *ArticleRepo) Delete(ctx context.Context, id int64) error {
	const query = `DELETE FROM articles WHERE id = $1`
	res, err := repo.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("Delete: %w", err)
	}
	return requireAffected("Delete", res)
}

func (repo *ArticleRepo) Exists(ctx context.Context, id int64) (bool, error) {
	const query = `SELECT EXISTS (SELECT 1 FROM articles WHERE id = $1)`
	var exists bool
	_, err := queryOne(ctx, repo.db, query, []interface{}{id}, func(rows *sql.Rows) error {
		return rows.Scan(&exists)
	})
	if err != nil {
		return false, fmt.Errorf("Exists: %w", err)
	}
	return exists, nil
}

func (repo *ArticleRepo) ListProducts(ctx context.Context, articleID int64) ([]*entity.Product, error) {
	const query = `
SELECT id, name, description, article_id
FROM products
WHERE article_id = $1
ORDER BY id ASC`
	rows, err := repo.db.QueryContext(ctx, query, articleID)
	if err != nil {
		return nil, fmt.Errorf("ListProducts: %w", err)
	}
	defer func() { _ = rows.Close() }()

	products := make([]*entity.Product, 0, 8)
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("ListProducts: Scan: %w", err)
		}
		products = append(products, p)
	}
	return products, rows.Err()
}
