// Package repository declares the persistence gateways the use cases depend on.
// Implementations live under internal/infra/adapter/persistence.
package repository

import (
	"context"

	"catalog-api/internal/domain/entity"
)

// ArticleRepository persists articles.
//
// Lookups that find nothing return (nil, nil); only infrastructure failures are errors.
type ArticleRepository interface {
	// List returns up to limit articles after skipping offset, ordered by id ascending.
	List(ctx context.Context, offset, limit int) ([]*entity.Article, error)
	// Count returns the total number of articles.
	Count(ctx context.Context) (int64, error)
	Get(ctx context.Context, id int64) (*entity.Article, error)
	// GetByTitle matches titles after trimming and lowercasing both sides.
	GetByTitle(ctx context.Context, title string) (*entity.Article, error)
	// Create inserts the article and sets its ID.
	Create(ctx context.Context, article *entity.Article) error
	// Update replaces every field of the article with the given ID.
	Update(ctx context.Context, article *entity.Article) error
	Delete(ctx context.Context, id int64) error
	Exists(ctx context.Context, id int64) (bool, error)
	// ListProducts returns the products that reference the article, ordered by id ascending.
	ListProducts(ctx context.Context, articleID int64) ([]*entity.Product, error)
}
