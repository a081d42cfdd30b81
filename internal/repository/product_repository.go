package repository

import (
	"context"

	"catalog-api/internal/domain/entity"
)

// ProductRepository persists products.
//
// Lookups that find nothing return (nil, nil); only infrastructure failures are errors.
type ProductRepository interface {
	// List returns up to limit products after skipping offset, ordered by id ascending.
	List(ctx context.Context, offset, limit int) ([]*entity.Product, error)
	Count(ctx context.Context) (int64, error)
	Get(ctx context.Context, id int64) (*entity.Product, error)
	// GetByName matches names after trimming and lowercasing both sides.
	GetByName(ctx context.Context, name string) (*entity.Product, error)
	Create(ctx context.Context, product *entity.Product) error
	Update(ctx context.Context, product *entity.Product) error
	Delete(ctx context.Context, id int64) error
	Exists(ctx context.Context, id int64) (bool, error)
}
