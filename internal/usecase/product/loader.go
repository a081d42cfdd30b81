package product

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"catalog-api/internal/domain/entity"
	"catalog-api/internal/repository"
)

// ResourceName is the cache key prefix for products.
const ResourceName = "Products"

type loader struct {
	repo repository.ProductRepository
}

func (l loader) ListPage(ctx context.Context, offset, limit int) ([]entity.Product, int64, error) {
	var (
		total int64
		rows  []*entity.Product
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		total, err = l.repo.Count(gctx)
		if err != nil {
			return fmt.Errorf("count products: %w", err)
		}
		return nil
	})
	g.Go(func() (err error) {
		rows, err = l.repo.List(gctx, offset, limit)
		if err != nil {
			return fmt.Errorf("list products: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, 0, err
	}

	items := make([]entity.Product, 0, len(rows))
	for _, p := range rows {
		items = append(items, *p)
	}
	return items, total, nil
}

func (l loader) GetByID(ctx context.Context, id int64) (entity.Product, bool, error) {
	p, err := l.repo.Get(ctx, id)
	if err != nil {
		return entity.Product{}, false, fmt.Errorf("get product: %w", err)
	}
	if p == nil {
		return entity.Product{}, false, nil
	}
	return *p, true, nil
}
