package article

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"catalog-api/internal/domain/entity"
	"catalog-api/internal/repository"
)

// ResourceName is the cache key prefix for articles.
const ResourceName = "Articles"

// loader adapts ArticleRepository to readthrough.Loader.
type loader struct {
	repo repository.ArticleRepository
}

// ListPage runs the count and the page query concurrently.
func (l loader) ListPage(ctx context.Context, offset, limit int) ([]entity.Article, int64, error) {
	var (
		total int64
		rows  []*entity.Article
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		n, err := l.repo.Count(gctx)
		if err != nil {
			return fmt.Errorf("count articles: %w", err)
		}
		total = n
		return nil
	})
	g.Go(func() error {
		list, err := l.repo.List(gctx, offset, limit)
		if err != nil {
			return fmt.Errorf("list articles: %w", err)
		}
		rows = list
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, 0, err
	}

	items := make([]entity.Article, 0, len(rows))
	for _, a := range rows {
		items = append(items, *a)
	}
	return items, total, nil
}

func (l loader) GetByID(ctx context.Context, id int64) (entity.Article, bool, error) {
	a, err := l.repo.Get(ctx, id)
	if err != nil {
		return entity.Article{}, false, fmt.Errorf("get article: %w", err)
	}
	if a == nil {
		return entity.Article{}, false, nil
	}
	return *a, true, nil
}
