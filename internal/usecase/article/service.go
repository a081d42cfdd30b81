package article

import (
	"context"
	"fmt"
	"log/slog"

	"catalog-api/internal/cache"
	"catalog-api/internal/common/pagination"
	"catalog-api/internal/domain/entity"
	"catalog-api/internal/observability/metrics"
	"catalog-api/internal/repository"
	"catalog-api/internal/usecase/readthrough"
)

// CreateInput represents the input parameters for creating a new article.
type CreateInput struct {
	Title       string
	Description string
	Content     string
}

// UpdateInput is a full replacement of an article.
// ID must equal the ID the update is addressed to.
type UpdateInput struct {
	ID          int64
	Title       string
	Description string
	Content     string
}

// Service provides article management use cases.
type Service struct {
	Repo   repository.ArticleRepository
	Reader *readthrough.Accessor[entity.Article]
}

// NewService wires a Service whose reads are cached in store.
func NewService(repo repository.ArticleRepository, store *cache.Store, logger *slog.Logger) *Service {
	return &Service{
		Repo:   repo,
		Reader: readthrough.New[entity.Article](ResourceName, store, loader{repo: repo}, logger),
	}
}

// List returns one page of articles ordered by ID.
func (s *Service) List(ctx context.Context, params pagination.Params) (pagination.PagedResult[entity.Article], error) {
	page, err := s.Reader.GetPage(ctx, params.PageIndex, params.PageSize)
	if err != nil {
		return pagination.PagedResult[entity.Article]{}, fmt.Errorf("list articles: %w", err)
	}
	return page, nil
}

// Get retrieves a single article by its ID.
// Returns ErrInvalidArticleID if the ID is not positive.
// Returns ErrArticleNotFound if the article does not exist.
func (s *Service) Get(ctx context.Context, id int64) (*entity.Article, error) {
	if id <= 0 {
		return nil, ErrInvalidArticleID
	}

	a, found, err := s.Reader.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get article: %w", err)
	}
	if !found {
		return nil, ErrArticleNotFound
	}
	return &a, nil
}

// ListProducts returns the products that belong to an article.
// Returns ErrArticleNotFound if the article does not exist.
func (s *Service) ListProducts(ctx context.Context, id int64) ([]*entity.Product, error) {
	if id <= 0 {
		return nil, ErrInvalidArticleID
	}

	exists, err := s.Repo.Exists(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("check article exists: %w", err)
	}
	if !exists {
		return nil, ErrArticleNotFound
	}

	products, err := s.Repo.ListProducts(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("list article products: %w", err)
	}
	return products, nil
}

// Create validates and stores a new article.
// Returns a ValidationError if any input field is invalid.
// Returns ErrDuplicateArticle if an article with the same title (ignoring case and
// surrounding whitespace) exists.
func (s *Service) Create(ctx context.Context, in CreateInput) (*entity.Article, error) {
	v, err := s.create(ctx, in)
	metrics.RecordWrite(ResourceName, metrics.OpCreate, err)
	return v, err
}

func (s *Service) create(ctx context.Context, in CreateInput) (*entity.Article, error) {
	a := &entity.Article{
		Title:       in.Title,
		Description: in.Description,
		Content:     in.Content,
	}
	if err := a.Validate(); err != nil {
		return nil, err
	}

	existing, err := s.Repo.GetByTitle(ctx, a.Title)
	if err != nil {
		return nil, fmt.Errorf("find article by title: %w", err)
	}
	if existing != nil {
		return nil, ErrDuplicateArticle
	}

	if err := s.Repo.Create(ctx, a); err != nil {
		return nil, fmt.Errorf("create article: %w", err)
	}
	return a, nil
}

// Update replaces the article with the given ID.
// Returns ErrIDMismatch before touching the repository if id and in.ID differ.
// Returns ErrArticleNotFound if the article does not exist.
func (s *Service) Update(ctx context.Context, id int64, in UpdateInput) error {
	err := s.update(ctx, id, in)
	metrics.RecordWrite(ResourceName, metrics.OpUpdate, err)
	return err
}

func (s *Service) update(ctx context.Context, id int64, in UpdateInput) error {
	if id != in.ID {
		return ErrIDMismatch
	}
	if id <= 0 {
		return ErrInvalidArticleID
	}

	a := &entity.Article{
		ID:          in.ID,
		Title:       in.Title,
		Description: in.Description,
		Content:     in.Content,
	}
	if err := a.Validate(); err != nil {
		return err
	}

	exists, err := s.Repo.Exists(ctx, id)
	if err != nil {
		return fmt.Errorf("check article exists: %w", err)
	}
	if !exists {
		return ErrArticleNotFound
	}

	if err := s.Repo.Update(ctx, a); err != nil {
		return fmt.Errorf("update article: %w", err)
	}
	return nil
}

// Delete removes an article by its ID.
// Returns ErrArticleNotFound without issuing a delete if the article does not exist.
func (s *Service) Delete(ctx context.Context, id int64) error {
	err := s.delete(ctx, id)
	metrics.RecordWrite(ResourceName, metrics.OpDelete, err)
	return err
}

func (s *Service) delete(ctx context.Context, id int64) error {
	if id <= 0 {
		return ErrInvalidArticleID
	}

	exists, err := s.Repo.Exists(ctx, id)
	if err != nil {
		return fmt.Errorf("check article exists: %w", err)
	}
	if !exists {
		return ErrArticleNotFound
	}

	a, err := s.Repo.Get(ctx, id)
	if err != nil {
		return fmt.Errorf("get article: %w", err)
	}
	if a == nil {
		return ErrArticleNotFound
	}

	if err := s.Repo.Delete(ctx, a.ID); err != nil {
		return fmt.Errorf("delete article: %w", err)
	}
	return nil
}
