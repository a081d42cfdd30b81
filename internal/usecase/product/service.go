package product

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

// CreateInput represents the input parameters for creating a new product.
type CreateInput struct {
	Name        string
	Description string
	// ArticleID links the product to an article when that article exists.
	// A nil, non-positive or unknown ID creates an unlinked product.
	ArticleID *int64
}

// UpdateInput replaces a product's name and description.
// The article link is set at creation and kept across updates.
type UpdateInput struct {
	ID          int64
	Name        string
	Description string
}

// Service provides product management use cases.
type Service struct {
	Repo     repository.ProductRepository
	Articles repository.ArticleRepository
	Reader   *readthrough.Accessor[entity.Product]
}

// NewService wires a Service whose reads are cached in store.
func NewService(repo repository.ProductRepository, articles repository.ArticleRepository, store *cache.Store, logger *slog.Logger) *Service {
	return &Service{
		Repo:     repo,
		Articles: articles,
		Reader:   readthrough.New[entity.Product](ResourceName, store, loader{repo: repo}, logger),
	}
}

// List returns one page of products ordered by ID.
func (s *Service) List(ctx context.Context, params pagination.Params) (pagination.PagedResult[entity.Product], error) {
	page, err := s.Reader.GetPage(ctx, params.PageIndex, params.PageSize)
	if err != nil {
		return pagination.PagedResult[entity.Product]{}, fmt.Errorf("list products: %w", err)
	}
	return page, nil
}

// Get retrieves a single product by its ID.
// Returns ErrProductNotFound if the product does not exist.
func (s *Service) Get(ctx context.Context, id int64) (*entity.Product, error) {
	if id <= 0 {
		return nil, ErrInvalidProductID
	}

	p, found, err := s.Reader.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get product: %w", err)
	}
	if !found {
		return nil, ErrProductNotFound
	}
	return &p, nil
}

// Create validates and stores a new product.
// Returns ErrDuplicateProduct if a product with the same name (ignoring case and
// surrounding whitespace) exists.
func (s *Service) Create(ctx context.Context, in CreateInput) (*entity.Product, error) {
	v, err := s.create(ctx, in)
	metrics.RecordWrite(ResourceName, metrics.OpCreate, err)
	return v, err
}

func (s *Service) create(ctx context.Context, in CreateInput) (*entity.Product, error) {
	p := &entity.Product{
		Name:        in.Name,
		Description: in.Description,
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}

	existing, err := s.Repo.GetByName(ctx, p.Name)
	if err != nil {
		return nil, fmt.Errorf("find product by name: %w", err)
	}
	if existing != nil {
		return nil, ErrDuplicateProduct
	}

	articleID, err := s.resolveArticle(ctx, in.ArticleID)
	if err != nil {
		return nil, err
	}
	p.ArticleID = articleID

	if err := s.Repo.Create(ctx, p); err != nil {
		return nil, fmt.Errorf("create product: %w", err)
	}
	return p, nil
}

// resolveArticle returns id when it names an existing article, nil otherwise.
func (s *Service) resolveArticle(ctx context.Context, id *int64) (*int64, error) {
	if id == nil || *id <= 0 {
		return nil, nil
	}
	exists, err := s.Articles.Exists(ctx, *id)
	if err != nil {
		return nil, fmt.Errorf("check article exists: %w", err)
	}
	if !exists {
		return nil, nil
	}
	linked := *id
	return &linked, nil
}

// Update replaces the product with the given ID.
// Returns ErrIDMismatch before touching the repository if id and in.ID differ.
// Returns ErrProductNotFound if the product does not exist.
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
		return ErrInvalidProductID
	}

	p := &entity.Product{
		ID:          in.ID,
		Name:        in.Name,
		Description: in.Description,
	}
	if err := p.Validate(); err != nil {
		return err
	}

	exists, err := s.Repo.Exists(ctx, id)
	if err != nil {
		return fmt.Errorf("check product exists: %w", err)
	}
	if !exists {
		return ErrProductNotFound
	}

	if err := s.Repo.Update(ctx, p); err != nil {
		return fmt.Errorf("update product: %w", err)
	}
	return nil
}

// Delete removes a product by its ID.
// Returns ErrProductNotFound without issuing a delete if the product does not exist.
func (s *Service) Delete(ctx context.Context, id int64) error {
	err := s.delete(ctx, id)
	metrics.RecordWrite(ResourceName, metrics.OpDelete, err)
	return err
}

func (s *Service) delete(ctx context.Context, id int64) error {
	if id <= 0 {
		return ErrInvalidProductID
	}

	exists, err := s.Repo.Exists(ctx, id)
	if err != nil {
		return fmt.Errorf("check product exists: %w", err)
	}
	if !exists {
		return ErrProductNotFound
	}

	p, err := s.Repo.Get(ctx, id)
	if err != nil {
		return fmt.Errorf("get product: %w", err)
	}
	if p == nil {
		return ErrProductNotFound
	}

	if err := s.Repo.Delete(ctx, p.ID); err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	return nil
}
