package product_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"catalog-api/internal/cache"
	"catalog-api/internal/common/pagination"
	"catalog-api/internal/domain/entity"
	"catalog-api/internal/repository"
	prodUC "catalog-api/internal/usecase/product"
)

/* ─────────────────────────── Mock Repositories ─────────────────────────── */

type MockProductRepository struct {
	mock.Mock
}

func (m *MockProductRepository) List(ctx context.Context, offset, limit int) ([]*entity.Product, error) {
	args := m.Called(ctx, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Product), args.Error(1)
}

func (m *MockProductRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockProductRepository) Get(ctx context.Context, id int64) (*entity.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Product), args.Error(1)
}

func (m *MockProductRepository) GetByName(ctx context.Context, name string) (*entity.Product, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Product), args.Error(1)
}

func (m *MockProductRepository) Create(ctx context.Context, p *entity.Product) error {
	return m.Called(ctx, p).Error(0)
}

func (m *MockProductRepository) Update(ctx context.Context, p *entity.Product) error {
	return m.Called(ctx, p).Error(0)
}

func (m *MockProductRepository) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockProductRepository) Exists(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

// MockArticleRepository implements only what the product service calls; the embedded
// interface panics on anything else.
type MockArticleRepository struct {
	mock.Mock
	repository.ArticleRepository
}

func (m *MockArticleRepository) Exists(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func newService(t *testing.T) (*prodUC.Service, *MockProductRepository, *MockArticleRepository) {
	t.Helper()
	products := new(MockProductRepository)
	articles := new(MockArticleRepository)
	store := cache.NewStore(cache.Config{Name: t.Name()})
	return prodUC.NewService(products, articles, store, nil), products, articles
}

func int64Ptr(v int64) *int64 { return &v }

/* ─────────────────────────── List / Get ─────────────────────────── */

func TestService_List(t *testing.T) {
	svc, products, _ := newService(t)

	products.On("Count", mock.Anything).Return(int64(14), nil).Once()
	products.On("List", mock.Anything, 5, 5).Return([]*entity.Product{
		{ID: 6, Name: "Shower gel"},
		{ID: 7, Name: "Perfume"},
	}, nil).Once()

	page, err := svc.List(context.Background(), pagination.Params{PageIndex: 2, PageSize: 5})
	require.NoError(t, err)
	assert.Equal(t, int64(14), page.TotalRecords)
	assert.Equal(t, 3, page.TotalPages)
	assert.Len(t, page.Data, 2)

	// cached: the mocks above are registered Once
	_, err = svc.List(context.Background(), pagination.Params{PageIndex: 2, PageSize: 5})
	require.NoError(t, err)
	products.AssertExpectations(t)
}

func TestService_List_CountError(t *testing.T) {
	svc, products, _ := newService(t)
	dbErr := errors.New("db down")

	products.On("Count", mock.Anything).Return(int64(0), dbErr)
	products.On("List", mock.Anything, 0, 5).Return([]*entity.Product{}, nil).Maybe()

	_, err := svc.List(context.Background(), pagination.Params{PageIndex: 1, PageSize: 5})
	assert.ErrorIs(t, err, dbErr)
}

func TestService_Get(t *testing.T) {
	svc, products, _ := newService(t)

	products.On("Get", mock.Anything, int64(3)).Return(&entity.Product{ID: 3, Name: "Perfume"}, nil).Once()
	products.On("Get", mock.Anything, int64(999)).Return(nil, nil)

	got, err := svc.Get(context.Background(), 3)
	require.NoError(t, err)
	assert.Equal(t, "Perfume", got.Name)

	_, err = svc.Get(context.Background(), 3)
	require.NoError(t, err)

	_, err = svc.Get(context.Background(), 999)
	assert.ErrorIs(t, err, prodUC.ErrProductNotFound)
	assert.ErrorIs(t, err, entity.ErrNotFound)

	_, err = svc.Get(context.Background(), -1)
	assert.ErrorIs(t, err, prodUC.ErrInvalidProductID)

	products.AssertExpectations(t)
}

/* ─────────────────────────── Create ─────────────────────────── */

func TestService_Create_LinkedToExistingArticle(t *testing.T) {
	svc, products, articles := newService(t)

	products.On("GetByName", mock.Anything, "Perfume").Return(nil, nil)
	articles.On("Exists", mock.Anything, int64(2)).Return(true, nil)
	products.On("Create", mock.Anything, mock.MatchedBy(func(p *entity.Product) bool {
		return p.Name == "Perfume" && p.ArticleID != nil && *p.ArticleID == 2
	})).Return(nil).Run(func(args mock.Arguments) {
		args.Get(1).(*entity.Product).ID = 15
	})

	got, err := svc.Create(context.Background(), prodUC.CreateInput{
		Name:        "Perfume",
		Description: "Fresh scent",
		ArticleID:   int64Ptr(2),
	})
	require.NoError(t, err)
	assert.Equal(t, int64(15), got.ID)
	products.AssertExpectations(t)
	articles.AssertExpectations(t)
}

func TestService_Create_UnknownArticleIsUnlinked(t *testing.T) {
	svc, products, articles := newService(t)

	products.On("GetByName", mock.Anything, "Lipstick").Return(nil, nil)
	articles.On("Exists", mock.Anything, int64(77)).Return(false, nil)
	products.On("Create", mock.Anything, mock.MatchedBy(func(p *entity.Product) bool {
		return p.ArticleID == nil
	})).Return(nil)

	_, err := svc.Create(context.Background(), prodUC.CreateInput{Name: "Lipstick", ArticleID: int64Ptr(77)})
	require.NoError(t, err)
	products.AssertExpectations(t)
}

func TestService_Create_NoArticle(t *testing.T) {
	svc, products, articles := newService(t)

	products.On("GetByName", mock.Anything, "Hand cream").Return(nil, nil)
	products.On("Create", mock.Anything, mock.Anything).Return(nil)

	_, err := svc.Create(context.Background(), prodUC.CreateInput{Name: "Hand cream"})
	require.NoError(t, err)
	articles.AssertNotCalled(t, "Exists", mock.Anything, mock.Anything)
}

func TestService_Create_Duplicate(t *testing.T) {
	svc, products, _ := newService(t)

	products.On("GetByName", mock.Anything, "  PERFUME ").Return(&entity.Product{ID: 1, Name: "Perfume"}, nil)

	_, err := svc.Create(context.Background(), prodUC.CreateInput{Name: "  PERFUME "})
	assert.ErrorIs(t, err, prodUC.ErrDuplicateProduct)
	assert.ErrorIs(t, err, entity.ErrDuplicate)
	products.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestService_Create_Validation(t *testing.T) {
	svc, products, _ := newService(t)

	_, err := svc.Create(context.Background(), prodUC.CreateInput{Name: ""})
	assert.ErrorIs(t, err, entity.ErrInvalidInput)
	products.AssertNotCalled(t, "GetByName", mock.Anything, mock.Anything)
}

/* ─────────────────────────── Update / Delete ─────────────────────────── */

func TestService_Update(t *testing.T) {
	svc, products, _ := newService(t)

	products.On("Exists", mock.Anything, int64(4)).Return(true, nil)
	products.On("Update", mock.Anything, &entity.Product{ID: 4, Name: "Perfume", Description: "Wild scent"}).Return(nil)

	err := svc.Update(context.Background(), 4, prodUC.UpdateInput{ID: 4, Name: "Perfume", Description: "Wild scent"})
	require.NoError(t, err)
	products.AssertExpectations(t)
}

func TestService_Update_IDMismatch(t *testing.T) {
	svc, products, _ := newService(t)

	err := svc.Update(context.Background(), 4, prodUC.UpdateInput{ID: 5, Name: "Perfume"})
	assert.ErrorIs(t, err, prodUC.ErrIDMismatch)
	assert.ErrorIs(t, err, entity.ErrInvalidInput)
	products.AssertNotCalled(t, "Exists", mock.Anything, mock.Anything)
	products.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestService_Update_NotFound(t *testing.T) {
	svc, products, _ := newService(t)

	products.On("Exists", mock.Anything, int64(4)).Return(false, nil)

	err := svc.Update(context.Background(), 4, prodUC.UpdateInput{ID: 4, Name: "Perfume"})
	assert.ErrorIs(t, err, prodUC.ErrProductNotFound)
	products.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestService_Update_PersistenceFailure(t *testing.T) {
	svc, products, _ := newService(t)

	products.On("Exists", mock.Anything, int64(4)).Return(true, nil)
	products.On("Update", mock.Anything, mock.Anything).Return(entity.ErrPersistenceFailure)

	err := svc.Update(context.Background(), 4, prodUC.UpdateInput{ID: 4, Name: "Perfume"})
	assert.ErrorIs(t, err, entity.ErrPersistenceFailure)
}

func TestService_Delete(t *testing.T) {
	svc, products, _ := newService(t)

	products.On("Exists", mock.Anything, int64(3)).Return(true, nil)
	products.On("Get", mock.Anything, int64(3)).Return(&entity.Product{ID: 3, Name: "Perfume"}, nil)
	products.On("Delete", mock.Anything, int64(3)).Return(nil)

	require.NoError(t, svc.Delete(context.Background(), 3))
	products.AssertExpectations(t)
}

func TestService_Delete_MissingProductIssuesNoDelete(t *testing.T) {
	svc, products, _ := newService(t)

	products.On("Exists", mock.Anything, int64(999)).Return(false, nil)

	err := svc.Delete(context.Background(), 999)
	assert.ErrorIs(t, err, prodUC.ErrProductNotFound)
	products.AssertNotCalled(t, "Get", mock.Anything, mock.Anything)
	products.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}
