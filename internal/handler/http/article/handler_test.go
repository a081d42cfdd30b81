package article_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sort"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"catalog-api/internal/cache"
	"catalog-api/internal/common/pagination"
	"catalog-api/internal/domain/entity"
	"catalog-api/internal/handler/http/article"
	artUC "catalog-api/internal/usecase/article"
)

/* ───────── スタブ実装 ───────── */

type stubRepo struct {
	mu       sync.Mutex
	data     map[int64]*entity.Article
	products map[int64][]*entity.Product
	nextID   int64
	err      error

	listCalls   int
	updateCalls int
	deleteCalls int
}

func newStub(titles ...string) *stubRepo {
	s := &stubRepo{
		data:     map[int64]*entity.Article{},
		products: map[int64][]*entity.Product{},
		nextID:   1,
	}
	for _, title := range titles {
		s.data[s.nextID] = &entity.Article{ID: s.nextID, Title: title, Description: "desc", Content: "content"}
		s.nextID++
	}
	return s
}

func (s *stubRepo) List(_ context.Context, offset, limit int) ([]*entity.Article, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listCalls++
	if s.err != nil {
		return nil, s.err
	}
	if offset < 0 {
		return nil, errors.New("OFFSET must not be negative")
	}
	ids := make([]int64, 0, len(s.data))
	for id := range s.data {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	var out []*entity.Article
	for i := offset; i < len(ids) && i < offset+limit; i++ {
		copied := *s.data[ids[i]]
		out = append(out, &copied)
	}
	return out, nil
}

func (s *stubRepo) Count(_ context.Context) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return 0, s.err
	}
	return int64(len(s.data)), nil
}

func (s *stubRepo) Get(_ context.Context, id int64) (*entity.Article, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return nil, s.err
	}
	a, ok := s.data[id]
	if !ok {
		return nil, nil
	}
	copied := *a
	return &copied, nil
}

func (s *stubRepo) GetByTitle(_ context.Context, title string) (*entity.Article, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	want := strings.ToLower(strings.TrimSpace(title))
	for _, a := range s.data {
		if strings.ToLower(strings.TrimSpace(a.Title)) == want {
			return a, nil
		}
	}
	return nil, nil
}

func (s *stubRepo) Create(_ context.Context, a *entity.Article) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	a.ID = s.nextID
	s.nextID++
	copied := *a
	s.data[a.ID] = &copied
	return nil
}

func (s *stubRepo) Update(_ context.Context, a *entity.Article) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.updateCalls++
	copied := *a
	s.data[a.ID] = &copied
	return nil
}

func (s *stubRepo) Delete(_ context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.deleteCalls++
	delete(s.data, id)
	return nil
}

func (s *stubRepo) Exists(_ context.Context, id int64) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return false, s.err
	}
	_, ok := s.data[id]
	return ok, nil
}

func (s *stubRepo) ListProducts(_ context.Context, articleID int64) ([]*entity.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.products[articleID], nil
}

/* ───────── ヘルパー ───────── */

func newMux(t *testing.T, repo *stubRepo) *http.ServeMux {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	store := cache.NewStore(cache.Config{Name: t.Name()})
	svc := artUC.NewService(repo, store, logger)

	mux := http.NewServeMux()
	article.Register(mux, svc, pagination.DefaultConfig(), logger)
	return mux
}

func do(t *testing.T, mux http.Handler, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, r)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rr := httptest.NewRecorder()
	mux.ServeHTTP(rr, req)
	return rr
}

/* ───────── テスト ───────── */

func TestListHandler_DefaultPage(t *testing.T) {
	mux := newMux(t, newStub("a1", "a2", "a3", "a4", "a5", "a6", "a7"))

	rr := do(t, mux, http.MethodGet, "/articles", "")
	require.Equal(t, http.StatusOK, rr.Code)

	var got pagination.PagedResult[article.DTO]
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
	assert.Equal(t, 1, got.PageIndex)
	assert.Equal(t, 5, got.PageSize)
	assert.Equal(t, int64(7), got.TotalRecords)
	assert.Equal(t, 2, got.TotalPages)
	require.Len(t, got.Data, 5)
	assert.Equal(t, "a1", got.Data[0].Title)
}

func TestListHandler_SecondPage(t *testing.T) {
	mux := newMux(t, newStub("a1", "a2", "a3", "a4", "a5", "a6", "a7"))

	rr := do(t, mux, http.MethodGet, "/articles?pageIndex=2&pageSize=5", "")
	require.Equal(t, http.StatusOK, rr.Code)

	var got pagination.PagedResult[article.DTO]
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
	require.Len(t, got.Data, 2)
	assert.Equal(t, int64(6), got.Data[0].ID)
	assert.Equal(t, int64(7), got.Data[1].ID)
}

func TestListHandler_EmptyDataEncodesAsArray(t *testing.T) {
	mux := newMux(t, newStub())

	rr := do(t, mux, http.MethodGet, "/articles", "")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), `"data":[]`)
	assert.Contains(t, rr.Body.String(), `"totalPages":0`)
}

func TestListHandler_LargePageSize(t *testing.T) {
	repo := newStub("a1", "a2")
	mux := newMux(t, repo)

	rr := do(t, mux, http.MethodGet, "/articles?pageSize=101", "")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), `"pageSize":101`)
	assert.Contains(t, rr.Body.String(), `"totalPages":1`)
	assert.Equal(t, 1, repo.listCalls)
}

func TestListHandler_PageIndexFarPastEnd(t *testing.T) {
	repo := newStub("a1", "a2")
	mux := newMux(t, repo)

	rr := do(t, mux, http.MethodGet, "/articles?pageIndex=100000000000000000&pageSize=100", "")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), `"data":[]`)
	assert.Contains(t, rr.Body.String(), `"totalRecords":2`)
	assert.Contains(t, rr.Body.String(), `"pageIndex":100000000000000000`)
}

func TestListHandler_InvalidParams(t *testing.T) {
	tests := []struct {
		name  string
		query string
	}{
		{"pageIndex zero", "?pageIndex=0"},
		{"pageIndex negative", "?pageIndex=-1"},
		{"pageIndex non-numeric", "?pageIndex=abc"},
		{"pageSize zero", "?pageSize=0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := newStub("a1")
			mux := newMux(t, repo)

			rr := do(t, mux, http.MethodGet, "/articles"+tt.query, "")
			assert.Equal(t, http.StatusBadRequest, rr.Code)
			assert.Zero(t, repo.listCalls, "repository must not be called for invalid params")
		})
	}
}

func TestListHandler_ServedFromCache(t *testing.T) {
	repo := newStub("a1", "a2")
	mux := newMux(t, repo)

	first := do(t, mux, http.MethodGet, "/articles", "")
	second := do(t, mux, http.MethodGet, "/articles", "")

	require.Equal(t, http.StatusOK, first.Code)
	require.Equal(t, http.StatusOK, second.Code)
	assert.JSONEq(t, first.Body.String(), second.Body.String())
	assert.Equal(t, 1, repo.listCalls)
}

func TestListHandler_RepositoryError(t *testing.T) {
	repo := newStub("a1")
	repo.err = errors.New("connection refused")
	mux := newMux(t, repo)

	rr := do(t, mux, http.MethodGet, "/articles", "")
	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.NotContains(t, rr.Body.String(), "connection refused")
}

func TestGetHandler(t *testing.T) {
	tests := []struct {
		name       string
		path       string
		wantStatus int
	}{
		{"found", "/articles/1", http.StatusOK},
		{"missing", "/articles/99", http.StatusNotFound},
		{"non-numeric", "/articles/abc", http.StatusBadRequest},
		{"zero", "/articles/0", http.StatusBadRequest},
		{"negative", "/articles/-3", http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mux := newMux(t, newStub("Special Bundle 1"))

			rr := do(t, mux, http.MethodGet, tt.path, "")
			assert.Equal(t, tt.wantStatus, rr.Code)
		})
	}
}

func TestGetHandler_Body(t *testing.T) {
	mux := newMux(t, newStub("Special Bundle 1"))

	rr := do(t, mux, http.MethodGet, "/articles/1", "")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t,
		`{"id":1,"title":"Special Bundle 1","description":"desc","content":"content"}`,
		rr.Body.String())
}

func TestProductsHandler(t *testing.T) {
	repo := newStub("Special Bundle 1")
	linked := int64(1)
	repo.products[1] = []*entity.Product{
		{ID: 3, Name: "Perfume", Description: "Eau de parfum", ArticleID: &linked},
	}
	mux := newMux(t, repo)

	rr := do(t, mux, http.MethodGet, "/articles/1/products", "")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `[{"id":3,"name":"Perfume","description":"Eau de parfum"}]`, rr.Body.String())

	rr = do(t, mux, http.MethodGet, "/articles/2/products", "")
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestProductsHandler_NoProductsIsEmptyArray(t *testing.T) {
	mux := newMux(t, newStub("Special Bundle 1"))

	rr := do(t, mux, http.MethodGet, "/articles/1/products", "")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `[]`, rr.Body.String())
}

func TestCreateHandler_Success(t *testing.T) {
	repo := newStub("existing")
	mux := newMux(t, repo)

	rr := do(t, mux, http.MethodPost, "/articles",
		`{"title":"New Article","description":"d","content":"c"}`)
	require.Equal(t, http.StatusCreated, rr.Code)
	assert.Equal(t, "/articles/2", rr.Header().Get("Location"))

	var got article.DTO
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
	assert.Equal(t, article.DTO{ID: 2, Title: "New Article", Description: "d", Content: "c"}, got)
	assert.Len(t, repo.data, 2)
}

func TestCreateHandler_Duplicate(t *testing.T) {
	repo := newStub("Special Bundle 1")
	mux := newMux(t, repo)

	rr := do(t, mux, http.MethodPost, "/articles", `{"title":"  SPECIAL bundle 1 "}`)
	assert.Equal(t, http.StatusUnprocessableEntity, rr.Code)
	assert.Contains(t, rr.Body.String(), "already exists")
	assert.Len(t, repo.data, 1)
}

func TestCreateHandler_BadRequest(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"invalid json", `{"title":`},
		{"missing title", `{"description":"d"}`},
		{"blank title", `{"title":"   "}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := newStub()
			mux := newMux(t, repo)

			rr := do(t, mux, http.MethodPost, "/articles", tt.body)
			assert.Equal(t, http.StatusBadRequest, rr.Code)
			assert.Empty(t, repo.data)
		})
	}
}

func TestCreateHandler_DoesNotInvalidateCachedPage(t *testing.T) {
	repo := newStub("a1")
	mux := newMux(t, repo)

	require.Equal(t, http.StatusOK, do(t, mux, http.MethodGet, "/articles", "").Code)
	require.Equal(t, http.StatusCreated,
		do(t, mux, http.MethodPost, "/articles", `{"title":"a2"}`).Code)

	rr := do(t, mux, http.MethodGet, "/articles", "")
	var got pagination.PagedResult[article.DTO]
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
	assert.Equal(t, int64(1), got.TotalRecords, "cached page is served until it expires")
}

func TestUpdateHandler_Success(t *testing.T) {
	repo := newStub("old")
	mux := newMux(t, repo)

	rr := do(t, mux, http.MethodPut, "/articles/1",
		`{"id":1,"title":"new","description":"nd","content":"nc"}`)
	require.Equal(t, http.StatusNoContent, rr.Code)
	assert.Empty(t, rr.Body.String())
	assert.Equal(t, "new", repo.data[1].Title)
	assert.Equal(t, "nc", repo.data[1].Content)
}

func TestUpdateHandler_IDMismatch(t *testing.T) {
	repo := newStub("old")
	mux := newMux(t, repo)

	rr := do(t, mux, http.MethodPut, "/articles/1", `{"id":2,"title":"new"}`)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Zero(t, repo.updateCalls)
}

func TestUpdateHandler_NotFound(t *testing.T) {
	repo := newStub()
	mux := newMux(t, repo)

	rr := do(t, mux, http.MethodPut, "/articles/5", `{"id":5,"title":"new"}`)
	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Zero(t, repo.updateCalls)
}

func TestUpdateHandler_InvalidBody(t *testing.T) {
	mux := newMux(t, newStub("old"))

	rr := do(t, mux, http.MethodPut, "/articles/1", `not json`)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestDeleteHandler(t *testing.T) {
	repo := newStub("a1")
	mux := newMux(t, repo)

	rr := do(t, mux, http.MethodDelete, "/articles/1", "")
	assert.Equal(t, http.StatusNoContent, rr.Code)
	assert.Empty(t, repo.data)
	assert.Equal(t, 1, repo.deleteCalls)
}

func TestDeleteHandler_NotFound(t *testing.T) {
	repo := newStub()
	mux := newMux(t, repo)

	rr := do(t, mux, http.MethodDelete, "/articles/1", "")
	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Zero(t, repo.deleteCalls, "no delete is issued for a missing article")
}

func TestDeleteHandler_InvalidID(t *testing.T) {
	mux := newMux(t, newStub())

	rr := do(t, mux, http.MethodDelete, "/articles/x", "")
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}
