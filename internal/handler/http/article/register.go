package article

import (
	"log/slog"
	"net/http"

	"catalog-api/internal/common/pagination"
	artUC "catalog-api/internal/usecase/article"
)

// Register registers all article-related HTTP handlers with the given mux.
func Register(mux *http.ServeMux, svc *artUC.Service, paginationCfg pagination.Config, logger *slog.Logger) {
	mux.Handle("GET    /articles", ListHandler{
		Svc:           svc,
		PaginationCfg: paginationCfg,
		Logger:        logger,
	})
	mux.Handle("GET    /articles/{id}", GetHandler{svc})
	mux.Handle("GET    /articles/{id}/products", ProductsHandler{svc})

	mux.Handle("POST   /articles", CreateHandler{svc})
	mux.Handle("PUT    /articles/{id}", UpdateHandler{svc})
	mux.Handle("DELETE /articles/{id}", DeleteHandler{svc})
}
