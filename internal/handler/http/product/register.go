package product

import (
	"log/slog"
	"net/http"

	"catalog-api/internal/common/pagination"
	prodUC "catalog-api/internal/usecase/product"
)

// Register registers all product-related HTTP handlers with the given mux.
func Register(mux *http.ServeMux, svc *prodUC.Service, paginationCfg pagination.Config, logger *slog.Logger) {
	mux.Handle("GET    /products", ListHandler{
		Svc:           svc,
		PaginationCfg: paginationCfg,
		Logger:        logger,
	})
	mux.Handle("GET    /products/{id}", GetHandler{svc})

	mux.Handle("POST   /products", CreateHandler{svc})
	mux.Handle("PUT    /products/{id}", UpdateHandler{svc})
	mux.Handle("DELETE /products/{id}", DeleteHandler{svc})
}
