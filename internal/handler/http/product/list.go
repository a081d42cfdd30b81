package product

import (
	"log/slog"
	"net/http"
	"time"

	"catalog-api/internal/common/pagination"
	"catalog-api/internal/handler/http/respond"
	"catalog-api/internal/observability/logging"
	prodUC "catalog-api/internal/usecase/product"
)

type ListHandler struct {
	Svc           *prodUC.Service
	PaginationCfg pagination.Config
	Logger        *slog.Logger
}

// ServeHTTP 商品一覧取得
// @Summary      商品一覧取得（ページネーション対応）
// @Description  登録されている商品をID順に取得します。ページ単位の結果はキャッシュされます。
// @Tags         products
// @Produce      json
// @Param        pageIndex query int false "ページ番号 (1-based)" default(1) minimum(1)
// @Param        pageSize  query int false "1ページあたりの件数" default(5) minimum(1)
// @Success      200 {object} pagination.PagedResult[DTO] "ページネーション付き商品一覧"
// @Failure      400 {string} string "Invalid query parameters"
// @Failure      500 {string} string "サーバーエラー"
// @Router       /products [get]
func (h ListHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	startTime := time.Now()
	logger := logging.WithRequestID(ctx, h.Logger)

	params, err := pagination.ParseQueryParams(r, h.PaginationCfg)
	if err != nil {
		logger.Warn("invalid pagination parameters", slog.String("error", err.Error()))
		pagination.RecordError(prodUC.ResourceName, "validation")
		pagination.RecordRequest(prodUC.ResourceName, http.StatusBadRequest, params.PageIndex)
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	page, err := h.Svc.List(ctx, params)
	if err != nil {
		pagination.LogError(logger, prodUC.ResourceName, params, err, "database")
		pagination.RecordError(prodUC.ResourceName, "database")
		pagination.RecordRequest(prodUC.ResourceName, respond.StatusFor(err), params.PageIndex)
		respond.DomainError(w, err)
		return
	}

	out := pagination.Map(page, toDTO)

	duration := time.Since(startTime)
	pagination.RecordRequest(prodUC.ResourceName, http.StatusOK, params.PageIndex)
	pagination.RecordDuration(prodUC.ResourceName, "handler", duration.Seconds())
	pagination.UpdateTotalCount(prodUC.ResourceName, out.TotalRecords)
	pagination.LogResponse(logger, prodUC.ResourceName, params, len(out.Data), duration, http.StatusOK)

	respond.JSON(w, http.StatusOK, out)
}
