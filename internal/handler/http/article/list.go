package article

import (
	"log/slog"
	"net/http"
	"time"

	"catalog-api/internal/common/pagination"
	"catalog-api/internal/handler/http/respond"
	"catalog-api/internal/observability/logging"
	artUC "catalog-api/internal/usecase/article"
)

type ListHandler struct {
	Svc           *artUC.Service
	PaginationCfg pagination.Config
	Logger        *slog.Logger
}

// ServeHTTP 記事一覧取得
// @Summary      記事一覧取得（ページネーション対応）
// @Description  登録されている記事をID順に取得します。ページ単位の結果はキャッシュされます。
// @Tags         articles
// @Produce      json
// @Param        pageIndex query int false "ページ番号 (1-based)" default(1) minimum(1)
// @Param        pageSize  query int false "1ページあたりの件数" default(5) minimum(1)
// @Success      200 {object} pagination.PagedResult[DTO] "ページネーション付き記事一覧"
// @Failure      400 {string} string "Invalid query parameters"
// @Failure      500 {string} string "サーバーエラー"
// @Router       /articles [get]
func (h ListHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	startTime := time.Now()
	logger := logging.WithRequestID(ctx, h.Logger)

	params, err := pagination.ParseQueryParams(r, h.PaginationCfg)
	if err != nil {
		logger.Warn("invalid pagination parameters", slog.String("error", err.Error()))
		pagination.RecordError(artUC.ResourceName, "validation")
		pagination.RecordRequest(artUC.ResourceName, http.StatusBadRequest, params.PageIndex)
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	page, err := h.Svc.List(ctx, params)
	if err != nil {
		pagination.LogError(logger, artUC.ResourceName, params, err, "database")
		pagination.RecordError(artUC.ResourceName, "database")
		pagination.RecordRequest(artUC.ResourceName, respond.StatusFor(err), params.PageIndex)
		respond.DomainError(w, err)
		return
	}

	out := pagination.Map(page, toDTO)

	duration := time.Since(startTime)
	pagination.RecordRequest(artUC.ResourceName, http.StatusOK, params.PageIndex)
	pagination.RecordDuration(artUC.ResourceName, "handler", duration.Seconds())
	pagination.UpdateTotalCount(artUC.ResourceName, out.TotalRecords)
	pagination.LogResponse(logger, artUC.ResourceName, params, len(out.Data), duration, http.StatusOK)

	respond.JSON(w, http.StatusOK, out)
}
