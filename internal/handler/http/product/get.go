package product

import (
	"net/http"

	"catalog-api/internal/handler/http/pathutil"
	"catalog-api/internal/handler/http/respond"
	prodUC "catalog-api/internal/usecase/product"
)

type GetHandler struct{ Svc *prodUC.Service }

// ServeHTTP 商品詳細取得
// @Summary      商品詳細取得
// @Description  指定されたIDの商品を取得します
// @Tags         products
// @Produce      json
// @Param        id path int true "商品ID"
// @Success      200 {object} DTO "商品詳細"
// @Failure      400 {string} string "Bad request - invalid product ID"
// @Failure      404 {string} string "Not found - product not found"
// @Failure      500 {string} string "サーバーエラー"
// @Router       /products/{id} [get]
func (h GetHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := pathutil.ParseID(r.PathValue("id"))
	if err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	p, err := h.Svc.Get(r.Context(), id)
	if err != nil {
		respond.DomainError(w, err)
		return
	}

	respond.JSON(w, http.StatusOK, toDTO(*p))
}
