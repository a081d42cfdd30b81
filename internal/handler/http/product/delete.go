package product

import (
	"net/http"

	"catalog-api/internal/handler/http/pathutil"
	"catalog-api/internal/handler/http/respond"
	prodUC "catalog-api/internal/usecase/product"
)

type DeleteHandler struct{ Svc *prodUC.Service }

// ServeHTTP 商品削除
// @Summary      商品削除
// @Description  指定されたIDの商品を削除します
// @Tags         products
// @Param        id path int true "商品ID"
// @Success      204 "No Content"
// @Failure      400 {string} string "Bad request - invalid product ID"
// @Failure      404 {string} string "Not found - product not found"
// @Failure      500 {string} string "サーバーエラー"
// @Router       /products/{id} [delete]
func (h DeleteHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := pathutil.ParseID(r.PathValue("id"))
	if err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	if err := h.Svc.Delete(r.Context(), id); err != nil {
		respond.DomainError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
