package product

import (
	"net/http"

	"catalog-api/internal/handler/http/pathutil"
	"catalog-api/internal/handler/http/respond"
	prodUC "catalog-api/internal/usecase/product"
)

type UpdateHandler struct{ Svc *prodUC.Service }

// ServeHTTP 商品更新
// @Summary      商品更新
// @Description  既存の商品の名前と説明を置き換えます。記事との紐づけは変更されません。
// @Tags         products
// @Accept       json
// @Produce      json
// @Param        id path int true "商品ID"
// @Param        product body DTO true "更新する商品情報"
// @Success      204 "No Content"
// @Failure      400 {string} string "Bad request - invalid input or ID mismatch"
// @Failure      404 {string} string "Not found - product not found"
// @Failure      500 {string} string "サーバーエラー"
// @Router       /products/{id} [put]
func (h UpdateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := pathutil.ParseID(r.PathValue("id"))
	if err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	req, err := decodeWriteRequest(r)
	if err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	if err := h.Svc.Update(r.Context(), id, prodUC.UpdateInput{
		ID:          req.ID,
		Name:        req.Name,
		Description: req.Description,
	}); err != nil {
		respond.DomainError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
