package article

import (
	"net/http"

	"catalog-api/internal/handler/http/pathutil"
	"catalog-api/internal/handler/http/respond"
	artUC "catalog-api/internal/usecase/article"
)

type ProductsHandler struct{ Svc *artUC.Service }

// ServeHTTP 記事の商品一覧取得
// @Summary      記事の商品一覧取得
// @Description  指定された記事に紐づく商品をID順に取得します
// @Tags         articles
// @Produce      json
// @Param        id path int true "記事ID"
// @Success      200 {array} ProductDTO "商品一覧"
// @Failure      400 {string} string "Bad request - invalid article ID"
// @Failure      404 {string} string "Not found - article not found"
// @Failure      500 {string} string "サーバーエラー"
// @Router       /articles/{id}/products [get]
func (h ProductsHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := pathutil.ParseID(r.PathValue("id"))
	if err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	products, err := h.Svc.ListProducts(r.Context(), id)
	if err != nil {
		respond.DomainError(w, err)
		return
	}

	out := make([]ProductDTO, 0, len(products))
	for _, p := range products {
		out = append(out, toProductDTO(p))
	}
	respond.JSON(w, http.StatusOK, out)
}
