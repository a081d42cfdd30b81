package article

import (
	"net/http"

	"catalog-api/internal/handler/http/pathutil"
	"catalog-api/internal/handler/http/respond"
	artUC "catalog-api/internal/usecase/article"
)

type UpdateHandler struct{ Svc *artUC.Service }

// ServeHTTP 記事更新
// @Summary      記事更新
// @Description  既存の記事を置き換えます。パスのIDとボディのIDは一致している必要があります。
// @Tags         articles
// @Accept       json
// @Produce      json
// @Param        id path int true "記事ID"
// @Param        article body DTO true "更新する記事情報"
// @Success      204 "No Content"
// @Failure      400 {string} string "Bad request - invalid input or ID mismatch"
// @Failure      404 {string} string "Not found - article not found"
// @Failure      500 {string} string "サーバーエラー"
// @Router       /articles/{id} [put]
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

	if err := h.Svc.Update(r.Context(), id, artUC.UpdateInput{
		ID:          req.ID,
		Title:       req.Title,
		Description: req.Description,
		Content:     req.Content,
	}); err != nil {
		respond.DomainError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
