package article

import (
	"net/http"
	"strconv"

	"catalog-api/internal/handler/http/respond"
	artUC "catalog-api/internal/usecase/article"
)

type CreateHandler struct{ Svc *artUC.Service }

// ServeHTTP 記事作成
// @Summary      記事作成
// @Description  新しい記事を作成します。タイトルは前後の空白と大文字小文字を無視して一意です。
// @Tags         articles
// @Accept       json
// @Produce      json
// @Param        article body DTO true "記事情報"
// @Success      201 {object} DTO "作成された記事"
// @Header       201 {string} Location "作成された記事のURL"
// @Failure      400 {string} string "Bad request - invalid input"
// @Failure      422 {string} string "Article already exists"
// @Failure      500 {string} string "サーバーエラー"
// @Router       /articles [post]
func (h CreateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	req, err := decodeWriteRequest(r)
	if err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	a, err := h.Svc.Create(r.Context(), artUC.CreateInput{
		Title:       req.Title,
		Description: req.Description,
		Content:     req.Content,
	})
	if err != nil {
		respond.DomainError(w, err)
		return
	}

	w.Header().Set("Location", "/articles/"+strconv.FormatInt(a.ID, 10))
	respond.JSON(w, http.StatusCreated, toDTO(*a))
}
