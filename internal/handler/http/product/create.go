package product

import (
	"errors"
	"net/http"
	"strconv"

	"catalog-api/internal/handler/http/respond"
	prodUC "catalog-api/internal/usecase/product"
)

// QueryArticleID names the query parameter that links a new product to an article.
const QueryArticleID = "articleId"

var errInvalidArticleID = errors.New("invalid articleId: must be an integer")

type CreateHandler struct{ Svc *prodUC.Service }

// ServeHTTP 商品作成
// @Summary      商品作成
// @Description  新しい商品を作成します。articleId に存在する記事を指定すると、その記事に紐づけます。
// @Description  存在しない記事IDや未指定の場合は、記事に紐づかない商品として作成します。
// @Tags         products
// @Accept       json
// @Produce      json
// @Param        articleId query int false "紐づける記事ID"
// @Param        product body DTO true "商品情報"
// @Success      201 {object} DTO "作成された商品"
// @Header       201 {string} Location "作成された商品のURL"
// @Failure      400 {string} string "Bad request - invalid input"
// @Failure      422 {string} string "Product already exists"
// @Failure      500 {string} string "サーバーエラー"
// @Router       /products [post]
func (h CreateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var articleID *int64
	if raw := r.URL.Query().Get(QueryArticleID); raw != "" {
		v, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			respond.SafeError(w, http.StatusBadRequest, errInvalidArticleID)
			return
		}
		articleID = &v
	}

	req, err := decodeWriteRequest(r)
	if err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	p, err := h.Svc.Create(r.Context(), prodUC.CreateInput{
		Name:        req.Name,
		Description: req.Description,
		ArticleID:   articleID,
	})
	if err != nil {
		respond.DomainError(w, err)
		return
	}

	w.Header().Set("Location", "/products/"+strconv.FormatInt(p.ID, 10))
	respond.JSON(w, http.StatusCreated, toDTO(*p))
}
