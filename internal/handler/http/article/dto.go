// Package article provides HTTP handlers for article endpoints.
// It includes handlers for listing, reading, creating, updating, and deleting articles,
// and for listing the products that belong to an article.
package article

import (
	"encoding/json"
	"fmt"
	"net/http"

	"catalog-api/internal/domain/entity"
)

// DTO represents the JSON structure for article data transfer.
// Products are not embedded; use GET /articles/{id}/products.
type DTO struct {
	ID          int64  `json:"id" example:"1"`
	Title       string `json:"title" example:"Special Bundle 1"`
	Description string `json:"description" example:"Limited edition gift set"`
	Content     string `json:"content" example:"Perfume and body lotion in a gift box"`
}

// ProductDTO is the product representation returned under an article.
type ProductDTO struct {
	ID          int64  `json:"id" example:"1"`
	Name        string `json:"name" example:"Perfume"`
	Description string `json:"description" example:"Eau de parfum 50 ml"`
}

// writeRequest is the body accepted by create and update.
// ID is ignored on create.
type writeRequest struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Content     string `json:"content"`
}

func toDTO(a entity.Article) DTO {
	return DTO{
		ID:          a.ID,
		Title:       a.Title,
		Description: a.Description,
		Content:     a.Content,
	}
}

func toProductDTO(p *entity.Product) ProductDTO {
	return ProductDTO{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
	}
}

func decodeWriteRequest(r *http.Request) (writeRequest, error) {
	var req writeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return req, fmt.Errorf("invalid request body: %w", err)
	}
	return req, nil
}
