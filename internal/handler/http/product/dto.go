// Package product provides HTTP handlers for product endpoints.
package product

import (
	"encoding/json"
	"fmt"
	"net/http"

	"catalog-api/internal/domain/entity"
)

// DTO represents the JSON structure for product data transfer.
// The owning article is not included.
type DTO struct {
	ID          int64  `json:"id" example:"1"`
	Name        string `json:"name" example:"Perfume"`
	Description string `json:"description" example:"Eau de parfum 50 ml"`
}

type writeRequest struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

func toDTO(p entity.Product) DTO {
	return DTO{
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
