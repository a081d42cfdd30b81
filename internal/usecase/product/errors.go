// Package product provides use cases for managing product entities.
package product

import (
	"fmt"

	"catalog-api/internal/domain/entity"
)

// Sentinel errors for product use case operations.
var (
	// ErrProductNotFound indicates that the requested product was not found.
	ErrProductNotFound = fmt.Errorf("product %w", entity.ErrNotFound)

	// ErrInvalidProductID indicates that the provided product ID is not positive.
	ErrInvalidProductID = fmt.Errorf("%w: product ID must be positive", entity.ErrInvalidInput)

	// ErrIDMismatch indicates that the ID in the path differs from the ID in the body.
	ErrIDMismatch = fmt.Errorf("%w: product ID in path does not match body", entity.ErrInvalidInput)

	// ErrDuplicateProduct indicates that a product with the same name already exists.
	ErrDuplicateProduct = fmt.Errorf("product with this name %w", entity.ErrDuplicate)
)
