// Package article provides use cases for managing article entities.
// Reads go through the read-through cache; writes go straight to the repository.
package article

import (
	"fmt"

	"catalog-api/internal/domain/entity"
)

// Sentinel errors for article use case operations.
// Each wraps the matching entity error so handlers can classify them with errors.Is.
var (
	// ErrArticleNotFound indicates that the requested article was not found.
	ErrArticleNotFound = fmt.Errorf("article %w", entity.ErrNotFound)

	// ErrInvalidArticleID indicates that the provided article ID is invalid.
	// Article IDs must be positive integers.
	ErrInvalidArticleID = fmt.Errorf("%w: article ID must be positive", entity.ErrInvalidInput)

	// ErrIDMismatch indicates that the ID in the path differs from the ID in the body.
	ErrIDMismatch = fmt.Errorf("%w: article ID in path does not match body", entity.ErrInvalidInput)

	// ErrDuplicateArticle indicates that an article with the same title already exists.
	ErrDuplicateArticle = fmt.Errorf("article with this title %w", entity.ErrDuplicate)
)
