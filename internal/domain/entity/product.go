package entity

// Product represents a catalog product.
// ArticleID is a weak back-reference to the owning Article: it is used for lookups only
// and a Product never controls the Article's lifecycle.
type Product struct {
	ID          int64
	Name        string
	Description string
	ArticleID   *int64
}

// NaturalKey returns the normalized name used for duplicate detection.
func (p *Product) NaturalKey() string {
	return NormalizeNaturalKey(p.Name)
}

// Validate validates the Product entity fields.
func (p *Product) Validate() error {
	if err := validateRequired("name", p.Name, maxNameLength); err != nil {
		return err
	}
	if err := validateOptional("description", p.Description, maxDescriptionLength); err != nil {
		return err
	}
	if p.ArticleID != nil && *p.ArticleID <= 0 {
		return &ValidationError{Field: "articleId", Message: "must be positive"}
	}
	return nil
}
