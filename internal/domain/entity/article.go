// Package entity defines the core domain entities and validation logic for the catalog.
// It contains the Article and Product business objects, the natural-key rules used for
// duplicate detection, and the domain-level error taxonomy.
package entity

// Article represents a catalog article (a bundle or editorial entry).
// An Article owns zero or more Products; the ownership is expressed on the Product side
// through Product.ArticleID.
type Article struct {
	ID          int64
	Title       string
	Description string
	Content     string
}

// NaturalKey returns the normalized title used for duplicate detection.
func (a *Article) NaturalKey() string {
	return NormalizeNaturalKey(a.Title)
}

// Validate validates the Article entity fields.
func (a *Article) Validate() error {
	if err := validateRequired("title", a.Title, maxTitleLength); err != nil {
		return err
	}
	if err := validateOptional("description", a.Description, maxDescriptionLength); err != nil {
		return err
	}
	return validateOptional("content", a.Content, maxContentLength)
}
