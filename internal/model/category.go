package model

import "strings"

type Category struct {
	ID       int64   `db:"id" json:"id"`
	Name     string  `db:"name" json:"name"`
	Slug     string  `db:"slug" json:"slug"`
	ParentID *int64  `db:"parent_id" json:"parent_id"`
	Image    *string `db:"image" json:"image"`
	// ProductCount is derived from active products, never stored.
	ProductCount int `db:"product_count" json:"product_count"`
}

// Slugify derives a slug from a category name for rows that predate the slug
// column.
func Slugify(name string) string {
	return strings.ToLower(strings.ReplaceAll(name, " ", "-"))
}

// EffectiveSlug returns the stored slug, deriving one from the name when the
// row has none.
func (c *Category) EffectiveSlug() string {
	if c.Slug != "" {
		return c.Slug
	}
	return Slugify(c.Name)
}
