package models

// Category represents a news section
// Collection: categories
type Category struct {
	ID          string `bson:"_id" json:"_id"`
	Title       string `bson:"title" json:"title"`
	Slug        Slug   `bson:"slug" json:"slug"`
	Description string `bson:"description,omitempty" json:"description,omitempty"`
	Color       string `bson:"color,omitempty" json:"color,omitempty"`
	Order       *int   `bson:"order,omitempty" json:"order,omitempty"`
}

// DefaultCategoryColor is used when the CMS has no color for a category.
const DefaultCategoryColor = "#3b82f6"

// DisplayColor returns the category color or the default one.
func (c Category) DisplayColor() string {
	if c.Color == "" {
		return DefaultCategoryColor
	}
	return c.Color
}
