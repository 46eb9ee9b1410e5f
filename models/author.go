package models

// AuthorProfile is the author block shown under an article.
// Collection: authors
type AuthorProfile struct {
	ID       string `bson:"_id" json:"_id"`
	Name     string `bson:"name" json:"name"`
	Slug     Slug   `bson:"slug" json:"slug"`
	Image    *Image `bson:"image,omitempty" json:"image,omitempty"`
	Bio      Body   `bson:"bio,omitempty" json:"bio,omitempty"`
	Position string `bson:"position,omitempty" json:"position,omitempty"`
}
