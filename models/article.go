package models

import "time"

// Slug mirrors the CMS slug object ({"current": "..."}).
type Slug struct {
	Current string `bson:"current" json:"current"`
}

// Image is a resolved image reference. URL is already the CDN URL projected by
// the content query.
type Image struct {
	URL     string `bson:"url" json:"url"`
	Alt     string `bson:"alt,omitempty" json:"alt,omitempty"`
	Caption string `bson:"caption,omitempty" json:"caption,omitempty"`
}

// CategoryRef is the dereferenced category projection embedded in articles.
type CategoryRef struct {
	ID    string `bson:"_id" json:"_id"`
	Title string `bson:"title" json:"title"`
	Slug  Slug   `bson:"slug" json:"slug"`
	Color string `bson:"color,omitempty" json:"color,omitempty"`
}

// AuthorRef is the dereferenced author projection embedded in articles.
type AuthorRef struct {
	ID    string `bson:"_id" json:"_id"`
	Name  string `bson:"name" json:"name"`
	Image *Image `bson:"image,omitempty" json:"image,omitempty"`
}

// Article is the summary shape used by every listing.
// Collection: articles
type Article struct {
	ID          string       `bson:"_id" json:"_id"`
	Title       string       `bson:"title" json:"title"`
	Slug        Slug         `bson:"slug" json:"slug"`
	Excerpt     string       `bson:"excerpt" json:"excerpt"`
	MainImage   *Image       `bson:"mainImage,omitempty" json:"mainImage,omitempty"`
	PublishedAt time.Time    `bson:"publishedAt" json:"publishedAt"`
	Category    *CategoryRef `bson:"category,omitempty" json:"category,omitempty"`
	Author      *AuthorRef   `bson:"author,omitempty" json:"author,omitempty"`
	Views       int64        `bson:"views" json:"views"`
	Featured    bool         `bson:"featured" json:"featured"`
	Breaking    bool         `bson:"breaking" json:"breaking"`
	CreatedAt   time.Time    `bson:"_createdAt" json:"_createdAt"`
}

// ArticleDetail is a single article with its body, as loaded by slug.
type ArticleDetail struct {
	Article `bson:",inline"`
	Body    Body           `bson:"body" json:"body"`
	Tags    []string       `bson:"tags,omitempty" json:"tags,omitempty"`
	Profile *AuthorProfile `bson:"-" json:"authorProfile,omitempty"`
}
