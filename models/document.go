package models

import (
	"encoding/json"
	"fmt"
	"time"
)

// DocumentKind is the CMS "_type" discriminator.
type DocumentKind string

const (
	KindArticle  DocumentKind = "article"
	KindCategory DocumentKind = "category"
	KindAuthor   DocumentKind = "author"
)

// Document is a tagged union over the CMS document kinds. Exactly one of the
// pointers matching Kind is set after decoding.
type Document struct {
	Kind     DocumentKind
	Article  *Article
	Category *Category
	Author   *AuthorProfile
}

// UnmarshalJSON decodes by looking at "_type" first.
func (d *Document) UnmarshalJSON(data []byte) error {
	var peek struct {
		Type DocumentKind `json:"_type"`
	}
	if err := json.Unmarshal(data, &peek); err != nil {
		return err
	}
	d.Kind = peek.Type
	switch peek.Type {
	case KindArticle:
		d.Article = &Article{}
		return json.Unmarshal(data, d.Article)
	case KindCategory:
		d.Category = &Category{}
		return json.Unmarshal(data, d.Category)
	case KindAuthor:
		d.Author = &AuthorProfile{}
		return json.Unmarshal(data, d.Author)
	default:
		return fmt.Errorf("unknown document type %q", peek.Type)
	}
}

// SlugValue returns the slug of whichever document is set.
func (d Document) SlugValue() string {
	switch {
	case d.Article != nil:
		return d.Article.Slug.Current
	case d.Category != nil:
		return d.Category.Slug.Current
	case d.Author != nil:
		return d.Author.Slug.Current
	}
	return ""
}

// SitemapEntry is a single URL-producing document for sitemap/feeds.
type SitemapEntry struct {
	Kind        DocumentKind
	Slug        string
	PublishedAt time.Time
}
