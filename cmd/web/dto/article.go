package dto

import (
	"time"

	"bangla-news/models"
)

// CategoryBadgeDTO is the small category label printed on cards.
type CategoryBadgeDTO struct {
	Title string `json:"title"`
	Slug  string `json:"slug"`
	Color string `json:"color"`
	URL   string `json:"url"`
}

// ArticleCardDTO is one article in any listing, with display strings
// already formatted for Bangla.
type ArticleCardDTO struct {
	ID          string            `json:"id"`
	Title       string            `json:"title"`
	Slug        string            `json:"slug"`
	URL         string            `json:"url"`
	Excerpt     string            `json:"excerpt"`
	ImageURL    string            `json:"image_url,omitempty"`
	ImageAlt    string            `json:"image_alt,omitempty"`
	Category    *CategoryBadgeDTO `json:"category,omitempty"`
	AuthorName  string            `json:"author_name,omitempty"`
	PublishedAt time.Time         `json:"published_at"`
	// TimeAgo is the relative time, e.g. "৩ ঘন্টা আগে".
	TimeAgo       string `json:"time_ago"`
	PublishedDate string `json:"published_date"`
	Views         int64  `json:"views"`
	ViewsText     string `json:"views_text"`
	Featured      bool   `json:"featured"`
	Breaking      bool   `json:"breaking"`
}

type AuthorDTO struct {
	Name     string `json:"name"`
	Slug     string `json:"slug,omitempty"`
	ImageURL string `json:"image_url,omitempty"`
	Position string `json:"position,omitempty"`
	Bio      string `json:"bio,omitempty"`
}

// ArticleDetailDTO carries the structured body untouched; rendering it is the
// front end's job.
type ArticleDetailDTO struct {
	ArticleCardDTO
	Body         models.Body `json:"body"`
	Tags         []string    `json:"tags"`
	ImageCaption string      `json:"image_caption,omitempty"`
	ReadingTime  string      `json:"reading_time"`
	ReadCount    string      `json:"read_count,omitempty"`
	Author       *AuthorDTO  `json:"author,omitempty"`
}

type ShareLinkDTO struct {
	Network string `json:"network" example:"facebook"`
	URL     string `json:"url"`
}

type ArticlePageDTO struct {
	Layout  LayoutDTO        `json:"layout"`
	Article ArticleDetailDTO `json:"article"`
	Related []ArticleCardDTO `json:"related"`
	Share   []ShareLinkDTO   `json:"share"`
}
