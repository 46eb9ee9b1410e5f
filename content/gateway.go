// Package content defines the read/patch surface over the headless CMS.
//
// Two backends implement Gateway: the sanity package talks to the CMS HTTP query
// API, the repositories package reads a MongoDB mirror of the same documents.
package content

import (
	"context"
	"errors"

	"bangla-news/models"
)

// ErrNotFound is returned when a slug does not resolve to a document.
var ErrNotFound = errors.New("content: not found")

// Gateway is the query layer every page aggregator depends on.
// Empty slices are a valid answer; only lookups by slug report ErrNotFound.
type Gateway interface {
	// FetchCategories returns every category ordered by title.
	FetchCategories(ctx context.Context) ([]models.Category, error)
	FetchCategoryBySlug(ctx context.Context, slug string) (*models.Category, error)

	// FetchFeaturedArticles returns featured articles, newest created first.
	FetchFeaturedArticles(ctx context.Context, limit int) ([]models.Article, error)
	// FetchTrendingArticles orders by views desc, then creation time desc.
	FetchTrendingArticles(ctx context.Context, limit int) ([]models.Article, error)
	FetchBreakingNews(ctx context.Context, limit int) ([]models.Article, error)
	// FetchLatestArticles orders every article by publish time desc.
	FetchLatestArticles(ctx context.Context, limit int) ([]models.Article, error)

	// FetchArticlesByCategory returns the [offset, offset+limit) slice of a
	// category's articles by publish time desc.
	FetchArticlesByCategory(ctx context.Context, categorySlug string, offset, limit int) ([]models.Article, error)
	CountArticlesByCategory(ctx context.Context, categorySlug string) (int, error)

	FetchArticleBySlug(ctx context.Context, slug string) (*models.ArticleDetail, error)
	FetchRelatedArticles(ctx context.Context, categoryID, excludeArticleID string, limit int) ([]models.Article, error)

	// SearchArticles expects an already sanitized query and matches title or
	// body text by prefix.
	SearchArticles(ctx context.Context, query string, limit int) ([]models.Article, error)

	IncrementArticleViews(ctx context.Context, articleID string) error

	FetchSitemapEntries(ctx context.Context) ([]models.SitemapEntry, error)

	// Ping checks that the backend answers.
	Ping(ctx context.Context) error
}

// PageOffset converts a 1-based page number to an item offset.
func PageOffset(page, pageSize int) int {
	if page < 1 || pageSize <= 0 {
		return 0
	}
	return (page - 1) * pageSize
}
