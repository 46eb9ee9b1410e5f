package repositories

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"bangla-news/internal/logger"
	"bangla-news/content"
	"bangla-news/models"
	"bangla-news/trace"
)

// Gateway serves content.Gateway from a MongoDB mirror of the CMS dataset.
// Articles embed their dereferenced category and author, like the CMS projection.
type Gateway struct {
	client     *mongo.Client
	articles   *ArticleRepository
	categories *CategoryRepository
	authors    *AuthorRepository
}

var _ content.Gateway = (*Gateway)(nil)

func NewGateway(database *mongo.Database) *Gateway {
	return &Gateway{
		client:     database.Client(),
		articles:   NewArticleRepository(database),
		categories: NewCategoryRepository(database),
		authors:    NewAuthorRepository(database),
	}
}

func (g *Gateway) FetchCategories(ctx context.Context) ([]models.Category, error) {
	return g.categories.FindAll(ctx)
}

func (g *Gateway) FetchCategoryBySlug(ctx context.Context, slug string) (*models.Category, error) {
	return g.categories.FindBySlug(ctx, slug)
}

func (g *Gateway) FetchFeaturedArticles(ctx context.Context, limit int) ([]models.Article, error) {
	return g.articles.List(ctx, featuredFilter(), sortNewestCreated, 0, limit)
}

func (g *Gateway) FetchTrendingArticles(ctx context.Context, limit int) ([]models.Article, error) {
	return g.articles.List(ctx, bson.M{}, sortTrending, 0, limit)
}

func (g *Gateway) FetchBreakingNews(ctx context.Context, limit int) ([]models.Article, error) {
	return g.articles.List(ctx, breakingFilter(), sortNewestCreated, 0, limit)
}

func (g *Gateway) FetchLatestArticles(ctx context.Context, limit int) ([]models.Article, error) {
	return g.articles.List(ctx, bson.M{}, sortNewestPublish, 0, limit)
}

func (g *Gateway) FetchArticlesByCategory(ctx context.Context, categorySlug string, offset, limit int) ([]models.Article, error) {
	return g.articles.List(ctx, categorySlugFilter(categorySlug), sortNewestPublish, offset, limit)
}

func (g *Gateway) CountArticlesByCategory(ctx context.Context, categorySlug string) (int, error) {
	return g.articles.Count(ctx, categorySlugFilter(categorySlug))
}

// FetchArticleBySlug loads the article and, best effort, its author profile.
func (g *Gateway) FetchArticleBySlug(ctx context.Context, slug string) (*models.ArticleDetail, error) {
	article, err := g.articles.FindBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if article.Author != nil && article.Author.ID != "" {
		profile, err := g.authors.FindByID(ctx, article.Author.ID)
		switch {
		case err == nil:
			article.Profile = profile
		case !errors.Is(err, content.ErrNotFound):
			logger.ErrorWithFields("author profile lookup failed", logger.Fields{
				"author_id":  article.Author.ID,
				"request_id": trace.RequestIDFromContext(ctx),
				"error":      err.Error(),
			})
		}
	}
	return article, nil
}

func (g *Gateway) FetchRelatedArticles(ctx context.Context, categoryID, excludeArticleID string, limit int) ([]models.Article, error) {
	return g.articles.List(ctx, relatedFilter(categoryID, excludeArticleID), sortNewestPublish, 0, limit)
}

func (g *Gateway) SearchArticles(ctx context.Context, query string, limit int) ([]models.Article, error) {
	if query == "" {
		return []models.Article{}, nil
	}
	return g.articles.List(ctx, searchFilter(query), sortNewestPublish, 0, limit)
}

func (g *Gateway) IncrementArticleViews(ctx context.Context, articleID string) error {
	return g.articles.IncrementViews(ctx, articleID)
}

func (g *Gateway) FetchSitemapEntries(ctx context.Context) ([]models.SitemapEntry, error) {
	categories, err := g.categories.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	articles, err := g.articles.SitemapEntries(ctx)
	if err != nil {
		return nil, err
	}

	entries := make([]models.SitemapEntry, 0, len(categories)+len(articles))
	for _, c := range categories {
		entries = append(entries, models.SitemapEntry{Kind: models.KindCategory, Slug: c.Slug.Current})
	}
	return append(entries, articles...), nil
}

func (g *Gateway) Ping(ctx context.Context) error {
	return g.client.Ping(ctx, readpref.Primary())
}
