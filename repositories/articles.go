package repositories

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"bangla-news/content"
	"bangla-news/db"
	"bangla-news/models"
)

type ArticleRepository struct {
	col *mongo.Collection
}

func NewArticleRepository(database *mongo.Database) *ArticleRepository {
	return &ArticleRepository{col: database.Collection(db.CollectionArticles)}
}

// List returns article cards matching filter in the given order.
func (r *ArticleRepository) List(ctx context.Context, filter bson.M, sort bson.D, offset, limit int) ([]models.Article, error) {
	if limit <= 0 {
		return []models.Article{}, nil
	}
	cur, err := r.col.Find(ctx, filter, listOptions(sort, offset, limit))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	out := make([]models.Article, 0, limit)
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *ArticleRepository) Count(ctx context.Context, filter bson.M) (int, error) {
	n, err := r.col.CountDocuments(ctx, filter)
	if err != nil {
		return 0, err
	}
	return int(n), nil
}

// FindBySlug returns content.ErrNotFound when no article has the slug.
func (r *ArticleRepository) FindBySlug(ctx context.Context, slug string) (*models.ArticleDetail, error) {
	var a models.ArticleDetail
	err := r.col.FindOne(ctx, bson.M{"slug.current": slug}).Decode(&a)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, content.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &a, nil
}

// IncrementViews atomically adds one to the views counter.
func (r *ArticleRepository) IncrementViews(ctx context.Context, id string) error {
	res, err := r.col.UpdateByID(ctx, id, bson.M{"$inc": bson.M{"views": 1}})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return content.ErrNotFound
	}
	return nil
}

// SitemapEntries streams slug and publish time of every article.
func (r *ArticleRepository) SitemapEntries(ctx context.Context) ([]models.SitemapEntry, error) {
	opts := options.Find().SetProjection(bson.M{"slug": 1, "publishedAt": 1})
	cur, err := r.col.Find(ctx, bson.M{"slug.current": bson.M{"$exists": true}}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var entries []models.SitemapEntry
	for cur.Next(ctx) {
		var a models.Article
		if err := cur.Decode(&a); err != nil {
			return nil, err
		}
		entries = append(entries, models.SitemapEntry{
			Kind:        models.KindArticle,
			Slug:        a.Slug.Current,
			PublishedAt: a.PublishedAt,
		})
	}
	return entries, cur.Err()
}
