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

type CategoryRepository struct {
	col *mongo.Collection
}

func NewCategoryRepository(database *mongo.Database) *CategoryRepository {
	return &CategoryRepository{col: database.Collection(db.CollectionCategories)}
}

// FindAll returns every category ordered by title.
func (r *CategoryRepository) FindAll(ctx context.Context) ([]models.Category, error) {
	cur, err := r.col.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "title", Value: 1}}))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	out := []models.Category{}
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *CategoryRepository) FindBySlug(ctx context.Context, slug string) (*models.Category, error) {
	var c models.Category
	err := r.col.FindOne(ctx, bson.M{"slug.current": slug}).Decode(&c)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, content.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}
