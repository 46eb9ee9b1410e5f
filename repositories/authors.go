package repositories

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"bangla-news/content"
	"bangla-news/db"
	"bangla-news/models"
)

type AuthorRepository struct {
	col *mongo.Collection
}

func NewAuthorRepository(database *mongo.Database) *AuthorRepository {
	return &AuthorRepository{col: database.Collection(db.CollectionAuthors)}
}

func (r *AuthorRepository) FindByID(ctx context.Context, id string) (*models.AuthorProfile, error) {
	var a models.AuthorProfile
	err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&a)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, content.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &a, nil
}
