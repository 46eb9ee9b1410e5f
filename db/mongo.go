package db

import (
	"context"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"bangla-news/internal/logger"
	"bangla-news/config"
)

// CMS 미러의 컬렉션 이름
const (
	CollectionArticles   = "articles"
	CollectionCategories = "categories"
	CollectionAuthors    = "authors"
)

var (
	clientOnce sync.Once
	client     *mongo.Client
	db         *mongo.Database
)

// Init 은 전역 Mongo 클라이언트와 데이터베이스를 초기화한다.
func Init(ctx context.Context, cfg config.MongoConfig) error {
	var initErr error
	clientOnce.Do(func() {
		ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
		defer cancel()

		cl, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.URI))
		if err != nil {
			initErr = err
			return
		}
		if err := cl.Ping(ctx, readpref.Primary()); err != nil {
			initErr = err
			return
		}
		client = cl
		db = client.Database(cfg.Database)

		if err := ensureIndexes(ctx, db); err != nil {
			initErr = err
			return
		}
		logger.InfoWithFields("MongoDB connected and indexes ensured", logger.Fields{"database": cfg.Database})
	})
	return initErr
}

func Client() *mongo.Client     { return client }
func Database() *mongo.Database { return db }

// Disconnect 는 Init 이 성공했다면 전역 클라이언트를 닫는다.
func Disconnect(ctx context.Context) error {
	if client == nil {
		return nil
	}
	return client.Disconnect(ctx)
}

func ensureIndexes(ctx context.Context, d *mongo.Database) error {
	articles := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "slug.current", Value: 1}},
			Options: options.Index().SetName("uniq_slug").SetUnique(true),
		},
		{
			Keys:    bson.D{{Key: "publishedAt", Value: -1}},
			Options: options.Index().SetName("idx_published_at_desc"),
		},
		// 카테고리 목록/카운트
		{
			Keys:    bson.D{{Key: "category.slug.current", Value: 1}, {Key: "publishedAt", Value: -1}},
			Options: options.Index().SetName("idx_category_published"),
		},
		// 관련 기사
		{
			Keys:    bson.D{{Key: "category._id", Value: 1}, {Key: "publishedAt", Value: -1}},
			Options: options.Index().SetName("idx_category_id_published"),
		},
		// 트렌딩
		{
			Keys:    bson.D{{Key: "views", Value: -1}, {Key: "_createdAt", Value: -1}},
			Options: options.Index().SetName("idx_views_created"),
		},
		{
			Keys:    bson.D{{Key: "featured", Value: 1}, {Key: "_createdAt", Value: -1}},
			Options: options.Index().SetName("idx_featured_created"),
		},
		{
			Keys:    bson.D{{Key: "breaking", Value: 1}, {Key: "_createdAt", Value: -1}},
			Options: options.Index().SetName("idx_breaking_created"),
		},
	}
	if _, err := d.Collection(CollectionArticles).Indexes().CreateMany(ctx, articles); err != nil {
		return err
	}

	if _, err := d.Collection(CollectionCategories).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "slug.current", Value: 1}},
		Options: options.Index().SetName("uniq_category_slug").SetUnique(true),
	}); err != nil {
		return err
	}
	return nil
}
