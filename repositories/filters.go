package repositories

import (
	"regexp"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Sort orders used by the article listings.
var (
	sortNewestCreated = bson.D{{Key: "_createdAt", Value: -1}}
	sortNewestPublish = bson.D{{Key: "publishedAt", Value: -1}}
	sortTrending      = bson.D{{Key: "views", Value: -1}, {Key: "_createdAt", Value: -1}}
)

// cardProjection drops the body so listings stay small.
var cardProjection = bson.M{"body": 0, "tags": 0}

func featuredFilter() bson.M { return bson.M{"featured": true} }
func breakingFilter() bson.M { return bson.M{"breaking": true} }

func categorySlugFilter(slug string) bson.M {
	return bson.M{"category.slug.current": slug}
}

func relatedFilter(categoryID, excludeID string) bson.M {
	return bson.M{
		"category._id": categoryID,
		"_id":          bson.M{"$ne": excludeID},
	}
}

// searchFilter matches a word prefix in the title or any body span,
// the same as a trailing-wildcard text match.
func searchFilter(query string) bson.M {
	re := primitive.Regex{Pattern: `(^|\s)` + regexp.QuoteMeta(query), Options: "i"}
	return bson.M{"$or": bson.A{
		bson.M{"title": re},
		bson.M{"body.children.text": re},
	}}
}

func listOptions(sort bson.D, offset, limit int) *options.FindOptions {
	if offset < 0 {
		offset = 0
	}
	if limit < 0 {
		limit = 0
	}
	return options.Find().
		SetSort(sort).
		SetSkip(int64(offset)).
		SetLimit(int64(limit)).
		SetProjection(cardProjection)
}
