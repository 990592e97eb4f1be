package mongo

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/upturn/portfolio-api/internal/core/domain"
)

// ContentRepository is the generic document accessor shared by every content
// collection. The collection name arrives per call so a single instance
// serves profile, services, experience, portfolio, slider and review alike.
type ContentRepository struct {
	db *mongo.Database
}

func NewContentRepository(db *mongo.Database) *ContentRepository {
	return &ContentRepository{db: db}
}

func (r *ContentRepository) List(ctx context.Context, collection string) ([]domain.Document, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cursor, err := r.db.Collection(collection).Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", collection, err)
	}

	var raws []bson.M
	if err := cursor.All(ctx, &raws); err != nil {
		return nil, fmt.Errorf("list %s: %w", collection, err)
	}

	docs := make([]domain.Document, len(raws))
	for i, raw := range raws {
		docs[i] = normalizeID(raw)
	}
	return docs, nil
}

func (r *ContentRepository) FindByID(ctx context.Context, collection, id string) (domain.Document, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrInvalidID
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var raw bson.M
	if err := r.db.Collection(collection).FindOne(ctx, bson.M{"_id": oid}).Decode(&raw); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("find in %s: %w", collection, err)
	}

	return normalizeID(raw), nil
}

func (r *ContentRepository) Insert(ctx context.Context, collection string, doc domain.Document) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.db.Collection(collection).InsertOne(ctx, bson.M(doc))
	if err != nil {
		return "", fmt.Errorf("insert into %s: %w", collection, err)
	}

	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return fmt.Sprintf("%v", res.InsertedID), nil
	}
	return oid.Hex(), nil
}

func (r *ContentRepository) UpdateByID(ctx context.Context, collection, id string, fields domain.Document) (int64, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return 0, domain.ErrInvalidID
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.db.Collection(collection).UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": bson.M(fields)})
	if err != nil {
		return 0, fmt.Errorf("update in %s: %w", collection, err)
	}
	return res.ModifiedCount, nil
}

func (r *ContentRepository) DeleteByID(ctx context.Context, collection, id string) (int64, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return 0, domain.ErrInvalidID
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.db.Collection(collection).DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return 0, fmt.Errorf("delete from %s: %w", collection, err)
	}
	return res.DeletedCount, nil
}

// normalizeID converts the raw bson document into a domain.Document with the
// ObjectID rendered as its hex string, keeping store identifier types out of
// the transport layer.
func normalizeID(raw bson.M) domain.Document {
	doc := domain.Document{}
	for k, v := range raw {
		doc[k] = v
	}
	if oid, ok := doc["_id"].(primitive.ObjectID); ok {
		doc["_id"] = oid.Hex()
	}
	return doc
}
