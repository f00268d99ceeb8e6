package mongodb

import (
	"context"
	"fmt"

	"lostfound-admin/internal/console/domain/model"
	"lostfound-admin/internal/shared/errors"
	"lostfound-admin/internal/shared/logger"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// MongoDocumentStore implements the DocumentStore interface over the managed
// item collections. The store-assigned _id becomes the record ID, shadowing
// any id field the raw document may carry.
type MongoDocumentStore struct {
	db     *mongo.Database
	logger logger.Logger
}

// NewMongoDocumentStore creates a new MongoDB document store
func NewMongoDocumentStore(db *mongo.Database, log logger.Logger) *MongoDocumentStore {
	return &MongoDocumentStore{
		db:     db,
		logger: log,
	}
}

// itemDocument carries the raw _id alongside the item fields during decoding.
type itemDocument struct {
	OID              interface{} `bson:"_id"`
	model.ItemRecord `bson:",inline"`
}

// ListCollection returns every document of the named item collection.
func (s *MongoDocumentStore) ListCollection(ctx context.Context, name string) ([]model.ItemRecord, error) {
	if !model.KnownCollection(name) {
		return nil, errors.NewValidationError(errors.ErrUnknownCollection.Error()).
			WithCause(errors.ErrUnknownCollection).
			WithDetail("collection", name)
	}

	cursor, err := s.db.Collection(name).Find(ctx, bson.M{})
	if err != nil {
		s.logger.Error("Failed to list collection",
			zap.String("collection", name),
			zap.Error(err))
		return nil, errors.NewCollaboratorError("document store unavailable").WithCause(err)
	}
	defer cursor.Close(ctx)

	items := make([]model.ItemRecord, 0)
	for cursor.Next(ctx) {
		var doc itemDocument
		if err := cursor.Decode(&doc); err != nil {
			s.logger.Error("Failed to decode document",
				zap.String("collection", name),
				zap.Error(err))
			return nil, errors.NewCollaboratorError("document store returned a malformed document").WithCause(err)
		}
		rec := doc.ItemRecord
		rec.ID = documentID(doc.OID)
		items = append(items, rec)
	}
	if err := cursor.Err(); err != nil {
		s.logger.Error("Cursor failed while listing collection",
			zap.String("collection", name),
			zap.Error(err))
		return nil, errors.NewCollaboratorError("document store unavailable").WithCause(err)
	}

	return items, nil
}

// DeleteDocument removes a single document by its store-assigned ID.
func (s *MongoDocumentStore) DeleteDocument(ctx context.Context, name, id string) error {
	if !model.KnownCollection(name) {
		return errors.NewValidationError(errors.ErrUnknownCollection.Error()).
			WithCause(errors.ErrUnknownCollection).
			WithDetail("collection", name)
	}

	res, err := s.db.Collection(name).DeleteOne(ctx, idFilter(id))
	if err != nil {
		s.logger.Error("Failed to delete document",
			zap.String("collection", name),
			zap.String("id", id),
			zap.Error(err))
		return errors.NewCollaboratorError("document store unavailable").WithCause(err)
	}
	if res.DeletedCount == 0 {
		return errors.ErrDocumentNotFound
	}

	return nil
}

// documentID renders the raw _id as the string record ID.
func documentID(oid interface{}) string {
	switch v := oid.(type) {
	case primitive.ObjectID:
		return v.Hex()
	case string:
		return v
	default:
		return fmt.Sprintf("%v", v)
	}
}

// idFilter matches documents whose _id is either the hex ObjectID or the
// plain string form of id.
func idFilter(id string) bson.M {
	if oid, err := primitive.ObjectIDFromHex(id); err == nil {
		return bson.M{"_id": bson.M{"$in": bson.A{oid, id}}}
	}
	return bson.M{"_id": id}
}
