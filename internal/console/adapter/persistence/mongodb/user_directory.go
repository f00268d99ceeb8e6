package mongodb

import (
	"context"

	"lostfound-admin/internal/console/domain/model"
	"lostfound-admin/internal/shared/errors"
	"lostfound-admin/internal/shared/logger"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// MongoUserDirectory implements the UserDirectory interface over the auth
// directory's users collection. The console reads accounts and toggles the
// disabled flag; account lifecycle stays with the directory owner.
type MongoUserDirectory struct {
	users  *mongo.Collection
	logger logger.Logger
}

// NewMongoUserDirectory creates a new MongoDB user directory adapter
func NewMongoUserDirectory(db *mongo.Database, collection string, log logger.Logger) *MongoUserDirectory {
	return &MongoUserDirectory{
		users:  db.Collection(collection),
		logger: log,
	}
}

// ListUsers returns every account in the directory.
func (d *MongoUserDirectory) ListUsers(ctx context.Context) ([]model.UserRecord, error) {
	cursor, err := d.users.Find(ctx, bson.M{})
	if err != nil {
		d.logger.Error("Failed to list users", zap.Error(err))
		return nil, errors.NewCollaboratorError("user directory unavailable").WithCause(err)
	}
	defer cursor.Close(ctx)

	users := make([]model.UserRecord, 0)
	if err := cursor.All(ctx, &users); err != nil {
		d.logger.Error("Failed to decode users", zap.Error(err))
		return nil, errors.NewCollaboratorError("user directory returned malformed accounts").WithCause(err)
	}

	return users, nil
}

// SetUserDisabled enables or disables sign-in for an account.
func (d *MongoUserDirectory) SetUserDisabled(ctx context.Context, uid string, disabled bool) error {
	res, err := d.users.UpdateOne(ctx,
		bson.M{"uid": uid},
		bson.M{"$set": bson.M{"disabled": disabled}},
	)
	if err != nil {
		d.logger.Error("Failed to update user status",
			zap.String("uid", uid),
			zap.Bool("disabled", disabled),
			zap.Error(err))
		return errors.NewCollaboratorError("user directory unavailable").WithCause(err)
	}
	if res.MatchedCount == 0 {
		return errors.ErrUserNotFound
	}

	return nil
}
