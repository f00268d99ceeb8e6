package repository

import (
	"context"

	"lostfound-admin/internal/console/domain/model"
)

// DocumentStore is the narrow interface over the managed document database.
// Implementations absorb nothing: failures surface as errors and callers at
// the usecase boundary decide how to degrade.
type DocumentStore interface {
	// ListCollection returns every document of one of the item collections.
	ListCollection(ctx context.Context, name string) ([]model.ItemRecord, error)
	// DeleteDocument removes a single document by store-assigned ID.
	DeleteDocument(ctx context.Context, name, id string) error
}

// UserDirectory exposes the external auth directory of end-user accounts.
type UserDirectory interface {
	ListUsers(ctx context.Context) ([]model.UserRecord, error)
	SetUserDisabled(ctx context.Context, uid string, disabled bool) error
}

// ImageStore deletes stored item images by their public ID.
type ImageStore interface {
	DeleteImage(ctx context.Context, publicID string) error
}
