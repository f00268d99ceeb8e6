package repository

import (
	"context"

	"lostfound-admin/internal/admin/domain/model"
)

// SessionStore persists admin sessions for the lifetime of their TTL.
type SessionStore interface {
	SaveSession(ctx context.Context, session *model.Session) error
	GetSession(ctx context.Context, sessionID string) (*model.Session, error)
	DeleteSession(ctx context.Context, sessionID string) error
}
