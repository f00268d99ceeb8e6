package redis

import (
	"context"
	"encoding/json"
	"time"

	"lostfound-admin/internal/admin/domain/model"
	"lostfound-admin/internal/shared/errors"
	"lostfound-admin/internal/shared/logger"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const sessionKeyPrefix = "admin_session:"

// SessionStore implements the admin session store using Redis with TTL-based
// expiry. Deleting the key revokes the session, so a logged-out cookie token
// stops working immediately.
type SessionStore struct {
	client *redis.Client
	logger logger.Logger
}

// NewSessionStore creates a new Redis-based session store
func NewSessionStore(client *redis.Client, log logger.Logger) *SessionStore {
	return &SessionStore{
		client: client,
		logger: log,
	}
}

// SaveSession stores a session under its ID with a TTL matching its expiry
func (s *SessionStore) SaveSession(ctx context.Context, session *model.Session) error {
	payload, err := json.Marshal(session)
	if err != nil {
		s.logger.Error("Failed to serialize session", zap.Error(err))
		return err
	}

	ttl := time.Until(session.ExpiresAt)
	if ttl <= 0 {
		return errors.NewValidationError("session is already expired")
	}

	if err := s.client.Set(ctx, sessionKeyPrefix+session.ID, payload, ttl).Err(); err != nil {
		s.logger.Error("Failed to store session in Redis",
			zap.String("sessionId", session.ID),
			zap.Error(err))
		return err
	}

	s.logger.Debug("Session stored",
		zap.String("sessionId", session.ID),
		zap.Duration("ttl", ttl))
	return nil
}

// GetSession retrieves a live session by ID
func (s *SessionStore) GetSession(ctx context.Context, sessionID string) (*model.Session, error) {
	payload, err := s.client.Get(ctx, sessionKeyPrefix+sessionID).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.ErrSessionNotFound
		}
		s.logger.Error("Failed to read session from Redis",
			zap.String("sessionId", sessionID),
			zap.Error(err))
		return nil, err
	}

	var session model.Session
	if err := json.Unmarshal(payload, &session); err != nil {
		s.logger.Error("Failed to deserialize session",
			zap.String("sessionId", sessionID),
			zap.Error(err))
		return nil, err
	}

	return &session, nil
}

// DeleteSession removes a session, revoking any token that references it
func (s *SessionStore) DeleteSession(ctx context.Context, sessionID string) error {
	if err := s.client.Del(ctx, sessionKeyPrefix+sessionID).Err(); err != nil {
		s.logger.Error("Failed to delete session from Redis",
			zap.String("sessionId", sessionID),
			zap.Error(err))
		return err
	}
	return nil
}
