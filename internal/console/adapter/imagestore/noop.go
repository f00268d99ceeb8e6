package imagestore

import (
	"context"

	"lostfound-admin/internal/shared/logger"

	"go.uber.org/zap"
)

// NoopImageStore is used when no image store is configured. Deletions are
// logged and reported as successful so document cleanup still proceeds.
type NoopImageStore struct {
	logger logger.Logger
}

// NewNoopImageStore creates an image store that skips deletions.
func NewNoopImageStore(log logger.Logger) *NoopImageStore {
	return &NoopImageStore{logger: log}
}

// DeleteImage logs the skipped deletion and returns nil.
func (s *NoopImageStore) DeleteImage(ctx context.Context, publicID string) error {
	s.logger.Warn("Image store not configured, skipping image deletion",
		zap.String("publicId", publicID))
	return nil
}
