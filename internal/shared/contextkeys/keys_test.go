package contextkeys

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestContextKey_String(t *testing.T) {
	key := contextKey("testKey")
	assert.Equal(t, "lostfound-admin context key testKey", key.String())
}

func TestContextKeys_Usage(t *testing.T) {
	ctx := context.Background()
	ctx = context.WithValue(ctx, RequestIDKey, "req-456")
	ctx = context.WithValue(ctx, AdminEmailKey, "staff@example.com")
	ctx = context.WithValue(ctx, SessionIDKey, "sess-123")
	ctx = context.WithValue(ctx, CollectionKey, "lost_items")
	ctx = context.WithValue(ctx, ComponentKey, "component-logger")
	ctx = context.WithValue(ctx, OperationKey, "operation-delete")

	assert.Equal(t, "req-456", ctx.Value(RequestIDKey))
	assert.Equal(t, "staff@example.com", ctx.Value(AdminEmailKey))
	assert.Equal(t, "sess-123", ctx.Value(SessionIDKey))
	assert.Equal(t, "lost_items", ctx.Value(CollectionKey))
	assert.Equal(t, "component-logger", ctx.Value(ComponentKey))
	assert.Equal(t, "operation-delete", ctx.Value(OperationKey))
}

func TestContextKeys_NoCollisionWithStrings(t *testing.T) {
	ctx := context.WithValue(context.Background(), RequestIDKey, "req-1")
	assert.Nil(t, ctx.Value("requestID"))
}
