package security

import (
	"context"
	"testing"
	"time"

	"lostfound-admin/internal/admin/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(t *testing.T, ttl time.Duration) *JWTokenService {
	t.Helper()
	svc, err := NewJWTokenService(&config.Config{
		JWTSecretKey: "unit-test-secret",
		JWTIssuer:    "lostfound-admin-console",
		SessionTTL:   ttl,
	})
	require.NoError(t, err)
	return svc
}

func TestNewJWTokenService_Validation(t *testing.T) {
	_, err := NewJWTokenService(&config.Config{JWTIssuer: "x", SessionTTL: time.Hour})
	assert.Error(t, err)

	_, err = NewJWTokenService(&config.Config{JWTSecretKey: "s", SessionTTL: time.Hour})
	assert.Error(t, err)

	_, err = NewJWTokenService(&config.Config{JWTSecretKey: "s", JWTIssuer: "x"})
	assert.Error(t, err)
}

func TestGenerateAndValidateToken(t *testing.T) {
	svc := newTestService(t, time.Hour)
	ctx := context.Background()

	token, err := svc.GenerateToken(ctx, "staff@example.com", "sess-1")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.ValidateToken(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, "staff@example.com", claims.Email)
	assert.Equal(t, "sess-1", claims.SessionID)
	assert.Equal(t, "lostfound-admin-console", claims.Issuer)
}

func TestValidateToken_Empty(t *testing.T) {
	svc := newTestService(t, time.Hour)
	_, err := svc.ValidateToken(context.Background(), "")
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestValidateToken_Garbage(t *testing.T) {
	svc := newTestService(t, time.Hour)
	_, err := svc.ValidateToken(context.Background(), "not.a.token")
	assert.Error(t, err)
}

func TestValidateToken_WrongKey(t *testing.T) {
	svc := newTestService(t, time.Hour)
	other, err := NewJWTokenService(&config.Config{
		JWTSecretKey: "different-secret",
		JWTIssuer:    "lostfound-admin-console",
		SessionTTL:   time.Hour,
	})
	require.NoError(t, err)

	token, err := other.GenerateToken(context.Background(), "staff@example.com", "sess-1")
	require.NoError(t, err)

	_, err = svc.ValidateToken(context.Background(), token)
	assert.ErrorIs(t, err, ErrTokenSignatureInvalid)
}

func TestValidateToken_Expired(t *testing.T) {
	svc := newTestService(t, time.Nanosecond)

	token, err := svc.GenerateToken(context.Background(), "staff@example.com", "sess-1")
	require.NoError(t, err)

	time.Sleep(10 * time.Millisecond)

	_, err = svc.ValidateToken(context.Background(), token)
	assert.ErrorIs(t, err, ErrTokenExpired)
}
