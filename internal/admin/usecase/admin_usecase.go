package usecase

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"strings"
	"time"

	"lostfound-admin/internal/admin/config"
	"lostfound-admin/internal/admin/domain/model"
	"lostfound-admin/internal/admin/domain/repository"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrTokenInvalid       = errors.New("token is invalid")
	ErrSessionNotFound    = errors.New("session not found")
)

// AdminUsecaseInterface defines the contract for staff authentication.
type AdminUsecaseInterface interface {
	Login(ctx context.Context, req LoginRequest) (*model.Session, string, error)
	Logout(ctx context.Context, tokenString string) error
	ValidateSession(ctx context.Context, tokenString string) (*repository.Claims, error)
}

// LoginRequest represents the login request
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// AdminUsecase authenticates staff against the static credential table and
// manages their sessions. There is no registration: the table is fixed at
// configuration time.
type AdminUsecase struct {
	credentials map[string]string
	tokenSvc    repository.TokenService
	sessions    repository.SessionStore
	sessionTTL  time.Duration
	now         func() time.Time
}

// NewAdminUsecase creates a new instance of AdminUsecase.
func NewAdminUsecase(
	cfg *config.Config,
	tokenSvc repository.TokenService,
	sessions repository.SessionStore,
) *AdminUsecase {
	return &AdminUsecase{
		credentials: cfg.Credentials(),
		tokenSvc:    tokenSvc,
		sessions:    sessions,
		sessionTTL:  cfg.SessionTTL,
		now:         time.Now,
	}
}

// Login verifies the credentials, creates a session and returns it together
// with the signed session token.
func (uc *AdminUsecase) Login(ctx context.Context, req LoginRequest) (*model.Session, string, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))
	secret, ok := uc.credentials[email]
	if !ok || !verifySecret(secret, req.Password) {
		return nil, "", ErrInvalidCredentials
	}

	now := uc.now()
	session := &model.Session{
		ID:        uuid.New().String(),
		Email:     email,
		CreatedAt: now,
		ExpiresAt: now.Add(uc.sessionTTL),
	}

	if err := uc.sessions.SaveSession(ctx, session); err != nil {
		return nil, "", fmt.Errorf("failed to save session: %w", err)
	}

	token, err := uc.tokenSvc.GenerateToken(ctx, email, session.ID)
	if err != nil {
		return nil, "", fmt.Errorf("failed to generate token: %w", err)
	}

	return session, token, nil
}

// Logout invalidates the session referenced by the token.
func (uc *AdminUsecase) Logout(ctx context.Context, tokenString string) error {
	claims, err := uc.tokenSvc.ValidateToken(ctx, tokenString)
	if err != nil {
		return ErrTokenInvalid
	}

	if err := uc.sessions.DeleteSession(ctx, claims.SessionID); err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	return nil
}

// ValidateSession validates the token signature and checks the session is
// still live in the store, so revoked sessions fail even with a valid token.
func (uc *AdminUsecase) ValidateSession(ctx context.Context, tokenString string) (*repository.Claims, error) {
	claims, err := uc.tokenSvc.ValidateToken(ctx, tokenString)
	if err != nil {
		return nil, ErrTokenInvalid
	}

	session, err := uc.sessions.GetSession(ctx, claims.SessionID)
	if err != nil {
		return nil, ErrSessionNotFound
	}
	if session.Expired(uc.now()) {
		return nil, ErrSessionNotFound
	}

	return claims, nil
}

// verifySecret compares a presented password against a credential table
// entry. Bcrypt hashes are compared with bcrypt; anything else is treated as
// a plain development secret and compared in constant time.
func verifySecret(secret, password string) bool {
	if strings.HasPrefix(secret, "$2a$") || strings.HasPrefix(secret, "$2b$") || strings.HasPrefix(secret, "$2y$") {
		return bcrypt.CompareHashAndPassword([]byte(secret), []byte(password)) == nil
	}
	return subtle.ConstantTimeCompare([]byte(secret), []byte(password)) == 1
}

// Ensure AdminUsecase implements AdminUsecaseInterface
var _ AdminUsecaseInterface = (*AdminUsecase)(nil)
