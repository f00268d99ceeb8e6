package http

import (
	"context"
	"strings"
	"time"

	"lostfound-admin/internal/admin/usecase"
	"lostfound-admin/internal/shared/contextkeys"
	"lostfound-admin/internal/shared/errors"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/requestid"
)

// AdminMiddleware provides authentication middleware for Fiber
type AdminMiddleware struct {
	usecase    usecase.AdminUsecaseInterface
	cookieName string
}

// NewAdminMiddleware creates a new authentication middleware
func NewAdminMiddleware(uc usecase.AdminUsecaseInterface, cookieName string) *AdminMiddleware {
	return &AdminMiddleware{
		usecase:    uc,
		cookieName: cookieName,
	}
}

// RateLimiter creates rate limiting middleware for the login endpoint
func (m *AdminMiddleware) RateLimiter() fiber.Handler {
	return limiter.New(limiter.Config{
		Max:               10,              // 10 requests
		Expiration:        1 * time.Minute, // per minute
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.Get("X-Forwarded-For", c.IP())
		},
		LimitReached: func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
				"error": "Rate limit exceeded. Please try again later.",
			})
		},
	})
}

// RequestID middleware
func (m *AdminMiddleware) RequestID() fiber.Handler {
	return requestid.New(requestid.Config{
		Header:     "X-Request-ID",
		ContextKey: string(contextkeys.RequestIDKey),
	})
}

// Protect returns middleware that requires a live admin session
func (m *AdminMiddleware) Protect() fiber.Handler {
	return func(c *fiber.Ctx) error {
		token, err := extractToken(c, m.cookieName)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Authentication required",
			})
		}

		claims, err := m.usecase.ValidateSession(c.Context(), token)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Invalid session",
			})
		}

		ctx := c.UserContext()
		ctx = context.WithValue(ctx, contextkeys.AdminEmailKey, claims.Email)
		ctx = context.WithValue(ctx, contextkeys.SessionIDKey, claims.SessionID)
		c.SetUserContext(ctx)

		return c.Next()
	}
}

// extractToken pulls the session token from the cookie, falling back to an
// Authorization bearer header for API clients.
func extractToken(c *fiber.Ctx, cookieName string) (string, error) {
	if cookie := c.Cookies(cookieName); cookie != "" {
		return cookie, nil
	}

	authHeader := c.Get("Authorization")
	if strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimPrefix(authHeader, "Bearer "), nil
	}

	return "", errors.ErrInvalidToken
}
