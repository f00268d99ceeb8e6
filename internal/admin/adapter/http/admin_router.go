package http

import (
	"time"

	"lostfound-admin/internal/admin/usecase"

	"github.com/gofiber/fiber/v2"
)

// AdminHTTPHandler handles HTTP requests for staff authentication
type AdminHTTPHandler struct {
	usecase        usecase.AdminUsecaseInterface
	cookieName     string
	cookiePath     string
	cookieDomain   string
	cookieMaxAge   int
	cookieSecure   bool
	cookieHTTPOnly bool
	cookieSameSite string
}

// NewAdminHTTPHandler creates a new staff authentication HTTP handler
func NewAdminHTTPHandler(
	uc usecase.AdminUsecaseInterface,
	cookieName, cookiePath, cookieDomain string,
	cookieMaxAge int,
	cookieSecure, cookieHTTPOnly bool,
	cookieSameSite string,
) *AdminHTTPHandler {
	return &AdminHTTPHandler{
		usecase:        uc,
		cookieName:     cookieName,
		cookiePath:     cookiePath,
		cookieDomain:   cookieDomain,
		cookieMaxAge:   cookieMaxAge,
		cookieSecure:   cookieSecure,
		cookieHTTPOnly: cookieHTTPOnly,
		cookieSameSite: cookieSameSite,
	}
}

// SetupAuthRoutesWithMiddleware sets up authentication routes with middleware
func (h *AdminHTTPHandler) SetupAuthRoutesWithMiddleware(router fiber.Router, middleware *AdminMiddleware) {
	// Public routes (login is rate limited)
	router.Post("/login", middleware.RateLimiter(), h.Login)

	// Protected routes
	protected := router.Group("/", middleware.Protect())
	protected.Post("/logout", h.Logout)
	protected.Get("/me", h.GetCurrentAdmin)
}

// Login handles staff login against the static credential table
func (h *AdminHTTPHandler) Login(c *fiber.Ctx) error {
	var req usecase.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	session, token, err := h.usecase.Login(c.Context(), req)
	if err != nil {
		if err == usecase.ErrInvalidCredentials {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Invalid email or password",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Login failed",
		})
	}

	h.setCookie(c, token)

	return c.JSON(fiber.Map{
		"message":   "Login successful",
		"email":     session.Email,
		"expiresAt": session.ExpiresAt,
	})
}

// Logout handles staff logout and session revocation
func (h *AdminHTTPHandler) Logout(c *fiber.Ctx) error {
	token, err := extractToken(c, h.cookieName)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Unauthorized",
		})
	}

	if err := h.usecase.Logout(c.Context(), token); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	h.clearCookie(c)

	return c.JSON(fiber.Map{
		"message": "Logged out successfully",
	})
}

// GetCurrentAdmin returns the authenticated staff identity
func (h *AdminHTTPHandler) GetCurrentAdmin(c *fiber.Ctx) error {
	token, err := extractToken(c, h.cookieName)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Unauthorized",
		})
	}

	claims, err := h.usecase.ValidateSession(c.Context(), token)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Invalid session",
		})
	}

	return c.JSON(fiber.Map{
		"email":     claims.Email,
		"sessionId": claims.SessionID,
	})
}

// setCookie sets the session cookie
func (h *AdminHTTPHandler) setCookie(c *fiber.Ctx, token string) {
	c.Cookie(&fiber.Cookie{
		Name:     h.cookieName,
		Value:    token,
		Path:     h.cookiePath,
		Domain:   h.cookieDomain,
		MaxAge:   h.cookieMaxAge,
		Secure:   h.cookieSecure,
		HTTPOnly: h.cookieHTTPOnly,
		SameSite: h.cookieSameSite,
	})
}

// clearCookie removes the session cookie
func (h *AdminHTTPHandler) clearCookie(c *fiber.Ctx) {
	c.Cookie(&fiber.Cookie{
		Name:     h.cookieName,
		Value:    "",
		Path:     h.cookiePath,
		Domain:   h.cookieDomain,
		Expires:  time.Now().Add(-time.Hour),
		MaxAge:   -1,
		Secure:   h.cookieSecure,
		HTTPOnly: h.cookieHTTPOnly,
		SameSite: h.cookieSameSite,
	})
}
