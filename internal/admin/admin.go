package admin

import (
	"fmt"

	adminhttp "lostfound-admin/internal/admin/adapter/http"
	redisstore "lostfound-admin/internal/admin/adapter/persistence/redis"
	"lostfound-admin/internal/admin/adapter/security"
	"lostfound-admin/internal/admin/config"
	"lostfound-admin/internal/admin/domain/repository"
	"lostfound-admin/internal/admin/usecase"
	"lostfound-admin/internal/shared/logger"

	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
)

// AdminModule represents the complete staff authentication module
type AdminModule struct {
	sessions   repository.SessionStore
	tokenSvc   repository.TokenService
	usecase    usecase.AdminUsecaseInterface
	handler    *adminhttp.AdminHTTPHandler
	middleware *adminhttp.AdminMiddleware
	config     *config.Config
}

// NewAdminModule creates a new staff authentication module instance
func NewAdminModule(redisClient *redis.Client, cfg *config.Config, log logger.Logger) (*AdminModule, error) {
	sessions := redisstore.NewSessionStore(redisClient, log.WithComponent("session_store"))

	tokenSvc, err := security.NewJWTokenService(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create token service: %w", err)
	}

	adminUsecase := usecase.NewAdminUsecase(cfg, tokenSvc, sessions)

	handler := adminhttp.NewAdminHTTPHandler(
		adminUsecase,
		cfg.CookieName,
		cfg.CookiePath,
		cfg.CookieDomain,
		int(cfg.SessionTTL.Seconds()),
		cfg.CookieSecure,
		cfg.CookieHTTPOnly,
		cfg.CookieSameSite,
	)

	middleware := adminhttp.NewAdminMiddleware(adminUsecase, cfg.CookieName)

	return &AdminModule{
		sessions:   sessions,
		tokenSvc:   tokenSvc,
		usecase:    adminUsecase,
		handler:    handler,
		middleware: middleware,
		config:     cfg,
	}, nil
}

// RegisterRoutes registers the authentication routes on the app
func (m *AdminModule) RegisterRoutes(app *fiber.App) {
	m.handler.SetupAuthRoutesWithMiddleware(app.Group("/"), m.middleware)
}

// GetUsecase returns the admin usecase for cross-module integration
func (m *AdminModule) GetUsecase() usecase.AdminUsecaseInterface {
	return m.usecase
}

// GetMiddleware returns the auth middleware so other modules can protect routes
func (m *AdminModule) GetMiddleware() *adminhttp.AdminMiddleware {
	return m.middleware
}

// Stop releases module resources
func (m *AdminModule) Stop() {
	// Sessions expire via Redis TTL; nothing to flush.
}
