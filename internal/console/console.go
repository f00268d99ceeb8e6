package console

import (
	adminhttp "lostfound-admin/internal/admin/adapter/http"
	consolehttp "lostfound-admin/internal/console/adapter/http"
	"lostfound-admin/internal/console/adapter/imagestore"
	"lostfound-admin/internal/console/adapter/persistence/mongodb"
	"lostfound-admin/internal/console/config"
	"lostfound-admin/internal/console/domain/repository"
	"lostfound-admin/internal/console/domain/service"
	"lostfound-admin/internal/console/usecase"
	"lostfound-admin/internal/shared/eventbus"
	"lostfound-admin/internal/shared/logger"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/mongo"
)

// ConsoleModule represents the complete admin console module
type ConsoleModule struct {
	store     repository.DocumentStore
	users     repository.UserDirectory
	images    repository.ImageStore
	usecase   usecase.ConsoleUsecaseInterface
	handler   *consolehttp.ConsoleHTTPHandler
	dashboard *consolehttp.DashboardWSHandler
	bus       eventbus.EventBusInterface
	config    *config.ConsoleConfig
}

// NewConsoleModule creates a new console module instance wired to the given
// database. Image deletion degrades to a no-op when Cloudinary credentials
// are absent.
func NewConsoleModule(db *mongo.Database, cfg *config.ConsoleConfig, log logger.Logger) *ConsoleModule {
	store := mongodb.NewMongoDocumentStore(db, log.WithComponent("document_store"))
	users := mongodb.NewMongoUserDirectory(db, cfg.UsersCollection, log.WithComponent("user_directory"))

	var images repository.ImageStore
	if cfg.Cloudinary.Enabled() {
		images = imagestore.NewCloudinaryImageStore(&cfg.Cloudinary, log.WithComponent("image_store"))
	} else {
		images = imagestore.NewNoopImageStore(log.WithComponent("image_store"))
	}

	bus := eventbus.NewEventBus(log.WithComponent("eventbus"))

	uc := usecase.NewConsoleUsecase(
		store,
		users,
		images,
		service.NewMatcher(),
		bus,
		cfg,
		log.WithComponent("console_usecase"),
	)

	handler := consolehttp.NewConsoleHTTPHandler(uc, log.WithComponent("console_http"))
	dashboard := consolehttp.NewDashboardWSHandler(uc, bus, log.WithComponent("dashboard_ws"))

	return &ConsoleModule{
		store:     store,
		users:     users,
		images:    images,
		usecase:   uc,
		handler:   handler,
		dashboard: dashboard,
		bus:       bus,
		config:    cfg,
	}
}

// RegisterRoutes registers console routes behind the staff session middleware.
// The dashboard stream is protected too; the session cookie rides along on the
// WebSocket handshake.
func (m *ConsoleModule) RegisterRoutes(app *fiber.App, middleware *adminhttp.AdminMiddleware) {
	m.handler.SetupConsoleRoutes(app.Group("/"), middleware)

	app.Use(m.config.WebSocketPath, middleware.Protect())
	m.dashboard.RegisterRoutes(app, m.config.WebSocketPath)
}

// GetUsecase returns the console usecase for cross-module integration
func (m *ConsoleModule) GetUsecase() usecase.ConsoleUsecaseInterface {
	return m.usecase
}

// GetEventBus returns the console event bus
func (m *ConsoleModule) GetEventBus() eventbus.EventBusInterface {
	return m.bus
}
