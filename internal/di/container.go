package di

import (
	"context"
	"fmt"
	"sync"
	"time"

	"lostfound-admin/internal/admin"
	adminconfig "lostfound-admin/internal/admin/config"
	"lostfound-admin/internal/console"
	consoleconfig "lostfound-admin/internal/console/config"
	"lostfound-admin/internal/shared/logger"

	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
)

// Container represents a dependency injection container with proper lifecycle management
type Container struct {
	mu sync.RWMutex
	// Module instances
	AdminModule   *admin.AdminModule
	ConsoleModule *console.ConsoleModule
	// External connections
	MongoDB     *mongo.Database
	RedisClient *redis.Client
	// Configuration
	AdminConfig   *adminconfig.Config
	ConsoleConfig *consoleconfig.ConsoleConfig
	// Logger
	Logger logger.Logger
}

// NewContainer creates a new DI container
func NewContainer() *Container {
	return &Container{}
}

// InitializeAdmin initializes the staff authentication module backed by Redis
// sessions.
func (c *Container) InitializeAdmin(redisClient *redis.Client, cfg *adminconfig.Config) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.RedisClient = redisClient
	c.AdminConfig = cfg

	if c.Logger == nil {
		c.Logger = logger.NewLogger()
	}

	adminModule, err := admin.NewAdminModule(redisClient, cfg, c.Logger)
	if err != nil {
		return fmt.Errorf("failed to create admin module: %w", err)
	}

	c.AdminModule = adminModule
	return nil
}

// InitializeConsole initializes the console module. The admin module must be
// initialized first so console routes can be protected.
func (c *Container) InitializeConsole(mongoDB *mongo.Database, cfg *consoleconfig.ConsoleConfig) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.AdminModule == nil {
		return fmt.Errorf("admin module must be initialized before console module")
	}
	if mongoDB == nil {
		return fmt.Errorf("MongoDB must be initialized before console module")
	}

	c.MongoDB = mongoDB
	c.ConsoleConfig = cfg

	if c.Logger == nil {
		c.Logger = logger.NewLogger()
	}

	c.ConsoleModule = console.NewConsoleModule(mongoDB, cfg, c.Logger)
	return nil
}

// GetAdminModule returns the admin module instance
func (c *Container) GetAdminModule() *admin.AdminModule {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.AdminModule
}

// GetConsoleModule returns the console module instance
func (c *Container) GetConsoleModule() *console.ConsoleModule {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.ConsoleModule
}

// HealthCheck pings the external connections the modules depend on.
func (c *Container) HealthCheck(ctx context.Context) error {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.MongoDB != nil {
		if err := c.MongoDB.Client().Ping(ctx, nil); err != nil {
			return fmt.Errorf("MongoDB health check failed: %w", err)
		}
	}

	if c.RedisClient != nil {
		if err := c.RedisClient.Ping(ctx).Err(); err != nil {
			return fmt.Errorf("Redis health check failed: %w", err)
		}
	}

	return nil
}

// Cleanup performs cleanup of registered services with proper shutdown order
func (c *Container) Cleanup(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	var errs []error

	// Modules shut down in reverse order of initialization
	if c.ConsoleModule != nil {
		c.ConsoleModule = nil
	}

	if c.AdminModule != nil {
		c.AdminModule.Stop()
		c.AdminModule = nil
	}

	if c.RedisClient != nil {
		if err := c.RedisClient.Close(); err != nil {
			errs = append(errs, fmt.Errorf("failed to close Redis client: %w", err))
		}
		c.RedisClient = nil
	}

	if len(errs) > 0 {
		return fmt.Errorf("cleanup errors: %v", errs)
	}

	return nil
}

// Close gracefully shuts down all services in the container with timeout
func (c *Container) Close() error {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := c.Cleanup(ctx); err != nil {
		if c.Logger != nil {
			c.Logger.Warnf("Cleanup errors occurred: %v", err)
		}
		return err
	}

	return nil
}
