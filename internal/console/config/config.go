package config

import (
	"errors"

	"lostfound-admin/internal/console/domain/model"

	"github.com/caarlos0/env/v6"
)

// CloudinaryConfig holds the credentials for the image store collaborator.
type CloudinaryConfig struct {
	CloudName string `env:"CLOUDINARY_CLOUD_NAME"`
	APIKey    string `env:"CLOUDINARY_API_KEY"`
	APISecret string `env:"CLOUDINARY_API_SECRET"`
}

// Enabled reports whether image deletion is configured at all.
func (c *CloudinaryConfig) Enabled() bool {
	return c.CloudName != "" && c.APIKey != "" && c.APISecret != ""
}

// ConsoleConfig holds all configuration for the console module.
type ConsoleConfig struct {
	// The item collection names are fixed to the set the document store
	// serves, so they are not environment knobs.
	LostCollection  string
	FoundCollection string

	UsersCollection string  `env:"USERS_COLLECTION" envDefault:"users"`
	MatchThreshold  float64 `env:"MATCH_THRESHOLD" envDefault:"0.55"`

	// WebSocketPath is the endpoint path for the live dashboard stream.
	WebSocketPath string `env:"DASHBOARD_WS_PATH" envDefault:"/ws/dashboard"`

	Cloudinary CloudinaryConfig
}

// LoadConfig loads configuration from environment variables and applies defaults.
func LoadConfig() (*ConsoleConfig, error) {
	cfg := &ConsoleConfig{}

	if err := env.Parse(cfg); err != nil {
		return nil, errors.New("failed to load console configuration from environment: " + err.Error())
	}
	if err := env.Parse(&cfg.Cloudinary); err != nil {
		return nil, errors.New("failed to load cloudinary configuration from environment: " + err.Error())
	}

	if cfg.MatchThreshold < 0 || cfg.MatchThreshold > 1 {
		return nil, errors.New("MATCH_THRESHOLD must be within [0, 1]")
	}
	if cfg.WebSocketPath == "" {
		cfg.WebSocketPath = "/ws/dashboard"
	}

	cfg.LostCollection = model.CollectionLostItems
	cfg.FoundCollection = model.CollectionFoundItems

	return cfg, nil
}

// DefaultConsoleConfig returns a ConsoleConfig with default values.
func DefaultConsoleConfig() *ConsoleConfig {
	return &ConsoleConfig{
		LostCollection:  model.CollectionLostItems,
		FoundCollection: model.CollectionFoundItems,
		UsersCollection: "users",
		MatchThreshold:  0.55,
		WebSocketPath:   "/ws/dashboard",
	}
}
