package config

import (
	"errors"
	"strings"
	"time"

	"github.com/caarlos0/env/v6"
)

// Config holds all configuration for the admin session module.
type Config struct {
	// MongoDB Configuration
	MongoDBURI   string `env:"MONGODB_URI,required"`
	DatabaseName string `env:"DATABASE_NAME" envDefault:"lostfound_admin_db"`

	// Session token configuration
	JWTSecretKey string        `env:"JWT_SECRET_KEY,required"`
	JWTIssuer    string        `env:"JWT_ISSUER" envDefault:"lostfound-admin-console"`
	SessionTTL   time.Duration `env:"SESSION_TTL" envDefault:"12h"`

	// Cookie Configuration
	CookieName     string `env:"COOKIE_NAME" envDefault:"lf_admin_session"`
	CookiePath     string `env:"COOKIE_PATH" envDefault:"/"`
	CookieDomain   string `env:"COOKIE_DOMAIN" envDefault:""`
	CookieSecure   bool   `env:"COOKIE_SECURE" envDefault:"false"` // Set to true in production
	CookieHTTPOnly bool   `env:"COOKIE_HTTP_ONLY" envDefault:"true"`
	CookieSameSite string `env:"COOKIE_SAME_SITE" envDefault:"Lax"` // "Lax", "Strict", "None"

	// AdminCredentials is the static staff credential table as
	// comma-separated "email:secret" pairs. A secret may be a bcrypt hash
	// (recommended) or a plain value for local development.
	AdminCredentials string `env:"ADMIN_CREDENTIALS,required"`

	// Redis session store
	Redis RedisConfig
}

// RedisConfig holds the connection settings for the Redis session store.
type RedisConfig struct {
	Host         string `env:"REDIS_HOST" envDefault:"localhost"`
	Port         string `env:"REDIS_PORT" envDefault:"6379"`
	Password     string `env:"REDIS_PASSWORD" envDefault:""`
	Database     int    `env:"REDIS_DATABASE" envDefault:"0"`
	MaxRetries   int    `env:"REDIS_MAX_RETRIES" envDefault:"3"`
	PoolSize     int    `env:"REDIS_POOL_SIZE" envDefault:"10"`
	MinIdleConns int    `env:"REDIS_MIN_IDLE_CONNS" envDefault:"2"`
	EnableTLS    bool   `env:"REDIS_ENABLE_TLS" envDefault:"false"`
}

// GetAddr returns the host:port address of the Redis server.
func (c *RedisConfig) GetAddr() string {
	return c.Host + ":" + c.Port
}

// LoadConfig loads configuration from environment variables and applies defaults.
func LoadConfig() (*Config, error) {
	cfg := &Config{}

	if err := env.Parse(cfg); err != nil {
		return nil, errors.New("failed to load configuration from environment: " + err.Error() +
			". Please ensure all required environment variables are set.")
	}
	if err := env.Parse(&cfg.Redis); err != nil {
		return nil, errors.New("failed to load redis configuration from environment: " + err.Error())
	}

	if cfg.JWTSecretKey == "" {
		return nil, errors.New("jwt_secret_key is required")
	}
	if cfg.MongoDBURI == "" {
		return nil, errors.New("mongodb_uri is required")
	}
	if len(cfg.Credentials()) == 0 {
		return nil, errors.New("admin_credentials must contain at least one email:secret pair")
	}
	if cfg.SessionTTL <= 0 {
		cfg.SessionTTL = 12 * time.Hour
	}

	// Normalize and validate CookieSameSite
	cfg.CookieSameSite = normalizeSameSite(cfg.CookieSameSite)
	if !(cfg.CookieSameSite == "Lax" || cfg.CookieSameSite == "Strict" || cfg.CookieSameSite == "None") {
		return nil, errors.New("cookie_same_site must be one of 'Lax', 'Strict', or 'None'")
	}

	return cfg, nil
}

// Credentials parses the static credential table into an email -> secret map.
// Emails are lower-cased; malformed pairs are skipped. Only the first colon
// separates email from secret, so secrets may contain colons.
func (c *Config) Credentials() map[string]string {
	table := make(map[string]string)
	for _, pair := range strings.Split(c.AdminCredentials, ",") {
		pair = strings.TrimSpace(pair)
		if pair == "" {
			continue
		}
		idx := strings.Index(pair, ":")
		if idx <= 0 || idx == len(pair)-1 {
			continue
		}
		email := strings.ToLower(strings.TrimSpace(pair[:idx]))
		table[email] = pair[idx+1:]
	}
	return table
}

func normalizeSameSite(v string) string {
	v = strings.ToLower(strings.TrimSpace(v))
	if v == "" {
		return "Lax"
	}
	return strings.ToUpper(v[:1]) + v[1:]
}
