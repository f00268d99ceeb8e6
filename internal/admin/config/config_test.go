package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCredentials_Parsing(t *testing.T) {
	cfg := &Config{AdminCredentials: "alice@example.com:secret1,bob@example.com:secret2"}

	table := cfg.Credentials()
	require.Len(t, table, 2)
	assert.Equal(t, "secret1", table["alice@example.com"])
	assert.Equal(t, "secret2", table["bob@example.com"])
}

func TestCredentials_LowercasesEmail(t *testing.T) {
	cfg := &Config{AdminCredentials: "Staff@Example.COM:pw"}
	table := cfg.Credentials()
	assert.Equal(t, "pw", table["staff@example.com"])
}

func TestCredentials_SecretMayContainColons(t *testing.T) {
	cfg := &Config{AdminCredentials: "a@example.com:$2b$10$abc:def"}
	table := cfg.Credentials()
	assert.Equal(t, "$2b$10$abc:def", table["a@example.com"])
}

func TestCredentials_SkipsMalformedPairs(t *testing.T) {
	cfg := &Config{AdminCredentials: "a@example.com:pw, ,no-colon,:leading,trailing:,b@example.com:pw2"}

	table := cfg.Credentials()
	require.Len(t, table, 2)
	assert.Contains(t, table, "a@example.com")
	assert.Contains(t, table, "b@example.com")
}

func TestCredentials_Empty(t *testing.T) {
	cfg := &Config{}
	assert.Empty(t, cfg.Credentials())
}

func TestNormalizeSameSite(t *testing.T) {
	assert.Equal(t, "Lax", normalizeSameSite(""))
	assert.Equal(t, "Lax", normalizeSameSite("lax"))
	assert.Equal(t, "Strict", normalizeSameSite("STRICT"))
	assert.Equal(t, "None", normalizeSameSite(" none "))
}

func TestRedisConfig_GetAddr(t *testing.T) {
	cfg := &RedisConfig{Host: "cache.internal", Port: "6380"}
	assert.Equal(t, "cache.internal:6380", cfg.GetAddr())
}

func TestLoadConfig_RequiresEnvironment(t *testing.T) {
	// Required variables are absent, so parsing must fail rather than
	// produce a half-initialized config.
	t.Setenv("MONGODB_URI", "")
	t.Setenv("JWT_SECRET_KEY", "")
	t.Setenv("ADMIN_CREDENTIALS", "")

	_, err := LoadConfig()
	assert.Error(t, err)
}

func TestLoadConfig_AppliesDefaults(t *testing.T) {
	t.Setenv("MONGODB_URI", "mongodb://localhost:27017")
	t.Setenv("JWT_SECRET_KEY", "unit-secret")
	t.Setenv("ADMIN_CREDENTIALS", "staff@example.com:pw")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "lostfound_admin_db", cfg.DatabaseName)
	assert.Equal(t, 12*time.Hour, cfg.SessionTTL)
	assert.Equal(t, "lf_admin_session", cfg.CookieName)
	assert.Equal(t, "Lax", cfg.CookieSameSite)
	assert.Equal(t, "localhost:6379", cfg.Redis.GetAddr())
}
