package config

import (
	"testing"

	"lostfound-admin/internal/console/domain/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, model.CollectionLostItems, cfg.LostCollection)
	assert.Equal(t, model.CollectionFoundItems, cfg.FoundCollection)
	assert.Equal(t, "users", cfg.UsersCollection)
	assert.Equal(t, 0.55, cfg.MatchThreshold)
	assert.Equal(t, "/ws/dashboard", cfg.WebSocketPath)
}

func TestLoadConfig_ItemCollectionsAlwaysKnown(t *testing.T) {
	t.Setenv("LOST_ITEMS_COLLECTION", "somewhere_else")
	t.Setenv("FOUND_ITEMS_COLLECTION", "misc")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.True(t, model.KnownCollection(cfg.LostCollection))
	assert.True(t, model.KnownCollection(cfg.FoundCollection))
	assert.Equal(t, model.CollectionLostItems, cfg.LostCollection)
	assert.Equal(t, model.CollectionFoundItems, cfg.FoundCollection)
}

func TestLoadConfig_ThresholdOutOfRange(t *testing.T) {
	t.Setenv("MATCH_THRESHOLD", "1.5")

	_, err := LoadConfig()
	assert.Error(t, err)
}

func TestDefaultConsoleConfig_MatchesKnownCollections(t *testing.T) {
	cfg := DefaultConsoleConfig()
	assert.True(t, model.KnownCollection(cfg.LostCollection))
	assert.True(t, model.KnownCollection(cfg.FoundCollection))
}
