package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	t.Setenv("MONGODB_URI", "mongodb://localhost:27017/testdb")
	t.Setenv("MONGODB_DATABASE", "courses_test")
	t.Setenv("REDIS_HOST", "localhost")
	t.Setenv("RATE_LIMIT_ENABLED", "true")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	require.Equal(t, StoreMongo, cfg.Catalog.Store)
	require.Equal(t, "courses_test", cfg.MongoDB.Database)
	require.Equal(t, "courses", cfg.MongoDB.Collection)
	require.Equal(t, 10*time.Second, cfg.MongoDB.Timeout)
	require.Equal(t, "6379", cfg.Redis.Port)
	require.True(t, cfg.RateLimit.Enabled)
	require.Equal(t, 10.0, cfg.RateLimit.RPS)
	require.Equal(t, "0.0.0.0:5001", cfg.Server.Addr())
}

func TestLoadConfigLegacyMongoURL(t *testing.T) {
	t.Setenv("MONGODB_URI", "")
	t.Setenv("MONGO_URL", "mongodb://legacy:27017")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	require.Equal(t, "mongodb://legacy:27017", cfg.MongoDB.URI)
}

func TestLoadConfigRequiresMongoURI(t *testing.T) {
	t.Setenv("MONGODB_URI", "")
	t.Setenv("MONGO_URL", "")
	t.Setenv("CATALOG_STORE", "mongo")

	_, err := LoadConfig()
	require.Error(t, err)

	t.Setenv("CATALOG_STORE", "memory")
	cfg, err := LoadConfig()
	require.NoError(t, err)
	require.Equal(t, StoreMemory, cfg.Catalog.Store)
}

func TestLoadConfigRejectsUnknownStore(t *testing.T) {
	t.Setenv("CATALOG_STORE", "dynamo")
	_, err := LoadConfig()
	require.ErrorContains(t, err, "dynamo")
}

func TestKeycloakIssuer(t *testing.T) {
	require.Equal(t, "", KeycloakConfig{}.Issuer())
	require.Equal(t, "https://kc.example", KeycloakConfig{URL: "https://kc.example"}.Issuer())
	require.Equal(t, "https://kc.example/realms/cwru", KeycloakConfig{URL: "https://kc.example/", Realm: "cwru"}.Issuer())
}
