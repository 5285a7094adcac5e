package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMustLoad_ValidConfig(t *testing.T) {
	configContent := `
env: test
mongo_connection:
  uri: "mongodb://localhost:27017"
  database: "recipes"
  users_collection: "users"
  recipes_collection: "recipes"
  timeout: 5s
redis_connection:
  addressredis: "localhost:6379"
  password: "redis_pass"
  user: "redis_user"
  db: 1
  max_retries: 3
  dial_timeout: 5s
  timeoutredis: 10s
http_server:
  addresshttp: ":8080"
  timeouthttp: 30s
  idle_timeout: 60s
session:
  secret_key: "test_secret_key"
  session_ttl: 24h
cors:
  allowed_origins:
    - "http://localhost:3000"
`

	tmpFile, err := os.CreateTemp("", "test_config_*.yaml")
	require.NoError(t, err)
	defer func() {
		err = os.Remove(tmpFile.Name())
		require.NoError(t, err)
	}()

	_, err = tmpFile.WriteString(configContent)
	require.NoError(t, err)
	err = tmpFile.Close()
	require.NoError(t, err)

	originalPath := os.Getenv("CONFIG_PATH")
	defer func() {
		err = os.Setenv("CONFIG_PATH", originalPath)
		require.NoError(t, err)
	}()

	err = os.Setenv("CONFIG_PATH", tmpFile.Name())
	require.NoError(t, err)

	cfg := MustLoad()

	assert.Equal(t, "test", cfg.Env)
	assert.Equal(t, "mongodb://localhost:27017", cfg.URI)
	assert.Equal(t, "recipes", cfg.Database)
	assert.Equal(t, "users", cfg.UsersCollection)
	assert.Equal(t, "recipes", cfg.RecipesCollection)
	assert.Equal(t, 5*time.Second, cfg.TimeoutMongo)
	assert.Equal(t, "localhost:6379", cfg.AddressRedis)
	assert.Equal(t, "redis_pass", cfg.RedisConnection.Password)
	assert.Equal(t, "redis_user", cfg.RedisConnection.User)
	assert.Equal(t, 1, cfg.RedisConnection.DB)
	assert.Equal(t, 3, cfg.MaxRetries)
	assert.Equal(t, ":8080", cfg.AddressHTTP)
	assert.Equal(t, 30*time.Second, cfg.TimeoutHTTP)
	assert.Equal(t, 60*time.Second, cfg.IdleTimeout)
	assert.Equal(t, "test_secret_key", cfg.SecretKey)
	assert.Equal(t, 24*time.Hour, cfg.SessionTTL)
	assert.Equal(t, []string{"http://localhost:3000"}, cfg.CORS.AllowedOrigins)
}

func TestConfig_DefaultValues(t *testing.T) {
	configContent := `
env: test
session:
  secret_key: "test_secret"
`

	tmpFile, err := os.CreateTemp("", "test_config_*.yaml")
	require.NoError(t, err)
	defer func() {
		err = os.Remove(tmpFile.Name())
		require.NoError(t, err)
	}()

	_, err = tmpFile.WriteString(configContent)
	require.NoError(t, err)
	err = tmpFile.Close()
	require.NoError(t, err)

	originalPath := os.Getenv("CONFIG_PATH")
	defer func() {
		err = os.Setenv("CONFIG_PATH", originalPath)
		require.NoError(t, err)
	}()

	err = os.Setenv("CONFIG_PATH", tmpFile.Name())
	require.NoError(t, err)

	cfg := MustLoad()

	assert.Equal(t, "mongodb://localhost:27017", cfg.URI)
	assert.Equal(t, "recipes", cfg.Database)
	assert.Equal(t, "users", cfg.UsersCollection)
	assert.Equal(t, 5*time.Second, cfg.TimeoutMongo)
	assert.Equal(t, ":8080", cfg.AddressHTTP)
	assert.Equal(t, 24*time.Hour, cfg.SessionTTL)
}
