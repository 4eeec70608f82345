package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_FromEnv(t *testing.T) {
	t.Setenv("MONGODB_URI", "mongodb://localhost:27017")
	t.Setenv("MONGODB_DB", "portfolio_test")
	t.Setenv("SERVER_PORT", "4000")
	t.Setenv("JWT_SECRET", "env-secret")
	t.Setenv("ADMIN_EMAIL", "admin@example.com")

	LoadConfig()
	t.Cleanup(func() { AppConfig = nil })

	require.NotNil(t, AppConfig)
	assert.Equal(t, "mongodb://localhost:27017", AppConfig.Database.URI)
	assert.Equal(t, "portfolio_test", AppConfig.Database.Name)
	assert.Equal(t, 4000, AppConfig.Server.Port)
	assert.Equal(t, "env-secret", AppConfig.JWT.Secret)
	assert.Equal(t, "admin@example.com", AppConfig.Admin.Email)

	// defaults fill the gaps
	assert.Equal(t, "development", AppConfig.Server.Env)
	assert.Equal(t, 7, AppConfig.JWT.TTLDays)
	assert.Equal(t, "local", AppConfig.Storage.Type)
}

func TestLoadConfig_FromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := []byte(`
server:
  port: 9090
  env: production
database:
  uri: mongodb://db:27017
  name: portfolio
jwt:
  secret: file-secret
  ttl_days: 14
storage:
  type: s3
  bucket: portfolio-assets
  region: eu-central-1
`)
	require.NoError(t, os.WriteFile(path, content, 0600))

	t.Setenv("MONGODB_URI", "")
	t.Setenv("CONFIG_PATH", path)

	LoadConfig()
	t.Cleanup(func() { AppConfig = nil })

	require.NotNil(t, AppConfig)
	assert.Equal(t, 9090, AppConfig.Server.Port)
	assert.Equal(t, "production", AppConfig.Server.Env)
	assert.Equal(t, "file-secret", AppConfig.JWT.Secret)
	assert.Equal(t, 14, AppConfig.JWT.TTLDays)
	assert.Equal(t, "s3", AppConfig.Storage.Type)
	assert.Equal(t, "./uploads", AppConfig.Storage.BasePath)
}
