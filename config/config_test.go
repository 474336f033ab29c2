package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testConfigYAML = `
env:
  env: test
  serviceName: stampcard
  debug: true
http:
  port: 8080
secretKey:
  access: test_access_secret
loyalty:
  allowGuestLogin: true
  maxStamps: 10
  reviewMaxLength: 100
  accessTokenTtl: 12h
`

func writeTestConfig(t *testing.T) string {
	t.Helper()

	// LoadWithEnv joins extra paths onto the working directory, so the
	// fixture has to live under it.
	dir, err := os.MkdirTemp(".", "configtest")
	require.NoError(t, err)
	t.Cleanup(func() { os.RemoveAll(dir) })

	err = os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(testConfigYAML), 0o600)
	require.NoError(t, err)

	return filepath.Base(dir)
}

func TestLoadWithEnv(t *testing.T) {
	dir := writeTestConfig(t)

	cfg, err := LoadWithEnv[Config]("config", dir)
	require.NoError(t, err)

	assert.Equal(t, "test", cfg.Env.Env)
	assert.Equal(t, "stampcard", cfg.Env.ServiceName)
	assert.True(t, cfg.Env.Debug)
	assert.Equal(t, 8080, cfg.HTTP.Port)
	assert.Equal(t, "test_access_secret", cfg.SecretKey.Access)
	assert.True(t, cfg.Loyalty.AllowGuestLogin)
	assert.Equal(t, 10, cfg.Loyalty.MaxStamps)
	assert.Equal(t, 100, cfg.Loyalty.ReviewMaxLength)
	assert.Equal(t, 12*time.Hour, cfg.Loyalty.AccessTokenTTL)
}

func TestLoadWithEnv_EnvOverride(t *testing.T) {
	dir := writeTestConfig(t)

	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("ENV_SERVICENAME", "stampcard-staging")

	cfg, err := LoadWithEnv[Config]("config", dir)
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.HTTP.Port)
	assert.Equal(t, "stampcard-staging", cfg.Env.ServiceName)
}

func TestLoadWithEnv_MissingFile(t *testing.T) {
	cfg, err := LoadWithEnv[Config]("nonexistent")
	assert.Error(t, err)
	assert.Nil(t, cfg)
}
