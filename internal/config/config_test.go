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
app:
  name: "btube-test"
  version: "0.0.1"
  mode: "release"
  port: 8123

database:
  host: "db.internal"
  port: 5432
  user: "btube"
  password: "secret"
  dbname: "btube_test"
  sslmode: "disable"

redis:
  host: "cache.internal"
  port: 6380
  db: 2

monetize:
  rpm: 1.8
  creator_share: 0.6
  min_payout: 5.0
  currency: "USD"
  site_name: "BanglaTube"
  view_window_seconds: 21600

jwt:
  secret: "test-secret"
  expire_hours: 12

log:
  level: "debug"
  format: "console"
  output: "stdout"
`

func writeTestConfig(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(testConfigYAML), 0644))
	return path
}

func TestLoad(t *testing.T) {
	cfg, err := Load(writeTestConfig(t))
	require.NoError(t, err)

	assert.Equal(t, "btube-test", cfg.App.Name)
	assert.Equal(t, 8123, cfg.App.Port)
	assert.Equal(t, "release", cfg.App.Mode)

	assert.Equal(t, 1.8, cfg.Monetize.RPM)
	assert.Equal(t, 0.6, cfg.Monetize.CreatorShare)
	assert.Equal(t, 5.0, cfg.Monetize.MinPayout)
	assert.Equal(t, "USD", cfg.Monetize.Currency)
	assert.Equal(t, "BanglaTube", cfg.Monetize.SiteName)

	assert.Equal(t, "test-secret", cfg.JWT.Secret)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestDatabaseDSN(t *testing.T) {
	cfg, err := Load(writeTestConfig(t))
	require.NoError(t, err)

	dsn := cfg.Database.DSN()
	assert.Contains(t, dsn, "host=db.internal")
	assert.Contains(t, dsn, "dbname=btube_test")
	assert.Contains(t, dsn, "sslmode=disable")
}

func TestRedisAddr(t *testing.T) {
	cfg, err := Load(writeTestConfig(t))
	require.NoError(t, err)

	assert.Equal(t, "cache.internal:6380", cfg.Redis.Addr())
}

func TestDurationHelpers(t *testing.T) {
	cfg, err := Load(writeTestConfig(t))
	require.NoError(t, err)

	assert.Equal(t, 6*time.Hour, cfg.Monetize.ViewWindow())
	assert.Equal(t, 12*time.Hour, cfg.JWT.ExpireDuration())
}

func TestGlobalAccessors(t *testing.T) {
	cfg, err := Load(writeTestConfig(t))
	require.NoError(t, err)

	assert.Same(t, cfg, Get())
	assert.Equal(t, &cfg.Monetize, GetMonetize())
	assert.Equal(t, &cfg.JWT, GetJWT())
}
