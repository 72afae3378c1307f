package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

// 测试内容：验证配置文件的值覆盖默认值，未写的项使用默认值。
func TestLoad_FileAndDefaults(t *testing.T) {
	path := writeConfig(t, `
server:
  port: 9100
jwt:
  secret: file-secret
app:
  timezone: UTC
`)
	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 9100, cfg.Server.Port)
	assert.Equal(t, "0.0.0.0", cfg.Server.Address)
	assert.Equal(t, 10*time.Second, cfg.Server.ShutdownTimeout)
	assert.Equal(t, "sqlite", cfg.Database.Driver)
	assert.Equal(t, "file-secret", cfg.JWT.Secret)
	assert.Equal(t, 7, cfg.JWT.RememberDays)
	assert.Equal(t, 5, cfg.Security.MaxLoginAttempts)
	assert.Equal(t, 10, cfg.App.PageSize)
	assert.Equal(t, time.UTC, cfg.Location())
}

// 测试内容：验证环境变量可以覆盖配置文件。
func TestLoad_EnvOverride(t *testing.T) {
	path := writeConfig(t, "jwt:\n  secret: file-secret\n")
	t.Setenv("DAILY_SERVER_PORT", "9200")
	t.Setenv("DAILY_JWT_SECRET", "env-secret")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 9200, cfg.Server.Port)
	assert.Equal(t, "env-secret", cfg.JWT.Secret)
}

// 测试内容：验证缺少 JWT 密钥或驱动不支持时加载失败。
func TestLoad_ValidationErrors(t *testing.T) {
	_, err := Load(writeConfig(t, "server:\n  port: 9000\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "jwt.secret")

	_, err = Load(writeConfig(t, "jwt:\n  secret: s\ndatabase:\n  driver: oracle\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported database driver")

	_, err = Load(writeConfig(t, "jwt:\n  secret: s\ndatabase:\n  driver: mysql\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "database.dsn")
}

// 测试内容：验证指定的配置文件不存在时返回错误。
func TestLoad_MissingExplicitFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}
