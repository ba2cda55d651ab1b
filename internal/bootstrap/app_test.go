package bootstrap_test

import (
	"testing"

	"job-portal/internal/bootstrap"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	// Arrange: 只设置必需变量，其余取默认值
	t.Setenv("REDIS_ADDR", "localhost:6379")
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("CORS_ALLOWED_ORIGIN", "")

	// Act
	cfg, err := bootstrap.LoadConfig()

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "8080", cfg.ServerPort)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "development", cfg.AppEnv)
	assert.Equal(t, "jp:", cfg.KeyPrefix)
	assert.Equal(t, 24, cfg.JWTExpiryHours)
	// CORS 源在加载配置时解析一次，中间件闭包只读这个值
	assert.Equal(t, "http://localhost:3000", cfg.CORSAllowedOrigin, "缺省 CORS 源应为开发默认值")
}

func TestLoadConfig_CORSOriginFromEnv(t *testing.T) {
	// Arrange
	t.Setenv("REDIS_ADDR", "localhost:6379")
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("CORS_ALLOWED_ORIGIN", "https://jobs.example.com")

	// Act
	cfg, err := bootstrap.LoadConfig()

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "https://jobs.example.com", cfg.CORSAllowedOrigin)
}

func TestLoadConfig_RequiredVars(t *testing.T) {
	// Arrange: 缺少 JWT_SECRET
	t.Setenv("REDIS_ADDR", "localhost:6379")
	t.Setenv("JWT_SECRET", "")

	// Act
	_, err := bootstrap.LoadConfig()

	// Assert
	require.Error(t, err, "缺少 JWT_SECRET 时加载配置应失败")
	assert.Contains(t, err.Error(), "JWT_SECRET")
}
