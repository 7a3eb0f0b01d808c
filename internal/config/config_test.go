package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg := LoadConfig()
	require.NotNil(t, cfg)

	assert.Equal(t, DefaultAppEnv, cfg.AppEnv)
	assert.True(t, cfg.IsDevelopment())
	assert.Equal(t, ":"+DefaultPort, cfg.Addr())
	assert.Equal(t, []string{"*"}, cfg.AllowedOrigins)
	assert.True(t, cfg.SwaggerEnabled)
	assert.Equal(t, DefaultReadTimeout, cfg.HTTP.ReadTimeout)
	assert.Equal(t, DefaultWriteTimeout, cfg.HTTP.WriteTimeout)
	assert.Equal(t, DefaultIdleTimeout, cfg.HTTP.IdleTimeout)
	assert.Equal(t, DefaultShutdownTimeout, cfg.HTTP.ShutdownTimeout)
}

func TestLoadConfig_FromEnvironment(t *testing.T) {
	t.Setenv("APP_ENV", EnvProduction)
	t.Setenv("PORT", "9090")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example, https://b.example,")
	t.Setenv("SWAGGER_ENABLED", "false")
	t.Setenv("HTTP_WRITE_TIMEOUT", "45s")
	t.Setenv("SHUTDOWN_TIMEOUT", "3s")

	cfg := LoadConfig()

	assert.False(t, cfg.IsDevelopment())
	assert.Equal(t, ":9090", cfg.Addr())
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.AllowedOrigins)
	assert.False(t, cfg.SwaggerEnabled)
	assert.Equal(t, 45*time.Second, cfg.HTTP.WriteTimeout)
	assert.Equal(t, 3*time.Second, cfg.HTTP.ShutdownTimeout)
}

func TestLoadConfig_WriteTimeoutCoversMaxDelay(t *testing.T) {
	t.Setenv("HTTP_WRITE_TIMEOUT", "2s")

	cfg := LoadConfig()

	assert.Equal(t, MinWriteTimeout(), cfg.HTTP.WriteTimeout)
	assert.Greater(t, cfg.HTTP.WriteTimeout, 10*time.Second)
}

func TestLoadConfig_InvalidDurationFallsBack(t *testing.T) {
	t.Setenv("HTTP_IDLE_TIMEOUT", "-1s")

	cfg := LoadConfig()

	assert.Equal(t, DefaultIdleTimeout, cfg.HTTP.IdleTimeout)
}
