package nest

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultServerConfig(t *testing.T) {
	t.Setenv("PORT", "")

	cfg := DefaultServerConfig()

	assert.Equal(t, "8080", cfg.Port)
	assert.Empty(t, cfg.Host)
	assert.True(t, cfg.EnableCORS)
	assert.True(t, cfg.EnableLogger)
	assert.True(t, cfg.EnableRecover)
	assert.True(t, cfg.EnableMetrics)
	assert.True(t, cfg.EnableHealth)
	assert.Equal(t, 30*time.Second, cfg.ShutdownTimeout)
	assert.Equal(t, ":8080", cfg.Addr())
}

func TestDefaultServerConfig_HonorsPort(t *testing.T) {
	t.Setenv("PORT", "9999")
	assert.Equal(t, "9999", DefaultServerConfig().Port)
}

func TestLoadServerConfig(t *testing.T) {
	t.Setenv("NEST_PORT", "3000")
	t.Setenv("NEST_HOST", "127.0.0.1")
	t.Setenv("NEST_CORS", "false")
	t.Setenv("NEST_SHUTDOWN_TIMEOUT", "5s")

	cfg, err := LoadServerConfig()
	require.NoError(t, err)

	assert.Equal(t, "3000", cfg.Port)
	assert.Equal(t, "127.0.0.1", cfg.Host)
	assert.False(t, cfg.EnableCORS)
	assert.True(t, cfg.EnableLogger)
	assert.Equal(t, 5*time.Second, cfg.ShutdownTimeout)
	assert.Equal(t, "127.0.0.1:3000", cfg.Addr())
}

func TestLoadServerConfig_PortFallback(t *testing.T) {
	t.Setenv("NEST_PORT", "")
	t.Setenv("PORT", "7777")

	cfg, err := LoadServerConfig()
	require.NoError(t, err)
	assert.Equal(t, "7777", cfg.Port)
}

func TestLoadServerConfig_Invalid(t *testing.T) {
	t.Setenv("NEST_CORS", "banana")
	_, err := LoadServerConfig()
	assert.Error(t, err)
}
