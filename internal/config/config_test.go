package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/saveliev/arena/internal/config"
)

func TestLoad_Defaults(t *testing.T) {
	// No config file in the test working directory: defaults apply.
	t.Setenv("CONFIG_ENV", "test")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "release", cfg.Mode)
	assert.Equal(t, 3000, cfg.Port)
	assert.Equal(t, "./public", cfg.StaticPath)
	assert.Equal(t, int64(32768), cfg.ReadLimit)
	assert.Equal(t, 54*time.Second, cfg.PingPeriod)
	assert.Equal(t, 32, cfg.SendBuffer)
	assert.Equal(t, 5, cfg.CreateLimit)
	assert.Equal(t, 10*time.Second, cfg.CreateWindow)
}
