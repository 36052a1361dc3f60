package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadFixedValues(t *testing.T) {
	cfg := Load()

	assert.Equal(t, "127.0.0.1:3000", cfg.Server.Addr())
	assert.Equal(t, "web", cfg.Assets.Root)
	assert.Positive(t, cfg.Server.ReadTimeout)
	assert.Positive(t, cfg.Server.WriteTimeout)
	assert.Positive(t, cfg.Server.IdleTimeout)
	assert.Positive(t, cfg.Server.ShutdownTimeout)
}
