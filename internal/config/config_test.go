package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
server:
  host: "127.0.0.1"
  port: 9000
redis:
  enabled: true
  addr: "redis:6379"
game:
  round_time: 60
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1", cfg.Server.Host)
	assert.Equal(t, 9000, cfg.Server.Port)
	assert.True(t, cfg.Redis.Enabled)
	assert.Equal(t, "redis:6379", cfg.Redis.Addr)
	assert.Equal(t, 60, cfg.Game.RoundTime)

	// Omitted fields fall back to defaults
	assert.Equal(t, "static", cfg.Server.StaticDir)
	assert.Equal(t, 1024, cfg.Server.MaxConnections)
	assert.Equal(t, "words.txt", cfg.Game.WordsFile)
}

func TestLoad_MissingFile(t *testing.T) {
	t.Parallel()

	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestDefault(t *testing.T) {
	t.Parallel()

	cfg := Default()
	assert.Equal(t, 7860, cfg.Server.Port)
	assert.Equal(t, 80, cfg.Game.RoundTime)
	assert.False(t, cfg.Redis.Enabled)
	assert.Equal(t, 80*time.Second, cfg.Game.RoundTimeDuration())
}
