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
  host: 127.0.0.1
  port: 8080
redis:
  addr: redis:6379
game:
  guess_limit: 5
  common_cards: 10
  skip_ready_gate: true
  room_timeout: 5
cards:
  manifest: cards.json
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1", cfg.Server.Host)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "redis:6379", cfg.Redis.Addr)
	assert.Equal(t, 5, cfg.Game.GuessLimit)
	assert.Equal(t, 10, cfg.Game.CommonCards)
	assert.False(t, cfg.Game.RequireReady())
	assert.Equal(t, 5*time.Minute, cfg.Game.RoomTimeoutDuration())
	assert.Equal(t, "cards.json", cfg.Cards.Manifest)
}

func TestLoad_FillsDefaults(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("server:\n  port: 9000\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0", cfg.Server.Host)
	assert.Equal(t, 9000, cfg.Server.Port)
	assert.Equal(t, "localhost:6379", cfg.Redis.Addr)
	assert.Equal(t, 3, cfg.Game.GuessLimit)
	assert.Equal(t, 25, cfg.Game.CommonCards)
	assert.True(t, cfg.Game.RequireReady())
	assert.Equal(t, 30, cfg.Game.RoomTimeout)
	assert.Equal(t, 81, cfg.Cards.Count)
}

func TestLoad_MissingFile(t *testing.T) {
	t.Parallel()

	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestDefault(t *testing.T) {
	t.Parallel()

	cfg := Default()

	assert.Equal(t, 5000, cfg.Server.Port)
	assert.Equal(t, 3, cfg.Game.GuessLimit)
	assert.Equal(t, 25, cfg.Game.CommonCards)
	assert.True(t, cfg.Game.RequireReady())
	assert.Empty(t, cfg.Cards.Manifest)
}
