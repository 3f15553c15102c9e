package common

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDefaultConfig(t *testing.T) {
	config := NewDefaultConfig()

	assert.Equal(t, "development", config.Environment)
	assert.Equal(t, 8080, config.Server.Port)
	assert.Equal(t, 50, config.Canvas.PageSize)
	assert.Equal(t, 30*time.Second, config.Canvas.RequestTimeout)
	assert.Equal(t, 1, config.Summarize.Concurrency)
	assert.Equal(t, LLMProviderClaude, config.LLM.DefaultProvider)
	assert.NoError(t, config.Validate())
}

func TestLoadFromFiles_FileOverridesDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "boardbridge.toml")

	content := `
environment = "production"

[server]
port = 9090

[canvas]
base_url = "https://canvas.example.com/v2"
board_id = "board-001"
page_size = 25

[summarize]
concurrency = 4
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	config, err := LoadFromFiles(path)
	require.NoError(t, err)

	assert.Equal(t, "production", config.Environment)
	assert.Equal(t, 9090, config.Server.Port)
	assert.Equal(t, "https://canvas.example.com/v2", config.Canvas.BaseURL)
	assert.Equal(t, "board-001", config.Canvas.BoardID)
	assert.Equal(t, 25, config.Canvas.PageSize)
	assert.Equal(t, 4, config.Summarize.Concurrency)

	// Untouched values keep their defaults
	assert.Equal(t, "localhost", config.Server.Host)
	assert.Equal(t, "info", config.Logging.Level)
}

func TestLoadFromFiles_LaterFilesWin(t *testing.T) {
	dir := t.TempDir()
	base := filepath.Join(dir, "base.toml")
	override := filepath.Join(dir, "override.toml")

	require.NoError(t, os.WriteFile(base, []byte("[server]\nport = 9000\nhost = \"base\"\n"), 0644))
	require.NoError(t, os.WriteFile(override, []byte("[server]\nport = 9001\n"), 0644))

	config, err := LoadFromFiles(base, override)
	require.NoError(t, err)

	assert.Equal(t, 9001, config.Server.Port)
	assert.Equal(t, "base", config.Server.Host)
}

func TestLoadFromFiles_EnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "boardbridge.toml")
	require.NoError(t, os.WriteFile(path, []byte("[server]\nport = 9000\n"), 0644))

	t.Setenv("BOARDBRIDGE_SERVER_PORT", "7070")
	t.Setenv("BOARDBRIDGE_CANVAS_BOARD_ID", "env-board")

	config, err := LoadFromFiles(path)
	require.NoError(t, err)

	assert.Equal(t, 7070, config.Server.Port)
	assert.Equal(t, "env-board", config.Canvas.BoardID)
}

func TestLoadFromFiles_MissingFile(t *testing.T) {
	_, err := LoadFromFiles("/nonexistent/boardbridge.toml")
	assert.Error(t, err)
}

func TestValidate_RejectsBadValues(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero page size", func(c *Config) { c.Canvas.PageSize = 0 }},
		{"unknown provider", func(c *Config) { c.LLM.DefaultProvider = "openai" }},
		{"zero concurrency", func(c *Config) { c.Summarize.Concurrency = 0 }},
		{"bad log level", func(c *Config) { c.Logging.Level = "verbose" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := NewDefaultConfig()
			tt.mutate(config)
			assert.Error(t, config.Validate())
		})
	}
}

func TestApplyFlagOverrides(t *testing.T) {
	config := NewDefaultConfig()

	ApplyFlagOverrides(config, 4000, "0.0.0.0")
	assert.Equal(t, 4000, config.Server.Port)
	assert.Equal(t, "0.0.0.0", config.Server.Host)

	// Zero values leave config untouched
	ApplyFlagOverrides(config, 0, "")
	assert.Equal(t, 4000, config.Server.Port)
	assert.Equal(t, "0.0.0.0", config.Server.Host)
}
