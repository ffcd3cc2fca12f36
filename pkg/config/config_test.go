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
	t.Run("valid config", func(t *testing.T) {
		configContent := `
server:
  listen: ":9090"
  timeout: 45s

database:
  dsn: "file:test.db?mode=rwc"
  max_open_conns: 20

matcher:
  debounce: 250ms
  min_text_length: 10
  max_suggestions: 5

annotator: "测试标注员"
`
		tmpDir := t.TempDir()
		configPath := filepath.Join(tmpDir, "test-config.yml")
		err := os.WriteFile(configPath, []byte(configContent), 0o644)
		require.NoError(t, err)

		cfg, err := Load(configPath)
		require.NoError(t, err)
		require.NotNil(t, cfg)

		assert.Equal(t, ":9090", cfg.Server.Listen)
		assert.Equal(t, 45*time.Second, cfg.Server.Timeout)
		assert.Equal(t, "file:test.db?mode=rwc", cfg.Database.DSN)
		assert.Equal(t, 20, cfg.Database.MaxOpenConns)
		assert.Equal(t, 250*time.Millisecond, cfg.Matcher.Debounce)
		assert.Equal(t, 10, cfg.Matcher.MinTextLength)
		assert.Equal(t, 5, cfg.Matcher.MaxSuggestions)
		assert.Equal(t, "测试标注员", cfg.Annotator)
	})

	t.Run("defaults", func(t *testing.T) {
		tmpDir := t.TempDir()
		configPath := filepath.Join(tmpDir, "test-config.yml")
		err := os.WriteFile(configPath, []byte("{}\n"), 0o644)
		require.NoError(t, err)

		cfg, err := Load(configPath)
		require.NoError(t, err)
		require.NotNil(t, cfg)

		// check server defaults
		assert.Equal(t, ":8080", cfg.Server.Listen)
		assert.Equal(t, 30*time.Second, cfg.Server.Timeout)

		// check database defaults
		assert.Equal(t, "file:feynman.db?cache=shared&mode=rwc&_txlock=immediate", cfg.Database.DSN)
		assert.Equal(t, 10, cfg.Database.MaxOpenConns)
		assert.Equal(t, 5, cfg.Database.MaxIdleConns)
		assert.Equal(t, 3600, cfg.Database.ConnMaxLifetime)

		// check matcher defaults
		assert.Equal(t, 500*time.Millisecond, cfg.Matcher.Debounce)
		assert.Equal(t, 20, cfg.Matcher.MinTextLength)
		assert.Equal(t, 3, cfg.Matcher.MaxSuggestions)
		assert.Empty(t, cfg.Matcher.RulesFile)

		assert.Equal(t, "数据标注专家", cfg.Annotator)
	})

	t.Run("environment variable expansion", func(t *testing.T) {
		t.Setenv("TEST_LISTEN_ADDR", ":7070")

		configContent := `
server:
  listen: "${TEST_LISTEN_ADDR}"
`
		tmpDir := t.TempDir()
		configPath := filepath.Join(tmpDir, "test-config.yml")
		err := os.WriteFile(configPath, []byte(configContent), 0o644)
		require.NoError(t, err)

		cfg, err := Load(configPath)
		require.NoError(t, err)
		assert.Equal(t, ":7070", cfg.Server.Listen)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := Load("/nonexistent/config.yml")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "read config file")
	})

	t.Run("invalid yaml", func(t *testing.T) {
		tmpDir := t.TempDir()
		configPath := filepath.Join(tmpDir, "bad.yml")
		err := os.WriteFile(configPath, []byte("server:\n  listen: [broken"), 0o644)
		require.NoError(t, err)

		_, err = Load(configPath)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "parse config")
	})

	t.Run("timeout below minimum rejected", func(t *testing.T) {
		configContent := `
server:
  timeout: 100ms
`
		tmpDir := t.TempDir()
		configPath := filepath.Join(tmpDir, "test-config.yml")
		err := os.WriteFile(configPath, []byte(configContent), 0o644)
		require.NoError(t, err)

		_, err = Load(configPath)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "timeout must be at least 1 second")
	})

	t.Run("rules file must exist", func(t *testing.T) {
		configContent := `
matcher:
  rules_file: /nonexistent/patterns.json
`
		tmpDir := t.TempDir()
		configPath := filepath.Join(tmpDir, "test-config.yml")
		err := os.WriteFile(configPath, []byte(configContent), 0o644)
		require.NoError(t, err)

		_, err = Load(configPath)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "rules_file not accessible")
	})
}

func TestDefault(t *testing.T) {
	cfg := Default()
	require.NotNil(t, cfg)
	assert.Equal(t, ":8080", cfg.Server.Listen)
	assert.Equal(t, 500*time.Millisecond, cfg.Matcher.Debounce)
	assert.Equal(t, "数据标注专家", cfg.Annotator)
}

func TestConfig_GetServerConfig(t *testing.T) {
	cfg := Default()
	cfg.Server.Listen = ":9999"
	cfg.Server.Timeout = time.Minute

	listen, timeout := cfg.GetServerConfig()
	assert.Equal(t, ":9999", listen)
	assert.Equal(t, time.Minute, timeout)
}

func TestConfig_GetMatcherConfig(t *testing.T) {
	cfg := Default()
	cfg.Matcher.MaxSuggestions = 7

	mc := cfg.GetMatcherConfig()
	assert.Equal(t, 7, mc.MaxSuggestions)
	assert.Equal(t, 500*time.Millisecond, mc.Debounce)
}

func TestConfig_GetAnnotator(t *testing.T) {
	cfg := Default()
	assert.Equal(t, "数据标注专家", cfg.GetAnnotator())

	cfg.Annotator = "someone else"
	assert.Equal(t, "someone else", cfg.GetAnnotator())
}
