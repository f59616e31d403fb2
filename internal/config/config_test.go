package config_test

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KaramelBytes/folio-cli/internal/config"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	c, err := config.Load("")
	require.NoError(t, err)
	assert.Equal(t, "", c.SourcePath)
	assert.Equal(t, "dist", c.OutputDir)
	assert.Equal(t, ":8080", c.ServerAddr)
	assert.True(t, c.UnsafeHTML)
	assert.False(t, c.HardWraps)
	assert.Empty(t, c.MarkdownExtensions)
	assert.Equal(t, 16, c.CacheEntries)
	assert.Equal(t, "info", c.LogLevel)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	path := filepath.Join(t.TempDir(), "folio.yaml")
	content := "source_path: site/projects.md\nserver_addr: \":9000\"\nmarkdown_extensions: [table, footnote]\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	t.Setenv("FOLIO_SERVER_ADDR", ":7000")

	c, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "site/projects.md", c.SourcePath)
	assert.Equal(t, ":7000", c.ServerAddr)
	assert.Equal(t, []string{"table", "footnote"}, c.MarkdownExtensions)
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	_, err := config.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestLoad_MalformedDefaultFile(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	dir := filepath.Join(home, ".folio")
	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("source_path: [\n"), 0o644))

	_, err := config.Load("")
	assert.Error(t, err)
}

func TestLoad_InvalidLogLevel(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("FOLIO_LOG_LEVEL", "loud")
	_, err := config.Load("")
	assert.Error(t, err)
}

func TestSaveRoundTrip(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	c, err := config.Load("")
	require.NoError(t, err)
	c.SourcePath = "/srv/projects.md"
	c.LogLevel = "debug"
	require.NoError(t, config.Save(c, ""))
	assert.FileExists(t, filepath.Join(home, ".folio", "config.yaml"))

	again, err := config.Load("")
	require.NoError(t, err)
	assert.Equal(t, "/srv/projects.md", again.SourcePath)
	assert.Equal(t, "debug", again.LogLevel)
}

func TestParseLogLevel(t *testing.T) {
	cases := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"":        slog.LevelInfo,
		"INFO":    slog.LevelInfo,
		"warning": slog.LevelWarn,
		"error":   slog.LevelError,
	}
	for in, want := range cases {
		got, err := config.ParseLogLevel(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
	_, err := config.ParseLogLevel("trace")
	assert.Error(t, err)
}
