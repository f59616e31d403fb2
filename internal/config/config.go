package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// Global configuration structure.
type Global struct {
	// SourcePath is the markdown document listing the projects. Empty means
	// search the working directory, then fall back to the bundled document.
	SourcePath string `mapstructure:"source_path" yaml:"source_path"`
	OutputDir  string `mapstructure:"output_dir" yaml:"output_dir"`
	ServerAddr string `mapstructure:"server_addr" yaml:"server_addr"`

	// Markdown rendering
	MarkdownExtensions []string `mapstructure:"markdown_extensions" yaml:"markdown_extensions"`
	HardWraps          bool     `mapstructure:"hard_wraps" yaml:"hard_wraps"`
	UnsafeHTML         bool     `mapstructure:"unsafe_html" yaml:"unsafe_html"`

	CacheEntries int    `mapstructure:"cache_entries" yaml:"cache_entries"`
	LogLevel     string `mapstructure:"log_level" yaml:"log_level"`
}

// Defaults returns the configuration used when nothing is set.
func Defaults() *Global {
	return &Global{
		OutputDir:          "dist",
		ServerAddr:         ":8080",
		MarkdownExtensions: []string{},
		UnsafeHTML:         true,
		CacheEntries:       16,
		LogLevel:           "info",
	}
}

// Dir returns ~/.folio, where the config file lives by default.
func Dir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home dir: %w", err)
	}
	return filepath.Join(home, ".folio"), nil
}

// Save writes the given configuration to the cfgFile path. If cfgFile is empty,
// it writes to ~/.folio/config.yaml, creating the directory if necessary.
func Save(c *Global, cfgFile string) error {
	path := cfgFile
	if path == "" {
		dir, err := Dir()
		if err != nil {
			return err
		}
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("mkdir config dir: %w", err)
		}
		path = filepath.Join(dir, "config.yaml")
	}
	b, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal yaml: %w", err)
	}
	if err := os.WriteFile(path, b, 0o644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

// Load loads configuration from file, env, and defaults.
// Precedence: flags (cfgFile) > env > config file > defaults.
func Load(cfgFile string) (*Global, error) {
	v := viper.New()
	v.SetEnvPrefix("FOLIO")
	v.AutomaticEnv()

	d := Defaults()
	v.SetDefault("source_path", d.SourcePath)
	v.SetDefault("output_dir", d.OutputDir)
	v.SetDefault("server_addr", d.ServerAddr)
	v.SetDefault("markdown_extensions", d.MarkdownExtensions)
	v.SetDefault("hard_wraps", d.HardWraps)
	v.SetDefault("unsafe_html", d.UnsafeHTML)
	v.SetDefault("cache_entries", d.CacheEntries)
	v.SetDefault("log_level", d.LogLevel)

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
	} else {
		dir, err := Dir()
		if err != nil {
			return nil, err
		}
		v.AddConfigPath(dir)
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		// The file is optional, but one that exists must parse.
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("read config: %w", err)
			}
		}
	}

	var c Global
	if err := v.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	if _, err := ParseLogLevel(c.LogLevel); err != nil {
		return nil, err
	}
	return &c, nil
}

// ParseLogLevel converts a configured level name to a slog.Level.
func ParseLogLevel(level string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("invalid log level: %s", level)
	}
}
