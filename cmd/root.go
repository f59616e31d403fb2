package cmd

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	cfgpkg "github.com/KaramelBytes/folio-cli/internal/config"
	"github.com/KaramelBytes/folio-cli/internal/parser"
	"github.com/KaramelBytes/folio-cli/internal/portfolio"
	"github.com/KaramelBytes/folio-cli/internal/render"
	"github.com/KaramelBytes/folio-cli/internal/utils"
	"github.com/spf13/cobra"
)

var (
	// Global flags
	cfgFile    string
	debug      bool
	sourcePath string

	// Loaded configuration
	cfg *cfgpkg.Global
	// cfgErr is set when the config file could not be read and cfg holds defaults.
	cfgErr error

	logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))
)

var rootCmd = &cobra.Command{
	Use:   "folio",
	Short: "Folio: turn a markdown project list into records and HTML",
	Long: `Folio reads a markdown document listing portfolio projects ("## Title" headings
followed by **URLS:**, **Description:**, **Tech:** and **Date:** lines), extracts
the projects as structured records and renders the document to HTML.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute is the entry point called by main.main()
func Execute() {
	// Initialize configuration before executing commands
	cobra.OnInitialize(loadConfig)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "✗ Error:", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ~/.folio/config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug output")
	rootCmd.PersistentFlags().StringVarP(&sourcePath, "source", "s", "", "markdown project list (overrides config)")
}

func loadConfig() {
	c, err := cfgpkg.Load(cfgFile)
	cfgErr = err
	if err != nil {
		// Non-fatal: fall back to defaults
		fmt.Fprintf(os.Stderr, "⚠ Warning: failed to load config: %v\n", err)
		c = cfgpkg.Defaults()
	}
	cfg = c
	logger = newLogger(cfg.LogLevel, debug)
	slog.SetDefault(logger)
	logger.Debug("config loaded", "source_path", cfg.SourcePath, "output_dir", cfg.OutputDir)
}

func newLogger(level string, debug bool) *slog.Logger {
	lvl, err := cfgpkg.ParseLogLevel(level)
	if err != nil {
		lvl = slog.LevelInfo
	}
	if debug {
		lvl = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl}))
}

func currentConfig() *cfgpkg.Global {
	if cfg == nil {
		cfg = cfgpkg.Defaults()
	}
	return cfg
}

// resolveSource picks the document path: argument, --source, config, then a
// projects.md found above the working directory. An empty result means the
// bundled document.
func resolveSource(args []string) (string, error) {
	switch {
	case len(args) > 0 && args[0] != "":
		return args[0], nil
	case sourcePath != "":
		return sourcePath, nil
	case currentConfig().SourcePath != "":
		return expandHome(currentConfig().SourcePath)
	}
	found, err := utils.FindSource("")
	if errors.Is(err, utils.ErrSourceNotFound) {
		return "", nil
	}
	return found, err
}

// openSource returns a loader for the resolved document.
func openSource(args []string) (func() (*parser.Document, error), error) {
	path, err := resolveSource(args)
	if err != nil {
		return nil, err
	}
	if path == "" {
		logger.Debug("no source found, using bundled document")
		return parser.Default, nil
	}
	logger.Debug("using source", "path", path)
	return func() (*parser.Document, error) { return parser.ParseFile(path) }, nil
}

func loadDocument(args []string) (*parser.Document, error) {
	load, err := openSource(args)
	if err != nil {
		return nil, err
	}
	return load()
}

func newRenderer() *render.Renderer {
	c := currentConfig()
	for _, name := range c.MarkdownExtensions {
		if !render.KnownExtension(name) {
			logger.Warn("unknown markdown extension ignored", "name", name)
		}
	}
	return render.New(render.Options{
		Extensions: c.MarkdownExtensions,
		HardWraps:  c.HardWraps,
		Unsafe:     c.UnsafeHTML,
	})
}

func newService() *portfolio.Service {
	return portfolio.NewService(newRenderer(), currentConfig().CacheEntries)
}

func expandHome(dir string) (string, error) {
	if !strings.HasPrefix(dir, "~") {
		return filepath.Clean(dir), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home dir: %w", err)
	}
	dir = strings.TrimPrefix(dir, "~")
	dir = strings.TrimPrefix(dir, string(os.PathSeparator))
	dir = strings.TrimPrefix(dir, "/")
	return filepath.Join(home, dir), nil
}
