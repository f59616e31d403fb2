package cmd

import (
	"fmt"
	"strconv"
	"strings"

	cfgpkg "github.com/KaramelBytes/folio-cli/internal/config"
	"github.com/KaramelBytes/folio-cli/internal/render"
	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "View or set Folio configuration",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show effective configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		if cfg == nil {
			c, err := cfgpkg.Load(cfgFile)
			if err != nil {
				return err
			}
			cfg = c
		}
		c := cfg
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "source_path: %s\n", c.SourcePath)
		fmt.Fprintf(out, "output_dir: %s\n", c.OutputDir)
		fmt.Fprintf(out, "server_addr: %s\n", c.ServerAddr)
		if len(c.MarkdownExtensions) > 0 {
			fmt.Fprintf(out, "markdown_extensions: %s\n", strings.Join(c.MarkdownExtensions, ","))
		}
		fmt.Fprintf(out, "hard_wraps: %t\n", c.HardWraps)
		fmt.Fprintf(out, "unsafe_html: %t\n", c.UnsafeHTML)
		fmt.Fprintf(out, "cache_entries: %d\n", c.CacheEntries)
		fmt.Fprintf(out, "log_level: %s\n", c.LogLevel)
		return nil
	},
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a config value and save to disk",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		key, val := args[0], args[1]
		if cfgErr != nil {
			// cfg holds defaults; saving would overwrite the unreadable file.
			return fmt.Errorf("refusing to save over unreadable config: %w", cfgErr)
		}
		if cfg == nil {
			c, err := cfgpkg.Load(cfgFile)
			if err != nil {
				return err
			}
			cfg = c
		}
		switch key {
		case "source_path":
			cfg.SourcePath = val
		case "output_dir":
			cfg.OutputDir = val
		case "server_addr":
			cfg.ServerAddr = val
		case "markdown_extensions":
			var exts []string
			for _, name := range strings.Split(val, ",") {
				name = strings.TrimSpace(name)
				if name == "" {
					continue
				}
				if !render.KnownExtension(name) {
					return fmt.Errorf("unknown markdown extension: %s", name)
				}
				exts = append(exts, strings.ToLower(name))
			}
			cfg.MarkdownExtensions = exts
		case "hard_wraps", "unsafe_html":
			b, err := strconv.ParseBool(val)
			if err != nil {
				return fmt.Errorf("invalid bool for %s: %v", key, val)
			}
			if key == "hard_wraps" {
				cfg.HardWraps = b
			} else {
				cfg.UnsafeHTML = b
			}
		case "cache_entries":
			i, err := strconv.Atoi(val)
			if err != nil || i < 0 {
				return fmt.Errorf("invalid int for cache_entries: %v", val)
			}
			cfg.CacheEntries = i
		case "log_level":
			if _, err := cfgpkg.ParseLogLevel(val); err != nil {
				return err
			}
			cfg.LogLevel = val
		default:
			return fmt.Errorf("unknown key: %s", key)
		}
		if err := cfgpkg.Save(cfg, cfgFile); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), "Saved config")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetCmd)
}
