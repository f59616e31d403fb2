package cmd

import (
	"bytes"
	"fmt"
	"path/filepath"

	"github.com/KaramelBytes/folio-cli/internal/utils"
	"github.com/spf13/cobra"
)

var buildOut string

var buildCmd = &cobra.Command{
	Use:   "build [file]",
	Short: "Write projects.json, content.html and index.html for a static site",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		doc, err := loadDocument(args)
		if err != nil {
			return err
		}
		p, err := newService().Build(doc)
		if err != nil {
			return err
		}

		outDir := buildOut
		if outDir == "" {
			outDir = currentConfig().OutputDir
		}
		if outDir, err = expandHome(outDir); err != nil {
			return err
		}
		if err := utils.EnsureDir(outDir); err != nil {
			return fmt.Errorf("create output dir: %w", err)
		}

		data, err := utils.PrettyJSON(p)
		if err != nil {
			return err
		}
		var page bytes.Buffer
		if err := p.WritePage(&page); err != nil {
			return fmt.Errorf("write page: %w", err)
		}
		files := []struct {
			name string
			data []byte
		}{
			{"projects.json", data},
			{"content.html", []byte(p.HTML)},
			{"index.html", page.Bytes()},
		}
		for _, f := range files {
			path := filepath.Join(outDir, f.name)
			if err := utils.SafeWriteFile(path, f.data); err != nil {
				return fmt.Errorf("write %s: %w", f.name, err)
			}
			logger.Debug("wrote artifact", "path", path, "bytes", len(f.data))
		}
		fmt.Fprintf(cmd.OutOrStdout(), "✓ Built %d projects from %s into %s\n", len(p.Projects), doc.Path, outDir)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(buildCmd)
	buildCmd.Flags().StringVarP(&buildOut, "out", "o", "", "output directory (overrides config output_dir)")
}
