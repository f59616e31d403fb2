package cmd

import (
	"fmt"
	"strings"

	"github.com/KaramelBytes/folio-cli/internal/utils"
	"github.com/spf13/cobra"
)

var (
	renderOut  string
	renderPage bool
)

var renderCmd = &cobra.Command{
	Use:   "render [file]",
	Short: "Render a markdown project list to HTML",
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
		out := p.HTML
		if renderPage {
			var sb strings.Builder
			if err := p.WritePage(&sb); err != nil {
				return fmt.Errorf("write page: %w", err)
			}
			out = sb.String()
		}
		if renderOut == "" {
			_, err := fmt.Fprint(cmd.OutOrStdout(), out)
			return err
		}
		if err := utils.SafeWriteFile(renderOut, []byte(out)); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "✓ Rendered %s -> %s\n", doc.Path, renderOut)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(renderCmd)
	renderCmd.Flags().StringVarP(&renderOut, "out", "o", "", "write HTML to this file instead of stdout")
	renderCmd.Flags().BoolVar(&renderPage, "page", false, "wrap the HTML in a standalone page")
}
