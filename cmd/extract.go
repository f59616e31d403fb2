package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/KaramelBytes/folio-cli/internal/project"
	"github.com/KaramelBytes/folio-cli/internal/utils"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var extractFormat string

var extractCmd = &cobra.Command{
	Use:   "extract [file]",
	Short: "Print the projects described in a markdown document",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		doc, err := loadDocument(args)
		if err != nil {
			return err
		}
		projects := project.Extract(doc.Body)
		logger.Debug("extracted projects", "source", doc.Path, "count", len(projects))
		return writeRecords(cmd.OutOrStdout(), projects, extractFormat)
	},
}

// writeRecords encodes v as indented JSON or YAML.
func writeRecords(w io.Writer, v any, format string) error {
	var (
		b   []byte
		err error
	)
	switch strings.ToLower(format) {
	case "", "json":
		b, err = utils.PrettyJSON(v)
		if err == nil {
			b = append(b, '\n')
		}
	case "yaml", "yml":
		b, err = yaml.Marshal(v)
		if err != nil {
			err = fmt.Errorf("marshal yaml: %w", err)
		}
	default:
		return fmt.Errorf("invalid format: %s (use json or yaml)", format)
	}
	if err != nil {
		return err
	}
	_, err = w.Write(b)
	return err
}

func init() {
	rootCmd.AddCommand(extractCmd)
	extractCmd.Flags().StringVarP(&extractFormat, "format", "f", "json", "output format: json or yaml")
}
