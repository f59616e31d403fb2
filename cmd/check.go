package cmd

import (
	"fmt"
	"os"

	"github.com/KaramelBytes/folio-cli/internal/project"
	"github.com/KaramelBytes/folio-cli/internal/validation"
	"github.com/spf13/cobra"
)

var checkStrict bool

var checkCmd = &cobra.Command{
	Use:   "check [file]",
	Short: "Validate the projects in a markdown document",
	Long: `Check extracts the projects and validates them against a schema. By default every
project needs a title and every link a URL; --strict also requires a description,
tech and date.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		doc, err := loadDocument(args)
		if err != nil {
			return err
		}
		if project.Count(doc.Body) == 0 {
			fmt.Fprintf(os.Stderr, "⚠ Warning: no project headings (\"## \") in %s\n", doc.Path)
		}
		projects := project.Extract(doc.Body)
		schema := validation.ProjectsSchema
		if checkStrict {
			schema = validation.StrictSchema
		}
		if err := validation.ValidateProjects(schema, projects); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "✓ %d projects valid (%s)\n", len(projects), schema)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(checkCmd)
	checkCmd.Flags().BoolVar(&checkStrict, "strict", false, "also require description, tech and date")
}
