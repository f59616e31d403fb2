package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var listIDs bool

var listCmd = &cobra.Command{
	Use:   "list [file]",
	Short: "List project titles",
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
		out := cmd.OutOrStdout()
		if len(p.Projects) == 0 {
			fmt.Fprintln(out, "(no projects)")
			return nil
		}
		for _, e := range p.Projects {
			var meta []string
			if e.Tech != "" {
				meta = append(meta, e.Tech)
			}
			if e.Date != "" {
				meta = append(meta, e.Date)
			}
			line := "- " + e.Title
			if len(meta) > 0 {
				line += " (" + strings.Join(meta, ", ") + ")"
			}
			if listIDs {
				line = fmt.Sprintf("- %s: %s", e.ID, strings.TrimPrefix(line, "- "))
			}
			fmt.Fprintln(out, line)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
	listCmd.Flags().BoolVar(&listIDs, "ids", false, "show project IDs")
}
