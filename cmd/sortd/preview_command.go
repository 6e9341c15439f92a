package main

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"sortd/internal/organizer"
)

func newPreviewCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "preview <directory>",
		Short: "Show where each file would go without moving anything",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withOrganizer(func(o *organizer.Organizer) error {
				preview, err := o.Preview(args[0])
				if err != nil {
					return err
				}

				out := cmd.OutOrStdout()
				if len(preview) == 0 {
					fmt.Fprintln(out, "Nothing to organize")
					return nil
				}

				fmt.Fprintln(out, renderPreviewTable(preview))
				fmt.Fprintf(out, "%d files across %d categories\n", countPreviewFiles(preview), len(preview))
				return nil
			})
		},
	}
}

func renderPreviewTable(preview map[string][]string) string {
	categories := make([]string, 0, len(preview))
	for name := range preview {
		categories = append(categories, name)
	}
	sort.Strings(categories)

	rows := make([][]string, 0, len(preview))
	for _, category := range categories {
		for i, file := range preview[category] {
			label := ""
			if i == 0 {
				label = category
			}
			rows = append(rows, []string{label, file})
		}
	}
	return renderTable([]string{"Category", "File"}, rows)
}

func countPreviewFiles(preview map[string][]string) int {
	total := 0
	for _, files := range preview {
		total += len(files)
	}
	return total
}
