package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"sortd/internal/organizer"
)

func newOrganizeCommand(ctx *commandContext) *cobra.Command {
	var assumeYes bool

	cmd := &cobra.Command{
		Use:   "organize <directory>",
		Short: "Move files into category subfolders",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withOrganizer(func(o *organizer.Organizer) error {
				out := cmd.OutOrStdout()

				preview, err := o.Preview(args[0])
				if err != nil {
					return err
				}
				if len(preview) == 0 {
					fmt.Fprintln(out, "Nothing to organize")
					return nil
				}

				if !assumeYes {
					fmt.Fprintln(out, renderPreviewTable(preview))
					if o.CanUndo(cmd.Context()) {
						fmt.Fprintln(out, "Note: organizing again discards the current undo history.")
					}
					ok, err := confirm(cmd.InOrStdin(), out, fmt.Sprintf("Move %d files?", countPreviewFiles(preview)))
					if err != nil {
						return err
					}
					if !ok {
						fmt.Fprintln(out, "Aborted")
						return nil
					}
				}

				progress, finishProgress := newProgressSink(os.Stderr, isatty.IsTerminal(os.Stderr.Fd()))
				result, err := o.Organize(cmd.Context(), args[0], progress)
				finishProgress()
				if err != nil {
					return err
				}
				printOrganizeResult(out, result)
				return nil
			})
		},
	}

	cmd.Flags().BoolVarP(&assumeYes, "yes", "y", false, "Skip the confirmation prompt")
	return cmd
}

// newProgressSink returns a progress callback driving a terminal bar and a
// finish func that completes the bar once the run is over. The callback is
// nil when the bar is disabled; finish is always safe to call.
func newProgressSink(w io.Writer, enabled bool) (organizer.ProgressFunc, func()) {
	if !enabled {
		return nil, func() {}
	}
	bar := progressbar.NewOptions64(-1,
		progressbar.OptionSetDescription("Organizing"),
		progressbar.OptionSetWriter(w),
		progressbar.OptionShowCount(),
	)
	progress := func(processed, total int, name string) {
		if total > 0 && bar.GetMax() == -1 {
			bar.ChangeMax64(int64(total))
		}
		_ = bar.Set64(int64(processed))
	}
	return progress, func() { _ = bar.Finish() }
}

func printOrganizeResult(out io.Writer, result *organizer.Result) {
	if result.Empty() {
		fmt.Fprintln(out, "Nothing to organize")
		return
	}

	categories := make([]string, 0, len(result.Categories))
	for name := range result.Categories {
		categories = append(categories, name)
	}
	sort.Strings(categories)

	rows := make([][]string, 0, len(categories))
	for _, name := range categories {
		cat := result.Categories[name]
		rows = append(rows, []string{
			name,
			fmt.Sprintf("%d", cat.Moved),
			fmt.Sprintf("%d", cat.Failed),
		})
	}
	fmt.Fprintln(out, renderTable([]string{"Category", "Moved", "Failed"}, rows, 2, 3))

	fmt.Fprintf(out, "Moved %d of %d files", result.Moved, result.Total)
	if result.Failed > 0 {
		fmt.Fprintf(out, " (%d failed)", result.Failed)
	}
	fmt.Fprintln(out)

	for _, message := range result.Errors {
		fmt.Fprintf(out, "  warning: %s\n", message)
	}
	if result.Moved > 0 {
		fmt.Fprintln(out, "Run `sortd undo` to restore this batch.")
	}
}

func confirm(in io.Reader, out io.Writer, question string) (bool, error) {
	fmt.Fprintf(out, "%s [y/N]: ", question)
	reader := bufio.NewReader(in)
	line, err := reader.ReadString('\n')
	if err != nil && err != io.EOF {
		return false, fmt.Errorf("read confirmation: %w", err)
	}
	answer := strings.ToLower(strings.TrimSpace(line))
	return answer == "y" || answer == "yes", nil
}
