package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"sortd/internal/fault"
	"sortd/internal/organizer"
)

func newUndoCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "undo",
		Short: "Restore the files moved by the last organize run",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withOrganizer(func(o *organizer.Organizer) error {
				out := cmd.OutOrStdout()

				result, err := o.Undo(cmd.Context())
				if errors.Is(err, fault.ErrNothingToUndo) {
					fmt.Fprintln(out, "Nothing to undo")
					return nil
				}
				if err != nil && result == nil {
					return err
				}

				fmt.Fprintf(out, "Restored %d of %d files", result.Restored, result.Total)
				if result.Failed > 0 {
					fmt.Fprintf(out, " (%d failed)", result.Failed)
				}
				fmt.Fprintln(out)
				for _, message := range result.Errors {
					fmt.Fprintf(out, "  warning: %s\n", message)
				}
				return err
			})
		},
	}
}
