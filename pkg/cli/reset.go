package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"
)

func newResetCmd(a *app) *cobra.Command {
	var yes bool
	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Remove every user and item and restart ids at 1",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !yes {
				return errors.New("refusing to reset without --yes")
			}
			if err := a.records.Reset(cmd.Context()); err != nil {
				return err
			}
			return a.done(cmd, "Reset %s storage", a.cfg.Storage.Backend)
		},
	}
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Confirm the reset")
	return cmd
}

func newStatsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show collection sizes and the highest issued ids",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			st := a.records.Stats()
			return a.emit(cmd, st, func(w io.Writer) {
				fmt.Fprintf(w, "Users:        %d (last id %d)\n", st.Users, st.LastUserID)
				fmt.Fprintf(w, "Items:        %d (last id %d)\n", st.Items, st.LastItemID)
				fmt.Fprintf(w, "Storage:      %s\n", a.cfg.Storage.Backend)
			})
		},
	}
}
