package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dshills/wordsmith/internal/config"
	"github.com/dshills/wordsmith/internal/expand"
)

func (c *cli) countCmd() *cobra.Command {
	var history int
	cmd := &cobra.Command{
		Use:   "count",
		Short: "Show the number of expansions performed",
		Long: `Count prints the replacement count. With the sqlite backend, --history
also lists the most recent expansions.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.withStore(func(store config.Store, s config.Settings) error {
				out := cmd.OutOrStdout()
				fmt.Fprintln(out, expand.Format(s.Count))
				if history <= 0 {
					return nil
				}

				hs, ok := store.(config.HistoryStore)
				if !ok {
					return fmt.Errorf("the %s backend keeps no history", c.v.GetString(keyBackend))
				}
				entries, err := hs.Expansions(history)
				if err != nil {
					return fmt.Errorf("read history: %w", err)
				}
				for _, e := range entries {
					fmt.Fprintf(out, "%s  %s\n", e.Time.Local().Format("2006-01-02 15:04:05"), e.Shortcut)
				}
				return nil
			})
		},
	}
	cmd.Flags().IntVar(&history, "history", 0, "list the N most recent expansions")
	cmd.AddCommand(c.countResetCmd())
	return cmd
}

func (c *cli) countResetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "reset",
		Short: "Reset the count to zero and clear the history",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.withStore(func(store config.Store, _ config.Settings) error {
				if err := store.SaveCount(0); err != nil {
					return fmt.Errorf("save count: %w", err)
				}
				if hs, ok := store.(config.HistoryStore); ok {
					if err := hs.ClearExpansions(); err != nil {
						return fmt.Errorf("clear history: %w", err)
					}
				}
				fmt.Fprintln(cmd.OutOrStdout(), expand.Format(0))
				return nil
			})
		},
	}
}
