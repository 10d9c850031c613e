package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dshills/wordsmith/internal/config"
)

func (c *cli) initCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Write the settings store, creating it with defaults",
		Long: `Init writes the current settings back to the store. When nothing is
stored yet, the default boundaries and shortcuts are written.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.withStore(func(store config.Store, s config.Settings) error {
				if err := store.Save(s); err != nil {
					return fmt.Errorf("save settings: %w", err)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Settings written to %s\n", store.Path())
				return nil
			})
		},
	}
}
