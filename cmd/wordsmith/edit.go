package main

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/spf13/cobra"

	"github.com/dshills/wordsmith/internal/app"
	"github.com/dshills/wordsmith/internal/config"
	"github.com/dshills/wordsmith/internal/engine"
	"github.com/dshills/wordsmith/internal/renderer/backend"
)

func (c *cli) editCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "edit [file]",
		Short: "Open a file and expand shortcuts while typing",
		Long: `Edit opens the file (or an empty buffer) in the terminal. Shortcuts are
expanded as they are typed and the count is shown on the status line.

Keys:
  Ctrl+S  write the file
  Ctrl+Q  quit

Changes to the settings file are picked up while editing.`,
		Args: cobra.MaximumNArgs(1),
		RunE: c.runEdit,
	}
}

func (c *cli) runEdit(cmd *cobra.Command, args []string) error {
	return c.withStore(func(store config.Store, s config.Settings) error {
		// The terminal owns the screen, so logs are discarded unless a log
		// file is configured.
		logger, closer, err := c.logger(s, io.Discard)
		if err != nil {
			return err
		}
		defer closer.Close()

		// First run: write the defaults so there is a file to watch.
		if _, err := os.Stat(store.Path()); errors.Is(err, fs.ErrNotExist) {
			if err := store.Save(s); err != nil {
				return fmt.Errorf("save settings: %w", err)
			}
		}

		doc := engine.New()
		if len(args) == 1 {
			if doc, err = engine.Open(args[0]); err != nil {
				return err
			}
		}

		term, err := backend.NewTerminal()
		if err != nil {
			return fmt.Errorf("create terminal: %w", err)
		}

		a, err := app.New(app.Options{
			Settings:  s,
			Store:     store,
			Document:  doc,
			Backend:   term,
			Logger:    logger,
			Watch:     true,
			ScriptDir: c.v.GetString(keyScriptDir),
		})
		if err != nil {
			return err
		}

		runErr := a.Run(cmd.Context())
		if err := a.Close(); err != nil {
			logger.Warn("close: %v", err)
		}
		return runErr
	})
}
