package main

import (
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/dshills/wordsmith/internal/config"
	"github.com/dshills/wordsmith/internal/config/loader"
	"github.com/dshills/wordsmith/internal/expand"
)

func (c *cli) shortcutsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "shortcuts",
		Aliases: []string{"sc"},
		Short:   "Manage the shortcut table",
	}
	cmd.AddCommand(
		c.shortcutsListCmd(),
		c.shortcutsAddCmd(),
		c.shortcutsRemoveCmd(),
		c.shortcutsImportCmd(),
		c.shortcutsExportCmd(),
	)
	return cmd
}

func (c *cli) shortcutsListCmd() *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List shortcuts and their expansions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.withStore(func(_ config.Store, s config.Settings) error {
				if asJSON {
					return writeShortcutsJSON(cmd.OutOrStdout(), s.Shortcuts)
				}
				table := expand.NewTable(s.Shortcuts)
				tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
				for _, name := range table.Keys() {
					expansion, _ := table.Lookup(name)
					fmt.Fprintf(tw, "%s\t%q\n", name, expansion)
				}
				return tw.Flush()
			})
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "output as JSON")
	return cmd
}

func (c *cli) shortcutsAddCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "add <shortcut> <expansion>",
		Short: "Add or replace a shortcut",
		Long: `Add stores a shortcut. An existing shortcut with the same name is
replaced. The expansion may be empty.

Example:
  wordsmith shortcuts add addr "221B Baker Street"`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			name, expansion := args[0], args[1]
			return c.withStore(func(store config.Store, s config.Settings) error {
				if err := s.ValidateShortcut(name); err != nil {
					return err
				}
				_, replaced := s.Shortcuts[name]
				if s.Shortcuts == nil {
					s.Shortcuts = make(map[string]string)
				}
				s.Shortcuts[name] = expansion
				if err := store.Save(s); err != nil {
					return fmt.Errorf("save settings: %w", err)
				}
				verb := "Added"
				if replaced {
					verb = "Replaced"
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", verb, name)
				return nil
			})
		},
	}
}

func (c *cli) shortcutsRemoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "remove <shortcut>",
		Aliases: []string{"rm"},
		Short:   "Remove a shortcut",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := args[0]
			return c.withStore(func(store config.Store, s config.Settings) error {
				if _, ok := s.Shortcuts[name]; !ok {
					return fmt.Errorf("no shortcut named %q", name)
				}
				delete(s.Shortcuts, name)
				if err := store.Save(s); err != nil {
					return fmt.Errorf("save settings: %w", err)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Removed %s\n", name)
				return nil
			})
		},
	}
}

func (c *cli) shortcutsImportCmd() *cobra.Command {
	var replace bool
	cmd := &cobra.Command{
		Use:   "import <file|->",
		Short: "Import shortcuts from a JSON object",
		Long: `Import reads a JSON object mapping shortcuts to expansions, for example
{"btw": "by the way"}. Imported shortcuts are merged into the table unless
--replace is given. Use - to read from standard input.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := readInput(cmd.InOrStdin(), args[0])
			if err != nil {
				return err
			}
			imported, err := loader.ParseShortcutsJSON(data)
			if err != nil {
				return err
			}
			return c.withStore(func(store config.Store, s config.Settings) error {
				if replace || s.Shortcuts == nil {
					s.Shortcuts = make(map[string]string, len(imported))
				}
				for name, expansion := range imported {
					s.Shortcuts[name] = expansion
				}
				if err := store.Save(s); err != nil {
					return fmt.Errorf("save settings: %w", err)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Imported %d shortcuts (%d total)\n", len(imported), len(s.Shortcuts))
				return nil
			})
		},
	}
	cmd.Flags().BoolVar(&replace, "replace", false, "replace the table instead of merging")
	return cmd
}

func (c *cli) shortcutsExportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "export [file]",
		Short: "Export shortcuts as a JSON object",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.withStore(func(_ config.Store, s config.Settings) error {
				if len(args) == 0 || args[0] == "-" {
					return writeShortcutsJSON(cmd.OutOrStdout(), s.Shortcuts)
				}
				data, err := loader.FormatShortcutsJSON(s.Shortcuts)
				if err != nil {
					return err
				}
				if err := os.WriteFile(args[0], data, 0o644); err != nil {
					return fmt.Errorf("write %s: %w", args[0], err)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Exported %d shortcuts to %s\n", len(s.Shortcuts), args[0])
				return nil
			})
		},
	}
}

func writeShortcutsJSON(w io.Writer, shortcuts map[string]string) error {
	data, err := loader.FormatShortcutsJSON(shortcuts)
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}

func readInput(stdin io.Reader, path string) ([]byte, error) {
	if path == "-" {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return nil, fmt.Errorf("read stdin: %w", err)
		}
		return data, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return data, nil
}
