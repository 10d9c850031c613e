package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/dshills/wordsmith/internal/app"
	"github.com/dshills/wordsmith/internal/config"
)

// Configuration keys, settable by flag or WORDSMITH_* environment variable.
const (
	keyConfig    = "config"
	keyBackend   = "backend"
	keyLogLevel  = "log_level"
	keyLogFile   = "log_file"
	keyScriptDir = "script_dir"
)

// cli holds state shared by the commands of one invocation.
type cli struct {
	v *viper.Viper
}

func newRootCmd() *cobra.Command {
	c := &cli{v: viper.New()}
	c.v.SetEnvPrefix("WORDSMITH")
	c.v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	c.v.AutomaticEnv()
	c.v.SetDefault(keyBackend, string(config.BackendFile))

	root := &cobra.Command{
		Use:   "wordsmith [file]",
		Short: "Wordsmith expands shortcuts as you type",
		Long: `Wordsmith is a text expander. Type the start character, a shortcut and
the end character, and the shortcut is replaced by its expansion.

With the default settings, typing ";btw " produces "by the way ".`,
		Version:       version,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          c.runEdit,
	}

	flags := root.PersistentFlags()
	flags.String("config", "", "settings file or database (default: user config directory)")
	flags.String("backend", string(config.BackendFile), "settings backend (file|sqlite)")
	flags.String("log-level", "", "log level (debug, info, warn, error)")
	flags.String("log-file", "", "write logs to this file (default: discard while editing)")
	flags.String("script-dir", "", "directory for relative script paths (default: settings directory)")
	for key, name := range map[string]string{
		keyConfig:    "config",
		keyBackend:   "backend",
		keyLogLevel:  "log-level",
		keyLogFile:   "log-file",
		keyScriptDir: "script-dir",
	} {
		_ = c.v.BindPFlag(key, flags.Lookup(name))
	}

	root.SetVersionTemplate(fmt.Sprintf("wordsmith %s (commit %s, built %s)\n", version, commit, date))

	root.AddCommand(
		c.editCmd(),
		c.initCmd(),
		c.shortcutsCmd(),
		c.countCmd(),
		versionCmd(),
	)
	return root
}

// openStore opens the configured settings store.
func (c *cli) openStore() (config.Store, error) {
	backend, err := config.ParseBackend(c.v.GetString(keyBackend))
	if err != nil {
		return nil, err
	}
	store, err := config.OpenStore(backend, c.v.GetString(keyConfig))
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}
	return store, nil
}

// withStore opens the store, loads its settings and calls fn.
func (c *cli) withStore(fn func(store config.Store, s config.Settings) error) error {
	store, err := c.openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	s, err := store.Load()
	if err != nil {
		return fmt.Errorf("load settings: %w", err)
	}
	return fn(store, s)
}

// logger builds the logger. The level comes from the flag or environment,
// then from the settings, then defaults to info. w is used when no log
// file is configured.
func (c *cli) logger(s config.Settings, w io.Writer) (*app.Logger, io.Closer, error) {
	level := s.LogLevel
	if c.v.IsSet(keyLogLevel) && c.v.GetString(keyLogLevel) != "" {
		level = c.v.GetString(keyLogLevel)
	}

	cfg := app.DefaultLoggerConfig()
	cfg.Level = app.ParseLogLevel(level)
	cfg.Output = w

	var closer io.Closer = nopCloser{}
	if path := c.v.GetString(keyLogFile); path != "" {
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
		cfg.Output = f
		closer = f
	}
	return app.NewLogger(cfg), closer, nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the wordsmith version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "wordsmith %s\n", version)
			fmt.Fprintf(cmd.OutOrStdout(), "Commit: %s\n", commit)
			fmt.Fprintf(cmd.OutOrStdout(), "Built: %s\n", date)
		},
	}
}
