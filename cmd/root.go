// Package cmd assembles the chores command tree
package cmd

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/thenoetrevino/chores/internal/cli"
	"github.com/thenoetrevino/chores/internal/cli/chore"
	"github.com/thenoetrevino/chores/internal/cli/styles"
	"github.com/thenoetrevino/chores/internal/cli/tag"
	"github.com/thenoetrevino/chores/internal/config"
	"github.com/thenoetrevino/chores/internal/logging"
)

// newRootCmd builds the root command with every subcommand registered. The
// returned func closes the log file opened by the pre-run, if any.
func newRootCmd() (*cobra.Command, func() error) {
	v := config.NewViper()
	var logCloser io.Closer
	closeLog := func() error {
		if logCloser == nil {
			return nil
		}
		err := logCloser.Close()
		logCloser = nil
		return err
	}

	rootCmd := &cobra.Command{
		Use:   "chores",
		Short: "Chores - track recurring household chores",
		Long: `Chores keeps track of recurring household chores: how often each one
should be done, when it was last done and how many days are left until it
is due again.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd, v)
			if err != nil {
				return err
			}

			logCloser, err = logging.Init(logging.Options{
				Level:      cfg.Logging.Level,
				File:       cfg.Logging.File,
				MaxSizeMB:  cfg.Logging.MaxSizeMB,
				MaxBackups: cfg.Logging.MaxBackups,
				MaxAgeDays: cfg.Logging.MaxAgeDays,
			})
			if err != nil {
				return cli.Usagef("logging: %w", err)
			}
			slog.Debug("configuration loaded", "database", cfg.Database.Path, "timezone", cfg.Timezone)

			styles.Init(cfg.ColorScheme)

			cmd.SetContext(cli.ContextWithConfig(cmd.Context(), cfg))
			return nil
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.String("config", "", "Config file (default is the user config directory)")
	flags.String("db", "", "Database file (overrides database.path)")
	flags.String("timezone", "", "IANA timezone for calendar math (overrides timezone)")
	flags.String("log-level", "", "Log level: debug, info, warn, error")

	bindings := map[string]string{
		"database.path": "db",
		"timezone":      "timezone",
		"logging.level": "log-level",
	}
	for key, flag := range bindings {
		if err := v.BindPFlag(key, flags.Lookup(flag)); err != nil {
			panic(fmt.Sprintf("failed to bind --%s: %v", flag, err))
		}
	}

	rootCmd.AddCommand(chore.ChoreCmd())
	rootCmd.AddCommand(tag.TagCmd())

	return rootCmd, closeLog
}

// loadConfig reads the config file and layers flag and environment overrides on top
func loadConfig(cmd *cobra.Command, v *viper.Viper) (*config.Config, error) {
	var (
		cfg *config.Config
		err error
	)
	if path, _ := cmd.Flags().GetString("config"); path != "" {
		cfg, err = config.LoadFrom(path)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return nil, err
	}

	cfg.ApplyOverrides(v)
	if err := cfg.Validate(); err != nil {
		return nil, cli.Usagef("invalid configuration: %w", err)
	}
	return cfg, nil
}

// Run executes the command tree with args. A failure is reported on stdout
// as a JSON error object when --json was given, otherwise on stderr, unless
// the command already reported it. The returned error carries the cause for
// exit code mapping.
func Run(args []string) error {
	rootCmd, closeLog := newRootCmd()
	rootCmd.SetArgs(append([]string{}, args...))

	err := rootCmd.Execute()
	if closeErr := closeLog(); closeErr != nil {
		slog.Warn("failed to close log file", "error", closeErr)
	}
	if err == nil {
		return nil
	}

	var reported *cli.ReportedError
	if !errors.As(err, &reported) {
		formatter := &cli.OutputFormatter{JSON: jsonRequested(args)}
		_ = formatter.Error(cli.ErrorCode(err), err.Error())
	}
	return err
}

func jsonRequested(args []string) bool {
	for _, arg := range args {
		if arg == "--" {
			break
		}
		if arg == "--json" || arg == "--json=true" {
			return true
		}
	}
	return false
}
