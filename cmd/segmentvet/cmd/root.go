package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/solatis/segmentvet/internal/core/config"
	"github.com/solatis/segmentvet/internal/core/logging"
)

// Version is the CLI release version.
const Version = "0.1.0"

// rootOptions holds the persistent flags shared by every command.
type rootOptions struct {
	configFile  string
	dbURL       string
	catalogPath string
	logLevel    string
	logFormat   string

	logger *slog.Logger
}

// NewRootCommand builds the segmentvet command tree.
func NewRootCommand() *cobra.Command {
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:           "segmentvet",
		Short:         "Amazon DSP audience segment compatibility analyzer",
		Long:          `segmentvet checks Amazon DSP audience segments against a publisher's inventory and projects campaign reach, impressions and cost.`,
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logger, err := logging.New(cmd.ErrOrStderr(), opts.logLevel, opts.logFormat)
			if err != nil {
				return err
			}
			opts.logger = logger
			slog.SetDefault(logger)
			return nil
		},
	}

	rootCmd.PersistentFlags().StringVar(&opts.configFile, "config", "", "config file path")
	rootCmd.PersistentFlags().StringVar(&opts.dbURL, "db-url", "", "database connection URL (sqlite://path or postgres://...)")
	rootCmd.PersistentFlags().StringVar(&opts.catalogPath, "catalog", "", "segment catalog file (.yaml, .yml or .json)")
	rootCmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "info", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&opts.logFormat, "log-format", "json", "log format (json, text)")

	rootCmd.AddCommand(
		newServeCmd(opts),
		newMigrateCmd(opts),
		newSegmentsCmd(opts),
		newProjectCmd(opts),
		newLimitationsCmd(opts),
	)
	return rootCmd
}

// Execute runs the root command against os.Args.
func Execute() error {
	rootCmd := NewRootCommand()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return err
	}
	return nil
}

// loadConfig reads the config file and environment, then applies the
// persistent flags that were set explicitly.
func (o *rootOptions) loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.LoadConfig(o.configFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	if cmd.Flags().Changed("db-url") {
		cfg.Database.URL = o.dbURL
	}
	if cmd.Flags().Changed("catalog") {
		cfg.Catalog.Path = o.catalogPath
	}
	return cfg, nil
}

// log returns the configured logger, falling back to the process default.
func (o *rootOptions) log() *slog.Logger {
	if o.logger != nil {
		return o.logger
	}
	return slog.Default()
}
