// Package app provides the command tree of the schoolsync binary.
package app

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/schoolgis/schoolsync/internal/app/storage"
	"github.com/schoolgis/schoolsync/internal/config"
	"github.com/schoolgis/schoolsync/internal/logging"
	"github.com/schoolgis/schoolsync/internal/versions"
)

// FactoryFunc creates the storage factory for a loaded configuration.
type FactoryFunc func(ctx context.Context, cfg *config.Config) (storage.Factory, error)

// Option customizes the command tree.
type Option func(*cli)

// WithStorageFactory replaces the PostgreSQL storage factory.
func WithStorageFactory(fn FactoryFunc) Option {
	return func(c *cli) {
		c.newFactory = fn
	}
}

type cli struct {
	newFactory FactoryFunc
}

func defaultFactory(ctx context.Context, cfg *config.Config) (storage.Factory, error) {
	return storage.NewStorageFactory(ctx, cfg)
}

// NewRootCmd creates the root command with every subcommand attached.
func NewRootCmd(opts ...Option) *cobra.Command {
	c := &cli{newFactory: defaultFactory}
	for _, opt := range opts {
		opt(c)
	}

	rootCmd := &cobra.Command{
		Use:               "schoolsync",
		DisableAutoGenTag: true,
		SilenceUsage:      true,
		Short:             "School catalog sync pipeline",
		Long: `schoolsync builds a school catalog from the GIS portal and the UDISE+ statistics
service, one district at a time, and serves an operations API over the result.`,
		Run: func(cmd *cobra.Command, _ []string) {
			if err := cmd.Help(); err != nil {
				slog.Error("Error displaying help", "error", err)
			}
		},
	}

	rootCmd.PersistentFlags().String("config", "", "Path to configuration file (YAML format)")
	rootCmd.PersistentFlags().Bool("debug", false, "Enable debug logging")

	rootCmd.AddCommand(
		c.newServeCmd(),
		c.newSyncCmd(),
		c.newSkippedCmd(),
		c.newMasterCmd(),
		newMigrateCmd(),
		newVersionCmd(),
	)

	return rootCmd
}

// flagsViper reads flags with SCHOOLSYNC_* environment fallbacks.
func flagsViper(cmd *cobra.Command) *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(config.EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	if err := v.BindPFlags(cmd.Flags()); err != nil {
		slog.Error("Error binding flags", "error", err)
	}
	return v
}

// loadConfig loads the configuration named by --config or SCHOOLSYNC_CONFIG and
// installs the configured logger. The returned closer flushes the log file.
func loadConfig(cmd *cobra.Command) (*config.Config, io.Closer, error) {
	v := flagsViper(cmd)

	path := v.GetString("config")
	if path == "" {
		return nil, nil, fmt.Errorf("a configuration file is required (--config or %s_CONFIG)", config.EnvPrefix)
	}

	cfg, err := config.LoadConfig(config.WithConfigPath(path))
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	var logOpts []logging.Option
	logOpts = append(logOpts, logging.WithWriter(cmd.ErrOrStderr()))
	if v.GetBool("debug") {
		logOpts = append(logOpts, logging.WithLevel(slog.LevelDebug))
	}
	logger, closer := logging.New(cfg.Logging, logOpts...)
	slog.SetDefault(logger)

	slog.Debug("Loaded configuration", "path", path)
	return cfg, closer, nil
}

func newVersionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		RunE: func(cmd *cobra.Command, _ []string) error {
			info := versions.GetVersionInfo()
			format, err := cmd.Flags().GetString("format")
			if err != nil {
				return fmt.Errorf("failed to get format flag: %w", err)
			}

			if format == "json" {
				output, err := json.MarshalIndent(info, "", "  ")
				if err != nil {
					return fmt.Errorf("failed to format version info: %w", err)
				}
				_, err = fmt.Fprintln(cmd.OutOrStdout(), string(output))
				return err
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "schoolsync %s (commit %s, built %s, %s, %s)\n",
				info.Version, info.Commit, info.BuildDate, info.GoVersion, info.Platform)
			return err
		},
	}
	cmd.Flags().String("format", "", "Output format (json)")
	return cmd
}
