package main

import (
	"log/slog"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/zoobzio/exprql/internal/cli"
	"github.com/zoobzio/exprql/internal/config"
	"github.com/zoobzio/exprql/internal/logging"
)

var (
	// Global state set during PersistentPreRunE
	cfg        *config.Config
	configPath string
	logger     = logging.Discard()

	// Persistent flags
	cfgFile     string
	dialectFlag string
	dsnFlag     string
	logLevel    string
	noColor     bool
)

var rootCmd = &cobra.Command{
	Use:   "exprql",
	Short: "Build and render SQL from expression trees",
	Long: `exprql - SQL expression algebra

exprql renders SELECT statements assembled from flags to dialect-aware SQL
text, and can run them against a configured database.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if noColor {
			color.NoColor = true
		}

		// Skip config loading for help/completion/version commands
		if cmd.Name() == "help" || cmd.Name() == "completion" || cmd.Name() == "version" {
			return nil
		}

		var err error
		cfg, configPath, err = config.Load(cfgFile)
		if err != nil {
			return cli.ConfigError("loading configuration", err)
		}

		cfg.Dialect = resolveString(dialectFlag, cfg.Dialect)
		cfg.Database.DSN = resolveString(dsnFlag, cfg.Database.DSN)
		cfg.Log.Level = resolveString(logLevel, cfg.Log.Level)
		if err := cfg.Validate(); err != nil {
			return cli.ConfigError("invalid configuration", err)
		}

		logger, err = logging.New(os.Stderr, cfg.Log.Level, cfg.Log.Format)
		if err != nil {
			return cli.ConfigError("configuring logger", err)
		}
		slog.SetDefault(logger)
		if configPath != "" {
			logger.Debug("loaded configuration", "path", configPath)
		}
		return nil
	},
	SilenceUsage:  true, // Don't show usage on errors
	SilenceErrors: true, // We handle errors ourselves
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: auto-discover exprql.yaml)")
	rootCmd.PersistentFlags().StringVar(&dialectFlag, "dialect", "", "target dialect (overrides config)")
	rootCmd.PersistentFlags().StringVar(&dsnFlag, "dsn", "", "database connection string (overrides config)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level: debug, info, warn, error")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")

	rootCmd.AddCommand(renderCmd)
	rootCmd.AddCommand(queryCmd)
	rootCmd.AddCommand(literalCmd)
	rootCmd.AddCommand(versionCmd)
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		cli.ExitWithError(err)
	}
}

// resolveString returns the first non-empty string from the provided values.
// Used to implement precedence: flag > config > default.
func resolveString(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
