// Package cli implements the command-line interface for bellacasa-datagen.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/bellacasa/bellacasa-datagen/internal/config"
	"github.com/bellacasa/bellacasa-datagen/internal/logging"
	"github.com/bellacasa/bellacasa-datagen/pkg/version"
)

var (
	// Global flags
	cfgFile    string
	connection string
	logLevel   string

	// Global config
	cfg *config.Config

	rootCmd = &cobra.Command{
		Use:   "bellacasa-datagen",
		Short: "Synthetic dataset generator for the Bella Casa Furniture warehouse",
		Long: `bellacasa-datagen produces the Bella Casa Furniture analytical dataset:
suppliers, materials, products, customers, purchasing, production, sales and
derived metrics, with a set of engineered statistical patterns built in
(channel growth, discount anomalies, seasonality, margin compression, and
customer concentration).

A fixed seed reproduces the dataset byte for byte. The generated CSV tables
can be bulk-loaded into a PostgreSQL warehouse and validated in place.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initConfig()
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}
)

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "",
		"config file (default: ./bellacasa-datagen.yaml)")
	rootCmd.PersistentFlags().StringVar(&connection, "connection", "",
		"PostgreSQL connection string")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "",
		"log level (debug, info, warn, error)")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(loadCmd)
	rootCmd.AddCommand(validateCmd)
}

func initConfig() error {
	var err error
	cfg, err = config.Load(cfgFile)
	if err != nil {
		return err
	}

	// Override with CLI flags
	if connection != "" {
		cfg.Connection = connection
	}
	if logLevel != "" {
		cfg.LogLevel = logLevel
	}

	// Reinitialize logger with config
	logging.Init(logging.Config{
		Level:  cfg.LogLevel,
		Pretty: true,
	})

	return nil
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Println(version.Info())
	},
}
