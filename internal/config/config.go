// Package config handles configuration management for bellacasa-datagen.
// Configuration is loaded from config files and CLI flags (no environment
// variables). CLI flags take precedence over config file values.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/viper"
)

// DateFormat is the layout used for all dates in config files and CSV output.
const DateFormat = "2006-01-02"

// Config holds all configuration for bellacasa-datagen.
type Config struct {
	// Connection is the Postgres connection string for the warehouse.
	Connection string `mapstructure:"connection"`

	// LogLevel controls logging verbosity (debug, info, warn, error).
	LogLevel string `mapstructure:"log_level"`

	// Generate holds configuration for the generate subcommand.
	Generate GenerateConfig `mapstructure:"generate"`
}

// GenerateConfig holds configuration for dataset generation.
type GenerateConfig struct {
	// Seed is the random seed; the same seed yields byte-identical output.
	Seed int64 `mapstructure:"seed"`

	// StartDate and EndDate bound every generated date (YYYY-MM-DD).
	StartDate string `mapstructure:"start_date"`
	EndDate   string `mapstructure:"end_date"`

	// OutputDir is where the CSV tables are written.
	OutputDir string `mapstructure:"output_dir"`

	// Target row counts.
	Customers        int `mapstructure:"customers"`
	PurchaseOrders   int `mapstructure:"purchase_orders"`
	ProductionOrders int `mapstructure:"production_orders"`
	SalesOrders      int `mapstructure:"sales_orders"`

	// AnchorName is the customer whose revenue share is forced to
	// AnchorShare with a last order in the month of AnchorLastOrder.
	AnchorName      string  `mapstructure:"anchor_name"`
	AnchorShare     float64 `mapstructure:"anchor_share"`
	AnchorLastOrder string  `mapstructure:"anchor_last_order"`

	// Story cutover dates (YYYY-MM-DD).
	RelaunchDate string `mapstructure:"relaunch_date"`
	CostHikeDate string `mapstructure:"cost_hike_date"`
}

// DefaultConfig returns a Config with default values. The defaults describe
// the canonical Bella Casa Furniture dataset.
func DefaultConfig() *Config {
	return &Config{
		LogLevel: "info",
		Generate: GenerateConfig{
			Seed:             42,
			StartDate:        "2023-07-01",
			EndDate:          "2025-01-31",
			OutputDir:        "data",
			Customers:        800,
			PurchaseOrders:   1200,
			ProductionOrders: 600,
			SalesOrders:      3500,
			AnchorName:       "Rossi Interiors",
			AnchorShare:      0.12,
			AnchorLastOrder:  "2024-11-15",
			RelaunchDate:     "2024-03-01",
			CostHikeDate:     "2024-10-01",
		},
	}
}

// Load reads configuration from config files.
// Config file locations (in order of precedence):
// 1. Path specified by configFile parameter
// 2. ./bellacasa-datagen.yaml
// 3. ~/.config/bellacasa-datagen/config.yaml
func Load(configFile string) (*Config, error) {
	v := viper.New()

	v.SetConfigName("bellacasa-datagen")
	v.SetConfigType("yaml")

	v.AddConfigPath(".")
	if home, err := os.UserHomeDir(); err == nil {
		v.AddConfigPath(filepath.Join(home, ".config", "bellacasa-datagen"))
	}

	if configFile != "" {
		v.SetConfigFile(configFile)
	}

	// Read config file (ignore if not found)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := DefaultConfig()

	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("error parsing config: %w", err)
	}

	return cfg, nil
}

// ValidateGenerate checks configuration required for the generate command.
// Invalid generation config fails the run before any table is produced.
func (c *Config) ValidateGenerate() error {
	g := c.Generate

	start, err := time.Parse(DateFormat, g.StartDate)
	if err != nil {
		return fmt.Errorf("invalid start_date %q: %w", g.StartDate, err)
	}
	end, err := time.Parse(DateFormat, g.EndDate)
	if err != nil {
		return fmt.Errorf("invalid end_date %q: %w", g.EndDate, err)
	}
	if !end.After(start) {
		return fmt.Errorf("end_date %s must be after start_date %s", g.EndDate, g.StartDate)
	}

	for name, n := range map[string]int{
		"customers":         g.Customers,
		"purchase_orders":   g.PurchaseOrders,
		"production_orders": g.ProductionOrders,
		"sales_orders":      g.SalesOrders,
	} {
		if n <= 0 {
			return fmt.Errorf("%s target must be positive, got %d", name, n)
		}
	}

	if g.OutputDir == "" {
		return fmt.Errorf("output_dir is required")
	}
	if g.AnchorName == "" {
		return fmt.Errorf("anchor_name is required")
	}
	if g.AnchorShare <= 0 || g.AnchorShare >= 1 {
		return fmt.Errorf("anchor_share must be in (0, 1), got %v", g.AnchorShare)
	}
	if _, err := time.Parse(DateFormat, g.AnchorLastOrder); err != nil {
		return fmt.Errorf("invalid anchor_last_order %q: %w", g.AnchorLastOrder, err)
	}
	if _, err := time.Parse(DateFormat, g.RelaunchDate); err != nil {
		return fmt.Errorf("invalid relaunch_date %q: %w", g.RelaunchDate, err)
	}
	if _, err := time.Parse(DateFormat, g.CostHikeDate); err != nil {
		return fmt.Errorf("invalid cost_hike_date %q: %w", g.CostHikeDate, err)
	}

	return nil
}

// ValidateLoad checks configuration required for the load command.
func (c *Config) ValidateLoad() error {
	if c.Connection == "" {
		return fmt.Errorf("connection string is required")
	}
	if c.Generate.OutputDir == "" {
		return fmt.Errorf("output_dir is required")
	}
	return nil
}

// MustDate parses a config date that has already passed validation.
func MustDate(s string) time.Time {
	t, err := time.Parse(DateFormat, s)
	if err != nil {
		panic(fmt.Sprintf("config date %q not validated: %v", s, err))
	}
	return t
}
