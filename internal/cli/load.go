package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/bellacasa/bellacasa-datagen/internal/logging"
	"github.com/bellacasa/bellacasa-datagen/internal/warehouse"
)

var (
	loadInputDir     string
	loadDropExisting bool

	loadCmd = &cobra.Command{
		Use:   "load",
		Short: "Bulk-load the generated CSV tables into a Postgres warehouse",
		Long: `Load creates the warehouse schema and inserts every generated CSV
table in foreign-key order using batched multi-row inserts, then records
run metadata (seed, version, row counts) in the datagen_metadata table.`,
		RunE: runLoad,
	}
)

func init() {
	loadCmd.Flags().StringVar(&loadInputDir, "input-dir", "",
		"directory holding the generated CSV tables (default: generate output_dir)")
	loadCmd.Flags().BoolVar(&loadDropExisting, "drop-existing", false,
		"drop existing warehouse tables before loading")
}

func runLoad(cmd *cobra.Command, args []string) error {
	if loadInputDir != "" {
		cfg.Generate.OutputDir = loadInputDir
	}
	if err := cfg.ValidateLoad(); err != nil {
		return err
	}

	ctx := context.Background()
	pool, err := warehouse.Connect(ctx, cfg.Connection)
	if err != nil {
		return err
	}
	defer pool.Close()

	if loadDropExisting {
		logging.Info().Msg("Dropping existing schema")
		if err := warehouse.DropSchema(ctx, pool); err != nil {
			return err
		}
		if err := warehouse.DropMetadata(ctx, pool); err != nil {
			logging.Debug().Err(err).Msg("No metadata table to drop")
		}
	}

	logging.Info().Msg("Creating schema")
	if err := warehouse.CreateSchema(ctx, pool); err != nil {
		return err
	}

	dir := cfg.Generate.OutputDir
	logging.Info().Str("dir", dir).Msg("Loading dataset")
	counts, err := warehouse.LoadDir(ctx, pool, dir)
	if err != nil {
		return err
	}

	if err := warehouse.SaveMetadata(ctx, pool, cfg.Generate.Seed, counts); err != nil {
		return err
	}

	total := 0
	for _, n := range counts {
		total += n
	}
	logging.Info().Int("tables", len(counts)).Int("rows", total).Msg("Load complete")
	return nil
}
