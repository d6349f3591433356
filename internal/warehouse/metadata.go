package warehouse

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/bellacasa/bellacasa-datagen/internal/logging"
	"github.com/bellacasa/bellacasa-datagen/pkg/version"
)

const metadataTable = "datagen_metadata"

const createMetadataTableSQL = `
CREATE TABLE IF NOT EXISTS datagen_metadata (
    key   TEXT PRIMARY KEY,
    value TEXT NOT NULL
)`

// SaveMetadata records the load run in the warehouse: seed, tool version,
// load timestamp, and per-table row counts.
func SaveMetadata(ctx context.Context, pool *pgxpool.Pool, seed int64, counts map[string]int) error {
	if _, err := pool.Exec(ctx, createMetadataTableSQL); err != nil {
		return fmt.Errorf("failed to create metadata table: %w", err)
	}

	metadata := map[string]string{
		"seed":      strconv.FormatInt(seed, 10),
		"version":   version.Short(),
		"loaded_at": time.Now().UTC().Format(time.RFC3339),
	}
	for table, n := range counts {
		metadata["rows_"+table] = strconv.Itoa(n)
	}

	for key, value := range metadata {
		_, err := pool.Exec(ctx, `
            INSERT INTO datagen_metadata (key, value) VALUES ($1, $2)
            ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value
        `, key, value)
		if err != nil {
			return fmt.Errorf("failed to save metadata %s: %w", key, err)
		}
	}

	logging.Debug().Int64("seed", seed).Msg("Saved load metadata")
	return nil
}

// GetMetadataValue retrieves a single metadata value by key.
func GetMetadataValue(ctx context.Context, pool *pgxpool.Pool, key string) (string, error) {
	var value string
	err := pool.QueryRow(ctx, `
        SELECT value FROM datagen_metadata WHERE key = $1
    `, key).Scan(&value)
	if err != nil {
		return "", err
	}
	return value, nil
}

// DropMetadata drops the metadata table.
func DropMetadata(ctx context.Context, pool *pgxpool.Pool) error {
	_, err := pool.Exec(ctx, fmt.Sprintf("DROP TABLE IF EXISTS %s", metadataTable))
	return err
}
