package warehouse

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/bellacasa/bellacasa-datagen/internal/csvio"
	"github.com/bellacasa/bellacasa-datagen/internal/logging"
)

// insertBatchSize is the number of rows per multi-row INSERT.
const insertBatchSize = 500

// LoadDir reads every generated CSV from dir and inserts it into the
// warehouse in foreign-key order. Returns per-table row counts.
func LoadDir(ctx context.Context, pool *pgxpool.Pool, dir string) (map[string]int, error) {
	counts := make(map[string]int, len(loadOrder))
	for _, table := range loadOrder {
		n, err := loadTable(ctx, pool, dir, table)
		if err != nil {
			return nil, fmt.Errorf("loading %s: %w", table, err)
		}
		counts[table] = n
		logging.Info().Str("table", table).Int("rows", n).Msg("Table loaded")
	}
	return counts, nil
}

// loadTable bulk-inserts one CSV file. Every value is passed as a quoted
// literal and coerced by Postgres to the column type; empty strings become
// NULL.
func loadTable(ctx context.Context, pool *pgxpool.Pool, dir, table string) (int, error) {
	header, records, err := csvio.ReadRaw(dir, table+".csv")
	if err != nil {
		return 0, err
	}

	columns := "(" + strings.Join(header, ", ") + ")"
	values := make([]string, 0, insertBatchSize)

	flush := func() error {
		if len(values) == 0 {
			return nil
		}
		sql := fmt.Sprintf("INSERT INTO %s %s VALUES %s", table, columns, strings.Join(values, ", "))
		if _, err := pool.Exec(ctx, sql); err != nil {
			return err
		}
		values = values[:0]
		return nil
	}

	for _, rec := range records {
		values = append(values, rowLiteral(rec))
		if len(values) >= insertBatchSize {
			if err := flush(); err != nil {
				return 0, err
			}
		}
	}
	if err := flush(); err != nil {
		return 0, err
	}
	return len(records), nil
}

// rowLiteral renders one CSV record as a SQL values tuple.
func rowLiteral(rec []string) string {
	var b strings.Builder
	b.WriteByte('(')
	for i, field := range rec {
		if i > 0 {
			b.WriteString(", ")
		}
		if field == "" {
			b.WriteString("NULL")
			continue
		}
		b.WriteByte('\'')
		b.WriteString(escapeSingleQuote(field))
		b.WriteByte('\'')
	}
	b.WriteByte(')')
	return b.String()
}

func escapeSingleQuote(s string) string {
	return strings.ReplaceAll(s, "'", "''")
}
