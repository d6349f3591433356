package warehouse

import (
	"context"
	"testing"
	"time"

	"github.com/bellacasa/bellacasa-datagen/internal/generators"
	"github.com/bellacasa/bellacasa-datagen/internal/pipeline"
	"github.com/bellacasa/bellacasa-datagen/internal/testutil"
)

func TestLoadDirIntegration(t *testing.T) {
	baseConnStr := testutil.SkipIfNoPostgres(t)

	connStr := testutil.CreateTestDB(t, baseConnStr)
	dbName := testutil.GetDBNameFromConnStr(connStr)
	defer testutil.DropTestDB(t, baseConnStr, dbName)

	dir := t.TempDir()
	p := generators.DefaultParams()
	ds, err := pipeline.Run(42, p, dir)
	if err != nil {
		t.Fatalf("Failed to generate dataset: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	pool, err := Connect(ctx, connStr)
	if err != nil {
		t.Fatalf("Failed to connect: %v", err)
	}
	defer pool.Close()

	if err := CreateSchema(ctx, pool); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}

	counts, err := LoadDir(ctx, pool, dir)
	if err != nil {
		t.Fatalf("LoadDir failed: %v", err)
	}

	want := map[string]int{
		"suppliers":            len(ds.Suppliers),
		"materials":            len(ds.Materials),
		"products":             len(ds.Products),
		"bill_of_materials":    len(ds.BOM),
		"customers":            len(ds.Customers),
		"purchase_orders":      len(ds.PurchaseOrders),
		"production_orders":    len(ds.ProductionOrders),
		"sales_orders":         len(ds.SalesOrders),
		"order_line_items":     len(ds.LineItems),
		"inventory_snapshots":  len(ds.InventorySnapshots),
		"daily_metrics":        len(ds.DailyMetrics),
		"supplier_performance": len(ds.SupplierPerformance),
	}
	for table, n := range want {
		if counts[table] != n {
			t.Errorf("Table %s loaded %d rows, want %d", table, counts[table], n)
		}
	}

	// The database agrees with the reported counts.
	var dbOrders int
	if err := pool.QueryRow(ctx, "SELECT COUNT(*) FROM sales_orders").Scan(&dbOrders); err != nil {
		t.Fatalf("Counting sales_orders: %v", err)
	}
	if dbOrders != len(ds.SalesOrders) {
		t.Errorf("sales_orders has %d rows, want %d", dbOrders, len(ds.SalesOrders))
	}

	// NULLs landed where the CSV had empty strings.
	var nullRatings int
	if err := pool.QueryRow(ctx, "SELECT COUNT(*) FROM sales_orders WHERE rating IS NULL").Scan(&nullRatings); err != nil {
		t.Fatalf("Counting null ratings: %v", err)
	}
	if nullRatings == 0 {
		t.Error("Expected some unrated orders to load as NULL")
	}

	if err := SaveMetadata(ctx, pool, 42, counts); err != nil {
		t.Fatalf("SaveMetadata failed: %v", err)
	}
	seed, err := GetMetadataValue(ctx, pool, "seed")
	if err != nil {
		t.Fatalf("GetMetadataValue failed: %v", err)
	}
	if seed != "42" {
		t.Errorf("Metadata seed = %q, want 42", seed)
	}
	rows, err := GetMetadataValue(ctx, pool, "rows_sales_orders")
	if err != nil {
		t.Fatalf("GetMetadataValue failed: %v", err)
	}
	if rows == "" || rows == "0" {
		t.Errorf("Metadata rows_sales_orders = %q", rows)
	}
}

func TestSchemaIdempotent(t *testing.T) {
	baseConnStr := testutil.SkipIfNoPostgres(t)

	connStr := testutil.CreateTestDB(t, baseConnStr)
	dbName := testutil.GetDBNameFromConnStr(connStr)
	defer testutil.DropTestDB(t, baseConnStr, dbName)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	pool, err := Connect(ctx, connStr)
	if err != nil {
		t.Fatalf("Failed to connect: %v", err)
	}
	defer pool.Close()

	if err := CreateSchema(ctx, pool); err != nil {
		t.Fatalf("First CreateSchema failed: %v", err)
	}
	if err := CreateSchema(ctx, pool); err != nil {
		t.Errorf("Second CreateSchema should be a no-op, got: %v", err)
	}

	if err := DropSchema(ctx, pool); err != nil {
		t.Errorf("DropSchema failed: %v", err)
	}
	if err := DropSchema(ctx, pool); err != nil {
		t.Errorf("Second DropSchema should be a no-op, got: %v", err)
	}
}
