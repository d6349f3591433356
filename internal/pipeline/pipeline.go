// Package pipeline orchestrates dataset generation: every stage runs in
// dependency order off one seeded random source, the enforcement pass
// rewrites the sales assignment, and the final tables are persisted as CSV.
package pipeline

import (
	"fmt"

	"github.com/bellacasa/bellacasa-datagen/internal/csvio"
	"github.com/bellacasa/bellacasa-datagen/internal/datagen"
	"github.com/bellacasa/bellacasa-datagen/internal/generators"
	"github.com/bellacasa/bellacasa-datagen/internal/logging"
	"github.com/bellacasa/bellacasa-datagen/internal/model"
)

// Generate runs every generation stage and returns the final dataset.
// The same *Rand drives all stages, so a fixed seed reproduces the run
// byte for byte.
func Generate(r *datagen.Rand, p generators.Params) *model.Dataset {
	ds := &model.Dataset{}

	ds.Suppliers = generators.GenerateSuppliers(r)
	logging.Info().Int("rows", len(ds.Suppliers)).Msg("Generated suppliers")

	ds.Materials = generators.GenerateMaterials(r)
	logging.Info().Int("rows", len(ds.Materials)).Msg("Generated materials")

	ds.Products = generators.GenerateProducts(r)
	logging.Info().Int("rows", len(ds.Products)).Msg("Generated products")

	ds.BOM = generators.GenerateBOM(r)
	logging.Info().Int("rows", len(ds.BOM)).Msg("Generated bill of materials")

	customers, anchorID := generators.GenerateCustomers(r, p)
	ds.Customers = customers
	ds.AnchorCustomerID = anchorID
	logging.Info().Int("rows", len(ds.Customers)).Msg("Generated customers")

	ds.PurchaseOrders = generators.GeneratePurchaseOrders(r, p, ds.Suppliers, ds.Materials)
	logging.Info().Int("rows", len(ds.PurchaseOrders)).Msg("Generated purchase orders")

	ds.ProductionOrders = generators.GenerateProductionOrders(r, p, ds.Products)
	logging.Info().Int("rows", len(ds.ProductionOrders)).Msg("Generated production orders")

	sales, lineItems := generators.GenerateSales(r, p, ds.Customers, ds.Products)
	ds.SalesOrders = sales
	ds.LineItems = lineItems
	logging.Info().
		Int("orders", len(ds.SalesOrders)).
		Int("line_items", len(ds.LineItems)).
		Msg("Generated sales orders")

	ds.SalesOrders, ds.Customers = generators.EnforceAnchorShare(r, p, anchorID, ds.SalesOrders, ds.Customers)
	logging.Info().Str("anchor_id", anchorID).Msg("Applied anchor concentration pass")

	ds.InventorySnapshots = generators.GenerateInventory(r, p, ds.Products)
	logging.Info().Int("rows", len(ds.InventorySnapshots)).Msg("Generated inventory snapshots")

	ds.DailyMetrics = generators.GenerateDailyMetrics(r, p, ds.SalesOrders, ds.ProductionOrders)
	logging.Info().Int("rows", len(ds.DailyMetrics)).Msg("Generated daily metrics")

	ds.SupplierPerformance = generators.GenerateSupplierPerformance(r, p, ds.Suppliers, ds.PurchaseOrders)
	logging.Info().Int("rows", len(ds.SupplierPerformance)).Msg("Generated supplier performance")

	return ds
}

// Run generates the dataset and persists every table into outputDir.
func Run(seed int64, p generators.Params, outputDir string) (*model.Dataset, error) {
	r := datagen.New(seed)
	ds := Generate(r, p)
	if err := csvio.WriteAll(outputDir, ds); err != nil {
		return nil, fmt.Errorf("persisting dataset: %w", err)
	}
	logging.Info().Str("dir", outputDir).Msg("Dataset written")
	return ds, nil
}
