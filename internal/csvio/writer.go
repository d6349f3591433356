// Package csvio persists the dataset tables as CSV and reads them back.
// Column names and order match the published table layout: ISO-8601 dates,
// money with two decimals, percentages and ratings with one, empty string
// for missing values.
package csvio

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/bellacasa/bellacasa-datagen/internal/model"
)

// Table file names, in generation order.
const (
	FileSuppliers           = "suppliers.csv"
	FileMaterials           = "materials.csv"
	FileProducts            = "products.csv"
	FileBOM                 = "bill_of_materials.csv"
	FileCustomers           = "customers.csv"
	FilePurchaseOrders      = "purchase_orders.csv"
	FileProductionOrders    = "production_orders.csv"
	FileSalesOrders         = "sales_orders.csv"
	FileLineItems           = "order_line_items.csv"
	FileInventorySnapshots  = "inventory_snapshots.csv"
	FileDailyMetrics        = "daily_metrics.csv"
	FileSupplierPerformance = "supplier_performance.csv"
)

// AllFiles lists every table file in generation order.
var AllFiles = []string{
	FileSuppliers, FileMaterials, FileProducts, FileBOM, FileCustomers,
	FilePurchaseOrders, FileProductionOrders, FileSalesOrders, FileLineItems,
	FileInventorySnapshots, FileDailyMetrics, FileSupplierPerformance,
}

func date(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format("2006-01-02")
}

func money(v float64) string { return strconv.FormatFloat(v, 'f', 2, 64) }
func dec1(v float64) string  { return strconv.FormatFloat(v, 'f', 1, 64) }
func dec4(v float64) string  { return strconv.FormatFloat(v, 'f', 4, 64) }
func integer(v int) string   { return strconv.Itoa(v) }

func boolean(v bool) string {
	if v {
		return "True"
	}
	return "False"
}

func writeTable(dir, name string, header []string, rows [][]string) error {
	path := filepath.Join(dir, name)
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(header); err != nil {
		return fmt.Errorf("writing %s header: %w", name, err)
	}
	if err := w.WriteAll(rows); err != nil {
		return fmt.Errorf("writing %s rows: %w", name, err)
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("flushing %s: %w", name, err)
	}
	return f.Close()
}

// WriteSuppliers persists suppliers.csv.
func WriteSuppliers(dir string, suppliers []model.Supplier) error {
	header := []string{
		"supplier_id", "name", "country", "category", "lead_time_days",
		"reliability_score", "payment_terms", "city", "latitude", "longitude",
	}
	rows := make([][]string, 0, len(suppliers))
	for _, s := range suppliers {
		rows = append(rows, []string{
			s.ID, s.Name, s.Country, s.Category, integer(s.LeadTimeDays),
			strconv.FormatFloat(s.ReliabilityScore, 'f', 2, 64), s.PaymentTerms,
			s.City, dec4(s.Latitude), dec4(s.Longitude),
		})
	}
	return writeTable(dir, FileSuppliers, header, rows)
}

// WriteMaterials persists materials.csv.
func WriteMaterials(dir string, materials []model.Material) error {
	header := []string{
		"material_id", "name", "category", "unit", "unit_cost",
		"supplier_id", "reorder_point", "reorder_qty",
	}
	rows := make([][]string, 0, len(materials))
	for _, m := range materials {
		rows = append(rows, []string{
			m.ID, m.Name, m.Category, m.Unit, money(m.UnitCost),
			m.SupplierID, integer(m.ReorderPoint), integer(m.ReorderQty),
		})
	}
	return writeTable(dir, FileMaterials, header, rows)
}

// WriteProducts persists products.csv.
func WriteProducts(dir string, products []model.Product) error {
	header := []string{
		"product_id", "name", "category", "base_price", "production_cost",
		"weight_kg", "active",
	}
	rows := make([][]string, 0, len(products))
	for _, p := range products {
		rows = append(rows, []string{
			p.ID, p.Name, p.Category, money(p.BasePrice), money(p.ProductionCost),
			dec1(p.WeightKg), boolean(p.Active),
		})
	}
	return writeTable(dir, FileProducts, header, rows)
}

// WriteBOM persists bill_of_materials.csv.
func WriteBOM(dir string, bom []model.BOMLine) error {
	header := []string{"bom_id", "product_id", "material_id", "quantity_needed", "unit"}
	rows := make([][]string, 0, len(bom))
	for _, b := range bom {
		rows = append(rows, []string{
			b.ID, b.ProductID, b.MaterialID,
			strconv.FormatFloat(b.QuantityNeeded, 'f', -1, 64), b.Unit,
		})
	}
	return writeTable(dir, FileBOM, header, rows)
}

// WriteCustomers persists customers.csv.
func WriteCustomers(dir string, customers []model.Customer) error {
	header := []string{
		"customer_id", "name", "type", "channel", "city", "region",
		"created_date", "lifetime_value", "segment", "email", "phone",
	}
	rows := make([][]string, 0, len(customers))
	for _, c := range customers {
		rows = append(rows, []string{
			c.ID, c.Name, c.Type, c.Channel, c.City, c.Region,
			date(c.CreatedDate), money(c.LifetimeValue), c.Segment,
			c.Email, c.Phone,
		})
	}
	return writeTable(dir, FileCustomers, header, rows)
}

// WritePurchaseOrders persists purchase_orders.csv. The actual_delivery
// column is empty unless the order was delivered.
func WritePurchaseOrders(dir string, orders []model.PurchaseOrder) error {
	header := []string{
		"po_id", "supplier_id", "material_id", "quantity", "unit_cost",
		"total_cost", "order_date", "expected_delivery", "actual_delivery", "status",
	}
	rows := make([][]string, 0, len(orders))
	for _, o := range orders {
		rows = append(rows, []string{
			o.ID, o.SupplierID, o.MaterialID, integer(o.Quantity),
			money(o.UnitCost), money(o.TotalCost), date(o.OrderDate),
			date(o.ExpectedDelivery), date(o.ActualDelivery), o.Status,
		})
	}
	return writeTable(dir, FilePurchaseOrders, header, rows)
}

// WriteProductionOrders persists production_orders.csv.
func WriteProductionOrders(dir string, orders []model.ProductionOrder) error {
	header := []string{
		"production_id", "product_id", "quantity", "start_date", "end_date",
		"status", "production_cost", "defect_count",
	}
	rows := make([][]string, 0, len(orders))
	for _, o := range orders {
		rows = append(rows, []string{
			o.ID, o.ProductID, integer(o.Quantity), date(o.StartDate),
			date(o.EndDate), o.Status, money(o.ProductionCost), integer(o.DefectCount),
		})
	}
	return writeTable(dir, FileProductionOrders, header, rows)
}

// WriteSalesOrders persists sales_orders.csv. The rating column is empty
// for unrated orders.
func WriteSalesOrders(dir string, orders []model.SalesOrder) error {
	header := []string{
		"order_id", "customer_id", "order_date", "channel", "status",
		"subtotal", "discount_pct", "total", "shipping_cost", "delivery_date", "rating",
	}
	rows := make([][]string, 0, len(orders))
	for _, o := range orders {
		rating := ""
		if o.Rating != nil {
			rating = dec1(*o.Rating)
		}
		rows = append(rows, []string{
			o.ID, o.CustomerID, date(o.OrderDate), o.Channel, o.Status,
			money(o.Subtotal), dec1(o.DiscountPct), money(o.Total),
			money(o.ShippingCost), date(o.DeliveryDate), rating,
		})
	}
	return writeTable(dir, FileSalesOrders, header, rows)
}

// WriteLineItems persists order_line_items.csv.
func WriteLineItems(dir string, lines []model.LineItem) error {
	header := []string{"line_id", "order_id", "product_id", "quantity", "unit_price", "line_total"}
	rows := make([][]string, 0, len(lines))
	for _, l := range lines {
		rows = append(rows, []string{
			l.ID, l.OrderID, l.ProductID, integer(l.Quantity),
			money(l.UnitPrice), money(l.LineTotal),
		})
	}
	return writeTable(dir, FileLineItems, header, rows)
}

// WriteInventorySnapshots persists inventory_snapshots.csv.
func WriteInventorySnapshots(dir string, snaps []model.InventorySnapshot) error {
	header := []string{
		"snapshot_id", "date", "product_id", "quantity_on_hand",
		"quantity_reserved", "quantity_available", "reorder_needed",
	}
	rows := make([][]string, 0, len(snaps))
	for _, s := range snaps {
		rows = append(rows, []string{
			s.ID, date(s.Date), s.ProductID, integer(s.OnHand),
			integer(s.Reserved), integer(s.Available), boolean(s.ReorderNeeded),
		})
	}
	return writeTable(dir, FileInventorySnapshots, header, rows)
}

// WriteDailyMetrics persists daily_metrics.csv.
func WriteDailyMetrics(dir string, metrics []model.DailyMetric) error {
	header := []string{
		"date", "revenue", "orders", "avg_order_value", "new_customers",
		"returning_customers", "production_units", "defect_rate",
		"inventory_turnover", "online_share",
	}
	rows := make([][]string, 0, len(metrics))
	for _, m := range metrics {
		rows = append(rows, []string{
			date(m.Date), money(m.Revenue), integer(m.Orders), money(m.AvgOrderValue),
			integer(m.NewCustomers), integer(m.ReturningCustomers),
			integer(m.ProductionUnits), dec4(m.DefectRate),
			money(m.InventoryTurnover), dec4(m.OnlineShare),
		})
	}
	return writeTable(dir, FileDailyMetrics, header, rows)
}

// WriteSupplierPerformance persists supplier_performance.csv. The
// on_time_pct column is empty for months with no delivered orders.
func WriteSupplierPerformance(dir string, records []model.SupplierPerformance) error {
	header := []string{
		"month", "supplier_id", "on_time_pct", "quality_score",
		"avg_lead_days", "total_orders", "total_spend",
	}
	rows := make([][]string, 0, len(records))
	for _, rec := range records {
		onTime := ""
		if rec.OnTimePct != nil {
			onTime = dec1(*rec.OnTimePct)
		}
		rows = append(rows, []string{
			rec.Month, rec.SupplierID, onTime, dec1(rec.QualityScore),
			dec1(rec.AvgLeadDays), integer(rec.TotalOrders), money(rec.TotalSpend),
		})
	}
	return writeTable(dir, FileSupplierPerformance, header, rows)
}

// WriteAll persists every table of the dataset into dir, creating it first.
func WriteAll(dir string, ds *model.Dataset) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating output directory %s: %w", dir, err)
	}
	steps := []func() error{
		func() error { return WriteSuppliers(dir, ds.Suppliers) },
		func() error { return WriteMaterials(dir, ds.Materials) },
		func() error { return WriteProducts(dir, ds.Products) },
		func() error { return WriteBOM(dir, ds.BOM) },
		func() error { return WriteCustomers(dir, ds.Customers) },
		func() error { return WritePurchaseOrders(dir, ds.PurchaseOrders) },
		func() error { return WriteProductionOrders(dir, ds.ProductionOrders) },
		func() error { return WriteSalesOrders(dir, ds.SalesOrders) },
		func() error { return WriteLineItems(dir, ds.LineItems) },
		func() error { return WriteInventorySnapshots(dir, ds.InventorySnapshots) },
		func() error { return WriteDailyMetrics(dir, ds.DailyMetrics) },
		func() error { return WriteSupplierPerformance(dir, ds.SupplierPerformance) },
	}
	for _, step := range steps {
		if err := step(); err != nil {
			return err
		}
	}
	return nil
}
