package csvio

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/bellacasa/bellacasa-datagen/internal/model"
)

// row is one CSV record indexed by column name.
type row struct {
	file   string
	line   int
	fields map[string]string
}

func (r row) str(col string) string { return r.fields[col] }

func (r row) float(col string) (float64, error) {
	s := r.fields[col]
	if s == "" {
		return 0, nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("%s line %d: column %s: %w", r.file, r.line, col, err)
	}
	return v, nil
}

func (r row) int(col string) (int, error) {
	s := r.fields[col]
	if s == "" {
		return 0, nil
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%s line %d: column %s: %w", r.file, r.line, col, err)
	}
	return v, nil
}

func (r row) date(col string) (time.Time, error) {
	s := r.fields[col]
	if s == "" {
		return time.Time{}, nil
	}
	// Dates loaded back may carry a pandas-style timestamp suffix.
	if i := strings.IndexByte(s, ' '); i > 0 {
		s = s[:i]
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%s line %d: column %s: %w", r.file, r.line, col, err)
	}
	return t, nil
}

func (r row) bool(col string) bool {
	switch strings.ToLower(r.fields[col]) {
	case "true", "1":
		return true
	}
	return false
}

// readTable loads a CSV file and yields its records as name-indexed rows.
func readTable(dir, name string) ([]row, error) {
	path := filepath.Join(dir, name)
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	rd := csv.NewReader(f)
	records, err := rd.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("reading %s: empty file", path)
	}

	header := records[0]
	rows := make([]row, 0, len(records)-1)
	for i, rec := range records[1:] {
		fields := make(map[string]string, len(header))
		for j, col := range header {
			if j < len(rec) {
				fields[col] = rec[j]
			}
		}
		rows = append(rows, row{file: name, line: i + 2, fields: fields})
	}
	return rows, nil
}

// ReadSuppliers loads suppliers.csv.
func ReadSuppliers(dir string) ([]model.Supplier, error) {
	rows, err := readTable(dir, FileSuppliers)
	if err != nil {
		return nil, err
	}
	out := make([]model.Supplier, 0, len(rows))
	for _, r := range rows {
		lead, err := r.int("lead_time_days")
		if err != nil {
			return nil, err
		}
		rel, err := r.float("reliability_score")
		if err != nil {
			return nil, err
		}
		lat, err := r.float("latitude")
		if err != nil {
			return nil, err
		}
		lon, err := r.float("longitude")
		if err != nil {
			return nil, err
		}
		out = append(out, model.Supplier{
			ID:               r.str("supplier_id"),
			Name:             r.str("name"),
			Country:          r.str("country"),
			City:             r.str("city"),
			Latitude:         lat,
			Longitude:        lon,
			Category:         r.str("category"),
			LeadTimeDays:     lead,
			ReliabilityScore: rel,
			PaymentTerms:     r.str("payment_terms"),
		})
	}
	return out, nil
}

// ReadProducts loads products.csv.
func ReadProducts(dir string) ([]model.Product, error) {
	rows, err := readTable(dir, FileProducts)
	if err != nil {
		return nil, err
	}
	out := make([]model.Product, 0, len(rows))
	for _, r := range rows {
		base, err := r.float("base_price")
		if err != nil {
			return nil, err
		}
		cost, err := r.float("production_cost")
		if err != nil {
			return nil, err
		}
		weight, err := r.float("weight_kg")
		if err != nil {
			return nil, err
		}
		out = append(out, model.Product{
			ID:             r.str("product_id"),
			Name:           r.str("name"),
			Category:       r.str("category"),
			BasePrice:      base,
			ProductionCost: cost,
			WeightKg:       weight,
			Active:         r.bool("active"),
		})
	}
	return out, nil
}

// ReadMaterials loads materials.csv.
func ReadMaterials(dir string) ([]model.Material, error) {
	rows, err := readTable(dir, FileMaterials)
	if err != nil {
		return nil, err
	}
	out := make([]model.Material, 0, len(rows))
	for _, r := range rows {
		unitCost, err := r.float("unit_cost")
		if err != nil {
			return nil, err
		}
		point, err := r.int("reorder_point")
		if err != nil {
			return nil, err
		}
		qty, err := r.int("reorder_qty")
		if err != nil {
			return nil, err
		}
		out = append(out, model.Material{
			ID:           r.str("material_id"),
			Name:         r.str("name"),
			Category:     r.str("category"),
			Unit:         r.str("unit"),
			UnitCost:     unitCost,
			SupplierID:   r.str("supplier_id"),
			ReorderPoint: point,
			ReorderQty:   qty,
		})
	}
	return out, nil
}

// ReadBOM loads bill_of_materials.csv.
func ReadBOM(dir string) ([]model.BOMLine, error) {
	rows, err := readTable(dir, FileBOM)
	if err != nil {
		return nil, err
	}
	out := make([]model.BOMLine, 0, len(rows))
	for _, r := range rows {
		qty, err := r.float("quantity_needed")
		if err != nil {
			return nil, err
		}
		out = append(out, model.BOMLine{
			ID:             r.str("bom_id"),
			ProductID:      r.str("product_id"),
			MaterialID:     r.str("material_id"),
			QuantityNeeded: qty,
			Unit:           r.str("unit"),
		})
	}
	return out, nil
}

// ReadInventorySnapshots loads inventory_snapshots.csv.
func ReadInventorySnapshots(dir string) ([]model.InventorySnapshot, error) {
	rows, err := readTable(dir, FileInventorySnapshots)
	if err != nil {
		return nil, err
	}
	out := make([]model.InventorySnapshot, 0, len(rows))
	for _, r := range rows {
		d, err := r.date("date")
		if err != nil {
			return nil, err
		}
		onHand, err := r.int("quantity_on_hand")
		if err != nil {
			return nil, err
		}
		reserved, err := r.int("quantity_reserved")
		if err != nil {
			return nil, err
		}
		available, err := r.int("quantity_available")
		if err != nil {
			return nil, err
		}
		out = append(out, model.InventorySnapshot{
			ID:            r.str("snapshot_id"),
			Date:          d,
			ProductID:     r.str("product_id"),
			OnHand:        onHand,
			Reserved:      reserved,
			Available:     available,
			ReorderNeeded: r.bool("reorder_needed"),
		})
	}
	return out, nil
}

// ReadCustomers loads customers.csv.
func ReadCustomers(dir string) ([]model.Customer, error) {
	rows, err := readTable(dir, FileCustomers)
	if err != nil {
		return nil, err
	}
	out := make([]model.Customer, 0, len(rows))
	for _, r := range rows {
		created, err := r.date("created_date")
		if err != nil {
			return nil, err
		}
		ltv, err := r.float("lifetime_value")
		if err != nil {
			return nil, err
		}
		out = append(out, model.Customer{
			ID:            r.str("customer_id"),
			Name:          r.str("name"),
			Type:          r.str("type"),
			Channel:       r.str("channel"),
			City:          r.str("city"),
			Region:        r.str("region"),
			Email:         r.str("email"),
			Phone:         r.str("phone"),
			CreatedDate:   created,
			LifetimeValue: ltv,
			Segment:       r.str("segment"),
		})
	}
	return out, nil
}

// ReadPurchaseOrders loads purchase_orders.csv.
func ReadPurchaseOrders(dir string) ([]model.PurchaseOrder, error) {
	rows, err := readTable(dir, FilePurchaseOrders)
	if err != nil {
		return nil, err
	}
	out := make([]model.PurchaseOrder, 0, len(rows))
	for _, r := range rows {
		qty, err := r.int("quantity")
		if err != nil {
			return nil, err
		}
		unitCost, err := r.float("unit_cost")
		if err != nil {
			return nil, err
		}
		totalCost, err := r.float("total_cost")
		if err != nil {
			return nil, err
		}
		orderDate, err := r.date("order_date")
		if err != nil {
			return nil, err
		}
		expected, err := r.date("expected_delivery")
		if err != nil {
			return nil, err
		}
		actual, err := r.date("actual_delivery")
		if err != nil {
			return nil, err
		}
		out = append(out, model.PurchaseOrder{
			ID:               r.str("po_id"),
			SupplierID:       r.str("supplier_id"),
			MaterialID:       r.str("material_id"),
			Quantity:         qty,
			UnitCost:         unitCost,
			TotalCost:        totalCost,
			OrderDate:        orderDate,
			ExpectedDelivery: expected,
			ActualDelivery:   actual,
			Status:           r.str("status"),
		})
	}
	return out, nil
}

// ReadProductionOrders loads production_orders.csv.
func ReadProductionOrders(dir string) ([]model.ProductionOrder, error) {
	rows, err := readTable(dir, FileProductionOrders)
	if err != nil {
		return nil, err
	}
	out := make([]model.ProductionOrder, 0, len(rows))
	for _, r := range rows {
		qty, err := r.int("quantity")
		if err != nil {
			return nil, err
		}
		start, err := r.date("start_date")
		if err != nil {
			return nil, err
		}
		end, err := r.date("end_date")
		if err != nil {
			return nil, err
		}
		cost, err := r.float("production_cost")
		if err != nil {
			return nil, err
		}
		defects, err := r.int("defect_count")
		if err != nil {
			return nil, err
		}
		out = append(out, model.ProductionOrder{
			ID:             r.str("production_id"),
			ProductID:      r.str("product_id"),
			Quantity:       qty,
			StartDate:      start,
			EndDate:        end,
			Status:         r.str("status"),
			ProductionCost: cost,
			DefectCount:    defects,
		})
	}
	return out, nil
}

// ReadSalesOrders loads sales_orders.csv.
func ReadSalesOrders(dir string) ([]model.SalesOrder, error) {
	rows, err := readTable(dir, FileSalesOrders)
	if err != nil {
		return nil, err
	}
	out := make([]model.SalesOrder, 0, len(rows))
	for _, r := range rows {
		orderDate, err := r.date("order_date")
		if err != nil {
			return nil, err
		}
		deliveryDate, err := r.date("delivery_date")
		if err != nil {
			return nil, err
		}
		subtotal, err := r.float("subtotal")
		if err != nil {
			return nil, err
		}
		discount, err := r.float("discount_pct")
		if err != nil {
			return nil, err
		}
		total, err := r.float("total")
		if err != nil {
			return nil, err
		}
		shipping, err := r.float("shipping_cost")
		if err != nil {
			return nil, err
		}
		var rating *float64
		if s := r.str("rating"); s != "" {
			v, err := r.float("rating")
			if err != nil {
				return nil, err
			}
			rating = &v
		}
		out = append(out, model.SalesOrder{
			ID:           r.str("order_id"),
			CustomerID:   r.str("customer_id"),
			OrderDate:    orderDate,
			Channel:      r.str("channel"),
			Status:       r.str("status"),
			Subtotal:     subtotal,
			DiscountPct:  discount,
			Total:        total,
			ShippingCost: shipping,
			DeliveryDate: deliveryDate,
			Rating:       rating,
		})
	}
	return out, nil
}

// ReadLineItems loads order_line_items.csv.
func ReadLineItems(dir string) ([]model.LineItem, error) {
	rows, err := readTable(dir, FileLineItems)
	if err != nil {
		return nil, err
	}
	out := make([]model.LineItem, 0, len(rows))
	for _, r := range rows {
		qty, err := r.int("quantity")
		if err != nil {
			return nil, err
		}
		unitPrice, err := r.float("unit_price")
		if err != nil {
			return nil, err
		}
		lineTotal, err := r.float("line_total")
		if err != nil {
			return nil, err
		}
		out = append(out, model.LineItem{
			ID:        r.str("line_id"),
			OrderID:   r.str("order_id"),
			ProductID: r.str("product_id"),
			Quantity:  qty,
			UnitPrice: unitPrice,
			LineTotal: lineTotal,
		})
	}
	return out, nil
}

// ReadDailyMetrics loads daily_metrics.csv.
func ReadDailyMetrics(dir string) ([]model.DailyMetric, error) {
	rows, err := readTable(dir, FileDailyMetrics)
	if err != nil {
		return nil, err
	}
	out := make([]model.DailyMetric, 0, len(rows))
	for _, r := range rows {
		d, err := r.date("date")
		if err != nil {
			return nil, err
		}
		revenue, err := r.float("revenue")
		if err != nil {
			return nil, err
		}
		orders, err := r.int("orders")
		if err != nil {
			return nil, err
		}
		aov, err := r.float("avg_order_value")
		if err != nil {
			return nil, err
		}
		newCust, err := r.int("new_customers")
		if err != nil {
			return nil, err
		}
		returning, err := r.int("returning_customers")
		if err != nil {
			return nil, err
		}
		units, err := r.int("production_units")
		if err != nil {
			return nil, err
		}
		defectRate, err := r.float("defect_rate")
		if err != nil {
			return nil, err
		}
		turnover, err := r.float("inventory_turnover")
		if err != nil {
			return nil, err
		}
		online, err := r.float("online_share")
		if err != nil {
			return nil, err
		}
		out = append(out, model.DailyMetric{
			Date:               d,
			Revenue:            revenue,
			Orders:             orders,
			AvgOrderValue:      aov,
			NewCustomers:       newCust,
			ReturningCustomers: returning,
			ProductionUnits:    units,
			DefectRate:         defectRate,
			InventoryTurnover:  turnover,
			OnlineShare:        online,
		})
	}
	return out, nil
}

// ReadSupplierPerformance loads supplier_performance.csv.
func ReadSupplierPerformance(dir string) ([]model.SupplierPerformance, error) {
	rows, err := readTable(dir, FileSupplierPerformance)
	if err != nil {
		return nil, err
	}
	out := make([]model.SupplierPerformance, 0, len(rows))
	for _, r := range rows {
		var onTime *float64
		if s := r.str("on_time_pct"); s != "" {
			v, err := r.float("on_time_pct")
			if err != nil {
				return nil, err
			}
			onTime = &v
		}
		quality, err := r.float("quality_score")
		if err != nil {
			return nil, err
		}
		lead, err := r.float("avg_lead_days")
		if err != nil {
			return nil, err
		}
		orders, err := r.int("total_orders")
		if err != nil {
			return nil, err
		}
		spend, err := r.float("total_spend")
		if err != nil {
			return nil, err
		}
		out = append(out, model.SupplierPerformance{
			Month:        r.str("month"),
			SupplierID:   r.str("supplier_id"),
			OnTimePct:    onTime,
			QualityScore: quality,
			AvgLeadDays:  lead,
			TotalOrders:  orders,
			TotalSpend:   spend,
		})
	}
	return out, nil
}

// ReadRaw loads a table as raw header and records for schema-agnostic
// consumers like the warehouse loader.
func ReadRaw(dir, name string) (header []string, records [][]string, err error) {
	path := filepath.Join(dir, name)
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	rd := csv.NewReader(f)
	all, err := rd.ReadAll()
	if err != nil {
		return nil, nil, fmt.Errorf("reading %s: %w", path, err)
	}
	if len(all) == 0 {
		return nil, nil, fmt.Errorf("reading %s: empty file", path)
	}
	return all[0], all[1:], nil
}
