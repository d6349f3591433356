package csvio

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/bellacasa/bellacasa-datagen/internal/model"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func sampleDataset() *model.Dataset {
	rating := 4.5
	onTime := 87.5
	return &model.Dataset{
		Suppliers: []model.Supplier{{
			ID: "SUP-001", Name: "Legnami Toscani", Country: "Italy",
			City: "Firenze", Latitude: 43.7696, Longitude: 11.2558,
			Category: "wood", LeadTimeDays: 14, ReliabilityScore: 0.94,
			PaymentTerms: "Net 30",
		}},
		Materials: []model.Material{{
			ID: "MAT-001", Name: "Oak Planks", Category: "wood", Unit: "m3",
			UnitCost: 450.25, SupplierID: "SUP-001", ReorderPoint: 20, ReorderQty: 50,
		}},
		Products: []model.Product{{
			ID: "PROD-001", Name: "Divano Roma", Category: model.CategorySofas,
			BasePrice: 3200.50, ProductionCost: 1856.25, WeightKg: 85.0, Active: true,
		}},
		BOM: []model.BOMLine{{
			ID: "BOM-001", ProductID: "PROD-001", MaterialID: "MAT-001",
			QuantityNeeded: 2.5, Unit: "m3",
		}},
		Customers: []model.Customer{{
			ID: "CUST-0001", Name: "Rossi Interiors", Type: model.TypeB2B,
			Channel: model.ChannelWholesale, City: "Milano", Region: "Lombardia",
			Email: "info@rossi.example", Phone: "+39 02 1234567",
			CreatedDate: day(2023, time.July, 1), LifetimeValue: 125000.75,
			Segment: model.SegmentVIP,
		}},
		PurchaseOrders: []model.PurchaseOrder{
			{
				ID: "PO-0001", SupplierID: "SUP-001", MaterialID: "MAT-001",
				Quantity: 48, UnitCost: 455.50, TotalCost: 21864.00,
				OrderDate: day(2024, time.March, 4), ExpectedDelivery: day(2024, time.March, 18),
				ActualDelivery: day(2024, time.March, 19), Status: model.POStatusDelivered,
			},
			{
				ID: "PO-0002", SupplierID: "SUP-001", MaterialID: "MAT-001",
				Quantity: 52, UnitCost: 448.75, TotalCost: 23335.00,
				OrderDate: day(2025, time.January, 27), ExpectedDelivery: day(2025, time.February, 10),
				Status: model.POStatusPending,
			},
		},
		ProductionOrders: []model.ProductionOrder{{
			ID: "PROD-ORD-0001", ProductID: "PROD-001", Quantity: 6,
			StartDate: day(2024, time.May, 6), EndDate: day(2024, time.May, 16),
			Status: model.ProductionStatusCompleted, ProductionCost: 11137.50, DefectCount: 0,
		}},
		SalesOrders: []model.SalesOrder{
			{
				ID: "ORD-00001", CustomerID: "CUST-0001", OrderDate: day(2024, time.June, 3),
				Channel: model.ChannelWholesale, Status: model.OrderStatusDelivered,
				Subtotal: 9601.50, DiscountPct: 6.0, Total: 9025.41, ShippingCost: 150.25,
				DeliveryDate: day(2024, time.June, 17), Rating: &rating,
			},
			{
				ID: "ORD-00002", CustomerID: "CUST-0001", OrderDate: day(2024, time.June, 10),
				Channel: model.ChannelWholesale, Status: model.OrderStatusConfirmed,
				Subtotal: 3200.50, DiscountPct: 0.0, Total: 3200.50, ShippingCost: 0,
				DeliveryDate: day(2024, time.June, 24),
			},
		},
		LineItems: []model.LineItem{{
			ID: "LINE-000001", OrderID: "ORD-00001", ProductID: "PROD-001",
			Quantity: 3, UnitPrice: 3200.50, LineTotal: 9601.50,
		}},
		InventorySnapshots: []model.InventorySnapshot{{
			ID: "SNAP-00001", Date: day(2024, time.October, 1), ProductID: "PROD-001",
			OnHand: 12, Reserved: 4, Available: 8, ReorderNeeded: false,
		}},
		DailyMetrics: []model.DailyMetric{{
			Date: day(2024, time.June, 3), Revenue: 9025.41, Orders: 1,
			AvgOrderValue: 9025.41, NewCustomers: 0, ReturningCustomers: 1,
			ProductionUnits: 6, DefectRate: 0.0, InventoryTurnover: 5.25,
			OnlineShare: 0.3450,
		}},
		SupplierPerformance: []model.SupplierPerformance{{
			Month: "2024-03", SupplierID: "SUP-001", OnTimePct: &onTime,
			QualityScore: 93.5, AvgLeadDays: 15.0, TotalOrders: 1, TotalSpend: 21864.00,
		}},
		AnchorCustomerID: "CUST-0001",
	}
}

func TestWriteAllCreatesEveryFile(t *testing.T) {
	dir := t.TempDir()
	if err := WriteAll(dir, sampleDataset()); err != nil {
		t.Fatalf("WriteAll failed: %v", err)
	}
	for _, name := range AllFiles {
		if _, err := os.Stat(filepath.Join(dir, name)); err != nil {
			t.Errorf("Missing table file %s: %v", name, err)
		}
	}
}

func TestRoundTrip(t *testing.T) {
	dir := t.TempDir()
	ds := sampleDataset()
	if err := WriteAll(dir, ds); err != nil {
		t.Fatalf("WriteAll failed: %v", err)
	}

	suppliers, err := ReadSuppliers(dir)
	if err != nil {
		t.Fatalf("ReadSuppliers failed: %v", err)
	}
	if len(suppliers) != 1 || suppliers[0] != ds.Suppliers[0] {
		t.Errorf("Supplier round trip mismatch:\n got %+v\nwant %+v", suppliers[0], ds.Suppliers[0])
	}

	materials, err := ReadMaterials(dir)
	if err != nil {
		t.Fatalf("ReadMaterials failed: %v", err)
	}
	if len(materials) != 1 || materials[0] != ds.Materials[0] {
		t.Errorf("Material round trip mismatch:\n got %+v\nwant %+v", materials[0], ds.Materials[0])
	}

	products, err := ReadProducts(dir)
	if err != nil {
		t.Fatalf("ReadProducts failed: %v", err)
	}
	if len(products) != 1 || products[0] != ds.Products[0] {
		t.Errorf("Product round trip mismatch:\n got %+v\nwant %+v", products[0], ds.Products[0])
	}

	bom, err := ReadBOM(dir)
	if err != nil {
		t.Fatalf("ReadBOM failed: %v", err)
	}
	if len(bom) != 1 || bom[0] != ds.BOM[0] {
		t.Errorf("BOM round trip mismatch:\n got %+v\nwant %+v", bom[0], ds.BOM[0])
	}

	customers, err := ReadCustomers(dir)
	if err != nil {
		t.Fatalf("ReadCustomers failed: %v", err)
	}
	if len(customers) != 1 || !customers[0].CreatedDate.Equal(ds.Customers[0].CreatedDate) {
		t.Fatalf("Customer round trip mismatch: %+v", customers)
	}
	if customers[0].LifetimeValue != ds.Customers[0].LifetimeValue {
		t.Errorf("Lifetime value %v, want %v", customers[0].LifetimeValue, ds.Customers[0].LifetimeValue)
	}

	pos, err := ReadPurchaseOrders(dir)
	if err != nil {
		t.Fatalf("ReadPurchaseOrders failed: %v", err)
	}
	if len(pos) != 2 {
		t.Fatalf("Expected 2 purchase orders, got %d", len(pos))
	}
	if !pos[0].ActualDelivery.Equal(ds.PurchaseOrders[0].ActualDelivery) {
		t.Errorf("Delivered order actual delivery %v, want %v", pos[0].ActualDelivery, ds.PurchaseOrders[0].ActualDelivery)
	}
	if !pos[1].ActualDelivery.IsZero() {
		t.Errorf("Pending order should read back a zero actual delivery, got %v", pos[1].ActualDelivery)
	}

	prods, err := ReadProductionOrders(dir)
	if err != nil {
		t.Fatalf("ReadProductionOrders failed: %v", err)
	}
	if len(prods) != 1 || prods[0] != ds.ProductionOrders[0] {
		t.Errorf("Production order round trip mismatch:\n got %+v\nwant %+v", prods[0], ds.ProductionOrders[0])
	}

	orders, err := ReadSalesOrders(dir)
	if err != nil {
		t.Fatalf("ReadSalesOrders failed: %v", err)
	}
	if len(orders) != 2 {
		t.Fatalf("Expected 2 sales orders, got %d", len(orders))
	}
	if orders[0].Rating == nil || *orders[0].Rating != 4.5 {
		t.Errorf("Rated order came back %v, want 4.5", orders[0].Rating)
	}
	if orders[1].Rating != nil {
		t.Errorf("Unrated order came back with rating %v", *orders[1].Rating)
	}
	if orders[0].Total != ds.SalesOrders[0].Total {
		t.Errorf("Order total %v, want %v", orders[0].Total, ds.SalesOrders[0].Total)
	}

	lines, err := ReadLineItems(dir)
	if err != nil {
		t.Fatalf("ReadLineItems failed: %v", err)
	}
	if len(lines) != 1 || lines[0] != ds.LineItems[0] {
		t.Errorf("Line item round trip mismatch:\n got %+v\nwant %+v", lines[0], ds.LineItems[0])
	}

	snaps, err := ReadInventorySnapshots(dir)
	if err != nil {
		t.Fatalf("ReadInventorySnapshots failed: %v", err)
	}
	if len(snaps) != 1 || snaps[0].Available != 8 || snaps[0].ReorderNeeded {
		t.Errorf("Snapshot round trip mismatch: %+v", snaps)
	}

	metrics, err := ReadDailyMetrics(dir)
	if err != nil {
		t.Fatalf("ReadDailyMetrics failed: %v", err)
	}
	if len(metrics) != 1 || metrics[0] != ds.DailyMetrics[0] {
		t.Errorf("Daily metric round trip mismatch:\n got %+v\nwant %+v", metrics[0], ds.DailyMetrics[0])
	}

	perf, err := ReadSupplierPerformance(dir)
	if err != nil {
		t.Fatalf("ReadSupplierPerformance failed: %v", err)
	}
	if len(perf) != 1 {
		t.Fatalf("Expected 1 supplier performance row, got %d", len(perf))
	}
	if perf[0].OnTimePct == nil || *perf[0].OnTimePct != 87.5 {
		t.Errorf("OnTimePct came back %v, want 87.5", perf[0].OnTimePct)
	}
	if perf[0].Month != "2024-03" || perf[0].SupplierID != "SUP-001" ||
		perf[0].QualityScore != 93.5 || perf[0].AvgLeadDays != 15.0 ||
		perf[0].TotalOrders != 1 || perf[0].TotalSpend != 21864.00 {
		t.Errorf("Supplier performance round trip mismatch: %+v", perf[0])
	}
}

func TestRawFormatting(t *testing.T) {
	dir := t.TempDir()
	if err := WriteAll(dir, sampleDataset()); err != nil {
		t.Fatalf("WriteAll failed: %v", err)
	}

	header, records, err := ReadRaw(dir, FileProducts)
	if err != nil {
		t.Fatalf("ReadRaw failed: %v", err)
	}
	wantHeader := "product_id,name,category,base_price,production_cost,weight_kg,active"
	if got := strings.Join(header, ","); got != wantHeader {
		t.Errorf("products.csv header\n got %s\nwant %s", got, wantHeader)
	}
	if records[0][6] != "True" {
		t.Errorf("Boolean column = %q, want pandas-style True", records[0][6])
	}
	if records[0][3] != "3200.50" {
		t.Errorf("Money column = %q, want two decimals", records[0][3])
	}

	_, poRecords, err := ReadRaw(dir, FilePurchaseOrders)
	if err != nil {
		t.Fatalf("ReadRaw failed: %v", err)
	}
	if poRecords[1][8] != "" {
		t.Errorf("Pending order actual_delivery = %q, want empty NULL marker", poRecords[1][8])
	}

	_, spRecords, err := ReadRaw(dir, FileSupplierPerformance)
	if err != nil {
		t.Fatalf("ReadRaw failed: %v", err)
	}
	if spRecords[0][2] != "87.5" {
		t.Errorf("on_time_pct = %q, want 87.5", spRecords[0][2])
	}
}

func TestReaderAcceptsPandasConventions(t *testing.T) {
	dir := t.TempDir()
	content := strings.Join([]string{
		"snapshot_id,date,product_id,quantity_on_hand,quantity_reserved,quantity_available,reorder_needed",
		"SNAP-00001,2024-10-01 00:00:00,PROD-001,12,4,8,true",
		"SNAP-00002,2024-11-01,PROD-001,10,2,8,False",
	}, "\n") + "\n"
	if err := os.WriteFile(filepath.Join(dir, FileInventorySnapshots), []byte(content), 0o644); err != nil {
		t.Fatalf("Failed to write fixture: %v", err)
	}

	snaps, err := ReadInventorySnapshots(dir)
	if err != nil {
		t.Fatalf("ReadInventorySnapshots failed: %v", err)
	}
	if len(snaps) != 2 {
		t.Fatalf("Expected 2 snapshots, got %d", len(snaps))
	}
	if !snaps[0].Date.Equal(day(2024, time.October, 1)) {
		t.Errorf("Timestamp-suffixed date parsed as %v", snaps[0].Date)
	}
	if !snaps[0].ReorderNeeded {
		t.Error("Lowercase 'true' not accepted")
	}
	if snaps[1].ReorderNeeded {
		t.Error("'False' parsed as true")
	}
}

func TestReadMissingFile(t *testing.T) {
	if _, err := ReadSuppliers(t.TempDir()); err == nil {
		t.Error("Expected error reading from an empty directory")
	}
}
