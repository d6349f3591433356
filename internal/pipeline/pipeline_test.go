package pipeline

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/bellacasa/bellacasa-datagen/internal/csvio"
	"github.com/bellacasa/bellacasa-datagen/internal/datagen"
	"github.com/bellacasa/bellacasa-datagen/internal/generators"
	"github.com/bellacasa/bellacasa-datagen/internal/report"
)

func TestGenerateFullDataset(t *testing.T) {
	r := datagen.New(42)
	p := generators.DefaultParams()
	ds := Generate(r, p)

	if len(ds.Suppliers) != 8 {
		t.Errorf("Suppliers = %d, want 8", len(ds.Suppliers))
	}
	if len(ds.Materials) != 25 {
		t.Errorf("Materials = %d, want 25", len(ds.Materials))
	}
	if len(ds.Products) != 18 {
		t.Errorf("Products = %d, want 18", len(ds.Products))
	}
	if len(ds.Customers) != p.Customers {
		t.Errorf("Customers = %d, want %d", len(ds.Customers), p.Customers)
	}
	if len(ds.PurchaseOrders) != p.PurchaseOrders {
		t.Errorf("PurchaseOrders = %d, want %d", len(ds.PurchaseOrders), p.PurchaseOrders)
	}
	if len(ds.SalesOrders) < 2800 || len(ds.SalesOrders) > 4200 {
		t.Errorf("SalesOrders = %d, want roughly %d", len(ds.SalesOrders), p.SalesOrders)
	}
	if len(ds.DailyMetrics) != 581 {
		t.Errorf("DailyMetrics = %d, want 581", len(ds.DailyMetrics))
	}
	if ds.AnchorCustomerID == "" {
		t.Fatal("Anchor customer ID not set")
	}

	// Every hard invariant holds on the final dataset.
	if err := report.Check(ds, p); err != nil {
		t.Errorf("Generated dataset violates an invariant: %v", err)
	}
}

func TestGenerateAnchorConcentration(t *testing.T) {
	r := datagen.New(42)
	p := generators.DefaultParams()
	ds := Generate(r, p)

	s := report.Compute(ds, p)

	// The enforcement pass pushes the share to the target; trailing-month
	// reassignment can pull a little back out.
	if s.AnchorShare < p.AnchorShare-0.03 || s.AnchorShare > p.AnchorShare+0.04 {
		t.Errorf("Anchor share %v, want near %v", s.AnchorShare, p.AnchorShare)
	}
	if s.AnchorLastOrder.Year() != 2024 || int(s.AnchorLastOrder.Month()) != 11 {
		t.Errorf("Anchor last order %v, want November 2024", s.AnchorLastOrder)
	}
	if s.Top5PctShare <= s.AnchorShare {
		t.Errorf("Top 5%% share %v should exceed the anchor's alone %v", s.Top5PctShare, s.AnchorShare)
	}
	if s.OnlineSharePost < s.OnlineSharePre+0.10 {
		t.Errorf("Online share pre %v post %v, expected a clear ramp", s.OnlineSharePre, s.OnlineSharePost)
	}
}

func TestRunWritesAllTables(t *testing.T) {
	dir := t.TempDir()
	p := generators.DefaultParams()

	ds, err := Run(42, p, dir)
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if ds == nil {
		t.Fatal("Run returned nil dataset")
	}

	for _, name := range csvio.AllFiles {
		info, err := os.Stat(filepath.Join(dir, name))
		if err != nil {
			t.Errorf("Missing table file %s: %v", name, err)
			continue
		}
		if info.Size() == 0 {
			t.Errorf("Table file %s is empty", name)
		}
	}

	// Reading the persisted tables back yields the same row counts.
	orders, err := csvio.ReadSalesOrders(dir)
	if err != nil {
		t.Fatalf("ReadSalesOrders failed: %v", err)
	}
	if len(orders) != len(ds.SalesOrders) {
		t.Errorf("Persisted %d orders, dataset has %d", len(orders), len(ds.SalesOrders))
	}
}

func TestRunReproducible(t *testing.T) {
	p := generators.DefaultParams()
	dirA := t.TempDir()
	dirB := t.TempDir()

	if _, err := Run(42, p, dirA); err != nil {
		t.Fatalf("First run failed: %v", err)
	}
	if _, err := Run(42, p, dirB); err != nil {
		t.Fatalf("Second run failed: %v", err)
	}

	for _, name := range csvio.AllFiles {
		a, err := os.ReadFile(filepath.Join(dirA, name))
		if err != nil {
			t.Fatalf("Reading %s from first run: %v", name, err)
		}
		b, err := os.ReadFile(filepath.Join(dirB, name))
		if err != nil {
			t.Fatalf("Reading %s from second run: %v", name, err)
		}
		if !bytes.Equal(a, b) {
			t.Errorf("Table %s differs between identically seeded runs", name)
		}
	}
}

func TestRunSeedChangesOutput(t *testing.T) {
	p := generators.DefaultParams()
	dirA := t.TempDir()
	dirB := t.TempDir()

	if _, err := Run(42, p, dirA); err != nil {
		t.Fatalf("First run failed: %v", err)
	}
	if _, err := Run(7, p, dirB); err != nil {
		t.Fatalf("Second run failed: %v", err)
	}

	a, err := os.ReadFile(filepath.Join(dirA, csvio.FileSalesOrders))
	if err != nil {
		t.Fatal(err)
	}
	b, err := os.ReadFile(filepath.Join(dirB, csvio.FileSalesOrders))
	if err != nil {
		t.Fatal(err)
	}
	if bytes.Equal(a, b) {
		t.Error("Different seeds produced identical sales tables")
	}
}
