package generators

import (
	"strings"
	"testing"

	"github.com/bellacasa/bellacasa-datagen/internal/datagen"
	"github.com/bellacasa/bellacasa-datagen/internal/model"
)

func TestGenerateSuppliers(t *testing.T) {
	r := datagen.New(42)
	suppliers := GenerateSuppliers(r)

	if len(suppliers) != 8 {
		t.Fatalf("Expected 8 suppliers, got %d", len(suppliers))
	}

	seen := make(map[string]bool)
	categories := make(map[string]bool)
	for _, s := range suppliers {
		if seen[s.ID] {
			t.Errorf("Duplicate supplier ID %s", s.ID)
		}
		seen[s.ID] = true
		if !strings.HasPrefix(s.ID, "SUP-") {
			t.Errorf("Supplier ID %s missing SUP- prefix", s.ID)
		}
		if s.Country != "Italy" {
			t.Errorf("Supplier %s country = %s, want Italy", s.ID, s.Country)
		}
		if s.ReliabilityScore < 0.8 || s.ReliabilityScore > 1.0 {
			t.Errorf("Supplier %s reliability %v out of range", s.ID, s.ReliabilityScore)
		}
		if s.LeadTimeDays <= 0 {
			t.Errorf("Supplier %s lead time %d must be positive", s.ID, s.LeadTimeDays)
		}
		categories[s.Category] = true
	}

	if !categories["foam"] {
		t.Error("No foam supplier in the table")
	}

	// The foam supplier is the one the disruption story targets.
	var foamID string
	for _, s := range suppliers {
		if s.Category == "foam" {
			foamID = s.ID
		}
	}
	if foamID != "SUP-004" {
		t.Errorf("Foam supplier = %s, want SUP-004", foamID)
	}
}

func TestGenerateMaterials(t *testing.T) {
	r := datagen.New(42)
	suppliers := GenerateSuppliers(r)
	materials := GenerateMaterials(r)

	if len(materials) != 25 {
		t.Fatalf("Expected 25 materials, got %d", len(materials))
	}

	supplierIDs := make(map[string]bool)
	for _, s := range suppliers {
		supplierIDs[s.ID] = true
	}

	seen := make(map[string]bool)
	for _, m := range materials {
		if seen[m.ID] {
			t.Errorf("Duplicate material ID %s", m.ID)
		}
		seen[m.ID] = true
		if !supplierIDs[m.SupplierID] {
			t.Errorf("Material %s references unknown supplier %s", m.ID, m.SupplierID)
		}
		if m.UnitCost <= 0 {
			t.Errorf("Material %s unit cost %v must be positive", m.ID, m.UnitCost)
		}
		if m.ReorderQty <= 0 {
			t.Errorf("Material %s reorder qty %d must be positive", m.ID, m.ReorderQty)
		}
	}

	// Every supplier owns at least one material so purchase volume can be
	// spread across all of them.
	owned := make(map[string]bool)
	for _, m := range materials {
		owned[m.SupplierID] = true
	}
	for _, s := range suppliers {
		if !owned[s.ID] {
			t.Errorf("Supplier %s owns no materials", s.ID)
		}
	}
}

func TestGenerateProducts(t *testing.T) {
	r := datagen.New(42)
	products := GenerateProducts(r)

	if len(products) != 18 {
		t.Fatalf("Expected 18 products, got %d", len(products))
	}

	byCategory := make(map[string]int)
	for _, p := range products {
		byCategory[p.Category]++
		if p.BasePrice <= p.ProductionCost {
			t.Errorf("Product %s base price %v not above production cost %v", p.ID, p.BasePrice, p.ProductionCost)
		}
		if !p.Active {
			t.Errorf("Product %s should be active", p.ID)
		}
		if p.WeightKg <= 0 {
			t.Errorf("Product %s weight %v must be positive", p.ID, p.WeightKg)
		}
	}

	for _, cat := range model.Categories {
		if byCategory[cat] == 0 {
			t.Errorf("No products in category %s", cat)
		}
	}
}

func TestGenerateBOM(t *testing.T) {
	r := datagen.New(42)
	products := GenerateProducts(r)
	materials := GenerateMaterials(r)
	bom := GenerateBOM(r)

	if len(bom) == 0 {
		t.Fatal("Empty bill of materials")
	}

	productIDs := make(map[string]bool)
	for _, p := range products {
		productIDs[p.ID] = true
	}
	materialIDs := make(map[string]bool)
	for _, m := range materials {
		materialIDs[m.ID] = true
	}

	covered := make(map[string]bool)
	for _, line := range bom {
		if !productIDs[line.ProductID] {
			t.Errorf("BOM line %s references unknown product %s", line.ID, line.ProductID)
		}
		if !materialIDs[line.MaterialID] {
			t.Errorf("BOM line %s references unknown material %s", line.ID, line.MaterialID)
		}
		if line.QuantityNeeded <= 0 {
			t.Errorf("BOM line %s quantity %v must be positive", line.ID, line.QuantityNeeded)
		}
		covered[line.ProductID] = true
	}

	for _, p := range products {
		if !covered[p.ID] {
			t.Errorf("Product %s has no BOM lines", p.ID)
		}
	}
}
