package generators

import (
	"testing"

	"github.com/bellacasa/bellacasa-datagen/internal/datagen"
	"github.com/bellacasa/bellacasa-datagen/internal/model"
)

func TestGenerateProductionOrders(t *testing.T) {
	r := datagen.New(42)
	p := DefaultParams()
	products := GenerateProducts(r)
	orders := GenerateProductionOrders(r, p, products)

	// Per-product counts truncate, so the total lands just under the target.
	if len(orders) < p.ProductionOrders-60 || len(orders) > p.ProductionOrders {
		t.Fatalf("Expected close to %d production orders, got %d", p.ProductionOrders, len(orders))
	}

	productByID := make(map[string]model.Product)
	for _, prod := range products {
		productByID[prod.ID] = prod
	}

	seen := make(map[string]bool)
	for _, o := range orders {
		if seen[o.ID] {
			t.Errorf("Duplicate production order ID %s", o.ID)
		}
		seen[o.ID] = true

		if _, ok := productByID[o.ProductID]; !ok {
			t.Errorf("Order %s references unknown product %s", o.ID, o.ProductID)
		}
		if o.Quantity < 1 {
			t.Errorf("Order %s quantity %d must be at least 1", o.ID, o.Quantity)
		}
		if o.DefectCount < 0 || o.DefectCount > o.Quantity {
			t.Errorf("Order %s defects %d out of range for quantity %d", o.ID, o.DefectCount, o.Quantity)
		}
		if datagen.IsWeekend(o.StartDate) {
			t.Errorf("Order %s starts on a weekend: %v", o.ID, o.StartDate)
		}
		if !o.EndDate.After(o.StartDate) {
			t.Errorf("Order %s end %v not after start %v", o.ID, o.EndDate, o.StartDate)
		}
		if o.ProductionCost <= 0 {
			t.Errorf("Order %s cost %v must be positive", o.ID, o.ProductionCost)
		}

		if o.EndDate.After(p.EndDate) && o.Status != model.ProductionStatusInProgress {
			t.Errorf("Order %s ends after the range but has status %s", o.ID, o.Status)
		}
		if o.Status != model.ProductionStatusInProgress && o.Status != model.ProductionStatusCompleted {
			t.Errorf("Order %s has unknown status %q", o.ID, o.Status)
		}
	}

	for i := 1; i < len(orders); i++ {
		if orders[i].StartDate.Before(orders[i-1].StartDate) {
			t.Fatalf("Orders not sorted by start date at index %d", i)
		}
	}
}

func TestProductionBedSeasonality(t *testing.T) {
	r := datagen.New(42)
	p := DefaultParams()
	products := GenerateProducts(r)
	orders := GenerateProductionOrders(r, p, products)

	bedProducts := make(map[string]bool)
	for _, prod := range products {
		if prod.Category == model.CategoryBeds {
			bedProducts[prod.ID] = true
		}
	}

	// Average bed batch size in the autumn peak should exceed the spring
	// trough by a wide margin.
	var peakSum, troughSum float64
	var peakN, troughN int
	for _, o := range orders {
		if !bedProducts[o.ProductID] {
			continue
		}
		switch o.StartDate.Month() {
		case 9, 10, 11:
			peakSum += float64(o.Quantity)
			peakN++
		case 3, 4, 5:
			troughSum += float64(o.Quantity)
			troughN++
		}
	}
	if peakN == 0 || troughN == 0 {
		t.Fatalf("Bed batches missing in peak (%d) or trough (%d)", peakN, troughN)
	}
	peakAvg := peakSum / float64(peakN)
	troughAvg := troughSum / float64(troughN)
	if peakAvg <= troughAvg {
		t.Errorf("Autumn bed batches (%v avg) should exceed spring batches (%v avg)", peakAvg, troughAvg)
	}
}

func TestProductionSofaCostHike(t *testing.T) {
	r := datagen.New(42)
	p := DefaultParams()
	products := GenerateProducts(r)
	orders := GenerateProductionOrders(r, p, products)

	costByProduct := make(map[string]float64)
	sofaProducts := make(map[string]bool)
	for _, prod := range products {
		costByProduct[prod.ID] = prod.ProductionCost
		if prod.Category == model.CategorySofas {
			sofaProducts[prod.ID] = true
		}
	}

	var preSum, postSum float64
	var preN, postN int
	for _, o := range orders {
		if !sofaProducts[o.ProductID] {
			continue
		}
		perUnit := o.ProductionCost / float64(o.Quantity)
		ratio := perUnit / costByProduct[o.ProductID]
		if o.StartDate.Before(p.Policy.CostHikeDate) {
			preSum += ratio
			preN++
		} else {
			postSum += ratio
			postN++
		}
	}
	if preN == 0 || postN == 0 {
		t.Fatalf("Sofa batches missing on one side of the hike: pre=%d post=%d", preN, postN)
	}
	preAvg := preSum / float64(preN)
	postAvg := postSum / float64(postN)
	if preAvg < 0.95 || preAvg > 1.05 {
		t.Errorf("Pre-hike sofa cost ratio %v, expected near 1.0", preAvg)
	}
	if postAvg < 1.15 || postAvg > 1.33 {
		t.Errorf("Post-hike sofa cost ratio %v, expected near 1.241", postAvg)
	}
}
