package generators

import (
	"math"
	"testing"

	"github.com/bellacasa/bellacasa-datagen/internal/datagen"
	"github.com/bellacasa/bellacasa-datagen/internal/model"
)

func generateSalesFixture(t *testing.T) (Params, []model.Customer, []model.SalesOrder, []model.LineItem) {
	t.Helper()
	r := datagen.New(42)
	p := DefaultParams()
	products := GenerateProducts(r)
	customers, _ := GenerateCustomers(r, p)
	orders, lines := GenerateSales(r, p, customers, products)
	return p, customers, orders, lines
}

func TestGenerateSales(t *testing.T) {
	p, customers, orders, lines := generateSalesFixture(t)

	// Poisson day counts land near the target but not exactly on it.
	if len(orders) < 2800 || len(orders) > 4200 {
		t.Fatalf("Expected roughly %d sales orders, got %d", p.SalesOrders, len(orders))
	}

	customerIDs := make(map[string]bool)
	for _, c := range customers {
		customerIDs[c.ID] = true
	}

	linesByOrder := make(map[string][]model.LineItem)
	for _, li := range lines {
		linesByOrder[li.OrderID] = append(linesByOrder[li.OrderID], li)
	}

	seen := make(map[string]bool)
	for _, o := range orders {
		if seen[o.ID] {
			t.Errorf("Duplicate order ID %s", o.ID)
		}
		seen[o.ID] = true

		if !customerIDs[o.CustomerID] {
			t.Errorf("Order %s references unknown customer %s", o.ID, o.CustomerID)
		}
		if o.OrderDate.Before(p.StartDate) || o.OrderDate.After(p.EndDate) {
			t.Errorf("Order %s date %v outside the range", o.ID, o.OrderDate)
		}
		if datagen.IsWeekend(o.OrderDate) {
			t.Errorf("Order %s placed on a weekend: %v", o.ID, o.OrderDate)
		}
		if !o.DeliveryDate.After(o.OrderDate) {
			t.Errorf("Order %s delivery %v not after order date %v", o.ID, o.DeliveryDate, o.OrderDate)
		}

		ol := linesByOrder[o.ID]
		if len(ol) < 1 || len(ol) > 4 {
			t.Errorf("Order %s has %d line items, want 1 to 4", o.ID, len(ol))
		}
		var lineSum float64
		for _, li := range ol {
			if li.Quantity < 1 {
				t.Errorf("Line %s quantity %d must be at least 1", li.ID, li.Quantity)
			}
			want := datagen.Round2(li.UnitPrice * float64(li.Quantity))
			if math.Abs(li.LineTotal-want) > 1e-9 {
				t.Errorf("Line %s total %v != unit_price*quantity %v", li.ID, li.LineTotal, want)
			}
			lineSum += li.LineTotal
		}
		if math.Abs(o.Subtotal-datagen.Round2(lineSum)) > 0.011 {
			t.Errorf("Order %s subtotal %v != line sum %v", o.ID, o.Subtotal, lineSum)
		}

		discountAmount := datagen.Round2(o.Subtotal * o.DiscountPct / 100.0)
		want := datagen.Round2(o.Subtotal - discountAmount)
		if math.Abs(o.Total-want) > 0.011 {
			t.Errorf("Order %s total %v, want %v", o.ID, o.Total, want)
		}

		if o.Rating != nil && (*o.Rating < 1.0 || *o.Rating > 5.0) {
			t.Errorf("Order %s rating %v out of [1, 5]", o.ID, *o.Rating)
		}
	}

	// Every line belongs to a known order.
	for _, li := range lines {
		if !seen[li.OrderID] {
			t.Errorf("Line %s references unknown order %s", li.ID, li.OrderID)
		}
	}
}

func TestSalesOnlineRamp(t *testing.T) {
	p, _, orders, _ := generateSalesFixture(t)

	var preOnline, preTotal, postOnline, postTotal int
	postStart := p.Policy.RelaunchDate.AddDate(0, 3, 0)
	for _, o := range orders {
		switch {
		case o.OrderDate.Before(p.Policy.RelaunchDate):
			preTotal++
			if o.Channel == model.ChannelOnline {
				preOnline++
			}
		case !o.OrderDate.Before(postStart):
			postTotal++
			if o.Channel == model.ChannelOnline {
				postOnline++
			}
		}
	}
	if preTotal == 0 || postTotal == 0 {
		t.Fatalf("Order windows empty: pre=%d post=%d", preTotal, postTotal)
	}

	preShare := float64(preOnline) / float64(preTotal)
	postShare := float64(postOnline) / float64(postTotal)
	if preShare < 0.10 || preShare > 0.20 {
		t.Errorf("Pre-relaunch online share %v, expected near 0.15", preShare)
	}
	if postShare < preShare+0.10 {
		t.Errorf("Post-relaunch online share %v should be well above pre-relaunch %v", postShare, preShare)
	}
}

func TestSalesShowroom3DiscountGap(t *testing.T) {
	_, _, orders, _ := generateSalesFixture(t)

	sums := make(map[string]float64)
	counts := make(map[string]int)
	ratingSums := make(map[string]float64)
	ratingCounts := make(map[string]int)
	for _, o := range orders {
		sums[o.Channel] += o.DiscountPct
		counts[o.Channel]++
		if o.Rating != nil {
			ratingSums[o.Channel] += *o.Rating
			ratingCounts[o.Channel]++
		}
	}

	s3Discount := sums[model.ChannelShowroom3] / float64(counts[model.ChannelShowroom3])
	s3Rating := ratingSums[model.ChannelShowroom3] / float64(ratingCounts[model.ChannelShowroom3])
	for _, ch := range []string{model.ChannelShowroom1, model.ChannelShowroom2, model.ChannelOnline, model.ChannelWholesale} {
		avgDiscount := sums[ch] / float64(counts[ch])
		if s3Discount < avgDiscount+2.0 {
			t.Errorf("showroom_3 mean discount %v should exceed %s's %v by a clear margin", s3Discount, ch, avgDiscount)
		}
		avgRating := ratingSums[ch] / float64(ratingCounts[ch])
		if s3Rating > avgRating-0.2 {
			t.Errorf("showroom_3 mean rating %v should sit below %s's %v", s3Rating, ch, avgRating)
		}
	}
}

func TestSalesBedSeasonality(t *testing.T) {
	_, _, orders, lines := generateSalesFixture(t)

	r := datagen.New(1)
	products := GenerateProducts(r)
	categoryByProduct := make(map[string]string)
	for _, prod := range products {
		categoryByProduct[prod.ID] = prod.Category
	}
	dateByOrder := make(map[string]int)
	for _, o := range orders {
		dateByOrder[o.ID] = int(o.OrderDate.Month())
	}

	var octBeds, aprBeds, octAll, aprAll int
	for _, li := range lines {
		m := dateByOrder[li.OrderID]
		isBed := categoryByProduct[li.ProductID] == model.CategoryBeds
		switch m {
		case 10, 11:
			octAll++
			if isBed {
				octBeds++
			}
		case 4, 5:
			aprAll++
			if isBed {
				aprBeds++
			}
		}
	}
	if octAll == 0 || aprAll == 0 {
		t.Fatal("No line items in the comparison windows")
	}
	octShare := float64(octBeds) / float64(octAll)
	aprShare := float64(aprBeds) / float64(aprAll)
	if octShare < aprShare*1.5 {
		t.Errorf("Autumn bed share %v should far exceed spring share %v", octShare, aprShare)
	}
}
