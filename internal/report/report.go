// Package report recomputes the embedded story metrics from the final
// tables by independent aggregation, so the numbers it prints are evidence
// the stories actually landed in the data rather than echoes of the
// generation parameters.
package report

import (
	"fmt"
	"sort"
	"time"

	"github.com/bellacasa/bellacasa-datagen/internal/datagen"
	"github.com/bellacasa/bellacasa-datagen/internal/generators"
	"github.com/bellacasa/bellacasa-datagen/internal/logging"
	"github.com/bellacasa/bellacasa-datagen/internal/model"
)

// Summary holds the story metrics recomputed from a generated dataset.
type Summary struct {
	TotalRevenue float64

	AnchorShare     float64
	AnchorLastOrder time.Time

	Top5PctCount int
	Top5PctShare float64

	DiscountByChannel map[string]float64
	RatingByChannel   map[string]float64

	// BedOctAprRatio compares October and April bed revenue; zero when
	// either month has no bed sales.
	BedOctAprRatio float64

	// Online revenue share before the relaunch vs. three months after.
	OnlineSharePre  float64
	OnlineSharePost float64
}

// Compute aggregates the story metrics from the dataset.
func Compute(ds *model.Dataset, p generators.Params) Summary {
	s := Summary{
		DiscountByChannel: make(map[string]float64),
		RatingByChannel:   make(map[string]float64),
	}

	revenueByCustomer := make(map[string]float64)
	for _, o := range ds.SalesOrders {
		s.TotalRevenue += o.Total
		revenueByCustomer[o.CustomerID] += o.Total
	}

	// Anchor concentration.
	if ds.AnchorCustomerID != "" && s.TotalRevenue > 0 {
		s.AnchorShare = revenueByCustomer[ds.AnchorCustomerID] / s.TotalRevenue
		for _, o := range ds.SalesOrders {
			if o.CustomerID == ds.AnchorCustomerID && o.OrderDate.After(s.AnchorLastOrder) {
				s.AnchorLastOrder = o.OrderDate
			}
		}
	}

	// Top 5% customer concentration.
	totals := make([]float64, 0, len(revenueByCustomer))
	for _, v := range revenueByCustomer {
		totals = append(totals, v)
	}
	sort.Sort(sort.Reverse(sort.Float64Slice(totals)))
	s.Top5PctCount = len(revenueByCustomer) * 5 / 100
	if s.Top5PctCount < 1 {
		s.Top5PctCount = 1
	}
	if s.TotalRevenue > 0 {
		top := 0.0
		for i := 0; i < s.Top5PctCount && i < len(totals); i++ {
			top += totals[i]
		}
		s.Top5PctShare = top / s.TotalRevenue
	}

	// Per-channel discount and rating means.
	discSum := make(map[string]float64)
	discN := make(map[string]int)
	rateSum := make(map[string]float64)
	rateN := make(map[string]int)
	for _, o := range ds.SalesOrders {
		discSum[o.Channel] += o.DiscountPct
		discN[o.Channel]++
		if o.Rating != nil {
			rateSum[o.Channel] += *o.Rating
			rateN[o.Channel]++
		}
	}
	for _, ch := range model.Channels {
		if discN[ch] > 0 {
			s.DiscountByChannel[ch] = discSum[ch] / float64(discN[ch])
		}
		if rateN[ch] > 0 {
			s.RatingByChannel[ch] = rateSum[ch] / float64(rateN[ch])
		}
	}

	// Bed seasonality: October vs. April revenue via the line-item join.
	bedProducts := make(map[string]bool)
	for _, prod := range ds.Products {
		if prod.Category == model.CategoryBeds {
			bedProducts[prod.ID] = true
		}
	}
	orderMonth := make(map[string]time.Month, len(ds.SalesOrders))
	orderTotal := make(map[string]float64, len(ds.SalesOrders))
	for _, o := range ds.SalesOrders {
		orderMonth[o.ID] = o.OrderDate.Month()
		orderTotal[o.ID] = o.Total
	}
	bedOrderSeen := make(map[string]bool)
	var octRev, aprRev float64
	for _, li := range ds.LineItems {
		if !bedProducts[li.ProductID] || bedOrderSeen[li.OrderID] {
			continue
		}
		bedOrderSeen[li.OrderID] = true
		switch orderMonth[li.OrderID] {
		case time.October:
			octRev += orderTotal[li.OrderID]
		case time.April:
			aprRev += orderTotal[li.OrderID]
		}
	}
	if aprRev > 0 {
		s.BedOctAprRatio = octRev / aprRev
	}

	// Online share before the relaunch vs. three months after.
	postStart := p.Policy.RelaunchDate.AddDate(0, 3, 0)
	var preOnline, preTotal, postOnline, postTotal float64
	for _, o := range ds.SalesOrders {
		switch {
		case o.OrderDate.Before(p.Policy.RelaunchDate):
			preTotal += o.Total
			if o.Channel == model.ChannelOnline {
				preOnline += o.Total
			}
		case !o.OrderDate.Before(postStart):
			postTotal += o.Total
			if o.Channel == model.ChannelOnline {
				postOnline += o.Total
			}
		}
	}
	if preTotal > 0 {
		s.OnlineSharePre = preOnline / preTotal
	}
	if postTotal > 0 {
		s.OnlineSharePost = postOnline / postTotal
	}

	return s
}

// Log emits the story summary through the global logger.
func (s Summary) Log() {
	logging.Info().
		Float64("total_revenue", datagen.Round2(s.TotalRevenue)).
		Float64("anchor_share_pct", datagen.Round1(s.AnchorShare*100)).
		Str("anchor_last_order", s.AnchorLastOrder.Format("2006-01-02")).
		Msg("Anchor customer concentration")

	logging.Info().
		Int("customers", s.Top5PctCount).
		Float64("revenue_share_pct", datagen.Round1(s.Top5PctShare*100)).
		Msg("Top 5% customer concentration")

	logging.Info().
		Float64("showroom_3", datagen.Round1(s.DiscountByChannel[model.ChannelShowroom3])).
		Float64("showroom_1", datagen.Round1(s.DiscountByChannel[model.ChannelShowroom1])).
		Msg("Average discount pct by channel")

	logging.Info().
		Float64("showroom_3", datagen.Round1(s.RatingByChannel[model.ChannelShowroom3])).
		Float64("showroom_1", datagen.Round1(s.RatingByChannel[model.ChannelShowroom1])).
		Msg("Average rating by channel")

	if s.BedOctAprRatio > 0 {
		logging.Info().
			Float64("ratio", datagen.Round1(s.BedOctAprRatio)).
			Msg("Bed revenue October vs April")
	}

	logging.Info().
		Float64("pre_relaunch_pct", datagen.Round1(s.OnlineSharePre*100)).
		Float64("post_relaunch_pct", datagen.Round1(s.OnlineSharePost*100)).
		Msg("Online revenue share")
}

// Check verifies the hard invariants of the dataset: referential integrity,
// monetary identities, and the anchor's last-order month. It returns the
// first violation found.
func Check(ds *model.Dataset, p generators.Params) error {
	customerIDs := make(map[string]bool, len(ds.Customers))
	for _, c := range ds.Customers {
		customerIDs[c.ID] = true
	}
	productIDs := make(map[string]bool, len(ds.Products))
	for _, prod := range ds.Products {
		productIDs[prod.ID] = true
	}
	supplierIDs := make(map[string]bool, len(ds.Suppliers))
	for _, sup := range ds.Suppliers {
		supplierIDs[sup.ID] = true
	}
	materialIDs := make(map[string]bool, len(ds.Materials))
	for _, m := range ds.Materials {
		materialIDs[m.ID] = true
	}
	orderIDs := make(map[string]bool, len(ds.SalesOrders))

	for _, o := range ds.SalesOrders {
		orderIDs[o.ID] = true
		if !customerIDs[o.CustomerID] {
			return fmt.Errorf("order %s references unknown customer %s", o.ID, o.CustomerID)
		}
		discountAmount := datagen.Round2(o.Subtotal * o.DiscountPct / 100.0)
		want := datagen.Round2(o.Subtotal - discountAmount)
		if diff := o.Total - want; diff > 0.011 || diff < -0.011 {
			return fmt.Errorf("order %s: total %.2f does not match subtotal %.2f less %.1f%% discount",
				o.ID, o.Total, o.Subtotal, o.DiscountPct)
		}
		if o.OrderDate.Before(p.StartDate) || o.OrderDate.After(p.EndDate) {
			return fmt.Errorf("order %s: order date %s outside range", o.ID, o.OrderDate.Format("2006-01-02"))
		}
		if datagen.IsWeekend(o.OrderDate) {
			return fmt.Errorf("order %s: order date %s falls on a weekend", o.ID, o.OrderDate.Format("2006-01-02"))
		}
	}

	lineTotals := make(map[string]float64)
	for _, li := range ds.LineItems {
		if !orderIDs[li.OrderID] {
			return fmt.Errorf("line item %s references unknown order %s", li.ID, li.OrderID)
		}
		if !productIDs[li.ProductID] {
			return fmt.Errorf("line item %s references unknown product %s", li.ID, li.ProductID)
		}
		lineTotals[li.OrderID] += li.LineTotal
	}
	for _, o := range ds.SalesOrders {
		if diff := datagen.Round2(lineTotals[o.ID]) - o.Subtotal; diff > 0.011 || diff < -0.011 {
			return fmt.Errorf("order %s: subtotal %.2f does not match line item sum %.2f",
				o.ID, o.Subtotal, lineTotals[o.ID])
		}
	}

	for _, po := range ds.PurchaseOrders {
		if !supplierIDs[po.SupplierID] {
			return fmt.Errorf("purchase order %s references unknown supplier %s", po.ID, po.SupplierID)
		}
		if !materialIDs[po.MaterialID] {
			return fmt.Errorf("purchase order %s references unknown material %s", po.ID, po.MaterialID)
		}
		want := datagen.Round2(float64(po.Quantity) * po.UnitCost)
		if diff := po.TotalCost - want; diff > 0.011 || diff < -0.011 {
			return fmt.Errorf("purchase order %s: total cost %.2f does not match qty %d x %.2f",
				po.ID, po.TotalCost, po.Quantity, po.UnitCost)
		}
		if po.Status == model.POStatusDelivered && po.ActualDelivery.IsZero() {
			return fmt.Errorf("purchase order %s: delivered without actual delivery date", po.ID)
		}
		if po.Status != model.POStatusDelivered && !po.ActualDelivery.IsZero() {
			return fmt.Errorf("purchase order %s: actual delivery set on %s order", po.ID, po.Status)
		}
	}

	for _, prod := range ds.ProductionOrders {
		if !productIDs[prod.ProductID] {
			return fmt.Errorf("production order %s references unknown product %s", prod.ID, prod.ProductID)
		}
		if prod.DefectCount < 0 || prod.DefectCount > prod.Quantity {
			return fmt.Errorf("production order %s: defect count %d outside 0..%d",
				prod.ID, prod.DefectCount, prod.Quantity)
		}
	}

	for _, sp := range ds.SupplierPerformance {
		if !supplierIDs[sp.SupplierID] {
			return fmt.Errorf("supplier performance %s references unknown supplier %s", sp.Month, sp.SupplierID)
		}
	}

	for _, bl := range ds.BOM {
		if !productIDs[bl.ProductID] {
			return fmt.Errorf("bom line %s references unknown product %s", bl.ID, bl.ProductID)
		}
		if !materialIDs[bl.MaterialID] {
			return fmt.Errorf("bom line %s references unknown material %s", bl.ID, bl.MaterialID)
		}
	}

	for _, snap := range ds.InventorySnapshots {
		if !productIDs[snap.ProductID] {
			return fmt.Errorf("snapshot %s references unknown product %s", snap.ID, snap.ProductID)
		}
		if snap.Available != snap.OnHand-snap.Reserved {
			return fmt.Errorf("snapshot %s: available %d != on hand %d - reserved %d",
				snap.ID, snap.Available, snap.OnHand, snap.Reserved)
		}
	}

	if ds.AnchorCustomerID != "" {
		var last time.Time
		for _, o := range ds.SalesOrders {
			if o.CustomerID == ds.AnchorCustomerID && o.OrderDate.After(last) {
				last = o.OrderDate
			}
		}
		if !last.IsZero() {
			want := p.AnchorLastOrder
			if last.Year() != want.Year() || last.Month() != want.Month() {
				return fmt.Errorf("anchor customer last order %s outside target month %s",
					last.Format("2006-01-02"), want.Format("2006-01"))
			}
		}
	}

	return nil
}
