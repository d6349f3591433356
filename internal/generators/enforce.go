package generators

import (
	"sort"

	"github.com/bellacasa/bellacasa-datagen/internal/datagen"
	"github.com/bellacasa/bellacasa-datagen/internal/model"
)

// EnforceAnchorShare reassigns whole wholesale orders to the anchor customer
// until its share of total revenue reaches the configured target, then pins
// the anchor's latest order to the configured last-order date and pushes any
// later anchor orders onto other B2B customers. Lifetime values are
// recomputed from the final assignment for every customer.
//
// The pass returns new slices; inputs are not mutated and line items are
// never touched, so order totals stay recomputable from their lines.
func EnforceAnchorShare(r *datagen.Rand, p Params, anchorID string, sales []model.SalesOrder, customers []model.Customer) ([]model.SalesOrder, []model.Customer) {
	out := make([]model.SalesOrder, len(sales))
	copy(out, sales)
	custOut := make([]model.Customer, len(customers))
	copy(custOut, customers)

	if anchorID == "" {
		return out, custOut
	}

	totalRevenue := 0.0
	anchorRevenue := 0.0
	for _, o := range out {
		totalRevenue += o.Total
		if o.CustomerID == anchorID {
			anchorRevenue += o.Total
		}
	}
	targetRevenue := totalRevenue * p.AnchorShare

	if anchorRevenue < targetRevenue {
		needed := targetRevenue - anchorRevenue

		// Largest non-anchor wholesale orders first.
		candidates := make([]int, 0, len(out))
		for i, o := range out {
			if o.CustomerID != anchorID && o.Channel == model.ChannelWholesale {
				candidates = append(candidates, i)
			}
		}
		sort.SliceStable(candidates, func(a, b int) bool {
			return out[candidates[a]].Total > out[candidates[b]].Total
		})

		reassigned := 0.0
		for _, idx := range candidates {
			if reassigned >= needed {
				break
			}
			out[idx].CustomerID = anchorID
			out[idx].Channel = model.ChannelWholesale
			reassigned += out[idx].Total
		}
	}

	// Pin the anchor's latest order to the configured last-order date.
	latest := -1
	for i, o := range out {
		if o.CustomerID != anchorID {
			continue
		}
		if latest == -1 || o.OrderDate.After(out[latest].OrderDate) {
			latest = i
		}
	}
	if latest >= 0 {
		out[latest].OrderDate = p.AnchorLastOrder
		out[latest].DeliveryDate = p.AnchorLastOrder.AddDate(0, 0, 12)
	}

	// No anchor activity after the last-order month: push stragglers onto
	// other B2B customers.
	monthEnd := datagen.NextMonth(datagen.MonthStart(p.AnchorLastOrder)).AddDate(0, 0, -1)
	var otherB2B []string
	for _, c := range custOut {
		if c.Type == model.TypeB2B && c.ID != anchorID {
			otherB2B = append(otherB2B, c.ID)
		}
	}
	if len(otherB2B) > 0 {
		for i := range out {
			if out[i].CustomerID == anchorID && out[i].OrderDate.After(monthEnd) {
				out[i].CustomerID = otherB2B[r.Intn(len(otherB2B))]
			}
		}
	}

	// Lifetime value reflects the final assignment.
	ltv := make(map[string]float64, len(custOut))
	for _, o := range out {
		ltv[o.CustomerID] += o.Total
	}
	for i := range custOut {
		custOut[i].LifetimeValue = datagen.Round2(ltv[custOut[i].ID])
	}

	return out, custOut
}
