package generators

import (
	"fmt"
	"time"

	"github.com/bellacasa/bellacasa-datagen/internal/datagen"
	"github.com/bellacasa/bellacasa-datagen/internal/model"
	"github.com/bellacasa/bellacasa-datagen/internal/stories"
)

// baseCategoryWeights is the sales mix before the seasonal bed boost.
var baseCategoryWeights = map[string]float64{
	model.CategorySofas:   0.25,
	model.CategoryBeds:    0.20,
	model.CategoryTables:  0.22,
	model.CategoryChairs:  0.23,
	model.CategoryStorage: 0.10,
}

// GenerateSales walks the date range day by day, drawing a Poisson order
// count per day (weekdays boosted, weekends damped) and building each order's
// line items. Channel choice follows the date-dependent policy weights, so
// the online share ramps after the relaunch. Returns the sales orders and
// their line items.
func GenerateSales(r *datagen.Rand, p Params, customers []model.Customer, products []model.Product) ([]model.SalesOrder, []model.LineItem) {
	productsByID := make(map[string]model.Product, len(products))
	productsByCategory := make(map[string][]string)
	for _, prod := range products {
		productsByID[prod.ID] = prod
		productsByCategory[prod.Category] = append(productsByCategory[prod.Category], prod.ID)
	}

	byChannel := customersByChannel(customers)
	allIDs := make([]string, 0, len(customers))
	var vipIDs []string
	for _, c := range customers {
		allIDs = append(allIDs, c.ID)
		if c.Segment == model.SegmentVIP {
			vipIDs = append(vipIDs, c.ID)
		}
	}

	ordersPerDay := float64(p.SalesOrders) / float64(p.TotalDays())

	var orders []model.SalesOrder
	var lines []model.LineItem
	orderCounter := 1
	lineCounter := 1

	for day := p.StartDate; !day.After(p.EndDate); day = day.AddDate(0, 0, 1) {
		var dailyOrders int
		if datagen.IsWeekend(day) {
			dailyOrders = r.Poisson(ordersPerDay * 0.30)
		} else {
			dailyOrders = r.Poisson(ordersPerDay * 1.25)
		}

		// Weekend demand still lands in the books on the next business day.
		orderDate := datagen.NextBusinessDay(day)
		if orderDate.After(p.EndDate) {
			continue
		}

		for n := 0; n < dailyOrders; n++ {
			channel := chooseChannel(r, p.Policy, orderDate)

			var customerID string
			if pool := byChannel[channel]; len(pool) > 0 {
				customerID = pool[r.Intn(len(pool))]
			} else {
				customerID = allIDs[r.Intn(len(allIDs))]
			}
			if channel == model.ChannelWholesale && r.Chance(0.35) && len(vipIDs) > 0 {
				customerID = vipIDs[r.Intn(len(vipIDs))]
			}

			orderID := fmt.Sprintf("ORD-%05d", orderCounter)
			nItems := datagen.Choose(r, []int{1, 1, 2, 2, 2, 3, 3, 4})

			bedMult := p.Policy.BedSeasonalMultiplier(orderDate)
			catWeights := make([]float64, len(model.Categories))
			for i, cat := range model.Categories {
				w := baseCategoryWeights[cat]
				if cat == model.CategoryBeds {
					w *= bedMult
				}
				catWeights[i] = w
			}

			subtotal := 0.0
			for li := 0; li < nItems; li++ {
				category := datagen.ChooseWeighted(r, model.Categories, catWeights)
				ids := productsByCategory[category]
				pid := ids[r.Intn(len(ids))]
				prod := productsByID[pid]

				var qty int
				switch {
				case category == model.CategoryChairs:
					qty = datagen.Choose(r, []int{1, 2, 2, 4, 4, 6})
				case channel == model.ChannelWholesale:
					qty = datagen.Choose(r, []int{2, 3, 4, 5, 6, 8, 10})
				default:
					qty = datagen.Choose(r, []int{1, 1, 1, 2})
				}

				unitPrice := datagen.Round2(prod.BasePrice * (1.0 + r.Float64(-0.02, 0.02)))
				lineTotal := datagen.Round2(unitPrice * float64(qty))
				subtotal += lineTotal

				lines = append(lines, model.LineItem{
					ID:        fmt.Sprintf("LINE-%06d", lineCounter),
					OrderID:   orderID,
					ProductID: pid,
					Quantity:  qty,
					UnitPrice: unitPrice,
					LineTotal: lineTotal,
				})
				lineCounter++
			}
			subtotal = datagen.Round2(subtotal)

			dp := p.Policy.DiscountParams(channel)
			discountPct := datagen.Round1(r.NormalClamped(dp.Mean, dp.Std, dp.Min, dp.Max))
			discountAmount := datagen.Round2(subtotal * discountPct / 100.0)
			total := datagen.Round2(subtotal - discountAmount)

			var shipping float64
			switch channel {
			case model.ChannelOnline:
				if total < 2000 {
					shipping = datagen.Round2(r.Float64(25, 120))
				}
			case model.ChannelWholesale:
				shipping = datagen.Round2(r.Float64(50, 300))
			}

			deliveryDate := orderDate.AddDate(0, 0, r.Int(5, 21))

			var rating *float64
			if r.Chance(0.80) {
				rp := p.Policy.RatingParams(channel)
				v := datagen.Round1(r.NormalClamped(rp.Mean, rp.Std, rp.Min, rp.Max))
				rating = &v
			}

			var status string
			if deliveryDate.After(p.EndDate) {
				status = datagen.Choose(r, []string{
					model.OrderStatusConfirmed, model.OrderStatusProcessing, model.OrderStatusShipped,
				})
			} else {
				status = datagen.Choose(r, []string{
					model.OrderStatusDelivered, model.OrderStatusDelivered, model.OrderStatusDelivered,
					model.OrderStatusDelivered, model.OrderStatusDelivered, model.OrderStatusDelivered,
					model.OrderStatusDelivered, model.OrderStatusDelivered, model.OrderStatusDelivered,
					model.OrderStatusReturned,
				})
			}

			orders = append(orders, model.SalesOrder{
				ID:           orderID,
				CustomerID:   customerID,
				OrderDate:    orderDate,
				Channel:      channel,
				Status:       status,
				Subtotal:     subtotal,
				DiscountPct:  discountPct,
				Total:        total,
				ShippingCost: shipping,
				DeliveryDate: deliveryDate,
				Rating:       rating,
			})
			orderCounter++
		}
	}

	return orders, lines
}

// chooseChannel draws a channel from the date-dependent policy weights,
// iterating channels in canonical order so the draw is reproducible.
func chooseChannel(r *datagen.Rand, pol stories.Policy, day time.Time) string {
	weights := pol.ChannelWeights(day)
	ws := make([]float64, len(model.Channels))
	for i, ch := range model.Channels {
		ws[i] = weights[ch]
	}
	return datagen.ChooseWeighted(r, model.Channels, ws)
}
