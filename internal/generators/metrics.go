package generators

import (
	"time"

	"github.com/bellacasa/bellacasa-datagen/internal/datagen"
	"github.com/bellacasa/bellacasa-datagen/internal/model"
)

// GenerateDailyMetrics produces one row per calendar day. Revenue, order
// counts and online share are aggregated from the sales table; production
// units and defect rates from the production table. Customer counts and
// inventory turnover are synthetic approximations. Either input may be nil,
// in which case the affected columns fall back to zeros or the policy
// baseline.
func GenerateDailyMetrics(r *datagen.Rand, p Params, sales []model.SalesOrder, production []model.ProductionOrder) []model.DailyMetric {
	type salesAgg struct {
		Revenue float64
		Orders  int
	}
	salesByDay := make(map[time.Time]*salesAgg)
	onlineByDay := make(map[time.Time]float64)
	for _, o := range sales {
		day := datagen.Date(o.OrderDate.Year(), o.OrderDate.Month(), o.OrderDate.Day())
		agg := salesByDay[day]
		if agg == nil {
			agg = &salesAgg{}
			salesByDay[day] = agg
		}
		agg.Revenue += o.Total
		agg.Orders++
		if o.Channel == model.ChannelOnline {
			onlineByDay[day] += o.Total
		}
	}

	type prodAgg struct {
		Units   int
		Defects int
	}
	prodByDay := make(map[time.Time]*prodAgg)
	for _, po := range production {
		day := datagen.Date(po.StartDate.Year(), po.StartDate.Month(), po.StartDate.Day())
		agg := prodByDay[day]
		if agg == nil {
			agg = &prodAgg{}
			prodByDay[day] = agg
		}
		agg.Units += po.Quantity
		agg.Defects += po.DefectCount
	}

	var metrics []model.DailyMetric
	for day := p.StartDate; !day.After(p.EndDate); day = day.AddDate(0, 0, 1) {
		var revenue, aov float64
		var orders int
		if agg, ok := salesByDay[day]; ok {
			revenue = datagen.Round2(agg.Revenue)
			orders = agg.Orders
			aov = datagen.Round2(agg.Revenue / float64(agg.Orders))
		}

		var newCust, returningCust int
		if orders > 0 {
			newCust = r.Poisson(float64(orders) * 0.15)
			returningCust = orders - newCust
			if returningCust < 0 {
				returningCust = 0
			}
		}

		var prodUnits int
		var defectRate float64
		if agg, ok := prodByDay[day]; ok {
			prodUnits = agg.Units
			if agg.Units > 0 {
				defectRate = datagen.Round4(float64(agg.Defects) / float64(agg.Units))
			}
		}

		invTurnover := datagen.Round2(r.Float64(4.0, 8.0))

		var onlineShare float64
		if onlineRev, ok := onlineByDay[day]; ok && revenue > 0 {
			onlineShare = datagen.Round4(onlineRev / revenue)
		} else {
			onlineShare = datagen.Round4(p.Policy.OnlineWeight(day))
		}

		metrics = append(metrics, model.DailyMetric{
			Date:               day,
			Revenue:            revenue,
			Orders:             orders,
			AvgOrderValue:      aov,
			NewCustomers:       newCust,
			ReturningCustomers: returningCust,
			ProductionUnits:    prodUnits,
			DefectRate:         defectRate,
			InventoryTurnover:  invTurnover,
			OnlineShare:        onlineShare,
		})
	}
	return metrics
}

// GenerateSupplierPerformance rolls up purchase orders into one row per
// (month, supplier) with at least one order that month. On-time percentage
// and lead times come from the delivered orders; the quality score is a
// reliability-based draw that drops for the disrupted supplier after the
// hike date. With a nil purchase order slice it emits a fully synthetic
// rollup for every month and supplier instead.
func GenerateSupplierPerformance(r *datagen.Rand, p Params, suppliers []model.Supplier, purchaseOrders []model.PurchaseOrder) []model.SupplierPerformance {
	months := monthStarts(p.StartDate, p.EndDate)

	if purchaseOrders == nil {
		return syntheticSupplierPerformance(r, p, suppliers, months)
	}

	type key struct {
		Month      string
		SupplierID string
	}
	posByKey := make(map[key][]model.PurchaseOrder)
	for _, po := range purchaseOrders {
		k := key{Month: datagen.MonthKey(po.OrderDate), SupplierID: po.SupplierID}
		posByKey[k] = append(posByKey[k], po)
	}

	var records []model.SupplierPerformance
	for _, month := range months {
		mk := datagen.MonthKey(month)
		for _, sup := range suppliers {
			pos := posByKey[key{Month: mk, SupplierID: sup.ID}]
			if len(pos) == 0 {
				continue
			}

			totalSpend := 0.0
			for _, po := range pos {
				totalSpend += po.TotalCost
			}
			totalSpend = datagen.Round2(totalSpend)

			var delivered []model.PurchaseOrder
			for _, po := range pos {
				if po.Status == model.POStatusDelivered {
					delivered = append(delivered, po)
				}
			}

			var onTimePct *float64
			var avgLead float64
			if len(delivered) > 0 {
				onTime := 0
				leadSum := 0
				for _, po := range delivered {
					if !po.ActualDelivery.After(po.ExpectedDelivery.AddDate(0, 0, 2)) {
						onTime++
					}
					leadSum += datagen.DaysBetween(po.OrderDate, po.ActualDelivery)
				}
				pct := datagen.Round1(float64(onTime) / float64(len(delivered)) * 100)
				onTimePct = &pct
				avgLead = datagen.Round1(float64(leadSum) / float64(len(delivered)))
			} else {
				avgLead = float64(sup.LeadTimeDays)
			}

			baseQuality := sup.ReliabilityScore * 100
			if p.Policy.DisruptedSupplier(sup.ID, month) {
				baseQuality -= 15
			}
			quality := datagen.Round1(r.NormalClamped(baseQuality, 3, 50, 100))

			records = append(records, model.SupplierPerformance{
				Month:        mk,
				SupplierID:   sup.ID,
				OnTimePct:    onTimePct,
				QualityScore: quality,
				AvgLeadDays:  avgLead,
				TotalOrders:  len(pos),
				TotalSpend:   totalSpend,
			})
		}
	}
	return records
}

// syntheticSupplierPerformance emits a plausible rollup for every month and
// supplier without consulting the purchase order table.
func syntheticSupplierPerformance(r *datagen.Rand, p Params, suppliers []model.Supplier, months []time.Time) []model.SupplierPerformance {
	var records []model.SupplierPerformance
	for _, month := range months {
		for _, sup := range suppliers {
			disrupted := p.Policy.DisruptedSupplier(sup.ID, month)

			onTime := datagen.Round1(r.NormalClamped(sup.ReliabilityScore*100, 5, 50, 100))
			if disrupted {
				onTime = datagen.Round1(r.NormalClamped(65, 8, 40, 80))
			}

			quality := datagen.Round1(r.NormalClamped(sup.ReliabilityScore*100, 3, 50, 100))
			if disrupted {
				quality = datagen.Round1(r.NormalClamped(75, 5, 55, 90))
			}

			avgLead := datagen.Round1(r.NormalClamped(float64(sup.LeadTimeDays), 2, 2, 40))
			if disrupted {
				avgLead = datagen.Round1(r.NormalClamped(14, 4, 7, 28))
			}

			totalOrders := int(r.Normal(8, 3))
			if totalOrders < 1 {
				totalOrders = 1
			}

			records = append(records, model.SupplierPerformance{
				Month:        datagen.MonthKey(month),
				SupplierID:   sup.ID,
				OnTimePct:    &onTime,
				QualityScore: quality,
				AvgLeadDays:  avgLead,
				TotalOrders:  totalOrders,
				TotalSpend:   datagen.Round2(r.Float64(5000, 50000)),
			})
		}
	}
	return records
}

// monthStarts lists the first of each month within [start, end].
func monthStarts(start, end time.Time) []time.Time {
	var months []time.Time
	current := datagen.MonthStart(start)
	if current.Before(start) {
		current = datagen.NextMonth(current)
	}
	for !current.After(end) {
		months = append(months, current)
		current = datagen.NextMonth(current)
	}
	return months
}
