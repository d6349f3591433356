package generators

import (
	"fmt"
	"math"
	"sort"

	"github.com/bellacasa/bellacasa-datagen/internal/datagen"
	"github.com/bellacasa/bellacasa-datagen/internal/model"
)

// productionCategoryWeights skews batch counts toward high-volume categories.
var productionCategoryWeights = map[string]float64{
	model.CategorySofas:   1.3,
	model.CategoryBeds:    1.2,
	model.CategoryTables:  1.0,
	model.CategoryChairs:  1.4,
	model.CategoryStorage: 0.7,
}

// GenerateProductionOrders builds manufacturing batches per product, count
// proportional to category weight. Bed batch sizes follow the seasonal cycle
// and sofa unit costs carry the post-hike multiplier. Rows are sorted by
// start date; IDs keep generation order.
func GenerateProductionOrders(r *datagen.Rand, p Params, products []model.Product) []model.ProductionOrder {
	totalDays := p.TotalDays()

	totalWeighted := 0.0
	for _, prod := range products {
		w, ok := productionCategoryWeights[prod.Category]
		if !ok {
			w = 1.0
		}
		totalWeighted += w
	}

	var orders []model.ProductionOrder
	counter := 1

	for _, prod := range products {
		weight, ok := productionCategoryWeights[prod.Category]
		if !ok {
			weight = 1.0
		}
		nOrders := int(float64(p.ProductionOrders) * weight / totalWeighted)

		for i := 0; i < nOrders; i++ {
			start := p.StartDate.AddDate(0, 0, r.Intn(totalDays-20))
			start = datagen.NextBusinessDay(start)

			var qty int
			switch prod.Category {
			case model.CategoryChairs:
				qty = int(r.Normal(12, 4))
			case model.CategorySofas:
				qty = int(r.Normal(5, 2))
			case model.CategoryBeds:
				qty = int(r.Normal(5, 2))
				if qty < 1 {
					qty = 1
				}
				qty = int(float64(qty) * p.Policy.BedSeasonalMultiplier(start))
			case model.CategoryTables:
				qty = int(r.Normal(6, 3))
			default: // Storage
				qty = int(r.Normal(4, 2))
			}
			if qty < 1 {
				qty = 1
			}

			var duration int
			switch prod.Category {
			case model.CategorySofas, model.CategoryBeds:
				duration = r.Int(7, 14)
			case model.CategoryStorage:
				duration = r.Int(5, 11)
			default:
				duration = r.Int(3, 7)
			}
			end := start.AddDate(0, 0, duration)

			var status string
			switch {
			case end.After(p.EndDate):
				status = model.ProductionStatusInProgress
			case end.After(p.EndDate.AddDate(0, 0, -5)):
				status = datagen.Choose(r, []string{model.ProductionStatusCompleted, model.ProductionStatusInProgress})
			default:
				status = model.ProductionStatusCompleted
			}

			unitCost := prod.ProductionCost
			if prod.Category == model.CategorySofas {
				unitCost *= p.Policy.SofaCostMultiplier(start)
			}
			unitCost *= 1.0 + r.Float64(-0.03, 0.03)
			totalCost := datagen.Round2(unitCost * float64(qty))

			defectCount := int(math.Round(float64(qty) * r.Float64(0.01, 0.04)))

			orders = append(orders, model.ProductionOrder{
				ID:             fmt.Sprintf("PROD-ORD-%04d", counter),
				ProductID:      prod.ID,
				Quantity:       qty,
				StartDate:      start,
				EndDate:        end,
				Status:         status,
				ProductionCost: totalCost,
				DefectCount:    defectCount,
			})
			counter++
		}
	}

	sort.SliceStable(orders, func(i, j int) bool {
		return orders[i].StartDate.Before(orders[j].StartDate)
	})
	return orders
}
