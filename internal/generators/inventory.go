package generators

import (
	"fmt"
	"time"

	"github.com/bellacasa/bellacasa-datagen/internal/datagen"
	"github.com/bellacasa/bellacasa-datagen/internal/model"
)

// baseInventoryByCategory is the nominal stock level per product category.
var baseInventoryByCategory = map[string]int{
	model.CategorySofas:   25,
	model.CategoryBeds:    20,
	model.CategoryTables:  30,
	model.CategoryChairs:  60,
	model.CategoryStorage: 15,
}

// snapshotDates returns the first of each month in range, plus a mid-month
// snapshot for October through December when stock is watched more closely.
func snapshotDates(start, end time.Time) []time.Time {
	var dates []time.Time
	current := datagen.Date(start.Year(), start.Month(), 1)
	for !current.After(end) {
		if !current.Before(start) {
			dates = append(dates, current)
		}
		if m := current.Month(); m == time.October || m == time.November || m == time.December {
			mid := datagen.Date(current.Year(), m, 15)
			if !mid.Before(start) && !mid.After(end) {
				dates = append(dates, mid)
			}
		}
		current = datagen.NextMonth(current)
	}
	return dates
}

// GenerateInventory builds point-in-time stock snapshots for every product
// on a monthly cadence. Bed stock runs low in October and November and high
// in spring, mirroring the seasonal demand cycle.
func GenerateInventory(r *datagen.Rand, p Params, products []model.Product) []model.InventorySnapshot {
	dates := snapshotDates(p.StartDate, p.EndDate)

	var snaps []model.InventorySnapshot
	counter := 1

	for _, snapDate := range dates {
		for _, prod := range products {
			base, ok := baseInventoryByCategory[prod.Category]
			if !ok {
				base = 20
			}

			var demandFactor float64
			if prod.Category == model.CategoryBeds {
				switch snapDate.Month() {
				case time.October, time.November:
					demandFactor = r.Float64(1.8, 2.5)
				case time.March, time.April, time.May:
					demandFactor = r.Float64(0.5, 0.8)
				default:
					demandFactor = r.Float64(0.9, 1.2)
				}
			} else {
				demandFactor = r.Float64(0.8, 1.3)
			}

			onHand := int(float64(base)/demandFactor + r.Normal(0, float64(base)*0.15))
			if onHand < 0 {
				onHand = 0
			}
			reserved := int(r.Float64(0, float64(onHand)*0.4))
			if reserved < 0 {
				reserved = 0
			}
			if reserved > onHand {
				reserved = onHand
			}
			available := onHand - reserved

			snaps = append(snaps, model.InventorySnapshot{
				ID:            fmt.Sprintf("SNAP-%05d", counter),
				Date:          snapDate,
				ProductID:     prod.ID,
				OnHand:        onHand,
				Reserved:      reserved,
				Available:     available,
				ReorderNeeded: float64(available) < float64(base)*0.3,
			})
			counter++
		}
	}

	return snaps
}
