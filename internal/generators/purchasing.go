package generators

import (
	"fmt"
	"sort"
	"time"

	"github.com/bellacasa/bellacasa-datagen/internal/datagen"
	"github.com/bellacasa/bellacasa-datagen/internal/model"
)

// supplierOrderWeights skews purchase volume toward the high-usage material
// categories (wood, leather, foam, packaging). Iterated in this order so the
// run is reproducible.
var supplierOrderWeights = []struct {
	SupplierID string
	Weight     float64
}{
	{"SUP-001", 0.16}, // wood
	{"SUP-002", 0.14}, // leather
	{"SUP-003", 0.12}, // fabric
	{"SUP-004", 0.14}, // foam
	{"SUP-005", 0.12}, // hardware
	{"SUP-006", 0.06}, // glass
	{"SUP-007", 0.10}, // paint
	{"SUP-008", 0.16}, // packaging
}

// GeneratePurchaseOrders builds the purchase order table. Foam orders from
// the disrupted supplier carry the cost hike and degraded delivery delays
// after the hike date. Orders, expected and actual deliveries all land on
// business days. Rows are sorted by order date; IDs keep generation order.
func GeneratePurchaseOrders(r *datagen.Rand, p Params, suppliers []model.Supplier, materials []model.Material) []model.PurchaseOrder {
	supplierByID := make(map[string]model.Supplier, len(suppliers))
	for _, s := range suppliers {
		supplierByID[s.ID] = s
	}
	materialsBySupplier := make(map[string][]model.Material)
	for _, m := range materials {
		materialsBySupplier[m.SupplierID] = append(materialsBySupplier[m.SupplierID], m)
	}

	totalDays := p.TotalDays()
	var orders []model.PurchaseOrder
	counter := 1

	for _, sw := range supplierOrderWeights {
		sup, ok := supplierByID[sw.SupplierID]
		if !ok {
			continue
		}
		mats := materialsBySupplier[sw.SupplierID]
		if len(mats) == 0 {
			continue
		}
		nOrders := int(float64(p.PurchaseOrders) * sw.Weight)

		for i := 0; i < nOrders; i++ {
			mat := mats[r.Intn(len(mats))]

			orderDate := p.StartDate.AddDate(0, 0, r.Intn(totalDays))
			orderDate = datagen.NextBusinessDay(orderDate)

			qty := int(r.Normal(float64(mat.ReorderQty), float64(mat.ReorderQty)*0.2))
			if qty < 1 {
				qty = 1
			}

			unitCost := mat.UnitCost
			if sup.ID == p.Policy.FoamSupplierID {
				unitCost *= p.Policy.FoamCostMultiplier(orderDate)
			}
			unitCost *= 1.0 + r.Float64(-0.05, 0.05)
			unitCost = datagen.Round2(unitCost)
			totalCost := datagen.Round2(float64(qty) * unitCost)

			expected := datagen.NextBusinessDay(orderDate.AddDate(0, 0, sup.LeadTimeDays))

			var delay int
			if p.Policy.DisruptedSupplier(sup.ID, orderDate) {
				if r.Chance(0.65) {
					delay = r.Int(0, 2)
				} else {
					delay = r.Int(5, 20)
				}
			} else {
				if r.Chance(sup.ReliabilityScore) {
					delay = r.Int(0, 1)
				} else {
					delay = r.Int(3, 11)
				}
			}
			actual := datagen.NextBusinessDay(expected.AddDate(0, 0, delay))

			var status string
			switch {
			case orderDate.Before(p.EndDate.AddDate(0, 0, -30)):
				status = model.POStatusDelivered
			case orderDate.Before(p.EndDate.AddDate(0, 0, -7)):
				status = datagen.Choose(r, []string{model.POStatusDelivered, model.POStatusDelivered, model.POStatusInTransit})
			default:
				status = datagen.Choose(r, []string{model.POStatusPending, model.POStatusInTransit})
			}

			var actualDelivery time.Time
			if status == model.POStatusDelivered {
				actualDelivery = actual
			}

			orders = append(orders, model.PurchaseOrder{
				ID:               fmt.Sprintf("PO-%04d", counter),
				SupplierID:       sup.ID,
				MaterialID:       mat.ID,
				Quantity:         qty,
				UnitCost:         unitCost,
				TotalCost:        totalCost,
				OrderDate:        orderDate,
				ExpectedDelivery: expected,
				ActualDelivery:   actualDelivery,
				Status:           status,
			})
			counter++
		}
	}

	sort.SliceStable(orders, func(i, j int) bool {
		return orders[i].OrderDate.Before(orders[j].OrderDate)
	})
	return orders
}
