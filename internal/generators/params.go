// Package generators produces the tables of the Bella Casa Furniture
// synthetic dataset. Generators run in dependency order: reference tables,
// then customers, then the transactional tables, then the derived rollups,
// with a final enforcement pass over the sales table. Every generator takes
// the shared *datagen.Rand so one seed drives the whole run.
package generators

import (
	"time"

	"github.com/bellacasa/bellacasa-datagen/internal/stories"
)

// Params carries the date range, target row counts and story constants into
// each generator.
type Params struct {
	StartDate time.Time
	EndDate   time.Time
	Policy    stories.Policy

	Customers        int
	PurchaseOrders   int
	ProductionOrders int
	SalesOrders      int

	// AnchorName identifies the top customer at creation time; after the
	// customer table is generated the anchor is tracked by ID only.
	AnchorName      string
	AnchorShare     float64
	AnchorLastOrder time.Time
}

// DefaultParams returns the canonical dataset parameters, used by tests and
// standalone invocations.
func DefaultParams() Params {
	return Params{
		StartDate:        time.Date(2023, 7, 1, 0, 0, 0, 0, time.UTC),
		EndDate:          time.Date(2025, 1, 31, 0, 0, 0, 0, time.UTC),
		Policy:           stories.Default(),
		Customers:        800,
		PurchaseOrders:   1200,
		ProductionOrders: 600,
		SalesOrders:      3500,
		AnchorName:       "Rossi Interiors",
		AnchorShare:      0.12,
		AnchorLastOrder:  time.Date(2024, 11, 15, 0, 0, 0, 0, time.UTC),
	}
}

// TotalDays returns the span of the generation range in days.
func (p Params) TotalDays() int {
	return int(p.EndDate.Sub(p.StartDate).Hours() / 24)
}
