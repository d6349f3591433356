package generators

import (
	"github.com/bellacasa/bellacasa-datagen/internal/datagen"
	"github.com/bellacasa/bellacasa-datagen/internal/model"
)

// GenerateMaterials returns the 25 curated materials. Every SupplierID
// resolves to a supplier from GenerateSuppliers by construction.
func GenerateMaterials(r *datagen.Rand) []model.Material {
	return []model.Material{
		// Wood (SUP-001: Legnami Toscani)
		{ID: "MAT-001", Name: "Noce Massello (Solid Walnut)", Category: "wood", Unit: "m3", UnitCost: 850.00, SupplierID: "SUP-001", ReorderPoint: 15, ReorderQty: 40},
		{ID: "MAT-002", Name: "Rovere Europeo (European Oak)", Category: "wood", Unit: "m3", UnitCost: 720.00, SupplierID: "SUP-001", ReorderPoint: 20, ReorderQty: 50},
		{ID: "MAT-003", Name: "Faggio Evaporato (Steamed Beech)", Category: "wood", Unit: "m3", UnitCost: 480.00, SupplierID: "SUP-001", ReorderPoint: 10, ReorderQty: 30},
		{ID: "MAT-004", Name: "Pannello MDF Premium", Category: "wood", Unit: "sheet", UnitCost: 45.00, SupplierID: "SUP-001", ReorderPoint: 100, ReorderQty: 250},

		// Leather (SUP-002: Pelle di Firenze)
		{ID: "MAT-005", Name: "Pelle Pieno Fiore (Full Grain Leather)", Category: "leather", Unit: "m2", UnitCost: 95.00, SupplierID: "SUP-002", ReorderPoint: 50, ReorderQty: 150},
		{ID: "MAT-006", Name: "Pelle Nabuk (Nubuck Leather)", Category: "leather", Unit: "m2", UnitCost: 78.00, SupplierID: "SUP-002", ReorderPoint: 30, ReorderQty: 100},
		{ID: "MAT-007", Name: "Pelle Semi-Anilina", Category: "leather", Unit: "m2", UnitCost: 65.00, SupplierID: "SUP-002", ReorderPoint: 40, ReorderQty: 120},

		// Fabric (SUP-003: Tessuti Milano)
		{ID: "MAT-008", Name: "Velluto di Cotone (Cotton Velvet)", Category: "fabric", Unit: "m2", UnitCost: 32.00, SupplierID: "SUP-003", ReorderPoint: 80, ReorderQty: 200},
		{ID: "MAT-009", Name: "Lino Italiano (Italian Linen)", Category: "fabric", Unit: "m2", UnitCost: 28.00, SupplierID: "SUP-003", ReorderPoint: 60, ReorderQty: 180},
		{ID: "MAT-010", Name: "Microfibra Resistente", Category: "fabric", Unit: "m2", UnitCost: 18.00, SupplierID: "SUP-003", ReorderPoint: 100, ReorderQty: 300},

		// Foam (SUP-004: Schiuma Veneta)
		{ID: "MAT-011", Name: "Schiuma HR Alta Densita (HR Foam)", Category: "foam", Unit: "m3", UnitCost: 120.00, SupplierID: "SUP-004", ReorderPoint: 25, ReorderQty: 60},
		{ID: "MAT-012", Name: "Memory Foam Premium", Category: "foam", Unit: "m3", UnitCost: 180.00, SupplierID: "SUP-004", ReorderPoint: 20, ReorderQty: 50},
		{ID: "MAT-013", Name: "Schiuma Poliuretanica Standard", Category: "foam", Unit: "m3", UnitCost: 65.00, SupplierID: "SUP-004", ReorderPoint: 30, ReorderQty: 80},

		// Hardware (SUP-005: Ferramenta Napoli)
		{ID: "MAT-014", Name: "Cerniere Acciaio Inox (SS Hinges)", Category: "hardware", Unit: "piece", UnitCost: 4.50, SupplierID: "SUP-005", ReorderPoint: 500, ReorderQty: 1500},
		{ID: "MAT-015", Name: "Guide Cassetto Soft-Close", Category: "hardware", Unit: "pair", UnitCost: 12.00, SupplierID: "SUP-005", ReorderPoint: 200, ReorderQty: 600},
		{ID: "MAT-016", Name: "Viti e Bulloni Assortiti", Category: "hardware", Unit: "kg", UnitCost: 8.00, SupplierID: "SUP-005", ReorderPoint: 50, ReorderQty: 150},
		{ID: "MAT-017", Name: "Piedini Regolabili (Adjustable Feet)", Category: "hardware", Unit: "piece", UnitCost: 3.20, SupplierID: "SUP-005", ReorderPoint: 300, ReorderQty: 900},

		// Glass (SUP-006: Vetro di Murano)
		{ID: "MAT-018", Name: "Vetro Temperato 10mm", Category: "glass", Unit: "m2", UnitCost: 55.00, SupplierID: "SUP-006", ReorderPoint: 30, ReorderQty: 80},
		{ID: "MAT-019", Name: "Specchio Bisellato (Beveled Mirror)", Category: "glass", Unit: "m2", UnitCost: 42.00, SupplierID: "SUP-006", ReorderPoint: 20, ReorderQty: 50},

		// Paint (SUP-007: Colori Romani)
		{ID: "MAT-020", Name: "Vernice Opaca Italiana (Matte Finish)", Category: "paint", Unit: "liter", UnitCost: 22.00, SupplierID: "SUP-007", ReorderPoint: 80, ReorderQty: 200},
		{ID: "MAT-021", Name: "Finitura Lucida Poliuretanica", Category: "paint", Unit: "liter", UnitCost: 28.00, SupplierID: "SUP-007", ReorderPoint: 60, ReorderQty: 150},
		{ID: "MAT-022", Name: "Tinta Legno Naturale (Wood Stain)", Category: "paint", Unit: "liter", UnitCost: 18.00, SupplierID: "SUP-007", ReorderPoint: 40, ReorderQty: 120},

		// Packaging (SUP-008: Imballaggio Siciliano)
		{ID: "MAT-023", Name: "Cartone Ondulato Pesante", Category: "packaging", Unit: "piece", UnitCost: 6.50, SupplierID: "SUP-008", ReorderPoint: 200, ReorderQty: 600},
		{ID: "MAT-024", Name: "Pluriball Protettivo (Bubble Wrap)", Category: "packaging", Unit: "roll", UnitCost: 15.00, SupplierID: "SUP-008", ReorderPoint: 50, ReorderQty: 150},
		{ID: "MAT-025", Name: "Angolari in Polistirolo", Category: "packaging", Unit: "piece", UnitCost: 2.00, SupplierID: "SUP-008", ReorderPoint: 400, ReorderQty: 1200},
	}
}
