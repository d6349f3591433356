package generators

import (
	"github.com/bellacasa/bellacasa-datagen/internal/datagen"
	"github.com/bellacasa/bellacasa-datagen/internal/model"
)

// GenerateProducts returns the 18 curated furniture products across the five
// categories (4 sofas, 4 beds, 4 tables, 4 chairs, 2 storage).
func GenerateProducts(r *datagen.Rand) []model.Product {
	return []model.Product{
		// Sofas
		{ID: "PROD-001", Name: "Divano Roma (3-Seater Leather Sofa)", Category: model.CategorySofas, BasePrice: 3200.00, ProductionCost: 1856.00, WeightKg: 85.0, Active: true},
		{ID: "PROD-002", Name: "Divano Venezia (Sectional Fabric Sofa)", Category: model.CategorySofas, BasePrice: 4500.00, ProductionCost: 2610.00, WeightKg: 120.0, Active: true},
		{ID: "PROD-003", Name: "Poltrona Capri (Accent Armchair)", Category: model.CategorySofas, BasePrice: 1400.00, ProductionCost: 812.00, WeightKg: 35.0, Active: true},
		{ID: "PROD-004", Name: "Divano Amalfi (2-Seater Velvet Sofa)", Category: model.CategorySofas, BasePrice: 2600.00, ProductionCost: 1508.00, WeightKg: 65.0, Active: true},

		// Beds
		{ID: "PROD-005", Name: "Letto Firenze (King Platform Bed)", Category: model.CategoryBeds, BasePrice: 2800.00, ProductionCost: 1540.00, WeightKg: 95.0, Active: true},
		{ID: "PROD-006", Name: "Letto Siena (Queen Upholstered Bed)", Category: model.CategoryBeds, BasePrice: 2200.00, ProductionCost: 1210.00, WeightKg: 80.0, Active: true},
		{ID: "PROD-007", Name: "Letto Verona (Storage Bed Frame)", Category: model.CategoryBeds, BasePrice: 1900.00, ProductionCost: 1045.00, WeightKg: 110.0, Active: true},
		{ID: "PROD-008", Name: "Letto Portofino (Canopy Bed)", Category: model.CategoryBeds, BasePrice: 3500.00, ProductionCost: 1925.00, WeightKg: 130.0, Active: true},

		// Tables
		{ID: "PROD-009", Name: "Tavolo Milano (Walnut Dining Table)", Category: model.CategoryTables, BasePrice: 2400.00, ProductionCost: 1320.00, WeightKg: 70.0, Active: true},
		{ID: "PROD-010", Name: "Tavolino Lago (Glass Coffee Table)", Category: model.CategoryTables, BasePrice: 850.00, ProductionCost: 467.50, WeightKg: 28.0, Active: true},
		{ID: "PROD-011", Name: "Scrivania Torino (Oak Home Office Desk)", Category: model.CategoryTables, BasePrice: 1600.00, ProductionCost: 880.00, WeightKg: 55.0, Active: true},
		{ID: "PROD-012", Name: "Consolle Napoli (Console Table)", Category: model.CategoryTables, BasePrice: 980.00, ProductionCost: 539.00, WeightKg: 22.0, Active: true},

		// Chairs
		{ID: "PROD-013", Name: "Sedia Toscana (Leather Dining Chair)", Category: model.CategoryChairs, BasePrice: 650.00, ProductionCost: 357.50, WeightKg: 8.5, Active: true},
		{ID: "PROD-014", Name: "Sedia Umbria (Fabric Dining Chair)", Category: model.CategoryChairs, BasePrice: 420.00, ProductionCost: 231.00, WeightKg: 7.0, Active: true},
		{ID: "PROD-015", Name: "Poltrona Giardino (Outdoor Lounge Chair)", Category: model.CategoryChairs, BasePrice: 780.00, ProductionCost: 429.00, WeightKg: 12.0, Active: true},
		{ID: "PROD-016", Name: "Sgabello Bar Moderno (Modern Bar Stool)", Category: model.CategoryChairs, BasePrice: 380.00, ProductionCost: 209.00, WeightKg: 6.0, Active: true},

		// Storage
		{ID: "PROD-017", Name: "Credenza Palermo (Sideboard)", Category: model.CategoryStorage, BasePrice: 2100.00, ProductionCost: 1155.00, WeightKg: 75.0, Active: true},
		{ID: "PROD-018", Name: "Libreria Bologna (Bookcase)", Category: model.CategoryStorage, BasePrice: 1450.00, ProductionCost: 797.50, WeightKg: 60.0, Active: true},
	}
}
