package generators

import (
	"fmt"

	"github.com/bellacasa/bellacasa-datagen/internal/datagen"
	"github.com/bellacasa/bellacasa-datagen/internal/model"
)

// GenerateBOM returns the bill of materials linking every product to the
// materials it consumes. IDs are assigned sequentially in table order.
func GenerateBOM(r *datagen.Rand) []model.BOMLine {
	type entry struct {
		product  string
		material string
		qty      float64
		unit     string
	}
	entries := []entry{
		// PROD-001: Divano Roma
		{"PROD-001", "MAT-001", 0.15, "m3"},
		{"PROD-001", "MAT-005", 12.0, "m2"},
		{"PROD-001", "MAT-011", 0.8, "m3"},
		{"PROD-001", "MAT-016", 1.5, "kg"},

		// PROD-002: Divano Venezia
		{"PROD-002", "MAT-002", 0.20, "m3"},
		{"PROD-002", "MAT-008", 18.0, "m2"},
		{"PROD-002", "MAT-011", 1.2, "m3"},
		{"PROD-002", "MAT-012", 0.3, "m3"},
		{"PROD-002", "MAT-016", 2.0, "kg"},

		// PROD-003: Poltrona Capri
		{"PROD-003", "MAT-003", 0.06, "m3"},
		{"PROD-003", "MAT-009", 4.0, "m2"},
		{"PROD-003", "MAT-013", 0.3, "m3"},
		{"PROD-003", "MAT-017", 4.0, "piece"},

		// PROD-004: Divano Amalfi
		{"PROD-004", "MAT-002", 0.12, "m3"},
		{"PROD-004", "MAT-008", 10.0, "m2"},
		{"PROD-004", "MAT-011", 0.6, "m3"},
		{"PROD-004", "MAT-016", 1.2, "kg"},

		// PROD-005: Letto Firenze
		{"PROD-005", "MAT-001", 0.25, "m3"},
		{"PROD-005", "MAT-006", 6.0, "m2"},
		{"PROD-005", "MAT-012", 0.4, "m3"},
		{"PROD-005", "MAT-016", 3.0, "kg"},

		// PROD-006: Letto Siena
		{"PROD-006", "MAT-003", 0.18, "m3"},
		{"PROD-006", "MAT-010", 8.0, "m2"},
		{"PROD-006", "MAT-011", 0.5, "m3"},
		{"PROD-006", "MAT-016", 2.5, "kg"},

		// PROD-007: Letto Verona
		{"PROD-007", "MAT-002", 0.22, "m3"},
		{"PROD-007", "MAT-004", 4.0, "sheet"},
		{"PROD-007", "MAT-015", 4.0, "pair"},
		{"PROD-007", "MAT-016", 3.5, "kg"},

		// PROD-008: Letto Portofino
		{"PROD-008", "MAT-001", 0.35, "m3"},
		{"PROD-008", "MAT-009", 8.0, "m2"},
		{"PROD-008", "MAT-016", 4.0, "kg"},
		{"PROD-008", "MAT-020", 3.0, "liter"},

		// PROD-009: Tavolo Milano
		{"PROD-009", "MAT-001", 0.30, "m3"},
		{"PROD-009", "MAT-016", 2.0, "kg"},
		{"PROD-009", "MAT-017", 4.0, "piece"},
		{"PROD-009", "MAT-021", 2.0, "liter"},

		// PROD-010: Tavolino Lago
		{"PROD-010", "MAT-018", 1.2, "m2"},
		{"PROD-010", "MAT-016", 1.0, "kg"},
		{"PROD-010", "MAT-017", 4.0, "piece"},

		// PROD-011: Scrivania Torino
		{"PROD-011", "MAT-002", 0.20, "m3"},
		{"PROD-011", "MAT-015", 2.0, "pair"},
		{"PROD-011", "MAT-016", 1.5, "kg"},
		{"PROD-011", "MAT-022", 1.5, "liter"},

		// PROD-012: Consolle Napoli
		{"PROD-012", "MAT-003", 0.08, "m3"},
		{"PROD-012", "MAT-018", 0.5, "m2"},
		{"PROD-012", "MAT-016", 0.8, "kg"},
		{"PROD-012", "MAT-020", 1.0, "liter"},

		// PROD-013: Sedia Toscana
		{"PROD-013", "MAT-002", 0.04, "m3"},
		{"PROD-013", "MAT-007", 1.5, "m2"},
		{"PROD-013", "MAT-013", 0.05, "m3"},
		{"PROD-013", "MAT-016", 0.5, "kg"},

		// PROD-014: Sedia Umbria
		{"PROD-014", "MAT-003", 0.03, "m3"},
		{"PROD-014", "MAT-010", 1.2, "m2"},
		{"PROD-014", "MAT-013", 0.04, "m3"},

		// PROD-015: Poltrona Giardino
		{"PROD-015", "MAT-002", 0.06, "m3"},
		{"PROD-015", "MAT-010", 3.0, "m2"},
		{"PROD-015", "MAT-013", 0.15, "m3"},
		{"PROD-015", "MAT-020", 1.5, "liter"},

		// PROD-016: Sgabello Bar Moderno
		{"PROD-016", "MAT-003", 0.02, "m3"},
		{"PROD-016", "MAT-007", 0.5, "m2"},
		{"PROD-016", "MAT-016", 0.6, "kg"},

		// PROD-017: Credenza Palermo
		{"PROD-017", "MAT-001", 0.25, "m3"},
		{"PROD-017", "MAT-004", 3.0, "sheet"},
		{"PROD-017", "MAT-014", 8.0, "piece"},
		{"PROD-017", "MAT-015", 3.0, "pair"},
		{"PROD-017", "MAT-021", 2.5, "liter"},

		// PROD-018: Libreria Bologna
		{"PROD-018", "MAT-002", 0.20, "m3"},
		{"PROD-018", "MAT-004", 2.0, "sheet"},
		{"PROD-018", "MAT-016", 2.0, "kg"},
		{"PROD-018", "MAT-022", 2.0, "liter"},
	}

	lines := make([]model.BOMLine, 0, len(entries))
	for i, e := range entries {
		lines = append(lines, model.BOMLine{
			ID:             fmt.Sprintf("BOM-%03d", i+1),
			ProductID:      e.product,
			MaterialID:     e.material,
			QuantityNeeded: e.qty,
			Unit:           e.unit,
		})
	}
	return lines
}
