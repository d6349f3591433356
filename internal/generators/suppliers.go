package generators

import (
	"github.com/bellacasa/bellacasa-datagen/internal/datagen"
	"github.com/bellacasa/bellacasa-datagen/internal/model"
)

// GenerateSuppliers returns the eight curated Italian suppliers, one per
// material category. The random source is accepted for interface parity with
// the other generators but the table is fixed content.
func GenerateSuppliers(r *datagen.Rand) []model.Supplier {
	return []model.Supplier{
		{
			ID: "SUP-001", Name: "Legnami Toscani", Country: "Italy",
			City: "Firenze", Latitude: 43.7696, Longitude: 11.2558,
			Category: "wood", LeadTimeDays: 14, ReliabilityScore: 0.94,
			PaymentTerms: "Net 30",
		},
		{
			ID: "SUP-002", Name: "Pelle di Firenze", Country: "Italy",
			City: "Firenze", Latitude: 43.7793, Longitude: 11.2463,
			Category: "leather", LeadTimeDays: 21, ReliabilityScore: 0.91,
			PaymentTerms: "Net 45",
		},
		{
			ID: "SUP-003", Name: "Tessuti Milano", Country: "Italy",
			City: "Milano", Latitude: 45.4642, Longitude: 9.1900,
			Category: "fabric", LeadTimeDays: 10, ReliabilityScore: 0.88,
			PaymentTerms: "Net 30",
		},
		{
			ID: "SUP-004", Name: "Schiuma Veneta", Country: "Italy",
			City: "Padova", Latitude: 45.4064, Longitude: 11.8768,
			Category: "foam", LeadTimeDays: 7, ReliabilityScore: 0.92,
			PaymentTerms: "Net 15",
		},
		{
			ID: "SUP-005", Name: "Ferramenta Napoli", Country: "Italy",
			City: "Napoli", Latitude: 40.8518, Longitude: 14.2681,
			Category: "hardware", LeadTimeDays: 5, ReliabilityScore: 0.96,
			PaymentTerms: "Net 30",
		},
		{
			ID: "SUP-006", Name: "Vetro di Murano", Country: "Italy",
			City: "Venezia", Latitude: 45.4408, Longitude: 12.3155,
			Category: "glass", LeadTimeDays: 18, ReliabilityScore: 0.89,
			PaymentTerms: "Net 45",
		},
		{
			ID: "SUP-007", Name: "Colori Romani", Country: "Italy",
			City: "Roma", Latitude: 41.9028, Longitude: 12.4964,
			Category: "paint", LeadTimeDays: 8, ReliabilityScore: 0.95,
			PaymentTerms: "Net 30",
		},
		{
			ID: "SUP-008", Name: "Imballaggio Siciliano", Country: "Italy",
			City: "Palermo", Latitude: 38.1157, Longitude: 13.3615,
			Category: "packaging", LeadTimeDays: 4, ReliabilityScore: 0.97,
			PaymentTerms: "Net 15",
		},
	}
}
