package generators

import (
	"fmt"

	"github.com/bellacasa/bellacasa-datagen/internal/datagen"
	"github.com/bellacasa/bellacasa-datagen/internal/model"
)

// Italian cities grouped by region. Flattened in declaration order so the
// same seed always picks the same city.
var italianCities = []struct {
	Region string
	Cities []string
}{
	{"Lombardia", []string{"Milano", "Bergamo", "Brescia", "Como", "Monza"}},
	{"Lazio", []string{"Roma", "Frosinone", "Latina"}},
	{"Toscana", []string{"Firenze", "Siena", "Pisa", "Lucca"}},
	{"Veneto", []string{"Venezia", "Verona", "Padova", "Vicenza"}},
	{"Piemonte", []string{"Torino", "Novara", "Asti"}},
	{"Campania", []string{"Napoli", "Salerno", "Caserta"}},
	{"Emilia-Romagna", []string{"Bologna", "Parma", "Modena", "Rimini"}},
	{"Sicilia", []string{"Palermo", "Catania", "Messina"}},
	{"Puglia", []string{"Bari", "Lecce", "Taranto"}},
	{"Liguria", []string{"Genova", "Sanremo", "La Spezia"}},
}

var b2bDesignerNames = []string{
	"Rossi Interiors", "Studio Bianchi Design", "Moretti & Partners",
	"Casa Elegante Design", "Luca Ferrari Architettura", "Ricci Design Studio",
	"Valentini Interior Solutions", "Giordano Progetti", "Marchetti Design Group",
	"Conti Living Spaces", "De Luca Studio Creativo", "Pellegrini Design House",
	"Gallo Architecture & Interiors", "Caruso Interior Concepts", "Rinaldi Design Lab",
	"Costa Living Design", "Fontana Creative Studio", "Bruno & Associati",
	"Santoro Interior Group", "Vitale Design Partners", "Amato Studio Milano",
	"Barbieri Progetti d'Interni", "Colombo Design Collective", "D'Angelo Living",
	"Esposito Interior Architects", "Fabbri Design Works", "Grassi Studio",
	"Leone Interior Innovations", "Mancini Design Atelier", "Neri & Bianchi Studio",
}

var b2bHotelNames = []string{
	"Grand Hotel Palazzo", "Hotel Belvedere Group", "Luxury Resorts Italia",
	"Albergo Reale Chain", "Villa Paradiso Hotels", "Hotel Vesuvio Collection",
	"Masseria del Sud Hotels", "Palazzo Ducale Hospitality", "Hotel Riviera Management",
	"Boutique Hotels Toscana", "Resort Costiera Group", "Hotel Dolce Vita",
	"Castello Hotels & Spa", "Seaside Luxury Resorts", "Montagna Hotels Group",
	"Alberghi Stellati Italia", "Hotel Piazza Collection", "Dimora Storica Hotels",
	"Borgo Antico Hospitality", "Lake Como Hotel Group",
}

var b2cFirstNames = []string{
	"Marco", "Alessandro", "Giuseppe", "Lorenzo", "Andrea", "Francesco",
	"Matteo", "Luca", "Giovanni", "Davide", "Giulia", "Francesca",
	"Sara", "Chiara", "Valentina", "Elisa", "Martina", "Sofia",
	"Anna", "Laura", "Roberto", "Stefano", "Antonio", "Simone",
	"Fabio", "Elena", "Paola", "Silvia", "Monica", "Claudia",
}

var b2cLastNames = []string{
	"Rossi", "Russo", "Ferrari", "Esposito", "Bianchi", "Romano",
	"Colombo", "Ricci", "Marino", "Greco", "Bruno", "Gallo",
	"Conti", "De Luca", "Costa", "Giordano", "Mancini", "Rizzo",
	"Lombardi", "Moretti", "Barbieri", "Fontana", "Santoro", "Mariani",
	"Rinaldi", "Caruso", "Ferrara", "Pellegrini", "Vitale", "Serra",
}

type cityRegion struct {
	City   string
	Region string
}

func allCities() []cityRegion {
	var out []cityRegion
	for _, rc := range italianCities {
		for _, c := range rc.Cities {
			out = append(out, cityRegion{City: c, Region: rc.Region})
		}
	}
	return out
}

// GenerateCustomers builds the customer table: 30 B2B interior designers, 20
// B2B hotel chains, and B2C retail customers up to the configured total. The
// anchor customer is pinned to wholesale/Milano with a VIP segment and a
// created date at the start of the range. Returns the customers and the
// anchor's assigned ID.
func GenerateCustomers(r *datagen.Rand, p Params) ([]model.Customer, string) {
	cities := allCities()
	rangeDays := p.TotalDays()

	var customers []model.Customer
	var anchorID string
	nextID := 1

	newID := func() string {
		id := fmt.Sprintf("CUST-%04d", nextID)
		nextID++
		return id
	}

	// B2B interior designers.
	for i, name := range b2bDesignerNames {
		loc := cities[r.Intn(len(cities))]
		channel := datagen.Choose(r, []string{model.ChannelShowroom1, model.ChannelShowroom2, model.ChannelWholesale})
		created := p.StartDate.AddDate(0, 0, r.Intn(rangeDays-90))
		segment := model.SegmentRegular
		if i < 8 {
			segment = model.SegmentVIP
		}

		c := model.Customer{
			ID:          newID(),
			Name:        name,
			Type:        model.TypeB2B,
			Channel:     channel,
			City:        loc.City,
			Region:      loc.Region,
			Email:       r.Email(),
			Phone:       r.Phone(),
			CreatedDate: created,
			Segment:     segment,
		}
		if name == p.AnchorName {
			c.Segment = model.SegmentVIP
			c.Channel = model.ChannelWholesale
			c.City = "Milano"
			c.Region = "Lombardia"
			c.CreatedDate = p.StartDate
			anchorID = c.ID
		}
		customers = append(customers, c)
	}

	// B2B hotel chains.
	for i, name := range b2bHotelNames {
		loc := cities[r.Intn(len(cities))]
		channel := datagen.Choose(r, []string{model.ChannelWholesale, model.ChannelShowroom1})
		created := p.StartDate.AddDate(0, 0, r.Intn(rangeDays-60))
		segment := model.SegmentRegular
		if i < 5 {
			segment = model.SegmentVIP
		}

		customers = append(customers, model.Customer{
			ID:          newID(),
			Name:        name,
			Type:        model.TypeB2B,
			Channel:     channel,
			City:        loc.City,
			Region:      loc.Region,
			Email:       r.Email(),
			Phone:       r.Phone(),
			CreatedDate: created,
			Segment:     segment,
		})
	}

	// B2C retail fills the remainder. Customers created after the online
	// relaunch skew heavily toward the online channel.
	nB2C := p.Customers - len(customers)
	for i := 0; i < nB2C; i++ {
		first := b2cFirstNames[r.Intn(len(b2cFirstNames))]
		last := b2cLastNames[r.Intn(len(b2cLastNames))]
		loc := cities[r.Intn(len(cities))]

		createdOffset := r.Intn(rangeDays)
		created := p.StartDate.AddDate(0, 0, createdOffset)

		var channel string
		if !created.Before(p.Policy.RelaunchDate) {
			channel = datagen.Choose(r, []string{
				model.ChannelShowroom1, model.ChannelShowroom2, model.ChannelShowroom3,
				model.ChannelOnline, model.ChannelOnline, model.ChannelOnline,
			})
		} else {
			channel = datagen.Choose(r, []string{
				model.ChannelShowroom1, model.ChannelShowroom2,
				model.ChannelShowroom3, model.ChannelOnline,
			})
		}

		var segment string
		switch {
		case i < 15:
			segment = model.SegmentVIP
		case createdOffset > rangeDays-120:
			segment = model.SegmentNew
		default:
			segment = datagen.Choose(r, []string{
				model.SegmentRegular, model.SegmentRegular,
				model.SegmentRegular, model.SegmentNew,
			})
		}

		customers = append(customers, model.Customer{
			ID:          newID(),
			Name:        first + " " + last,
			Type:        model.TypeB2C,
			Channel:     channel,
			City:        loc.City,
			Region:      loc.Region,
			Email:       r.Email(),
			Phone:       r.Phone(),
			CreatedDate: created,
			Segment:     segment,
		})
	}

	return customers, anchorID
}

// customersByChannel indexes customer IDs by their preferred channel.
func customersByChannel(customers []model.Customer) map[string][]string {
	byChannel := make(map[string][]string)
	for _, c := range customers {
		byChannel[c.Channel] = append(byChannel[c.Channel], c.ID)
	}
	return byChannel
}

// vipWholesaleIDs returns wholesale-channel VIP customer IDs in table order.
func vipWholesaleIDs(customers []model.Customer) []string {
	var out []string
	for _, c := range customers {
		if c.Channel == model.ChannelWholesale && c.Segment == model.SegmentVIP {
			out = append(out, c.ID)
		}
	}
	return out
}
