// Package catalog holds the built-in template catalog: one domestic and one
// international packing list per trip type. Item wording and order are fixed;
// stored templates and fixtures depend on them.
package catalog

import (
	"time"

	"github.com/google/uuid"

	"github.com/pkordes/adventure-checklist/internal/domain"
)

var domesticItems = map[domain.TripType][]string{
	domain.TripTypeCamping: {
		"Tent + stakes",
		"Sleeping bag & pad",
		"Headlamp / flashlight",
		"Camping stove + fuel",
		"Cookware (pot/pan, utensils, mug)",
		"Cooler + food",
		"Reusable water bottle / hydration bladder",
		"Clothing layers (base, mid, waterproof)",
		"Hiking boots",
		"First aid kit",
		"Sunscreen + bug spray",
		"Trash bags",
		"Map / compass / trail app",
		"Firestarter / lighter",
	},
	domain.TripTypeSnowboarding: {
		"Snowboard + bindings",
		"Snowboard boots",
		"Helmet",
		"Snow goggles",
		"Ski pass or lift ticket",
		"Waterproof outerwear (jacket/pants)",
		"Gloves/mittens",
		"Base layers (thermal top/bottom)",
		"Neck gaiter / face mask",
		"Thick socks",
		"Casual winter clothes",
		"Hand warmers",
		"Sunscreen",
		"Snacks + water bottle",
	},
	domain.TripTypeCity: {
		"Casual outfits",
		"Comfortable walking shoes",
		"Phone + charger",
		"Wallet / ID / cards",
		"Sunglasses",
		"Reusable water bottle",
		"Travel-size toiletries",
		"Light jacket or umbrella (weather-based)",
		"Book / entertainment",
		"Day bag or backpack",
		"Local transport card (if applicable)",
	},
	domain.TripTypeBusiness: {
		"Business attire (suits, blouse, slacks, etc.)",
		"Laptop + charger",
		"Notebook / pen",
		"Work documents / meeting notes",
		"Business cards",
		"Comfortable business shoes",
		"Casual clothes for downtime",
		"Phone + charger",
		"Toiletries",
		"ID / access badge (if needed)",
		"Day bag or briefcase",
	},
}

// internationalEssentials is appended to every international variant.
var internationalEssentials = []string{
	"Passport",
	"Visa / entry documents",
	"Travel insurance details",
	"Power adapter / converter",
	"Local currency / travel card",
	"SIM card / eSIM plan",
	"Copies of important documents",
	"Medications + prescriptions",
}

// internationalExtras follows the essentials on each international variant.
var internationalExtras = map[domain.TripType][]string{
	domain.TripTypeCamping: {
		"Park permits / border-crossing rules for gear",
		"Water purification tablets",
		"Offline maps downloaded",
	},
	domain.TripTypeSnowboarding: {
		"International lift pass / resort card",
		"Winter sports insurance coverage",
		"Board bag for flights",
	},
	domain.TripTypeCity: {
		"Phrasebook / translation app",
		"Offline city map",
		"Money belt or anti-theft bag",
	},
	domain.TripTypeBusiness: {
		"Invitation letter / business visa",
		"International roaming plan",
		"Universal laptop power adapter",
	},
}

// ItemNames returns the catalog item names for a scope and trip type, in
// checklist order. It returns nil for trip types outside the catalog.
func ItemNames(scope domain.Scope, tripType domain.TripType) []string {
	base, ok := domesticItems[tripType]
	if !ok {
		return nil
	}
	out := append([]string(nil), base...)
	if scope == domain.ScopeInternational {
		out = append(out, internationalEssentials...)
		out = append(out, internationalExtras[tripType]...)
	}
	return out
}

// InternationalEssentials returns a copy of the shared international list.
func InternationalEssentials() []string {
	return append([]string(nil), internationalEssentials...)
}

// Defaults builds the full default catalog: the four domestic templates
// followed by the four international ones, in domain.TripTypes order. Every
// template and item gets a fresh ID; createdAt becomes the CreationDate.
func Defaults(createdAt time.Time) []domain.Template {
	out := make([]domain.Template, 0, 2*len(domain.TripTypes))
	for _, scope := range []domain.Scope{domain.ScopeDomestic, domain.ScopeInternational} {
		for _, tt := range domain.TripTypes {
			names := ItemNames(scope, tt)
			items := make([]domain.ChecklistItem, len(names))
			for i, n := range names {
				items[i] = domain.NewChecklistItem(n)
			}
			out = append(out, domain.Template{
				ID:             uuid.New(),
				Name:           domain.DefaultTemplateName(scope, tt),
				TripType:       tt,
				ChecklistItems: items,
				CreationDate:   createdAt,
			})
		}
	}
	return out
}
