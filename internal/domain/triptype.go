package domain

// TripType classifies an adventure or template.
type TripType string

const (
	TripTypeCamping      TripType = "Camping"
	TripTypeSnowboarding TripType = "Snowboarding"
	TripTypeCity         TripType = "City"
	TripTypeBusiness     TripType = "Business"

	// TripTypeCustom marks user-created templates. Adventures never use it.
	TripTypeCustom TripType = "Custom"
)

// TripTypes lists the trip types an adventure can have, in display order.
var TripTypes = []TripType{TripTypeCamping, TripTypeSnowboarding, TripTypeCity, TripTypeBusiness}

// Valid reports whether t is one of the four adventure trip types.
func (t TripType) Valid() bool {
	for _, tt := range TripTypes {
		if t == tt {
			return true
		}
	}
	return false
}

// Scope prefixes default template names.
type Scope string

const (
	ScopeDomestic      Scope = "Domestic"
	ScopeInternational Scope = "International"
)

// ScopeOf maps the international flag to a Scope.
func ScopeOf(international bool) Scope {
	if international {
		return ScopeInternational
	}
	return ScopeDomestic
}

// DefaultTemplateName returns the built-in template name for a scope and
// trip type, e.g. "International Business".
func DefaultTemplateName(scope Scope, tripType TripType) string {
	return string(scope) + " " + string(tripType)
}

// DefaultTemplateNames returns the eight built-in template names: all
// domestic variants first, then all international ones.
func DefaultTemplateNames() []string {
	names := make([]string, 0, 2*len(TripTypes))
	for _, scope := range []Scope{ScopeDomestic, ScopeInternational} {
		for _, tt := range TripTypes {
			names = append(names, DefaultTemplateName(scope, tt))
		}
	}
	return names
}

// IsDefaultTemplateName reports whether name belongs to the built-in catalog.
func IsDefaultTemplateName(name string) bool {
	for _, n := range DefaultTemplateNames() {
		if n == name {
			return true
		}
	}
	return false
}

// OwnerKind names the kind of record that owns a checklist.
type OwnerKind string

const (
	OwnerAdventure OwnerKind = "adventures"
	OwnerTemplate  OwnerKind = "templates"
)
