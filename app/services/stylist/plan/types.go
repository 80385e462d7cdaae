package plan

// Gender preference values accepted by the stylist pipeline.
const (
	GenderMale   = "male"
	GenderFemale = "female"
	GenderAny    = "any"
)

// ValidGender reports whether g is one of the accepted preference values.
func ValidGender(g string) bool {
	return g == GenderMale || g == GenderFemale || g == GenderAny
}

// Garment slots in their fixed presentation order.
const (
	SlotTop         = "top"
	SlotOuter       = "outer"
	SlotBottom      = "bottom"
	SlotShoes       = "shoes"
	SlotAccessories = "accessories"
)

// Intent types produced by the extractor. TypeError is the third TravelPlan
// variant, used when a pipeline stage fails terminally.
const (
	IntentTravel = "travel"
	IntentEvent  = "event"
	TypeError    = "error"
)

// Intent is the structured reading of one user message. Exactly one of the
// travel fields (Destination, Date) or Event is populated, selected by Type.
type Intent struct {
	Type        string `json:"type"`
	Destination string `json:"destination,omitempty"`
	Date        string `json:"date,omitempty"`
	Event       string `json:"event,omitempty"`
}

// WeatherContext is the forecast for a travel destination. Warning is empty
// unless the provider flagged an advisory condition.
type WeatherContext struct {
	Destination      string `json:"destination"`
	Date             string `json:"date"`
	Conditions       string `json:"conditions"`
	TemperatureRange string `json:"temperature_range"`
	Warning          string `json:"warning,omitempty"`
}

// OutfitDescription maps garment slots to abstract description text. Absent
// slots are empty strings (nil slice for accessories); they contribute no
// products downstream.
type OutfitDescription struct {
	Top         string   `json:"top,omitempty"`
	Outer       string   `json:"outer,omitempty"`
	Bottom      string   `json:"bottom,omitempty"`
	Shoes       string   `json:"shoes,omitempty"`
	Accessories []string `json:"accessories,omitempty"`
}

// Product is one shoppable item resolved from an image search result. A
// product is only valid when both Link and Image are non-empty.
type Product struct {
	Id          string `json:"id"`
	Title       string `json:"title"`
	Link        string `json:"link"`
	Image       string `json:"image"`
	Price       string `json:"price"`
	Store       string `json:"store"`
	Category    string `json:"category"`
	Description string `json:"description"`
}

// Outfit is a generated description plus the products resolved for it, in
// slot order: top, outer, bottom, shoes, then accessories in source order.
type Outfit struct {
	Name        string            `json:"name,omitempty"`
	Description OutfitDescription `json:"description"`
	Products    []Product         `json:"products"`
}

// TravelPlan statuses.
const (
	StatusSuccess = "success"
	StatusWarning = "warning"
	StatusError   = "error"
)

// TravelPlan is the final result of one submission. Type selects which
// fields are meaningful: travel populates Destination/Date/Weather/Outfits,
// event populates Event/Outfits, error populates Error only.
type TravelPlan struct {
	Id          string          `json:"id"`
	Type        string          `json:"type"`
	Destination string          `json:"destination,omitempty"`
	Date        string          `json:"date,omitempty"`
	Weather     *WeatherContext `json:"weather,omitempty"`
	Event       string          `json:"event,omitempty"`
	Outfits     []Outfit        `json:"outfits,omitempty"`
	Status      string          `json:"status"`
	Warning     string          `json:"warning,omitempty"`
	Error       string          `json:"error,omitempty"`
}
