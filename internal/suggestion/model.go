// README: Suggestion document schema shared by the normalizer and every renderer.
package suggestion

// Document is the canonical recommendation schema. Every field is always present;
// sequences may be empty but never nil in a validated document.
type Document struct {
	Accommodations     []Accommodation `json:"accommodations" validate:"required"`
	Restaurants        []Restaurant    `json:"restaurants" validate:"required"`
	Activities         []Activity      `json:"activities" validate:"required"`
	Itinerary          []DayPlan       `json:"itinerary" validate:"required,dive"`
	TotalEstimatedCost string          `json:"totalEstimatedCost" validate:"required"`
	BestTimeToVisit    string          `json:"bestTimeToVisit" validate:"required"`
	PackingList        []string        `json:"packingList" validate:"required"`
	TravelTips         []string        `json:"travelTips" validate:"required"`
}

type Accommodation struct {
	Name        string  `json:"name"`
	Type        string  `json:"type"`
	PriceRange  string  `json:"priceRange"`
	Rating      float64 `json:"rating"`
	Description string  `json:"description"`
	Location    string  `json:"location"`
}

type Restaurant struct {
	Name        string  `json:"name"`
	Cuisine     string  `json:"cuisine"`
	PriceRange  string  `json:"priceRange"`
	Rating      float64 `json:"rating"`
	Description string  `json:"description"`
	Location    string  `json:"location"`
}

type Activity struct {
	Name        string  `json:"name"`
	Type        string  `json:"type"`
	Duration    string  `json:"duration"`
	Cost        string  `json:"cost"`
	Rating      float64 `json:"rating,omitempty"`
	Description string  `json:"description"`
	Location    string  `json:"location"`
}

// DayPlan is one itinerary day. Day numbers must be positive but are otherwise
// taken as given: they are not checked for gaps or against the requested duration.
type DayPlan struct {
	Day           int      `json:"day" validate:"gte=1"`
	Location      string   `json:"location"`
	Activities    []string `json:"activities"`
	Accommodation string   `json:"accommodation"`
	Meals         []string `json:"meals"`
	Notes         string   `json:"notes"`
}

// Source tells consumers whether a document came from the model or from the fallback.
type Source string

const (
	SourceGenuine  Source = "genuine"
	SourceFallback Source = "fallback"
)

// Result is the tagged outcome of Synthesize.
type Result struct {
	Source   Source   `json:"source"`
	Document Document `json:"suggestion"`
}

// IsFallback reports whether the document is the fixed placeholder.
func (r Result) IsFallback() bool { return r.Source == SourceFallback }
