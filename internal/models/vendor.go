package models

// VendorCategories lists the recognized vendor service types.
var VendorCategories = []string{
	"venue", "planner", "photography", "videography", "catering",
	"music", "zaffe", "makeup", "hair", "florals", "decor",
	"lighting", "dj", "band", "cake", "stationery", "transport",
}

// Vendor is a service provider listing. Vendors are read-only reference
// data for recommendation: seeded once, queried many times.
type Vendor struct {
	// ID is the store-assigned identifier (UUID format).
	ID string `json:"id,omitempty"`

	Name     string `json:"name"`
	Category string `json:"category"`
	Region   string `json:"region"`
	City     string `json:"city,omitempty"`

	Description string   `json:"description,omitempty"`
	Languages   []string `json:"languages,omitempty"`

	// PriceTier is a display tier from "$" to "$$$$".
	PriceTier string `json:"price_tier,omitempty"`

	// AveragePriceUSD is the typical engagement price in USD, when known.
	AveragePriceUSD *float64 `json:"average_price_usd,omitempty"`

	// Capacity is the maximum guest capacity, where it applies (venues).
	Capacity *int `json:"capacity,omitempty"`

	Images       []string `json:"images,omitempty"`
	ContactPhone string   `json:"contact_phone,omitempty"`
	ContactEmail string   `json:"contact_email,omitempty"`
	Website      string   `json:"website,omitempty"`
	Instagram    string   `json:"instagram,omitempty"`

	// Featured marks vendors highlighted on the storefront.
	Featured bool `json:"featured"`
}

// RecommendedVendor is a vendor as returned by the recommender: the listing
// plus, when the vendor has a known average price, that price converted into
// every supported currency for client-side display.
type RecommendedVendor struct {
	Vendor

	// PriceInCurrencies maps currency code to the vendor's average price
	// converted from USD. Nil when the vendor has no known price.
	PriceInCurrencies map[string]float64 `json:"price_in_currencies,omitempty"`
}
