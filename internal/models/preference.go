package models

// Supported market regions.
const (
	RegionLebanon = "lebanon"
	RegionGCC     = "gcc"
	RegionEgypt   = "egypt"
)

// UserPreference holds a couple's planning preferences as submitted.
// Region, GuestCount, Budget and Currency drive plan generation; the
// remaining fields are contact and style information with no computational
// role. Preferences are immutable once created.
type UserPreference struct {
	// ID is the store-assigned identifier (UUID format).
	ID string `json:"id,omitempty"`

	// FullName is the couple's or user's full name.
	FullName string `json:"full_name" binding:"required"`

	// Email is the contact email.
	Email string `json:"email" binding:"required,email"`

	// Phone is an optional contact phone.
	Phone string `json:"phone,omitempty"`

	// Region is the primary market: lebanon, gcc or egypt.
	Region string `json:"region" binding:"required,oneof=lebanon gcc egypt"`

	// City is the preferred city, if any.
	City string `json:"city,omitempty"`

	// WeddingDate is the target date as submitted (ISO or free text).
	WeddingDate string `json:"wedding_date,omitempty"`

	// GuestCount is the expected number of guests.
	GuestCount int `json:"guest_count" binding:"required,gte=1,lte=2000"`

	// Style is the wedding style, e.g. classic, boho, luxury.
	Style string `json:"style,omitempty"`

	// Budget is the total budget stated in Currency.
	Budget float64 `json:"budget" binding:"gte=0"`

	// Currency is the budget currency code. Defaults to USD when empty.
	Currency string `json:"currency,omitempty" binding:"omitempty,oneof=USD LBP AED SAR EGP"`

	// CreatedAt is the Unix timestamp when the preference was persisted.
	CreatedAt int64 `json:"created_at,omitempty"`
}

// Inquiry is a contact request from a couple, optionally tied to a vendor.
type Inquiry struct {
	// ID is the store-assigned identifier (UUID format).
	ID string `json:"id,omitempty"`

	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Phone    string `json:"phone,omitempty"`
	VendorID string `json:"vendor_id,omitempty"`
	Message  string `json:"message" binding:"required"`
	Region   string `json:"region,omitempty" binding:"omitempty,oneof=lebanon gcc egypt"`

	// CreatedAt is the Unix timestamp when the inquiry was persisted.
	CreatedAt int64 `json:"created_at,omitempty"`
}
