// Package storage provides abstractions for persistent data storage.
package storage

import (
	"context"

	"github.com/ersi-ai/ersi-backend/internal/models"
)

// VendorFilter narrows a vendor query. Zero-valued fields are ignored, so
// the empty filter matches every vendor.
type VendorFilter struct {
	Region    string
	Category  string
	City      string
	PriceTier string

	// Featured filters on the featured flag when non-nil.
	Featured *bool

	// MinCapacity keeps vendors whose capacity is at least this value.
	MinCapacity int

	// Query is a case-insensitive substring match over name and
	// description.
	Query string
}

// Store defines the interface for the planner's persistence operations.
// The abstraction keeps the service layer independent of the storage
// backend; all concurrency control is delegated to the implementation.
type Store interface {
	// CreatePreference persists a new preference and populates its ID and
	// CreatedAt. Preferences are append-only.
	CreatePreference(ctx context.Context, pref *models.UserPreference) error

	// CreateInquiry persists a new inquiry and populates its ID and
	// CreatedAt.
	CreateInquiry(ctx context.Context, inq *models.Inquiry) error

	// CreateVendor persists a new vendor listing and populates its ID.
	CreateVendor(ctx context.Context, vendor *models.Vendor) error

	// FindVendors returns up to limit vendors matching the filter, in
	// storage order. An empty result is not an error.
	FindVendors(ctx context.Context, filter VendorFilter, limit int) ([]models.Vendor, error)

	// CountVendors returns the total number of vendor listings.
	CountVendors(ctx context.Context) (int, error)

	// VendorExists reports whether a vendor with this name exists in the
	// region. Used to keep seeding idempotent.
	VendorExists(ctx context.Context, name, region string) (bool, error)

	// CreateUser persists a new user account.
	CreateUser(ctx context.Context, user *models.User) error

	// GetUserByEmail retrieves a user by login email.
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)

	// GetUserByID retrieves a user by ID.
	GetUserByID(ctx context.Context, id string) (*models.User, error)

	// Ping verifies the backing database is reachable.
	Ping(ctx context.Context) error

	// Close releases any resources held by the store.
	Close() error
}
