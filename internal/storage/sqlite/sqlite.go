// Package sqlite provides a SQLite-backed implementation of the storage.Store interface.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // Pure Go SQLite driver (no CGO)

	"github.com/ersi-ai/ersi-backend/internal/models"
	"github.com/ersi-ai/ersi-backend/internal/storage"
)

// Ensure SQLiteStore implements storage.Store
var _ storage.Store = (*SQLiteStore)(nil)

// SQLiteStore implements storage.Store using SQLite.
type SQLiteStore struct {
	db *sql.DB
}

// New creates a new SQLiteStore with the given database path.
// It creates the parent directories and runs migrations automatically.
func New(dbPath string) (*SQLiteStore, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to enable foreign keys: %w", err)
	}

	if err := runMigrations(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return &SQLiteStore{db: db}, nil
}

// Close closes the database connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// Ping verifies the database is reachable.
func (s *SQLiteStore) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// CreatePreference persists a new preference. The ID and CreatedAt fields
// are populated here; preferences are never updated afterwards.
func (s *SQLiteStore) CreatePreference(ctx context.Context, pref *models.UserPreference) error {
	if pref.ID == "" {
		pref.ID = uuid.New().String()
	}
	if pref.CreatedAt == 0 {
		pref.CreatedAt = time.Now().Unix()
	}
	if pref.Currency == "" {
		pref.Currency = "USD"
	}

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO preferences
		 (id, full_name, email, phone, region, city, wedding_date, guest_count, style, budget, currency, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		pref.ID, pref.FullName, pref.Email, pref.Phone, pref.Region, pref.City,
		pref.WeddingDate, pref.GuestCount, pref.Style, pref.Budget, pref.Currency, pref.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert preference: %w", err)
	}
	return nil
}

// CreateInquiry persists a new inquiry.
func (s *SQLiteStore) CreateInquiry(ctx context.Context, inq *models.Inquiry) error {
	if inq.ID == "" {
		inq.ID = uuid.New().String()
	}
	if inq.CreatedAt == 0 {
		inq.CreatedAt = time.Now().Unix()
	}

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO inquiries (id, name, email, phone, vendor_id, message, region, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		inq.ID, inq.Name, inq.Email, inq.Phone, inq.VendorID, inq.Message, inq.Region, inq.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert inquiry: %w", err)
	}
	return nil
}

// CreateVendor persists a vendor listing with its languages and images.
func (s *SQLiteStore) CreateVendor(ctx context.Context, vendor *models.Vendor) error {
	if vendor.ID == "" {
		vendor.ID = uuid.New().String()
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var avgPrice sql.NullFloat64
	if vendor.AveragePriceUSD != nil {
		avgPrice = sql.NullFloat64{Float64: *vendor.AveragePriceUSD, Valid: true}
	}
	var capacity sql.NullInt64
	if vendor.Capacity != nil {
		capacity = sql.NullInt64{Int64: int64(*vendor.Capacity), Valid: true}
	}

	_, err = tx.ExecContext(ctx,
		`INSERT INTO vendors
		 (id, name, category, region, city, description, price_tier, average_price_usd, capacity,
		  contact_phone, contact_email, website, instagram, featured)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		vendor.ID, vendor.Name, vendor.Category, vendor.Region, vendor.City, vendor.Description,
		vendor.PriceTier, avgPrice, capacity,
		vendor.ContactPhone, vendor.ContactEmail, vendor.Website, vendor.Instagram, vendor.Featured,
	)
	if err != nil {
		return fmt.Errorf("failed to insert vendor: %w", err)
	}

	for _, lang := range vendor.Languages {
		if _, err := tx.ExecContext(ctx,
			"INSERT INTO vendor_languages (vendor_id, language) VALUES (?, ?)",
			vendor.ID, lang,
		); err != nil {
			return fmt.Errorf("failed to insert vendor language: %w", err)
		}
	}

	for i, url := range vendor.Images {
		if _, err := tx.ExecContext(ctx,
			"INSERT INTO vendor_images (vendor_id, position, url) VALUES (?, ?, ?)",
			vendor.ID, i, url,
		); err != nil {
			return fmt.Errorf("failed to insert vendor image: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// FindVendors returns up to limit vendors matching the filter, in insertion
// order. No relevance ranking is applied.
func (s *SQLiteStore) FindVendors(ctx context.Context, filter storage.VendorFilter, limit int) ([]models.Vendor, error) {
	query := `SELECT id, name, category, region, city, description, price_tier,
	                 average_price_usd, capacity, contact_phone, contact_email,
	                 website, instagram, featured
	          FROM vendors`

	var conds []string
	var args []any
	if filter.Region != "" {
		conds = append(conds, "region = ?")
		args = append(args, filter.Region)
	}
	if filter.Category != "" {
		conds = append(conds, "category = ?")
		args = append(args, filter.Category)
	}
	if filter.City != "" {
		conds = append(conds, "city = ?")
		args = append(args, filter.City)
	}
	if filter.PriceTier != "" {
		conds = append(conds, "price_tier = ?")
		args = append(args, filter.PriceTier)
	}
	if filter.Featured != nil {
		conds = append(conds, "featured = ?")
		args = append(args, *filter.Featured)
	}
	if filter.MinCapacity > 0 {
		conds = append(conds, "capacity >= ?")
		args = append(args, filter.MinCapacity)
	}
	if filter.Query != "" {
		conds = append(conds, "(name LIKE ? COLLATE NOCASE OR description LIKE ? COLLATE NOCASE)")
		pattern := "%" + filter.Query + "%"
		args = append(args, pattern, pattern)
	}
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}
	query += " ORDER BY rowid"
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query vendors: %w", err)
	}
	defer rows.Close()

	vendors := []models.Vendor{}
	for rows.Next() {
		var v models.Vendor
		var avgPrice sql.NullFloat64
		var capacity sql.NullInt64
		if err := rows.Scan(
			&v.ID, &v.Name, &v.Category, &v.Region, &v.City, &v.Description, &v.PriceTier,
			&avgPrice, &capacity, &v.ContactPhone, &v.ContactEmail,
			&v.Website, &v.Instagram, &v.Featured,
		); err != nil {
			return nil, fmt.Errorf("failed to scan vendor: %w", err)
		}
		if avgPrice.Valid {
			price := avgPrice.Float64
			v.AveragePriceUSD = &price
		}
		if capacity.Valid {
			c := int(capacity.Int64)
			v.Capacity = &c
		}
		vendors = append(vendors, v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate vendors: %w", err)
	}

	for i := range vendors {
		if err := s.loadVendorLists(ctx, &vendors[i]); err != nil {
			return nil, err
		}
	}

	return vendors, nil
}

// loadVendorLists fills in the languages and images child rows.
func (s *SQLiteStore) loadVendorLists(ctx context.Context, vendor *models.Vendor) error {
	langRows, err := s.db.QueryContext(ctx,
		"SELECT language FROM vendor_languages WHERE vendor_id = ? ORDER BY language",
		vendor.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to get vendor languages: %w", err)
	}
	defer langRows.Close()

	for langRows.Next() {
		var lang string
		if err := langRows.Scan(&lang); err != nil {
			return fmt.Errorf("failed to scan vendor language: %w", err)
		}
		vendor.Languages = append(vendor.Languages, lang)
	}
	if err := langRows.Err(); err != nil {
		return fmt.Errorf("failed to iterate vendor languages: %w", err)
	}

	imgRows, err := s.db.QueryContext(ctx,
		"SELECT url FROM vendor_images WHERE vendor_id = ? ORDER BY position",
		vendor.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to get vendor images: %w", err)
	}
	defer imgRows.Close()

	for imgRows.Next() {
		var url string
		if err := imgRows.Scan(&url); err != nil {
			return fmt.Errorf("failed to scan vendor image: %w", err)
		}
		vendor.Images = append(vendor.Images, url)
	}
	return imgRows.Err()
}

// CountVendors returns the total number of vendor listings.
func (s *SQLiteStore) CountVendors(ctx context.Context) (int, error) {
	var count int
	if err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM vendors").Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count vendors: %w", err)
	}
	return count, nil
}

// VendorExists reports whether a vendor with this name exists in the region.
func (s *SQLiteStore) VendorExists(ctx context.Context, name, region string) (bool, error) {
	var count int
	err := s.db.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM vendors WHERE name = ? AND region = ?",
		name, region,
	).Scan(&count)
	if err != nil {
		return false, fmt.Errorf("failed to check vendor existence: %w", err)
	}
	return count > 0, nil
}

// CreateUser persists a new user account.
func (s *SQLiteStore) CreateUser(ctx context.Context, user *models.User) error {
	if user.ID == "" {
		user.ID = uuid.New().String()
	}
	if user.CreatedAt == 0 {
		user.CreatedAt = time.Now().Unix()
	}

	_, err := s.db.ExecContext(ctx,
		"INSERT INTO users (id, email, display_name, password_hash, created_at) VALUES (?, ?, ?, ?, ?)",
		user.ID, user.Email, user.DisplayName, user.PasswordHash, user.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert user: %w", err)
	}
	return nil
}

// GetUserByEmail retrieves a user by login email.
func (s *SQLiteStore) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	return s.getUser(ctx, "email = ?", email)
}

// GetUserByID retrieves a user by ID.
func (s *SQLiteStore) GetUserByID(ctx context.Context, id string) (*models.User, error) {
	return s.getUser(ctx, "id = ?", id)
}

func (s *SQLiteStore) getUser(ctx context.Context, cond string, arg any) (*models.User, error) {
	user := &models.User{}
	err := s.db.QueryRowContext(ctx,
		"SELECT id, email, display_name, password_hash, created_at FROM users WHERE "+cond,
		arg,
	).Scan(&user.ID, &user.Email, &user.DisplayName, &user.PasswordHash, &user.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("user not found")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return user, nil
}
