package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/ersi-ai/ersi-backend/internal/models"
)

func floatPtr(v float64) *float64 { return &v }
func intPtr(v int) *int           { return &v }

// sampleVendors is the stock vendor catalog used to bootstrap a fresh
// deployment.
var sampleVendors = []models.Vendor{
	{
		Name: "Phoenicia Beirut", Category: "venue", Region: models.RegionLebanon, City: "Beirut",
		Description: "Iconic luxury hotel venue with sea views",
		Languages:   []string{"Arabic", "English", "French"},
		PriceTier:   "$$$$", AveragePriceUSD: floatPtr(50000), Capacity: intPtr(600),
		Images:    []string{"https://images.unsplash.com/photo-1522335789203-aabd1fc54bc9?q=80&w=1200"},
		Instagram: "@phoeniciabeirut", Featured: true,
	},
	{
		Name: "Byblos Sur Mer", Category: "venue", Region: models.RegionLebanon, City: "Byblos",
		Description: "Historic seaside venue in Jbeil",
		Languages:   []string{"Arabic", "English", "French"},
		PriceTier:   "$$$", AveragePriceUSD: floatPtr(25000), Capacity: intPtr(300),
		Images:   []string{"https://images.unsplash.com/photo-1496412705862-e0088f16f791?q=80&w=1200"},
		Featured: true,
	},
	{
		Name: "Burj Al Arab Events", Category: "venue", Region: models.RegionGCC, City: "Dubai",
		Description: "Ultra-luxury Dubai wedding experiences",
		Languages:   []string{"Arabic", "English"},
		PriceTier:   "$$$$", AveragePriceUSD: floatPtr(150000), Capacity: intPtr(300),
		Images:   []string{"https://images.unsplash.com/photo-1528909514045-2fa4ac7a08ba?q=80&w=1200"},
		Featured: true,
	},
	{
		Name: "Four Seasons Cairo", Category: "venue", Region: models.RegionEgypt, City: "Cairo",
		Description: "Luxury Nile-side celebrations",
		Languages:   []string{"Arabic", "English"},
		PriceTier:   "$$$", AveragePriceUSD: floatPtr(40000), Capacity: intPtr(500),
		Images:   []string{"https://images.unsplash.com/photo-1528715471579-d1bcf0ba5e83?q=80&w=1200"},
		Featured: true,
	},
	{
		Name: "Maison de Fleurs", Category: "florals", Region: models.RegionLebanon, City: "Beirut",
		Description: "Lavish floral design studio",
		Languages:   []string{"Arabic", "English", "French"},
		PriceTier:   "$$$", AveragePriceUSD: floatPtr(8000),
		Images:   []string{"https://images.unsplash.com/photo-1464965911861-746a04b4bca6?q=80&w=1200"},
		Featured: true,
	},
	{
		Name: "Zaffe Arabia", Category: "zaffe", Region: models.RegionGCC, City: "Riyadh",
		Description: "Traditional zaffe troupes across GCC",
		Languages:   []string{"Arabic"},
		PriceTier:   "$$", AveragePriceUSD: floatPtr(3000),
		Images:   []string{"https://images.unsplash.com/photo-1558981403-c5f9899a28bc?q=80&w=1200"},
		Featured: true,
	},
	{
		Name: "Nile Moments Photography", Category: "photography", Region: models.RegionEgypt, City: "Cairo",
		Description: "Artful wedding photography in Egypt",
		Languages:   []string{"Arabic", "English"},
		PriceTier:   "$$", AveragePriceUSD: floatPtr(3500),
		Images:   []string{"https://images.unsplash.com/photo-1519741497674-611481863552?q=80&w=1200"},
		Featured: true,
	},
}

// SeedVendors inserts the stock vendor catalog, skipping vendors that
// already exist (matched by name and region), so it is safe to call
// repeatedly. Returns the number of vendors created and the total count.
func (s *VendorService) SeedVendors(ctx context.Context) (created, total int, err error) {
	for i := range sampleVendors {
		vendor := sampleVendors[i]

		exists, err := s.store.VendorExists(ctx, vendor.Name, vendor.Region)
		if err != nil {
			return 0, 0, fmt.Errorf("failed to check existing vendor: %w", err)
		}
		if exists {
			continue
		}

		// Insert a copy so repeated seeding never reuses IDs.
		vendor.ID = ""
		if err := s.store.CreateVendor(ctx, &vendor); err != nil {
			return 0, 0, fmt.Errorf("failed to seed vendor %q: %w", vendor.Name, err)
		}
		created++
	}

	total, err = s.store.CountVendors(ctx)
	if err != nil {
		return 0, 0, fmt.Errorf("failed to count vendors: %w", err)
	}

	slog.Info("Vendor seeding complete", "created", created, "total", total)
	return created, total, nil
}
