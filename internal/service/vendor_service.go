package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/ersi-ai/ersi-backend/internal/models"
	"github.com/ersi-ai/ersi-backend/internal/planner"
	"github.com/ersi-ai/ersi-backend/internal/storage"
)

// DefaultRecommendationLimit caps vendors returned per category when the
// caller does not ask for a specific limit.
const DefaultRecommendationLimit = 3

// VendorService serves vendor listings and per-category recommendations.
type VendorService struct {
	store storage.Store
	conv  *planner.Converter
}

// NewVendorService creates a new VendorService.
func NewVendorService(store storage.Store, conv *planner.Converter) *VendorService {
	return &VendorService{store: store, conv: conv}
}

// List returns vendors matching the filter, up to limit.
func (s *VendorService) List(ctx context.Context, filter storage.VendorFilter, limit int) ([]models.Vendor, error) {
	if limit <= 0 {
		limit = 50
	}
	return s.store.FindVendors(ctx, filter, limit)
}

// Recommend looks up vendors per requested category. Each category is
// searched by region first; when the region has no vendors in a category
// the search falls back to the category alone, so results are best effort,
// not region-guaranteed. Every requested category is a key in the result,
// with an empty list when no vendors exist anywhere. Vendors with a known
// average price are annotated with that price in every supported currency.
func (s *VendorService) Recommend(ctx context.Context, region string, categories []string, limitPerCategory int) (map[string][]models.RecommendedVendor, error) {
	if limitPerCategory <= 0 {
		limitPerCategory = DefaultRecommendationLimit
	}

	recs := make(map[string][]models.RecommendedVendor, len(categories))
	for _, cat := range categories {
		vendors, err := s.store.FindVendors(ctx, storage.VendorFilter{Region: region, Category: cat}, limitPerCategory)
		if err != nil {
			return nil, fmt.Errorf("failed to look up %s vendors: %w", cat, err)
		}
		if len(vendors) == 0 {
			vendors, err = s.store.FindVendors(ctx, storage.VendorFilter{Category: cat}, limitPerCategory)
			if err != nil {
				return nil, fmt.Errorf("failed to look up %s vendors (fallback): %w", cat, err)
			}
			if len(vendors) > 0 {
				slog.Debug("Recommendation fell back to any region", "category", cat, "region", region)
			}
		}

		annotated := make([]models.RecommendedVendor, 0, len(vendors))
		for _, v := range vendors {
			rec := models.RecommendedVendor{Vendor: v}
			if v.AveragePriceUSD != nil {
				prices := make(map[string]float64, len(planner.Currencies))
				for _, code := range planner.Currencies {
					prices[code] = s.conv.FromUSD(*v.AveragePriceUSD, code)
				}
				rec.PriceInCurrencies = prices
			}
			annotated = append(annotated, rec)
		}
		recs[cat] = annotated
	}

	return recs, nil
}
