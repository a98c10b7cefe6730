package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/ersi-ai/ersi-backend/internal/models"
	"github.com/ersi-ai/ersi-backend/internal/planner"
	"github.com/ersi-ai/ersi-backend/internal/storage"
)

// PlanCategories is the fixed set of vendor categories every plan
// recommends, independent of the preference.
var PlanCategories = []string{"venue", "photography", "florals", "zaffe", "dj"}

const planMessage = "Plan generated using regional best-practice heuristics"

// PlanService composes wedding plans from a submitted preference: it
// persists the preference, then derives the checklist, budget breakdown and
// vendor recommendations from the static regional heuristics.
type PlanService struct {
	store   storage.Store
	conv    *planner.Converter
	vendors *VendorService
}

// NewPlanService creates a new PlanService.
func NewPlanService(store storage.Store, conv *planner.Converter, vendors *VendorService) *PlanService {
	return &PlanService{store: store, conv: conv, vendors: vendors}
}

// SavePreference validates nothing (the transport layer already did) and
// persists the preference, populating its ID.
func (s *PlanService) SavePreference(ctx context.Context, pref *models.UserPreference) error {
	if err := s.store.CreatePreference(ctx, pref); err != nil {
		return fmt.Errorf("failed to save preference: %w", err)
	}
	slog.Info("Preference saved", "preference_id", pref.ID, "region", pref.Region)
	return nil
}

// ComposePlan generates a plan for the given preference.
//
// Steps run in order with no rollback: the preference is persisted first
// (a store failure here aborts the whole operation and no plan is
// returned), then the checklist, budget breakdown and vendor
// recommendations are computed. A store failure during recommendation also
// fails the whole request; no partial plan is ever returned.
func (s *PlanService) ComposePlan(ctx context.Context, pref *models.UserPreference) (*models.PlanResult, error) {
	if err := s.store.CreatePreference(ctx, pref); err != nil {
		return nil, fmt.Errorf("failed to persist preference: %w", err)
	}

	checklist := planner.ChecklistFor(pref.GuestCount)
	budget := planner.BuildBudget(s.conv, pref.Budget, pref.Currency, pref.Region)

	vendors, err := s.vendors.Recommend(ctx, pref.Region, PlanCategories, DefaultRecommendationLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to recommend vendors: %w", err)
	}

	slog.Info("Plan composed",
		"preference_id", pref.ID,
		"region", pref.Region,
		"guest_count", pref.GuestCount,
		"checklist_items", len(checklist),
		"budget_items", len(budget),
	)

	return &models.PlanResult{
		Plan: models.Plan{
			PreferenceID: pref.ID,
			Region:       pref.Region,
			Currency:     pref.Currency,
			GuestCount:   pref.GuestCount,
			TotalBudget:  pref.Budget,
			Timeline:     checklist,
			Categories:   PlanCategories,
		},
		Budget:  budget,
		Vendors: vendors,
		Rates:   s.conv.Rates(),
		Message: planMessage,
	}, nil
}

// SaveInquiry persists a vendor inquiry, populating its ID.
func (s *PlanService) SaveInquiry(ctx context.Context, inq *models.Inquiry) error {
	if err := s.store.CreateInquiry(ctx, inq); err != nil {
		return fmt.Errorf("failed to save inquiry: %w", err)
	}
	slog.Info("Inquiry saved", "inquiry_id", inq.ID, "vendor_id", inq.VendorID)
	return nil
}
