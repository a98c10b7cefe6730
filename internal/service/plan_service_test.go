package service

import (
	"context"
	"math"
	"testing"

	"github.com/ersi-ai/ersi-backend/internal/models"
	"github.com/ersi-ai/ersi-backend/internal/planner"
)

func TestComposePlan(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	conv := planner.NewConverter(planner.DefaultRates())
	vendorSvc := NewVendorService(store, conv)
	planSvc := NewPlanService(store, conv, vendorSvc)

	if _, _, err := vendorSvc.SeedVendors(ctx); err != nil {
		t.Fatalf("SeedVendors failed: %v", err)
	}

	pref := &models.UserPreference{
		FullName:   "Rana & Karim",
		Email:      "rana@example.com",
		Region:     models.RegionLebanon,
		GuestCount: 250,
		Budget:     50000,
		Currency:   "USD",
	}

	result, err := planSvc.ComposePlan(ctx, pref)
	if err != nil {
		t.Fatalf("ComposePlan failed: %v", err)
	}

	t.Run("preference persisted first", func(t *testing.T) {
		if pref.ID == "" {
			t.Error("expected preference ID to be assigned")
		}
		if result.Plan.PreferenceID != pref.ID {
			t.Errorf("plan preference_id = %q, want %q", result.Plan.PreferenceID, pref.ID)
		}
	})

	t.Run("preference echoed", func(t *testing.T) {
		if result.Plan.Region != models.RegionLebanon {
			t.Errorf("region = %q, want lebanon", result.Plan.Region)
		}
		if result.Plan.Currency != "USD" {
			t.Errorf("currency = %q, want USD", result.Plan.Currency)
		}
		if result.Plan.GuestCount != 250 {
			t.Errorf("guest_count = %d, want 250", result.Plan.GuestCount)
		}
		if result.Plan.TotalBudget != 50000 {
			t.Errorf("total_budget = %v, want 50000", result.Plan.TotalBudget)
		}
	})

	t.Run("checklist has 8 items for 250 guests", func(t *testing.T) {
		if len(result.Plan.Timeline) != 8 {
			t.Errorf("timeline has %d items, want 8", len(result.Plan.Timeline))
		}
	})

	t.Run("budget covers the whole amount", func(t *testing.T) {
		if len(result.Budget) != 10 {
			t.Fatalf("budget has %d items, want 10", len(result.Budget))
		}
		var pctSum, amountSum float64
		for _, item := range result.Budget {
			pctSum += item.AllocationPercent
			amountSum += item.Amount
		}
		if pctSum != 100 {
			t.Errorf("percentages sum to %v, want 100", pctSum)
		}
		if math.Abs(amountSum-50000) > 0.01 {
			t.Errorf("amounts sum to %v, want 50000 within rounding", amountSum)
		}
	})

	t.Run("vendor map keyed by the fixed categories", func(t *testing.T) {
		if len(result.Vendors) != len(PlanCategories) {
			t.Errorf("vendor map has %d keys, want %d", len(result.Vendors), len(PlanCategories))
		}
		for _, cat := range PlanCategories {
			if _, ok := result.Vendors[cat]; !ok {
				t.Errorf("missing vendor key %q", cat)
			}
		}
	})

	t.Run("rates included for display", func(t *testing.T) {
		if result.Rates["USD"] != 1.0 {
			t.Errorf("rates missing USD base, got %v", result.Rates)
		}
		if len(result.Rates) != len(planner.Currencies) {
			t.Errorf("rates has %d entries, want %d", len(result.Rates), len(planner.Currencies))
		}
	})

	t.Run("large wedding gets the extra checklist item", func(t *testing.T) {
		big := &models.UserPreference{
			FullName:   "Huda & Omar",
			Email:      "huda@example.com",
			Region:     models.RegionGCC,
			GuestCount: 600,
			Budget:     200000,
			Currency:   "AED",
		}
		result, err := planSvc.ComposePlan(ctx, big)
		if err != nil {
			t.Fatalf("ComposePlan failed: %v", err)
		}
		if len(result.Plan.Timeline) != 9 {
			t.Errorf("timeline has %d items, want 9", len(result.Plan.Timeline))
		}
	})
}

func TestComposePlanFailsWhenStoreIsDown(t *testing.T) {
	store := newTestStore(t)
	conv := planner.NewConverter(planner.DefaultRates())
	vendorSvc := NewVendorService(store, conv)
	planSvc := NewPlanService(store, conv, vendorSvc)

	// A closed store makes the very first step fail; no partial plan may
	// come back.
	store.Close()

	pref := &models.UserPreference{
		FullName:   "Test",
		Email:      "t@example.com",
		Region:     models.RegionLebanon,
		GuestCount: 100,
		Budget:     10000,
	}
	result, err := planSvc.ComposePlan(context.Background(), pref)
	if err == nil {
		t.Fatal("expected error from closed store")
	}
	if result != nil {
		t.Errorf("expected no partial plan, got %+v", result)
	}
}
