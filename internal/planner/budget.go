package planner

import "github.com/ersi-ai/ersi-backend/internal/models"

// BuildBudget breaks a total budget into category amounts using the
// region's allocation profile. The total is stated in currency; non-USD
// budgets are converted to USD before the percentages are applied and each
// amount is converted back for display. The round-trip introduces small
// rounding drift relative to allocating in the original currency directly;
// that is the documented behavior, not an accident of this implementation.
func BuildBudget(conv *Converter, total float64, currency, region string) []models.BudgetItem {
	if currency == "" {
		currency = CurrencyUSD
	}

	totalUSD := total
	if currency != CurrencyUSD {
		totalUSD = conv.ToUSD(total, currency)
	}

	allocations := AllocationsFor(region)
	items := make([]models.BudgetItem, 0, len(allocations))
	for _, alloc := range allocations {
		amountUSD := totalUSD * alloc.Percent / 100.0
		items = append(items, models.BudgetItem{
			Category:          alloc.Category,
			AllocationPercent: alloc.Percent,
			Amount:            conv.FromUSD(amountUSD, currency),
		})
	}
	return items
}
