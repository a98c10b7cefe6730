package planner

import "github.com/ersi-ai/ersi-backend/internal/models"

// Allocation is one category's share of the total budget.
type Allocation struct {
	Category string
	Percent  float64
}

// Regional allocation profiles. Each profile lists ten categories in display
// order and sums to exactly 100.
var (
	lebanonAllocations = []Allocation{
		{"venue", 28}, {"catering", 22}, {"decor", 12}, {"florals", 8},
		{"media", 8}, {"entertainment", 8}, {"beauty", 5}, {"attire", 5},
		{"stationery", 2}, {"misc", 2},
	}
	gccAllocations = []Allocation{
		{"venue", 30}, {"catering", 20}, {"decor", 12}, {"florals", 8},
		{"media", 8}, {"entertainment", 10}, {"beauty", 4}, {"attire", 4},
		{"stationery", 2}, {"misc", 2},
	}
	egyptAllocations = []Allocation{
		{"venue", 27}, {"catering", 25}, {"decor", 10}, {"florals", 6},
		{"media", 8}, {"entertainment", 8}, {"beauty", 5}, {"attire", 5},
		{"stationery", 3}, {"misc", 3},
	}
)

// AllocationsFor returns the budget allocation profile for a region.
// Unrecognized regions get the Lebanon profile; the explicit default keeps
// plan generation working for values that slipped past validation.
func AllocationsFor(region string) []Allocation {
	switch region {
	case models.RegionGCC:
		return gccAllocations
	case models.RegionEgypt:
		return egyptAllocations
	default:
		return lebanonAllocations
	}
}
