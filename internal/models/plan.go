package models

// ChecklistItem is one task on the generated wedding timeline. Items are
// computed per request and embedded in the plan response, never stored.
type ChecklistItem struct {
	// Label is the display text (Arabic in the stock checklist).
	Label string `json:"label"`

	// Category groups the task: planning, venue, entertainment, florals,
	// media, paperwork, logistics, ...
	Category string `json:"category"`

	// DueMonthsBefore is how many months before the wedding the task
	// should be done (0–24).
	DueMonthsBefore int `json:"due_months_before"`

	// Optional marks tasks that can be skipped.
	Optional bool `json:"optional"`
}

// BudgetItem is one category line of the budget breakdown.
type BudgetItem struct {
	Category string `json:"category"`

	// AllocationPercent is the regional share of the total budget.
	AllocationPercent float64 `json:"allocation_percent"`

	// Amount is the allocated amount in the preference's currency.
	Amount float64 `json:"amount"`
}

// Plan summarizes a generated wedding plan: the persisted preference it was
// built from plus the computed timeline.
type Plan struct {
	PreferenceID string          `json:"preference_id"`
	Region       string          `json:"region"`
	Currency     string          `json:"currency"`
	GuestCount   int             `json:"guest_count"`
	TotalBudget  float64         `json:"total_budget"`
	Timeline     []ChecklistItem `json:"timeline"`
	Categories   []string        `json:"categories"`
}

// PlanResult is the full plan-generation response.
type PlanResult struct {
	Plan    Plan                           `json:"plan"`
	Budget  []BudgetItem                   `json:"budget"`
	Vendors map[string][]RecommendedVendor `json:"vendors"`

	// Rates is the static currency table (units per USD) echoed for
	// client-side display.
	Rates map[string]float64 `json:"rates"`

	Message string `json:"message"`
}
