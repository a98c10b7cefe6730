// Package assistant generates rule-based planning tips. Each request field
// that is present and matches a rule appends one fixed tip; the rules are
// purely additive, evaluated in a fixed order, and never consult storage.
package assistant

import (
	"strings"

	"github.com/ersi-ai/ersi-backend/internal/models"
	"github.com/ersi-ai/ersi-backend/internal/planner"
)

// Budget thresholds in USD-equivalent for the first-match budget tip.
const (
	limitedBudgetUSD = 30000
	midBudgetUSD     = 80000
)

// Guest-count thresholds for the size tips.
const (
	largeGuestCount    = 300
	intimateGuestCount = 100
)

// FallbackReply is returned when no request field matched any rule.
const FallbackReply = "Tell me your region, budget, style, or guest count and I can share tailored planning tips."

// Request carries the assistant inputs. All fields are optional; Message is
// accepted for the conversational contract but not inspected by any rule.
type Request struct {
	Message    string   `json:"message,omitempty"`
	Region     string   `json:"region,omitempty" binding:"omitempty,oneof=lebanon gcc egypt"`
	Budget     *float64 `json:"budget,omitempty" binding:"omitempty,gte=0"`
	Currency   string   `json:"currency,omitempty" binding:"omitempty,oneof=USD LBP AED SAR EGP"`
	Style      string   `json:"style,omitempty"`
	GuestCount *int     `json:"guest_count,omitempty" binding:"omitempty,gte=1,lte=2000"`
}

var regionTips = map[string]string{
	models.RegionLebanon: "In Lebanon, summer venues in Beirut and Jbeil book out 10-12 months ahead, so lock the venue before anything else.",
	models.RegionGCC:     "For GCC weddings, plan separate men's and women's halls early; the hall layout drives catering and entertainment choices.",
	models.RegionEgypt:   "In Egypt, catering takes the largest share of the budget, so negotiate per-plate pricing before signing the venue.",
}

var styleTips = map[string]string{
	"classic": "A classic wedding shines with a live band and formal stationery; allocate extra to entertainment and paperwork.",
	"boho":    "For a boho wedding, look at outdoor and garden venues and spend more of the florals budget on loose, wild arrangements.",
	"luxury":  "A luxury wedding deserves a full planner and featured venues; ask vendors about their premium packages first.",
}

// Advisor evaluates the tip rules. Budget thresholds compare USD-equivalent
// amounts, so it shares the plan composer's converter.
type Advisor struct {
	conv *planner.Converter
}

// New creates an advisor over the given converter.
func New(conv *planner.Converter) *Advisor {
	return &Advisor{conv: conv}
}

// Advise returns the matched tips joined by line breaks in evaluation order
// (region, budget, style, guest count), or FallbackReply when nothing
// matched.
func (a *Advisor) Advise(req Request) string {
	var tips []string

	if tip, ok := regionTips[req.Region]; ok {
		tips = append(tips, tip)
	}

	if req.Budget != nil {
		budgetUSD := *req.Budget
		if req.Currency != "" && req.Currency != planner.CurrencyUSD {
			budgetUSD = a.conv.ToUSD(*req.Budget, req.Currency)
		}
		switch {
		case budgetUSD < limitedBudgetUSD:
			tips = append(tips, "With a limited budget, prioritize the venue and catering first and trim decor and stationery.")
		case budgetUSD < midBudgetUSD:
			tips = append(tips, "A mid-range budget comfortably covers a premium venue plus a live band or DJ if you book early.")
		default:
			tips = append(tips, "With a luxury budget, consider a dedicated wedding planner and featured venues with sea or skyline views.")
		}
	}

	if tip, ok := styleTips[strings.ToLower(req.Style)]; ok {
		tips = append(tips, tip)
	}

	if req.GuestCount != nil {
		switch {
		case *req.GuestCount > largeGuestCount:
			tips = append(tips, "For more than 300 guests, arrange valet parking and rehearse the zaffe entrance with the full troupe.")
		case *req.GuestCount <= intimateGuestCount:
			tips = append(tips, "An intimate guest list opens up boutique venues that larger weddings can never book.")
		}
	}

	if len(tips) == 0 {
		return FallbackReply
	}
	return strings.Join(tips, "\n")
}
