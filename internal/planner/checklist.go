package planner

import "github.com/ersi-ai/ersi-backend/internal/models"

// largeWeddingGuests is the guest count above which the checklist gains a
// valet/parking coordination task.
const largeWeddingGuests = 300

// baseChecklist is the fixed eight-task timeline, ordered for display.
// Labels are Arabic; DueMonthsBefore counts back from the wedding date.
var baseChecklist = []models.ChecklistItem{
	{Label: "حددوا الميزانية الكاملة", Category: "planning", DueMonthsBefore: 12},
	{Label: "اختيار القاعة أو المكان", Category: "venue", DueMonthsBefore: 11},
	{Label: "حجز الفرقة أو الدي جي", Category: "entertainment", DueMonthsBefore: 9},
	{Label: "تصميم الزينة والورود", Category: "florals", DueMonthsBefore: 6},
	{Label: "حجز الزفة", Category: "entertainment", DueMonthsBefore: 5, Optional: true},
	{Label: "التصوير والفيديو", Category: "media", DueMonthsBefore: 7},
	{Label: "الدعوات والبطاقات", Category: "paperwork", DueMonthsBefore: 3},
	{Label: "بروفة نهائية وجدول اليوم الكبير", Category: "logistics", DueMonthsBefore: 1},
}

// valetItem is appended for large weddings. It is appended, not inserted in
// chronological position, so the full sequence is not sorted by due month.
var valetItem = models.ChecklistItem{
	Label:           "تأكيد ترتيبات خدمة صف السيارات",
	Category:        "logistics",
	DueMonthsBefore: 2,
}

// ChecklistFor returns the wedding timeline for the given guest count.
// The same guest count always yields the same sequence.
func ChecklistFor(guestCount int) []models.ChecklistItem {
	items := make([]models.ChecklistItem, len(baseChecklist), len(baseChecklist)+1)
	copy(items, baseChecklist)
	if guestCount > largeWeddingGuests {
		items = append(items, valetItem)
	}
	return items
}
