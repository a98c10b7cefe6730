package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ersi-ai/ersi-backend/internal/models"
	"github.com/ersi-ai/ersi-backend/internal/service"
)

// PlanHandler serves preference submission, plan generation and inquiries.
type PlanHandler struct {
	plans *service.PlanService
}

// NewPlanHandler creates a new PlanHandler.
func NewPlanHandler(plans *service.PlanService) *PlanHandler {
	return &PlanHandler{plans: plans}
}

// CreatePreference handles POST /api/preferences.
func (h *PlanHandler) CreatePreference(c *gin.Context) {
	var pref models.UserPreference
	if err := c.ShouldBindJSON(&pref); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.plans.SavePreference(c.Request.Context(), &pref); err != nil {
		slog.Error("Preference save failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save preference"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"id": pref.ID})
}

// GeneratePlan handles POST /api/plan. The preference is persisted first;
// any store failure fails the whole request and no partial plan is
// returned.
func (h *PlanHandler) GeneratePlan(c *gin.Context) {
	var pref models.UserPreference
	if err := c.ShouldBindJSON(&pref); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.plans.ComposePlan(c.Request.Context(), &pref)
	if err != nil {
		slog.Error("Plan composition failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to generate plan"})
		return
	}

	c.JSON(http.StatusOK, result)
}

// CreateInquiry handles POST /api/inquiries.
func (h *PlanHandler) CreateInquiry(c *gin.Context) {
	var inq models.Inquiry
	if err := c.ShouldBindJSON(&inq); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.plans.SaveInquiry(c.Request.Context(), &inq); err != nil {
		slog.Error("Inquiry save failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save inquiry"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"id": inq.ID})
}
