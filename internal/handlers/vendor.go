package handlers

import (
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/ersi-ai/ersi-backend/internal/service"
	"github.com/ersi-ai/ersi-backend/internal/storage"
)

// VendorHandler serves vendor listing, seeding and recommendations.
type VendorHandler struct {
	vendors *service.VendorService
}

// NewVendorHandler creates a new VendorHandler.
func NewVendorHandler(vendors *service.VendorService) *VendorHandler {
	return &VendorHandler{vendors: vendors}
}

// List handles GET /api/vendors with optional filters.
func (h *VendorHandler) List(c *gin.Context) {
	filter := storage.VendorFilter{
		Region:    c.Query("region"),
		Category:  c.Query("category"),
		City:      c.Query("city"),
		PriceTier: c.Query("price_tier"),
		Query:     c.Query("q"),
	}
	if v := c.Query("featured"); v != "" {
		featured, err := strconv.ParseBool(v)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "featured must be a boolean"})
			return
		}
		filter.Featured = &featured
	}
	if v := c.Query("min_capacity"); v != "" {
		minCapacity, err := strconv.Atoi(v)
		if err != nil || minCapacity < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "min_capacity must be a non-negative integer"})
			return
		}
		filter.MinCapacity = minCapacity
	}

	limit := 50
	if v := c.Query("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "limit must be a positive integer"})
			return
		}
		limit = n
	}

	vendors, err := h.vendors.List(c.Request.Context(), filter, limit)
	if err != nil {
		slog.Error("Vendor listing failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list vendors"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"items": vendors})
}

// Recommend handles GET /api/recommendations. Categories are passed as a
// comma-separated list; the plan composer's defaults apply when absent.
func (h *VendorHandler) Recommend(c *gin.Context) {
	region := c.Query("region")
	if region == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "region is required"})
		return
	}

	categories := service.PlanCategories
	if v := c.Query("categories"); v != "" {
		categories = nil
		for _, cat := range strings.Split(v, ",") {
			if cat = strings.TrimSpace(cat); cat != "" {
				categories = append(categories, cat)
			}
		}
	}

	limit := service.DefaultRecommendationLimit
	if v := c.Query("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "limit must be a positive integer"})
			return
		}
		limit = n
	}

	recs, err := h.vendors.Recommend(c.Request.Context(), region, categories, limit)
	if err != nil {
		slog.Error("Recommendation failed", "region", region, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to recommend vendors"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"vendors": recs})
}

// Seed handles POST /api/seed/vendors (idempotent).
func (h *VendorHandler) Seed(c *gin.Context) {
	created, total, err := h.vendors.SeedVendors(c.Request.Context())
	if err != nil {
		slog.Error("Vendor seeding failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to seed vendors"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"seeded": created, "total_vendors": total})
}
