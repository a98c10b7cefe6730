// Package handlers exposes the JSON API endpoints over gin. Handlers do
// request binding and status-code mapping only; all behavior lives in the
// service and planner packages.
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ersi-ai/ersi-backend/internal/storage"
)

// APIVersion is reported on the root banner and health endpoint.
const APIVersion = "1.0.0"

// HealthHandler reports backend and database status.
type HealthHandler struct {
	store storage.Store
}

// NewHealthHandler creates a new HealthHandler.
func NewHealthHandler(store storage.Store) *HealthHandler {
	return &HealthHandler{store: store}
}

// Root handles GET / with a service banner.
func (h *HealthHandler) Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "wedding planner backend running",
		"version": APIVersion,
	})
}

// Health handles GET /api/health. The database check pings the store and
// counts vendors so a misconfigured database path shows up here rather
// than on the first plan request.
func (h *HealthHandler) Health(c *gin.Context) {
	resp := gin.H{
		"backend":  "running",
		"version":  APIVersion,
		"database": "unavailable",
	}

	if err := h.store.Ping(c.Request.Context()); err != nil {
		resp["database_error"] = err.Error()
		c.JSON(http.StatusServiceUnavailable, resp)
		return
	}
	resp["database"] = "connected"

	if count, err := h.store.CountVendors(c.Request.Context()); err == nil {
		resp["vendor_count"] = count
	}

	c.JSON(http.StatusOK, resp)
}
