package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ersi-ai/ersi-backend/internal/assistant"
)

// AssistHandler serves the rule-based planning assistant.
type AssistHandler struct {
	advisor *assistant.Advisor
}

// NewAssistHandler creates a new AssistHandler.
func NewAssistHandler(advisor *assistant.Advisor) *AssistHandler {
	return &AssistHandler{advisor: advisor}
}

// Assist handles POST /api/assist. All request fields are optional; an
// empty request gets the fixed prompt asking for more detail.
func (h *AssistHandler) Assist(c *gin.Context) {
	var req assistant.Request
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"reply": h.advisor.Advise(req)})
}
