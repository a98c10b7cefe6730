package handlers

import (
	"net/http"
	"reflect"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/ersi-ai/ersi-backend/internal/models"
)

// schemaInfo describes one model's fields for client tooling.
type schemaInfo struct {
	Name   string            `json:"name"`
	Fields map[string]string `json:"fields"`
}

// modelFields maps a struct's JSON field names to their Go types.
func modelFields(model any) map[string]string {
	t := reflect.TypeOf(model)
	fields := make(map[string]string, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		name := f.Name
		if tag := f.Tag.Get("json"); tag != "" && tag != "-" {
			name = strings.Split(tag, ",")[0]
		}
		fields[name] = f.Type.String()
	}
	return fields
}

// Schema handles GET /api/schema, exposing simplified schema info for the
// API's models.
func Schema(c *gin.Context) {
	c.JSON(http.StatusOK, []schemaInfo{
		{Name: "userpreference", Fields: modelFields(models.UserPreference{})},
		{Name: "vendor", Fields: modelFields(models.Vendor{})},
		{Name: "inquiry", Fields: modelFields(models.Inquiry{})},
		{Name: "checklistitem", Fields: modelFields(models.ChecklistItem{})},
		{Name: "budgetitem", Fields: modelFields(models.BudgetItem{})},
		{Name: "plan", Fields: modelFields(models.Plan{})},
		{Name: "user", Fields: modelFields(models.User{})},
	})
}
