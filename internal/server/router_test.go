package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/ersi-ai/ersi-backend/internal/assistant"
	"github.com/ersi-ai/ersi-backend/internal/auth"
	"github.com/ersi-ai/ersi-backend/internal/handlers"
	"github.com/ersi-ai/ersi-backend/internal/middleware"
	"github.com/ersi-ai/ersi-backend/internal/planner"
	"github.com/ersi-ai/ersi-backend/internal/service"
	"github.com/ersi-ai/ersi-backend/internal/storage/sqlite"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	tempDir, err := os.MkdirTemp("", "planner-api-test-*")
	if err != nil {
		t.Fatalf("failed to create temp dir: %v", err)
	}
	t.Cleanup(func() { os.RemoveAll(tempDir) })

	store, err := sqlite.New(filepath.Join(tempDir, "test.db"))
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	conv := planner.NewConverter(planner.DefaultRates())
	vendorSvc := service.NewVendorService(store, conv)
	planSvc := service.NewPlanService(store, conv, vendorSvc)
	jwtManager := auth.NewJWTManager("test-secret", time.Hour)

	return NewRouter(RouterConfig{
		Health:      handlers.NewHealthHandler(store),
		Vendors:     handlers.NewVendorHandler(vendorSvc),
		Plans:       handlers.NewPlanHandler(planSvc),
		Assist:      handlers.NewAssistHandler(assistant.New(conv)),
		Auth:        handlers.NewAuthHandler(auth.NewPasswordAuthenticator(store), jwtManager, store),
		RequireAuth: middleware.RequireAuth(jwtManager),
	})
}

func doJSON(t *testing.T, router *gin.Engine, method, path string, body any) (*httptest.ResponseRecorder, map[string]json.RawMessage) {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("failed to encode request body: %v", err)
		}
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	resp := map[string]json.RawMessage{}
	if w.Body.Len() > 0 && w.Body.Bytes()[0] == '{' {
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("failed to decode response %q: %v", w.Body.String(), err)
		}
	}
	return w, resp
}

func TestGeneratePlanEndToEnd(t *testing.T) {
	router := newTestRouter(t)

	if w, _ := doJSON(t, router, http.MethodPost, "/api/seed/vendors", nil); w.Code != http.StatusOK {
		t.Fatalf("seed returned %d: %s", w.Code, w.Body.String())
	}

	w, resp := doJSON(t, router, http.MethodPost, "/api/plan", map[string]any{
		"full_name":   "Rana & Karim",
		"email":       "rana@example.com",
		"region":      "lebanon",
		"guest_count": 250,
		"budget":      50000,
		"currency":    "USD",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("plan returned %d: %s", w.Code, w.Body.String())
	}

	var plan struct {
		PreferenceID string `json:"preference_id"`
		Timeline     []struct {
			Label string `json:"label"`
		} `json:"timeline"`
	}
	if err := json.Unmarshal(resp["plan"], &plan); err != nil {
		t.Fatalf("failed to decode plan: %v", err)
	}
	if plan.PreferenceID == "" {
		t.Error("expected preference_id in plan")
	}
	if len(plan.Timeline) != 8 {
		t.Errorf("timeline has %d items, want 8", len(plan.Timeline))
	}

	var budget []struct {
		Category          string  `json:"category"`
		AllocationPercent float64 `json:"allocation_percent"`
		Amount            float64 `json:"amount"`
	}
	if err := json.Unmarshal(resp["budget"], &budget); err != nil {
		t.Fatalf("failed to decode budget: %v", err)
	}
	if len(budget) != 10 {
		t.Errorf("budget has %d items, want 10", len(budget))
	}
	var amountSum float64
	for _, item := range budget {
		amountSum += item.Amount
	}
	if amountSum < 49999.9 || amountSum > 50000.1 {
		t.Errorf("budget amounts sum to %v, want about 50000", amountSum)
	}

	var vendors map[string][]json.RawMessage
	if err := json.Unmarshal(resp["vendors"], &vendors); err != nil {
		t.Fatalf("failed to decode vendors: %v", err)
	}
	for _, cat := range []string{"venue", "photography", "florals", "zaffe", "dj"} {
		if _, ok := vendors[cat]; !ok {
			t.Errorf("missing vendor category %q", cat)
		}
	}
	if len(vendors) != 5 {
		t.Errorf("vendor map has %d keys, want 5", len(vendors))
	}
	// Nothing sells DJ sets in the seed catalog; the key must still be
	// present with an empty list.
	if len(vendors["dj"]) != 0 {
		t.Errorf("expected empty dj list, got %v", vendors["dj"])
	}
}

func TestGeneratePlanValidation(t *testing.T) {
	router := newTestRouter(t)

	tests := []struct {
		name string
		body map[string]any
	}{
		{"missing region", map[string]any{
			"full_name": "X", "email": "x@example.com", "guest_count": 100, "budget": 1000,
		}},
		{"guest count out of range", map[string]any{
			"full_name": "X", "email": "x@example.com", "region": "lebanon", "guest_count": 5000, "budget": 1000,
		}},
		{"bad region", map[string]any{
			"full_name": "X", "email": "x@example.com", "region": "mars", "guest_count": 100, "budget": 1000,
		}},
		{"bad currency", map[string]any{
			"full_name": "X", "email": "x@example.com", "region": "gcc", "guest_count": 100, "budget": 1000, "currency": "EUR",
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, _ := doJSON(t, router, http.MethodPost, "/api/plan", tt.body)
			if w.Code != http.StatusBadRequest {
				t.Errorf("expected 400, got %d: %s", w.Code, w.Body.String())
			}
		})
	}
}

func TestAssistEndToEnd(t *testing.T) {
	router := newTestRouter(t)

	t.Run("gcc with limited budget", func(t *testing.T) {
		w, resp := doJSON(t, router, http.MethodPost, "/api/assist", map[string]any{
			"region":   "gcc",
			"budget":   20000,
			"currency": "USD",
		})
		if w.Code != http.StatusOK {
			t.Fatalf("assist returned %d: %s", w.Code, w.Body.String())
		}

		var reply string
		if err := json.Unmarshal(resp["reply"], &reply); err != nil {
			t.Fatalf("failed to decode reply: %v", err)
		}
		if !strings.Contains(reply, "GCC weddings") || !strings.Contains(reply, "limited budget") {
			t.Errorf("reply = %q, want GCC and limited-budget tips", reply)
		}
	})

	t.Run("empty request gets the fallback prompt", func(t *testing.T) {
		w, resp := doJSON(t, router, http.MethodPost, "/api/assist", map[string]any{})
		if w.Code != http.StatusOK {
			t.Fatalf("assist returned %d: %s", w.Code, w.Body.String())
		}

		var reply string
		if err := json.Unmarshal(resp["reply"], &reply); err != nil {
			t.Fatalf("failed to decode reply: %v", err)
		}
		if reply != assistant.FallbackReply {
			t.Errorf("reply = %q, want exactly the fallback prompt", reply)
		}
	})
}

func TestVendorListing(t *testing.T) {
	router := newTestRouter(t)

	doJSON(t, router, http.MethodPost, "/api/seed/vendors", nil)

	w, resp := doJSON(t, router, http.MethodGet, "/api/vendors?region=lebanon&category=venue", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("vendors returned %d: %s", w.Code, w.Body.String())
	}

	var items []struct {
		Name   string `json:"name"`
		Region string `json:"region"`
	}
	if err := json.Unmarshal(resp["items"], &items); err != nil {
		t.Fatalf("failed to decode items: %v", err)
	}
	if len(items) != 2 {
		t.Errorf("expected 2 lebanon venues from the seed catalog, got %d", len(items))
	}
	for _, item := range items {
		if item.Region != "lebanon" {
			t.Errorf("vendor %q from region %q, want lebanon", item.Name, item.Region)
		}
	}

	t.Run("bad limit rejected", func(t *testing.T) {
		w, _ := doJSON(t, router, http.MethodGet, "/api/vendors?limit=zero", nil)
		if w.Code != http.StatusBadRequest {
			t.Errorf("expected 400, got %d", w.Code)
		}
	})
}

func TestAuthFlow(t *testing.T) {
	router := newTestRouter(t)

	w, resp := doJSON(t, router, http.MethodPost, "/api/register", map[string]any{
		"email":        "maya@example.com",
		"display_name": "Maya",
		"password":     "correct-horse",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("register returned %d: %s", w.Code, w.Body.String())
	}

	var token string
	if err := json.Unmarshal(resp["access_token"], &token); err != nil || token == "" {
		t.Fatalf("expected access_token, got %s", w.Body.String())
	}

	t.Run("me requires a token", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/me", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		if w.Code != http.StatusUnauthorized {
			t.Errorf("expected 401 without token, got %d", w.Code)
		}
	})

	t.Run("me with token", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/me", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		if w.Code != http.StatusOK {
			t.Errorf("expected 200 with token, got %d: %s", w.Code, w.Body.String())
		}
		if !strings.Contains(w.Body.String(), "maya@example.com") {
			t.Errorf("expected user email in response, got %s", w.Body.String())
		}
	})

	t.Run("duplicate registration rejected", func(t *testing.T) {
		w, _ := doJSON(t, router, http.MethodPost, "/api/register", map[string]any{
			"email":        "maya@example.com",
			"display_name": "Maya",
			"password":     "correct-horse",
		})
		if w.Code != http.StatusConflict {
			t.Errorf("expected 409, got %d", w.Code)
		}
	})

	t.Run("wrong password rejected", func(t *testing.T) {
		w, _ := doJSON(t, router, http.MethodPost, "/api/login", map[string]any{
			"email":    "maya@example.com",
			"password": "wrong",
		})
		if w.Code != http.StatusUnauthorized {
			t.Errorf("expected 401, got %d", w.Code)
		}
	})

	t.Run("login returns a fresh token", func(t *testing.T) {
		w, resp := doJSON(t, router, http.MethodPost, "/api/login", map[string]any{
			"email":    "maya@example.com",
			"password": "correct-horse",
		})
		if w.Code != http.StatusOK {
			t.Fatalf("login returned %d: %s", w.Code, w.Body.String())
		}
		var token string
		if err := json.Unmarshal(resp["access_token"], &token); err != nil || token == "" {
			t.Errorf("expected access_token, got %s", w.Body.String())
		}
	})
}

func TestHealthAndSchema(t *testing.T) {
	router := newTestRouter(t)

	w, _ := doJSON(t, router, http.MethodGet, "/api/health", nil)
	if w.Code != http.StatusOK {
		t.Errorf("health returned %d: %s", w.Code, w.Body.String())
	}
	if !strings.Contains(w.Body.String(), "connected") {
		t.Errorf("expected connected database, got %s", w.Body.String())
	}

	req := httptest.NewRequest(http.MethodGet, "/api/schema", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Errorf("schema returned %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "userpreference") {
		t.Errorf("expected userpreference schema, got %s", rec.Body.String())
	}
}
