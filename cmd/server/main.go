package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"

	"github.com/ersi-ai/ersi-backend/internal/assistant"
	"github.com/ersi-ai/ersi-backend/internal/auth"
	"github.com/ersi-ai/ersi-backend/internal/config"
	"github.com/ersi-ai/ersi-backend/internal/handlers"
	"github.com/ersi-ai/ersi-backend/internal/middleware"
	"github.com/ersi-ai/ersi-backend/internal/planner"
	"github.com/ersi-ai/ersi-backend/internal/server"
	"github.com/ersi-ai/ersi-backend/internal/service"
	"github.com/ersi-ai/ersi-backend/internal/storage/sqlite"
	"github.com/ersi-ai/ersi-backend/pkg/logging"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "failed to load config:", err)
		os.Exit(1)
	}
	logging.Setup(cfg.Logging.Level)

	store, err := sqlite.New(cfg.Storage.Path)
	if err != nil {
		slog.Error("Failed to initialize storage", "error", err)
		os.Exit(1)
	}
	defer store.Close()
	slog.Info("Storage initialized", "database", cfg.Storage.Path)

	// Constant tables are built once and shared read-only by every
	// request.
	conv := planner.NewConverter(planner.DefaultRates())

	vendorSvc := service.NewVendorService(store, conv)
	planSvc := service.NewPlanService(store, conv, vendorSvc)
	advisor := assistant.New(conv)

	authenticator := auth.NewPasswordAuthenticator(store)
	jwtManager := auth.NewJWTManager(cfg.Auth.JWTSecret, time.Duration(cfg.Auth.TokenTTLHours)*time.Hour)

	router := server.NewRouter(server.RouterConfig{
		Health:      handlers.NewHealthHandler(store),
		Vendors:     handlers.NewVendorHandler(vendorSvc),
		Plans:       handlers.NewPlanHandler(planSvc),
		Assist:      handlers.NewAssistHandler(advisor),
		Auth:        handlers.NewAuthHandler(authenticator, jwtManager, store),
		RequireAuth: middleware.RequireAuth(jwtManager),
	})

	// h2c supports HTTP/2 without TLS for clients that want it; plain
	// HTTP/1.1 still works.
	handler := h2c.NewHandler(router, &http2.Server{})

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	slog.Info("Server starting", "address", addr)
	if err := http.ListenAndServe(addr, handler); err != nil {
		slog.Error("Server failed", "error", err)
		os.Exit(1)
	}
}
