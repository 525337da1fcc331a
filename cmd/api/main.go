package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/joho/godotenv"

	"github.com/rentcredit/rentcredit/internal/config"
	"github.com/rentcredit/rentcredit/internal/dashboard"
	"github.com/rentcredit/rentcredit/internal/export"
	rcHttp "github.com/rentcredit/rentcredit/internal/http"
	dashboardHandler "github.com/rentcredit/rentcredit/internal/http/dashboard"
	exportHandler "github.com/rentcredit/rentcredit/internal/http/export"
	importHandler "github.com/rentcredit/rentcredit/internal/http/importcsv"
	paymentHandler "github.com/rentcredit/rentcredit/internal/http/payment"
	sessionHandler "github.com/rentcredit/rentcredit/internal/http/session"
	tenantHandler "github.com/rentcredit/rentcredit/internal/http/tenant"
	"github.com/rentcredit/rentcredit/internal/importer"
	"github.com/rentcredit/rentcredit/internal/payment"
	paymentStore "github.com/rentcredit/rentcredit/internal/payment/store"
	"github.com/rentcredit/rentcredit/internal/session"
	sessionStore "github.com/rentcredit/rentcredit/internal/session/store"
	"github.com/rentcredit/rentcredit/internal/tenant"
	tenantStore "github.com/rentcredit/rentcredit/internal/tenant/store"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	sessStore, err := sessionStore.New(cfg.Session.DBPath)
	if err != nil {
		slog.Error("failed to open session store", "error", err)
		os.Exit(1)
	}
	defer sessStore.Close()

	sessionService, err := session.NewService(context.Background(), sessStore, cfg.Session.Secret)
	if err != nil {
		slog.Error("failed to load session", "error", err)
		os.Exit(1)
	}

	var (
		tenantService    = tenant.NewService(tenantStore.Seeded())
		paymentService   = payment.NewService(paymentStore.Seeded())
		dashboardService = dashboard.NewService(tenantService, paymentService, dashboard.NewState())
		importService    = importer.NewService()
		exportService    = export.NewService(tenantService, paymentService, cfg.Export.Dir)
	)

	var (
		sessionH   = sessionHandler.NewHandler(sessionService)
		tenantH    = tenantHandler.NewHandler(dashboardService)
		paymentH   = paymentHandler.NewHandler(dashboardService)
		dashboardH = dashboardHandler.NewHandler(dashboardService)
		importH    = importHandler.NewHandler(importService, dashboardService)
		exportH    = exportHandler.NewHandler(exportService, dashboardService)
	)

	router := rcHttp.New(cfg.Server.CORSOrigin, sessionH, tenantH, paymentH, dashboardH, importH, exportH)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	slog.Info("starting server", "port", port)

	if err := http.ListenAndServe(port, router); err != nil {
		slog.Error("server failed", "error", err)
		os.Exit(1)
	}
}
